// Package form models the validator form: an input area, an output area and
// the Validate, Beautify and Clear actions every front end exposes.
package form

import "github.com/mpyw/jsonval/internal/pipeline"

// MessageFormatted is shown in the output area after a successful run.
const MessageFormatted = "Valid JSON formatted successfully."

// Processor turns raw text into a pipeline result.
type Processor interface {
	Process(raw string) pipeline.Result
}

// State is the content of both display areas.
type State struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Form holds display state and applies pipeline results to it.
type Form struct {
	State

	// Pipeline processes the input; nil means a default pipeline.Pipeline.
	Pipeline Processor
}

// New returns a form whose input area holds input.
func New(p Processor, input string) *Form {
	return &Form{State: State{Input: input}, Pipeline: p}
}

// Validate processes the input area.
// On success the input area is replaced with the formatted text and the output
// area shows MessageFormatted; otherwise only the output area changes.
func (f *Form) Validate() pipeline.Result {
	result := f.processor().Process(f.Input)
	if result.Valid() {
		f.Input = result.Text
		f.Output = MessageFormatted
	} else {
		f.Output = result.Message
	}

	return result
}

// Beautify is Validate under another label.
func (f *Form) Beautify() pipeline.Result {
	return f.Validate()
}

// Clear empties both display areas.
func (f *Form) Clear() {
	f.State = State{}
}

func (f *Form) processor() Processor {
	if f.Pipeline == nil {
		return &pipeline.Pipeline{}
	}

	return f.Pipeline
}
