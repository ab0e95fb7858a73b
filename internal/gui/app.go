// Package gui provides the Wails-based GUI application.
//
// The window mirrors the form package: an input area, a read-only output area
// and Validate, Beautify and Clear buttons. The frontend owns the text areas and
// sends the input with every click; App returns the new content of both areas.
package gui

import (
	"context"

	"github.com/mpyw/jsonval/internal/form"
)

// App struct holds application state and dependencies.
//
//nolint:containedctx // Wails apps require storing context from Startup
type App struct {
	ctx context.Context

	pipeline form.Processor
}

// NewApp creates a new App application struct.
// A nil processor uses the default pipeline.
func NewApp(p form.Processor) *App {
	return &App{pipeline: p}
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// Validate processes input and returns the resulting form state.
func (a *App) Validate(input string) form.State {
	f := form.New(a.pipeline, input)
	f.Validate()

	return f.State
}

// Beautify is bound separately so the frontend can wire its own button;
// it behaves exactly like Validate.
func (a *App) Beautify(input string) form.State {
	f := form.New(a.pipeline, input)
	f.Beautify()

	return f.State
}

// Clear returns an empty form state.
func (a *App) Clear() form.State {
	f := form.New(a.pipeline, "")
	f.Clear()

	return f.State
}
