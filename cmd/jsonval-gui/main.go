//go:build production || dev

package main

import (
	"log"
	"os"

	"github.com/mpyw/jsonval/internal/config"
	"github.com/mpyw/jsonval/internal/gui"
	"github.com/mpyw/jsonval/internal/logging"
	"github.com/mpyw/jsonval/internal/pipeline"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("Error: ", err.Error())
	}

	p := &pipeline.Pipeline{
		Indent: cfg.Indent,
		Logger: logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr),
	}

	if err := gui.Run(p); err != nil {
		log.Fatal("Error: ", err.Error())
	}
}
