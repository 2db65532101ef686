package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// SpewPrinter prints one annotated line per value for debugging.
type SpewPrinter struct {
	writer io.Writer
	config *spew.ConfigState
}

func NewSpewPrinter(w io.Writer) *SpewPrinter {
	conf := spew.NewDefaultConfig()
	conf.DisablePointerAddresses = true
	conf.DisableCapacities = true
	conf.SortKeys = true

	return &SpewPrinter{
		writer: w,
		config: conf,
	}
}

func (s *SpewPrinter) Start() error {
	return nil
}

func (s *SpewPrinter) Value(offset int64, value interface{}) error {
	_, err := fmt.Fprintf(s.writer, "%#010x: %s", offset, s.config.Sdump(value))
	return err
}

func (s *SpewPrinter) End() error {
	return nil
}
