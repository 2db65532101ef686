package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/binstream/binstream-go/internal/convert"
)

// JSONPrinter streams one object keyed by byte offset, e.g.
// {"0":287454020,"4":1}.
type JSONPrinter struct {
	writer io.Writer
	index  int
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{
		writer: w,
	}
}

func (j *JSONPrinter) print(args ...interface{}) error {
	_, err := fmt.Fprint(j.writer, args...)
	return err
}

func (j *JSONPrinter) printValue(value interface{}) error {
	buf, err := json.Marshal(value)

	if err != nil {
		return err
	}

	return j.print(convert.BytesToString(buf))
}

func (j *JSONPrinter) Start() error {
	return j.print("{")
}

func (j *JSONPrinter) Value(offset int64, value interface{}) error {
	if j.index > 0 {
		if err := j.print(","); err != nil {
			return err
		}
	}

	if err := j.printValue(strconv.FormatInt(offset, 10)); err != nil {
		return err
	}

	if err := j.print(":"); err != nil {
		return err
	}

	if err := j.printValue(value); err != nil {
		return err
	}

	j.index++
	return nil
}

func (j *JSONPrinter) End() error {
	return j.print("}")
}
