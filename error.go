package binstream

import (
	"errors"
	"fmt"
)

// ErrNullByte is returned when a fixed-size string read still contains a
// null byte after byte order correction.
var ErrNullByte = errors.New("fixed-size string contains a null byte")

type InvalidPathError struct {
	Path string
}

func (i InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q", i.Path)
}

type OutOfBoundsError struct {
	Offset int64
	Length int64
	Size   int64
}

func (o OutOfBoundsError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d exceeds source size %d", o.Length, o.Offset, o.Size)
}

type DoubleReadError struct {
	Offset int64
}

func (d DoubleReadError) Error() string {
	return fmt.Sprintf("byte at offset %d has already been read", d.Offset)
}

type PaddingError struct {
	Offset int64
	Value  byte
}

func (p PaddingError) Error() string {
	return fmt.Sprintf("non-zero padding byte 0x%02x at offset %d", p.Value, p.Offset)
}

type SourceTypeError struct {
	Source Source
}

func (s SourceTypeError) Error() string {
	return fmt.Sprintf("source type %T is not the expected coverage tracking source", s.Source)
}
