package binstream

import (
	"bytes"
	"errors"
	"io"

	"github.com/binstream/binstream-go/internal/convert"
)

// DefaultAlignment is the alignment boundary most callers pad to.
const DefaultAlignment = 16

// Reader performs typed reads against a single Source it exclusively owns.
// It keeps no position state of its own; Tell, Seek and Size delegate to
// the source.
//
// Typed scalar and slice reads are the package-level generic functions
// (Read, ReadBE, ReadSlice, ...). String and alignment reads are methods.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	source Source
}

// NewReader returns a reader over an already-constructed source, taking
// ownership of it. Use this to wrap a source in a CoverageSource first.
func NewReader(source Source) *Reader {
	return &Reader{
		source: source,
	}
}

// NewFileReader opens path and returns a reader over a FileSource.
func NewFileReader(path string) (*Reader, error) {
	source, err := NewFileSource(path)

	if err != nil {
		return nil, err
	}

	return NewReader(source), nil
}

// NewBufferReader returns a reader over a borrowed in-memory region. The
// caller must keep data alive and unmodified for the reader's lifetime.
func NewBufferReader(data []byte) *Reader {
	return NewReader(NewBufferSource(data))
}

// NewOwnedBufferReader returns a reader that takes exclusive ownership of
// data. The caller must not use data afterwards.
func NewOwnedBufferReader(data []byte) *Reader {
	return NewReader(NewOwnedBufferSource(data))
}

func (r *Reader) Tell() int64 {
	return r.source.Tell()
}

func (r *Reader) Seek(offset int64) {
	r.source.Seek(offset)
}

func (r *Reader) Size() int64 {
	return r.source.Size()
}

// Source exposes the owned source for diagnostics and coverage queries.
// Callers must not mutate the source through the returned value.
func (r *Reader) Source() Source {
	return r.source
}

// Close closes the owned source.
func (r *Reader) Close() error {
	return r.source.Close()
}

// ReadString reads n bytes as a string in their stored order.
func (r *Reader) ReadString(n int) (string, error) {
	buf, err := r.readStringBytes(n, false)

	if err != nil {
		return "", err
	}

	return convert.BytesToString(buf), nil
}

// ReadStringLE reads n bytes and reverses the whole byte sequence as a
// unit. Some legacy formats store fixed strings with their bytes reversed;
// the reversal is of the entire string, never per character.
func (r *Reader) ReadStringLE(n int) (string, error) {
	buf, err := r.readStringBytes(n, true)

	if err != nil {
		return "", err
	}

	return convert.BytesToString(buf), nil
}

// ReadFixedString is ReadString for non-terminated fixed-size fields: it
// additionally fails with ErrNullByte if any null byte remains in the
// result.
func (r *Reader) ReadFixedString(n int) (string, error) {
	return r.readFixedString(n, false)
}

// ReadFixedStringLE is ReadStringLE with the ErrNullByte validation. The
// null check runs after the reversal.
func (r *Reader) ReadFixedStringLE(n int) (string, error) {
	return r.readFixedString(n, true)
}

func (r *Reader) readFixedString(n int, reverse bool) (string, error) {
	buf, err := r.readStringBytes(n, reverse)

	if err != nil {
		return "", err
	}

	if bytes.IndexByte(buf, 0) >= 0 {
		return "", ErrNullByte
	}

	return convert.BytesToString(buf), nil
}

func (r *Reader) readStringBytes(n int, reverse bool) ([]byte, error) {
	buf := make([]byte, n)

	if err := r.source.Read(buf); err != nil {
		return nil, err
	}

	if reverse {
		reverseBytes(buf)
	}

	return buf, nil
}

// ReadCString reads bytes up to and including a null terminator and
// returns everything before it. The cursor lands immediately after the
// terminator. It fails with io.ErrUnexpectedEOF if the source is exhausted
// before a terminator is found.
func (r *Reader) ReadCString() (string, error) {
	return r.readCString(false)
}

// ReadCStringLE is ReadCString with the whole result reversed as a unit.
func (r *Reader) ReadCStringLE() (string, error) {
	return r.readCString(true)
}

func (r *Reader) readCString(reverse bool) (string, error) {
	var buf []byte
	var c [1]byte

	for {
		if err := r.source.Read(c[:]); err != nil {
			var oob OutOfBoundsError

			if errors.As(err, &oob) {
				return "", io.ErrUnexpectedEOF
			}

			return "", err
		}

		if c[0] == 0 {
			break
		}

		buf = append(buf, c[0])
	}

	if reverse {
		reverseBytes(buf)
	}

	return convert.BytesToString(buf), nil
}

// Align consumes the padding needed to bring the cursor to the next
// multiple of alignment, without inspecting the padding content. Aligning
// past the end of the source fails with io.ErrUnexpectedEOF.
func (r *Reader) Align(alignment int64) error {
	_, err := r.readPadding(alignment)
	return err
}

// AlignZeroPad is Align plus a content check: any non-zero padding byte
// fails with a PaddingError. Bounds are checked strictly before content.
func (r *Reader) AlignZeroPad(alignment int64) error {
	buf, err := r.readPadding(alignment)

	if err != nil {
		return err
	}

	start := r.Tell() - int64(len(buf))

	for i, c := range buf {
		if c != 0 {
			return PaddingError{Offset: start + int64(i), Value: c}
		}
	}

	return nil
}

func (r *Reader) readPadding(alignment int64) ([]byte, error) {
	pos := r.Tell()
	padding := (alignment - pos%alignment) % alignment

	if padding == 0 {
		return nil, nil
	}

	if pos+padding > r.Size() {
		return nil, io.ErrUnexpectedEOF
	}

	buf := make([]byte, padding)

	if err := r.source.Read(buf); err != nil {
		return nil, err
	}

	return buf, nil
}
