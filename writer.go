package binstream

import (
	"fmt"
	"os"
)

// Sink is the writing counterpart of Source: an addressable output extent
// with a movable cursor. Seek never fails; seeking past the furthest byte
// written extends the final extent with zeros.
type Sink interface {
	// Write copies src at the cursor and advances the cursor by len(src).
	Write(src []byte) error

	// Seek moves the cursor to offset unconditionally.
	Seek(offset int64)

	// Tell returns the current cursor position.
	Tell() int64

	// Release finalizes the sink. A buffer-backed sink hands its
	// accumulated bytes to the caller; a file-backed sink flushes to disk
	// and returns nil. The sink must not be used afterwards.
	Release() ([]byte, error)

	// Close releases the backing resource without finalizing.
	Close() error
}

// BufferSink accumulates written bytes in memory.
type BufferSink struct {
	buf []byte
	pos int64
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(src []byte) error {
	if s.pos < 0 {
		return fmt.Errorf("write of %d bytes at negative offset %d", len(src), s.pos)
	}

	end := s.pos + int64(len(src))
	s.grow(end)

	copy(s.buf[s.pos:end], src)
	s.pos = end

	return nil
}

func (s *BufferSink) Seek(offset int64) {
	s.pos = offset
	s.grow(offset)
}

func (s *BufferSink) Tell() int64 {
	return s.pos
}

func (s *BufferSink) Release() ([]byte, error) {
	buf := s.buf
	s.buf = nil

	return buf, nil
}

func (s *BufferSink) Close() error {
	s.buf = nil
	return nil
}

func (s *BufferSink) grow(n int64) {
	if n <= int64(len(s.buf)) {
		return
	}

	if n <= int64(cap(s.buf)) {
		s.buf = s.buf[:n]
		return
	}

	buf := make([]byte, n, max(n, int64(cap(s.buf))*2))
	copy(buf, s.buf)
	s.buf = buf
}

func max(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

// FileSink writes to a file created at construction. Writes are positional
// (WriteAt); the final extent is the furthest position touched by a write
// or a seek.
type FileSink struct {
	file   *os.File
	pos    int64
	extent int64
}

func NewFileSink(path string) (*FileSink, error) {
	file, err := os.Create(path)

	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &FileSink{
		file: file,
	}, nil
}

func (s *FileSink) Write(src []byte) error {
	if s.pos < 0 {
		return fmt.Errorf("write of %d bytes at negative offset %d", len(src), s.pos)
	}

	if len(src) > 0 {
		if _, err := s.file.WriteAt(src, s.pos); err != nil {
			return fmt.Errorf("failed to write %d bytes at offset %d: %w", len(src), s.pos, err)
		}
	}

	s.pos += int64(len(src))

	if s.pos > s.extent {
		s.extent = s.pos
	}

	return nil
}

func (s *FileSink) Seek(offset int64) {
	s.pos = offset

	if offset > s.extent {
		s.extent = offset
	}
}

func (s *FileSink) Tell() int64 {
	return s.pos
}

func (s *FileSink) Release() ([]byte, error) {
	if err := s.file.Truncate(s.extent); err != nil {
		return nil, fmt.Errorf("failed to extend file to %d bytes: %w", s.extent, err)
	}

	if err := s.file.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync file: %w", err)
	}

	return nil, s.Close()
}

func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}

	file := s.file
	s.file = nil

	return file.Close()
}

// Writer is the mirror image of Reader: typed writes against a single Sink
// it exclusively owns. Reader round-trips every Writer operation byte for
// byte.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	sink Sink
}

// NewWriter returns a writer over an already-constructed sink, taking
// ownership of it.
func NewWriter(sink Sink) *Writer {
	return &Writer{
		sink: sink,
	}
}

// NewBufferWriter returns a writer accumulating into memory.
func NewBufferWriter() *Writer {
	return NewWriter(NewBufferSink())
}

// NewFileWriter returns a writer creating the file at path.
func NewFileWriter(path string) (*Writer, error) {
	sink, err := NewFileSink(path)

	if err != nil {
		return nil, err
	}

	return NewWriter(sink), nil
}

func (w *Writer) Tell() int64 {
	return w.sink.Tell()
}

func (w *Writer) Seek(offset int64) {
	w.sink.Seek(offset)
}

// Release finalizes the owned sink and returns the accumulated bytes for a
// buffer-backed writer, or nil for a file-backed one.
func (w *Writer) Release() ([]byte, error) {
	return w.sink.Release()
}

// Close closes the owned sink without finalizing it.
func (w *Writer) Close() error {
	return w.sink.Close()
}

// WriteString writes the bytes of s in their given order.
func (w *Writer) WriteString(s string) error {
	return w.sink.Write([]byte(s))
}

// WriteStringLE writes the bytes of s reversed as a unit, mirroring
// Reader.ReadStringLE.
func (w *Writer) WriteStringLE(s string) error {
	buf := []byte(s)
	reverseBytes(buf)

	return w.sink.Write(buf)
}

// WriteCString writes the bytes of s followed by a null terminator.
func (w *Writer) WriteCString(s string) error {
	if err := w.WriteString(s); err != nil {
		return err
	}

	return w.sink.Write([]byte{0})
}

// WriteCStringLE writes the bytes of s reversed as a unit, followed by a
// null terminator.
func (w *Writer) WriteCStringLE(s string) error {
	if err := w.WriteStringLE(s); err != nil {
		return err
	}

	return w.sink.Write([]byte{0})
}

// Align writes the zero padding needed to bring the cursor to the next
// multiple of alignment.
func (w *Writer) Align(alignment int64) error {
	pos := w.Tell()
	padding := (alignment - pos%alignment) % alignment

	if padding == 0 {
		return nil
	}

	return w.sink.Write(make([]byte, padding))
}
