package binstream

// BufferSource is a Source over a contiguous in-memory byte region.
type BufferSource struct {
	data []byte
	pos  int64
}

// NewBufferSource returns a source that borrows data. The caller keeps
// ownership and must keep data alive and unmodified for the lifetime of
// the source.
func NewBufferSource(data []byte) *BufferSource {
	return &BufferSource{
		data: data,
	}
}

// NewOwnedBufferSource returns a source that takes exclusive ownership of
// data. The caller must not read or write data afterwards; the source
// drops its reference on Close.
func NewOwnedBufferSource(data []byte) *BufferSource {
	return &BufferSource{
		data: data,
	}
}

func (s *BufferSource) Read(dst []byte) error {
	if err := s.Peek(dst); err != nil {
		return err
	}

	s.pos += int64(len(dst))
	return nil
}

func (s *BufferSource) Peek(dst []byte) error {
	n := int64(len(dst))

	if s.pos < 0 || s.pos+n > int64(len(s.data)) {
		return OutOfBoundsError{Offset: s.pos, Length: n, Size: int64(len(s.data))}
	}

	copy(dst, s.data[s.pos:])
	return nil
}

// Seek is an unchecked assignment. Seeking out of bounds is not an error;
// the next read at such a position is.
func (s *BufferSource) Seek(offset int64) {
	s.pos = offset
}

func (s *BufferSource) Tell() int64 {
	return s.pos
}

func (s *BufferSource) Size() int64 {
	return int64(len(s.data))
}

func (s *BufferSource) Close() error {
	s.data = nil
	return nil
}
