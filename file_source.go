package binstream

import (
	"fmt"
	"os"
)

// FileSource is a Source over a random-access file. The size is captured
// once from filesystem metadata at construction and never re-queried.
//
// Reads are positional (ReadAt), so Peek does not have to restore an OS
// cursor. There is no atomicity guarantee against concurrent external
// modification of the file.
type FileSource struct {
	file *os.File
	size int64
	pos  int64
}

// NewFileSource opens path for reading. It returns an InvalidPathError if
// the path does not exist or is not a regular file.
func NewFileSource(path string) (*FileSource, error) {
	info, err := os.Stat(path)

	if err != nil || !info.Mode().IsRegular() {
		return nil, InvalidPathError{Path: path}
	}

	file, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &FileSource{
		file: file,
		size: info.Size(),
	}, nil
}

func (s *FileSource) Read(dst []byte) error {
	if err := s.Peek(dst); err != nil {
		return err
	}

	s.pos += int64(len(dst))
	return nil
}

func (s *FileSource) Peek(dst []byte) error {
	n := int64(len(dst))

	if s.pos < 0 || s.pos+n > s.size {
		return OutOfBoundsError{Offset: s.pos, Length: n, Size: s.size}
	}

	if n == 0 {
		return nil
	}

	if _, err := s.file.ReadAt(dst, s.pos); err != nil {
		return fmt.Errorf("failed to read %d bytes at offset %d: %w", n, s.pos, err)
	}

	return nil
}

// Seek is an unchecked assignment. Seeking out of bounds is not an error;
// the next read at such a position is.
func (s *FileSource) Seek(offset int64) {
	s.pos = offset
}

func (s *FileSource) Tell() int64 {
	return s.pos
}

func (s *FileSource) Size() int64 {
	return s.size
}

func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}

	file := s.file
	s.file = nil

	return file.Close()
}
