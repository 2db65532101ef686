package binstream

// CoverageSource wraps a backend of type S and records how many times each
// byte offset has been consumed via Read. Reading an offset a second time
// fails with a DoubleReadError.
//
// Detection is post-hoc: the violation is reported after the delegate read
// already copied the data and advanced the cursor. Nothing is rolled back.
//
// Peek is deliberately untracked; non-consuming access does not count as
// coverage.
type CoverageSource[S Source] struct {
	source S
	access []uint8
}

// NewCoverageSource wraps source, taking ownership of it. The access map
// is sized to source.Size() and starts all-zero.
func NewCoverageSource[S Source](source S) *CoverageSource[S] {
	return &CoverageSource[S]{
		source: source,
		access: make([]uint8, source.Size()),
	}
}

func (c *CoverageSource[S]) Read(dst []byte) error {
	offset := c.source.Tell()

	if err := c.source.Read(dst); err != nil {
		return err
	}

	for i := offset; i < offset+int64(len(dst)); i++ {
		c.access[i]++

		if c.access[i] > 1 {
			return DoubleReadError{Offset: i}
		}
	}

	return nil
}

func (c *CoverageSource[S]) Peek(dst []byte) error {
	return c.source.Peek(dst)
}

func (c *CoverageSource[S]) Seek(offset int64) {
	c.source.Seek(offset)
}

func (c *CoverageSource[S]) Tell() int64 {
	return c.source.Tell()
}

func (c *CoverageSource[S]) Size() int64 {
	return c.source.Size()
}

func (c *CoverageSource[S]) Close() error {
	return c.source.Close()
}

func (c *CoverageSource[S]) complete() bool {
	for _, count := range c.access {
		if count == 0 {
			return false
		}
	}

	return true
}

// CompleteCoverage reports whether every byte of the reader's source has
// been read at least once. The reader must wrap a CoverageSource over
// backend S; otherwise a SourceTypeError is returned.
func CompleteCoverage[S Source](r *Reader) (bool, error) {
	source, ok := r.source.(*CoverageSource[S])

	if !ok {
		return false, SourceTypeError{Source: r.source}
	}

	return source.complete(), nil
}
