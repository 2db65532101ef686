package binstream

// Source is a finite, addressable extent of bytes with a movable cursor.
// A Reader draws all of its bytes from exactly one Source.
//
// The cursor may legally point past the end of the extent: Seek never
// fails. Only a Read or Peek that would cross the extent boundary fails.
type Source interface {
	// Read copies exactly len(dst) bytes starting at the cursor into dst
	// and advances the cursor by len(dst). On failure the cursor does not
	// move and dst must not be trusted.
	Read(dst []byte) error

	// Peek is Read without the cursor advance.
	Peek(dst []byte) error

	// Seek moves the cursor to offset unconditionally. Offsets outside
	// [0, Size()] are accepted; a later Read or Peek reports them.
	Seek(offset int64)

	// Tell returns the current cursor position.
	Tell() int64

	// Size returns the total extent in bytes. It is fixed at construction.
	Size() int64

	// Close releases the backing resource. The source must not be used
	// afterwards.
	Close() error
}
