package binstream

// Typed reads are package-level functions because Go methods cannot take
// type parameters. Little-endian is the default order; big-endian variants
// carry a BE suffix and are limited to Scalar element types.
//
// T in the little-endian family must be a fixed-layout type: flat, bitwise
// copyable, no pointers, no padding ambiguity. That precondition is the
// caller's to uphold.

// Read reads one little-endian value of type T and advances the cursor by
// the size of T.
func Read[T any](r *Reader) (T, error) {
	return readOne[T](r.source.Read, false)
}

// ReadBE reads one big-endian value of type T.
func ReadBE[T Scalar](r *Reader) (T, error) {
	return readOne[T](r.source.Read, true)
}

// ReadSlice fills dst with len(dst) contiguous little-endian values. Byte
// order correction is applied to each element independently, never to the
// slice as a whole.
func ReadSlice[T any](r *Reader, dst []T) error {
	return readMany(r.source.Read, dst, false)
}

// ReadSliceBE fills dst with len(dst) contiguous big-endian values.
func ReadSliceBE[T Scalar](r *Reader, dst []T) error {
	return readMany(r.source.Read, dst, true)
}

// Peek is Read without the cursor advance.
func Peek[T any](r *Reader) (T, error) {
	return readOne[T](r.source.Peek, false)
}

// PeekBE is ReadBE without the cursor advance.
func PeekBE[T Scalar](r *Reader) (T, error) {
	return readOne[T](r.source.Peek, true)
}

// PeekSlice is ReadSlice without the cursor advance.
func PeekSlice[T any](r *Reader, dst []T) error {
	return readMany(r.source.Peek, dst, false)
}

// PeekSliceBE is ReadSliceBE without the cursor advance.
func PeekSliceBE[T Scalar](r *Reader, dst []T) error {
	return readMany(r.source.Peek, dst, true)
}

// Sink reads and discards one value of type T, advancing the cursor while
// still exercising bounds and coverage checks.
func Sink[T any](r *Reader) error {
	return SinkN[T](r, 1)
}

// SinkN reads and discards n contiguous values of type T.
func SinkN[T any](r *Reader, n int) error {
	buf := make([]byte, n*sizeOf[T]())
	return r.source.Read(buf)
}

func readOne[T any](transfer func([]byte) error, bigEndian bool) (T, error) {
	var value T
	buf := rawBytes(&value)

	if err := transfer(buf); err != nil {
		var zero T
		return zero, err
	}

	if needsReverse(bigEndian, len(buf)) {
		reverseBytes(buf)
	}

	return value, nil
}

func readMany[T any](transfer func([]byte) error, dst []T, bigEndian bool) error {
	buf := rawSliceBytes(dst)

	if err := transfer(buf); err != nil {
		return err
	}

	if size := sizeOf[T](); needsReverse(bigEndian, size) {
		reverseElements(buf, size)
	}

	return nil
}
