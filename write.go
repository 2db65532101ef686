package binstream

// Write writes one value of type T in little-endian order. T must be a
// fixed-layout type, as for Read.
func Write[T any](w *Writer, value T) error {
	buf := rawBytes(&value)

	if needsReverse(false, len(buf)) {
		reverseBytes(buf)
	}

	return w.sink.Write(buf)
}

// WriteBE writes one value of type T in big-endian order.
func WriteBE[T Scalar](w *Writer, value T) error {
	buf := rawBytes(&value)

	if needsReverse(true, len(buf)) {
		reverseBytes(buf)
	}

	return w.sink.Write(buf)
}

// WriteSlice writes len(src) contiguous little-endian values. src is never
// modified.
func WriteSlice[T any](w *Writer, src []T) error {
	return writeMany(w, src, false)
}

// WriteSliceBE writes len(src) contiguous big-endian values.
func WriteSliceBE[T Scalar](w *Writer, src []T) error {
	return writeMany(w, src, true)
}

func writeMany[T any](w *Writer, src []T, bigEndian bool) error {
	raw := rawSliceBytes(src)
	size := sizeOf[T]()

	if !needsReverse(bigEndian, size) {
		return w.sink.Write(raw)
	}

	// Reverse into a scratch buffer so the caller's slice stays intact.
	buf := make([]byte, len(raw))
	copy(buf, raw)
	reverseElements(buf, size)

	return w.sink.Write(buf)
}
