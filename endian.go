package binstream

import "unsafe"

// Scalar enumerates the fixed-size fundamental types whose byte order may
// be reversed. Big-endian reads and writes are restricted to these types;
// compound fixed-layout types have no single element order to reverse.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// nativeLittleEndian is probed once at init. 0x0001 stores its low byte
// first on a little-endian host.
// nolint: gochecknoglobals
var nativeLittleEndian = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

// needsReverse reports whether a value of the given element size must have
// its bytes reversed to satisfy the requested order. Single-byte elements
// are order-invariant.
func needsReverse(bigEndian bool, elemSize int) bool {
	return elemSize > 1 && bigEndian == nativeLittleEndian
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// reverseElements reverses every size-byte element of buf independently.
// len(buf) must be a multiple of size.
func reverseElements(buf []byte, size int) {
	for off := 0; off < len(buf); off += size {
		reverseBytes(buf[off : off+size])
	}
}

// rawBytes exposes the memory of *v as a byte slice. T must be a
// fixed-layout type: flat, bitwise copyable, no pointers, no padding
// ambiguity.
func rawBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// rawSliceBytes exposes the memory of a whole slice as bytes.
func rawSliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), uintptr(len(s))*unsafe.Sizeof(s[0]))
}

func sizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
