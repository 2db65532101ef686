package convert

import (
	"unsafe"
)

func BytesToString(buf []byte) string {
	// From strings.Builder.String()
	return *(*string)(unsafe.Pointer(&buf))
}
