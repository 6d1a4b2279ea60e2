package utils

import "unsafe"

// StringAsBytes returns the bytes of s without copying them, the result should not be modified.
func StringAsBytes[T ~string](s T) []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}
