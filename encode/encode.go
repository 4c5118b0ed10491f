// Package encode packs 4-byte host values into untyped 32-bit kernel words and back.
package encode

import "unsafe"

// Word32 is the set of host types whose bit pattern fits a kernel word exactly.
// Any element type outside this set fails to compile.
type Word32 interface {
	~int32 | ~uint32 | ~float32
}

// Scalar returns the raw bit pattern of v
func Scalar[T Word32](v T) uint32 {
	return *(*uint32)(unsafe.Pointer(&v))
}

// DecodeScalar reinterprets a kernel word as T
func DecodeScalar[T Word32](w uint32) T {
	return *(*T)(unsafe.Pointer(&w))
}

// Buffer returns one word per element of values, in order
func Buffer[T Word32](values []T) []uint32 {
	words := make([]uint32, len(values))
	for i, v := range values {
		words[i] = Scalar(v)
	}
	return words
}

// DecodeBuffer reinterprets every word as T, in order
func DecodeBuffer[T Word32](words []uint32) []T {
	values := make([]T, len(words))
	for i, w := range words {
		values[i] = DecodeScalar[T](w)
	}
	return values
}

// Map applies f element-wise, preserving order and length
func Map[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
