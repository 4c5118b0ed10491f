// Package flags implements bit-field operations over fixed-width unsigned integers.
package flags

// Bits is any fixed-width unsigned integer used as a bit-field
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Add returns the bit-field with the additional flag set
func Add[T Bits](orig, flag T) T {
	return orig | flag
}

// Remove returns the bit-field with the flag cleared
func Remove[T Bits](orig, flag T) T {
	return orig &^ flag
}

// Has reports whether every bit of flag is set in field
func Has[T Bits](field, flag T) bool {
	return field&flag == flag
}

// Intersect returns a bit-field containing only the flags set in both operands
func Intersect[T Bits](a, b T) T {
	return a & b
}

// Combine returns a bit-field containing all flags set in either operand
func Combine[T Bits](a, b T) T {
	return a | b
}
