// File: kernel/parameter.go
// Kernel arguments: the scalar/buffer variant that maps 1:1 onto the kernel's
// formal argument list.

package kernel

import (
	"fmt"

	"github.com/notargets/emucheck/encode"
)

// Parameter is one kernel argument. It is either a Scalar, passed by value,
// or a Buffer, passed by reference. The interface is sealed; no other
// implementations exist.
type Parameter interface {
	// Len returns the number of words the argument occupies
	Len() int
	isParameter()
}

// Scalar is a single word passed by value
type Scalar struct {
	word uint32
}

// ScalarOf encodes a 4-byte host value as a scalar argument
func ScalarOf[T encode.Word32](v T) Scalar {
	return Scalar{word: encode.Scalar(v)}
}

// Word returns the encoded value
func (s Scalar) Word() uint32 { return s.word }

func (Scalar) Len() int     { return 1 }
func (Scalar) isParameter() {}

func (s Scalar) String() string {
	return fmt.Sprintf("scalar(0x%08x)", s.word)
}

// Buffer is an immutable ordered word sequence passed by reference
type Buffer struct {
	words []uint32
}

// BufferOf encodes a homogeneous 4-byte-element slice as a buffer argument
func BufferOf[T encode.Word32](values []T) Buffer {
	return Buffer{words: encode.Buffer(values)}
}

// Zeros returns a zero-filled buffer of n words, typically an output buffer
func Zeros(n int) Buffer {
	return Buffer{words: make([]uint32, n)}
}

// Words returns a copy of the buffer contents
func (b Buffer) Words() []uint32 {
	out := make([]uint32, len(b.words))
	copy(out, b.words)
	return out
}

// Word returns the i-th word
func (b Buffer) Word(i int) uint32 { return b.words[i] }

func (b Buffer) Len() int     { return len(b.words) }
func (Buffer) isParameter() {}

func (b Buffer) String() string {
	return fmt.Sprintf("buffer[%d]", len(b.words))
}
