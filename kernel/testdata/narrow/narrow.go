// Package narrow declares kernel parameters over element types that are not
// four bytes wide. It must never type-check.
package narrow

import (
	"github.com/notargets/emucheck/encode"
	"github.com/notargets/emucheck/kernel"
)

var (
	Halves  = kernel.BufferOf([]int16{1, 2, 3})
	Shorts  = encode.Buffer([]uint16{1})
	Doubles = kernel.ScalarOf(float64(1))
)
