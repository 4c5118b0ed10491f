// File: registry/case.go
// A test case pairs one kernel invocation with the output it must produce.

package registry

import (
	"errors"
	"fmt"

	"github.com/notargets/emucheck/flags"
	"github.com/notargets/emucheck/kernel"
	"github.com/notargets/emucheck/verify"
)

// Flags mark cases with harness-level properties
type Flags uint8

const (
	// Disabled cases are kept in the corpus but never executed
	Disabled Flags = 1 << iota
)

var (
	ErrNotBuffer         = errors.New("expected result does not refer to a buffer parameter")
	ErrDuplicateIndex    = errors.New("duplicate expected result index")
	ErrIntegerTolerance  = errors.New("tolerance is only allowed in float mode")
	ErrExpectationLength = errors.New("expected result does not fit its buffer")
	ErrUnknownMode       = errors.New("unknown verification mode")
)

// Expectation is the output one buffer parameter must hold after execution.
// An exact expectation covers the whole buffer; a prefix expectation covers
// only its first len(Words) words and the rest of the buffer is not checked.
type Expectation struct {
	Index  int
	Words  []uint32
	Prefix bool
}

// Expect builds an expectation covering the whole buffer at index
func Expect(index int, words []uint32) Expectation {
	return Expectation{Index: index, Words: words}
}

// ExpectPrefix builds an expectation covering the leading words of the buffer at index
func ExpectPrefix(index int, words []uint32) Expectation {
	return Expectation{Index: index, Words: words, Prefix: true}
}

func (e Expectation) clone() Expectation {
	e.Words = append([]uint32(nil), e.Words...)
	return e
}

// Case is one corpus entry. It is immutable once built.
type Case struct {
	data      kernel.EmulationData
	mode      verify.Mode
	tolerance uint32
	expected  []Expectation
	flags     Flags
	reason    string
}

// NewCase builds a case. Validate reports whether it is well formed.
func NewCase(data kernel.EmulationData, mode verify.Mode, tolerance uint32,
	expected ...Expectation) Case {
	c := Case{
		data:      data.Clone(),
		mode:      mode,
		tolerance: tolerance,
		expected:  make([]Expectation, len(expected)),
	}
	for i, e := range expected {
		c.expected[i] = e.clone()
	}
	return c
}

// Integer builds a bit-exact integer case
func Integer(data kernel.EmulationData, expected ...Expectation) Case {
	return NewCase(data, verify.Integer, 0, expected...)
}

// Float builds a float case compared within tolerance ULPs
func Float(data kernel.EmulationData, tolerance uint32, expected ...Expectation) Case {
	return NewCase(data, verify.Float, tolerance, expected...)
}

// Disable returns a copy of c that the harness skips, recording why
func (c Case) Disable(reason string) Case {
	c.flags = flags.Add(c.flags, Disabled)
	c.reason = reason
	return c
}

func (c Case) Data() kernel.EmulationData { return c.data.Clone() }
func (c Case) Name() string               { return c.data.Name }
func (c Case) Mode() verify.Mode          { return c.mode }
func (c Case) Tolerance() uint32          { return c.tolerance }
func (c Case) Flags() Flags               { return c.flags }
func (c Case) Reason() string             { return c.reason }

// Disabled reports whether the harness must skip c
func (c Case) Disabled() bool {
	return flags.Has(c.flags, Disabled)
}

// Expected returns copies of the expectations in index order of declaration
func (c Case) Expected() []Expectation {
	out := make([]Expectation, len(c.expected))
	for i, e := range c.expected {
		out[i] = e.clone()
	}
	return out
}

// Outputs returns the parameter indices that are verified
func (c Case) Outputs() []int {
	out := make([]int, len(c.expected))
	for i, e := range c.expected {
		out[i] = e.Index
	}
	return out
}

// Access returns how the kernel uses parameter i from the test's point of view
func (c Case) Access(i int) kernel.Access {
	p, ok := c.data.Param(i)
	if !ok {
		return kernel.NoAccess
	}
	a := kernel.Read
	if _, isBuffer := p.(kernel.Buffer); isBuffer {
		for _, e := range c.expected {
			if e.Index == i {
				a = a.With(kernel.Write)
			}
		}
	}
	return a
}

func (c Case) String() string {
	return fmt.Sprintf("%s [%s, %d ULP]", c.data, c.mode, c.tolerance)
}

// Validate checks that every expectation names a distinct buffer parameter it
// fits in and that only float cases carry a tolerance.
func (c Case) Validate() error {
	switch c.mode {
	case verify.Integer:
		if c.tolerance != 0 {
			return fmt.Errorf("%s: %w (got %d ULP)", c.data.Name, ErrIntegerTolerance, c.tolerance)
		}
	case verify.Float:
	default:
		return fmt.Errorf("%s: %w %s", c.data.Name, ErrUnknownMode, c.mode)
	}
	seen := make(map[int]bool, len(c.expected))
	for _, e := range c.expected {
		if seen[e.Index] {
			return fmt.Errorf("%s: %w %d", c.data.Name, ErrDuplicateIndex, e.Index)
		}
		seen[e.Index] = true
		b, ok := c.data.BufferAt(e.Index)
		if !ok {
			return fmt.Errorf("%s: param %d: %w", c.data.Name, e.Index, ErrNotBuffer)
		}
		if (e.Prefix && len(e.Words) > b.Len()) || (!e.Prefix && len(e.Words) != b.Len()) {
			return fmt.Errorf("%s: param %d: %w: %d words for a %d-word buffer",
				c.data.Name, e.Index, ErrExpectationLength, len(e.Words), b.Len())
		}
	}
	return nil
}
