// Package verify judges post-execution kernel output against expected words,
// bit-exact for integers and ULP-tolerant for floats.
package verify

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Mode selects how output words are decoded for comparison
type Mode uint8

const (
	// Integer compares words for exact equality
	Integer Mode = iota
	// Float decodes words as IEEE-754 binary32 and compares within a ULP tolerance
	Float
)

func (m Mode) String() string {
	switch m {
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Kind categorizes a verification failure
type Kind string

const (
	KindLength  Kind = "length_mismatch"
	KindInteger Kind = "integer_mismatch"
	KindFloat   Kind = "float_mismatch"
)

var (
	// ErrLengthMismatch matches structural failures where the sequences differ in length
	ErrLengthMismatch = errors.New("verify: length mismatch")
	// ErrValueMismatch matches element failures of either mode
	ErrValueMismatch = errors.New("verify: value mismatch")
)

// Mismatch describes one verification failure
type Mismatch struct {
	Kind  Kind
	Case  string // owning kernel
	Param int    // parameter index of the output buffer

	// Element failures
	Index    int
	Expected uint32
	Actual   uint32
	ULP      uint64 // KindFloat only; 0 if either side is NaN or infinite
	Finite   bool   // whether ULP is meaningful

	// Length failures
	ExpectedLen int
	ActualLen   int
}

// Error implements the error interface
func (m *Mismatch) Error() string {
	prefix := fmt.Sprintf("%s: param %d", m.Case, m.Param)
	switch m.Kind {
	case KindLength:
		return fmt.Sprintf("%s: expected %d words, got %d", prefix, m.ExpectedLen, m.ActualLen)
	case KindInteger:
		return fmt.Sprintf("%s[%d]: expected %d, got %d", prefix, m.Index,
			int32(m.Expected), int32(m.Actual))
	case KindFloat:
		e, a := math.Float32frombits(m.Expected), math.Float32frombits(m.Actual)
		if !m.Finite {
			return fmt.Sprintf("%s[%d]: expected %g, got %g", prefix, m.Index, e, a)
		}
		return fmt.Sprintf("%s[%d]: expected %g, got %g (%d ULP)", prefix, m.Index, e, a, m.ULP)
	default:
		return prefix + ": mismatch"
	}
}

// Is matches the sentinel errors
func (m *Mismatch) Is(target error) bool {
	switch target {
	case ErrLengthMismatch:
		return m.Kind == KindLength
	case ErrValueMismatch:
		return m.Kind == KindInteger || m.Kind == KindFloat
	}
	return false
}

// Options controls a single output comparison
type Options struct {
	Mode      Mode
	Tolerance uint32 // in ULPs, Float mode only
	Case      string
	Param     int
}

// Result is the outcome of comparing one output buffer
type Result struct {
	Mismatches []*Mismatch
	// MaxULP is the largest finite ULP distance seen between paired elements
	MaxULP uint64
}

// OK reports whether the output matched
func (r Result) OK() bool {
	return len(r.Mismatches) == 0
}

// Err combines all mismatches into one error, nil if the output matched
func (r Result) Err() error {
	var err error
	for _, m := range r.Mismatches {
		err = multierr.Append(err, m)
	}
	return err
}

// Compare checks actual against expected element-wise. Sequences of different
// length produce a single KindLength mismatch; they are never truncated or padded.
func Compare(actual, expected []uint32, opts Options) Result {
	if len(actual) != len(expected) {
		return Result{Mismatches: []*Mismatch{{
			Kind:        KindLength,
			Case:        opts.Case,
			Param:       opts.Param,
			ExpectedLen: len(expected),
			ActualLen:   len(actual),
		}}}
	}

	var res Result
	for i := range expected {
		e, a := expected[i], actual[i]
		var ulp uint64
		var finite bool
		if opts.Mode == Float {
			ulp, finite = ULPDistance(math.Float32frombits(e), math.Float32frombits(a))
			if finite && ulp > res.MaxULP {
				res.MaxULP = ulp
			}
		}
		if WordsEqual(a, e, opts.Tolerance, opts.Mode) {
			continue
		}
		m := &Mismatch{
			Kind:     KindInteger,
			Case:     opts.Case,
			Param:    opts.Param,
			Index:    i,
			Expected: e,
			Actual:   a,
		}
		if opts.Mode == Float {
			m.Kind = KindFloat
			m.ULP, m.Finite = ulp, finite
		}
		res.Mismatches = append(res.Mismatches, m)
	}
	return res
}
