package encode

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroStep is returned when a non-empty range has a zero step
	ErrZeroStep = errors.New("encode: range step is zero")
	// ErrNaNStep is returned when a float range has a NaN step
	ErrNaNStep = errors.New("encode: range step is NaN")
	// ErrWrongDirection is returned when the step moves away from the end
	ErrWrongDirection = errors.New("encode: range step points away from end")
	// ErrUnreachableEnd is returned when stepping never lands exactly on the end
	ErrUnreachableEnd = errors.New("encode: range end is not reachable by exact stepping")
)

// Range returns start, start+step, ... up to but excluding end.
// The running value must land exactly on end; overshooting it, wrapping around
// or failing to advance is reported as ErrUnreachableEnd.
func Range[T Word32](start, end, step T) ([]T, error) {
	var zero T
	if start == end {
		return []T{}, nil
	}
	if step == zero {
		return nil, ErrZeroStep
	}
	if !(step > zero) && !(step < zero) {
		return nil, ErrNaNStep
	}
	var ascending bool
	switch {
	case end > start:
		ascending = true
	case end < start:
		ascending = false
	default:
		// NaN bounds
		return nil, fmt.Errorf("%w: %v and %v are unordered", ErrUnreachableEnd, start, end)
	}
	if ascending != (step > zero) {
		return nil, fmt.Errorf("%w: start %v, end %v, step %v", ErrWrongDirection, start, end, step)
	}

	var out []T
	for v := start; v != end; {
		if ascending && v > end || !ascending && v < end {
			return nil, fmt.Errorf("%w: stepped past %v at %v", ErrUnreachableEnd, end, v)
		}
		out = append(out, v)
		next := v + step
		if ascending && !(next > v) || !ascending && !(next < v) {
			return nil, fmt.Errorf("%w: no progress from %v with step %v", ErrUnreachableEnd, v, step)
		}
		v = next
	}
	return out, nil
}

// MustRange is like Range but panics on error. It is meant for literal test tables,
// where an unreachable end is a construction-time bug.
func MustRange[T Word32](start, end, step T) []T {
	out, err := Range(start, end, step)
	if err != nil {
		panic(err)
	}
	return out
}

// Count returns start, start+1, ... excluding end
func Count[T Word32](start, end T) []T {
	return MustRange(start, end, 1)
}
