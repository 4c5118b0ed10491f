// Package registry holds the ordered, immutable set of kernel test cases.
package registry

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
)

// Registry is an ordered sequence of validated cases. It is never modified
// after New returns and may be read from any number of goroutines.
type Registry struct {
	cases []Case
}

// New validates every case and returns them as a registry in the given order.
// All invalid cases are reported together.
func New(cases ...Case) (*Registry, error) {
	var err error
	for i, c := range cases {
		if verr := c.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("case %d: %w", i, verr))
		}
	}
	if err != nil {
		return nil, err
	}
	owned := make([]Case, len(cases))
	copy(owned, cases)
	return &Registry{cases: owned}, nil
}

// MustNew is New for literal tables; an invalid case panics
func MustNew(cases ...Case) *Registry {
	r, err := New(cases...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Len() int { return len(r.cases) }

// At returns the i-th case in insertion order
func (r *Registry) At(i int) Case { return r.cases[i] }

// Cases returns a copy of the case list
func (r *Registry) Cases() []Case {
	out := make([]Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// All iterates the cases in insertion order
func (r *Registry) All() iter.Seq2[int, Case] {
	return func(yield func(int, Case) bool) {
		for i, c := range r.cases {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Filter returns a registry holding the cases keep accepts, in the same order
func (r *Registry) Filter(keep func(Case) bool) *Registry {
	var out []Case
	for _, c := range r.cases {
		if keep(c) {
			out = append(out, c)
		}
	}
	return &Registry{cases: out}
}
