// Package emulator is the contract between the test corpus and the external
// kernel emulator that compiles and executes a kernel.
package emulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/notargets/emucheck/kernel"
)

// ErrCycleBudgetExceeded is returned (wrapped) by an emulator that stopped a kernel
// because it ran past its EmulationData.MaxCycles
var ErrCycleBudgetExceeded = errors.New("emulator: execution cycle budget exceeded")

// Stats reports what an execution consumed
type Stats struct {
	Cycles uint32
}

// Emulator executes one kernel invocation. Buffer results are written into the
// invocation's memory. Emulators must enforce the cycle budget themselves,
// checking it while executing, and fail with ErrCycleBudgetExceeded rather
// than hang.
type Emulator interface {
	Emulate(ctx context.Context, inv *Invocation) (Stats, error)
}

// Func adapts an ordinary function to the Emulator interface
type Func func(ctx context.Context, inv *Invocation) (Stats, error)

// Emulate calls f(ctx, inv)
func (f Func) Emulate(ctx context.Context, inv *Invocation) (Stats, error) {
	return f(ctx, inv)
}

// CheckBudget is the cooperative check an emulator performs during execution
func CheckBudget(used, budget uint32) error {
	if used > budget {
		return fmt.Errorf("%w: used %d of %d cycles", ErrCycleBudgetExceeded, used, budget)
	}
	return nil
}

// Invocation binds an EmulationData to per-run storage. Every Buffer parameter
// gets its own mutable copy, so the emulator writes results into memory the test
// reads back while the EmulationData itself stays untouched.
type Invocation struct {
	Data   kernel.EmulationData
	memory map[int][]uint32
}

// NewInvocation allocates fresh storage for every buffer parameter of data
func NewInvocation(data kernel.EmulationData) *Invocation {
	inv := &Invocation{
		Data:   data,
		memory: make(map[int][]uint32),
	}
	for i, p := range data.Params {
		if b, ok := p.(kernel.Buffer); ok {
			inv.memory[i] = b.Words()
		}
	}
	return inv
}

// NumArgs returns the number of kernel arguments
func (inv *Invocation) NumArgs() int {
	return len(inv.Data.Params)
}

// Scalar returns the by-value word of argument i
func (inv *Invocation) Scalar(i int) (uint32, bool) {
	s, ok := inv.Data.ScalarAt(i)
	return s.Word(), ok
}

// Memory returns the storage backing buffer argument i. Writes through the
// returned slice are the kernel's output.
func (inv *Invocation) Memory(i int) ([]uint32, bool) {
	m, ok := inv.memory[i]
	return m, ok
}

// Budget returns the cycle budget of the invocation
func (inv *Invocation) Budget() uint32 {
	return inv.Data.MaxCycles
}
