package emulator

import (
	"context"
	"errors"
	"testing"

	"github.com/notargets/emucheck/kernel"
	"github.com/notargets/emucheck/workgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fibonacciData() kernel.EmulationData {
	return kernel.NewEmulationData("example/fibonacci.cl", "fibonacci", workgroup.Default(),
		kernel.DefaultMaxCycles,
		kernel.ScalarOf(uint32(1)), kernel.ScalarOf(uint32(1)), kernel.Zeros(10))
}

// fibonacci computes the kernel on the host, charging one cycle per element
var fibonacci = Func(func(ctx context.Context, inv *Invocation) (Stats, error) {
	a, _ := inv.Scalar(0)
	b, _ := inv.Scalar(1)
	out, ok := inv.Memory(2)
	if !ok {
		return Stats{}, errors.New("argument 2 is not a buffer")
	}
	var cycles uint32
	for i := range out {
		cycles++
		if err := CheckBudget(cycles, inv.Budget()); err != nil {
			return Stats{Cycles: cycles}, err
		}
		a, b = b, a+b
		out[i] = b
	}
	return Stats{Cycles: cycles}, nil
})

func TestInvocation(t *testing.T) {
	data := fibonacciData()
	inv := NewInvocation(data)
	assert.Equal(t, 3, inv.NumArgs())

	_, ok := inv.Memory(0)
	assert.False(t, ok, "scalars have no memory")
	_, ok = inv.Scalar(2)
	assert.False(t, ok, "buffers are not scalars")

	stats, err := fibonacci.Emulate(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), stats.Cycles)

	out, ok := inv.Memory(2)
	require.True(t, ok)
	assert.Equal(t, []uint32{2, 3, 5, 8, 13, 21, 34, 55, 89, 144}, out)

	b, _ := data.BufferAt(2)
	assert.Equal(t, make([]uint32, 10), b.Words(), "emulation data is never modified")

	again := NewInvocation(data)
	fresh, _ := again.Memory(2)
	assert.Equal(t, make([]uint32, 10), fresh, "each invocation gets fresh storage")
}

func TestCycleBudget(t *testing.T) {
	assert.NoError(t, CheckBudget(10, 10))
	err := CheckBudget(11, 10)
	assert.ErrorIs(t, err, ErrCycleBudgetExceeded)
	assert.EqualError(t, err, "emulator: execution cycle budget exceeded: used 11 of 10 cycles")

	data := fibonacciData()
	data.MaxCycles = 4
	_, err = fibonacci.Emulate(context.Background(), NewInvocation(data))
	assert.ErrorIs(t, err, ErrCycleBudgetExceeded)
}
