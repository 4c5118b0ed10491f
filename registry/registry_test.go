package registry

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/notargets/emucheck/encode"
	"github.com/notargets/emucheck/kernel"
	"github.com/notargets/emucheck/verify"
	"github.com/notargets/emucheck/workgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func find(t *testing.T, r *Registry, name string) Case {
	t.Helper()
	for _, c := range r.All() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("case %s not found", name)
	return Case{}
}

func TestCorpusShape(t *testing.T) {
	r := Corpus(DefaultRoot)
	assert.Equal(t, 78, r.Len())

	var integer, float, disabled int
	for _, c := range r.All() {
		switch c.Mode() {
		case verify.Integer:
			integer++
		case verify.Float:
			float++
		}
		if c.Disabled() {
			disabled++
			assert.Equal(t, "test_instructions", c.Name())
			assert.NotEmpty(t, c.Reason())
		}
		assert.NoError(t, c.Validate(), c.Name())
	}
	assert.Equal(t, 16, integer)
	assert.Equal(t, 62, float)
	assert.Equal(t, 2, disabled)

	// integer, then float, then math, each in declaration order
	assert.Equal(t, "fibonacci", r.At(0).Name())
	assert.Equal(t, "test_select", r.At(15).Name())
	assert.Equal(t, "test_instructions", r.At(16).Name())
	assert.Equal(t, "test_acos", r.At(29).Name())
	assert.Equal(t, "test_trunc", r.At(r.Len()-1).Name())
}

func TestFibonacci(t *testing.T) {
	c := find(t, Corpus(DefaultRoot), "fibonacci")
	data := c.Data()
	assert.Equal(t, "example/fibonacci.cl", data.Source)
	assert.Equal(t, workgroup.Default(), data.Config)
	assert.Equal(t, kernel.DefaultMaxCycles, data.MaxCycles)
	require.Len(t, data.Params, 3)

	s, ok := data.ScalarAt(0)
	require.True(t, ok)
	assert.Equal(t, uint32(1), s.Word())
	out, ok := data.BufferAt(2)
	require.True(t, ok)
	assert.Equal(t, make([]uint32, 10), out.Words())

	assert.Equal(t, verify.Integer, c.Mode())
	assert.Zero(t, c.Tolerance())
	exp := c.Expected()
	require.Len(t, exp, 1)
	assert.Equal(t, 2, exp[0].Index)
	assert.False(t, exp[0].Prefix)
	assert.Equal(t, []uint32{2, 3, 5, 8, 13, 21, 34, 55, 89, 144}, exp[0].Words)
}

func TestSubSat(t *testing.T) {
	c := find(t, Corpus(DefaultRoot), "test_sub_sat_int")
	data := c.Data()
	assert.Equal(t, [3]uint32{4, 1, 1}, data.Config.LocalSizes)
	assert.Equal(t, [3]uint32{1, 1, 1}, data.Config.NumGroups)
	assert.Equal(t, "testing/OpenCL-CTS/sub_sat.cl", data.Source)

	exp := c.Expected()
	require.Len(t, exp, 1)
	assert.Equal(t, 2, exp[0].Index)
	assert.Equal(t, []int32{math.MinInt32, math.MaxInt32, math.MinInt32, math.MaxInt32},
		encode.DecodeBuffer[int32](exp[0].Words))
}

func TestSqrt(t *testing.T) {
	c := find(t, Corpus(DefaultRoot), "test_sqrt")
	assert.Equal(t, verify.Float, c.Mode())
	assert.Equal(t, uint32(4), c.Tolerance())
	assert.Equal(t, uint32(12), c.Data().Config.LocalSizes[0])

	exp := c.Expected()
	require.Len(t, exp, 1)
	assert.Equal(t, 1, exp[0].Index)
	got := encode.DecodeBuffer[float32](exp[0].Words)
	require.Len(t, got, 12)
	for i, v := range got {
		assert.Equal(t, float32(math.Sqrt(float64(i))), v)
	}
}

func TestSpecialValues(t *testing.T) {
	r := Corpus(DefaultRoot)

	ceil := encode.DecodeBuffer[float32](find(t, r, "test_ceil").Expected()[0].Words)
	assert.True(t, math.Signbit(float64(ceil[3])), "ceil(-0.9) is -0")
	assert.True(t, math.Signbit(float64(ceil[4])))
	assert.False(t, math.Signbit(float64(ceil[5])))

	test1 := find(t, r, "test1").Expected()
	require.Len(t, test1, 2)
	first := encode.DecodeBuffer[float32](test1[0].Words)
	require.Len(t, first, 14)
	assert.True(t, math.Signbit(float64(first[0])))
	assert.Equal(t, float32(-13), first[13])

	log := encode.DecodeBuffer[float32](find(t, r, "test_log").Expected()[0].Words)
	assert.True(t, math.IsInf(float64(log[0]), -1))
	assert.Equal(t, uint32(8192), find(t, r, "test_lgamma").Tolerance())
}

func TestCorpusRoot(t *testing.T) {
	c := Corpus("/opt/kernels").At(0)
	assert.Equal(t, "/opt/kernels/example/fibonacci.cl", c.Data().Source)
}

func TestDoubledBudget(t *testing.T) {
	r := Corpus(DefaultRoot)
	for _, name := range []string{"test4", "test8", "test9", "test10", "test5"} {
		assert.Equal(t, 2*kernel.DefaultMaxCycles, find(t, r, name).Data().MaxCycles, name)
	}
	assert.Equal(t, kernel.DefaultMaxCycles, find(t, r, "test11").Data().MaxCycles)
}

func TestValidate(t *testing.T) {
	data := kernel.NewEmulationData("k.cl", "k", workgroup.Default(), kernel.DefaultMaxCycles,
		kernel.ScalarOf(int32(1)), kernel.Zeros(4))

	tests := []struct {
		name string
		c    Case
		err  error
	}{
		{"valid", Integer(data, Expect(1, make([]uint32, 4))), nil},
		{"valid prefix", Float(data, 4, ExpectPrefix(1, make([]uint32, 2))), nil},
		{"scalar index", Integer(data, Expect(0, []uint32{1})), ErrNotBuffer},
		{"out of range", Integer(data, Expect(2, []uint32{1})), ErrNotBuffer},
		{"negative index", Integer(data, Expect(-1, []uint32{1})), ErrNotBuffer},
		{"duplicate", Integer(data, Expect(1, make([]uint32, 4)), Expect(1, make([]uint32, 4))), ErrDuplicateIndex},
		{"integer tolerance", NewCase(data, verify.Integer, 1, Expect(1, make([]uint32, 4))), ErrIntegerTolerance},
		{"short exact", Integer(data, Expect(1, make([]uint32, 3))), ErrExpectationLength},
		{"long prefix", Integer(data, ExpectPrefix(1, make([]uint32, 5))), ErrExpectationLength},
		{"unknown mode", NewCase(data, verify.Mode(7), 0), ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, strings.HasPrefix(err.Error(), "k: "), err.Error())
		})
	}
}

func TestNewReportsEveryInvalidCase(t *testing.T) {
	data := kernel.NewEmulationData("k.cl", "k", workgroup.Default(), kernel.DefaultMaxCycles, kernel.Zeros(1))
	good := Integer(data, Expect(0, []uint32{1}))
	bad := Integer(data, Expect(3, []uint32{1}))

	r, err := New(good, bad, good, bad)
	assert.Nil(t, r)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.True(t, errors.Is(err, ErrNotBuffer))
	assert.Contains(t, err.Error(), "case 1:")
	assert.Contains(t, err.Error(), "case 3:")

	assert.Panics(t, func() { MustNew(bad) })
	assert.NotPanics(t, func() { MustNew() })
}

func TestImmutability(t *testing.T) {
	words := []uint32{1, 2}
	data := kernel.NewEmulationData("k.cl", "k", workgroup.Default(), kernel.DefaultMaxCycles, kernel.Zeros(2))
	c := Integer(data, Expect(0, words))
	words[0] = 99
	assert.Equal(t, []uint32{1, 2}, c.Expected()[0].Words, "case owns its expectations")

	exp := c.Expected()
	exp[0].Words[1] = 99
	assert.Equal(t, []uint32{1, 2}, c.Expected()[0].Words, "accessor returns copies")

	d := c.Data()
	d.Params[0] = kernel.ScalarOf(uint32(5))
	_, isBuffer := c.Data().BufferAt(0)
	assert.True(t, isBuffer, "data accessor returns a copy")

	r := MustNew(c)
	cases := r.Cases()
	cases[0] = Case{}
	assert.Equal(t, "k", r.At(0).Name())
}

func TestFilterAndIteration(t *testing.T) {
	r := Corpus(DefaultRoot)
	ints := r.Filter(func(c Case) bool { return c.Mode() == verify.Integer })
	assert.Equal(t, 16, ints.Len())
	assert.Equal(t, "fibonacci", ints.At(0).Name())
	assert.Equal(t, 78, r.Len(), "filter leaves the source untouched")

	var seen []int
	for i := range r.All() {
		seen = append(seen, i)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestAccess(t *testing.T) {
	c := find(t, Corpus(DefaultRoot), "fibonacci")
	assert.Equal(t, kernel.Read, c.Access(0))
	assert.Equal(t, kernel.ReadWrite, c.Access(2))
	assert.Equal(t, kernel.NoAccess, c.Access(3))
	assert.Equal(t, []int{2}, c.Outputs())
}

func TestGraph(t *testing.T) {
	data := kernel.NewEmulationData("dir/k.cl", "k", workgroup.Default(), kernel.DefaultMaxCycles,
		kernel.ScalarOf(int32(1)), kernel.Zeros(2))
	r := MustNew(
		Integer(data, Expect(1, []uint32{0, 0})),
		Float(data, 1, Expect(1, []uint32{0, 0})).Disable("broken"),
	)
	g, err := r.Graph()
	require.NoError(t, err)
	// one source, two kernels, two parameters each
	assert.Equal(t, 7, g.Len())

	out, err := g.Marshal()
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "digraph corpus")
	assert.Contains(t, s, `"dir/k_cl"`)
	assert.Contains(t, s, "inout int")
	assert.Contains(t, s, "inout float")
	assert.Contains(t, s, "(disabled)")
	assert.Contains(t, s, "dashed")
}
