// File: registry/corpus.go
// The kernel regression corpus. Paths are relative to the kernel source root.

package registry

import (
	"math"
	"path/filepath"

	"github.com/notargets/emucheck/encode"
	"github.com/notargets/emucheck/kernel"
	"github.com/notargets/emucheck/workgroup"
)

// DefaultRoot is the kernel source root used when none is configured
const DefaultRoot = "./"

const mathSource = "testing/test_math.cl"

var (
	negZero = float32(math.Copysign(0, -1))
	piF     = float32(math.Pi)
	sqrt2   = sqrtf(2)
	sqrt3   = sqrtf(3)
)

// Corpus returns every integer, float and math case in that order
func Corpus(root string) *Registry {
	var cases []Case
	cases = append(cases, integerCases(root)...)
	cases = append(cases, floatCases(root)...)
	cases = append(cases, mathCases(root)...)
	return MustNew(cases...)
}

func integerCases(root string) []Case {
	src := func(rel string) string { return filepath.Join(root, rel) }
	const maxCycles = kernel.DefaultMaxCycles
	def := workgroup.Default()
	minInt, maxInt := int32(math.MinInt32), int32(math.MaxInt32)

	return []Case{
		Integer(kernel.NewEmulationData(src("example/fibonacci.cl"), "fibonacci", def, maxCycles,
			kernel.ScalarOf(uint32(1)), kernel.ScalarOf(uint32(1)), kernel.Zeros(10)),
			Expect(2, uwords(2, 3, 5, 8, 13, 21, 34, 55, 89, 144))),
		Integer(kernel.NewEmulationData(src("example/test.cl"), "test_llvm_ir", def, maxCycles,
			kernel.Zeros(1)),
			Expect(0, uwords(142))),
		Integer(kernel.NewEmulationData(src("example/test_instructions.cl"), "test_instructions", def, maxCycles,
			kernel.ScalarOf(uint32(2)), kernel.ScalarOf(uint32(4)),
			kernel.ScalarOf(float32(2)), kernel.ScalarOf(float32(4)),
			kernel.Zeros(32), kernel.Zeros(32)),
			ExpectPrefix(4, iwords(6, -2, 8, 0, 2, 4, 2, 2, 32, 0, 0, 6, 6, -3, 30, 3, 3, 1, 1, 0, 0, 0, 1, 1, 1, 0, 4, 8)),
		).Disable("requires v8muld support"),
		Integer(kernel.NewEmulationData(src("testing/test_struct.cl"), "test_struct", def, maxCycles,
			kernel.Zeros(20), kernel.Zeros(20)),
			ExpectPrefix(1, uwords(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42, 0))),
		Integer(kernel.NewEmulationData(src("testing/test_vector.cl"), "test_copy", def, maxCycles,
			kernel.BufferOf(encode.Count[int32](1, 17)), kernel.Zeros(32)),
			Expect(1, encode.Buffer(append(encode.Count[int32](1, 17), encode.Count[int32](1, 17)...)))),
		Integer(kernel.NewEmulationData(src("testing/test_other.cl"), "test_atomics", def, maxCycles,
			kernel.BufferOf(encode.Count[int32](1, 12)), kernel.BufferOf(encode.Count[int32](1, 12))),
			Expect(1, iwords(2, 0, 3, 5, 4, 6, 7, 8, 9, 10, 0))),
		Integer(kernel.NewEmulationData(src("testing/test_other.cl"), "test_f2i", def, maxCycles,
			kernel.ScalarOf(float32(1.0)), kernel.ScalarOf(float32(1.1)),
			kernel.ScalarOf(float32(1.5)), kernel.ScalarOf(float32(1.9)), kernel.Zeros(32)),
			ExpectPrefix(4, iwords(1, 1, 1, 1, -1, -1, -1, -1, 1, -1, 2, -1, 1, -1, 1, -2, 1, -1, 2, -2,
				1, 1, 2, 2, -1, -1, -2, -2, 1, -1))),
		Integer(kernel.NewEmulationData(src("testing/test_other.cl"), "test_global_data", def, maxCycles,
			kernel.ScalarOf(int32(1)), kernel.Zeros(2)),
			Expect(1, iwords(2, 21))),
		Integer(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test4", def, maxCycles*2,
			kernel.BufferOf(encode.Count[int32](0, 1024)), kernel.Zeros(1)),
			Expect(1, iwords(528896))),
		Integer(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test8", def, maxCycles*2,
			kernel.BufferOf(encode.Count[int32](0, 1024)), kernel.BufferOf(encode.Count[int32](0, 4096))),
			ExpectPrefix(0, iwords(0, 5, 10, 15, 20, 25, 30, 35, 40))),
		Integer(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test9", def, maxCycles*2,
			kernel.BufferOf(encode.Count[int32](0, 4096)), kernel.BufferOf(encode.Count[int32](0, 4096))),
			ExpectPrefix(0, iwords(0, 1, 2, 3, 5, 5, 6, 7, 9, 9, 10, 11, 13, 13, 14, 15))),
		Integer(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test10", def, maxCycles*2,
			kernel.BufferOf(encode.Count[int32](0, 1024)), kernel.BufferOf(encode.Count[int32](0, 1024))),
			ExpectPrefix(0, iwords(0, 5, 10, 15, 20, 25, 30, 35, 40))),
		Integer(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test11", def, maxCycles,
			kernel.BufferOf(encode.Count[int32](0, 256))),
			ExpectPrefix(0, encode.Buffer(encode.Count[int32](201, 212)))),
		Integer(kernel.NewEmulationData(src("testing/OpenCL-CTS/pointer_cast.cl"), "test_pointer_cast", def, maxCycles,
			uints(0x01020304), kernel.Zeros(1)),
			Expect(1, uwords(0x01020304))),
		Integer(kernel.NewEmulationData(src("testing/OpenCL-CTS/sub_sat.cl"), "test_sub_sat_int",
			workgroup.New(4, 1, 1, 1, 1, 1), maxCycles,
			ints(minInt, maxInt, minInt, maxInt), ints(1, -1, maxInt, minInt), kernel.Zeros(4)),
			Expect(2, iwords(minInt, maxInt, minInt, maxInt))),
		Integer(kernel.NewEmulationData(src("testing/OpenCL-CTS/uchar_compare.cl"), "test_select", def, maxCycles,
			uints(0x01020304), uints(0x04020301), kernel.Zeros(1)),
			Expect(2, uwords(0x04020301))),
	}
}

func floatCases(root string) []Case {
	src := func(rel string) string { return filepath.Join(root, rel) }
	const maxCycles = kernel.DefaultMaxCycles
	def := workgroup.Default()
	tenths := make([]float32, 21)
	for i := range tenths {
		tenths[i] = 0.1
	}
	dot3 := fwords(0.1, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 2.1, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.9)
	descending := encode.MustRange(negZero, -14, -1)

	return []Case{
		Float(kernel.NewEmulationData(src("example/test_instructions.cl"), "test_instructions", def, maxCycles,
			kernel.ScalarOf(uint32(2)), kernel.ScalarOf(uint32(4)),
			kernel.ScalarOf(float32(2)), kernel.ScalarOf(float32(4)),
			kernel.Zeros(32), kernel.Zeros(32)), 0,
			ExpectPrefix(5, fwords(6, -2, 8, 0.5, 4, 2, 2)),
		).Disable("requires v8muld support"),
		Float(kernel.NewEmulationData(src("testing/bugs/30_local_memory.cl"), "dot3",
			workgroup.New(10, 1, 1, 2, 1, 1), maxCycles,
			kernel.BufferOf(encode.Count[float32](0, 20)), kernel.BufferOf(tenths),
			kernel.Zeros(24), kernel.Zeros(16)), 0,
			ExpectPrefix(2, dot3)),
		Float(kernel.NewEmulationData(src("testing/bugs/30_local_memory.cl"), "dot3_local",
			workgroup.New(10, 1, 1, 2, 1, 1), maxCycles,
			kernel.BufferOf(encode.Count[float32](0, 20)), kernel.BufferOf(tenths), kernel.Zeros(24)), 0,
			ExpectPrefix(2, dot3)),
		Float(kernel.NewEmulationData(src("testing/bugs/33_floating_point_folding.cl"), "add_redundancy", def, maxCycles,
			floats(5)), 0,
			Expect(0, fwords(5))),
		Float(kernel.NewEmulationData(src("testing/bugs/33_floating_point_folding.cl"), "mul_redundancy", def, maxCycles,
			floats(5)), 0,
			Expect(0, fwords(0))),
		Float(kernel.NewEmulationData(src("testing/NVIDIA/VectorAdd.cl"), "VectorAdd",
			workgroup.New(12, 1, 1, 2, 1, 1), maxCycles,
			kernel.BufferOf(encode.Count[float32](0, 18)), kernel.BufferOf(encode.Count[float32](0, 18)),
			kernel.Zeros(20), kernel.ScalarOf(int32(16))), 0,
			ExpectPrefix(2, fwords(0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 0))),
		Float(kernel.NewEmulationData(src("testing/test_vector.cl"), "test_arithm", def, maxCycles,
			kernel.ScalarOf(float32(2)), kernel.BufferOf(encode.Count[float32](1, 17)), kernel.Zeros(16)), 0,
			Expect(2, encode.Buffer(encode.Count[float32](3, 19)))),
		Float(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test1", def, maxCycles,
			kernel.Zeros(1000), kernel.Zeros(1000)), 0,
			ExpectPrefix(0, encode.Buffer(descending)), ExpectPrefix(1, encode.Buffer(descending))),
		Float(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test2", def, maxCycles,
			kernel.BufferOf(encode.Count[float32](1, 10)), kernel.BufferOf(encode.Count[float32](1, 10)),
			kernel.ScalarOf(float32(7)), kernel.ScalarOf(uint32(1)), kernel.ScalarOf(uint32(6))), 0,
			Expect(0, fwords(1, 18, 30, 44, 60, 98, 7, 8, 9))),
		Float(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test3", def, maxCycles,
			kernel.BufferOf(encode.Count[float32](1, 801)), kernel.BufferOf(encode.Count[float32](1, 801)),
			kernel.ScalarOf(float32(7))), 0,
			ExpectPrefix(0, fwords(8, 18, 30, 44, 60, 98, 7, 8, 9))),
		Float(kernel.NewEmulationData(src("testing/test_vectorization.cl"), "test5", def, maxCycles*2,
			kernel.Zeros(1024)), 0,
			Expect(0, encode.Buffer(encode.Count[float32](0, 1024)))),
		Float(kernel.NewEmulationData(src("testing/OpenCL-CTS/clamp.cl"), "test_clamp",
			workgroup.New(3, 1, 1, 1, 1, 1), maxCycles,
			floats(17, 0, 3), floats(1, 1, 1), floats(5, 5, 5), kernel.Zeros(3)), 0,
			Expect(3, fwords(5, 1, 3))),
		// the entry point name is the one the kernel file has always been run with
		Float(kernel.NewEmulationData(src("testing/OpenCL-CTS/cross_product.cl"), "test_clamp", def, maxCycles,
			floats(1, 2, 3), floats(3, 4, 5), kernel.Zeros(3)), 0,
			Expect(2, fwords(-2, 4, -2))),
	}
}

func mathCases(root string) []Case {
	source := filepath.Join(root, mathSource)
	const maxCycles = kernel.DefaultMaxCycles
	unary := func(name string, size uint32, in []float32, tol uint32, out Expectation) Case {
		return Float(kernel.NewEmulationData(source, name, workgroup.New(size), maxCycles,
			kernel.BufferOf(in), kernel.Zeros(12)), tol, out)
	}
	binary := func(name string, size uint32, a, b []float32, tol uint32, out Expectation) Case {
		return Float(kernel.NewEmulationData(source, name, workgroup.New(size), maxCycles,
			kernel.BufferOf(a), kernel.BufferOf(b), kernel.Zeros(12)), tol, out)
	}
	// results for the twelve-element ranges fill the output buffer exactly
	over := func(in []float32, f func(float64) float64) []uint32 {
		return encode.Buffer(apply(in, f))
	}

	angles := []float32{0, piF / 6, piF / 4, piF / 3, piF / 2, 2 * piF / 3, 3 * piF / 4, 5 * piF / 6, piF}
	cosines := []float32{1, sqrt3 / 2, sqrt2 / 2, 0.5, 0, -0.5, -sqrt2 / 2, -sqrt3 / 2, -1}
	sines := []float32{0, 0.5, sqrt2 / 2, sqrt3 / 2, 1, sqrt3 / 2, sqrt2 / 2, 0.5, 0}
	tangents := []float32{0, sqrt3 / 3, 1, sqrt3, -sqrt3, -1, -sqrt3 / 3}
	arcTangents := []float32{0, piF / 6, piF / 4, piF / 3, 2 * piF / 3, 3 * piF / 4}
	rounding := []float32{-1.9, -1.4, -1.0, -0.9, -0.1, 0.0, 0.5, 0.7, 1.0}
	positive := encode.Count[float32](0, 12)
	centered := encode.Count[float32](-6, 6)
	sevenHalves := []float32{7.5, 7.5, 7.5, 7.5, 7.5, 7.5, 7.5, 7.5, 7.5, 7.5, 7.5, 7.5}
	minusSevenHalves := []float32{-7.5, -7.5, -7.5, -7.5}
	magnitudes := []float32{-2, 1, 14, -8}

	return []Case{
		unary("test_acos", 9, cosines, 4, ExpectPrefix(1, encode.Buffer(angles))),
		unary("test_acosh", 5, []float32{1, 0.5, 1, -0.5, -1}, 4,
			ExpectPrefix(1, fwords(0, piF/3, 0, (2*piF)/3, piF))),
		unary("test_asin", 9, sines, 4, ExpectPrefix(1, encode.Buffer(angles))),
		unary("test_atan", 7, tangents, 5, ExpectPrefix(1, encode.Buffer(arcTangents))),
		binary("test_atan2", 7, []float32{0, sqrt3, 1, sqrt3, -sqrt3, -1, -sqrt3}, []float32{1, 3, 1, 1, 1, 1, 3}, 6,
			ExpectPrefix(2, encode.Buffer(arcTangents))),
		unary("test_cbrt", 12, positive, 4, Expect(1, over(positive, math.Cbrt))),
		unary("test_ceil", 9, rounding, 0,
			ExpectPrefix(1, fwords(-1, -1, -1, negZero, negZero, 0, 1, 1, 1))),
		binary("test_copysign", 4, []float32{-1, -1, 1, 1}, []float32{-1, 1, -1, 1}, 0,
			ExpectPrefix(2, fwords(-1, 1, -1, 1))),
		unary("test_cos", 9, angles, 4, ExpectPrefix(1, encode.Buffer(cosines))),
		unary("test_cosh", 12, centered, 4, Expect(1, over(centered, math.Cosh))),
		unary("test_erf", 12, centered, 16, Expect(1, over(centered, math.Erf))),
		unary("test_erfc", 12, centered, 16, Expect(1, over(centered, math.Erfc))),
		unary("test_exp", 12, positive, 4, Expect(1, over(positive, math.Exp))),
		unary("test_exp2", 12, positive, 4, Expect(1, over(positive, math.Exp2))),
		unary("test_exp10", 12, positive, 4, Expect(1, over(positive, func(x float64) float64 {
			return math.Pow(10, x)
		}))),
		unary("test_expm1", 12, positive, 4, Expect(1, encode.Buffer(encode.Map(positive, func(x float32) float32 {
			return float32(math.Exp(float64(x))) - 1
		})))),
		unary("test_fabs", 12, encode.Count[float32](-12, 0), 0,
			Expect(1, over(encode.Count[float32](-12, 0), math.Abs))),
		binary("test_fdim", 3, []float32{7, 1, -7}, []float32{1, 1, 1}, 0, ExpectPrefix(2, fwords(6, 0, 0))),
		unary("test_floor", 9, rounding, 0, ExpectPrefix(1, fwords(-2, -2, -1, -1, -1, 0, 0, 0, 1))),
		binary("test_fmax", 3, []float32{7, 1, -7}, []float32{1, 1, 5}, 0, ExpectPrefix(2, fwords(7, 1, 5))),
		binary("test_fmin", 3, []float32{7, 1, -7}, []float32{1, 1, 5}, 0, ExpectPrefix(2, fwords(1, 1, -7))),
		binary("test_fmod", 12, positive, sevenHalves, 0,
			Expect(2, fwords(0, 1, 2, 3, 4, 5, 6, 7, 0.5, 1.5, 2.5, 3.5))),
		binary("test_hypot", 12, centered, positive, 4, Expect(2, fwords(
			sqrtf(36), sqrtf(25+1), sqrtf(16+4), sqrtf(9+9), sqrtf(4+16), sqrtf(1+25),
			sqrtf(36), sqrtf(1+49), sqrtf(4+64), sqrtf(9+81), sqrtf(16+100), sqrtf(25+121)))),
		unary("test_ilogb", 7, []float32{0.25, 0.5, 1, 4, 8, 128, 1024}, 0,
			ExpectPrefix(1, fwords(-2, -1, 0, 2, 3, 7, 10))),
		binary("test_ldexp", 3, []float32{7.5, 7.5, 7.5}, []float32{-2, 1, 5}, 0,
			ExpectPrefix(2, fwords(1.875, 15, 240))),
		unary("test_log", 12, positive, 4, Expect(1, over(positive, math.Log))),
		// the reference precision of lgamma is undefined
		unary("test_lgamma", 12, positive, 8192, Expect(1, over(positive, func(x float64) float64 {
			v, _ := math.Lgamma(x)
			return v
		}))),
		unary("test_log", 12, positive, 4, Expect(1, over(positive, math.Log))),
		unary("test_log2", 12, positive, 4, Expect(1, over(positive, math.Log2))),
		unary("test_log10", 12, positive, 4, Expect(1, encode.Buffer(encode.Map(positive, func(x float32) float32 {
			return float32(math.Log(float64(x))) / float32(math.Log(10))
		})))),
		unary("test_log1p", 12, positive, 4, Expect(1, encode.Buffer(encode.Map(positive, func(x float32) float32 {
			return float32(math.Log(float64(x + 1)))
		})))),
		unary("test_logb", 12, positive, 0, Expect(1, over(positive, math.Logb))),
		binary("test_maxmag", 4, minusSevenHalves, magnitudes, 0, ExpectPrefix(2, fwords(-7.5, -7.5, 14, -8))),
		binary("test_minmag", 4, minusSevenHalves, magnitudes, 0, ExpectPrefix(2, fwords(-2, 1, -7.5, -7.5))),
		binary("test_nextafter", 4, []float32{-7.5, -7.5, 7.5, 7.5}, []float32{-8, 8, -8, 8}, 0,
			ExpectPrefix(2, fwords(math.Nextafter32(-7.5, -8), math.Nextafter32(-7.5, 8),
				math.Nextafter32(7.5, -8), math.Nextafter32(7.5, 8)))),
		binary("test_pow", 12, centered, centered, 16, Expect(2, encode.Buffer(powers(centered, centered)))),
		binary("test_pown", 12, centered, centered, 16, Expect(2, encode.Buffer(powers(centered, centered)))),
		binary("test_powr", 12, positive, centered, 16, Expect(2, encode.Buffer(powers(positive, centered)))),
		binary("test_remainder", 12, positive, sevenHalves, 0,
			Expect(2, fwords(0, 1, 2, 3, -3.5, -2.5, -1.5, -0.5, 0.5, 1.5, 2.5, 3.5))),
		unary("test_rint", 9, rounding, 0, ExpectPrefix(1, fwords(-2, -2, -1, 0, 0, 0, 0, 0, 1))),
		unary("test_round", 9, rounding, 0, ExpectPrefix(1, fwords(-2, -1, -1, -1, 0, 0, 1, 1, 1))),
		unary("test_rsqrt", 12, positive, 4, Expect(1, encode.Buffer(encode.Map(positive, func(x float32) float32 {
			return 1 / sqrtf(x)
		})))),
		unary("test_sin", 9, angles, 4, ExpectPrefix(1, encode.Buffer(sines))),
		unary("test_sinh", 12, centered, 4, Expect(1, over(centered, math.Sinh))),
		unary("test_sqrt", 12, positive, 4, Expect(1, over(positive, math.Sqrt))),
		unary("test_tan", 8, []float32{0, piF / 6, piF / 4, piF / 3, 2 * piF / 3, 3 * piF / 4, 5 * piF / 6, piF}, 5,
			ExpectPrefix(1, fwords(0, sqrt3/3, 1, sqrt3, -sqrt3, -1, -sqrt3/3, 0))),
		unary("test_tanh", 12, centered, 5, Expect(1, over(centered, math.Tanh))),
		unary("test_tgamma", 12, positive, 16, Expect(1, over(positive, math.Gamma))),
		unary("test_trunc", 9, rounding, 0, ExpectPrefix(1, fwords(-1, -1, -1, 0, 0, 0, 0, 0, 1))),
	}
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// apply evaluates a float64 reference function and rounds each result to binary32
func apply(in []float32, f func(float64) float64) []float32 {
	return encode.Map(in, func(x float32) float32 {
		return float32(f(float64(x)))
	})
}

func powers(base, exp []float32) []float32 {
	out := make([]float32, len(base))
	for i := range base {
		out[i] = float32(math.Pow(float64(base[i]), float64(exp[i])))
	}
	return out
}

func floats(v ...float32) kernel.Buffer { return kernel.BufferOf(v) }
func ints(v ...int32) kernel.Buffer     { return kernel.BufferOf(v) }
func uints(v ...uint32) kernel.Buffer   { return kernel.BufferOf(v) }

func fwords(v ...float32) []uint32 { return encode.Buffer(v) }
func iwords(v ...int32) []uint32   { return encode.Buffer(v) }
func uwords(v ...uint32) []uint32  { return encode.Buffer(v) }
