// File: encode/datatype.go

package encode

// DataType names the element type behind a word sequence
type DataType int

const (
	Int32 DataType = iota + 1
	Uint32
	Float32
)

// SizeOf returns the size in bytes of an element; every supported type is one word
func SizeOf(dt DataType) int {
	switch dt {
	case Int32, Uint32, Float32:
		return 4
	default:
		return 0
	}
}

// TypeName returns the OpenCL C name for a given DataType
func TypeName(dt DataType) string {
	switch dt {
	case Int32:
		return "int"
	case Uint32:
		return "uint"
	case Float32:
		return "float"
	default:
		return "unknown"
	}
}

func (dt DataType) String() string {
	return TypeName(dt)
}

// DataTypeOf returns the DataType based on a sample value
func DataTypeOf[T Word32](sample T) DataType {
	switch any(sample).(type) {
	case int32:
		return Int32
	case uint32:
		return Uint32
	case float32:
		return Float32
	}
	// Named types: the sign and float-ness survive conversion checks
	var one T = 1
	if one/2 != 0 {
		return Float32
	}
	var zero T
	if zero-one < zero {
		return Int32
	}
	return Uint32
}
