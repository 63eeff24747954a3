package dual

// DataType represents runtime type information for dual components.
type DataType int

// Supported scalar types for dual components.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of one component of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic scalar type T, including
// named types whose underlying kind is float32 or float64.
func inferDataType[T Float]() DataType {
	// 1 + 2^-30 is representable in float64 but rounds to 1 in float32.
	const probe = 1 + 1.0/(1<<30)
	if T(probe) == T(1) {
		return Float32
	}
	return Float64
}
