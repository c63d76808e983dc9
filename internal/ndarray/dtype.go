// Package ndarray implements an immutable float64 n-dimensional array engine:
// shape descriptors, flat row-major storage, eager element-wise operations and
// operation chains that fuse several steps into one pass.
package ndarray

// DataType represents runtime type information for array storage.
type DataType int

// Supported data types. Float64 is the only storage type; the tag exists so that
// other element types can be added as storage variants.
const (
	Float64 DataType = iota
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns the stable identifier of the data type (e.g. "float64").
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}
