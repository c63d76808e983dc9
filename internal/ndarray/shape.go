package ndarray

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxRank is the largest number of dimensions an array may have.
const MaxRank = 32

// Shape describes the dimensions of an array and its row-major strides.
// A Shape is immutable: accessors return copies of its slices.
//
// The zero value is the rank-0 (scalar) shape.
type Shape struct {
	dims    []int
	strides []int
	size    int
}

// FromDims creates a Shape from the given dimensions.
// Every dimension must be >= 0; a zero dimension yields an empty array shape.
//
// Example:
//
//	s, _ := ndarray.FromDims(2, 3) // (2, 3), strides [3 1], size 6
func FromDims(dims ...int) (Shape, error) {
	if len(dims) > MaxRank {
		return Shape{}, errors.Wrapf(ErrUnsupportedRank, "rank %d exceeds maximum rank %d", len(dims), MaxRank)
	}
	size := 1
	for i, dim := range dims {
		if dim < 0 {
			return Shape{}, errors.Wrapf(ErrInvalidShape, "dimension %d is %d (must be >= 0)", i, dim)
		}
		if dim > 0 && size > math.MaxInt/dim {
			return Shape{}, errors.Wrapf(ErrInvalidShape, "dimensions %v overflow the element count", dims)
		}
		size *= dim
	}
	return newShape(append([]int(nil), dims...)), nil
}

// newShape builds a Shape from validated dims, taking ownership of the slice.
func newShape(dims []int) Shape {
	return Shape{
		dims:    dims,
		strides: computeStrides(dims),
		size:    numElements(dims),
	}
}

// numElements returns the product of dims; the empty product (scalar) is 1.
func numElements(dims []int) int {
	n := 1
	for _, dim := range dims {
		n *= dim
	}
	return n
}

// computeStrides calculates row-major strides: stride[i] = product of all dimensions after i.
func computeStrides(dims []int) []int {
	strides := make([]int, len(dims))
	if len(dims) == 0 {
		return strides
	}
	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}
	return strides
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.dims)
}

// Size returns the total number of elements.
func (s Shape) Size() int {
	if len(s.dims) == 0 {
		return 1 // Scalar has 1 element
	}
	return s.size
}

// Dims returns a copy of the dimensions.
func (s Shape) Dims() []int {
	return append([]int{}, s.dims...)
}

// Dim returns the extent of the given axis. It panics if axis is not in [0, Rank()).
func (s Shape) Dim(axis int) int {
	return s.dims[axis]
}

// Strides returns a copy of the row-major strides.
func (s Shape) Strides() []int {
	return append([]int{}, s.strides...)
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// LinearIndex maps per-dimension indices to the flat offset in row-major storage.
func (s Shape) LinearIndex(indices ...int) (int, error) {
	if len(indices) != len(s.dims) {
		return 0, errors.Wrapf(ErrRankMismatch, "got %d indices for shape %s of rank %d", len(indices), s, len(s.dims))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= s.dims[i] {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d out of range for axis %d with size %d", idx, i, s.dims[i])
		}
		offset += idx * s.strides[i]
	}
	return offset, nil
}

// String renders the dimensions, e.g. "(2, 3)"; the scalar shape is "()".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, dim := range s.dims {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteByte(')')
	return sb.String()
}
