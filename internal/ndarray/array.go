package ndarray

import (
	"github.com/pkg/errors"
)

// NdArray is an immutable n-dimensional array of float64 values stored in
// row-major order.
//
// Every operation returns a new NdArray; the receiver and operands are never
// modified, so arrays may be shared between goroutines without locking.
type NdArray struct {
	shape Shape
	buf   storage
}

// newArray wraps data (of shape.Size() elements) without copying it.
func newArray(shape Shape, data []float64) *NdArray {
	return &NdArray{
		shape: shape,
		buf:   wrapStorage(data),
	}
}

// FromFlat creates an array with the given dimensions from row-major data.
// The data is copied into the array.
//
// Example:
//
//	m, _ := ndarray.FromFlat([]float64{1, 2, 3, 4, 5, 6}, 2, 3) // [[1, 2, 3], [4, 5, 6]]
func FromFlat(data []float64, dims ...int) (*NdArray, error) {
	shape, err := FromDims(dims...)
	if err != nil {
		return nil, err
	}
	if shape.Size() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %s requires %d elements, but got %d", shape, shape.Size(), len(data))
	}
	buf := newStorage(len(data))
	copy(buf.f64, data)
	return &NdArray{shape: shape, buf: buf}, nil
}

// Zeros creates an array filled with zeros.
func Zeros(dims ...int) (*NdArray, error) {
	shape, err := FromDims(dims...)
	if err != nil {
		return nil, err
	}
	return &NdArray{shape: shape, buf: newStorage(shape.Size())}, nil
}

// Full creates an array filled with value.
func Full(value float64, dims ...int) (*NdArray, error) {
	a, err := Zeros(dims...)
	if err != nil {
		return nil, err
	}
	data := a.buf.f64
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// Shape returns the dimensions of the array.
func (a *NdArray) Shape() []int {
	return a.shape.Dims()
}

// Descriptor returns the full shape descriptor (dimensions and strides).
func (a *NdArray) Descriptor() Shape {
	return a.shape
}

// Size returns the total number of elements.
func (a *NdArray) Size() int {
	return a.shape.Size()
}

// Ndim returns the number of dimensions (rank).
func (a *NdArray) Ndim() int {
	return a.shape.Rank()
}

// DType returns the element type of the array.
func (a *NdArray) DType() DataType {
	return a.buf.dtype
}

// ByteSize returns the memory held by the array data in bytes.
func (a *NdArray) ByteSize() int {
	return a.buf.byteSize()
}

// Get returns the element at the given indices.
//
// Example:
//
//	a, _ := ndarray.FromNested([]float64{1, 2, 3})
//	v, _ := a.Get(1) // 2
func (a *NdArray) Get(indices ...int) (float64, error) {
	offset, err := a.shape.LinearIndex(indices...)
	if err != nil {
		return 0, err
	}
	return a.buf.float64s()[offset], nil
}

// Data returns a copy of the elements in row-major order.
func (a *NdArray) Data() []float64 {
	out := make([]float64, a.buf.len())
	copy(out, a.buf.float64s())
	return out
}

// Reshape returns an array with the same data viewed with different dimensions.
// The element count must not change. The data is shared, not copied.
func (a *NdArray) Reshape(dims ...int) (*NdArray, error) {
	shape, err := FromDims(dims...)
	if err != nil {
		return nil, err
	}
	if shape.Size() != a.shape.Size() {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %s (%d elements) into %s (%d elements)",
			a.shape, a.shape.Size(), shape, shape.Size())
	}
	return &NdArray{shape: shape, buf: a.buf}, nil
}

// Equal reports whether both arrays have the same shape and elements.
// NaN elements never compare equal.
func (a *NdArray) Equal(other *NdArray) bool {
	if other == nil || !a.shape.Equal(other.shape) {
		return false
	}
	x, y := a.buf.float64s(), other.buf.float64s()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Chain starts an operation chain seeded with the array.
// Steps added to the chain are evaluated together, in one pass, when the
// chain is resolved.
//
// Example:
//
//	c := a.Chain().Add(b).AddScalar(5).Add(a)
//	result, err := c.Resolve()
func (a *NdArray) Chain() *Chain {
	return newChain(a)
}
