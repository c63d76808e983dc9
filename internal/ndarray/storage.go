package ndarray

import "fmt"

// storage is the flat row-major buffer behind an NdArray.
//
// A buffer is filled while its array is being constructed and never written
// afterwards, so several array headers (reshapes, empty chains) may share it
// without copying.
type storage struct {
	dtype DataType
	f64   []float64
}

// newStorage allocates a zeroed float64 buffer with n elements.
func newStorage(n int) storage {
	return storage{dtype: Float64, f64: make([]float64, n)}
}

// wrapStorage takes ownership of data.
func wrapStorage(data []float64) storage {
	return storage{dtype: Float64, f64: data}
}

// len returns the number of elements.
func (s storage) len() int {
	return len(s.f64)
}

// byteSize returns the memory held by the buffer in bytes.
func (s storage) byteSize() int {
	return s.len() * s.dtype.Size()
}

// float64s returns the buffer as []float64. Callers must not write to it.
// Panics if the storage dtype is not Float64.
func (s storage) float64s() []float64 {
	if s.dtype != Float64 {
		panic(fmt.Sprintf("storage dtype is %s, not float64", s.dtype))
	}
	return s.f64
}
