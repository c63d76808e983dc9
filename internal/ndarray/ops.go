package ndarray

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numeric/internal/backend/cpu"
)

// Add performs element-wise addition. Both arrays must have exactly the same
// shape; there is no broadcasting.
//
// Example:
//
//	a, _ := ndarray.FromNested([]float64{1, 2, 3})
//	b, _ := ndarray.FromNested([]float64{4, 5, 6})
//	c, _ := a.Add(b) // [5, 7, 9]
func (a *NdArray) Add(other *NdArray) (*NdArray, error) {
	return a.binary(cpu.OpAdd, other)
}

// Sub performs element-wise subtraction (a - other) on same-shaped arrays.
func (a *NdArray) Sub(other *NdArray) (*NdArray, error) {
	return a.binary(cpu.OpSub, other)
}

// Mul performs element-wise multiplication on same-shaped arrays.
func (a *NdArray) Mul(other *NdArray) (*NdArray, error) {
	return a.binary(cpu.OpMul, other)
}

// AddScalar adds scalar to every element.
func (a *NdArray) AddScalar(scalar float64) *NdArray {
	return a.scalar(cpu.OpAddScalar, scalar)
}

// MulScalar multiplies every element by scalar.
func (a *NdArray) MulScalar(scalar float64) *NdArray {
	return a.scalar(cpu.OpMulScalar, scalar)
}

func (a *NdArray) binary(op cpu.Op, other *NdArray) (*NdArray, error) {
	if err := checkOperand(a.shape, other); err != nil {
		return nil, errors.WithMessage(err, op.String())
	}
	dst := make([]float64, a.shape.Size())
	currentBackend().Binary(op, dst, a.buf.float64s(), other.buf.float64s())
	return newArray(a.shape, dst), nil
}

func (a *NdArray) scalar(op cpu.Op, scalar float64) *NdArray {
	dst := make([]float64, a.shape.Size())
	currentBackend().Scalar(op, dst, a.buf.float64s(), scalar)
	return newArray(a.shape, dst)
}

// checkOperand validates the right-hand side of a binary operation.
func checkOperand(shape Shape, other *NdArray) error {
	if other == nil {
		return errors.Wrap(ErrNilArray, "operand is nil")
	}
	if !shape.Equal(other.shape) {
		return errors.Wrapf(ErrShapeMismatch, "operand shape %s does not match %s", other.shape, shape)
	}
	return nil
}
