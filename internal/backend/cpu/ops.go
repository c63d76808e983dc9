package cpu

import "fmt"

// Op identifies an element-wise operation.
type Op int

// Element-wise operations. Binary ops take an array operand, scalar ops a number.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpAddScalar
	OpMulScalar
)

// String returns the operation name as exposed by the array API.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpAddScalar:
		return "addScalar"
	case OpMulScalar:
		return "mulScalar"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// IsBinary reports whether op combines two arrays.
func (op Op) IsBinary() bool {
	return op == OpAdd || op == OpSub || op == OpMul
}

// IsScalar reports whether op combines an array with a scalar.
func (op Op) IsScalar() bool {
	return op == OpAddScalar || op == OpMulScalar
}

// Step is one pending operation of a fused evaluation.
type Step struct {
	Op      Op
	Operand []float64 // Right-hand side of binary ops, nil for scalar ops.
	Scalar  float64   // Right-hand side of scalar ops.
}

// binaryFloat64 dispatches once on op, then runs the matching loop.
func binaryFloat64(op Op, dst, a, b []float64) {
	switch op {
	case OpAdd:
		addVectorizedFloat64(dst, a, b)
	case OpSub:
		subVectorizedFloat64(dst, a, b)
	case OpMul:
		mulVectorizedFloat64(dst, a, b)
	default:
		panic(fmt.Sprintf("binary: unsupported op %s", op))
	}
}

// scalarFloat64 dispatches once on op, then runs the matching loop.
func scalarFloat64(op Op, dst, a []float64, scalar float64) {
	switch op {
	case OpAddScalar:
		addScalarFloat64(dst, a, scalar)
	case OpMulScalar:
		mulScalarFloat64(dst, a, scalar)
	default:
		panic(fmt.Sprintf("scalar: unsupported op %s", op))
	}
}
