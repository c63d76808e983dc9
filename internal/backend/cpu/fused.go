package cpu

import "fmt"

// fuseBlock is the number of elements carried through all steps at once.
// 256 float64 values (2 KiB) stay resident in L1 while every step is applied.
const fuseBlock = 256

// fusedFloat64 evaluates dst[start:end] block by block: each block is seeded
// and then updated in place by every step in order. Each element therefore
// sees exactly the same sequence of floating point operations as the eager
// one-op-at-a-time evaluation.
func fusedFloat64(dst, seed []float64, steps []Step, start, end int) {
	for lo := start; lo < end; lo += fuseBlock {
		hi := min(lo+fuseBlock, end)
		block := dst[lo:hi]
		copy(block, seed[lo:hi])
		for _, st := range steps {
			switch st.Op {
			case OpAdd:
				addInplaceFloat64(block, st.Operand[lo:hi])
			case OpSub:
				subInplaceFloat64(block, st.Operand[lo:hi])
			case OpMul:
				mulInplaceFloat64(block, st.Operand[lo:hi])
			case OpAddScalar:
				addScalarInplaceFloat64(block, st.Scalar)
			case OpMulScalar:
				mulScalarInplaceFloat64(block, st.Scalar)
			default:
				panic(fmt.Sprintf("fused: unsupported op %s", st.Op))
			}
		}
	}
}
