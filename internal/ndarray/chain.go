package ndarray

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/numeric/internal/backend/cpu"
)

type chainState int

const (
	chainBuilding chainState = iota
	chainFinalized
)

// chainStep is a pending operation: operand is set for binary steps.
type chainStep struct {
	op      cpu.Op
	operand *NdArray
	scalar  float64
}

// Chain accumulates element-wise operations against a seed array and applies
// them all in a single fused pass when it is resolved. No intermediate array is
// allocated per step.
//
// Step methods return the same *Chain, so calls can be chained fluently:
//
//	c := a.Chain().Add(b).AddScalar(5).Add(a).AddScalar(2.5).Add(b)
//	v, err := c.Get(0) // 17.5 for a=[1, 2, 3], b=[4, 5, 6]
//
// Resolve, Get and String finalize the chain. Finalization happens once and its
// result is cached; adding steps afterwards records ErrChainFinalized.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	seed   *NdArray
	steps  []chainStep
	state  chainState
	result *NdArray
	err    error
}

func newChain(seed *NdArray) *Chain {
	return &Chain{seed: seed}
}

// Add appends an element-wise addition of other.
func (c *Chain) Add(other *NdArray) *Chain {
	return c.push(chainStep{op: cpu.OpAdd, operand: other})
}

// Sub appends an element-wise subtraction of other.
func (c *Chain) Sub(other *NdArray) *Chain {
	return c.push(chainStep{op: cpu.OpSub, operand: other})
}

// Mul appends an element-wise multiplication by other.
func (c *Chain) Mul(other *NdArray) *Chain {
	return c.push(chainStep{op: cpu.OpMul, operand: other})
}

// AddScalar appends the addition of scalar to every element.
func (c *Chain) AddScalar(scalar float64) *Chain {
	return c.push(chainStep{op: cpu.OpAddScalar, scalar: scalar})
}

// MulScalar appends the multiplication of every element by scalar.
func (c *Chain) MulScalar(scalar float64) *Chain {
	return c.push(chainStep{op: cpu.OpMulScalar, scalar: scalar})
}

func (c *Chain) push(step chainStep) *Chain {
	if c.state == chainFinalized {
		if c.err == nil {
			c.err = errors.Wrapf(ErrChainFinalized, "%s called after the chain was resolved", step.op)
		}
		return c
	}
	c.steps = append(c.steps, step)
	return c
}

// Len returns the number of pending steps. It is zero once the chain is finalized.
func (c *Chain) Len() int {
	return len(c.steps)
}

// Finalized reports whether the chain has been resolved.
func (c *Chain) Finalized() bool {
	return c.state == chainFinalized
}

// Err returns the error of the chain, if any: a failed finalization or a step
// added after finalization.
func (c *Chain) Err() error {
	return c.err
}

// Resolve finalizes the chain and returns the resulting array.
//
// All steps are validated before anything is computed: if any binary step has
// an operand whose shape differs from the seed, a *StepError wrapping
// ErrShapeMismatch (or ErrNilArray) is returned and no result is produced.
func (c *Chain) Resolve() (*NdArray, error) {
	if c.state == chainFinalized {
		if c.err != nil {
			return nil, c.err
		}
		return c.result, nil
	}
	c.state = chainFinalized
	c.result, c.err = c.execute()
	c.steps = nil // Drop operand references.
	return c.result, c.err
}

// Get finalizes the chain and returns the element of the result at indices.
func (c *Chain) Get(indices ...int) (float64, error) {
	result, err := c.Resolve()
	if err != nil {
		return 0, err
	}
	return result.Get(indices...)
}

// String finalizes the chain and renders the result, or the error.
func (c *Chain) String() string {
	result, err := c.Resolve()
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return result.String()
}

func (c *Chain) execute() (*NdArray, error) {
	seed := c.seed
	if seed == nil {
		return nil, errors.Wrap(ErrNilArray, "chain has no seed array")
	}
	if len(c.steps) == 0 {
		// Nothing pending: the seed buffer is immutable, share it.
		return &NdArray{shape: seed.shape, buf: seed.buf}, nil
	}

	steps := make([]cpu.Step, len(c.steps))
	for i, st := range c.steps {
		steps[i] = cpu.Step{Op: st.op, Scalar: st.scalar}
		if !st.op.IsBinary() {
			continue
		}
		if err := checkOperand(seed.shape, st.operand); err != nil {
			return nil, &StepError{Step: i, Op: st.op.String(), Err: err}
		}
		steps[i].Operand = st.operand.buf.float64s()
	}

	dst := make([]float64, seed.shape.Size())
	currentBackend().Fused(dst, seed.buf.float64s(), steps)
	if klog.V(2).Enabled() {
		klog.Infof("chain: fused %d steps over %d elements of shape %s", len(steps), len(dst), seed.shape)
	}
	return newArray(seed.shape, dst), nil
}
