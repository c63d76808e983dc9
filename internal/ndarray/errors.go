package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds reported by the engine. Every error returned by this package wraps
// exactly one of them, so callers match with errors.Is.
var (
	ErrInvalidShape    = errors.New("invalid shape")
	ErrRaggedShape     = errors.New("ragged shape")
	ErrUnsupportedRank = errors.New("unsupported rank")
	ErrRankMismatch    = errors.New("rank mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrChainFinalized  = errors.New("chain finalized")
	ErrInvalidElement  = errors.New("invalid element")
	ErrNilArray        = errors.New("nil array")
)

// StepError is returned by chain finalization when one of the pending steps
// cannot be applied. Step is the 0-based position of the step in the chain.
type StepError struct {
	Step int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("chain step %d (%s): %v", e.Step, e.Op, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *StepError) Unwrap() error {
	return e.Err
}
