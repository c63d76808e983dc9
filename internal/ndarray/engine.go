package ndarray

import (
	"sync/atomic"

	"github.com/born-ml/numeric/internal/backend/cpu"
	"github.com/born-ml/numeric/internal/parallel"
)

var backend atomic.Pointer[cpu.CPUBackend]

func init() {
	backend.Store(cpu.New(parallel.DefaultConfig()))
}

// currentBackend returns the backend used by all array operations.
func currentBackend() *cpu.CPUBackend {
	return backend.Load()
}

// SetParallelConfig replaces the parallel configuration used by the kernels.
// It is safe to call concurrently with running operations: each operation uses
// the configuration that was current when it started.
func SetParallelConfig(cfg parallel.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	backend.Store(cpu.New(cfg))
	return nil
}

// ParallelConfig returns the parallel configuration currently in use.
func ParallelConfig() parallel.Config {
	return currentBackend().Config()
}
