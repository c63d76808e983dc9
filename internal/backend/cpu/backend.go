// Package cpu implements the float64 element-wise kernels of the array engine.
package cpu

import (
	"github.com/born-ml/numeric/internal/parallel"
)

// CPUBackend runs element-wise kernels on the CPU.
// Buffers large enough to be worth it are split across goroutines according
// to the parallel configuration; everything else runs inline on the caller.
type CPUBackend struct {
	cfg parallel.Config
}

// New creates a new CPU backend with the given parallel configuration.
func New(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		cfg: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the parallel configuration of the backend.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}

// Binary computes dst[i] = a[i] op b[i].
// Requires: len(dst) == len(a) == len(b) and op.IsBinary().
func (cpu *CPUBackend) Binary(op Op, dst, a, b []float64) {
	n := len(dst)
	if !cpu.cfg.Splits(n) {
		binaryFloat64(op, dst, a[:n], b[:n])
		return
	}
	parallel.ForRange(n, func(start, end int) {
		binaryFloat64(op, dst[start:end], a[start:end], b[start:end])
	}, cpu.cfg)
}

// Scalar computes dst[i] = a[i] op scalar.
// Requires: len(dst) == len(a) and op.IsScalar().
func (cpu *CPUBackend) Scalar(op Op, dst, a []float64, scalar float64) {
	n := len(dst)
	if !cpu.cfg.Splits(n) {
		scalarFloat64(op, dst, a[:n], scalar)
		return
	}
	parallel.ForRange(n, func(start, end int) {
		scalarFloat64(op, dst[start:end], a[start:end], scalar)
	}, cpu.cfg)
}

// Fused evaluates seed followed by every step, in order, writing the final
// values into dst. No intermediate buffer is allocated.
// Requires: every binary step operand has len(dst) elements, as does seed.
func (cpu *CPUBackend) Fused(dst, seed []float64, steps []Step) {
	n := len(dst)
	if !cpu.cfg.Splits(n) {
		fusedFloat64(dst, seed, steps, 0, n)
		return
	}
	parallel.ForRange(n, func(start, end int) {
		fusedFloat64(dst, seed, steps, start, end)
	}, cpu.cfg)
}
