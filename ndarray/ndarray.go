// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API of the numeric array engine.
//
// Arrays are immutable float64 n-dimensional buffers built from nested Go values:
//   - NdArray: shape, dtype and a row-major buffer, with eager element-wise ops
//   - Chain: deferred operations fused into a single pass on finalization
//   - Shape: dimensions, strides and index arithmetic
//
// Example:
//
//	a, _ := ndarray.FromNested([]float64{1, 2, 3})
//	b, _ := ndarray.FromNested([]float64{4, 5, 6})
//	c, _ := a.Add(b)                                 // [5, 7, 9]
//	d, _ := a.Chain().Add(b).AddScalar(10).Resolve() // [15, 17, 19]
package ndarray

import (
	"github.com/born-ml/numeric/internal/ndarray"
	"github.com/born-ml/numeric/internal/parallel"
)

// NdArray is an immutable n-dimensional array of numbers.
type NdArray = ndarray.NdArray

// Chain accumulates operations on an array and applies them all at once
// when the result is first needed.
type Chain = ndarray.Chain

// Shape represents the dimensions of an array.
type Shape = ndarray.Shape

// DataType represents the element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Float64 DataType = ndarray.Float64
)

// MaxRank is the largest number of dimensions an array may have.
const MaxRank = ndarray.MaxRank

// StepError reports which pending chain step failed during finalization.
type StepError = ndarray.StepError

// ParallelConfig controls how large buffers are split across goroutines.
type ParallelConfig = parallel.Config

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidShape    = ndarray.ErrInvalidShape
	ErrRaggedShape     = ndarray.ErrRaggedShape
	ErrUnsupportedRank = ndarray.ErrUnsupportedRank
	ErrRankMismatch    = ndarray.ErrRankMismatch
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange
	ErrShapeMismatch   = ndarray.ErrShapeMismatch
	ErrChainFinalized  = ndarray.ErrChainFinalized
	ErrInvalidElement  = ndarray.ErrInvalidElement
	ErrNilArray        = ndarray.ErrNilArray
)

// FromNested creates an array from a number or nested slices of numbers.
// The shape is inferred from the nesting; ragged input is rejected.
func FromNested(value any) (*NdArray, error) {
	return ndarray.FromNested(value)
}

// FromFlat creates an array with the given dimensions from row-major data.
// The data is copied.
func FromFlat(data []float64, dims ...int) (*NdArray, error) {
	return ndarray.FromFlat(data, dims...)
}

// FromDims creates a Shape from the given dimensions.
func FromDims(dims ...int) (Shape, error) {
	return ndarray.FromDims(dims...)
}

// Zeros creates an array filled with zeros.
func Zeros(dims ...int) (*NdArray, error) {
	return ndarray.Zeros(dims...)
}

// Full creates an array filled with value.
func Full(value float64, dims ...int) (*NdArray, error) {
	return ndarray.Full(value, dims...)
}

// DefaultParallelConfig returns the configuration the engine starts with.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig changes how the kernels split large buffers across goroutines.
func SetParallelConfig(cfg ParallelConfig) error {
	return ndarray.SetParallelConfig(cfg)
}

// GetParallelConfig returns the configuration currently in use.
func GetParallelConfig() ParallelConfig {
	return ndarray.ParallelConfig()
}
