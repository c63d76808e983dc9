package main

import (
	"fmt"
	"io"

	"github.com/janpfeifer/must"

	"github.com/born-ml/numeric/ndarray"
)

// RunDemo walks through the array operations on two small vectors and a matrix,
// printing each result to w.
func RunDemo(w io.Writer, _ *DemoArguments) error {
	a := must.M1(ndarray.FromNested([]float64{1, 2, 3}))
	b := must.M1(ndarray.FromNested([]float64{4, 5, 6}))

	fmt.Fprintln(w, "Array 1 shape:", a.Shape())
	fmt.Fprintln(w, "Array 1 size:", a.Size())
	fmt.Fprintln(w, "Array 1 ndim:", a.Ndim())
	fmt.Fprintln(w, "Array 1 dtype:", a.DType())

	elem, err := a.Get(1)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Element at index 1:", elem)

	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Sum of arrays:", sum)
	fmt.Fprintln(w, "Array + scalar:", a.AddScalar(10))

	m, err := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "2D array shape:", m.Shape())
	fmt.Fprintln(w, "2D array:", m)

	chain := a.Chain().Add(b).AddScalar(5.0).Add(a).AddScalar(2.5).Add(b)
	first, err := chain.Get(0)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Chain element 0:", first)
	fmt.Fprintln(w, "Chain:", chain)

	short := must.M1(ndarray.FromNested([]float64{1, 2}))
	if _, err := a.Add(short); err != nil {
		fmt.Fprintln(w, "Mismatched add:", err)
	}
	return nil
}
