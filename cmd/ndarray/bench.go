package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/born-ml/numeric/ndarray"
)

// benchCase is one timed operation group.
type benchCase struct {
	name string
	run  func() error
}

// BenchResult is the timing of one operation group.
type BenchResult struct {
	Name       string
	Iterations int
	Elapsed    time.Duration
}

// PerOp returns the average time of one iteration.
func (r BenchResult) PerOp() time.Duration {
	return r.Elapsed / time.Duration(r.Iterations)
}

// OpsPerSecond returns the throughput, or 0 if nothing was measured.
func (r BenchResult) OpsPerSecond() int64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return int64(float64(r.Iterations) / r.Elapsed.Seconds())
}

// benchOperands returns the vectors [1..size] and [size+1..2*size], the
// generalization of the [1, 2, 3] and [4, 5, 6] pair.
func benchOperands(size int) (values [2][]float64) {
	for i := range values {
		values[i] = make([]float64, size)
		for j := range values[i] {
			values[i][j] = float64(i*size + j + 1)
		}
	}
	return values
}

func benchCases(values [2][]float64) ([]benchCase, error) {
	a, err := ndarray.FromNested(values[0])
	if err != nil {
		return nil, err
	}
	b, err := ndarray.FromNested(values[1])
	if err != nil {
		return nil, err
	}
	idx := min(1, a.Size()-1)

	return []benchCase{
		{"iteration", func() error {
			_, _, _, _ = a.Shape(), a.Size(), a.Ndim(), a.DType().String()
			if _, err := a.Get(idx); err != nil {
				return err
			}
			if _, err := a.Add(b); err != nil {
				return err
			}
			_ = a.AddScalar(10)
			return nil
		}},
		{"fromNested", func() error {
			_, err := ndarray.FromNested(values[0])
			return err
		}},
		{"introspection", func() error {
			_, _, _, _ = a.Shape(), a.Size(), a.Ndim(), a.DType().String()
			return nil
		}},
		{"get", func() error {
			_, err := a.Get(idx)
			return err
		}},
		{"add", func() error {
			_, err := a.Add(b)
			return err
		}},
		{"addScalar", func() error {
			_ = a.AddScalar(10)
			return nil
		}},
		{"eager add+addScalar+add", func() error {
			c, err := a.Add(b)
			if err != nil {
				return err
			}
			_, err = c.AddScalar(10).Add(a)
			return err
		}},
		{"chain add+addScalar+add", func() error {
			_, err := a.Chain().Add(b).AddScalar(10).Add(a).Resolve()
			return err
		}},
	}, nil
}

// RunBench times every operation group and renders the results to w.
// Progress, if requested, is written to progress.
func RunBench(w, progress io.Writer, args *BenchArguments) ([]BenchResult, error) {
	values := benchOperands(args.Size)
	cases, err := benchCases(values)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if args.Progress {
		bar = progressbar.NewOptions(len(cases),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("bench"),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
		)
	}

	results := make([]BenchResult, 0, len(cases))
	for _, bc := range cases {
		start := time.Now()
		for i := 0; i < args.Iterations; i++ {
			if err := bc.run(); err != nil {
				return nil, errors.WithMessagef(err, "bench %s", bc.name)
			}
		}
		r := BenchResult{Name: bc.name, Iterations: args.Iterations, Elapsed: time.Since(start)}
		klog.V(1).Infof("bench: %s took %s (%s per op)", r.Name, r.Elapsed, r.PerOp())
		results = append(results, r)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(progress)
	}

	operand, err := ndarray.FromNested(values[0])
	if err != nil {
		return nil, err
	}
	caption := fmt.Sprintf("operands of shape %s, %s each", operand.Descriptor(), humanize.Bytes(uint64(operand.ByteSize())))
	if args.NoTable {
		renderBenchPlain(w, results)
	} else {
		renderBenchTable(w, results, caption)
	}
	return results, nil
}

func renderBenchTable(w io.Writer, results []BenchResult, caption string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Operation", "Iterations", "Total", "Per op", "Ops/s"})
	table.SetCaption(true, caption)
	table.SetBorder(false)
	for _, r := range results {
		table.Append([]string{
			r.Name,
			humanize.Comma(int64(r.Iterations)),
			r.Elapsed.Round(time.Microsecond).String(),
			r.PerOp().String(),
			humanize.Comma(r.OpsPerSecond()),
		})
	}
	table.Render()
}

func renderBenchPlain(w io.Writer, results []BenchResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Name, r.Iterations, r.Elapsed, r.PerOp())
	}
}
