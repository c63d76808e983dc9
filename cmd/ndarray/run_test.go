package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numeric/ndarray"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunDemo(&out, &DemoArguments{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, []string{
		"Array 1 shape: [3]",
		"Array 1 size: 3",
		"Array 1 ndim: 1",
		"Array 1 dtype: float64",
		"Element at index 1: 2",
		"Sum of arrays: [5, 7, 9]",
		"Array + scalar: [11, 12, 13]",
		"2D array shape: [2 2]",
		"2D array: [[1, 2], [3, 4]]",
		"Chain element 0: 17.5",
		"Chain: [17.5, 21.5, 25.5]",
	}, lines[:11])
	assert.True(t, strings.HasPrefix(lines[11], "Mismatched add: "))
	assert.Contains(t, lines[11], "shape mismatch")
}

func TestRunBench_Plain(t *testing.T) {
	var out, progress bytes.Buffer
	results, err := RunBench(&out, &progress, &BenchArguments{Iterations: 10, Size: 4, NoTable: true})
	require.NoError(t, err)
	require.Len(t, results, 8)
	assert.Empty(t, progress.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(results))
	for i, r := range results {
		assert.Equal(t, 10, r.Iterations)
		assert.True(t, strings.HasPrefix(lines[i], r.Name+"\t10\t"), lines[i])
	}
	assert.Equal(t, "iteration", results[0].Name)
}

func TestRunBench_Table(t *testing.T) {
	var out, progress bytes.Buffer
	_, err := RunBench(&out, &progress, &BenchArguments{Iterations: 5, Size: 4, Progress: true})
	require.NoError(t, err)
	assert.NotEmpty(t, progress.String())

	text := out.String()
	assert.Contains(t, text, "chain add+addScalar+add")
	assert.Contains(t, text, "fromNested")
	assert.Contains(t, text, "32 B")
}

func TestRunBench_SingleElement(t *testing.T) {
	var out bytes.Buffer
	results, err := RunBench(&out, &out, &BenchArguments{Iterations: 1, Size: 1, NoTable: true})
	require.NoError(t, err)
	assert.Len(t, results, 8)
}

func TestBenchOperands(t *testing.T) {
	values := benchOperands(3)
	assert.Equal(t, []float64{1, 2, 3}, values[0])
	assert.Equal(t, []float64{4, 5, 6}, values[1])
}

func TestBenchResult(t *testing.T) {
	r := BenchResult{Name: "add", Iterations: 4, Elapsed: time.Second}
	assert.Equal(t, 250*time.Millisecond, r.PerOp())
	assert.Equal(t, int64(4), r.OpsPerSecond())
	assert.Zero(t, BenchResult{Iterations: 1}.OpsPerSecond())
}

func TestConfigureAndRun(t *testing.T) {
	orig := ndarray.GetParallelConfig()
	defer func() { require.NoError(t, ndarray.SetParallelConfig(orig)) }()

	args, err := ParseArguments([]string{"app", "--workers", "2", "--min-chunk", "64", "version"}, "")
	require.NoError(t, err)
	require.NoError(t, Configure(args))
	assert.Equal(t, ndarray.ParallelConfig{Enabled: true, NumWorkers: 2, MinChunkSize: 64}, ndarray.GetParallelConfig())

	var out bytes.Buffer
	require.NoError(t, Run(&out, &out, args))
	assert.Equal(t, "ndarray "+version+"\n", out.String())
}
