// Package parallel provides chunked parallel execution for the array kernels.
package parallel

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
// Element-wise float64 kernels are memory bound, so a chunk must be large
// before a goroutine pays for itself.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 15,
	}
}

// Validate checks that an enabled configuration can actually split work.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.NumWorkers < 1 {
		return errors.Errorf("parallel: NumWorkers must be >= 1, got %d", c.NumWorkers)
	}
	if c.MinChunkSize < 1 {
		return errors.Errorf("parallel: MinChunkSize must be >= 1, got %d", c.MinChunkSize)
	}
	return nil
}

// Splits reports whether n items would be divided across more than one goroutine.
func (c Config) Splits(n int) bool {
	return c.Enabled && c.NumWorkers > 1 && c.MinChunkSize > 0 && n >= 2*c.MinChunkSize
}

// ForRange executes f over contiguous sub-ranges [start, end) covering [0, n).
// Falls back to a single inline call if parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Splits(n) {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	if klog.V(3).Enabled() {
		klog.Infof("parallel: splitting %d items into chunks of %d", n, chunkSize)
	}

	var wg sync.WaitGroup
	for start := chunkSize; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	// The first chunk runs on the calling goroutine.
	f(0, min(chunkSize, n))
	wg.Wait()
}
