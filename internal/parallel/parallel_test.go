package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	n := 1000
	hits := make([]int32, n)
	var calls int64

	ForRange(n, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, h)
		}
	}
	if calls < 2 {
		t.Errorf("Expected work to be split, got %d calls", calls)
	}
}

func TestForRange_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var calls int64
	var total int64
	ForRange(100, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		atomic.AddInt64(&total, int64(end-start))
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if total != 100 {
		t.Errorf("Expected 100 items, got %d", total)
	}
}

func TestForRange_SmallChunk(t *testing.T) {
	// Work below two chunks runs inline as a single range.
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var calls int64
	ForRange(2*cfg.MinChunkSize-1, func(_, _ int) {
		atomic.AddInt64(&calls, 1)
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestForRange_Empty(t *testing.T) {
	called := false
	ForRange(0, func(_, _ int) { called = true }, DefaultConfig())
	if called {
		t.Error("ForRange(0) must not call f")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"disabled ignores zero values", Config{}, false},
		{"no workers", Config{Enabled: true, NumWorkers: 0, MinChunkSize: 1}, true},
		{"no chunk size", Config{Enabled: true, NumWorkers: 2, MinChunkSize: 0}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func BenchmarkForRange(b *testing.B) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 1024
	n := 1 << 20
	data := make([]float64, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j]++
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j]++
				}
			}, cfgSeq)
		}
	})
}
