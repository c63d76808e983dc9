package ndarray

import (
	"errors"
	"math"
	"testing"
)

func assertEqualDims(t *testing.T, expected, actual []int, msg string) {
	t.Helper()
	if !equalDims(expected, actual) {
		t.Errorf("%s: expected dims %v, got %v", msg, expected, actual)
	}
}

func TestDataType(t *testing.T) {
	if got := Float64.String(); got != "float64" {
		t.Errorf("Float64.String() = %q, want %q", got, "float64")
	}
	if got := Float64.Size(); got != 8 {
		t.Errorf("Float64.Size() = %d, want 8", got)
	}
	if got := DataType(99).String(); got != "unknown" {
		t.Errorf("DataType(99).String() = %q, want %q", got, "unknown")
	}
}

func TestFromDims(t *testing.T) {
	tests := []struct {
		dims    []int
		size    int
		strides []int
	}{
		{[]int{}, 1, []int{}},                 // Scalar
		{[]int{5}, 5, []int{1}},               // 1D
		{[]int{3, 4}, 12, []int{4, 1}},        // 2D
		{[]int{2, 3, 4}, 24, []int{12, 4, 1}}, // 3D
		{[]int{0}, 0, []int{1}},               // Empty
		{[]int{2, 0, 3}, 0, []int{0, 3, 1}},   // Empty in the middle
	}

	for _, tt := range tests {
		s, err := FromDims(tt.dims...)
		if err != nil {
			t.Fatalf("FromDims(%v) failed: %v", tt.dims, err)
		}
		if got := s.Size(); got != tt.size {
			t.Errorf("FromDims(%v).Size() = %d, want %d", tt.dims, got, tt.size)
		}
		if got := s.Rank(); got != len(tt.dims) {
			t.Errorf("FromDims(%v).Rank() = %d, want %d", tt.dims, got, len(tt.dims))
		}
		assertEqualDims(t, tt.dims, s.Dims(), "Dims")
		assertEqualDims(t, tt.strides, s.Strides(), "Strides")
	}
}

func TestFromDimsInvalid(t *testing.T) {
	tests := []struct {
		name string
		dims []int
		want error
	}{
		{"negative", []int{-1}, ErrInvalidShape},
		{"negative inner", []int{3, -4}, ErrInvalidShape},
		{"overflow", []int{math.MaxInt / 2, 3}, ErrInvalidShape},
		{"rank too large", make([]int, MaxRank+1), ErrUnsupportedRank},
	}

	for _, tt := range tests {
		if _, err := FromDims(tt.dims...); !errors.Is(err, tt.want) {
			t.Errorf("%s: FromDims error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestShapeImmutable(t *testing.T) {
	dims := []int{2, 3}
	s, err := FromDims(dims...)
	if err != nil {
		t.Fatal(err)
	}
	dims[0] = 100
	s.Dims()[1] = 100
	s.Strides()[0] = 100
	assertEqualDims(t, []int{2, 3}, s.Dims(), "Dims after external writes")
	assertEqualDims(t, []int{3, 1}, s.Strides(), "Strides after external writes")
}

func TestShapeEqual(t *testing.T) {
	a, _ := FromDims(2, 3)
	b, _ := FromDims(2, 3)
	c, _ := FromDims(3, 2)
	d, _ := FromDims(6)

	if !a.Equal(b) {
		t.Error("(2, 3) should equal (2, 3)")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Error("(2, 3) should not equal (3, 2) or (6)")
	}
	if !(Shape{}).Equal(newShape(nil)) {
		t.Error("zero Shape should equal the scalar shape")
	}
}

func TestLinearIndex(t *testing.T) {
	s, _ := FromDims(2, 3, 4)

	tests := []struct {
		indices []int
		want    int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{0, 0, 3}, 3},
		{[]int{0, 1, 0}, 4},
		{[]int{1, 0, 0}, 12},
		{[]int{1, 2, 3}, 23},
	}

	for _, tt := range tests {
		got, err := s.LinearIndex(tt.indices...)
		if err != nil {
			t.Errorf("LinearIndex(%v) failed: %v", tt.indices, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LinearIndex(%v) = %d, want %d", tt.indices, got, tt.want)
		}
	}

	scalar, _ := FromDims()
	if got, err := scalar.LinearIndex(); err != nil || got != 0 {
		t.Errorf("scalar LinearIndex() = %d, %v; want 0, nil", got, err)
	}
}

func TestLinearIndexErrors(t *testing.T) {
	s, _ := FromDims(2, 3)

	tests := []struct {
		name    string
		indices []int
		want    error
	}{
		{"too few", []int{1}, ErrRankMismatch},
		{"too many", []int{1, 1, 1}, ErrRankMismatch},
		{"past end", []int{2, 0}, ErrIndexOutOfRange},
		{"past end inner", []int{0, 3}, ErrIndexOutOfRange},
		{"negative", []int{0, -1}, ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		if _, err := s.LinearIndex(tt.indices...); !errors.Is(err, tt.want) {
			t.Errorf("%s: LinearIndex(%v) error = %v, want %v", tt.name, tt.indices, err, tt.want)
		}
	}

	empty, _ := FromDims(0)
	if _, err := empty.LinearIndex(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("empty LinearIndex(0) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		dims []int
		want string
	}{
		{[]int{}, "()"},
		{[]int{3}, "(3)"},
		{[]int{2, 3}, "(2, 3)"},
	}

	for _, tt := range tests {
		s, _ := FromDims(tt.dims...)
		if got := s.String(); got != tt.want {
			t.Errorf("Shape%v.String() = %q, want %q", tt.dims, got, tt.want)
		}
	}
}
