package ndarray

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromNested creates an array from a number or a (possibly nested) slice of numbers.
// The shape is inferred from the nesting: a number is a scalar, a flat slice is
// rank 1, a slice of slices is rank 2, and so on. All sub-slices at the same
// level must have the same length and depth, otherwise ErrRaggedShape is returned.
//
// Any Go integer or float type is accepted as an element, as are slices, arrays
// and []any holding them. The values are copied into the array.
//
// Example:
//
//	v, _ := ndarray.FromNested([]float64{1, 2, 3})       // shape (3)
//	m, _ := ndarray.FromNested([][]int{{1, 2}, {3, 4}})  // shape (2, 2)
//	x, _ := ndarray.FromNested([]any{1, 2.5, int64(3)})  // shape (3)
func FromNested(value any) (*NdArray, error) {
	// Fast paths for the common float64 inputs.
	switch v := value.(type) {
	case *NdArray:
		if v == nil {
			return nil, errors.Wrap(ErrNilArray, "cannot create array from nil *NdArray")
		}
		return v, nil
	case float64:
		return newArray(Shape{}, []float64{v}), nil
	case []float64:
		return newArray(newShape([]int{len(v)}), append(make([]float64, 0, len(v)), v...)), nil
	case [][]float64:
		return fromFloat64Matrix(v)
	}

	w := nestedWalker{}
	rv := reflect.ValueOf(value)
	dims, err := w.measure(rv)
	if err != nil {
		return nil, err
	}
	if len(dims) > MaxRank {
		return nil, errors.Wrapf(ErrUnsupportedRank, "value has rank %d, maximum is %d", len(dims), MaxRank)
	}
	shape := newShape(dims)
	data := make([]float64, shape.Size())
	w.fill(rv, data, 0)
	return newArray(shape, data), nil
}

func fromFloat64Matrix(rows [][]float64) (*NdArray, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRaggedShape, "value[%d] has length %d, expected %d like value[0]", i, len(row), cols)
		}
	}
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return newArray(newShape([]int{len(rows), cols}), data), nil
}

var float64Type = reflect.TypeOf(float64(0))

// nestedWalker walks nested Go values, tracking the index path for error messages.
type nestedWalker struct {
	path []int
}

// location renders the current path, e.g. "value[1][0]".
func (w *nestedWalker) location() string {
	var sb strings.Builder
	sb.WriteString("value")
	for _, i := range w.path {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
	return sb.String()
}

// measure returns the dimensions of v, checking that siblings agree.
func (w *nestedWalker) measure(v reflect.Value) ([]int, error) {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return nil, errors.Wrapf(ErrInvalidElement, "%s is nil", w.location())
	}
	kind := v.Kind()
	if isNumericKind(kind) {
		return nil, nil
	}
	if kind != reflect.Slice && kind != reflect.Array {
		return nil, errors.Wrapf(ErrInvalidElement, "%s has unsupported type %s", w.location(), v.Type())
	}
	if len(w.path) >= MaxRank {
		return nil, errors.Wrapf(ErrUnsupportedRank, "%s nests deeper than maximum rank %d", w.location(), MaxRank)
	}

	n := v.Len()
	if isNumericKind(v.Type().Elem().Kind()) {
		// Typed numeric slice: no need to look at the elements.
		return []int{n}, nil
	}
	if n == 0 {
		// Nothing to measure: deeper extents come from the static type, if any.
		inner, ok := staticDims(v.Type().Elem())
		if !ok {
			return nil, errors.Wrapf(ErrInvalidElement, "%s has unsupported type %s", w.location(), v.Type())
		}
		return append([]int{0}, inner...), nil
	}

	w.path = append(w.path, 0)
	defer func() { w.path = w.path[:len(w.path)-1] }()

	inner, err := w.measure(v.Index(0))
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		w.path[len(w.path)-1] = i
		sibling, err := w.measure(v.Index(i))
		if err != nil {
			return nil, err
		}
		if !equalDims(inner, sibling) {
			return nil, errors.Wrapf(ErrRaggedShape, "%s has shape %s, but its first sibling has shape %s",
				w.location(), newShape(sibling), newShape(inner))
		}
	}
	return append([]int{n}, inner...), nil
}

// fill copies the leaves of v (already measured) into dst starting at pos,
// returning the position after the last element written.
func (w *nestedWalker) fill(v reflect.Value, dst []float64, pos int) int {
	v = unwrapInterface(v)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		dst[pos] = v.Float()
		return pos + 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst[pos] = float64(v.Int())
		return pos + 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		dst[pos] = float64(v.Uint())
		return pos + 1
	default: // Slice or Array.
		if v.Kind() == reflect.Slice && v.Type().Elem() == float64Type {
			return pos + reflect.Copy(reflect.ValueOf(dst[pos:pos+v.Len()]), v)
		}
		for i := 0; i < v.Len(); i++ {
			pos = w.fill(v.Index(i), dst, pos)
		}
		return pos
	}
}

// staticDims returns the extents implied by a nested slice/array type: arrays
// contribute their length, slices (necessarily empty here) contribute 0.
// It stops at a numeric type or at an interface (e.g. any), and reports false
// for any other element type.
func staticDims(t reflect.Type) ([]int, bool) {
	var dims []int
	// Recursive types such as `type T []T` would never end.
	for len(dims) <= MaxRank {
		switch kind := t.Kind(); {
		case kind == reflect.Slice:
			dims = append(dims, 0)
		case kind == reflect.Array:
			dims = append(dims, t.Len())
		case kind == reflect.Interface || isNumericKind(kind):
			return dims, true
		default:
			return nil, false
		}
		t = t.Elem()
	}
	return dims, true
}

// unwrapInterface follows interface values (e.g. elements of []any) to their dynamic value.
func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func equalDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
