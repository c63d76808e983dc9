package ndarray

import (
	"math"
	"strconv"
	"strings"
)

// String renders the elements in row-major order with one bracket level per
// dimension, e.g. "[5, 7, 9]" or "[[1, 2], [3, 4]]". A scalar renders as a bare
// number. The format is meant for diagnostics and tests, not for parsing.
func (a *NdArray) String() string {
	data := a.buf.float64s()
	if a.shape.Rank() == 0 {
		return formatFloat(data[0])
	}
	var sb strings.Builder
	writeAxis(&sb, a.shape.dims, a.shape.strides, data)
	return sb.String()
}

func writeAxis(sb *strings.Builder, dims, strides []int, data []float64) {
	sb.WriteByte('[')
	for i := 0; i < dims[0]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if len(dims) == 1 {
			sb.WriteString(formatFloat(data[i]))
			continue
		}
		writeAxis(sb, dims[1:], strides[1:], data[i*strides[0]:(i+1)*strides[0]])
	}
	sb.WriteByte(']')
}

// formatFloat uses the shortest representation that round-trips: 5 → "5",
// 17.5 → "17.5". Exponent notation is only used for very small or very large
// magnitudes, e.g. 1e+21.
func formatFloat(v float64) string {
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
