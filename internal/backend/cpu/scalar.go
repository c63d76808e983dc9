package cpu

// Scalar operations - element-wise operations with a scalar value.

func addScalarFloat64(dst, a []float64, scalar float64) {
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = a[i] + scalar
	}
}

func mulScalarFloat64(dst, a []float64, scalar float64) {
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = a[i] * scalar
	}
}

func addScalarInplaceFloat64(a []float64, scalar float64) {
	for i := range a {
		a[i] += scalar
	}
}

func mulScalarInplaceFloat64(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}
