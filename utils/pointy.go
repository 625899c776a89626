package utils

// PointyInt creates a new int variable and returns its pointer.
func PointyInt(x int) *int {
	return &x
}

// PointyFloat64 creates a new float64 variable and returns its pointer.
func PointyFloat64(x float64) *float64 {
	return &x
}

// PointyBool creates a new bool variable and returns its pointer.
func PointyBool(x bool) *bool {
	return &x
}
