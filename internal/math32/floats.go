// Package math32 provides float32 vector primitives.
// This is an internal package - external users should use the distance package.
package math32

import "math"

// Dot calculates the dot product of two vectors.
// Public for use by the distance package.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance.
// Public for use by the distance package.
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// SquaredNorm calculates the squared L2 norm of a vector.
func SquaredNorm(a []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * a[i]
	}

	return ret
}

// ScaleInPlace multiplies all elements of a by scalar.
//
// This is primarily used by distance normalization.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// AddInPlace adds b to a element-wise.
//
// This is primarily used by embedding averaging.
func AddInPlace(a, b []float32) {
	for i := range a {
		a[i] += b[i]
	}
}

// AddScaledInPlace adds b*scalar to a element-wise.
func AddScaledInPlace(a, b []float32, scalar float32) {
	for i := range a {
		a[i] += b[i] * scalar
	}
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
