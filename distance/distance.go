package distance

import (
	"fmt"
	"strings"

	"github.com/hupe1980/embedgo/internal/math32"
)

// Epsilon is the smallest L2 norm treated as non-zero. Vectors with a norm
// below Epsilon cannot be normalized and score zero cosine similarity.
const Epsilon float32 = 1e-5

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	return math32.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return math32.SquaredL2(a, b)
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float32) float32 {
	return math32.Sqrt(math32.SquaredL2(a, b))
}

// Cosine calculates the cosine distance (1 - cosine similarity) between two
// vectors. If either vector has a norm below Epsilon the similarity is zero
// and the distance is 1.
// Assumes vectors are the same length (caller's responsibility).
func Cosine(a, b []float32) float32 {
	magA := math32.Sqrt(math32.SquaredNorm(a))
	magB := math32.Sqrt(math32.SquaredNorm(b))

	if magA < Epsilon || magB < Epsilon {
		return 1
	}

	return 1 - math32.Dot(a, b)/(magA*magB)
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has an L2 norm below Epsilon; v is left unchanged.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}

	norm := math32.Sqrt(math32.SquaredNorm(v))
	if norm < Epsilon {
		return false
	}

	math32.ScaleInPlace(v, 1/norm)

	return true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "l2"
	case MetricCosine:
		return "cosine"
	default:
		return fmt.Sprintf("unknown(%d)", m)
	}
}

// ParseMetric parses a metric name, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "l2":
		return MetricL2, nil
	case "cosine":
		return MetricCosine, nil
	default:
		return 0, fmt.Errorf("unknown metric: %q (supported: l2, cosine)", name)
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
