// Package distance provides vector distance calculations and L2 normalization.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//
// # Usage
//
//	dist := distance.L2(a, b)
//	m, err := distance.ParseMetric("cosine")
//	fn, err := distance.Provider(m)
//	ok := distance.NormalizeL2InPlace(vec)
package distance
