package cluster

import "math"

// ZeroVectorDistance is the cosine distance reported when either vector has
// zero magnitude. Cosine similarity is undefined there; upstream L2
// normalization leaves all-zero rows unchanged, so the condition is a valid
// domain case, not a failure. The value matches orthogonal vectors.
const ZeroVectorDistance = 1.0

// CosineDistance returns 1 - cosine similarity of a and b, in [0, 2].
// Vectors must have equal length; the engine validates dimensions before any
// distance is computed. Zero-magnitude vectors yield ZeroVectorDistance.
func CosineDistance(a, b []float64) float64 {
	var dot, na2, nb2 float64
	for i := range a {
		dot += a[i] * b[i]
		na2 += a[i] * a[i]
		nb2 += b[i] * b[i]
	}
	if na2 == 0 || nb2 == 0 {
		return ZeroVectorDistance
	}
	return 1 - dot/(math.Sqrt(na2)*math.Sqrt(nb2))
}
