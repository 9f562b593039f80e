package cluster

import (
	"math"
	"testing"
)

func TestCosineDistance_identicalAndOrthogonal(t *testing.T) {
	if d := CosineDistance([]float64{1, 2, 3}, []float64{1, 2, 3}); math.Abs(d) > 1e-12 {
		t.Errorf("distance to self = %v, want 0", d)
	}
	if d := CosineDistance([]float64{1, 0}, []float64{0, 1}); math.Abs(d-1) > 1e-12 {
		t.Errorf("orthogonal distance = %v, want 1", d)
	}
	if d := CosineDistance([]float64{1, 0}, []float64{-1, 0}); math.Abs(d-2) > 1e-12 {
		t.Errorf("opposite distance = %v, want 2", d)
	}
}

func TestCosineDistance_symmetric(t *testing.T) {
	pairs := [][2][]float64{
		{{0.3, 0.7, 0.1}, {0.9, 0.2, 0.5}},
		{{1, 0, 0}, {1, 1, 1}},
		{{0.001, 2000}, {5, 0.004}},
	}
	for _, p := range pairs {
		ab := CosineDistance(p[0], p[1])
		ba := CosineDistance(p[1], p[0])
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("asymmetric: d(a,b)=%v d(b,a)=%v", ab, ba)
		}
	}
}

func TestCosineDistance_zeroVectorSentinel(t *testing.T) {
	zero := []float64{0, 0, 0}
	if d := CosineDistance(zero, []float64{1, 2, 3}); d != ZeroVectorDistance {
		t.Errorf("zero vs non-zero = %v, want sentinel %v", d, ZeroVectorDistance)
	}
	// An all-zero vector compared to itself also reports the sentinel, not a failure.
	if d := CosineDistance(zero, zero); d != ZeroVectorDistance {
		t.Errorf("zero vs zero = %v, want sentinel %v", d, ZeroVectorDistance)
	}
}
