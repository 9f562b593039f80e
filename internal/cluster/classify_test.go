package cluster

import "testing"

// testPoints returns three tight groups plus one outlier.
func testPoints() [][]float64 {
	return [][]float64{
		{1, 0, 0}, {0.99, 0.01, 0}, {0.98, 0.02, 0},
		{0, 1, 0}, {0.01, 0.99, 0},
		{0, 0, 1},
	}
}

func TestClassify_partitionIsExact(t *testing.T) {
	points := testPoints()
	for _, eps := range []float64{0, 0.001, 0.05, 0.5, 2} {
		for minPts := 1; minPts <= 4; minPts++ {
			neigh := BuildNeighborhoods(points, eps)
			c := Classify(neigh, minPts)
			total := c.Core.Len() + c.Border.Len() + c.Noise.Len()
			if total != len(points) {
				t.Fatalf("eps=%v minPts=%d: partition covers %d of %d points", eps, minPts, total, len(points))
			}
			for i := range points {
				n := 0
				if c.Core.Has(i) {
					n++
				}
				if c.Border.Has(i) {
					n++
				}
				if c.Noise.Has(i) {
					n++
				}
				if n != 1 {
					t.Fatalf("eps=%v minPts=%d: point %d in %d categories", eps, minPts, i, n)
				}
			}
		}
	}
}

func TestClassify_minPtsOneMeansAllCore(t *testing.T) {
	points := testPoints()
	neigh := BuildNeighborhoods(points, 0.001)
	c := Classify(neigh, 1)
	if c.Core.Len() != len(points) {
		t.Errorf("minPts=1: core = %d, want all %d", c.Core.Len(), len(points))
	}
	if c.Border.Len() != 0 || c.Noise.Len() != 0 {
		t.Errorf("minPts=1: border=%d noise=%d, want 0/0", c.Border.Len(), c.Noise.Len())
	}
}

func TestClassify_coreShrinksWithMinPts(t *testing.T) {
	points := testPoints()
	neigh := BuildNeighborhoods(points, 0.05)
	prev := Classify(neigh, 1).Core
	for minPts := 2; minPts <= 6; minPts++ {
		cur := Classify(neigh, minPts).Core
		for i := range cur {
			if !prev.Has(i) {
				t.Fatalf("minPts=%d: point %d became core after raising the threshold", minPts, i)
			}
		}
		prev = cur
	}
}
