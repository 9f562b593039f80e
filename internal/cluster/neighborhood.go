package cluster

import (
	"runtime"
	"sort"
	"sync"
)

// IndexSet is a set of point indices.
type IndexSet map[int]struct{}

// Has reports whether i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Add inserts i into the set.
func (s IndexSet) Add(i int) { s[i] = struct{}{} }

// Len returns the number of indices in the set.
func (s IndexSet) Len() int { return len(s) }

// Sorted returns the indices in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// BuildNeighborhoods computes, for every point, the set of point indices
// within cosine distance eps. A point always belongs to its own
// neighborhood: distance to self is 0 by index identity, even for the zero
// vector. Rows are independent, so they are computed by a fixed worker pool
// with each worker writing only its own output slot.
func BuildNeighborhoods(points [][]float64, eps float64) []IndexSet {
	n := len(points)
	out := make([]IndexSet, n)
	rows := make(chan int)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				set := make(IndexSet)
				set.Add(i)
				for p := range points {
					if p == i {
						continue
					}
					if CosineDistance(points[i], points[p]) <= eps {
						set.Add(p)
					}
				}
				out[i] = set
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	return out
}
