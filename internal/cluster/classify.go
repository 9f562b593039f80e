package cluster

// Classification partitions point indices into three disjoint categories.
// Core has a neighborhood of at least minPts points, Border is non-core with
// at least one core neighbor, Noise is everything else. The three sets cover
// all indices exactly once.
type Classification struct {
	Core   IndexSet
	Border IndexSet
	Noise  IndexSet
}

// Classify derives the core/border/noise partition from the neighborhoods.
// Core membership is fixed before any border check runs, so evaluation order
// across points does not matter.
func Classify(neighborhoods []IndexSet, minPts int) Classification {
	c := Classification{
		Core:   make(IndexSet),
		Border: make(IndexSet),
		Noise:  make(IndexSet),
	}
	for i, nb := range neighborhoods {
		if nb.Len() >= minPts {
			c.Core.Add(i)
		}
	}
	for i, nb := range neighborhoods {
		if c.Core.Has(i) {
			continue
		}
		border := false
		for p := range nb {
			if c.Core.Has(p) {
				border = true
				break
			}
		}
		if border {
			c.Border.Add(i)
		} else {
			c.Noise.Add(i)
		}
	}
	return c
}
