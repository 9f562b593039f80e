package cluster

// AssignBorders merges every border point into the cluster with the nearest
// frozen centroid. The linear scan keeps the first minimum, so an exact
// distance tie goes to the lowest cluster id. Border points are processed in
// ascending index order; since centroids are never recomputed here, the
// order does not affect the outcome. Noise points are left untouched.
func AssignBorders(points [][]float64, clusters ClusterSet, centroids [][]float64, border IndexSet) {
	if len(clusters) == 0 {
		return
	}
	for _, i := range border.Sorted() {
		best := 0
		bestDist := CosineDistance(points[i], centroids[0])
		for id := 1; id < len(centroids); id++ {
			if d := CosineDistance(points[i], centroids[id]); d < bestDist {
				best = id
				bestDist = d
			}
		}
		clusters[best].Add(i)
	}
}
