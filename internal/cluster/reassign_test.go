package cluster

import "testing"

func TestAssignBorders_nearestCentroid(t *testing.T) {
	points := [][]float64{
		{1, 0},     // cluster 0 core
		{0, 1},     // cluster 1 core
		{0.9, 0.1}, // border, closer to cluster 0
	}
	clusters := ClusterSet{{0: {}}, {1: {}}}
	centroids := Centroids(points, clusters)
	border := IndexSet{2: {}}
	AssignBorders(points, clusters, centroids, border)
	if !clusters[0].Has(2) {
		t.Error("border point not merged into the nearest cluster")
	}
	if clusters[1].Has(2) {
		t.Error("border point present in two clusters")
	}
}

func TestAssignBorders_exactTieGoesToLowestID(t *testing.T) {
	points := [][]float64{
		{1, 0},
		{0, 1},
		{1, 1}, // equidistant from both centroids
	}
	clusters := ClusterSet{{0: {}}, {1: {}}}
	centroids := Centroids(points, clusters)
	AssignBorders(points, clusters, centroids, IndexSet{2: {}})
	if !clusters[0].Has(2) {
		t.Error("exact tie should resolve to the lowest cluster id")
	}
	if clusters[1].Has(2) {
		t.Error("tie assigned the point twice")
	}
}

func TestAssignBorders_clustersStayDisjoint(t *testing.T) {
	points := [][]float64{
		{1, 0},
		{0, 1},
		{0.95, 0.05}, // border near cluster 0
		{0.9, 0.1},   // border near cluster 0
		{0.1, 0.9},   // border near cluster 1
	}
	clusters := ClusterSet{{0: {}}, {1: {}}}
	centroids := Centroids(points, clusters)
	AssignBorders(points, clusters, centroids, IndexSet{2: {}, 3: {}, 4: {}})
	seen := make(map[int]int)
	for _, members := range clusters {
		for i := range members {
			seen[i]++
		}
	}
	for i, n := range seen {
		if n != 1 {
			t.Errorf("point %d in %d clusters after reassignment", i, n)
		}
	}
	if len(seen) != len(points) {
		t.Errorf("cluster sets cover %d points, want %d", len(seen), len(points))
	}
}
