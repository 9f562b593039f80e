package cluster

// ClusterSet is an evolving collection of clusters, each a set of point
// indices. It starts as the connected components of the core graph and grows
// only by border reassignment; points are never removed or moved between
// clusters.
type ClusterSet []IndexSet

// Centroids computes the coordinate-wise mean vector of each cluster's
// current membership. Called once on the initial (pre-border) cluster set;
// the result stays frozen while border points are reassigned, which keeps
// reassignment independent of iteration order.
func Centroids(points [][]float64, clusters ClusterSet) [][]float64 {
	if len(points) == 0 {
		return nil
	}
	dim := len(points[0])
	out := make([][]float64, len(clusters))
	for id, members := range clusters {
		mean := make([]float64, dim)
		for i := range members {
			for d, v := range points[i] {
				mean[d] += v
			}
		}
		if n := float64(members.Len()); n > 0 {
			for d := range mean {
				mean[d] /= n
			}
		}
		out[id] = mean
	}
	return out
}
