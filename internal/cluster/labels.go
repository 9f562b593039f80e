package cluster

import "fmt"

// Unassigned is the label carried by points that ended up in no cluster
// (noise representatives and the records mapped to them). It is an explicit
// sentinel, never a valid cluster id.
const Unassigned = -1

// Labels maps each of the n points to the id of the cluster containing it,
// or Unassigned. Cluster sets are disjoint by construction, so each point
// resolves to at most one id.
func Labels(clusters ClusterSet, n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Unassigned
	}
	for id, members := range clusters {
		for i := range members {
			labels[i] = id
		}
	}
	return labels
}

// PropagateLabels maps per-representative labels onto original records.
// assignment[r] names the representative point of record r, as produced by
// the coarse partitioner. Records whose representative is unclustered
// receive Unassigned. An out-of-range representative index is a fatal input
// error reported with the offending record.
func PropagateLabels(repLabels []int, assignment []int) ([]int, error) {
	out := make([]int, len(assignment))
	for r, rep := range assignment {
		if rep < 0 || rep >= len(repLabels) {
			return nil, fmt.Errorf("cluster: record %d references representative %d, have %d representatives", r, rep, len(repLabels))
		}
		out[r] = repLabels[rep]
	}
	return out, nil
}
