// Package cluster implements density-based clustering over dense vectors
// using cosine distance: epsilon-neighborhoods, core/border/noise
// classification, connected components of the core graph, frozen-centroid
// border reassignment, and label propagation back to original records.
package cluster
