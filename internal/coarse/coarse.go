// Package coarse reduces the full record set to a small set of
// representative points with a third-party k-means partitioner, so that the
// quadratic density clustering core runs over representatives instead of raw
// records.
package coarse

import (
	"errors"
	"fmt"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// ErrInvalidK is returned when the requested representative count is < 1.
var ErrInvalidK = errors.New("coarse: representatives must be >= 1")

// Result maps records to representative points.
type Result struct {
	// Centroids are the representative vectors, one per partition.
	Centroids [][]float64
	// Assignment names the representative index of every record, in record
	// order. This is the record-to-representative array the label propagator
	// consumes.
	Assignment []int
}

// observation wraps a record vector so the record index survives the
// partitioning round-trip.
type observation struct {
	record int
	coords clusters.Coordinates
}

func (o observation) Coordinates() clusters.Coordinates { return o.coords }

func (o observation) Distance(p clusters.Coordinates) float64 { return o.coords.Distance(p) }

// Partition groups the record vectors into k representatives. When k is at
// least the record count, partitioning degenerates to the identity mapping
// (every record is its own representative) and k-means is skipped; the
// identity path is also what keeps tiny corpora deterministic.
func Partition(vectors [][]float64, k int, deltaThreshold float64) (*Result, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(vectors) == 0 {
		return nil, errors.New("coarse: no records")
	}
	if k >= len(vectors) {
		return identity(vectors), nil
	}

	dataset := make(clusters.Observations, len(vectors))
	for i, v := range vectors {
		coords := make(clusters.Coordinates, len(v))
		copy(coords, v)
		dataset[i] = observation{record: i, coords: coords}
	}

	km, err := kmeans.NewWithOptions(deltaThreshold, nil)
	if err != nil {
		return nil, fmt.Errorf("coarse: configure k-means: %w", err)
	}
	partitions, err := km.Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("coarse: k-means partition: %w", err)
	}

	res := &Result{
		Centroids:  make([][]float64, len(partitions)),
		Assignment: make([]int, len(vectors)),
	}
	for rep, c := range partitions {
		center := make([]float64, len(c.Center))
		copy(center, c.Center)
		res.Centroids[rep] = center
		for _, obs := range c.Observations {
			o, ok := obs.(observation)
			if !ok {
				return nil, errors.New("coarse: partitioner returned a foreign observation")
			}
			res.Assignment[o.record] = rep
		}
	}
	return res, nil
}

func identity(vectors [][]float64) *Result {
	res := &Result{
		Centroids:  make([][]float64, len(vectors)),
		Assignment: make([]int, len(vectors)),
	}
	for i, v := range vectors {
		c := make([]float64, len(v))
		copy(c, v)
		res.Centroids[i] = c
		res.Assignment[i] = i
	}
	return res
}
