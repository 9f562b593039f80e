package models

import (
	"fmt"
	"time"
)

// RunParams are the knobs of a clustering run over the ingested corpus.
type RunParams struct {
	// Epsilon is the cosine distance threshold for the density core.
	Epsilon float64 `json:"epsilon"`
	// MinPoints is the minimum neighborhood size for core-point status.
	MinPoints int `json:"min_points"`
	// Representatives is the coarse k-means partition size; the density core
	// runs over this many representative points, not the raw corpus.
	Representatives int `json:"representatives"`
}

// Validate rejects parameter combinations before any computation starts.
func (p *RunParams) Validate() error {
	if p.Epsilon < 0 {
		return fmt.Errorf("epsilon must be >= 0, got %v", p.Epsilon)
	}
	if p.MinPoints < 1 {
		return fmt.Errorf("min_points must be >= 1, got %d", p.MinPoints)
	}
	if p.Representatives < 1 {
		return fmt.Errorf("representatives must be >= 1, got %d", p.Representatives)
	}
	return nil
}

// RunStats summarizes the outcome shape of a run. A run with zero clusters
// and everything unassigned is a valid, if degenerate, outcome.
type RunStats struct {
	Documents    int `json:"documents"`
	Clusters     int `json:"clusters"`
	CorePoints   int `json:"core_points"`
	BorderPoints int `json:"border_points"`
	NoisePoints  int `json:"noise_points"`
	Unassigned   int `json:"unassigned"`
}

// Run is a persisted clustering run: parameters, shape stats, and the
// per-document labels stored alongside.
type Run struct {
	ID        string    `json:"id" db:"id"`
	Params    RunParams `json:"params"`
	Stats     RunStats  `json:"stats"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ClusterSummary is the human-facing view of one cluster from a run.
type ClusterSummary struct {
	ID       int      `json:"id"`
	Size     int      `json:"size"`
	TopTerms []string `json:"top_terms,omitempty"`
}
