package cluster

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Params are the two knobs of the density clustering core.
type Params struct {
	// Eps is the cosine distance threshold for neighborhood membership.
	Eps float64
	// MinPts is the minimum neighborhood size (inclusive, self counts) for a
	// point to be core.
	MinPts int
}

var (
	// ErrNoPoints is returned when Run is given an empty point set.
	ErrNoPoints = errors.New("cluster: no points")
	// ErrInvalidEps is returned for a negative eps.
	ErrInvalidEps = errors.New("cluster: eps must be >= 0")
	// ErrInvalidMinPts is returned for minPts < 1.
	ErrInvalidMinPts = errors.New("cluster: min points must be >= 1")
)

// Stats summarizes the shape of a clustering result. Degenerate shapes
// (zero clusters, everything unassigned) are valid outcomes, not errors.
type Stats struct {
	Clusters     int `json:"clusters"`
	CorePoints   int `json:"core_points"`
	BorderPoints int `json:"border_points"`
	NoisePoints  int `json:"noise_points"`
	Unassigned   int `json:"unassigned"`
}

// Result is the immutable outcome of a clustering run over a point set.
type Result struct {
	// Labels holds one cluster id per input point, Unassigned for noise.
	Labels []int
	// Clusters holds the final membership sets, border points included.
	Clusters ClusterSet
	// Stats counts clusters and the core/border/noise split.
	Stats Stats
}

// Engine runs the clustering stages in order over an immutable point set.
type Engine struct {
	logger *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a logger for per-stage debug output.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine. Options (e.g. WithLogger) may be passed.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run clusters the points. Each stage consumes the previous stage's complete
// output: neighborhoods, classification, core-graph components, centroids,
// border reassignment, labels. Parameters are validated before any distance
// is computed; all points must share one dimension.
func (e *Engine) Run(points [][]float64, params Params) (*Result, error) {
	if err := validate(points, params); err != nil {
		return nil, err
	}

	neighborhoods := BuildNeighborhoods(points, params.Eps)
	classes := Classify(neighborhoods, params.MinPts)
	if e.logger != nil {
		e.logger.Debug("points classified",
			zap.Int("core", classes.Core.Len()),
			zap.Int("border", classes.Border.Len()),
			zap.Int("noise", classes.Noise.Len()))
	}

	graph := BuildCoreGraph(points, classes.Core, params.Eps)
	clusters := graph.Components()
	centroids := Centroids(points, clusters)
	if e.logger != nil {
		e.logger.Debug("core components extracted", zap.Int("clusters", len(clusters)))
	}

	AssignBorders(points, clusters, centroids, classes.Border)
	labels := Labels(clusters, len(points))

	unassigned := 0
	for _, l := range labels {
		if l == Unassigned {
			unassigned++
		}
	}
	res := &Result{
		Labels:   labels,
		Clusters: clusters,
		Stats: Stats{
			Clusters:     len(clusters),
			CorePoints:   classes.Core.Len(),
			BorderPoints: classes.Border.Len(),
			NoisePoints:  classes.Noise.Len(),
			Unassigned:   unassigned,
		},
	}
	if e.logger != nil {
		e.logger.Info("clustering complete",
			zap.Int("points", len(points)),
			zap.Int("clusters", res.Stats.Clusters),
			zap.Int("unassigned", res.Stats.Unassigned))
	}
	return res, nil
}

func validate(points [][]float64, params Params) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if params.Eps < 0 {
		return ErrInvalidEps
	}
	if params.MinPts < 1 {
		return ErrInvalidMinPts
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return fmt.Errorf("cluster: point %d has dimension %d, want %d", i, len(p), dim)
		}
	}
	return nil
}
