// Package pipeline orchestrates a clustering run end to end: load the
// corpus, vectorize, coarse-partition, run the density core over the
// representatives, and propagate labels back to every document.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/matome/internal/cluster"
	"github.com/hyperjump/matome/internal/coarse"
	"github.com/hyperjump/matome/internal/config"
	"github.com/hyperjump/matome/internal/matrix"
	"github.com/hyperjump/matome/internal/models"
	"github.com/hyperjump/matome/internal/storage"
	"github.com/hyperjump/matome/internal/vectorize"
)

// ErrEmptyCorpus is returned when a corpus run finds no ingested documents.
var ErrEmptyCorpus = errors.New("pipeline: no documents ingested")

// topTermsPerCluster is how many TF-IDF terms a cluster summary carries.
const topTermsPerCluster = 5

// Pipeline runs clustering over the ingested corpus or a matrix file.
type Pipeline struct {
	storage storage.Storage
	cfg     *config.Config
	engine  *cluster.Engine
	logger  *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for progress output.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline over the given storage and config.
// storage may be nil when only RunMatrix is used.
func NewPipeline(store storage.Storage, cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		storage: store,
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.engine = cluster.NewEngine(cluster.WithLogger(p.logger))
	return p
}

// CorpusResult is the outcome of a corpus-mode run.
type CorpusResult struct {
	Run *models.Run
	// DocIDs and Labels are parallel, in the stable document order.
	DocIDs    []string
	Labels    []int
	Summaries []models.ClusterSummary
}

// RunCorpus vectorizes every ingested document, clusters, and persists the
// run with its per-document labels.
func (p *Pipeline) RunCorpus(ctx context.Context, params models.RunParams) (*CorpusResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	docs, err := p.storage.ListAllDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: list documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	texts := make([]string, len(docs))
	docIDs := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
		docIDs[i] = d.ID
	}

	vcfg := p.cfg.Vectorize
	vectorizer, err := vectorize.New(texts, vectorize.Options{
		MaxFeatures:     vcfg.MaxFeatures,
		MinDocFrequency: vcfg.MinDocumentFrequency,
		MinTokenLength:  vcfg.MinTokenLength,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: build vocabulary: %w", err)
	}
	vectors := vectorizer.Matrix(texts).Dense()
	if p.logger != nil {
		p.logger.Info("corpus vectorized",
			zap.Int("documents", len(docs)),
			zap.Int("features", len(vectorizer.Terms())))
	}

	labels, clusterResult, reps, err := p.clusterVectors(vectors, params)
	if err != nil {
		return nil, err
	}

	run := &models.Run{
		ID:     uuid.New().String(),
		Params: params,
		Stats:  runStats(len(docs), labels, clusterResult.Stats),
	}
	labelsByDoc := make(map[string]int, len(docs))
	for i, id := range docIDs {
		labelsByDoc[id] = labels[i]
	}
	if err := p.storage.CreateRun(ctx, run, labelsByDoc); err != nil {
		return nil, fmt.Errorf("pipeline: persist run: %w", err)
	}
	if p.logger != nil {
		p.logger.Info("run persisted",
			zap.String("run_id", run.ID),
			zap.Int("clusters", run.Stats.Clusters),
			zap.Int("unassigned", run.Stats.Unassigned))
	}

	return &CorpusResult{
		Run:       run,
		DocIDs:    docIDs,
		Labels:    labels,
		Summaries: summarize(vectorizer, reps, clusterResult, labels),
	}, nil
}

// MatrixResult is the outcome of a file-mode run. Nothing is persisted.
type MatrixResult struct {
	Labels []int           `json:"labels"`
	Stats  models.RunStats `json:"stats"`
}

// RunMatrix clusters pre-vectorized records from a sparse matrix file:
// IDF reweighting, L2 normalization, coarse partitioning, density core,
// label propagation.
func (p *Pipeline) RunMatrix(path string, base matrix.IndexBase, params models.RunParams) (*MatrixResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	m, err := matrix.ReadFile(path, base)
	if err != nil {
		return nil, err
	}
	weighted := m.ScaleIDF(m.IDFWeights())
	weighted.NormalizeL2()
	vectors := weighted.Dense()
	if p.logger != nil {
		p.logger.Info("matrix loaded",
			zap.String("path", path),
			zap.Int("records", m.Rows()),
			zap.Int("features", m.Features()))
	}

	labels, clusterResult, _, err := p.clusterVectors(vectors, params)
	if err != nil {
		return nil, err
	}
	return &MatrixResult{
		Labels: labels,
		Stats:  runStats(len(vectors), labels, clusterResult.Stats),
	}, nil
}

// clusterVectors runs coarse partitioning, the density core, and label
// propagation. Returned labels are per input record; the representative
// vectors come back too, for cluster summaries.
func (p *Pipeline) clusterVectors(vectors [][]float64, params models.RunParams) ([]int, *cluster.Result, [][]float64, error) {
	part, err := coarse.Partition(vectors, params.Representatives, p.cfg.Coarse.DeltaThreshold)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := p.engine.Run(part.Centroids, cluster.Params{
		Eps:    params.Epsilon,
		MinPts: params.MinPoints,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	labels, err := cluster.PropagateLabels(res.Labels, part.Assignment)
	if err != nil {
		return nil, nil, nil, err
	}
	return labels, res, part.Centroids, nil
}

func runStats(documents int, labels []int, s cluster.Stats) models.RunStats {
	unassigned := 0
	for _, l := range labels {
		if l == cluster.Unassigned {
			unassigned++
		}
	}
	return models.RunStats{
		Documents:    documents,
		Clusters:     s.Clusters,
		CorePoints:   s.CorePoints,
		BorderPoints: s.BorderPoints,
		NoisePoints:  s.NoisePoints,
		Unassigned:   unassigned,
	}
}

// summarize builds per-cluster summaries: document counts from the
// propagated labels and top TF-IDF terms from the cluster centroids over
// the representative vectors. The centroids here are display-only.
func summarize(v *vectorize.Vectorizer, reps [][]float64, res *cluster.Result, labels []int) []models.ClusterSummary {
	sizes := make(map[int]int)
	for _, l := range labels {
		if l != cluster.Unassigned {
			sizes[l]++
		}
	}
	centroids := cluster.Centroids(reps, res.Clusters)
	summaries := make([]models.ClusterSummary, len(res.Clusters))
	for id := range res.Clusters {
		summaries[id] = models.ClusterSummary{
			ID:       id,
			Size:     sizes[id],
			TopTerms: v.TopTerms(centroids[id], topTermsPerCluster),
		}
	}
	return summaries
}
