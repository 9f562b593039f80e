// Package search resolves keyword queries against the ingested corpus and
// annotates each hit with its cluster label from the latest run.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/matome/internal/cluster"
	"github.com/hyperjump/matome/internal/keyword"
	"github.com/hyperjump/matome/internal/models"
	"github.com/hyperjump/matome/internal/storage"
)

// DefaultLimit is used when a find request does not specify a limit.
const DefaultLimit = 10

// Finder runs keyword search and joins hits with cluster labels.
type Finder struct {
	storage      storage.Storage
	keywordIndex keyword.KeywordIndex
	logger       *zap.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) FinderOption {
	return func(f *Finder) { f.logger = l }
}

// NewFinder creates a finder over the given storage and keyword index.
func NewFinder(store storage.Storage, keywordIndex keyword.KeywordIndex, opts ...FinderOption) *Finder {
	f := &Finder{
		storage:      store,
		keywordIndex: keywordIndex,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find searches the corpus for query and annotates each hit with the
// document's cluster label from the latest run. When no run exists yet,
// every label is the unassigned sentinel and RunID is empty.
func (f *Finder) Find(ctx context.Context, query string, limit int) (*models.FindResponse, error) {
	start := time.Now()
	if limit <= 0 {
		limit = DefaultLimit
	}

	hits, err := f.keywordIndex.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("find: keyword search: %w", err)
	}

	var runID string
	labels := map[string]int{}
	if run, err := f.storage.LatestRun(ctx); err == nil {
		runID = run.ID
		if l, err := f.storage.GetLabels(ctx, run.ID); err == nil {
			labels = l
		}
	}

	results := make([]*models.FindResult, 0, len(hits))
	for i, hit := range hits {
		doc, err := f.storage.GetDocument(ctx, hit.ID)
		if err != nil {
			// Index and storage can briefly disagree during re-ingestion.
			if f.logger != nil {
				f.logger.Debug("find: hit without stored document", zap.String("id", hit.ID))
			}
			continue
		}
		label := cluster.Unassigned
		if l, ok := labels[hit.ID]; ok {
			label = l
		}
		results = append(results, &models.FindResult{
			Document: doc,
			Score:    hit.Score,
			Label:    label,
			Rank:     i + 1,
		})
	}

	return &models.FindResponse{
		Results:   results,
		Total:     len(results),
		RunID:     runID,
		Query:     query,
		QueryTime: time.Since(start).Milliseconds(),
	}, nil
}
