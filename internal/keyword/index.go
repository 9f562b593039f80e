// Package keyword provides keyword (BM25) indexing and search over the
// ingested corpus. The find operation pairs keyword hits with cluster
// labels from the latest run.
package keyword

import (
	"context"

	"github.com/hyperjump/matome/internal/models"
)

// KeywordIndex defines keyword search operations.
type KeywordIndex interface {
	Index(ctx context.Context, id string, doc *models.Document) error
	Search(ctx context.Context, query string, limit int) ([]*KeywordResult, error)
	Delete(ctx context.Context, id string) error
	// DocCount returns the total number of documents in the index.
	DocCount() (uint64, error)
	Close() error
}

// KeywordResult is a single keyword search hit.
type KeywordResult struct {
	ID    string
	Score float64
}
