// Package storage defines the persistence interface for documents and
// clustering runs.
package storage

import (
	"context"

	"github.com/hyperjump/matome/internal/models"
)

// Storage defines document and clustering-run persistence operations.
type Storage interface {
	// Document operations
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	UpdateDocument(ctx context.Context, doc *models.Document) error
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, offset, limit int) ([]*models.Document, error)
	// ListAllDocuments returns every document in a stable id order; the
	// clustering pipeline relies on this order being reproducible.
	ListAllDocuments(ctx context.Context) ([]*models.Document, error)

	// Run operations
	CreateRun(ctx context.Context, run *models.Run, labels map[string]int) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	LatestRun(ctx context.Context) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]*models.Run, error)
	// GetLabels returns document id -> cluster label for a run.
	GetLabels(ctx context.Context, runID string) (map[string]int, error)

	// Stats
	CountDocuments(ctx context.Context) (int64, error)
	CountRuns(ctx context.Context) (int64, error)

	Close() error
}
