// Package ingest loads corpus files into storage and the keyword index.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/matome/internal/docid"
	"github.com/hyperjump/matome/internal/extract"
	"github.com/hyperjump/matome/internal/keyword"
	"github.com/hyperjump/matome/internal/models"
	"github.com/hyperjump/matome/internal/storage"
)

const (
	metaKeySourcePath  = "source_path"
	metaKeySourceMtime = "source_mtime"
	metaKeySourceSize  = "source_size"
)

// Ingester loads documents into storage and the keyword index.
type Ingester struct {
	storage      storage.Storage
	keywordIndex keyword.KeywordIndex
	extractor    *extract.Extractor
	logger       *zap.Logger
}

// IngesterOption configures an Ingester.
type IngesterOption func(*Ingester)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) IngesterOption {
	return func(ing *Ingester) { ing.logger = l }
}

// NewIngester creates an ingester with the given dependencies.
// extractor may be nil; when nil, IngestFile treats all files as plain text.
func NewIngester(
	store storage.Storage,
	keywordIndex keyword.KeywordIndex,
	extractor *extract.Extractor,
	opts ...IngesterOption,
) *Ingester {
	ing := &Ingester{
		storage:      store,
		keywordIndex: keywordIndex,
		extractor:    extractor,
	}
	for _, opt := range opts {
		opt(ing)
	}
	return ing
}

// IngestDocument stores a document and indexes it for keyword search.
func (ing *Ingester) IngestDocument(ctx context.Context, input *models.DocumentInput) error {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	doc := &models.Document{
		ID:       input.ID,
		Title:    input.Title,
		Content:  Preprocess(input.Content),
		Metadata: input.Metadata,
	}
	if err := ing.storage.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	if err := ing.keywordIndex.Index(ctx, doc.ID, keywordView(doc)); err != nil {
		return fmt.Errorf("failed to index keywords: %w", err)
	}
	return nil
}

// keywordView returns a copy with the title normalized for keyword search:
// underscores become spaces so "company_profile_2021.pdf" is searchable as
// separate words (the standard analyzer does not split on underscore).
func keywordView(doc *models.Document) *models.Document {
	view := *doc
	view.Title = strings.ReplaceAll(doc.Title, "_", " ")
	return &view
}

// IngestFile reads the file at path and ingests it. The document ID is
// derived from the absolute path so re-ingesting updates the same
// document. Unchanged files (same mtime and size) are skipped.
func (ing *Ingester) IngestFile(ctx context.Context, path string, allowedExts []string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(absPath))
	if len(allowedExts) > 0 && !extensionAllowed(ext, allowedExts) {
		return fmt.Errorf("extension %q not in allowed list", ext)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", absPath)
	}
	id := docid.ForPath(absPath)
	if skip, err := ing.shouldSkipFile(ctx, absPath, id, info); err != nil {
		return err
	} else if skip {
		// Re-index in Bleve anyway, so a freshly created index gets
		// repopulated from unchanged stored documents.
		if doc, getErr := ing.storage.GetDocument(ctx, id); getErr == nil {
			_ = ing.keywordIndex.Index(ctx, doc.ID, keywordView(doc))
		}
		if ing.logger != nil {
			ing.logger.Debug("ingest skipping unchanged file", zap.String("path", absPath))
		}
		return nil
	}
	text, err := ing.extractContent(absPath)
	if err != nil {
		return fmt.Errorf("extract content: %w", err)
	}
	_ = ing.DeleteDocument(ctx, id)
	input := &models.DocumentInput{
		ID:      id,
		Title:   filepath.Base(absPath),
		Content: text,
		Metadata: map[string]interface{}{
			metaKeySourcePath:  absPath,
			metaKeySourceMtime: strconv.FormatInt(info.ModTime().UnixNano(), 10),
			metaKeySourceSize:  strconv.FormatInt(info.Size(), 10),
		},
	}
	if err := ing.IngestDocument(ctx, input); err != nil {
		return err
	}
	if ing.logger != nil {
		ing.logger.Debug("ingest file stored", zap.String("path", absPath), zap.String("doc_id", id))
	}
	return nil
}

// shouldSkipFile reports whether the file is already stored with the same
// mtime and size.
func (ing *Ingester) shouldSkipFile(ctx context.Context, absPath, id string, info os.FileInfo) (bool, error) {
	doc, err := ing.storage.GetDocument(ctx, id)
	if err != nil || doc.Metadata == nil {
		return false, nil
	}
	if doc.Metadata[metaKeySourcePath] != absPath {
		return false, nil
	}
	// Stored as strings because UnixNano exceeds JSON float64 precision.
	return metadataInt64(doc.Metadata, metaKeySourceMtime) == info.ModTime().UnixNano() &&
		metadataInt64(doc.Metadata, metaKeySourceSize) == info.Size(), nil
}

func metadataInt64(m map[string]interface{}, key string) int64 {
	switch n := m[key].(type) {
	case string:
		x, _ := strconv.ParseInt(n, 10, 64)
		return x
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// IngestDirectory walks dir and ingests each regular file whose extension
// is allowed. When recursive is false, subdirectories are skipped. Returns
// the number of files ingested and the first error encountered.
func (ing *Ingester) IngestDirectory(ctx context.Context, dir string, allowedExts []string, recursive bool) (n int, err error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return 0, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("not a directory: %s", absDir)
	}
	err = filepath.WalkDir(absDir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !recursive && path != absDir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if len(allowedExts) > 0 && !extensionAllowed(ext, allowedExts) {
			return nil
		}
		// Resolve symlinks so only regular files get ingested.
		finfo, statErr := os.Stat(path)
		if statErr != nil || !finfo.Mode().IsRegular() {
			return nil
		}
		if ingestErr := ing.IngestFile(ctx, path, allowedExts); ingestErr != nil {
			return ingestErr
		}
		n++
		return nil
	})
	return n, err
}

func (ing *Ingester) extractContent(path string) (string, error) {
	if ing.extractor != nil {
		return ing.extractor.Extract(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func extensionAllowed(ext string, allowed []string) bool {
	extNorm := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(a, ".")) == extNorm {
			return true
		}
	}
	return false
}

// DeleteDocument removes a document from the keyword index and storage.
func (ing *Ingester) DeleteDocument(ctx context.Context, id string) error {
	if err := ing.keywordIndex.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete from keyword index: %w", err)
	}
	if err := ing.storage.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if ing.logger != nil {
		ing.logger.Debug("ingest document deleted", zap.String("id", id))
	}
	return nil
}
