package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hyperjump/matome/internal/models"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDocumentCRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	doc := &models.Document{
		ID:      "doc-1",
		Title:   "Test Document",
		Content: "some content about storage",
		Metadata: map[string]interface{}{
			"path": "/tmp/test.txt",
		},
	}
	if err := s.CreateDocument(ctx, doc); err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on create")
	}

	got, err := s.GetDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != doc.Title || got.Content != doc.Content {
		t.Errorf("unexpected document: %+v", got)
	}
	if got.Metadata["path"] != "/tmp/test.txt" {
		t.Errorf("metadata not round-tripped: %+v", got.Metadata)
	}

	got.Title = "Updated"
	if err := s.UpdateDocument(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got2, err := s.GetDocument(ctx, "doc-1")
	if err != nil {
		t.Fatal(err)
	}
	if got2.Title != "Updated" {
		t.Errorf("title = %q, want Updated", got2.Title)
	}

	if err := s.DeleteDocument(ctx, "doc-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetDocument(ctx, "doc-1"); err == nil {
		t.Error("expected error for deleted document")
	}
}

func TestUpdateDocument_notFound(t *testing.T) {
	s := newTestStorage(t)
	err := s.UpdateDocument(context.Background(), &models.Document{ID: "missing", Content: "x"})
	if err == nil {
		t.Error("expected error updating missing document")
	}
}

func TestListAllDocuments_stableOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if err := s.CreateDocument(ctx, &models.Document{ID: id, Content: id}); err != nil {
			t.Fatal(err)
		}
	}
	docs, err := s.ListAllDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if docs[i].ID != want {
			t.Errorf("docs[%d].ID = %q, want %q", i, docs[i].ID, want)
		}
	}
}

func TestRunRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	run := &models.Run{
		ID: "run-1",
		Params: models.RunParams{
			Epsilon:         0.35,
			MinPoints:       3,
			Representatives: 50,
		},
		Stats: models.RunStats{
			Documents:   3,
			Clusters:    2,
			NoisePoints: 1,
		},
	}
	labels := map[string]int{"a": 0, "b": 1, "c": -1}
	if err := s.CreateRun(ctx, run, labels); err != nil {
		t.Fatalf("create run: %v", err)
	}

	got, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.Params.Epsilon != 0.35 || got.Params.MinPoints != 3 {
		t.Errorf("params not round-tripped: %+v", got.Params)
	}
	if got.Stats.Clusters != 2 || got.Stats.NoisePoints != 1 {
		t.Errorf("stats not round-tripped: %+v", got.Stats)
	}

	gotLabels, err := s.GetLabels(ctx, "run-1")
	if err != nil {
		t.Fatalf("get labels: %v", err)
	}
	if len(gotLabels) != 3 {
		t.Fatalf("got %d labels, want 3", len(gotLabels))
	}
	if gotLabels["c"] != -1 {
		t.Errorf("label for c = %d, want -1", gotLabels["c"])
	}
}

func TestLatestRun(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if _, err := s.LatestRun(ctx); err == nil {
		t.Error("expected error with no runs")
	}

	for _, id := range []string{"run-1", "run-2"} {
		run := &models.Run{ID: id, Params: models.RunParams{Epsilon: 0.3, MinPoints: 2}}
		if err := s.CreateRun(ctx, run, nil); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := s.LatestRun(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != "run-2" {
		t.Errorf("latest run = %q, want run-2", latest.ID)
	}
}

func TestListRuns(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		run := &models.Run{ID: id, Params: models.RunParams{Epsilon: 0.3, MinPoints: 2}}
		if err := s.CreateRun(ctx, run, nil); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != "run-3" {
		t.Errorf("runs[0].ID = %q, want run-3", runs[0].ID)
	}
}

func TestCounts(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if err := s.CreateDocument(ctx, &models.Document{ID: "d1", Content: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateRun(ctx, &models.Run{ID: "r1"}, nil); err != nil {
		t.Fatal(err)
	}

	docs, err := s.CountDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if docs != 1 {
		t.Errorf("document count = %d, want 1", docs)
	}
	runs, err := s.CountRuns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Errorf("run count = %d, want 1", runs)
	}
}
