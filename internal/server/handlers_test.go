package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/matome/internal/config"
	"github.com/hyperjump/matome/internal/ingest"
	"github.com/hyperjump/matome/internal/keyword"
	"github.com/hyperjump/matome/internal/models"
	"github.com/hyperjump/matome/internal/pipeline"
	"github.com/hyperjump/matome/internal/search"
	"github.com/hyperjump/matome/internal/storage"
)

func testServer(t *testing.T) (*Server, storage.Storage) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Storage.DatabasePath = filepath.Join(dir, "db.sqlite")
	cfg.Storage.KeywordIndexPath = filepath.Join(dir, "bleve")

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	kwIndex, err := keyword.NewBleveIndex(cfg.Storage.KeywordIndexPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = kwIndex.Close() })

	p := pipeline.NewPipeline(store, cfg)
	finder := search.NewFinder(store, kwIndex)
	ingester := ingest.NewIngester(store, kwIndex, nil)
	return NewServer(p, finder, ingester, store, cfg, zap.NewNop()), store
}

// seedCorpus ingests two groups of identical documents.
func seedCorpus(t *testing.T, s *Server) {
	t.Helper()
	ctx := context.Background()
	docs := []struct{ id, content string }{
		{"a1", "alpha beta gamma"},
		{"a2", "alpha beta gamma"},
		{"a3", "alpha beta gamma"},
		{"b1", "delta epsilon zeta"},
		{"b2", "delta epsilon zeta"},
		{"b3", "delta epsilon zeta"},
	}
	for _, d := range docs {
		err := s.ingester.IngestDocument(ctx, &models.DocumentInput{ID: d.id, Content: d.content})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	s, _ := testServer(t)
	w := doRequest(t, s, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestHandleCreateRun(t *testing.T) {
	s, store := testServer(t)
	seedCorpus(t, s)

	body := map[string]interface{}{"epsilon": 0.2, "min_points": 2, "representatives": 100}
	w := doRequest(t, s, http.MethodPost, "/api/v1/runs", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Run      *models.Run             `json:"run"`
		Clusters []models.ClusterSummary `json:"clusters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Run == nil || resp.Run.ID == "" {
		t.Fatal("response missing run")
	}
	if resp.Run.Stats.Clusters != 2 {
		t.Errorf("clusters = %d, want 2", resp.Run.Stats.Clusters)
	}
	if len(resp.Clusters) != 2 {
		t.Errorf("got %d cluster summaries, want 2", len(resp.Clusters))
	}

	if _, err := store.GetRun(context.Background(), resp.Run.ID); err != nil {
		t.Errorf("run not persisted: %v", err)
	}
}

func TestHandleCreateRun_emptyCorpus(t *testing.T) {
	s, _ := testServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/v1/runs", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
}

func TestHandleCreateRun_invalidParams(t *testing.T) {
	s, _ := testServer(t)
	seedCorpus(t, s)
	body := map[string]interface{}{"epsilon": -0.5}
	w := doRequest(t, s, http.MethodPost, "/api/v1/runs", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestHandleGetRunAndLabels(t *testing.T) {
	s, store := testServer(t)
	ctx := context.Background()
	run := &models.Run{ID: "run-1", Params: models.RunParams{Epsilon: 0.3, MinPoints: 2, Representatives: 10}}
	if err := store.CreateRun(ctx, run, map[string]int{"d1": 0, "d2": -1}); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get run status = %d", w.Code)
	}

	w = doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1/labels", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get labels status = %d", w.Code)
	}
	var resp struct {
		RunID  string         `json:"run_id"`
		Labels map[string]int `json:"labels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Labels["d1"] != 0 || resp.Labels["d2"] != -1 {
		t.Errorf("labels = %v", resp.Labels)
	}

	w = doRequest(t, s, http.MethodGet, "/api/v1/runs/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing run status = %d, want 404", w.Code)
	}
}

func TestHandleListRuns(t *testing.T) {
	s, store := testServer(t)
	ctx := context.Background()
	for _, id := range []string{"run-1", "run-2"} {
		run := &models.Run{ID: id, Params: models.RunParams{Epsilon: 0.3, MinPoints: 2, Representatives: 10}}
		if err := store.CreateRun(ctx, run, nil); err != nil {
			t.Fatal(err)
		}
	}
	w := doRequest(t, s, http.MethodGet, "/api/v1/runs?limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Runs []*models.Run `json:"runs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Runs) != 1 || resp.Runs[0].ID != "run-2" {
		t.Errorf("runs = %+v", resp.Runs)
	}
}

func TestHandleClusters(t *testing.T) {
	s, store := testServer(t)
	ctx := context.Background()
	run := &models.Run{ID: "run-1", Params: models.RunParams{Epsilon: 0.3, MinPoints: 2, Representatives: 10}}
	labels := map[string]int{"d1": 0, "d2": 0, "d3": 1, "d4": -1}
	if err := store.CreateRun(ctx, run, labels); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, s, http.MethodGet, "/api/v1/clusters", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		RunID      string                  `json:"run_id"`
		Clusters   []models.ClusterSummary `json:"clusters"`
		Unassigned int                     `json:"unassigned"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(resp.Clusters))
	}
	if resp.Clusters[0].ID != 0 || resp.Clusters[0].Size != 2 {
		t.Errorf("cluster 0 = %+v", resp.Clusters[0])
	}
	if resp.Unassigned != 1 {
		t.Errorf("unassigned = %d, want 1", resp.Unassigned)
	}
}

func TestHandleClusters_noRuns(t *testing.T) {
	s, _ := testServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/v1/clusters", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandleSearch(t *testing.T) {
	s, store := testServer(t)
	ctx := context.Background()
	seedCorpus(t, s)
	run := &models.Run{ID: "run-1", Params: models.RunParams{Epsilon: 0.3, MinPoints: 2, Representatives: 10}}
	if err := store.CreateRun(ctx, run, map[string]int{"a1": 0, "a2": 0, "a3": 0, "b1": 1, "b2": 1, "b3": 1}); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, s, http.MethodGet, "/api/v1/search?q=alpha", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp models.FindResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
	for _, hit := range resp.Results {
		if hit.Label != 0 {
			t.Errorf("hit %s label = %d, want 0", hit.Document.ID, hit.Label)
		}
	}
}

func TestHandleSearch_missingQuery(t *testing.T) {
	s, _ := testServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/v1/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleDocumentLifecycle(t *testing.T) {
	s, _ := testServer(t)

	input := models.DocumentInput{ID: "d1", Title: "Doc", Content: "some body"}
	w := doRequest(t, s, http.MethodPost, "/api/v1/documents", input)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, s, http.MethodGet, "/api/v1/documents/d1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var doc models.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Content != "some body" {
		t.Errorf("content = %q", doc.Content)
	}

	w = doRequest(t, s, http.MethodDelete, "/api/v1/documents/d1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doRequest(t, s, http.MethodGet, "/api/v1/documents/d1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	s, _ := testServer(t)
	seedCorpus(t, s)

	w := doRequest(t, s, http.MethodGet, "/api/v1/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprintf("%v", resp["documents"]) != "6" {
		t.Errorf("documents = %v, want 6", resp["documents"])
	}
	if _, ok := resp["config"]; !ok {
		t.Error("status response missing config")
	}
}
