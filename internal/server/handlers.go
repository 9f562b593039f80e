package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/matome/internal/cluster"
	"github.com/hyperjump/matome/internal/models"
	"github.com/hyperjump/matome/internal/pipeline"
	"github.com/hyperjump/matome/internal/storage"
)

// createRunRequest carries optional clustering parameter overrides; zero
// values fall back to the configured defaults.
type createRunRequest struct {
	Epsilon         float64 `json:"epsilon"`
	MinPoints       int     `json:"min_points"`
	Representatives int     `json:"representatives"`
}

func (s *Server) runParams(req createRunRequest) models.RunParams {
	params := models.RunParams{
		Epsilon:         req.Epsilon,
		MinPoints:       req.MinPoints,
		Representatives: req.Representatives,
	}
	if params.Epsilon == 0 {
		params.Epsilon = s.config.Cluster.Epsilon
	}
	if params.MinPoints == 0 {
		params.MinPoints = s.config.Cluster.MinPoints
	}
	if params.Representatives == 0 {
		params.Representatives = s.config.Coarse.Representatives
	}
	return params
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	params := s.runParams(req)
	if err := params.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("create run request",
		zap.Float64("epsilon", params.Epsilon),
		zap.Int("min_points", params.MinPoints),
		zap.Int("representatives", params.Representatives))

	res, err := s.pipeline.RunCorpus(r.Context(), params)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyCorpus) {
			s.respondError(w, http.StatusConflict, err.Error())
			return
		}
		s.logger.Error("clustering run failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"run":      res.Run,
		"clusters": res.Summaries,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	runs, err := s.storage.ListRuns(r.Context(), limit)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []*models.Run{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.storage.GetRun(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "run not found")
		return
	}
	s.respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleGetLabels(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.storage.GetRun(r.Context(), id); err != nil {
		s.respondError(w, http.StatusNotFound, "run not found")
		return
	}
	labels, err := s.storage.GetLabels(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"run_id": id,
		"labels": labels,
	})
}

// handleClusters summarizes the latest run's clusters from its persisted
// labels.
func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	run, err := s.storage.LatestRun(r.Context())
	if err != nil {
		s.respondError(w, http.StatusNotFound, "no runs yet")
		return
	}
	labels, err := s.storage.GetLabels(r.Context(), run.ID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sizes := make(map[int]int)
	unassigned := 0
	for _, label := range labels {
		if label == cluster.Unassigned {
			unassigned++
			continue
		}
		sizes[label]++
	}
	summaries := make([]models.ClusterSummary, 0, len(sizes))
	for id, size := range sizes {
		summaries = append(summaries, models.ClusterSummary{ID: id, Size: size})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"run_id":     run.ID,
		"clusters":   summaries,
		"unassigned": unassigned,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	s.logger.Debug("search request", zap.String("query", query), zap.Int("limit", limit))
	resp, err := s.finder.Find(r.Context(), query, limit)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIngestDocument(w http.ResponseWriter, r *http.Request) {
	var input models.DocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.ingester.IngestDocument(r.Context(), &input); err != nil {
		s.logger.Error("ingestion failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"id": input.ID, "status": "ingested"})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.storage.GetDocument(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.ingester.DeleteDocument(r.Context(), id); err != nil {
		s.logger.Error("deletion failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	docCount, err := s.storage.CountDocuments(ctx)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	runCount, err := s.storage.CountRuns(ctx)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"documents": docCount,
		"runs":      runCount,
	}
	if run, err := s.storage.LatestRun(ctx); err == nil {
		resp["latest_run"] = run
	}
	resp["config"] = map[string]interface{}{
		"database_path":      s.config.Storage.DatabasePath,
		"keyword_index_path": s.config.Storage.KeywordIndexPath,
		"epsilon":            s.config.Cluster.Epsilon,
		"min_points":         s.config.Cluster.MinPoints,
		"representatives":    s.config.Coarse.Representatives,
	}
	if diskBytes, err := storage.DiskUsageBytes(
		s.config.Storage.DatabasePath,
		s.config.Storage.KeywordIndexPath,
	); err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
