package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"manna/internal/archive"
	"manna/internal/batch"
	"manna/internal/devotional"
	"manna/internal/logging"
)

// errorResponse mirrors the batch envelope for failed requests.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// statusResponse is the /api/status payload.
type statusResponse struct {
	Status        string `json:"status"`
	Running       bool   `json:"batch_running"`
	Model         string `json:"model"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Exclusions    int    `json:"exclusions"`
	Archived      int    `json:"archived,omitempty"`
}

// historyResponse is the /api/history payload.
type historyResponse struct {
	Status  string              `json:"status"`
	Count   int                 `json:"count"`
	Records []devotional.Record `json:"records"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req batch.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	resp, err := s.runner.Run(r.Context(), req)
	if err != nil {
		var verr *batch.ValidationError
		switch {
		case errors.As(err, &verr):
			s.writeError(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, batch.ErrBatchInProgress):
			s.writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, context.Canceled):
			// Client went away; nothing useful left to write.
			s.logger.Warn("generate aborted", logging.Error(err))
		default:
			s.logger.Error("batch run failed", logging.Error(err))
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:        "ok",
		Running:       s.runner.Running(),
		Model:         s.cfg.Gemini.Model,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Exclusions:    s.exclusions.Load().Len(),
	}
	if s.history != nil {
		if n, err := s.history.Count(r.Context()); err == nil {
			resp.Archived = n
		} else {
			s.logger.Warn("archive count failed", logging.Error(err))
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, "history archive is disabled")
		return
	}

	filter := archive.Filter{
		From:     r.URL.Query().Get("from"),
		To:       r.URL.Query().Get("to"),
		Language: r.URL.Query().Get("lang"),
		Version:  r.URL.Query().Get("version"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = limit
	}
	for _, date := range []string{filter.From, filter.To} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(devotional.DateFormat, date); err != nil {
			s.writeError(w, http.StatusBadRequest, "dates must be YYYY-MM-DD")
			return
		}
	}

	records, err := s.history.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("history query failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "history query failed")
		return
	}
	if records == nil {
		records = []devotional.Record{}
	}
	s.writeJSON(w, http.StatusOK, historyResponse{Status: "ok", Count: len(records), Records: records})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker != nil {
		if err := s.checker.HealthCheck(r.Context()); err != nil {
			s.logger.Warn("upstream health check failed", logging.Error(err))
			s.writeError(w, http.StatusServiceUnavailable, "generation service unreachable")
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("write response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, code, errorResponse{Status: "error", Message: message})
}
