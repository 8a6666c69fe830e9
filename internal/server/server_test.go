package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"manna/internal/archive"
	"manna/internal/batch"
	"manna/internal/devotional"
	"manna/internal/logging"
	"manna/internal/testsupport"
)

type stubRunner struct {
	resp    *batch.Response
	err     error
	running bool
	last    batch.Request
}

func (r *stubRunner) Run(_ context.Context, req batch.Request) (*batch.Response, error) {
	r.last = req
	if r.err != nil {
		return nil, r.err
	}
	return r.resp, nil
}

func (r *stubRunner) Running() bool { return r.running }

type stubHistory struct {
	records []devotional.Record
	err     error
	filter  archive.Filter
}

func (h *stubHistory) List(_ context.Context, filter archive.Filter) ([]devotional.Record, error) {
	h.filter = filter
	return h.records, h.err
}

func (h *stubHistory) Count(context.Context) (int, error) {
	return len(h.records), h.err
}

type stubChecker struct{ err error }

func (c *stubChecker) HealthCheck(context.Context) error { return c.err }

func newTestServer(t *testing.T, runner BatchRunner, opts ...Option) *Server {
	t.Helper()
	return New(testsupport.NewConfig(t), logging.NewNop(), runner, opts...)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestGenerateSuccess(t *testing.T) {
	tree := devotional.NewResultTree()
	tree.Append(devotional.Record{ID: "juan316RVR1960", Date: "2025-01-01", Language: "es", Version: "RVR1960"})
	runner := &stubRunner{resp: &batch.Response{Status: "success", Message: "generated 1 records (0 placeholders)", Data: tree}}
	srv := newTestServer(t, runner)

	body := `{"start_date":"2025-01-01","end_date":"2025-01-01","master_lang":"es","master_version":"RVR1960"}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp batch.Response
	decodeBody(t, rec, &resp)
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if got := resp.Data.Len(); got != 1 {
		t.Errorf("record count = %d, want 1", got)
	}
	if runner.last.MasterLang != "es" {
		t.Errorf("request not forwarded: %+v", runner.last)
	}
}

func TestGenerateErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &batch.ValidationError{Field: "start_date", Detail: "expected YYYY-MM-DD"}, http.StatusBadRequest},
		{"busy", batch.ErrBatchInProgress, http.StatusConflict},
		{"internal", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, &stubRunner{err: tc.err})
			body := `{"start_date":"2025-01-01","end_date":"2025-01-01","master_lang":"es","master_version":"RVR1960"}`
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body)))
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.code, rec.Body.String())
			}
			var resp map[string]any
			decodeBody(t, rec, &resp)
			if resp["status"] != "error" {
				t.Errorf("envelope status = %v", resp["status"])
			}
		})
	}
}

func TestGenerateRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, &stubRunner{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{not json")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStatusReportsRunState(t *testing.T) {
	history := &stubHistory{records: []devotional.Record{{ID: "a"}, {ID: "b"}}}
	srv := newTestServer(t, &stubRunner{running: true}, WithHistory(history))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp statusResponse
	decodeBody(t, rec, &resp)
	if !resp.Running {
		t.Error("batch_running = false, want true")
	}
	if resp.Archived != 2 {
		t.Errorf("archived = %d, want 2", resp.Archived)
	}
	if resp.Model == "" {
		t.Error("model missing from status")
	}
}

func TestHistoryForwardsFilter(t *testing.T) {
	history := &stubHistory{records: []devotional.Record{{ID: "juan316RVR1960", Date: "2025-01-01", Language: "es", Version: "RVR1960"}}}
	srv := newTestServer(t, &stubRunner{}, WithHistory(history))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/history?from=2025-01-01&to=2025-01-31&lang=es&version=RVR1960&limit=10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	want := archive.Filter{From: "2025-01-01", To: "2025-01-31", Language: "es", Version: "RVR1960", Limit: 10}
	if history.filter != want {
		t.Errorf("filter = %+v, want %+v", history.filter, want)
	}
	var resp historyResponse
	decodeBody(t, rec, &resp)
	if resp.Count != 1 || len(resp.Records) != 1 {
		t.Errorf("count = %d, records = %d", resp.Count, len(resp.Records))
	}
}

func TestHistoryValidation(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, WithHistory(&stubHistory{}))

	for _, target := range []string{
		"/api/history?from=01-01-2025",
		"/api/history?limit=0",
		"/api/history?limit=ten",
	} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestHistoryWithoutArchive(t *testing.T) {
	srv := newTestServer(t, &stubRunner{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, WithHealthChecker(&stubChecker{}))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	srv = newTestServer(t, &stubRunner{}, WithHealthChecker(&stubChecker{err: errors.New("timeout")}))
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unhealthy status = %d, want 503", rec.Code)
	}
}
