package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gasmeter"
	"gasmeter/internal/repository"
	"gasmeter/internal/service"
)

func getWithAuth(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	addAuth(req)
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandlers_List(t *testing.T) {
	hist := &mockHistory{records: []gasmeter.ReportRecord{sampleRecord()}}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: hist}
	r := newTestRouter(s)

	w := getWithAuth(t, r, "/api/v1/reports/?from=2026-03-01&to=2026-03-05&strategy=cubic")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Count   int                     `json:"count"`
		Records []gasmeter.ReportRecord `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || len(resp.Records) != 1 || resp.Records[0].ID != "rec-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if hist.lastFilter.Strategy != "cubic" {
		t.Fatalf("strategy filter not passed: %+v", hist.lastFilter)
	}
	wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !hist.lastFilter.From.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", hist.lastFilter.From, wantFrom)
	}
	// date-only 'to' becomes end of day inclusive
	wantTo := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
	if !hist.lastFilter.To.Equal(wantTo) {
		t.Fatalf("to = %v, want %v", hist.lastFilter.To, wantTo)
	}
}

func TestReportHandlers_List_BadQueries(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: &mockHistory{}}
	r := newTestRouter(s)

	cases := []struct {
		name string
		path string
	}{
		{"bad from", "/api/v1/reports/?from=yesterday"},
		{"bad to", "/api/v1/reports/?to=31-08-2026"},
		{"inverted range", "/api/v1/reports/?from=2026-03-05&to=2026-03-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := getWithAuth(t, r, tc.path); w.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400 (body=%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestReportHandlers_Get(t *testing.T) {
	hist := &mockHistory{rec: sampleRecord()}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: hist}
	r := newTestRouter(s)

	w := getWithAuth(t, r, "/api/v1/reports/rec-1")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	if hist.lastGetID != "rec-1" {
		t.Fatalf("id passed = %q", hist.lastGetID)
	}

	var rec gasmeter.ReportRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Report.Compliance.Method != "AGA8-92DC (simplified)" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestReportHandlers_Get_NotFound(t *testing.T) {
	hist := &mockHistory{getErr: repository.ErrRecordNotFound}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: hist}
	r := newTestRouter(s)

	if w := getWithAuth(t, r, "/api/v1/reports/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

func TestReportHandlers_PDF(t *testing.T) {
	hist := &mockHistory{rec: sampleRecord()}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: hist}
	r := newTestRouter(s)

	w := getWithAuth(t, r, "/api/v1/reports/rec-1/pdf")
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status=%d, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body does not look like a PDF: %q", w.Body.Bytes()[:16])
	}
}
