package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gasmeter"
)

func TestHistory_List_NormalizesFilter(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{records: []gasmeter.ReportRecord{{ID: "a"}, {ID: "b"}}}
	svc := NewHistoryService(repo)

	loc := time.FixedZone("UTC+5", 5*3600)
	from := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)
	to := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)

	got, err := svc.List(context.Background(), HistoryFilter{From: from, To: to, Strategy: "  Empirical "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if repo.lastFrom != from.UTC() || repo.lastTo != to.UTC() {
		t.Fatalf("range not normalized to UTC: %v / %v", repo.lastFrom, repo.lastTo)
	}
	if repo.lastStrategy != "empirical" {
		t.Fatalf("strategy = %q, want %q", repo.lastStrategy, "empirical")
	}
}

func TestHistory_List_InvalidRange(t *testing.T) {
	t.Parallel()

	svc := NewHistoryService(&fakeReportRepo{})
	f := HistoryFilter{
		From: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := svc.List(context.Background(), f); !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("got %v, want errInvalidTimeRange", err)
	}
}

func TestHistory_List_OpenEndedRangeAllowed(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := NewHistoryService(repo)

	if _, err := svc.List(context.Background(), HistoryFilter{To: time.Now()}); err != nil {
		t.Fatalf("open-ended range should pass validation: %v", err)
	}
	if !repo.lastFrom.IsZero() {
		t.Fatalf("zero From must stay zero, got %v", repo.lastFrom)
	}
}

func TestHistory_Get(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{getRec: gasmeter.ReportRecord{ID: "abc"}}
	svc := NewHistoryService(repo)

	rec, err := svc.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.ID != "abc" {
		t.Fatalf("id = %q", rec.ID)
	}

	if _, err := svc.Get(context.Background(), "   "); !errors.Is(err, errEmptyID) {
		t.Fatalf("got %v, want errEmptyID", err)
	}
}

func TestHistory_Latest(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{records: []gasmeter.ReportRecord{{ID: "old"}, {ID: "new"}}}
	svc := NewHistoryService(repo)

	rec, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if rec.ID != "new" {
		t.Fatalf("id = %q, want %q", rec.ID, "new")
	}
}
