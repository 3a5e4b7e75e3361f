package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gasmeter"
	"gasmeter/internal/repository"
)

type HistoryService struct {
	reports repository.ReportRepo
}

func NewHistoryService(reports repository.ReportRepo) *HistoryService {
	return &HistoryService{reports: reports}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errEmptyID          = errors.New("record id is required")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the
// time range.
func normalizeAndValidateFilter(f HistoryFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	strategy := strings.TrimSpace(strings.ToLower(f.Strategy))
	return from, to, strategy, nil
}

// List returns stored calculations matching the filter, oldest first.
func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]gasmeter.ReportRecord, error) {
	from, to, strategy, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.reports.List(ctx, from, to, strategy)
}

// Get fetches one stored calculation by id.
func (s *HistoryService) Get(ctx context.Context, id string) (gasmeter.ReportRecord, error) {
	if strings.TrimSpace(id) == "" {
		return gasmeter.ReportRecord{}, errEmptyID
	}
	return s.reports.Get(ctx, id)
}

// Latest fetches the most recent stored calculation.
func (s *HistoryService) Latest(ctx context.Context) (gasmeter.ReportRecord, error) {
	return s.reports.Latest(ctx)
}
