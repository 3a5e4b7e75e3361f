package service

import (
	"context"
	"fmt"
	"time"

	"gasmeter"
	"gasmeter/internal/aga8"
	"gasmeter/internal/repository"

	"github.com/google/uuid"
)

type GasReportService struct {
	reports repository.ReportRepo
}

func NewGasReportService(reports repository.ReportRepo) *GasReportService {
	return &GasReportService{reports: reports}
}

// buildRequest translates transport-level params into an engine request.
func buildRequest(p ReportParams) (aga8.Request, error) {
	strategy, err := aga8.ParseStrategy(p.Strategy)
	if err != nil {
		return aga8.Request{}, err
	}
	return aga8.Request{
		Composition:     aga8.Composition(p.Composition),
		PressureBarg:    p.PressureBarg,
		TemperatureDegC: p.TemperatureDegC,
		Strategy:        strategy,
	}, nil
}

// Generate runs the full report pipeline and persists the result. Validation
// failures abort before anything is stored; a storage failure after a
// successful calculation is surfaced rather than swallowed, so callers never
// see a record that is not on disk.
func (s *GasReportService) Generate(ctx context.Context, p ReportParams) (gasmeter.ReportRecord, error) {
	req, err := buildRequest(p)
	if err != nil {
		return gasmeter.ReportRecord{}, err
	}

	report, err := aga8.GenerateReport(req)
	if err != nil {
		return gasmeter.ReportRecord{}, err
	}

	rec := gasmeter.ReportRecord{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		Strategy:        report.Compliance.Strategy,
		PressureBarg:    p.PressureBarg,
		TemperatureDegC: p.TemperatureDegC,
		Composition:     report.InputConditions.Composition,
		Report:          report,
	}
	if err := s.reports.Append(ctx, rec); err != nil {
		return gasmeter.ReportRecord{}, fmt.Errorf("store report record: %w", err)
	}
	return rec, nil
}

// EvaluateZ runs only the compressibility-factor stage; nothing is stored.
func (s *GasReportService) EvaluateZ(_ context.Context, p ReportParams) (aga8.ZEvaluation, error) {
	req, err := buildRequest(p)
	if err != nil {
		return aga8.ZEvaluation{}, err
	}
	return aga8.EvaluateZ(req)
}
