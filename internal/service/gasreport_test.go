package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"gasmeter"
	"gasmeter/internal/aga8"
)

type fakeReportRepo struct {
	appendErr error
	records   []gasmeter.ReportRecord

	getRec gasmeter.ReportRecord
	getErr error

	listErr      error
	lastFrom     time.Time
	lastTo       time.Time
	lastStrategy string

	deleteCutoffs []time.Time
	deleteN       int64
	deleteErr     error
}

func (f *fakeReportRepo) Append(_ context.Context, rec gasmeter.ReportRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeReportRepo) Get(_ context.Context, id string) (gasmeter.ReportRecord, error) {
	return f.getRec, f.getErr
}

func (f *fakeReportRepo) List(_ context.Context, from, to time.Time, strategy string) ([]gasmeter.ReportRecord, error) {
	f.lastFrom, f.lastTo, f.lastStrategy = from, to, strategy
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeReportRepo) Latest(_ context.Context) (gasmeter.ReportRecord, error) {
	if f.getErr != nil {
		return gasmeter.ReportRecord{}, f.getErr
	}
	if len(f.records) == 0 {
		return f.getRec, nil
	}
	return f.records[len(f.records)-1], nil
}

func (f *fakeReportRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.deleteCutoffs = append(f.deleteCutoffs, cutoff)
	return f.deleteN, f.deleteErr
}

func typicalParams() ReportParams {
	return ReportParams{
		Composition: map[string]float64{
			"methane":        94.5,
			"ethane":         3.2,
			"propane":        1.1,
			"n-butane":       0.3,
			"nitrogen":       0.7,
			"carbon_dioxide": 0.2,
		},
		PressureBarg:    20,
		TemperatureDegC: 25,
		Strategy:        "empirical",
	}
}

func TestGasReport_Generate_PersistsRecord(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := NewGasReportService(repo)

	t0 := time.Now().UTC()
	rec, err := svc.Generate(context.Background(), typicalParams())
	t1 := time.Now().UTC()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.records))
	}
	stored := repo.records[0]
	if stored.ID == "" || stored.ID != rec.ID {
		t.Fatalf("record id mismatch: stored=%q returned=%q", stored.ID, rec.ID)
	}
	if stored.CreatedAt.Before(t0) || stored.CreatedAt.After(t1) {
		t.Fatalf("created_at %v outside [%v, %v]", stored.CreatedAt, t0, t1)
	}
	if stored.Strategy != "empirical" {
		t.Fatalf("strategy = %q", stored.Strategy)
	}

	var sum float64
	for _, v := range stored.Composition {
		sum += v
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("stored composition sums to %v, want 100", sum)
	}

	z := rec.Report.BasicProperties.CompressibilityFactor
	if z < 0.88 || z > 0.98 {
		t.Fatalf("empirical Z = %v outside band", z)
	}
}

func TestGasReport_Generate_UnknownStrategy(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := NewGasReportService(repo)

	p := typicalParams()
	p.Strategy = "helmholtz"
	if _, err := svc.Generate(context.Background(), p); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
	if len(repo.records) != 0 {
		t.Fatalf("nothing should be stored on validation failure")
	}
}

func TestGasReport_Generate_ValidationAbortsBeforeStore(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := NewGasReportService(repo)

	p := typicalParams()
	p.Composition = map[string]float64{"methane": 65, "carbon_dioxide": 35}
	if _, err := svc.Generate(context.Background(), p); !errors.Is(err, aga8.ErrOutOfValidityRange) {
		t.Fatalf("got %v, want ErrOutOfValidityRange", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("nothing should be stored on validation failure")
	}
}

func TestGasReport_Generate_StoreFailureSurfaced(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{appendErr: errors.New("db down")}
	svc := NewGasReportService(repo)

	if _, err := svc.Generate(context.Background(), typicalParams()); err == nil {
		t.Fatalf("expected storage error to surface")
	}
}

func TestGasReport_EvaluateZ(t *testing.T) {
	t.Parallel()

	svc := NewGasReportService(&fakeReportRepo{})

	ev, err := svc.EvaluateZ(context.Background(), typicalParams())
	if err != nil {
		t.Fatalf("EvaluateZ: %v", err)
	}
	if ev.Strategy != aga8.StrategyEmpirical {
		t.Fatalf("strategy = %v", ev.Strategy)
	}
	if ev.Z < 0.88 || ev.Z > 0.98 {
		t.Fatalf("Z = %v outside band", ev.Z)
	}

	p := typicalParams()
	p.PressureBarg = -2
	if _, err := svc.EvaluateZ(context.Background(), p); !errors.Is(err, aga8.ErrInvalidPressure) {
		t.Fatalf("got %v, want ErrInvalidPressure", err)
	}
}
