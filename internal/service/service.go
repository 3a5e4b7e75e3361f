package service

import (
	"context"
	"time"

	"gasmeter"
	"gasmeter/internal/aga8"
	"gasmeter/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// GasReport runs the property engine and records every finished calculation.
type GasReport interface {
	Generate(ctx context.Context, p ReportParams) (gasmeter.ReportRecord, error)
	EvaluateZ(ctx context.Context, p ReportParams) (aga8.ZEvaluation, error)
}

// History exposes read access to stored calculations.
type History interface {
	List(ctx context.Context, f HistoryFilter) ([]gasmeter.ReportRecord, error)
	Get(ctx context.Context, id string) (gasmeter.ReportRecord, error)
	Latest(ctx context.Context) (gasmeter.ReportRecord, error)
}

// Retention runs the background loop that prunes stored calculations.
// Stop via context cancellation in main() for graceful shutdown.
type Retention interface {
	Run(ctx context.Context, tick time.Duration)
	PruneOnce(ctx context.Context, now time.Time) (int64, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	GasReport
	History
	Retention
	Authorization
}

// NewService wires the repository layer into concrete services. retainFor
// bounds how long calculation records are kept.
func NewService(repos *repository.Repository, retainFor time.Duration) *Service {
	return &Service{
		GasReport:     NewGasReportService(repos.Reports),
		History:       NewHistoryService(repos.Reports),
		Retention:     NewRetentionService(repos.Reports, retainFor),
		Authorization: NewAuthService(repos.Auth),
	}
}
