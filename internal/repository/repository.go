package repository

import (
	"context"
	"database/sql"
	"time"

	"gasmeter"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*gasmeter.User, error)
}

// ReportRepo stores finished calculations for retrieval and audit.
type ReportRepo interface {
	Append(ctx context.Context, rec gasmeter.ReportRecord) error
	Get(ctx context.Context, id string) (gasmeter.ReportRecord, error)
	List(ctx context.Context, from, to time.Time, strategy string) ([]gasmeter.ReportRecord, error)
	Latest(ctx context.Context) (gasmeter.ReportRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Repository struct {
	Reports ReportRepo
	Auth    Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Reports: NewReportSQLite(db),
		Auth:    NewUserRepository(db),
	}
}
