package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gasmeter"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by Get/Latest when nothing matches.
var ErrRecordNotFound = errors.New("report record not found")

// SQLite TIMESTAMP format used across tables.
const sqliteTimeLayout = "2006-01-02 15:04:05"

type ReportSQLite struct {
	db *sql.DB
}

func NewReportSQLite(db *sql.DB) *ReportSQLite { return &ReportSQLite{db: db} }

var _ ReportRepo = (*ReportSQLite)(nil)

const insertReportSQL = `
		INSERT INTO gas_reports (id, created_at, strategy, pressure_barg, temperature_degc, composition, report)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

const selectReportColumns = `id, created_at, strategy, pressure_barg, temperature_degc, composition, report`

// Append inserts a finished calculation. If ID or CreatedAt are empty,
// they're set here.
func (r *ReportSQLite) Append(ctx context.Context, rec gasmeter.ReportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	} else {
		rec.CreatedAt = rec.CreatedAt.UTC()
	}

	compJSON, err := json.Marshal(rec.Composition)
	if err != nil {
		return fmt.Errorf("marshal composition: %w", err)
	}
	reportJSON, err := json.Marshal(rec.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertReportSQL,
		rec.ID,
		rec.CreatedAt.Format(sqliteTimeLayout),
		strings.ToLower(strings.TrimSpace(rec.Strategy)),
		rec.PressureBarg,
		rec.TemperatureDegC,
		string(compJSON),
		string(reportJSON),
	)
	return err
}

// Get fetches one record by id.
func (r *ReportSQLite) Get(ctx context.Context, id string) (gasmeter.ReportRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectReportColumns+` FROM gas_reports WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return gasmeter.ReportRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return rec, err
}

// Latest fetches the most recently stored record.
func (r *ReportSQLite) Latest(ctx context.Context) (gasmeter.ReportRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectReportColumns+` FROM gas_reports ORDER BY created_at DESC, id DESC LIMIT 1`)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return gasmeter.ReportRecord{}, ErrRecordNotFound
	}
	return rec, err
}

// List returns records filtered by [from, to] (inclusive) and/or strategy,
// ordered ascending by creation time.
func (r *ReportSQLite) List(ctx context.Context, from, to time.Time, strategy string) ([]gasmeter.ReportRecord, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}
	if strategy = strings.ToLower(strings.TrimSpace(strategy)); strategy != "" {
		conds = append(conds, "strategy = ?")
		args = append(args, strategy)
	}

	q := `SELECT ` + selectReportColumns + ` FROM gas_reports`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]gasmeter.ReportRecord, 0, 32)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOlderThan removes records created before cutoff and reports how many
// went away. Used by the retention loop.
func (r *ReportSQLite) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM gas_reports WHERE created_at < ?`, cutoff.UTC().Format(sqliteTimeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (gasmeter.ReportRecord, error) {
	var (
		rec        gasmeter.ReportRecord
		compJSON   string
		reportJSON string
	)
	if err := s.Scan(
		&rec.ID,
		&rec.CreatedAt,
		&rec.Strategy,
		&rec.PressureBarg,
		&rec.TemperatureDegC,
		&compJSON,
		&reportJSON,
	); err != nil {
		return gasmeter.ReportRecord{}, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	if err := json.Unmarshal([]byte(compJSON), &rec.Composition); err != nil {
		return gasmeter.ReportRecord{}, fmt.Errorf("unmarshal composition for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(reportJSON), &rec.Report); err != nil {
		return gasmeter.ReportRecord{}, fmt.Errorf("unmarshal report for %s: %w", rec.ID, err)
	}
	return rec, nil
}
