package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"semrun/internal/config"
	"semrun/internal/domain"
	"semrun/internal/report"
)

// RunSummary is one row of the run history
type RunSummary struct {
	ID        int64
	StartedAt time.Time
	Duration  time.Duration
	Counts    domain.Counts
	Aborted   bool
}

// History keeps every run in a MySQL database
type History struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS semrun_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		started_at DATETIME(3) NOT NULL,
		duration_ms BIGINT NOT NULL,
		passed INT NOT NULL,
		failed INT NOT NULL,
		errored INT NOT NULL,
		total INT NOT NULL,
		aborted BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS semrun_failures (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id BIGINT NOT NULL,
		path TEXT NOT NULL,
		status VARCHAR(16) NOT NULL,
		message TEXT NOT NULL,
		FOREIGN KEY (run_id) REFERENCES semrun_runs(id) ON DELETE CASCADE
	)`,
}

// HistoryDSN builds the MySQL DSN for the configured history database.
func HistoryDSN(hc config.HistoryConfig) string {
	mc := mysql.NewConfig()
	mc.User = hc.User
	mc.Passwd = hc.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(hc.Host, hc.Port)
	mc.DBName = hc.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// OpenHistory connects to the history database and creates its tables if needed.
func OpenHistory(ctx context.Context, hc config.HistoryConfig) (*History, error) {
	db, err := sql.Open("mysql", HistoryDSN(hc))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create history tables: %w", err)
		}
	}
	return &History{db: db}, nil
}

// Record stores the run and its failures in one transaction.
func (h *History) Record(ctx context.Context, r *domain.Report) (int64, error) {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin history transaction: %w", err)
	}
	defer tx.Rollback()

	c := r.Counts
	res, err := tx.ExecContext(ctx,
		`INSERT INTO semrun_runs (started_at, duration_ms, passed, failed, errored, total, aborted)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC(), r.Duration.Milliseconds(), c.Passed, c.Failed, c.Errored, c.Total, r.Aborted)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read run id: %w", err)
	}

	for _, f := range report.Failures(r) {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO semrun_failures (run_id, path, status, message) VALUES (?, ?, ?, ?)`,
			runID, strings.Join(f.Path, report.PathSeparator), f.Status.String(), f.Message)
		if err != nil {
			return 0, fmt.Errorf("insert failure: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit history: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, passed, failed, errored, total, aborted
		 FROM semrun_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var s RunSummary
		var ms int64
		if err := rows.Scan(&s.ID, &s.StartedAt, &ms, &s.Counts.Passed, &s.Counts.Failed,
			&s.Counts.Errored, &s.Counts.Total, &s.Aborted); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		s.Duration = time.Duration(ms) * time.Millisecond
		runs = append(runs, s)
	}
	return runs, rows.Err()
}

// Close closes the database connection
func (h *History) Close() error {
	return h.db.Close()
}
