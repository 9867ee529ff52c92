package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// SQLStore persists transcripts in a single table, one row per session with
// the history and report kept as JSON columns. The same statements work for
// both sqlite and postgres; only the placeholder style differs.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

// NewSQLStore wraps an open connection. The caller owns the connection
// lifecycle.
func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
  id TEXT PRIMARY KEY,
  student_id TEXT NOT NULL DEFAULT '',
  student_name TEXT NOT NULL DEFAULT '',
  scenario_json TEXT NOT NULL,
  history_json TEXT NOT NULL,
  report_json TEXT,
  saved_at BIGINT NOT NULL
);
`

func (s *SQLStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return err
}

// rebind swaps $N placeholders for ? when running on sqlite.
func (s *SQLStore) rebind(q string) string {
	if s.driver != "sqlite" {
		return q
	}
	out := make([]byte, 0, len(q))
	for i := 0; i < len(q); i++ {
		if q[i] == '$' {
			out = append(out, '?')
			for i+1 < len(q) && q[i+1] >= '0' && q[i+1] <= '9' {
				i++
			}
			continue
		}
		out = append(out, q[i])
	}
	return string(out)
}

// Append inserts a new row, assigning the id and timestamp.
func (s *SQLStore) Append(ctx context.Context, t pkg.Transcript) (string, error) {
	t.ID = uuid.NewString()
	t.SavedAt = time.Now()

	scen, err := json.Marshal(t.Scenario)
	if err != nil {
		return "", err
	}
	hist, err := json.Marshal(t.History)
	if err != nil {
		return "", err
	}
	var report any
	if t.Report != nil {
		data, err := json.Marshal(t.Report)
		if err != nil {
			return "", err
		}
		report = string(data)
	}
	_, err = s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO transcripts (id, student_id, student_name, scenario_json, history_json, report_json, saved_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`),
		t.ID, t.Student.ID, t.Student.Name, string(scen), string(hist), report, t.SavedAt.UnixMilli())
	if err != nil {
		return "", fmt.Errorf("insert transcript: %w", err)
	}
	return t.ID, nil
}

// List returns summaries in save order.
func (s *SQLStore) List(ctx context.Context) ([]pkg.TranscriptSummary, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, student_id, student_name, scenario_json, saved_at
		 FROM transcripts ORDER BY saved_at ASC`))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pkg.TranscriptSummary, 0)
	for rows.Next() {
		var sum pkg.TranscriptSummary
		var scen string
		var savedAt int64
		if err := rows.Scan(&sum.ID, &sum.Student.ID, &sum.Student.Name, &scen, &savedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(scen), &sum.Scenario); err != nil {
			return nil, err
		}
		sum.SavedAt = time.UnixMilli(savedAt)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Get returns the full record for id, or ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, id string) (pkg.Transcript, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, student_id, student_name, scenario_json, history_json, report_json, saved_at
		 FROM transcripts WHERE id=$1`), id)

	var t pkg.Transcript
	var scen, hist string
	var report sql.NullString
	var savedAt int64
	err := row.Scan(&t.ID, &t.Student.ID, &t.Student.Name, &scen, &hist, &report, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return pkg.Transcript{}, ErrNotFound
	}
	if err != nil {
		return pkg.Transcript{}, err
	}
	if err := json.Unmarshal([]byte(scen), &t.Scenario); err != nil {
		return pkg.Transcript{}, err
	}
	if err := json.Unmarshal([]byte(hist), &t.History); err != nil {
		return pkg.Transcript{}, err
	}
	if report.Valid && report.String != "" {
		var r pkg.RubricReport
		if err := json.Unmarshal([]byte(report.String), &r); err != nil {
			return pkg.Transcript{}, err
		}
		t.Report = &r
	}
	t.SavedAt = time.UnixMilli(savedAt)
	return t, nil
}
