// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package findings records scan runs in a SQLite database.
package findings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"fillmore-labs.com/effectdeps/scan"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// Run is a recorded scan.
type Run struct {
	ID        int64          `json:"id"`
	StartedAt time.Time      `json:"started_at"`
	Roots     []string       `json:"roots"`
	Findings  []scan.Finding `json:"findings"`
}

// Summary describes a recorded run without its findings.
type Summary struct {
	ID        int64     `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Roots     []string  `json:"roots"`
	Findings  int       `json:"findings"`
}

// Store is the SQLite data access layer for scan runs.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database at path and creates missing tables.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=ON&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS runs (
  id          INTEGER PRIMARY KEY,
  started_at  TIMESTAMP NOT NULL,
  roots       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS findings (
  id       INTEGER PRIMARY KEY,
  run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
  path     TEXT NOT NULL,
  line     INTEGER NOT NULL,
  col      INTEGER NOT NULL,
  hook     TEXT NOT NULL,
  idx      INTEGER NOT NULL,
  kind     TEXT NOT NULL,
  message  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_findings_run ON findings(run_id);
`

// Record stores a run with its findings and returns the new run ID.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	roots, err := json.Marshal(run.Roots)
	if err != nil {
		return 0, fmt.Errorf("encode roots: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "INSERT INTO runs (started_at, roots) VALUES (?, ?)", run.StartedAt.UTC(), string(roots))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO findings (run_id, path, line, col, hook, idx, kind, message) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare finding: %w", err)
	}
	defer stmt.Close()

	for _, f := range run.Findings {
		if _, err := stmt.ExecContext(ctx, id, f.Path, f.Line, f.Column, f.Hook, f.Index, f.Kind.String(), f.Message); err != nil {
			return 0, fmt.Errorf("insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return id, nil
}

// Runs returns the most recent runs, newest first. A limit of zero or less returns all runs.
func (s *Store) Runs(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT r.id, r.started_at, r.roots, (SELECT COUNT(*) FROM findings f WHERE f.run_id = r.id)
FROM runs r
ORDER BY r.id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Summary

	for rows.Next() {
		var (
			r     Summary
			roots string
		)

		if err := rows.Scan(&r.ID, &r.StartedAt, &roots, &r.Findings); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		if err := json.Unmarshal([]byte(roots), &r.Roots); err != nil {
			return nil, fmt.Errorf("decode roots of run %d: %w", r.ID, err)
		}

		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	return runs, nil
}

// Findings returns the findings of a run in recording order.
func (s *Store) Findings(ctx context.Context, runID int64) ([]scan.Finding, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", runID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, runID)
		}

		return nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT path, line, col, hook, idx, kind, message FROM findings WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, fmt.Errorf("query findings: %w", err)
	}
	defer rows.Close()

	findings := []scan.Finding{}

	for rows.Next() {
		var (
			f    scan.Finding
			kind string
		)

		if err := rows.Scan(&f.Path, &f.Line, &f.Column, &f.Hook, &f.Index, &kind, &f.Message); err != nil {
			return nil, fmt.Errorf("scan finding: %w", err)
		}

		if err := f.Kind.UnmarshalText([]byte(kind)); err != nil {
			return nil, fmt.Errorf("finding kind: %w", err)
		}

		findings = append(findings, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query findings: %w", err)
	}

	return findings, nil
}
