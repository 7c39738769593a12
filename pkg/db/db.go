/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package db pkg/db/db.go provides SQLite storage for check results.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	log "github.com/sirupsen/logrus"
)

const (
	// Upper bound on rows returned by GetHistory.
	maxHistoryPoints = 1000

	// SQL statements for database initialization.
	createTablesSQL = `
	-- Check results
	CREATE TABLE IF NOT EXISTS check_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		check_name TEXT NOT NULL,
		state INTEGER NOT NULL,
		value REAL,
		summary TEXT,
		output TEXT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_check_results_name_time
		ON check_results(check_name, timestamp);
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

var _ Service = (*DB)(nil)

// New creates a new database connection and initializes the schema.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		closeQuietly(sqlDB)

		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		closeQuietly(sqlDB)

		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return db, nil
}

func closeQuietly(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

// StoreResult appends a check result.
func (db *DB) StoreResult(result *CheckResult) error {
	const insertSQL = `
		INSERT INTO check_results
			(check_name, state, value, summary, output, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	ts := result.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	res, err := db.Exec(insertSQL,
		result.CheckName,
		result.State,
		nullFloat(result.Value),
		result.Summary,
		result.Output,
		ts.UTC())
	if err != nil {
		return fmt.Errorf("%w check result: %w", ErrFailedToInsert, err)
	}

	if id, err := res.LastInsertId(); err == nil {
		result.ID = id
	}

	return nil
}

// GetLatestResults returns the most recent result of every check, ordered
// by check name.
func (db *DB) GetLatestResults() ([]CheckResult, error) {
	const querySQL = `
		SELECT r.id, r.check_name, r.state, r.value, r.summary, r.output, r.timestamp
		FROM check_results r
		WHERE r.id = (
			SELECT id FROM check_results
			WHERE check_name = r.check_name
			ORDER BY timestamp DESC, id DESC
			LIMIT 1
		)
		ORDER BY r.check_name
	`

	return db.queryResults(querySQL)
}

// GetHistory returns up to limit results of a check, newest first.
func (db *DB) GetHistory(checkName string, limit int) ([]CheckResult, error) {
	const querySQL = `
		SELECT id, check_name, state, value, summary, output, timestamp
		FROM check_results
		WHERE check_name = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	if limit <= 0 || limit > maxHistoryPoints {
		limit = maxHistoryPoints
	}

	return db.queryResults(querySQL, checkName, limit)
}

func (db *DB) queryResults(query string, args ...interface{}) ([]CheckResult, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w check results: %w", ErrFailedToQuery, err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}(rows)

	var results []CheckResult

	for rows.Next() {
		var (
			r       CheckResult
			value   sql.NullFloat64
			summary sql.NullString
			output  sql.NullString
		)

		if err := rows.Scan(&r.ID, &r.CheckName, &r.State, &value, &summary, &output, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("%w check result row: %w", ErrFailedToScan, err)
		}

		if value.Valid {
			v := value.Float64
			r.Value = &v
		}

		r.Summary = summary.String
		r.Output = output.String

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w check results: %w", ErrFailedToQuery, err)
	}

	return results, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *v, Valid: true}
}
