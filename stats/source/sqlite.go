package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// submissionsSchema stores one scouting submission per row. payload holds the
// non-structural fields as a JSON object.
const submissionsSchema = `
CREATE TABLE IF NOT EXISTS scout_submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_key TEXT NOT NULL,
    match_key TEXT NOT NULL,
    team_number TEXT,
    payload TEXT NOT NULL DEFAULT '{}',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scout_submissions_event ON scout_submissions (event_key);
`

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configuring %s: %w", path, err)
	}
	return db, nil
}

// InitSQLite creates the submissions table if it does not exist.
func InitSQLite(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, submissionsSchema); err != nil {
		return fmt.Errorf("creating scout_submissions: %w", err)
	}
	return nil
}

// SaveSQLite appends records under eventKey in one transaction.
func SaveSQLite(ctx context.Context, db *sql.DB, eventKey string, records []stats.Record) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO scout_submissions (event_key, match_key, team_number, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		payload, err := json.Marshal(r.Fields)
		if err != nil {
			return fmt.Errorf("record %d: encoding payload: %w", i, err)
		}
		var team sql.NullString
		if r.HasTeam() {
			team = sql.NullString{String: strconv.Itoa(r.TeamNumber), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, eventKey, r.MatchKey, team, string(payload)); err != nil {
			return fmt.Errorf("record %d: inserting: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	logrus.Debugf("saved %d submissions for event %q", len(records), eventKey)
	return nil
}

// ReadSQLite returns the submissions for eventKey in insertion order. An empty
// eventKey reads every event.
func ReadSQLite(ctx context.Context, db *sql.DB, eventKey string) ([]stats.Record, error) {
	query := `SELECT match_key, team_number, payload FROM scout_submissions`
	var args []any
	if eventKey != "" {
		query += ` WHERE event_key = ?`
		args = append(args, eventKey)
	}
	query += ` ORDER BY id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying scout_submissions: %w", err)
	}
	defer rows.Close()

	var records []stats.Record
	for rows.Next() {
		var (
			matchKey string
			team     sql.NullString
			payload  sql.NullString
		)
		if err := rows.Scan(&matchKey, &team, &payload); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		teamNumber, err := stats.ParseTeamNumber(team.String)
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", matchKey, err)
		}
		fields := map[string]any{}
		if payload.Valid && payload.String != "" {
			if err := json.Unmarshal([]byte(payload.String), &fields); err != nil {
				return nil, fmt.Errorf("match %s team %s: decoding payload: %w", matchKey, team.String, err)
			}
		}
		records = append(records, stats.Record{MatchKey: matchKey, TeamNumber: teamNumber, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading scout_submissions: %w", err)
	}
	return records, nil
}

// LoadSQLite opens an existing database and reads eventKey's submissions.
func LoadSQLite(ctx context.Context, path, eventKey string) ([]stats.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	db, err := OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return ReadSQLite(ctx, db, eventKey)
}
