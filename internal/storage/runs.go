package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/gatecloud/internal/registry"
)

// RunEntry is one finished run in the history table.
type RunEntry struct {
	ID     string
	GameID string
	registry.RunRecord
	CreatedAt time.Time
}

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(gameID string, rec registry.RunRecord) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, level, seed, score, target_met, labels, dustbin, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, gameID, rec.Level, rec.Seed, rec.Score, boolInt(rec.TargetMet),
		strings.Join(rec.Labels, " "), rec.Dustbin, rec.Snapshot,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the newest runs first. An empty gameID lists every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if gameID == "" {
		rows, err = s.db.Query(
			`SELECT id, game_id, level, seed, score, target_met, labels, dustbin, snapshot, created_at
			 FROM runs
			 ORDER BY created_at DESC, rowid DESC
			 LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT id, game_id, level, seed, score, target_met, labels, dustbin, snapshot, created_at
			 FROM runs
			 WHERE game_id = ?
			 ORDER BY created_at DESC, rowid DESC
			 LIMIT ?`,
			gameID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunByID retrieves a run by its ID. Returns nil if no such run exists.
func (s *Store) RunByID(id string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, level, seed, score, target_met, labels, dustbin, snapshot, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ClearRuns deletes the run history for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunEntry, error) {
	var (
		e         RunEntry
		targetMet int
		labels    string
		createdAt any
	)
	err := sc.Scan(&e.ID, &e.GameID, &e.Level, &e.Seed, &e.Score, &targetMet,
		&labels, &e.Dustbin, &e.Snapshot, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	e.TargetMet = targetMet != 0
	e.Labels = strings.Fields(labels)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
