package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nghiafl1/game2048/internal/versus"
)

// VersusMatch represents the stored outcome of a human vs AI match.
type VersusMatch struct {
	ID         int64
	MatchID    string
	GridSize   int
	Difficulty string
	HumanScore int
	AIScore    int
	Winner     string // "human", "ai", or empty for a draw
	Duration   int    // Duration in seconds
	CreatedAt  time.Time
}

// VersusRecord counts match outcomes from the human's side.
type VersusRecord struct {
	Wins   int
	Losses int
	Draws  int
}

const versusColumns = `id, match_id, grid_size, difficulty, human_score, ai_score,
		        winner, duration_secs, created_at`

// SaveVersusMatch records the result of a versus match.
// Returns the ID of the inserted record.
func (s *Store) SaveVersusMatch(m VersusMatch) (int64, error) {
	var winner sql.NullString
	if m.Winner != "" {
		winner = sql.NullString{String: m.Winner, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO versus_matches
		 (match_id, grid_size, difficulty, human_score, ai_score, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.GridSize,
		m.Difficulty,
		m.HumanScore,
		m.AIScore,
		winner,
		m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save versus match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// VersusMatchByID retrieves a match by its match ID.
// Returns nil without error when the match is unknown.
func (s *Store) VersusMatchByID(matchID string) (*VersusMatch, error) {
	row := s.db.QueryRow(
		`SELECT `+versusColumns+`
		 FROM versus_matches
		 WHERE match_id = ?`,
		matchID,
	)

	m, err := scanVersus(row)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query versus match: %w", err)
	}
	return &m, nil
}

// RecentVersusMatches retrieves the most recent matches, newest first.
func (s *Store) RecentVersusMatches(limit int) ([]VersusMatch, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+versusColumns+`
		 FROM versus_matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query versus matches: %w", err)
	}
	defer rows.Close()

	var results []VersusMatch
	for rows.Next() {
		m, err := scanVersus(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Record returns the human's win/loss/draw tally over all matches.
func (s *Store) Record() (VersusRecord, error) {
	var r VersusRecord
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner IS NULL THEN 1 ELSE 0 END), 0)
		 FROM versus_matches`,
		string(versus.LabelHuman), string(versus.LabelAI),
	).Scan(&r.Wins, &r.Losses, &r.Draws)
	if err != nil {
		return r, fmt.Errorf("storage: cannot query versus record: %w", err)
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersus(row rowScanner) (VersusMatch, error) {
	var m VersusMatch
	var winner sql.NullString
	var createdAt any

	err := row.Scan(
		&m.ID,
		&m.MatchID,
		&m.GridSize,
		&m.Difficulty,
		&m.HumanScore,
		&m.AIScore,
		&winner,
		&m.Duration,
		&createdAt,
	)
	if err != nil {
		return m, err
	}

	if winner.Valid {
		m.Winner = winner.String
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// SaveMatchResult implements versus.MatchResultSaver.
// This adapter allows callers to save match results without direct storage dependency.
func (s *Store) SaveMatchResult(data versus.MatchResultData) error {
	_, err := s.SaveVersusMatch(VersusMatch{
		MatchID:    data.MatchID,
		GridSize:   data.GridSize,
		Difficulty: data.Difficulty,
		HumanScore: data.HumanScore,
		AIScore:    data.AIScore,
		Winner:     data.Winner,
		Duration:   data.DurationSecs,
	})
	return err
}

// Ensure Store implements MatchResultSaver
var _ versus.MatchResultSaver = (*Store)(nil)
