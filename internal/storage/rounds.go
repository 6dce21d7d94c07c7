package storage

import (
	"fmt"
	"time"
)

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	GameID    string
	Seed      int64
	Outcome   string // "won" or "crashed"
	Score     int
	Fuel      float64 // fuel left when the round ended
	AvgWater  float64 // average pond water level when the round ended
	Duration  float64 // simulated seconds
	CreatedAt time.Time
}

// RoundSummary aggregates the round history for one game.
type RoundSummary struct {
	GameID      string
	Rounds      int
	Wins        int
	Crashes     int
	BestWater   float64
	AvgDuration float64
}

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, seed, outcome, score, fuel, avg_water, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.Outcome, r.Score, r.Fuel, r.AvgWater, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds returns the latest rounds for gameID, newest first.
// An empty gameID returns rounds of every mode.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, outcome, score, fuel, avg_water, duration_secs, created_at
		 FROM rounds
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return collect(rows, func(r *RoundRecord, createdAt *any) []any {
		return []any{&r.ID, &r.GameID, &r.Seed, &r.Outcome, &r.Score,
			&r.Fuel, &r.AvgWater, &r.Duration, createdAt}
	}, func(r *RoundRecord, createdAt any) { r.CreatedAt = parseTimestamp(createdAt) })
}

// GetRoundSummary aggregates wins, crashes and the best water level for gameID.
func (s *Store) GetRoundSummary(gameID string) (*RoundSummary, error) {
	sum := &RoundSummary{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'crashed' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(avg_water), 0),
		        COALESCE(AVG(duration_secs), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Rounds, &sum.Wins, &sum.Crashes, &sum.BestWater, &sum.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round summary: %w", err)
	}

	return sum, nil
}
