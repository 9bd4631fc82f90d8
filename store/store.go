// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"towncrier/models"
)

// Store persists town square registries. Implementations must tolerate
// "no prior data": Load returns ok=false for an unknown game.
type Store interface {
	Load(gameID string) (ts *models.TownSquare, ok bool, err error)
	Save(gameID string, ts *models.TownSquare) error
}

// SQL stores each registry as a JSON payload in the registry table.
// Works against both sqlite and postgres.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// Load reads and deserializes the registry for a game.
func (s *SQL) Load(gameID string) (*models.TownSquare, bool, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT payload FROM registry WHERE game_id = $1
	`, gameID).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load registry: %w", err)
	}

	var ts models.TownSquare
	if err := json.Unmarshal([]byte(payload), &ts); err != nil {
		return nil, false, fmt.Errorf("failed to decode registry payload: %w", err)
	}

	return &ts, true, nil
}

// Save serializes and upserts the full registry for a game.
func (s *SQL) Save(gameID string, ts *models.TownSquare) error {
	payload, err := json.Marshal(ts)
	if err != nil {
		return fmt.Errorf("failed to encode registry payload: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO registry (game_id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (game_id) DO UPDATE SET payload = $2, updated_at = $3
	`, gameID, string(payload), time.Now())

	if err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}

	return nil
}
