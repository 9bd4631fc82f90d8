// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"towncrier/cliparse"
	"towncrier/db"
	"towncrier/models"
	"towncrier/render"
	"towncrier/square"
	"towncrier/store"
)

// TestSalt signs storyteller keys in tests
const TestSalt = "test-salt"

// SetupTestDB creates a fresh in-memory sqlite database with the schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each sqlite :memory: connection is its own database; pin the pool
	// to one connection so every query sees the same data.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewService wires a registry service over an in-memory database and the
// logging renderer.
func NewService(t *testing.T) *square.Service {
	t.Helper()
	return square.New(store.NewSQL(SetupTestDB(t)), render.NewLog())
}

// GetTestConfig returns a config suitable for handler tests
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3327,
		DatabaseURL:        ":memory:",
		DatabaseType:       "sqlite",
		StorytellerKeySalt: TestSalt,
	}
}

// Seats builds a roster where each name doubles as id, alias, and username.
func Seats(names ...string) []models.Seat {
	out := make([]models.Seat, 0, len(names))
	for _, name := range names {
		out = append(out, models.Seat{
			ID:          name,
			Alias:       name,
			DisplayName: name,
			Username:    name,
		})
	}
	return out
}
