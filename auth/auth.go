// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStorytellerKey = errors.New("invalid storyteller key")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateStorytellerKey creates an HMAC-based storyteller key for a game.
// This is deterministic and verifiable, so the key never needs storing.
func GenerateStorytellerKey(gameID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(gameID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateStorytellerKey checks if the provided key is valid for the game
func ValidateStorytellerKey(gameID, key, salt string) error {
	expected := GenerateStorytellerKey(gameID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidStorytellerKey
	}
	return nil
}
