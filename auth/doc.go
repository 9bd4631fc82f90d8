// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key generation and validation utilities.

# Storyteller Keys

Storyteller keys use HMAC-SHA256 to create deterministic, verifiable keys:

	key := auth.GenerateStorytellerKey(gameID, salt)
	err := auth.ValidateStorytellerKey(gameID, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same game ID and salt always produce the same key. This allows validation
without storing the key in the database.

# ID Generation

Random hex IDs for games:

	id, err := auth.GenerateID(8)  // 16 hex characters
*/
package auth
