// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3327)
  - DatabaseURL: sqlite file or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - StorytellerKeySalt: Secret for storyteller key HMAC (required)

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-st-salt Storyteller key salt

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	STORYTELLER_KEY_SALT → -st-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - STORYTELLER_KEY_SALT must be provided
*/
package cliparse
