// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SetupGameRequest: players, storytellers
  - UpdateGameRequest: players
  - SettingsRequest: organ_grinder, vote_threshold, player_noms_allowed,
    default_duration_hours (all optional)
  - NominateRequest: nominee, nominator
  - TextRequest: text (accusation, defense)
  - DeadlineRequest: deadline
  - CastVoteRequest: text
  - CountActionRequest: action
  - AliasRequest: alias
  - FlagRequest: value

# Response Types

Types for JSON responses:

  - CreateGameResponse: game_id, storyteller_key
  - NominateResponse: nomination_id, deadline
  - GameResponse: town_square, required_votes
  - CountResponse: started, pointer, current, tally, finished
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - TownSquare: seated players, storytellers, nominations, settings
  - Participant: one seat (identity projections, can_vote, dead)
  - Nomination: nominee, nominator, votes, deadline, count session
  - Vote: per-player vote record (state, text, multiplier flags)
  - CountSession: the storyteller's sequential count cursor

# Constants

Vote states:

	VoteUnset   = "unset"
	VotePending = "pending"
	VoteYes     = "yes"
	VoteNo      = "no"

Count actions:

	ActionBegin      = "begin"
	ActionYes        = "yes"
	ActionNo         = "no"
	ActionBureaucrat = "bureaucrat"
	ActionThief      = "thief"

ReservedVoteText ("-") is the placeholder shown for a voter with no
recorded vote; it is rejected as input.
*/
package models
