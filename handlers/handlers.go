// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"towncrier/auth"
	"towncrier/cliparse"
	"towncrier/middleware"
	"towncrier/models"
	"towncrier/resolve"
	"towncrier/square"
)

// actorFrom builds the engine actor for a request. A valid storyteller key
// grants moderator access; the player id header carries plain identity.
func actorFrom(r *http.Request, gameID string, cfg cliparse.Config) square.Actor {
	actor := square.Actor{PlayerID: r.Header.Get("X-Player-ID")}
	if key := r.Header.Get("X-Storyteller-Key"); key != "" {
		actor.Storyteller = auth.ValidateStorytellerKey(gameID, key, cfg.StorytellerKeySalt) == nil
	}
	return actor
}

// engineError maps engine validation failures onto HTTP statuses. Every
// engine error is recoverable by the caller; nothing here is fatal.
func engineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, square.ErrGameNotFound),
		errors.Is(err, square.ErrNominationNotFound),
		errors.Is(err, resolve.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, square.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, square.ErrDuplicateNomination),
		errors.Is(err, square.ErrAlreadyLocked),
		errors.Is(err, square.ErrNominationFinished):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, square.ErrNotParticipant),
		errors.Is(err, square.ErrAccusationTooLong),
		errors.Is(err, square.ErrDefenseTooLong),
		errors.Is(err, square.ErrVoteTooLong),
		errors.Is(err, square.ErrReservedVoteValue),
		errors.Is(err, square.ErrCannotVote),
		errors.Is(err, square.ErrInvalidThreshold),
		errors.Is(err, square.ErrInvalidDeadline),
		errors.Is(err, square.ErrInvalidDuration),
		errors.Is(err, resolve.ErrAmbiguous):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// identities flattens the roster into the resolver's projections. Both
// seated players and storytellers are resolvable.
func identities(ts *models.TownSquare) []resolve.Identity {
	out := make([]resolve.Identity, 0, len(ts.Players)+len(ts.Storytellers))
	for _, p := range ts.Players {
		out = append(out, resolve.Identity{ID: p.ID, Alias: p.Alias, DisplayName: p.DisplayName, Username: p.Username})
	}
	for _, p := range ts.Storytellers {
		out = append(out, resolve.Identity{ID: p.ID, Alias: p.Alias, DisplayName: p.DisplayName, Username: p.Username})
	}
	return out
}
