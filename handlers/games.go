// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"towncrier/auth"
	"towncrier/cliparse"
	"towncrier/count"
	"towncrier/middleware"
	"towncrier/models"
	"towncrier/square"
)

type GameHandler struct {
	svc *square.Service
	cfg cliparse.Config
}

func NewGameHandler(svc *square.Service, cfg cliparse.Config) *GameHandler {
	return &GameHandler{svc: svc, cfg: cfg}
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := auth.GenerateID(8)
	if err != nil {
		slog.Error("failed to generate game ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	key := auth.GenerateStorytellerKey(gameID, h.cfg.StorytellerKeySalt)

	slog.Info("game created", "game_id", gameID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateGameResponse{
		GameID:         gameID,
		StorytellerKey: key,
	})
}

// SetupGame handles POST /games/{id}/setup
//
// Destructively (re)creates the town square, so this is gated on the key
// alone: there may be no roster yet to check membership against.
func (h *GameHandler) SetupGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	key := r.Header.Get("X-Storyteller-Key")
	if auth.ValidateStorytellerKey(gameID, key, h.cfg.StorytellerKeySalt) != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Storyteller-Key header required")
		return
	}

	var req models.SetupGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Players) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "players is required")
		return
	}

	ts, err := h.svc.Setup(gameID, req.Players, req.Storytellers)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.GameResponse{
		TownSquare:    ts,
		RequiredVotes: count.RequiredVotes(ts),
	})
}

// UpdateGame handles POST /games/{id}/update
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	var req models.UpdateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Players) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "players is required")
		return
	}

	ts, err := h.svc.Update(gameID, actorFrom(r, gameID, h.cfg), req.Players)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GameResponse{
		TownSquare:    ts,
		RequiredVotes: count.RequiredVotes(ts),
	})
}

// GetGame handles GET /games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	ts, err := h.svc.Get(gameID)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GameResponse{
		TownSquare:    ts,
		RequiredVotes: count.RequiredVotes(ts),
	})
}

// Settings handles POST /games/{id}/settings
func (h *GameHandler) Settings(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	actor := actorFrom(r, gameID, h.cfg)

	var req models.SettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OrganGrinder != nil {
		if err := h.svc.SetOrganGrinder(gameID, actor, *req.OrganGrinder); err != nil {
			engineError(w, err)
			return
		}
	}
	if req.VoteThreshold != nil {
		if err := h.svc.SetVoteThreshold(gameID, actor, *req.VoteThreshold); err != nil {
			engineError(w, err)
			return
		}
	}
	if req.PlayerNomsAllowed != nil {
		if err := h.svc.SetPlayerNomsAllowed(gameID, actor, *req.PlayerNomsAllowed); err != nil {
			engineError(w, err)
			return
		}
	}
	if req.DefaultDurationHours != nil {
		if err := h.svc.SetDefaultDuration(gameID, actor, *req.DefaultDurationHours); err != nil {
			engineError(w, err)
			return
		}
	}

	ts, err := h.svc.Get(gameID)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GameResponse{
		TownSquare:    ts,
		RequiredVotes: count.RequiredVotes(ts),
	})
}

// SetAlias handles POST /games/{id}/players/{pid}/alias
func (h *GameHandler) SetAlias(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	playerID := r.PathValue("pid")

	var req models.AliasRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetAlias(gameID, actorFrom(r, gameID, h.cfg), playerID, req.Alias); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDead handles POST /games/{id}/players/{pid}/dead
func (h *GameHandler) SetDead(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	playerID := r.PathValue("pid")

	var req models.FlagRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetDead(gameID, actorFrom(r, gameID, h.cfg), playerID, req.Value); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetCanVote handles POST /games/{id}/players/{pid}/canvote
func (h *GameHandler) SetCanVote(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	playerID := r.PathValue("pid")

	var req models.FlagRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetCanVote(gameID, actorFrom(r, gameID, h.cfg), playerID, req.Value); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
