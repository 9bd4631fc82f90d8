// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"towncrier/cliparse"
	"towncrier/middleware"
	"towncrier/models"
	"towncrier/square"
)

type VotingHandler struct {
	svc *square.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *square.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// CastVote handles POST /games/{id}/nominations/{nid}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	actor := actorFrom(r, gameID, h.cfg)
	if actor.PlayerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Player-ID header required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.CastVote(gameID, actor, nomID, req.Text); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CastPrivateVote handles POST /games/{id}/nominations/{nid}/private-votes
func (h *VotingHandler) CastPrivateVote(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	actor := actorFrom(r, gameID, h.cfg)
	if actor.PlayerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Player-ID header required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.CastPrivateVote(gameID, actor, nomID, req.Text); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemovePrivateVote handles DELETE /games/{id}/nominations/{nid}/private-votes
func (h *VotingHandler) RemovePrivateVote(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	actor := actorFrom(r, gameID, h.cfg)
	if actor.PlayerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Player-ID header required")
		return
	}

	if err := h.svc.RemovePrivateVote(gameID, actor, nomID); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CountAction handles POST /games/{id}/nominations/{nid}/count
func (h *VotingHandler) CountAction(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	var req models.CountActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Action {
	case models.ActionBegin, models.ActionYes, models.ActionNo, models.ActionBureaucrat, models.ActionThief:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid count action")
		return
	}

	resp, err := h.svc.CountAction(gameID, actorFrom(r, gameID, h.cfg), nomID, req.Action)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
