// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"towncrier/cliparse"
	"towncrier/middleware"
	"towncrier/models"
	"towncrier/resolve"
	"towncrier/square"
)

type NominationHandler struct {
	svc *square.Service
	cfg cliparse.Config
}

func NewNominationHandler(svc *square.Service, cfg cliparse.Config) *NominationHandler {
	return &NominationHandler{svc: svc, cfg: cfg}
}

// Nominate handles POST /games/{id}/nominations
//
// Nominee and nominator arrive as free text and go through the resolver
// cascade against the full roster. The nominator defaults to the caller.
func (h *NominationHandler) Nominate(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	actor := actorFrom(r, gameID, h.cfg)

	var req models.NominateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Nominee == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nominee is required")
		return
	}

	ts, err := h.svc.Get(gameID)
	if err != nil {
		engineError(w, err)
		return
	}
	roster := identities(ts)

	nominee, err := resolve.Resolve(roster, req.Nominee)
	if err != nil {
		engineError(w, err)
		return
	}

	nominatorID := actor.PlayerID
	if req.Nominator != "" {
		nominator, err := resolve.Resolve(roster, req.Nominator)
		if err != nil {
			engineError(w, err)
			return
		}
		nominatorID = nominator.ID
	}

	nom, err := h.svc.Nominate(gameID, actor, nominee.ID, nominatorID)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.NominateResponse{
		NominationID: nom.ID,
		Deadline:     nom.Deadline,
	})
}

// SetAccusation handles POST /games/{id}/nominations/{nid}/accusation
func (h *NominationHandler) SetAccusation(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	var req models.TextRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetAccusation(gameID, actorFrom(r, gameID, h.cfg), nomID, req.Text); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDefense handles POST /games/{id}/nominations/{nid}/defense
func (h *NominationHandler) SetDefense(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	var req models.TextRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetDefense(gameID, actorFrom(r, gameID, h.cfg), nomID, req.Text); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDeadline handles POST /games/{id}/nominations/{nid}/deadline
func (h *NominationHandler) SetDeadline(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	var req models.DeadlineRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.SetDeadline(gameID, actorFrom(r, gameID, h.cfg), nomID, req.Deadline); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Close handles POST /games/{id}/nominations/{nid}/close
func (h *NominationHandler) Close(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	nomID := r.PathValue("nid")

	if err := h.svc.Close(gameID, actorFrom(r, gameID, h.cfg), nomID); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
