// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package square

import (
	"log/slog"

	"towncrier/count"
	"towncrier/models"
)

// CountAction drives the sequential count state machine for a nomination.
// Storyteller-only.
//
// The first action of any kind — including a lock — only initializes the
// session: the pointer moves to the first voter and nothing is locked.
// From then on, a yes/no action locks the current voter's vote (clearing
// any private overlay first) and advances the pointer; bureaucrat/thief
// flip the multiplier flag on the current voter's vote. Once the pointer
// walks past the last voter the nomination is finished and the session is
// inert. A session has no expiry: an abandoned count leaves the nomination
// unfinished until the storyteller closes it.
func (s *Service) CountAction(gameID string, actor Actor, nominationID, action string) (*models.CountResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return nil, err
	}
	if !s.isStoryteller(ts, actor) {
		return nil, ErrUnauthorized
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return nil, ErrNominationNotFound
	}
	if nom.Finished {
		return nil, ErrNominationFinished
	}

	if nom.Count == nil || !nom.Count.Started {
		nom.Count = &models.CountSession{
			Started: true,
			Pointer: 0,
			Order:   count.Order(ts, nom),
		}
		slog.Info("count started", "game_id", gameID, "nomination_id", nominationID, "voters", len(nom.Count.Order))
	} else {
		s.applyCountAction(ts, nom, action)
	}

	s.rerender(ts, nom)
	s.persist(ts)

	return &models.CountResponse{
		Started:  nom.Count.Started,
		Pointer:  nom.Count.Pointer,
		Current:  nom.Count.Current(),
		Tally:    count.Tally(ts, nom),
		Finished: nom.Finished,
	}, nil
}

func (s *Service) applyCountAction(ts *models.TownSquare, nom *models.Nomination, action string) {
	session := nom.Count
	voterID := session.Current()

	switch action {
	case models.ActionYes, models.ActionNo:
		if voterID != "" {
			s.lockVote(nom, voterID, action)
			session.Pointer++
		} else {
			session.Pointer = len(session.Order)
		}
		if session.Pointer >= len(session.Order) {
			nom.Finished = true
			slog.Info("count finished", "game_id", ts.GameID, "nomination_id", nom.ID, "tally", count.Tally(ts, nom))
		}

	case models.ActionBureaucrat:
		if v := nom.Votes[voterID]; v != nil {
			v.Bureaucrat = !v.Bureaucrat
		}

	case models.ActionThief:
		if v := nom.Votes[voterID]; v != nil {
			v.Thief = !v.Thief
		}
	}
	// ActionBegin past initialization just re-renders.
}

// lockVote confirms the current voter's public vote. The private overlay
// is cleared first: a lock is the storyteller attesting the final answer.
func (s *Service) lockVote(nom *models.Nomination, voterID, action string) {
	delete(nom.PrivateVotes, voterID)
	v := nom.Votes[voterID]
	if v == nil {
		return
	}
	if action == models.ActionYes {
		v.State = models.VoteYes
	} else {
		v.State = models.VoteNo
	}
}
