// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package square

import (
	"log/slog"
)

// SetOrganGrinder toggles vote secrecy. Every unfinished nomination is
// re-rendered immediately so no confirmed vote stays visible.
func (s *Service) SetOrganGrinder(gameID string, actor Actor, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}

	ts.OrganGrinder = on
	for _, nom := range ts.Nominations {
		if !nom.Finished {
			s.rerender(ts, nom)
		}
	}
	s.persist(ts)

	slog.Info("organ grinder set", "game_id", gameID, "on", on)
	return nil
}

// SetVoteThreshold fixes the votes needed to execute. Zero restores the
// dynamic half-of-voting-seats threshold.
func (s *Service) SetVoteThreshold(gameID string, actor Actor, threshold int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	if threshold < 0 {
		return ErrInvalidThreshold
	}

	ts.VoteThreshold = threshold
	for _, nom := range ts.Nominations {
		if !nom.Finished {
			s.rerender(ts, nom)
		}
	}
	s.persist(ts)
	return nil
}

// SetPlayerNomsAllowed controls whether seated players may nominate, or
// only storytellers.
func (s *Service) SetPlayerNomsAllowed(gameID string, actor Actor, allowed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}

	ts.PlayerNomsAllowed = allowed
	s.persist(ts)
	return nil
}

// SetDefaultDuration sets the default nomination lifetime in hours.
func (s *Service) SetDefaultDuration(gameID string, actor Actor, hours int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	if hours < 1 {
		return ErrInvalidDuration
	}

	ts.DefaultDuration = hours * 60 * 60
	s.persist(ts)
	return nil
}

// SetAlias changes a participant's display alias. Allowed to the
// participant themself or a storyteller.
func (s *Service) SetAlias(gameID string, actor Actor, playerID, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if actor.PlayerID != playerID && !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	p := ts.Participant(playerID)
	if p == nil {
		return ErrNotParticipant
	}

	p.Alias = alias
	s.persist(ts)
	return nil
}

// SetDead flags a participant as dead or alive. Participants are never
// removed, only flagged.
func (s *Service) SetDead(gameID string, actor Actor, playerID string, dead bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	p := ts.Participant(playerID)
	if p == nil {
		return ErrNotParticipant
	}

	p.Dead = dead
	s.persist(ts)
	return nil
}

// SetCanVote flags a participant's vote eligibility.
func (s *Service) SetCanVote(gameID string, actor Actor, playerID string, canVote bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	p := ts.Participant(playerID)
	if p == nil {
		return ErrNotParticipant
	}

	p.CanVote = canVote
	s.persist(ts)
	return nil
}
