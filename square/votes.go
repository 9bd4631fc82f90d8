// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package square

import (
	"unicode/utf8"

	"towncrier/count"
	"towncrier/models"
)

// voteGuard runs the shared preconditions for public and private votes and
// returns the voter's public vote entry. No state is mutated on failure.
func voteGuard(ts *models.TownSquare, nom *models.Nomination, voterID, text string) (*models.Vote, error) {
	if nom.Finished {
		return nil, ErrNominationFinished
	}
	p := ts.Player(voterID)
	if p == nil || !p.CanVote {
		return nil, ErrCannotVote
	}
	v, ok := nom.Votes[voterID]
	if !ok {
		// Seated after the nomination was created: no vote entry exists
		// and none is added retroactively.
		return nil, ErrCannotVote
	}
	if v.Locked() {
		return nil, ErrAlreadyLocked
	}
	if text == models.ReservedVoteText {
		return nil, ErrReservedVoteValue
	}
	if utf8.RuneCountInString(text) > models.MaxVoteLength {
		return nil, ErrVoteTooLong
	}
	return v, nil
}

// CastVote sets a voter's public vote to pending with the given text.
func (s *Service) CastVote(gameID string, actor Actor, nominationID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return ErrNominationNotFound
	}

	v, err := voteGuard(ts, nom, actor.PlayerID, text)
	if err != nil {
		return err
	}

	v.State = models.VotePending
	v.Text = text
	s.rerender(ts, nom)
	s.persist(ts)
	return nil
}

// CastPrivateVote stores a vote into the private overlay, leaving the
// public vote untouched. While present it is the effective vote for both
// display and counting.
func (s *Service) CastPrivateVote(gameID string, actor Actor, nominationID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return ErrNominationNotFound
	}

	if _, err := voteGuard(ts, nom, actor.PlayerID, text); err != nil {
		return err
	}

	nom.PrivateVotes[actor.PlayerID] = text
	s.rerender(ts, nom)
	s.persist(ts)
	return nil
}

// RemovePrivateVote clears the voter's overlay entry, reverting the
// effective vote to the public one. Removing an absent entry is a no-op.
func (s *Service) RemovePrivateVote(gameID string, actor Actor, nominationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return ErrNominationNotFound
	}

	if _, ok := nom.PrivateVotes[actor.PlayerID]; ok {
		delete(nom.PrivateVotes, actor.PlayerID)
		s.rerender(ts, nom)
		s.persist(ts)
	}
	return nil
}

// EffectiveVote returns the vote that counts for a voter right now: the
// private overlay if present, else the public vote.
func (s *Service) EffectiveVote(gameID, nominationID, voterID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return "", err
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return "", ErrNominationNotFound
	}

	return count.Effective(nom, voterID), nil
}
