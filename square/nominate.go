// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package square

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"towncrier/models"
)

// Nominate opens a nomination of nomineeID by nominatorID. Both must be
// seated players or storytellers, and no unfinished nomination may already
// target the nominee. The vote map is seeded with one unset entry per
// participant who can vote right now; participants seated later get none.
func (s *Service) Nominate(gameID string, actor Actor, nomineeID, nominatorID string) (*models.Nomination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return nil, err
	}

	if !ts.PlayerNomsAllowed && !s.isStoryteller(ts, actor) {
		return nil, ErrUnauthorized
	}

	nominee := ts.Participant(nomineeID)
	nominator := ts.Participant(nominatorID)
	if nominee == nil || nominator == nil {
		return nil, ErrNotParticipant
	}

	if ts.OpenNomination(nomineeID) != nil {
		return nil, ErrDuplicateNomination
	}

	votes := make(map[string]*models.Vote)
	for _, p := range ts.Players {
		if p.CanVote {
			votes[p.ID] = &models.Vote{State: models.VoteUnset}
		}
	}

	nom := &models.Nomination{
		ID:           uuid.NewString(),
		Nominator:    nominatorID,
		Nominee:      nomineeID,
		Votes:        votes,
		PrivateVotes: make(map[string]string),
		Deadline:     time.Now().Add(time.Duration(ts.DefaultDuration) * time.Second),
	}
	ts.Nominations = append(ts.Nominations, nom)

	s.rerender(ts, nom)
	if err := s.renderer.SendDirect(nominee, fmt.Sprintf("You have been nominated by %s.", nominator.Name())); err != nil {
		slog.Warn("failed to notify nominee", "game_id", gameID, "nominee", nomineeID, "error", err)
	}
	s.persist(ts)

	slog.Info("nomination created",
		"game_id", gameID,
		"nomination_id", nom.ID,
		"nominee", nomineeID,
		"nominator", nominatorID,
	)

	return nom, nil
}

// SetAccusation records the nominator's accusation text. Allowed to the
// nominator or a storyteller; capped at 900 characters.
func (s *Service) SetAccusation(gameID string, actor Actor, nominationID, text string) error {
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
	if actor.PlayerID != nom.Nominator && !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	if utf8.RuneCountInString(text) > models.MaxAccusationLength {
		return ErrAccusationTooLong
	}

	nom.Accusation = text
	s.rerender(ts, nom)
	s.persist(ts)
	return nil
}

// SetDefense records the nominee's defense text. Allowed to the nominee or
// a storyteller; capped at 900 characters.
func (s *Service) SetDefense(gameID string, actor Actor, nominationID, text string) error {
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
	if actor.PlayerID != nom.Nominee && !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	if utf8.RuneCountInString(text) > models.MaxDefenseLength {
		return ErrDefenseTooLong
	}

	nom.Defense = text
	s.rerender(ts, nom)
	s.persist(ts)
	return nil
}

// SetDeadline moves a nomination's deadline. Storyteller-only; the new
// deadline must be strictly in the future.
func (s *Service) SetDeadline(gameID string, actor Actor, nominationID string, deadline time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return ErrNominationNotFound
	}
	if !deadline.After(time.Now()) {
		return ErrInvalidDeadline
	}

	nom.Deadline = deadline
	s.rerender(ts, nom)
	s.persist(ts)
	return nil
}

// Close marks a nomination finished. Storyteller-only and irreversible.
func (s *Service) Close(gameID string, actor Actor, nominationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return err
	}
	if !s.isStoryteller(ts, actor) {
		return ErrUnauthorized
	}
	nom := ts.Nomination(nominationID)
	if nom == nil {
		return ErrNominationNotFound
	}
	if nom.Finished {
		return ErrNominationFinished
	}

	nom.Finished = true
	s.rerender(ts, nom)
	s.persist(ts)

	slog.Info("nomination closed", "game_id", gameID, "nomination_id", nominationID)
	return nil
}
