// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package square

import (
	"log/slog"
	"sync"

	"towncrier/models"
	"towncrier/render"
	"towncrier/store"
)

// DefaultNominationDuration is the seed value for new games: one day from
// nomination to deadline unless the storyteller changes it.
const DefaultNominationDuration = 24 * 60 * 60

// Actor identifies who is issuing a command. Storyteller is set when the
// caller proved moderator access (a valid storyteller key); a seated
// storyteller's own player id also grants it.
type Actor struct {
	PlayerID    string
	Storyteller bool
}

// Service owns the per-game registries. All mutating operations run under
// one lock: commands are dispatched serially, and the one-open-nomination
// and one-counting-session invariants rely on that.
//
// Persistence and rendering are best-effort relative to the caller's
// result: failures are logged and never unwind applied in-memory state.
type Service struct {
	mu       sync.Mutex
	games    map[string]*models.TownSquare
	store    store.Store
	renderer render.Renderer
}

func New(st store.Store, r render.Renderer) *Service {
	return &Service{
		games:    make(map[string]*models.TownSquare),
		store:    st,
		renderer: r,
	}
}

// game returns the loaded registry for gameID, reading through to the
// store on first use. Callers must hold s.mu.
func (s *Service) game(gameID string) (*models.TownSquare, error) {
	if ts, ok := s.games[gameID]; ok {
		return ts, nil
	}
	ts, ok, err := s.store.Load(gameID)
	if err != nil {
		slog.Error("failed to load registry", "game_id", gameID, "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrGameNotFound
	}
	s.games[gameID] = ts
	return ts, nil
}

// persist writes the registry through to the store. Write failures are
// logged, not returned: the in-memory view stays authoritative.
func (s *Service) persist(ts *models.TownSquare) {
	if err := s.store.Save(ts.GameID, ts); err != nil {
		slog.Error("failed to persist registry", "game_id", ts.GameID, "error", err)
	}
}

// rerender issues a render request for a nomination, creating the message
// on first render and updating it in place afterwards. Best-effort.
func (s *Service) rerender(ts *models.TownSquare, nom *models.Nomination) {
	if nom.MessageRef == "" {
		ref, err := s.renderer.RenderNomination(ts, nom)
		if err != nil {
			slog.Error("failed to render nomination", "game_id", ts.GameID, "nomination_id", nom.ID, "error", err)
			return
		}
		nom.MessageRef = ref
		return
	}
	if err := s.renderer.UpdateRendered(nom.MessageRef, render.FormatNomination(ts, nom)); err != nil {
		slog.Error("failed to update rendered nomination", "game_id", ts.GameID, "nomination_id", nom.ID, "error", err)
	}
}

// isStoryteller checks the authorization precondition for storyteller-
// restricted commands.
func (s *Service) isStoryteller(ts *models.TownSquare, actor Actor) bool {
	return actor.Storyteller || ts.Storyteller(actor.PlayerID) != nil
}

// Setup destructively (re)creates the town square for a game. Any prior
// roster, settings, and nomination history are discarded.
func (s *Service) Setup(gameID string, players, storytellers []models.Seat) (*models.TownSquare, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := &models.TownSquare{
		GameID:            gameID,
		Players:           newRoster(players),
		Storytellers:      newRoster(storytellers),
		DefaultDuration:   DefaultNominationDuration,
		PlayerNomsAllowed: true,
	}

	s.games[gameID] = ts
	s.persist(ts)

	slog.Info("town square created", "game_id", gameID, "players", len(ts.Players), "storytellers", len(ts.Storytellers))

	return ts, nil
}

// Update refreshes the seating from a new roster, reusing existing
// participant records by id so alias, death, vote eligibility, and vote
// history survive. Unseen ids become new participants at default state.
// Nominations already open keep their seeded vote maps untouched.
func (s *Service) Update(gameID string, actor Actor, players []models.Seat) (*models.TownSquare, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.game(gameID)
	if err != nil {
		return nil, err
	}
	if !s.isStoryteller(ts, actor) {
		return nil, ErrUnauthorized
	}

	ts.Players = mergeRoster(ts.Players, players)
	s.persist(ts)

	slog.Info("town square updated", "game_id", gameID, "players", len(ts.Players))

	return ts, nil
}

// Get returns the registry for a game.
func (s *Service) Get(gameID string) (*models.TownSquare, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game(gameID)
}

// Flush writes every loaded registry through to the store. Called once on
// shutdown.
func (s *Service) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ts := range s.games {
		s.persist(ts)
	}
}

// newRoster builds fresh participants from seats at default state.
func newRoster(seats []models.Seat) []*models.Participant {
	out := make([]*models.Participant, 0, len(seats))
	for _, seat := range seats {
		out = append(out, &models.Participant{
			ID:          seat.ID,
			Alias:       seat.Alias,
			DisplayName: seat.DisplayName,
			Username:    seat.Username,
			CanVote:     true,
		})
	}
	return out
}

// mergeRoster is the id-preserving merge over the old seating and a new
// roster: existing records are reused verbatim, new ids are seeded at
// default state, and the new seat order wins.
func mergeRoster(old []*models.Participant, seats []models.Seat) []*models.Participant {
	byID := make(map[string]*models.Participant, len(old))
	for _, p := range old {
		byID[p.ID] = p
	}

	out := make([]*models.Participant, 0, len(seats))
	for _, seat := range seats {
		if p, ok := byID[seat.ID]; ok {
			out = append(out, p)
			continue
		}
		out = append(out, &models.Participant{
			ID:          seat.ID,
			Alias:       seat.Alias,
			DisplayName: seat.DisplayName,
			Username:    seat.Username,
			CanVote:     true,
		})
	}
	return out
}
