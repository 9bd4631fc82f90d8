// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote state constants
const (
	VoteUnset   = "unset"
	VotePending = "pending"
	VoteYes     = "yes"
	VoteNo      = "no"
)

// ReservedVoteText is the renderer's mark for an unset vote. It is rejected
// as vote text so a rendered ballot line is never ambiguous.
const ReservedVoteText = "-"

// Text length limits
const (
	MaxVoteLength       = 400
	MaxAccusationLength = 900
	MaxDefenseLength    = 900
)

// Count action constants
const (
	ActionBegin      = "begin"
	ActionYes        = "yes"
	ActionNo         = "no"
	ActionBureaucrat = "bureaucrat"
	ActionThief      = "thief"
)

// Request types

type SetupGameRequest struct {
	Players      []Seat `json:"players"`
	Storytellers []Seat `json:"storytellers"`
}

type UpdateGameRequest struct {
	Players []Seat `json:"players"`
}

// Seat is one roster entry as supplied by the caller. ID is the opaque
// platform identity; the display projections feed the resolver.
type Seat struct {
	ID          string `json:"id"`
	Alias       string `json:"alias"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
}

type SettingsRequest struct {
	OrganGrinder         *bool `json:"organ_grinder,omitempty"`
	VoteThreshold        *int  `json:"vote_threshold,omitempty"`
	PlayerNomsAllowed    *bool `json:"player_noms_allowed,omitempty"`
	DefaultDurationHours *int  `json:"default_duration_hours,omitempty"`
}

type NominateRequest struct {
	Nominee   string `json:"nominee"`
	Nominator string `json:"nominator,omitempty"`
}

type TextRequest struct {
	Text string `json:"text"`
}

type DeadlineRequest struct {
	Deadline time.Time `json:"deadline"`
}

type CastVoteRequest struct {
	Text string `json:"text"`
}

type CountActionRequest struct {
	Action string `json:"action"`
}

type AliasRequest struct {
	Alias string `json:"alias"`
}

type FlagRequest struct {
	Value bool `json:"value"`
}

// Response types

type CreateGameResponse struct {
	GameID         string `json:"game_id"`
	StorytellerKey string `json:"storyteller_key"`
}

type NominateResponse struct {
	NominationID string    `json:"nomination_id"`
	Deadline     time.Time `json:"deadline"`
}

type GameResponse struct {
	TownSquare    *TownSquare `json:"town_square"`
	RequiredVotes int         `json:"required_votes"`
}

type CountResponse struct {
	Started  bool   `json:"started"`
	Pointer  int    `json:"pointer"`
	Current  string `json:"current,omitempty"`
	Tally    int    `json:"tally"`
	Finished bool   `json:"finished"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Domain types

// Participant is a seated player or storyteller. Participants are never
// deleted, only flagged.
type Participant struct {
	ID          string `json:"id"`
	Alias       string `json:"alias"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	CanVote     bool   `json:"can_vote"`
	Dead        bool   `json:"dead"`
}

// Name returns the preferred display string for a participant.
func (p *Participant) Name() string {
	if p.Alias != "" {
		return p.Alias
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// Vote is one participant's vote on one nomination. State moves
// unset → pending → yes/no only; yes and no are terminal. The multiplier
// flags are only meaningful while the vote is being counted.
type Vote struct {
	State      string `json:"state"`
	Text       string `json:"text,omitempty"`
	Bureaucrat bool   `json:"bureaucrat,omitempty"`
	Thief      bool   `json:"thief,omitempty"`
}

// Locked reports whether the vote has been confirmed during counting.
func (v *Vote) Locked() bool {
	return v.State == VoteYes || v.State == VoteNo
}

// CountSession is the sequential count state machine for one nomination.
// Started distinguishes the not-started state from pointer 0: the first
// action of any kind only initializes the session and locks nothing.
type CountSession struct {
	Started bool     `json:"started"`
	Pointer int      `json:"pointer"`
	Order   []string `json:"order"`
}

// Current returns the participant id at the pointer, or "" if the session
// has not started or has walked past the last voter.
func (c *CountSession) Current() string {
	if c == nil || !c.Started || c.Pointer >= len(c.Order) {
		return ""
	}
	return c.Order[c.Pointer]
}

// Nomination puts one participant (the nominee) to a vote, raised by
// another (the nominator). Votes is seeded with an unset entry per voting
// participant at creation time; later roster changes are not applied
// retroactively. PrivateVotes is an independent overlay keyed by voter id.
type Nomination struct {
	ID           string            `json:"id"`
	Nominator    string            `json:"nominator"`
	Nominee      string            `json:"nominee"`
	Votes        map[string]*Vote  `json:"votes"`
	PrivateVotes map[string]string `json:"private_votes"`
	Deadline     time.Time         `json:"deadline"`
	Accusation   string            `json:"accusation,omitempty"`
	Defense      string            `json:"defense,omitempty"`
	MessageRef   string            `json:"message_ref,omitempty"`
	Finished     bool              `json:"finished"`
	Count        *CountSession     `json:"count,omitempty"`
}

// TownSquare is the full per-game registry. Seat order in Players is the
// single source of truth for vote rotation; it is never reordered by vote
// activity.
type TownSquare struct {
	GameID            string         `json:"game_id"`
	Players           []*Participant `json:"players"`
	Storytellers      []*Participant `json:"storytellers"`
	Nominations       []*Nomination  `json:"nominations"`
	OrganGrinder      bool           `json:"organ_grinder"`
	DefaultDuration   int            `json:"default_duration_seconds"`
	PlayerNomsAllowed bool           `json:"player_noms_allowed"`
	VoteThreshold     int            `json:"vote_threshold"`
}

// Player returns the seated player with the given id, or nil.
func (ts *TownSquare) Player(id string) *Participant {
	for _, p := range ts.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Storyteller returns the storyteller with the given id, or nil.
func (ts *TownSquare) Storyteller(id string) *Participant {
	for _, p := range ts.Storytellers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Participant returns the seated player or storyteller with the given id.
func (ts *TownSquare) Participant(id string) *Participant {
	if p := ts.Player(id); p != nil {
		return p
	}
	return ts.Storyteller(id)
}

// Nomination returns the nomination with the given id, or nil.
func (ts *TownSquare) Nomination(id string) *Nomination {
	for _, n := range ts.Nominations {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// OpenNomination returns the unfinished nomination targeting the nominee,
// or nil. At most one can exist at a time.
func (ts *TownSquare) OpenNomination(nomineeID string) *Nomination {
	for _, n := range ts.Nominations {
		if !n.Finished && n.Nominee == nomineeID {
			return n
		}
	}
	return nil
}
