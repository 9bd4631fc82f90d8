package square

import (
	"errors"
	"strings"
	"testing"

	"towncrier/models"
)

func TestCastVote(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob", "Carol"), seats("ST"))
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	if err := svc.CastVote("g1", Actor{PlayerID: "Carol"}, nom.ID, "aye"); err != nil {
		t.Fatalf("CastVote() error = %v", err)
	}

	ts, _ := svc.Get("g1")
	v := ts.Nomination(nom.ID).Votes["Carol"]
	if v.State != models.VotePending || v.Text != "aye" {
		t.Errorf("vote = %s %q, want pending \"aye\"", v.State, v.Text)
	}

	// A pending vote can be recast until locked.
	if err := svc.CastVote("g1", Actor{PlayerID: "Carol"}, nom.ID, "no wait"); err != nil {
		t.Fatalf("recast error = %v", err)
	}
	if got := ts.Nomination(nom.ID).Votes["Carol"].Text; got != "no wait" {
		t.Errorf("recast text = %q", got)
	}
}

func TestCastVoteGuards(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob", "Carol"), seats("ST"))
	svc.SetCanVote("g1", storyteller, "Carol", false)
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	tests := []struct {
		name    string
		voter   string
		text    string
		wantErr error
	}{
		{"ineligible voter", "Carol", "aye", ErrCannotVote},
		{"storyteller has no seat", "ST", "aye", ErrCannotVote},
		{"reserved sentinel", "Alice", models.ReservedVoteText, ErrReservedVoteValue},
		{"over length", "Alice", strings.Repeat("y", models.MaxVoteLength+1), ErrVoteTooLong},
		{"unknown nomination", "Alice", "aye", ErrNominationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nomID := nom.ID
			if tt.wantErr == ErrNominationNotFound {
				nomID = "missing"
			}
			if err := svc.CastVote("g1", Actor{PlayerID: tt.voter}, nomID, tt.text); !errors.Is(err, tt.wantErr) {
				t.Errorf("CastVote() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Nothing mutated on the rejected casts
	ts, _ := svc.Get("g1")
	for id, v := range ts.Nomination(nom.ID).Votes {
		if v.State != models.VoteUnset {
			t.Errorf("vote for %s = %s after rejected casts", id, v.State)
		}
	}
}

func TestCastVoteAfterLock(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob"), seats("ST"))
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	// Rotated order is [Alice, Bob]; lock Alice's vote.
	svc.CastVote("g1", Actor{PlayerID: "Alice"}, nom.ID, "aye")
	svc.CountAction("g1", storyteller, nom.ID, models.ActionBegin)
	svc.CountAction("g1", storyteller, nom.ID, models.ActionYes)

	if err := svc.CastVote("g1", Actor{PlayerID: "Alice"}, nom.ID, "changed my mind"); !errors.Is(err, ErrAlreadyLocked) {
		t.Errorf("CastVote() after lock error = %v, want ErrAlreadyLocked", err)
	}
	if err := svc.CastPrivateVote("g1", Actor{PlayerID: "Alice"}, nom.ID, "still no"); !errors.Is(err, ErrAlreadyLocked) {
		t.Errorf("CastPrivateVote() after lock error = %v, want ErrAlreadyLocked", err)
	}
}

func TestPrivateVoteOverlay(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob", "Carol"), seats("ST"))
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	svc.CastVote("g1", Actor{PlayerID: "Carol"}, nom.ID, "public yes")

	if err := svc.CastPrivateVote("g1", Actor{PlayerID: "Carol"}, nom.ID, "private no"); err != nil {
		t.Fatalf("CastPrivateVote() error = %v", err)
	}

	// The overlay is the effective vote, the public vote untouched.
	got, err := svc.EffectiveVote("g1", nom.ID, "Carol")
	if err != nil {
		t.Fatalf("EffectiveVote() error = %v", err)
	}
	if got != "private no" {
		t.Errorf("EffectiveVote() = %q, want private overlay", got)
	}

	ts, _ := svc.Get("g1")
	v := ts.Nomination(nom.ID).Votes["Carol"]
	if v.State != models.VotePending || v.Text != "public yes" {
		t.Error("private vote must leave the public vote untouched")
	}

	// Removing the overlay reverts to the public vote.
	if err := svc.RemovePrivateVote("g1", Actor{PlayerID: "Carol"}, nom.ID); err != nil {
		t.Fatalf("RemovePrivateVote() error = %v", err)
	}
	got, _ = svc.EffectiveVote("g1", nom.ID, "Carol")
	if got != "public yes" {
		t.Errorf("EffectiveVote() after removal = %q, want public vote", got)
	}

	// Removing again is a no-op.
	if err := svc.RemovePrivateVote("g1", Actor{PlayerID: "Carol"}, nom.ID); err != nil {
		t.Errorf("RemovePrivateVote() on empty overlay error = %v", err)
	}
}
