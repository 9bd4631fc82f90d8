package square

import (
	"errors"
	"strings"
	"testing"
	"time"

	"towncrier/models"
)

func TestNominate(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob", "Carol"), seats("ST"))
	svc.SetCanVote("g1", storyteller, "Carol", false)

	before := time.Now()
	nom, err := svc.Nominate("g1", Actor{PlayerID: "Alice"}, "Bob", "Alice")
	if err != nil {
		t.Fatalf("Nominate() error = %v", err)
	}

	if nom.Nominee != "Bob" || nom.Nominator != "Alice" {
		t.Errorf("nomination = %s by %s", nom.Nominee, nom.Nominator)
	}
	if nom.Finished {
		t.Error("new nomination must be unfinished")
	}
	if nom.MessageRef == "" {
		t.Error("nomination was not rendered")
	}

	// Vote map seeded for voting participants only
	if len(nom.Votes) != 2 {
		t.Fatalf("votes map has %d entries, want 2", len(nom.Votes))
	}
	if _, ok := nom.Votes["Carol"]; ok {
		t.Error("non-voting participant received a vote entry")
	}
	for id, v := range nom.Votes {
		if v.State != models.VoteUnset {
			t.Errorf("vote for %s seeded as %s, want unset", id, v.State)
		}
	}

	wantDeadline := before.Add(time.Duration(DefaultNominationDuration) * time.Second)
	if nom.Deadline.Before(wantDeadline) || nom.Deadline.After(wantDeadline.Add(time.Minute)) {
		t.Errorf("deadline = %v, want about %v", nom.Deadline, wantDeadline)
	}
}

func TestNominateGuards(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob"), seats("ST"))

	if _, err := svc.Nominate("g1", storyteller, "Zed", "Alice"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("unknown nominee: error = %v, want ErrNotParticipant", err)
	}
	if _, err := svc.Nominate("g1", storyteller, "Alice", "Zed"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("unknown nominator: error = %v, want ErrNotParticipant", err)
	}

	// Storytellers are nominable participants
	if _, err := svc.Nominate("g1", storyteller, "ST", "Alice"); err != nil {
		t.Errorf("storyteller nominee: error = %v", err)
	}
}

func TestOneOpenNominationPerNominee(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob", "Carol"), seats("ST"))

	first, err := svc.Nominate("g1", storyteller, "Bob", "Alice")
	if err != nil {
		t.Fatalf("Nominate() error = %v", err)
	}

	if _, err := svc.Nominate("g1", storyteller, "Bob", "Carol"); !errors.Is(err, ErrDuplicateNomination) {
		t.Fatalf("duplicate: error = %v, want ErrDuplicateNomination", err)
	}

	// A second nominee is fine, and a closed nomination frees the first.
	if _, err := svc.Nominate("g1", storyteller, "Carol", "Alice"); err != nil {
		t.Errorf("distinct nominee: error = %v", err)
	}
	if err := svc.Close("g1", storyteller, first.ID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := svc.Nominate("g1", storyteller, "Bob", "Carol"); err != nil {
		t.Errorf("renominate after close: error = %v", err)
	}
}

func TestPlayerNomsDisallowed(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob"), seats("ST"))
	svc.SetPlayerNomsAllowed("g1", storyteller, false)

	if _, err := svc.Nominate("g1", Actor{PlayerID: "Alice"}, "Bob", "Alice"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("player nomination: error = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Nominate("g1", storyteller, "Bob", "Alice"); err != nil {
		t.Errorf("storyteller nomination: error = %v", err)
	}
}

func TestAccusationAndDefense(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob", "Carol"), seats("ST"))
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	// Authorization: accusation is the nominator's, defense the nominee's.
	if err := svc.SetAccusation("g1", Actor{PlayerID: "Bob"}, nom.ID, "no"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("nominee setting accusation: error = %v, want ErrUnauthorized", err)
	}
	if err := svc.SetDefense("g1", Actor{PlayerID: "Alice"}, nom.ID, "no"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("nominator setting defense: error = %v, want ErrUnauthorized", err)
	}

	if err := svc.SetAccusation("g1", Actor{PlayerID: "Alice"}, nom.ID, "he lied"); err != nil {
		t.Fatalf("SetAccusation() error = %v", err)
	}
	if err := svc.SetDefense("g1", Actor{PlayerID: "Bob"}, nom.ID, "I did not"); err != nil {
		t.Fatalf("SetDefense() error = %v", err)
	}

	// Storytellers may set either.
	if err := svc.SetAccusation("g1", storyteller, nom.ID, "revised"); err != nil {
		t.Errorf("storyteller accusation: error = %v", err)
	}

	long := strings.Repeat("x", models.MaxAccusationLength+1)
	if err := svc.SetAccusation("g1", Actor{PlayerID: "Alice"}, nom.ID, long); !errors.Is(err, ErrAccusationTooLong) {
		t.Errorf("long accusation: error = %v, want ErrAccusationTooLong", err)
	}
	if err := svc.SetDefense("g1", Actor{PlayerID: "Bob"}, nom.ID, long); !errors.Is(err, ErrDefenseTooLong) {
		t.Errorf("long defense: error = %v, want ErrDefenseTooLong", err)
	}

	ts, _ := svc.Get("g1")
	got := ts.Nomination(nom.ID)
	if got.Accusation != "revised" || got.Defense != "I did not" {
		t.Error("rejected texts must not overwrite accepted ones")
	}
}

func TestSetDeadline(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob"), seats("ST"))
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	if err := svc.SetDeadline("g1", Actor{PlayerID: "Alice"}, nom.ID, time.Now().Add(time.Hour)); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("player deadline: error = %v, want ErrUnauthorized", err)
	}
	if err := svc.SetDeadline("g1", storyteller, nom.ID, time.Now().Add(-time.Minute)); !errors.Is(err, ErrInvalidDeadline) {
		t.Errorf("past deadline: error = %v, want ErrInvalidDeadline", err)
	}

	future := time.Now().Add(2 * time.Hour)
	if err := svc.SetDeadline("g1", storyteller, nom.ID, future); err != nil {
		t.Fatalf("SetDeadline() error = %v", err)
	}

	ts, _ := svc.Get("g1")
	if !ts.Nomination(nom.ID).Deadline.Equal(future) {
		t.Error("deadline not applied")
	}
}

func TestClose(t *testing.T) {
	svc := newTestService(t)
	svc.Setup("g1", seats("Alice", "Bob"), seats("ST"))
	nom, _ := svc.Nominate("g1", storyteller, "Bob", "Alice")

	if err := svc.Close("g1", Actor{PlayerID: "Alice"}, nom.ID); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("player close: error = %v, want ErrUnauthorized", err)
	}
	if err := svc.Close("g1", storyteller, nom.ID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := svc.Close("g1", storyteller, nom.ID); !errors.Is(err, ErrNominationFinished) {
		t.Errorf("double close: error = %v, want ErrNominationFinished", err)
	}
	if err := svc.Close("g1", storyteller, "missing"); !errors.Is(err, ErrNominationNotFound) {
		t.Errorf("unknown nomination: error = %v, want ErrNominationNotFound", err)
	}
}
