package count

import (
	"testing"

	"towncrier/models"
)

func seats(ids ...string) []*models.Participant {
	out := make([]*models.Participant, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.Participant{ID: id, Alias: id, CanVote: true})
	}
	return out
}

func idsOf(players []*models.Participant) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRotate(t *testing.T) {
	players := seats("A", "B", "C", "D", "E")

	tests := []struct {
		name string
		nom  *models.Nomination
		want []string
	}{
		{
			name: "anchor on nominee",
			nom:  &models.Nomination{Nominee: "C", Nominator: "A"},
			want: []string{"D", "E", "A", "B", "C"},
		},
		{
			name: "absent nominee falls back to nominator",
			nom:  &models.Nomination{Nominee: "ST", Nominator: "D"},
			want: []string{"E", "A", "B", "C", "D"},
		},
		{
			name: "neither seated anchors on the last seat",
			nom:  &models.Nomination{Nominee: "ST1", Nominator: "ST2"},
			want: []string{"A", "B", "C", "D", "E"},
		},
		{
			name: "nominee on the last seat keeps the order",
			nom:  &models.Nomination{Nominee: "E", Nominator: "A"},
			want: []string{"A", "B", "C", "D", "E"},
		},
		{
			name: "nominee wins even when the nominator sits earlier",
			nom:  &models.Nomination{Nominee: "D", Nominator: "B"},
			want: []string{"E", "A", "B", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idsOf(Rotate(players, tt.nom))
			if !equalIDs(got, tt.want) {
				t.Errorf("Rotate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateIsPure(t *testing.T) {
	players := seats("A", "B", "C")
	Rotate(players, &models.Nomination{Nominee: "B"})

	if !equalIDs(idsOf(players), []string{"A", "B", "C"}) {
		t.Error("Rotate() reordered its input")
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		vote *models.Vote
		want int
	}{
		{"confirmed yes", &models.Vote{State: models.VoteYes}, 1},
		{"confirmed no", &models.Vote{State: models.VoteNo}, 0},
		{"pending", &models.Vote{State: models.VotePending, Text: "yes"}, 0},
		{"unset", &models.Vote{State: models.VoteUnset}, 0},
		{"nil", nil, 0},
		{"bureaucrat yes", &models.Vote{State: models.VoteYes, Bureaucrat: true}, 3},
		{"thief yes", &models.Vote{State: models.VoteYes, Thief: true}, -1},
		{"thief before bureaucrat", &models.Vote{State: models.VoteYes, Thief: true, Bureaucrat: true}, -3},
		{"flags on a no still count nothing", &models.Vote{State: models.VoteNo, Thief: true, Bureaucrat: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Value(tt.vote); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTallyWorkedExample(t *testing.T) {
	// Five voters locked [yes, yes, yes(bureaucrat), yes(thief), no]:
	// the running counter is 1, 2, 5, 4, 4.
	ts := &models.TownSquare{Players: seats("A", "B", "C", "D", "E")}
	nom := &models.Nomination{
		Nominee: "E",
		Votes: map[string]*models.Vote{
			"A": {State: models.VoteYes},
			"B": {State: models.VoteYes},
			"C": {State: models.VoteYes, Bureaucrat: true},
			"D": {State: models.VoteYes, Thief: true},
			"E": {State: models.VoteNo},
		},
	}

	wantRunning := []int{1, 2, 5, 4, 4}
	running := 0
	for i, id := range Order(ts, nom) {
		running += Value(nom.Votes[id])
		if running != wantRunning[i] {
			t.Errorf("running tally after voter %d = %d, want %d", i+1, running, wantRunning[i])
		}
	}

	if got := Tally(ts, nom); got != 4 {
		t.Errorf("Tally() = %d, want 4", got)
	}
}

func TestOrderExcludesLateSeats(t *testing.T) {
	ts := &models.TownSquare{Players: seats("A", "B", "C", "D")}
	nom := &models.Nomination{
		Nominee: "B",
		// D was seated after the nomination was created: no vote entry.
		Votes: map[string]*models.Vote{
			"A": {State: models.VoteUnset},
			"B": {State: models.VoteUnset},
			"C": {State: models.VoteUnset},
		},
	}

	got := Order(ts, nom)
	if !equalIDs(got, []string{"C", "A", "B"}) {
		t.Errorf("Order() = %v, want [C A B]", got)
	}
}

func TestRequiredVotes(t *testing.T) {
	tests := []struct {
		name      string
		players   []*models.Participant
		threshold int
		want      int
	}{
		{
			name:    "dynamic threshold is half the voting seats rounded up",
			players: seats("A", "B", "C", "D", "E", "F", "G", "H"),
			want:    4,
		},
		{
			name:    "odd voter count rounds up",
			players: seats("A", "B", "C", "D", "E"),
			want:    3,
		},
		{
			name:      "fixed threshold ignores roster size",
			players:   seats("A", "B", "C"),
			threshold: 5,
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &models.TownSquare{Players: tt.players, VoteThreshold: tt.threshold}
			if got := RequiredVotes(ts); got != tt.want {
				t.Errorf("RequiredVotes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequiredVotesIgnoresDeath(t *testing.T) {
	// Deadness does not shrink the denominator; only can-vote does.
	ts := &models.TownSquare{Players: seats("A", "B", "C", "D")}
	ts.Players[0].Dead = true
	if got := RequiredVotes(ts); got != 2 {
		t.Errorf("RequiredVotes() = %d, want 2", got)
	}

	ts.Players[1].CanVote = false
	if got := RequiredVotes(ts); got != 2 {
		t.Errorf("RequiredVotes() with 3 voters = %d, want 2", got)
	}
}

func TestEffective(t *testing.T) {
	nom := &models.Nomination{
		Votes: map[string]*models.Vote{
			"A": {State: models.VotePending, Text: "probably"},
			"B": {State: models.VoteUnset},
			"C": {State: models.VoteYes},
		},
		PrivateVotes: map[string]string{"A": "secretly no"},
	}

	if got := Effective(nom, "A"); got != "secretly no" {
		t.Errorf("Effective() = %q, want private overlay", got)
	}

	delete(nom.PrivateVotes, "A")
	if got := Effective(nom, "A"); got != "probably" {
		t.Errorf("Effective() = %q, want public pending text", got)
	}

	if got := Effective(nom, "B"); got != models.ReservedVoteText {
		t.Errorf("Effective() unset = %q, want %q", got, models.ReservedVoteText)
	}
	if got := Effective(nom, "C"); got != models.VoteYes {
		t.Errorf("Effective() locked = %q, want yes", got)
	}
	if got := Effective(nom, "Z"); got != models.ReservedVoteText {
		t.Errorf("Effective() unknown voter = %q, want %q", got, models.ReservedVoteText)
	}
}
