// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"towncrier/count"
	"towncrier/models"
)

// ConcealedMark replaces every voter's mark when the organ grinder is
// active. No confirmed or pending state leaks through it.
const ConcealedMark = "❔"

// Renderer delivers nomination messages to the chat surface. Calls are
// best-effort: the engine logs failures and never retries.
type Renderer interface {
	RenderNomination(ts *models.TownSquare, nom *models.Nomination) (messageRef string, err error)
	UpdateRendered(messageRef, content string) error
	SendDirect(p *models.Participant, text string) error
}

// FormatNomination renders a nomination as chat text: header, accusation
// and defense, deadline and threshold, then the seat list in rotated order
// with per-voter marks and the running tally.
func FormatNomination(ts *models.TownSquare, nom *models.Nomination) string {
	var b strings.Builder

	nominee := displayName(ts, nom.Nominee)
	nominator := displayName(ts, nom.Nominator)
	fmt.Fprintf(&b, "%s has been nominated by %s.\n", nominee, nominator)

	if nom.Accusation != "" {
		fmt.Fprintf(&b, "Accusation: %s\n", nom.Accusation)
	}
	if nom.Defense != "" {
		fmt.Fprintf(&b, "Defense: %s\n", nom.Defense)
	}

	if nom.Finished {
		b.WriteString("Voting has closed.")
	} else {
		fmt.Fprintf(&b, "Voting closes %s.", humanize.Time(nom.Deadline))
	}
	fmt.Fprintf(&b, " %d votes to execute.\n", count.RequiredVotes(ts))

	current := nom.Count.Current()
	running := 0
	for _, id := range count.Order(ts, nom) {
		marker := "  "
		if id == current {
			marker = "→ "
		}
		fmt.Fprintf(&b, "%s%s — %s\n", marker, displayName(ts, id), voteMark(ts, nom, id, &running))
	}

	return b.String()
}

// voteMark formats one voter's line. Under the organ grinder every voter
// shows the concealed mark, confirmed or not, with no tally.
func voteMark(ts *models.TownSquare, nom *models.Nomination, voterID string, running *int) string {
	if ts.OrganGrinder {
		return ConcealedMark
	}
	v := nom.Votes[voterID]
	if v != nil && v.Locked() {
		*running += count.Value(v)
		return fmt.Sprintf("%s (%d)", v.State, *running)
	}
	return count.Effective(nom, voterID)
}

func displayName(ts *models.TownSquare, id string) string {
	if p := ts.Participant(id); p != nil {
		return p.Name()
	}
	return id
}

// Log is the default Renderer. It formats each nomination, logs the
// content in place of a chat delivery, and hands back a generated ref.
type Log struct{}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) RenderNomination(ts *models.TownSquare, nom *models.Nomination) (string, error) {
	ref := uuid.NewString()
	slog.Info("nomination rendered",
		"game_id", ts.GameID,
		"nomination_id", nom.ID,
		"message_ref", ref,
		"content", FormatNomination(ts, nom),
	)
	return ref, nil
}

func (l *Log) UpdateRendered(messageRef, content string) error {
	slog.Info("rendered message updated", "message_ref", messageRef, "content", content)
	return nil
}

func (l *Log) SendDirect(p *models.Participant, text string) error {
	slog.Info("direct message sent", "participant", p.ID, "text", text)
	return nil
}
