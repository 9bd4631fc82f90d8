// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import "towncrier/models"

// Rotate computes the canonical voting order for a nomination. The anchor
// is the nominee if seated, else the nominator if seated, else the last
// seat; the output is the players after the anchor (wrapping) followed by
// the players up to and including the anchor. Voting therefore begins
// immediately clockwise of the anchor and ends on the anchor itself.
func Rotate(players []*models.Participant, nom *models.Nomination) []*models.Participant {
	if len(players) == 0 {
		return nil
	}

	anchor := len(players) - 1
	for i, p := range players {
		if p.ID == nom.Nominee {
			anchor = i
			break
		}
		if p.ID == nom.Nominator {
			anchor = i
			// Keep scanning: a seated nominee wins over the nominator.
		}
	}

	out := make([]*models.Participant, 0, len(players))
	out = append(out, players[anchor+1:]...)
	out = append(out, players[:anchor+1]...)
	return out
}

// Order is the rotated seat order restricted to participants holding a vote
// entry on the nomination. Participants seated after the nomination was
// created have no entry and are excluded from both rotation and tally.
func Order(ts *models.TownSquare, nom *models.Nomination) []string {
	var order []string
	for _, p := range Rotate(ts.Players, nom) {
		if _, ok := nom.Votes[p.ID]; ok {
			order = append(order, p.ID)
		}
	}
	return order
}

// Value is the tally contribution of a single vote: 1 for a confirmed yes,
// negated by thief, tripled by bureaucrat, so both flags together
// contribute -3. Anything not a confirmed yes contributes 0.
func Value(v *models.Vote) int {
	if v == nil || v.State != models.VoteYes {
		return 0
	}
	value := 1
	if v.Thief {
		value *= -1
	}
	if v.Bureaucrat {
		value *= 3
	}
	return value
}

// Tally is the running count over the nomination's voters in rotated order.
func Tally(ts *models.TownSquare, nom *models.Nomination) int {
	total := 0
	for _, id := range Order(ts, nom) {
		total += Value(nom.Votes[id])
	}
	return total
}

// RequiredVotes is the number of confirmed yes votes needed to execute.
// A stored threshold of 0 means "half the voting seats, rounded up",
// computed at read time. Deadness does not exclude a seat; only the
// can-vote flag gates the denominator.
func RequiredVotes(ts *models.TownSquare) int {
	if ts.VoteThreshold > 0 {
		return ts.VoteThreshold
	}
	voters := 0
	for _, p := range ts.Players {
		if p.CanVote {
			voters++
		}
	}
	return (voters + 1) / 2
}

// Effective returns the vote text that counts for display: the private
// overlay if present, else the public vote. Unset votes render as the
// reserved dash.
func Effective(nom *models.Nomination, voterID string) string {
	if text, ok := nom.PrivateVotes[voterID]; ok {
		return text
	}
	v, ok := nom.Votes[voterID]
	if !ok || v == nil {
		return models.ReservedVoteText
	}
	switch v.State {
	case models.VotePending:
		return v.Text
	case models.VoteYes:
		return models.VoteYes
	case models.VoteNo:
		return models.VoteNo
	default:
		return models.ReservedVoteText
	}
}
