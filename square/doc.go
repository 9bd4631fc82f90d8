// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package square is the game engine: it owns every town square and runs
nominations, voting, and the storyteller's sequential count.

# Service

Service holds all live games behind a single mutex and loads them
through the store on first touch:

	svc := square.New(store, renderer)
	ts, err := svc.Setup("g1", players, storytellers)

Every mutation persists the whole town square and re-renders the
affected nomination. Both are best-effort: failures are logged, never
returned, so a flaky renderer or database cannot reject a vote.

# Actors

Operations take an Actor describing the caller:

	square.Actor{PlayerID: "...", Storyteller: true}

Storyteller access comes either from a validated key (Storyteller set
by the caller) or from being seated in the storytellers list.

# Nominations

One unfinished nomination per nominee at a time. Opening one seeds a
vote entry for every player currently able to vote; players seated
later get none and so cannot vote on it.

# Voting

Votes are free text and stay pending (editable) until the storyteller
locks them during the count. A private vote overlays the public one
until locked. The literal "-" is reserved as the no-vote placeholder.

# The Count

The storyteller counts seat by seat, starting one seat past the
nominee and ending on the nominee:

	resp, err := svc.CountAction("g1", actor, nomID, models.ActionYes)

The first action of any kind only initializes the session; after that,
yes/no lock the current voter and advance, and bureaucrat/thief toggle
the current voter's multiplier flags. When the pointer passes the last
seat the nomination is finished and rejects everything thereafter.

# Errors

All validation failures are sentinel errors (ErrCannotVote,
ErrAlreadyLocked, ErrNominationFinished, ...) so callers can map them
with errors.Is.
*/
package square
