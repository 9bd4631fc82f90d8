// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package resolve turns free-text player references into seat identities.

# Resolution

Resolve matches an identifier against a roster of identity projections
(alias, display name, username):

	who, err := resolve.Resolve(roster, "ali")

Mention syntax (<@id> or <@!id>) short-circuits to a direct ID lookup.
Otherwise a case-insensitive substring match runs over every projection
of every seat. No hit is ErrNotFound; exactly one seat is a match.

# Narrowing

When several seats match, progressively stricter matchers run in order:
case-insensitive prefix, case-sensitive substring, case-sensitive
prefix, case-insensitive equality, exact equality. The first stage
that singles out exactly one seat wins; if none does, Resolve returns
ErrAmbiguous and the caller should ask for a longer name.
*/
package resolve
