// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package resolve

import (
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("no participant matches the identifier")
	ErrAmbiguous = errors.New("identifier matches more than one participant")
)

// Identity is one roster entry with the three display projections the
// resolver matches against.
type Identity struct {
	ID          string
	Alias       string
	DisplayName string
	Username    string
}

type matcher func(attribute, identifier string) bool

// The narrowing cascade applied when the initial substring match is not
// unique. Order matters and is part of the contract.
var narrowers = []matcher{
	prefixFold,
	substring,
	prefix,
	equalFold,
	equal,
}

// Resolve maps a free-text identifier to exactly one roster identity.
//
// A structured mention reference ("<@id>" or "<@!id>") resolves by id
// directly. Otherwise candidates are the case-insensitive substring matches
// against alias, display name, and username; a non-unique candidate set is
// narrowed through case-insensitive prefix, case-sensitive substring,
// case-sensitive prefix, then exact equality (case-insensitive, then
// case-sensitive). The first stage yielding exactly one candidate wins; if
// every stage exhausts without a unique answer the result is ErrAmbiguous.
func Resolve(roster []Identity, identifier string) (Identity, error) {
	if id, ok := parseMention(identifier); ok {
		for _, entry := range roster {
			if entry.ID == id {
				return entry, nil
			}
		}
		return Identity{}, ErrNotFound
	}

	candidates := match(roster, substringFold, identifier)
	if len(candidates) == 0 {
		return Identity{}, ErrNotFound
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	for _, narrow := range narrowers {
		if narrowed := match(candidates, narrow, identifier); len(narrowed) == 1 {
			return narrowed[0], nil
		}
	}

	return Identity{}, ErrAmbiguous
}

// match returns the identities with at least one projection accepted by m.
func match(roster []Identity, m matcher, identifier string) []Identity {
	var out []Identity
	for _, entry := range roster {
		if m(entry.Alias, identifier) || m(entry.DisplayName, identifier) || m(entry.Username, identifier) {
			out = append(out, entry)
		}
	}
	return out
}

// parseMention extracts the id from a structured mention reference.
// Both "<@id>" and the nickname form "<@!id>" are accepted.
func parseMention(identifier string) (string, bool) {
	if !strings.HasPrefix(identifier, "<@") || !strings.HasSuffix(identifier, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(identifier, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if id == "" {
		return "", false
	}
	return id, true
}

func substringFold(attribute, identifier string) bool {
	if attribute == "" {
		return false
	}
	return strings.Contains(strings.ToLower(attribute), strings.ToLower(identifier))
}

func prefixFold(attribute, identifier string) bool {
	if attribute == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(attribute), strings.ToLower(identifier))
}

func substring(attribute, identifier string) bool {
	return attribute != "" && strings.Contains(attribute, identifier)
}

func prefix(attribute, identifier string) bool {
	return attribute != "" && strings.HasPrefix(attribute, identifier)
}

func equalFold(attribute, identifier string) bool {
	return attribute != "" && strings.EqualFold(attribute, identifier)
}

func equal(attribute, identifier string) bool {
	return attribute != "" && attribute == identifier
}
