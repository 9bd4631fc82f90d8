// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package square

import "errors"

// Every error below is a local validation failure: it is reported to the
// caller without mutating state, and the caller can retry with corrected
// input. There are no fatal engine errors.
var (
	ErrGameNotFound        = errors.New("game not found")
	ErrNotParticipant      = errors.New("not a seated player or storyteller")
	ErrDuplicateNomination = errors.New("an open nomination already targets this nominee")
	ErrNominationNotFound  = errors.New("nomination not found")
	ErrNominationFinished  = errors.New("nomination is finished")
	ErrAccusationTooLong   = errors.New("accusation exceeds 900 characters")
	ErrDefenseTooLong      = errors.New("defense exceeds 900 characters")
	ErrVoteTooLong         = errors.New("vote exceeds 400 characters")
	ErrReservedVoteValue   = errors.New("vote text is a reserved value")
	ErrAlreadyLocked       = errors.New("vote has already been locked")
	ErrCannotVote          = errors.New("participant is not eligible to vote")
	ErrUnauthorized        = errors.New("not authorized")
	ErrInvalidThreshold    = errors.New("vote threshold cannot be negative")
	ErrInvalidDeadline     = errors.New("deadline must be in the future")
	ErrInvalidDuration     = errors.New("duration must be at least one hour")
)
