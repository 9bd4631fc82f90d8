// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package count holds the pure seat-order and tally math for nominations.

Rotate orders the seated players so the count starts one seat past the
nominee and ends on the nominee. Order filters that rotation down to
the players who hold a vote entry. Value scores a single locked vote
(yes is 1, tripled by bureaucrat, negated by thief, thief applied
first) and Tally sums the locked votes.

RequiredVotes computes the execution threshold: a fixed storyteller
override when set, otherwise half the seats that can vote, rounded up.
Dead seats still count toward the denominator as long as they keep
their vote.

Everything here is deterministic and side-effect free; the square and
render packages share it.
*/
package count
