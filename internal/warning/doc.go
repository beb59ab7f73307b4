// Package warning holds the operator-authored threshold rule model, its
// SQLite-backed repository, and the evaluator run on every warnings poll.
//
// The evaluator's polarity is within-bounds: a threshold is met when the
// observed value lies inside [LowerBound, UpperBound]. Rule authors compose
// bounds against that semantics, so it is part of the contract.
package warning
