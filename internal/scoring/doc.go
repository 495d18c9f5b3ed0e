// Package scoring implements the heuristic multi-factor relevance score.
//
// Scoring is pure: no I/O, no clock reads beyond the instant the caller
// passes in, and no mutation of the model. Factors are additive and
// independent; a candidate from a noise channel with nothing else going for
// it can score negative. Ordering of equal scores is the caller's concern
// and must stay stable with respect to discovery order.
package scoring
