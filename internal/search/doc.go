// Package search runs the full query cycle: expand the domain's query
// patterns for a target name, charge the quota ledger up front, fetch every
// pattern to its per-pattern cap, filter out known noise, score what is
// left, and return a deduplicated ranked shortlist.
//
// A cycle is all-or-nothing. A provider failure on any pattern discards the
// candidates already fetched rather than returning a partial ranking.
package search
