// Package model holds the per-domain learned relevance models and their
// persistence.
//
// A Model carries two exclusion tiers (persistent phrases that survive
// restarts and session phrases cleared on target change), mutually exclusive
// trusted/noise channel sets, scoring weights, and per-category duration
// ranges. The Store is a namespaced key-value byte store backed by SQLite;
// the Manager mediates between the two, saving models after persistent
// mutations and degrading to in-memory state with a logged warning when
// persistence fails.
//
// Treat the Manager as the single writer of learned state; the scorer and
// search engine only read models.
package model
