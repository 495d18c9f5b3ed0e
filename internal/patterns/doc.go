// Package patterns holds the static query template library and the query
// expansion rules that turn a template into a final provider query string.
//
// Templates are read-only configuration data keyed by content domain and
// intent category. Expansion substitutes the target name, appends quoted
// exclusion clauses from the learned model, and appends an OR-group of
// trusted channel filters.
package patterns
