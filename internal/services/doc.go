// Package services defines shared utilities consumed by the search engine,
// the training loop, and the external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep provider,
//     quota, persistence, and operator-input failures distinguishable with
//     errors.Is at every call site.
//   - Context helpers that stamp search correlation identifiers for logging.
//
// Use these helpers when wiring new engine logic so operational behaviour
// (error handling, observability) stays uniform across the CLI.
package services
