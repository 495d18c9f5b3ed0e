// Package quota tracks the session cost of provider calls.
//
// The ledger is informational: the provider enforces the real daily ceiling
// out-of-process, so remaining points are only displayed, never enforced.
// Charges above the confirmation threshold block on an explicit operator
// yes/no before committing. The ledger lives for one process run and is
// never persisted.
package quota
