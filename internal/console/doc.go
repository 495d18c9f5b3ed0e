// Package console handles interactive terminal I/O: prompts, confirmations,
// and selection parsing for the training loop and the guide flow. All input
// and output flow through injected reader/writer pairs so tests can script a
// whole session.
package console
