// Package logging constructs the slog loggers used across curator.
//
// Two handler formats are supported: a human-oriented console handler that
// prints a compact header line with indented fields, and a JSON handler for
// machine consumption. Output fans out to stdout plus a log file under the
// configured log directory.
package logging
