// Package logging wires the package-level structured logger used by the
// FRI prover and verifier to trace round progress. Logging is diagnostic
// only: it never influences control flow and never logs the witness
// polynomial or codeword values, only round indices, lengths, and counts.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger. Tests and the demo CLI may replace it
// with a console writer; production callers get the zero-allocation JSON
// writer by default: structured output, not chatty text.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "fristark").Logger()

// SetLevel adjusts the global minimum log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
