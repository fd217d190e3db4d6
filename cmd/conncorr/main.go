// Command conncorr scores series of a numeric matrix against each other.
//
// Usage:
//
//	conncorr series   [flags] --index N
//	conncorr roi      [flags] --indices 1,2,3
//	conncorr external [flags] --query query.txt
//
// The input matrix is whitespace separated, one row per line; blank lines
// and lines starting with '#' are skipped. With --layout rows each row is
// one series; with --layout columns each row is one time point and each
// column one series. Scores are printed one per line in series order.
//
// Examples:
//
//	conncorr series -i bold.txt --index 12
//	conncorr roi -i bold.txt --layout columns --indices 4,5,6 --fisher-z
//	conncorr series -i bold.txt --index 0 --settings cov.yaml
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := newRootCommand(&logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("conncorr failed")
		os.Exit(1)
	}
}
