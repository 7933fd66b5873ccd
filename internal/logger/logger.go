// Package logger builds the named charmbracelet/log loggers lexarbor's
// core engine and adapters use for diagnostics: hashset growth, trie
// pruning, BK-tree rebuilds, malformed dictionary lines, and the
// interactive shell's own output.
//
// Every logger this package returns reads log.GetLevel() at construction
// time, not at call time. A caller that wants a named logger to honor a
// level set later (typically by a flag parsed in main, after package
// init) must call New fresh on every use rather than caching the result
// in a package-level var — see the per-call log() helpers in
// pkg/persist, pkg/wordlib, and internal/cli.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped, caller-free logger prefixed with prefix, at
// the process's current global level. This is what hashset, trie,
// bktree, persist, wordlib, and the interactive shell use by default.
func New(prefix string) *log.Logger {
	return NewWithConfig(prefix, log.GetLevel(), false, true, log.TextFormatter)
}

// NewWithConfig returns a logger with an explicit level, caller-reporting,
// timestamp, and formatter, for callers that need something other than
// New's defaults.
func NewWithConfig(prefix string, level log.Level, reportCaller, reportTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    reportCaller,
		ReportTimestamp: reportTimestamp,
		Formatter:       formatter,
	})
}
