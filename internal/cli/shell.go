// Package cli implements lexarbor's command-line adapter: subcommand
// dispatch, an interactive REPL shell, and lipgloss-styled output. It is
// an external collaborator per spec.md §1 — it owns argument parsing,
// human-readable formatting, and exit codes; pkg/wordlib never sees any
// of this.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/logger"
	"github.com/kavanhollis/lexarbor/internal/utils"
	"github.com/kavanhollis/lexarbor/pkg/wordlib"
)

// log is re-created per call rather than cached in a package var, so the
// level set by main's -v flag (parsed after package init) always applies.
func log() *charmlog.Logger { return logger.New("shell") }

// Shell is an interactive REPL over a WordLib, for debugging and manual
// testing of completion/suggestion/check behavior.
type Shell struct {
	lib          *wordlib.WordLib
	limit        int
	requestCount int
}

// NewShell creates a Shell bound to lib, returning up to limit results
// per query by default.
func NewShell(lib *wordlib.WordLib, limit int) *Shell {
	return &Shell{lib: lib, limit: limit}
}

// Start begins the REPL loop: prompt, read a line, dispatch, repeat.
// Loop terminates when stdin is closed or the user types "quit"/"exit".
func (s *Shell) Start() error {
	log().Print("lexarbor shell")
	log().Print("commands: add <word> | remove <word> | complete <prefix> | suggest <word> | check <text> | count | quit")
	reader := bufio.NewReader(os.Stdin)

	for {
		log().Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		s.dispatch(line)
	}
}

func (s *Shell) dispatch(line string) {
	s.requestCount++
	fields := strings.SplitN(line, " ", 2)
	cmd := fields[0]
	var arg string
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "add":
		s.cmdAdd(arg)
	case "remove":
		s.cmdRemove(arg)
	case "complete":
		s.cmdComplete(arg)
	case "suggest":
		s.cmdSuggest(arg)
	case "check":
		s.cmdCheck(arg)
	case "count":
		log().Printf("%s words", utils.FormatCount(s.lib.Count()))
	default:
		log().Errorf("unknown command: %s", cmd)
	}
}

func (s *Shell) cmdAdd(word string) {
	if word == "" {
		log().Error("usage: add <word>")
		return
	}
	outcome, err := s.lib.Add(word)
	if err != nil {
		log().Errorf("add %q: %v", word, err)
		return
	}
	log().Print(outcome.String(), "word", word)
}

func (s *Shell) cmdRemove(word string) {
	if word == "" {
		log().Error("usage: remove <word>")
		return
	}
	outcome, err := s.lib.Remove(word)
	if err != nil {
		log().Errorf("remove %q: %v", word, err)
		return
	}
	log().Print(outcome.String(), "word", word)
}

func (s *Shell) cmdComplete(prefix string) {
	results := s.lib.Complete(prefix, s.limit)
	if len(results) == 0 {
		log().Warnf("no completions for prefix %q", prefix)
		return
	}
	log().Printf("%d completions for %q:", len(results), prefix)
	for i, w := range results {
		fmt.Printf("%2d. %s\n", i+1, w)
	}
}

func (s *Shell) cmdSuggest(arg string) {
	word, maxDist := arg, 2
	if parts := strings.SplitN(arg, " ", 2); len(parts) == 2 {
		word = parts[0]
		maxDist = parseIntOr(parts[1], 2)
	}
	matches := s.lib.Suggest(word, maxDist, s.limit)
	if len(matches) == 0 {
		log().Warnf("no suggestions for %q", word)
		return
	}
	log().Printf("%d suggestions for %q:", len(matches), word)
	for i, m := range matches {
		fmt.Printf("%2d. %-20s (distance: %d)\n", i+1, m.Word, m.Distance)
	}
}

func (s *Shell) cmdCheck(text string) {
	spans := s.lib.CheckText(text, s.limit)
	if len(spans) == 0 {
		log().Print("no unknown words found")
		return
	}
	log().Printf("%d unknown words:", len(spans))
	for _, sp := range spans {
		fmt.Printf("  [%d,%d) %s\n", sp.Start, sp.End, sp.Word)
	}
}

// parseIntOr returns n parsed from s, or def if s does not parse.
func parseIntOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
