package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kavanhollis/lexarbor/pkg/wordlib"
)

// Exit codes per spec.md §6.
const (
	ExitSuccess     = 0
	ExitGenericErr  = 1
	ExitUsageErr    = 2
	ExitUnknownText = 3
)

// Options controls global CLI behavior, set from flags in cmd/lexarbor.
type Options struct {
	Limit        int
	MaxSuggest   int
	JSON         bool
	Quiet        bool
}

var wordStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})

var distStyle = lipgloss.NewStyle().Italic(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#908caa"})

// Run dispatches a single subcommand (args[0]) against lib and returns the
// process exit code. cmd/lexarbor calls it after flag parsing unless the
// interactive shell (-i) was requested.
func Run(lib *wordlib.WordLib, opts Options, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lexarbor <add|remove|list|check|complete|suggest> [args]")
		return ExitUsageErr
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		return runAdd(lib, opts, rest)
	case "remove":
		return runRemove(lib, opts, rest)
	case "list":
		return runList(lib, opts)
	case "check":
		return runCheck(lib, opts, rest)
	case "complete":
		return runComplete(lib, opts, rest)
	case "suggest":
		return runSuggest(lib, opts, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		return ExitUsageErr
	}
}

func runAdd(lib *wordlib.WordLib, opts Options, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexarbor add <word>")
		return ExitUsageErr
	}
	outcome, err := lib.Add(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "add: %v\n", err)
		return ExitGenericErr
	}
	if !opts.Quiet {
		fmt.Println(outcome.String())
	}
	return ExitSuccess
}

func runRemove(lib *wordlib.WordLib, opts Options, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexarbor remove <word>")
		return ExitUsageErr
	}
	outcome, err := lib.Remove(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "remove: %v\n", err)
		return ExitGenericErr
	}
	if !opts.Quiet {
		fmt.Println(outcome.String())
	}
	return ExitSuccess
}

func runList(lib *wordlib.WordLib, opts Options) int {
	words := lib.Complete("", opts.Limit)
	for _, w := range words {
		fmt.Println(w)
	}
	return ExitSuccess
}

func runCheck(lib *wordlib.WordLib, opts Options, args []string) int {
	text, err := textFromArgsOrStdin(args, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "check: %v\n", err)
		return ExitGenericErr
	}
	spans := lib.CheckText(text, opts.Limit)
	for _, sp := range spans {
		if opts.JSON {
			fmt.Printf(`{"start":%d,"end":%d,"word":%q}`+"\n", sp.Start, sp.End, sp.Word)
		} else {
			fmt.Printf("%d:%d %s\n", sp.Start, sp.End, wordStyle.Render(sp.Word))
		}
	}
	if len(spans) > 0 {
		return ExitUnknownText
	}
	return ExitSuccess
}

func runComplete(lib *wordlib.WordLib, opts Options, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexarbor complete <prefix>")
		return ExitUsageErr
	}
	for _, w := range lib.Complete(args[0], opts.Limit) {
		fmt.Println(w)
	}
	return ExitSuccess
}

func runSuggest(lib *wordlib.WordLib, opts Options, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexarbor suggest <word>")
		return ExitUsageErr
	}
	maxDist := opts.MaxSuggest
	if maxDist <= 0 {
		maxDist = 2
	}
	for _, m := range lib.Suggest(args[0], maxDist, opts.Limit) {
		fmt.Printf("%-20s %s\n", m.Word, distStyle.Render(fmt.Sprintf("(%d)", m.Distance)))
	}
	return ExitSuccess
}

// textFromArgsOrStdin joins args as the text to check, or reads all of r
// if no args were given, matching spec.md §6's "check [text-or-stdin]".
func textFromArgsOrStdin(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
