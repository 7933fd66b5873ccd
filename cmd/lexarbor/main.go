// Copyright 2026 The Lexarbor Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Command lexarbor is a personal word library: it keeps a plain-text
dictionary, answers membership queries, completes prefixes, suggests
corrections for misspelled tokens, and scans arbitrary text for unknown
words.

# Subcommands

	add <word>            add a word to the dictionary
	remove <word>          remove a word from the dictionary
	list                    list dictionary words in byte order, up to the result limit
	check [text|stdin]      report tokens from text (or stdin) not in the dictionary
	complete <prefix>       list completions of prefix
	suggest <word>          list words within edit distance of word

# Config

Runtime configuration is managed via a `config.toml` file under
`~/.lexarbor/`, which supports settings for the dictionary path, tokenizer
behavior, and CLI defaults. A default configuration is created
automatically if one does not exist.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/cli"
	"github.com/kavanhollis/lexarbor/pkg/config"
	"github.com/kavanhollis/lexarbor/pkg/tokenizer"
	"github.com/kavanhollis/lexarbor/pkg/wordlib"
)

const (
	version = "0.1.0"
	appName = "lexarbor"
	gh      = "https://github.com/kavanhollis/lexarbor"
)

// sigHandler exits normally on interrupt or termination, matching the
// teacher's signal handling in cmd/wordserve.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintln(os.Stderr, "\nExiting...")
		os.Exit(cli.ExitSuccess)
	}()
}

func main() {
	sigHandler()

	defaultConfigPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultConfigPath = filepath.Join(home, ".lexarbor", "config.toml")
	}

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", defaultConfigPath, "Path to config.toml file")
	dictPath := flag.String("dict", "", "Path to the dictionary file (overrides config)")
	limit := flag.Int("limit", 0, "Maximum number of results to return (overrides config)")
	maxDist := flag.Int("max-dist", 0, "Maximum edit distance for suggest (overrides config)")
	jsonOut := flag.Bool("json", false, "Emit JSON output where supported")
	quiet := flag.Bool("quiet", false, "Suppress non-essential output")
	interactive := flag.Bool("i", false, "Run the interactive shell")
	verbose := flag.Bool("v", false, "Enable verbose (debug) logging")

	flag.Parse()

	if *showVersion {
		printVersionBanner()
		os.Exit(cli.ExitSuccess)
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *limit > 0 {
		cfg.CLI.DefaultLimit = *limit
	}
	if *jsonOut {
		cfg.CLI.JSON = true
	}
	if *quiet {
		cfg.CLI.Quiet = true
	}

	tcfg := tokenizer.Config{
		IncludeApostrophes: cfg.Tokenizer.IncludeApostrophes,
		IncludeHyphens:     cfg.Tokenizer.IncludeHyphens,
		IncludeDigits:      cfg.Tokenizer.IncludeDigits,
		MinLength:          cfg.Tokenizer.MinLength,
		MaxLength:          cfg.Tokenizer.MaxLength,
	}
	lib := wordlib.New(wordlib.WithTokenizerConfig(tcfg))

	skipped, err := lib.Load(cfg.Dict.Path)
	if err != nil {
		log.Fatalf("failed to load dictionary at %s: %v", cfg.Dict.Path, err)
	}
	if skipped > 0 {
		log.Warnf("skipped %d malformed line(s) while loading %s", skipped, cfg.Dict.Path)
	}

	if *interactive {
		shell := cli.NewShell(lib, cfg.CLI.DefaultLimit)
		if err := shell.Start(); err != nil {
			log.Fatalf("shell error: %v", err)
		}
		saveIfDirty(lib, cfg.Dict.Path)
		return
	}

	opts := cli.Options{
		Limit:      cfg.CLI.DefaultLimit,
		MaxSuggest: *maxDist,
		JSON:       cfg.CLI.JSON,
		Quiet:      cfg.CLI.Quiet,
	}
	if opts.MaxSuggest <= 0 {
		opts.MaxSuggest = cfg.Dict.MaxSuggestDist
	}

	code := cli.Run(lib, opts, flag.Args())
	saveIfDirty(lib, cfg.Dict.Path)
	os.Exit(code)
}

func saveIfDirty(lib *wordlib.WordLib, path string) {
	if !lib.IsDirty() {
		return
	}
	if err := lib.Save(path); err != nil {
		log.Errorf("failed to save dictionary at %s: %v", path, err)
	}
}

func printVersionBanner() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Printf("[%s] a personal word library engine", appName)
	logger.Print("", "version", version)
	logger.Print("")
	logger.Print("use --help to see available options")
	logger.Print("")
	logger.Print("Find out more at", "gh", gh)
}
