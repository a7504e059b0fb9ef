/*
Package main runs the skipwise matching core as a msgpack IPC server or
an interactive CLI.

The core classifies short free-text expense descriptions into spending
categories and serves typo-tolerant search over previously logged
entries. It keeps no state of its own beyond the in-memory vocabulary;
the host application owns persistence and feeds learned vocabulary back
in at startup.

# Usage

Start the IPC server with default settings:

	skipwise

Seed previously learned vocabulary and enable debug logging:

	skipwise -learned /path/to/learned.bin -d

Run in CLI mode for interactive testing:

	skipwise -c -trace

# Configuration

Runtime configuration is managed through a TOML file holding the scoring
constants, all overridable without a rebuild:

	[matching]
	exact_confidence = 0.95
	fuzzy_discount = 0.8
	agreement_bonus = 0.1

	[search]
	min_score = 0.3
	max_results = 20

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via msgpack over stdin/stdout; see pkg/server for
the message shapes. Learning events are appended to the -learned file
when one is configured, so corrections survive restarts.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/internal/cli"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/classify"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/search"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/server"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/vocab"
)

const (
	Version = "0.4.0-beta"
	AppName = "skipwise"
	gh      = "https://github.com/0xshadow-dev/skipwise-sub000"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the vocabulary store, engine, and search index together and
// hands off to server or CLI mode. It holds no logic of its own.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to config.toml")
	learnedPath := flag.String("learned", "", "Path to the learned-vocabulary snapshot maintained by the host")
	showTrace := flag.Bool("trace", false, "Print the processing trace in CLI mode")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ skipwise ] fuzzy expense classification and search")
		logger.Print("", "version", Version)
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config at: %s", config.GetActiveConfigPath(activePath))

	storeOpts := []vocab.StoreOption{}
	if *learnedPath != "" {
		if data, readErr := os.ReadFile(*learnedPath); readErr == nil {
			if learned, decErr := vocab.DecodeLearned(data); decErr == nil {
				storeOpts = append(storeOpts, vocab.WithLearned(learned))
				log.Debugf("Seeded learned vocabulary from %s", *learnedPath)
			} else {
				log.Warnf("Ignoring learned snapshot %s: %v", *learnedPath, decErr)
			}
		} else if !os.IsNotExist(readErr) {
			log.Warnf("Cannot read learned snapshot %s: %v", *learnedPath, readErr)
		}
	}
	store := vocab.NewStore(storeOpts...)
	log.Debugf("Vocabulary ready: %d terms", store.Consolidated().TermCount())

	engineOpts := []classify.Option{}
	if *learnedPath != "" {
		path := *learnedPath
		engineOpts = append(engineOpts, classify.WithSink(func(term string, cat category.Category) {
			data, encErr := store.EncodeLearned()
			if encErr != nil {
				log.Errorf("Encoding learned vocabulary: %v", encErr)
				return
			}
			if writeErr := os.WriteFile(path, data, 0644); writeErr != nil {
				log.Errorf("Persisting learned vocabulary: %v", writeErr)
				return
			}
			log.Debugf("Persisted learned term %q (%s)", term, cat)
		}))
	}
	engine := classify.New(store, cfg, engineOpts...)

	if *cliMode {
		inputHandler := cli.NewInputHandler(engine, cfg.CLI.DefaultLimit, *showTrace || cfg.CLI.ShowTrace)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI exited: %v", err)
		}
		return
	}

	fields := server.ItemFields([]string{"description", "note"}, []float64{1.0, 0.5})
	index := search.New(fields, cfg.Search)
	srv := server.NewServer(engine, index, cfg.Server)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
