// Package main provides the personal assistant: an interactive session for
// keeping contacts and notes, backed by files or SQLite in the data directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/assistant/pkg/commands"
	"github.com/entrhq/assistant/pkg/config"
	"github.com/entrhq/assistant/pkg/executor/cli"
	"github.com/entrhq/assistant/pkg/executor/tui"
	"github.com/entrhq/assistant/pkg/logging"
)

const version = "0.1.0"

// Flags holds the command-line overrides of the configuration.
type Flags struct {
	ConfigPath  string
	DataDir     string
	Backend     string
	Interface   string
	ShowVersion bool
}

func main() {
	flags := parseFlags()

	if flags.ShowVersion {
		fmt.Printf("assistant v%s\n", version)
		return
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		cancel()
		log.Fatalf("Application error: %v", err)
	}
}

func parseFlags() *Flags {
	f := &Flags{}

	flag.StringVar(&f.ConfigPath, "config", "", "Path to config.yaml (default: ./config.yaml or ~/.config/assistant/config.yaml)")
	flag.StringVar(&f.DataDir, "data-dir", "", "Directory holding the contacts and notes (overrides data_dir)")
	flag.StringVar(&f.Backend, "backend", "", "Storage backend: json, yaml or sqlite (overrides storage.backend)")
	flag.StringVar(&f.Interface, "interface", "", "Interface: tui or cli (overrides interface)")
	flag.BoolVar(&f.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "assistant - contacts and notes in your terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: assistant [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ASSISTANT_DATA_DIR          Data directory\n")
		fmt.Fprintf(os.Stderr, "  ASSISTANT_STORAGE_BACKEND   json, yaml or sqlite\n")
		fmt.Fprintf(os.Stderr, "  ASSISTANT_LOGGING_LEVEL     debug, info, warn or error\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  assistant\n")
		fmt.Fprintf(os.Stderr, "  assistant -interface cli -backend sqlite\n")
	}

	flag.Parse()
	return f
}

// loadConfig reads the configuration and applies flag overrides on top.
func loadConfig(f *Flags) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.Backend != "" {
		cfg.Storage.Backend = f.Backend
	}
	if f.Interface != "" {
		cfg.Interface = f.Interface
	}
	return cfg, cfg.Validate()
}

// Executor runs an interactive session.
type Executor interface {
	Run(ctx context.Context) error
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logging.Configure(cfg.LogDir(), level)

	logger, err := logging.NewLogger("assistant")
	if err != nil {
		// Fallback logger is still usable; it writes to stderr.
		logger.Warnf("continuing without a log file: %v", err)
	}
	defer logger.Close()
	logger.Infof("starting v%s with %s storage in %s", version, cfg.Storage.Backend, cfg.DataDir)

	stores, err := openStores(cfg, logger)
	if err != nil {
		logger.Errorf("open stores: %v", err)
		return err
	}
	defer stores.Close()

	dispatcher := commands.New(stores.Contacts, stores.Notes,
		commands.WithLogger(logger),
		commands.WithPageSize(cfg.Display.PageSize),
		commands.WithUpcomingDays(cfg.Display.UpcomingDays),
	)

	var executor Executor
	if cfg.Interface == config.InterfaceCLI {
		executor = cli.NewExecutor(dispatcher)
	} else {
		executor = tui.NewExecutor(dispatcher)
	}

	err = executor.Run(ctx)
	if stores.Contacts.Divergent() || stores.Notes.Divergent() {
		logger.Errorf("session ended with unsaved changes")
		fmt.Fprintln(os.Stderr, "Warning: some changes could not be saved; see the log at", logger.LogPath())
	}
	logger.Infof("session finished")
	return err
}
