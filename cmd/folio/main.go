// Package main is the entry point for the folio article previewer.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/folio/internal/application/settings"
	"github.com/tesso57/folio/internal/application/usecase"
	"github.com/tesso57/folio/internal/domain/document"
	"github.com/tesso57/folio/internal/infrastructure/cache"
	"github.com/tesso57/folio/internal/infrastructure/config"
	docinfra "github.com/tesso57/folio/internal/infrastructure/document"
	"github.com/tesso57/folio/internal/logging"
	"github.com/tesso57/folio/internal/presentation/tui"
)

// CLI is the command line of folio.
type CLI struct {
	Source  string `arg:"" optional:"" help:"Markdown/text file or RSS/Atom feed URL. Empty opens the configured source or the bundled sample."`
	Item    int    `short:"i" default:"-1" help:"Feed entry index (0 is the newest)."`
	Config  string `short:"c" type:"path" help:"Config file path."`
	Debug   bool   `help:"Log at debug level."`
	LogFile string `type:"path" help:"Log file path. Overrides the configured one."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Preview an article in the terminal and tune its typography."),
		kong.UsageOnError(),
	)
	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := store.Settings

	logPath := cfg.LogFile
	if cli.LogFile != "" {
		logPath = cli.LogFile
	}
	logger, closeLog, err := logging.New(logPath, cli.Debug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "path", store.Path())

	var docCache usecase.DocumentCache
	if db, err := cache.Open(cfg.CacheFile); err != nil {
		logger.Warn("document cache disabled", "path", cfg.CacheFile, "err", err)
	} else {
		defer db.Close()
		docCache = db
	}

	loader := docinfra.Loader{Timeout: cfg.FetchTimeout()}
	previewSvc := usecase.NewPreviewService(loader, docCache, store, logger.WithPrefix("preview"))

	src := resolveSource(cli, cfg)
	model := tui.NewModel(cfg, previewSvc, src, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSource prefers command line values over configured ones.
func resolveSource(cli CLI, cfg settings.Settings) document.Source {
	raw := cli.Source
	if raw == "" {
		raw = cfg.Source
	}
	item := cli.Item
	if item < 0 {
		item = cfg.Item
	}
	return document.ParseSource(raw, item)
}
