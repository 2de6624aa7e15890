// Package launcher bootstraps the photo viewer for both entry points.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"

	"photoview/application"
	"photoview/core/eventbus"
	"photoview/domain/photo"
	"photoview/infrastructure/config"
	"photoview/infrastructure/imagefile"
	"photoview/infrastructure/logging"
	"photoview/infrastructure/repository"
	"photoview/presentation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Layout selects the top-level window.
type Layout int

const (
	// LayoutTable shows the photo table alone.
	LayoutTable Layout = iota
	// LayoutTabbed shows the photo table inside the tabbed workbench.
	LayoutTabbed
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const eventBufferSize = 100

type photoWindow interface {
	Panel() *presentation.PhotoPanel
	Show()
}

// Run parses args, loads configuration, shows the window for layout and
// blocks until it is closed.
func Run(name string, args []string, layout Layout) int {
	return run(name, args, layout, os.Stdout, os.Stderr)
}

func run(name string, args []string, layout Layout, stdout, stderr io.Writer) int {
	opts, err := ParseFlags(name, stdout, args)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	if opts.Help {
		return ExitOK
	}

	cfg, err := config.Load(&config.LoadOptions{
		Path:      opts.ConfigPath,
		Overrides: opts.Overrides,
	})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}

	logCfg, err := loggingConfig(&cfg.Logging)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}

	// Initialize logging (dev: console only, prod: rotating file)
	logger, closeLog, err := logging.Setup(logCfg)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to initialize logging:", err)
		return ExitFailure
	}
	defer closeLog()

	logger.Info("Starting photoview", "database", cfg.Database.Redacted())

	repo, err := repository.NewPhotoRepository(&cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize photo repository", "error", err)
		return ExitFailure
	}

	eventBus := eventbus.New(eventBufferSize, logger)
	defer eventBus.Close()

	bridge := presentation.NewUIEventBridge(&presentation.BridgeConfig{
		EventBus: eventBus,
		Logger:   logger,
	})
	defer bridge.Close()

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(presentation.NewTheme())

	var loader *application.PhotoTableLoader
	winCfg := &presentation.WindowConfig{
		App:    fyneApp,
		Bridge: bridge,
		Title:  cfg.Window.Title,
		Size:   fyne.NewSize(cfg.Window.Width, cfg.Window.Height),
		Logger: logger,
		OnClosed: func() {
			if loader != nil {
				loader.Close()
			}
		},
	}

	var window photoWindow
	switch layout {
	case LayoutTabbed:
		window = presentation.NewMainWindow(winCfg)
	default:
		window = presentation.NewTableWindow(winCfg)
	}

	loader = application.NewPhotoTableLoader(&application.LoaderConfig{
		Service: photo.NewService(repo),
		View:    window.Panel().Table(),
		Opener: presentation.NewViewerFactory(&presentation.ViewerFactoryConfig{
			App:    fyneApp,
			Title:  cfg.Viewer.Title,
			Size:   fyne.NewSize(cfg.Viewer.Width, cfg.Viewer.Height),
			Logger: logger,
		}),
		Files:    imagefile.Checker{},
		EventBus: eventBus,
		Logger:   logger,
	})

	// The snapshot is taken before the window is shown
	loader.Load(context.Background())

	window.Show()
	fyneApp.Run()

	logger.Info("Application shutdown complete")
	return ExitOK
}

func loggingConfig(cfg *config.LoggingConfig) (*logging.Config, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Dir = cfg.Dir
	logCfg.AddSource = cfg.AddSource
	return logCfg, nil
}
