package presentation

import (
	"log/slog"

	"fyne.io/fyne/v2"
)

// TableWindow is the standalone photo table window.
type TableWindow struct {
	window fyne.Window
	panel  *PhotoPanel
	logger *slog.Logger
}

// WindowConfig holds configuration for TableWindow and MainWindow.
type WindowConfig struct {
	App    fyne.App
	Bridge *UIEventBridge
	Title  string
	Size   fyne.Size
	Logger *slog.Logger

	// OnClosed runs before the application quits
	OnClosed func()
}

func (cfg *WindowConfig) setDefaults(title string) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Title == "" {
		cfg.Title = title
	}
	if cfg.Size.Width <= 0 || cfg.Size.Height <= 0 {
		cfg.Size = fyne.NewSize(1200, 700)
	}
}

// NewTableWindow creates the table window. The window quits the app when closed.
func NewTableWindow(cfg *WindowConfig) *TableWindow {
	cfg.setDefaults("Photo Database")

	w := &TableWindow{
		window: cfg.App.NewWindow(cfg.Title),
		logger: cfg.Logger,
	}
	w.panel = NewPhotoPanel(&PhotoPanelConfig{
		Window: w.window,
		Bridge: cfg.Bridge,
		Logger: cfg.Logger,
	})

	w.window.SetContent(w.panel.Content())
	w.window.Resize(cfg.Size)
	w.window.SetMaster()
	w.window.SetOnClosed(func() {
		if cfg.OnClosed != nil {
			cfg.OnClosed()
		}
		cfg.App.Quit()
	})

	return w
}

// Panel returns the photo panel.
func (w *TableWindow) Panel() *PhotoPanel {
	return w.panel
}

// Window returns the underlying fyne window.
func (w *TableWindow) Window() fyne.Window {
	return w.window
}

// Show displays the window.
func (w *TableWindow) Show() {
	w.window.Show()
}
