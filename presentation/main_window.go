package presentation

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Tab titles of the main window.
const (
	TabPhotos         = "Photos"
	TabModelSelection = "Model Selection"
	TabExecution      = "Execution"
)

// MainWindow is the tabbed workbench window. Only the Photos tab is
// interactive; the other tabs hold static text.
type MainWindow struct {
	window fyne.Window
	tabs   *container.AppTabs
	panel  *PhotoPanel
	logger *slog.Logger
}

// NewMainWindow creates the tabbed main window. The window quits the app when closed.
func NewMainWindow(cfg *WindowConfig) *MainWindow {
	cfg.setDefaults("Photo Workbench")

	w := &MainWindow{
		window: cfg.App.NewWindow(cfg.Title),
		logger: cfg.Logger,
	}
	w.panel = NewPhotoPanel(&PhotoPanelConfig{
		Window: w.window,
		Bridge: cfg.Bridge,
		Logger: cfg.Logger,
	})

	w.tabs = container.NewAppTabs(
		container.NewTabItem(TabPhotos, w.panel.Content()),
		container.NewTabItem(TabModelSelection, placeholder("Choose the compression model used for new photos.")),
		container.NewTabItem(TabExecution, placeholder("Compression runs will be listed here.")),
	)
	w.tabs.SetTabLocation(container.TabLocationTop)

	w.window.SetContent(w.tabs)
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

func placeholder(text string) fyne.CanvasObject {
	return container.NewCenter(widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
}

// Panel returns the photo panel of the Photos tab.
func (w *MainWindow) Panel() *PhotoPanel {
	return w.panel
}

// Tabs returns the tab container.
func (w *MainWindow) Tabs() *container.AppTabs {
	return w.tabs
}

// Window returns the underlying fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Show displays the window.
func (w *MainWindow) Show() {
	w.window.Show()
}
