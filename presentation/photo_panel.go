package presentation

import (
	"fmt"
	"log/slog"

	"photoview/domain/photo"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

const statusLoading = "Loading photos..."

// PhotoPanel is the photo table with a status bar beneath it. It is shared
// by the table window and the Photos tab of the main window.
type PhotoPanel struct {
	table   *PhotoTable
	status  *widget.Label
	content *fyne.Container
	window  fyne.Window
	logger  *slog.Logger
}

// PhotoPanelConfig holds configuration for PhotoPanel.
type PhotoPanelConfig struct {
	// Window is the parent for error dialogs
	Window fyne.Window
	Bridge *UIEventBridge
	Logger *slog.Logger
}

// NewPhotoPanel creates a new photo panel and registers its bridge callbacks.
func NewPhotoPanel(cfg *PhotoPanelConfig) *PhotoPanel {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	p := &PhotoPanel{
		table:  NewPhotoTable(),
		status: widget.NewLabel(statusLoading),
		window: cfg.Window,
		logger: cfg.Logger,
	}
	p.content = container.NewBorder(nil, p.status, nil, nil, p.table)

	if cfg.Bridge != nil {
		cfg.Bridge.SetCallbacks(&UICallbacks{
			OnPhotosLoaded: func(summary photo.Summary) {
				fyne.Do(func() { p.SetStatus(SummaryText(summary)) })
			},
			OnPhotosLoadFailed: func(err error) {
				fyne.Do(func() { p.SetStatus("Photo database unavailable") })
			},
			OnViewerFailed: func(path string, err error) {
				fyne.Do(func() { p.ShowError(err) })
			},
		})
	}

	return p
}

// Table returns the photo table.
func (p *PhotoPanel) Table() *PhotoTable {
	return p.table
}

// Content returns the panel's canvas object.
func (p *PhotoPanel) Content() fyne.CanvasObject {
	return p.content
}

// Status returns the status bar text.
func (p *PhotoPanel) Status() string {
	return p.status.Text
}

// SetStatus replaces the status bar text. Must run on the UI goroutine.
func (p *PhotoPanel) SetStatus(text string) {
	p.status.SetText(text)
}

// ShowError shows err in a dialog over the parent window.
func (p *PhotoPanel) ShowError(err error) {
	if p.window == nil {
		p.logger.Warn("No window for error dialog", "error", err)
		return
	}
	dialog.ShowError(err, p.window)
}

// SummaryText formats a snapshot summary for the status bar.
func SummaryText(s photo.Summary) string {
	if s.Count == 0 {
		return "No photos"
	}

	noun := "photos"
	if s.Count == 1 {
		noun = "photo"
	}
	return fmt.Sprintf("%s %s, %s original, %s compressed, %.1f%% saved",
		humanize.Comma(int64(s.Count)), noun,
		humanBytes(s.OriginalBytes), humanBytes(s.CompressedBytes),
		s.SavedRatio()*100)
}

func humanBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}
