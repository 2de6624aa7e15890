package presentation

import (
	"image"
	"log/slog"
	"sync"

	"photoview/application"
	"photoview/infrastructure/imagefile"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

var (
	_ application.ImageOpener = (*ViewerFactory)(nil)
	_ application.Viewer      = (*ImageViewer)(nil)
)

// ImageViewer is a popup window showing one decoded image stretched to fill.
type ImageViewer struct {
	window fyne.Window
	image  *canvas.Image
	path   string

	mu     sync.Mutex
	closed bool
}

// NewImageViewer creates a viewer window for img. The window is not shown.
func NewImageViewer(app fyne.App, title string, size fyne.Size, path string, img image.Image) *ImageViewer {
	v := &ImageViewer{
		window: app.NewWindow(title),
		image:  canvas.NewImageFromImage(img),
		path:   path,
	}

	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth

	v.window.SetContent(v.image)
	v.window.Resize(size)
	v.window.SetOnClosed(func() {
		v.mu.Lock()
		v.closed = true
		v.mu.Unlock()
	})

	return v
}

// Show displays the viewer window.
func (v *ImageViewer) Show() {
	v.window.Show()
}

// Close closes the viewer window. Safe to call more than once.
func (v *ImageViewer) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()

	v.window.Close()
}

// Closed reports whether the window has been closed by the user or Close.
func (v *ImageViewer) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// Path returns the file shown by the viewer.
func (v *ImageViewer) Path() string {
	return v.path
}

// Image returns the displayed image.
func (v *ImageViewer) Image() image.Image {
	return v.image.Image
}

// ViewerFactory decodes image files and opens an ImageViewer for each.
type ViewerFactory struct {
	app    fyne.App
	title  string
	size   fyne.Size
	logger *slog.Logger
}

// ViewerFactoryConfig holds configuration for ViewerFactory.
type ViewerFactoryConfig struct {
	App    fyne.App
	Title  string
	Size   fyne.Size
	Logger *slog.Logger
}

// NewViewerFactory creates a new viewer factory.
func NewViewerFactory(cfg *ViewerFactoryConfig) *ViewerFactory {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Title == "" {
		cfg.Title = "Image Viewer"
	}
	if cfg.Size.Width <= 0 || cfg.Size.Height <= 0 {
		cfg.Size = fyne.NewSize(600, 400)
	}

	return &ViewerFactory{
		app:    cfg.App,
		title:  cfg.Title,
		size:   cfg.Size,
		logger: cfg.Logger,
	}
}

// OpenImage decodes the file at path and shows it in a new viewer window.
func (f *ViewerFactory) OpenImage(path string) (application.Viewer, error) {
	img, format, err := imagefile.Decode(path)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Image decoded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	v := NewImageViewer(f.app, f.title, f.size, path, img)
	v.Show()
	return v, nil
}
