package application

import "photoview/core/grid"

// TableView is the table widget the loader renders into.
type TableView interface {
	// SetGrid replaces the displayed grid.
	SetGrid(g *grid.Grid)

	// SetOnCellActivated registers the handler for user cell activations.
	SetOnCellActivated(fn func(row, col int))
}

// Viewer is an open image viewer surface.
type Viewer interface {
	Close()
}

// ImageOpener decodes an image file and shows it in a new viewer.
type ImageOpener interface {
	OpenImage(path string) (Viewer, error)
}

// FileChecker reports whether a filesystem entry exists.
type FileChecker interface {
	Exists(path string) bool
}
