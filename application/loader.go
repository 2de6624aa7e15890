// Package application wires the photo snapshot to the table view and the
// image viewer.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"photoview/core/event"
	"photoview/core/eventbus"
	"photoview/core/grid"
	"photoview/core/state"
	"photoview/domain/photo"
)

// PhotoTableLoader populates a TableView from the photo database and opens
// the image behind an activated row.
type PhotoTableLoader struct {
	service  *photo.Service
	view     TableView
	opener   ImageOpener
	files    FileChecker
	eventBus eventbus.EventBus
	logger   *slog.Logger

	mu      sync.Mutex
	state   state.LoaderState
	loading bool
	grid    *grid.Grid
	viewer  Viewer
}

// LoaderConfig holds configuration for the PhotoTableLoader.
type LoaderConfig struct {
	Service  *photo.Service
	View     TableView
	Opener   ImageOpener
	Files    FileChecker
	EventBus eventbus.EventBus // optional
	Logger   *slog.Logger
}

// NewPhotoTableLoader creates a new loader in the Uninitialized state.
func NewPhotoTableLoader(cfg *LoaderConfig) *PhotoTableLoader {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &PhotoTableLoader{
		service:  cfg.Service,
		view:     cfg.View,
		opener:   cfg.Opener,
		files:    cfg.Files,
		eventBus: cfg.EventBus,
		logger:   cfg.Logger,
		state:    state.StateUninitialized,
		grid:     grid.Empty(),
	}
}

// Load reads the photo snapshot once and renders it. A database failure is
// logged and leaves the table empty; it never propagates to the caller.
// The activation handler is registered in both cases.
func (l *PhotoTableLoader) Load(ctx context.Context) {
	l.mu.Lock()
	if l.loading || l.state != state.StateUninitialized {
		l.mu.Unlock()
		l.logger.Warn("Photo table already loaded, ignoring reload", "state", l.State())
		return
	}
	l.loading = true
	l.mu.Unlock()

	photos, err := l.service.ListPhotos(ctx)

	var (
		g    *grid.Grid
		next state.LoaderState
		evt  event.Event
	)
	if err != nil {
		l.logger.Error("Failed to load photos", "error", err)
		g = grid.Empty()
		next = state.StateEmpty
		evt = event.NewPhotosLoadFailed(err)
	} else {
		g = grid.FromPhotos(photos)
		next = state.StateLoaded
		evt = event.NewPhotosLoaded(photo.Summarize(photos))
	}

	l.mu.Lock()
	l.grid = g
	l.loading = false
	l.transitionLocked(next)
	l.mu.Unlock()

	if l.view != nil {
		l.view.SetGrid(g)
		l.view.SetOnCellActivated(l.OnCellActivated)
	}
	l.publish(evt)
}

// OnCellActivated handles a user activation of cell (row, col). Only the ID
// column opens a viewer; the path comes from the row's original_path.
func (l *PhotoTableLoader) OnCellActivated(row, col int) {
	if col != grid.ColID {
		l.skip(row, col, event.SkipReasonColumn)
		return
	}

	l.mu.Lock()
	st, g := l.state, l.grid
	l.mu.Unlock()

	if !st.CanActivate() {
		l.skip(row, col, event.SkipReasonNoData)
		return
	}

	rec := g.Record(row)
	if rec == nil {
		l.skip(row, col, event.SkipReasonRow)
		return
	}

	path := rec.OriginalPath
	if l.files == nil || !l.files.Exists(path) {
		l.logger.Debug("Activation skipped", "row", row, "error", fmt.Errorf("%w: %q", photo.ErrMissingFile, path))
		l.skip(row, col, event.SkipReasonMissingFile)
		return
	}

	_ = l.DisplayImage(path)
}

// DisplayImage closes the current viewer, if any, and opens a new one for
// path. At most one viewer is retained. A decode failure is logged,
// published as ViewerFailed and returned.
func (l *PhotoTableLoader) DisplayImage(path string) error {
	l.mu.Lock()
	if !l.state.CanTransitionTo(state.StateViewerOpen) {
		err := state.NewTransitionError(l.state, state.StateViewerOpen, "no photo snapshot loaded")
		l.mu.Unlock()
		return err
	}
	prev := l.viewer
	l.viewer = nil
	l.transitionLocked(state.StateViewerOpen)
	l.mu.Unlock()

	// Close outside the lock: viewers may call back on close
	if prev != nil {
		prev.Close()
	}

	var (
		v   Viewer
		err error
	)
	if l.opener == nil {
		err = fmt.Errorf("no image opener configured")
	} else {
		v, err = l.opener.OpenImage(path)
	}

	l.mu.Lock()
	if err == nil {
		l.viewer = v
	}
	l.transitionLocked(state.StateLoaded)
	l.mu.Unlock()

	if err != nil {
		l.logger.Error("Failed to display image", "path", path, "error", err)
		l.publish(event.NewViewerFailed(path, err))
		return err
	}

	l.logger.Info("Image viewer opened", "path", path)
	l.publish(event.NewViewerOpened(path))
	return nil
}

// Close closes the retained viewer, if any.
func (l *PhotoTableLoader) Close() {
	l.mu.Lock()
	v := l.viewer
	l.viewer = nil
	l.mu.Unlock()

	if v != nil {
		v.Close()
	}
}

// State returns the current loader state.
func (l *PhotoTableLoader) State() state.LoaderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Grid returns the current grid snapshot.
func (l *PhotoTableLoader) Grid() *grid.Grid {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid
}

// Viewer returns the retained viewer, or nil.
func (l *PhotoTableLoader) Viewer() Viewer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewer
}

// transitionLocked moves to next. l.mu must be held.
func (l *PhotoTableLoader) transitionLocked(next state.LoaderState) {
	prev := l.state
	if !prev.CanTransitionTo(next) {
		l.logger.Warn("Rejected loader state change", "error", state.NewTransitionError(prev, next, ""))
		return
	}
	l.state = next
	l.logger.Debug("Loader state changed", "from", prev, "to", next)
	l.publish(event.NewStateChanged(prev, next))
}

func (l *PhotoTableLoader) skip(row, col int, reason event.SkipReason) {
	l.publish(event.NewActivationSkipped(row, col, reason))
}

func (l *PhotoTableLoader) publish(e event.Event) {
	if l.eventBus != nil {
		l.eventBus.Publish(e)
	}
}
