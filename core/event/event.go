// Package event defines all events that can be published by the application.
// Events describe what the photo table loader did and are consumed by the
// presentation layer.
package event

import (
	"photoview/core/state"
	"photoview/domain/photo"
)

// Event names, as returned by EventName.
const (
	NameStateChanged      = "StateChanged"
	NamePhotosLoaded      = "PhotosLoaded"
	NamePhotosLoadFailed  = "PhotosLoadFailed"
	NameViewerOpened      = "ViewerOpened"
	NameViewerFailed      = "ViewerFailed"
	NameActivationSkipped = "ActivationSkipped"
)

// Event is the base interface for all events.
type Event interface {
	// EventName returns the name of the event for logging/debugging
	EventName() string
}

// StateChanged is published when the loader changes state.
type StateChanged struct {
	OldState state.LoaderState
	NewState state.LoaderState
}

func NewStateChanged(oldState, newState state.LoaderState) *StateChanged {
	return &StateChanged{OldState: oldState, NewState: newState}
}

func (e *StateChanged) EventName() string {
	return NameStateChanged
}

// PhotosLoaded is published after the snapshot was read.
type PhotosLoaded struct {
	Count   int
	Summary photo.Summary
}

func NewPhotosLoaded(summary photo.Summary) *PhotosLoaded {
	return &PhotosLoaded{Count: summary.Count, Summary: summary}
}

func (e *PhotosLoaded) EventName() string {
	return NamePhotosLoaded
}

// PhotosLoadFailed is published when the database could not be read.
type PhotosLoadFailed struct {
	Error error
}

func NewPhotosLoadFailed(err error) *PhotosLoadFailed {
	return &PhotosLoadFailed{Error: err}
}

func (e *PhotosLoadFailed) EventName() string {
	return NamePhotosLoadFailed
}

// ViewerOpened is published when an image viewer is shown.
type ViewerOpened struct {
	Path string
}

func NewViewerOpened(path string) *ViewerOpened {
	return &ViewerOpened{Path: path}
}

func (e *ViewerOpened) EventName() string {
	return NameViewerOpened
}

// ViewerFailed is published when an existing file could not be displayed.
type ViewerFailed struct {
	Path  string
	Error error
}

func NewViewerFailed(path string, err error) *ViewerFailed {
	return &ViewerFailed{Path: path, Error: err}
}

func (e *ViewerFailed) EventName() string {
	return NameViewerFailed
}

// SkipReason explains why an activation did not open a viewer.
type SkipReason string

const (
	SkipReasonColumn      SkipReason = "column"
	SkipReasonRow         SkipReason = "row"
	SkipReasonMissingFile SkipReason = "missing_file"
	SkipReasonNoData      SkipReason = "no_data"
)

// ActivationSkipped is published when a cell activation is ignored.
type ActivationSkipped struct {
	Row    int
	Col    int
	Reason SkipReason
}

func NewActivationSkipped(row, col int, reason SkipReason) *ActivationSkipped {
	return &ActivationSkipped{Row: row, Col: col, Reason: reason}
}

func (e *ActivationSkipped) EventName() string {
	return NameActivationSkipped
}
