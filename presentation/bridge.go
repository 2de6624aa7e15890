// Package presentation provides the fyne UI layer with event bridging to the application layer.
package presentation

import (
	"log/slog"
	"sync"

	"photoview/core/event"
	"photoview/core/eventbus"
	"photoview/core/state"
	"photoview/domain/photo"
)

// UIEventBridge routes loader events from the event bus to UI callbacks.
// Callbacks run on the bus goroutine; UI code must hop through fyne.Do.
type UIEventBridge struct {
	eventBus eventbus.EventBus
	logger   *slog.Logger

	// UI callbacks - set by UI components
	callbacks   *UICallbacks
	callbacksMu sync.RWMutex

	subscriptionID string
}

// UICallbacks contains callbacks for UI updates.
type UICallbacks struct {
	OnStateChanged      func(oldState, newState state.LoaderState)
	OnPhotosLoaded      func(summary photo.Summary)
	OnPhotosLoadFailed  func(err error)
	OnViewerOpened      func(path string)
	OnViewerFailed      func(path string, err error)
	OnActivationSkipped func(row, col int, reason event.SkipReason)
}

// BridgeConfig holds configuration for UIEventBridge.
type BridgeConfig struct {
	EventBus eventbus.EventBus
	Logger   *slog.Logger
}

// NewUIEventBridge creates a new UI event bridge.
func NewUIEventBridge(cfg *BridgeConfig) *UIEventBridge {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &UIEventBridge{
		eventBus:  cfg.EventBus,
		logger:    cfg.Logger,
		callbacks: &UICallbacks{},
	}

	if b.eventBus != nil {
		b.subscriptionID = b.eventBus.Subscribe(b.handleEvent)
	}

	return b
}

// SetCallbacks sets the UI callbacks.
func (b *UIEventBridge) SetCallbacks(callbacks *UICallbacks) {
	b.callbacksMu.Lock()
	defer b.callbacksMu.Unlock()
	b.callbacks = callbacks
}

// Close unsubscribes from the event bus.
func (b *UIEventBridge) Close() {
	if b.eventBus != nil && b.subscriptionID != "" {
		b.eventBus.Unsubscribe(b.subscriptionID)
		b.subscriptionID = ""
	}
}

func (b *UIEventBridge) handleEvent(e event.Event) {
	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks == nil {
		return
	}

	switch evt := e.(type) {
	case *event.StateChanged:
		if callbacks.OnStateChanged != nil {
			callbacks.OnStateChanged(evt.OldState, evt.NewState)
		}

	case *event.PhotosLoaded:
		if callbacks.OnPhotosLoaded != nil {
			callbacks.OnPhotosLoaded(evt.Summary)
		}

	case *event.PhotosLoadFailed:
		if callbacks.OnPhotosLoadFailed != nil {
			callbacks.OnPhotosLoadFailed(evt.Error)
		}

	case *event.ViewerOpened:
		if callbacks.OnViewerOpened != nil {
			callbacks.OnViewerOpened(evt.Path)
		}

	case *event.ViewerFailed:
		if callbacks.OnViewerFailed != nil {
			callbacks.OnViewerFailed(evt.Path, evt.Error)
		}

	case *event.ActivationSkipped:
		if callbacks.OnActivationSkipped != nil {
			callbacks.OnActivationSkipped(evt.Row, evt.Col, evt.Reason)
		}

	default:
		b.logger.Debug("Unhandled UI event", "event", e.EventName())
	}
}
