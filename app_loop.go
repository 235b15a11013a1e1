package tui

import (
	"os"
	"os/signal"
	"time"
)

// Run starts the main event loop. Blocks until Stop() is called or SIGINT received.
// Rendering occurs only when the dirty flag is set.
func (a *App[T]) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			a.Stop()
		case <-a.stopCh:
		}
		signal.Stop(sigCh)
	}()

	a.running = true
	for _, w := range a.watchers {
		w.Start(a.eventQueue, a.stopCh)
	}

	go a.readInputEvents()

	a.Render()

	for !a.stopped.Load() {
		frameStart := time.Now()

		// Process events for up to half the frame budget (non-blocking)
		eventDeadline := frameStart.Add(a.cfg.frameDuration / 2)
		for time.Now().Before(eventDeadline) {
			select {
			case handler := <-a.eventQueue:
				handler()
			case <-a.stopCh:
				return nil
			default:
				goto render
			}
		}

	render:
		if a.checkAndClearDirty() {
			a.Render()
		}

		elapsed := time.Since(frameStart)
		if elapsed < a.cfg.frameDuration {
			select {
			case <-time.After(a.cfg.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			}
		}
	}

	return nil
}

// Stop signals the Run loop to exit and stops all watchers.
// Stop is idempotent and safe to call from any goroutine.
func (a *App[T]) Stop() {
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		close(a.stopCh)
	})
}

// Done is closed once Stop has been called.
func (a *App[T]) Done() <-chan struct{} { return a.stopCh }

// QueueUpdate enqueues fn to mutate the data on the main loop.
// Safe to call from any goroutine.
func (a *App[T]) QueueUpdate(fn func(*T)) {
	select {
	case a.eventQueue <- func() { a.Apply(fn) }:
	case <-a.stopCh:
	}
}

// AddWatcher registers w. Watchers start when Run begins, or immediately if
// the loop is already running. Call from the goroutine that owns the App.
func (a *App[T]) AddWatcher(w Watcher) {
	if a.running {
		w.Start(a.eventQueue, a.stopCh)
		return
	}
	a.watchers = append(a.watchers, w)
}
