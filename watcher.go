package tui

import (
	"time"

	"github.com/grindlemire/scrollsnap/internal/debug"
)

// Watcher is a background event source whose handler runs on the App's loop.
type Watcher interface {
	// Start begins the watcher goroutine. The eventQueue channel and stopCh
	// are provided by the App.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[V any] struct {
	ch      <-chan V
	handler func(V)
}

// Watch creates a channel watcher. The handler is called on the main loop
// whenever a value arrives on ch. The watcher exits when ch is closed.
//
//	lines := make(chan string)
//	app.AddWatcher(tui.Watch(lines, func(s string) {
//	    app.Apply(func(d *Data) { d.Lines = append(d.Lines, s) })
//	}))
func Watch[V any](ch <-chan V, handler func(V)) *ChannelWatcher[V] {
	return &ChannelWatcher[V]{ch: ch, handler: handler}
}

// Start the watcher.
func (w *ChannelWatcher[V]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return
				}
				v := val
				select {
				case eventQueue <- func() {
					w.handler(v)
				}:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a watcher that calls handler on the main loop every interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

// Start the watcher.
func (w *timerWatcher) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		debug.Log("timerWatcher started interval=%s", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case eventQueue <- w.handler:
				case <-stopCh:
					return
				}
			}
		}
	}()
}
