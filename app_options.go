package tui

import (
	"fmt"
	"time"
)

// appConfig holds the settings AppOptions act on. It is separate from App so
// options stay non-generic.
type appConfig struct {
	inputLatency     time.Duration
	frameDuration    time.Duration
	eventQueueSize   int
	maxPasses        int
	mouseEnabled     bool
	globalKeyHandler func(KeyEvent) bool
}

func defaultAppConfig() appConfig {
	return appConfig{
		inputLatency:   50 * time.Millisecond,
		frameDuration:  16 * time.Millisecond,
		eventQueueSize: 256,
		maxPasses:      8,
		mouseEnabled:   true,
	}
}

// AppOption is a functional option for configuring an App.
type AppOption func(*appConfig) error

// WithInputLatency sets the polling timeout for the event reader.
// Default is 50ms. Use InputLatencyBlocking (-1) for blocking mode.
// A value of 0 is not allowed and will return an error.
func WithInputLatency(d time.Duration) AppOption {
	return func(c *appConfig) error {
		if d == 0 {
			return fmt.Errorf("input latency of 0 (busy polling) is not allowed; use a positive duration or InputLatencyBlocking")
		}
		c.inputLatency = d
		return nil
	}
}

// WithFrameRate sets the target frame rate for the render loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(c *appConfig) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		c.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(c *appConfig) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		c.eventQueueSize = size
		return nil
	}
}

// WithMaxPasses caps how many pipeline passes one frame may run before it
// paints anyway. Default is 8. A frame that reacts to its own layout needs
// at least 2.
func WithMaxPasses(n int) AppOption {
	return func(c *appConfig) error {
		if n < 2 {
			return fmt.Errorf("max passes must be at least 2")
		}
		c.maxPasses = n
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that runs before the widget tree sees
// a key. If the handler returns true, the event is consumed.
func WithGlobalKeyHandler(fn func(KeyEvent) bool) AppOption {
	return func(c *appConfig) error {
		c.globalKeyHandler = fn
		return nil
	}
}

// WithMouse enables mouse event reporting. This is the default.
func WithMouse() AppOption {
	return func(c *appConfig) error {
		c.mouseEnabled = true
		return nil
	}
}

// WithoutMouse disables mouse event reporting.
func WithoutMouse() AppOption {
	return func(c *appConfig) error {
		c.mouseEnabled = false
		return nil
	}
}
