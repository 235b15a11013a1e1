package tui

import (
	"fmt"
	"os"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

// InputLatencyBlocking is a special value for WithInputLatency that makes
// the event reader block until input is available.
const InputLatencyBlocking = -1 * time.Millisecond

// App drives a widget tree over data of type T. It owns the terminal, the
// event loop and the frame pipeline.
//
// Data is compared against the value seen by the previous update pass, so it
// must be treated as a value: replace slices and maps instead of writing
// into their elements.
type App[T any] struct {
	terminal Terminal
	buffer   *Buffer
	reader   EventReader

	root     *WidgetPod[T]
	data     T
	lastData T // data as seen by the most recent update pass
	same     func(a, b T) bool

	st         frameState
	started    bool
	lastSize   Size
	lastPasses int
	dirty      atomic.Bool

	eventQueue chan func()
	stopCh     chan struct{}
	stopped    atomic.Bool
	stopOnce   sync.Once
	watchers   []Watcher
	running    bool

	cfg appConfig
}

// NewApp creates an App on the process terminal. The terminal is put into
// raw mode and the alternate screen until Close is called.
func NewApp[T any](root Widget[T], data T, opts ...AppOption) (*App[T], error) {
	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		return nil, err
	}
	app, err := NewAppWithIO(NewANSITerminal(os.Stdout, os.Stdin), reader, root, data, opts...)
	if err != nil {
		reader.Close()
		return nil, err
	}
	return app, nil
}

// NewAppWithIO creates an App on an explicit terminal and event reader.
// Tests pass a MockTerminal and MockEventReader.
func NewAppWithIO[T any](terminal Terminal, reader EventReader, root Widget[T], data T, opts ...AppOption) (*App[T], error) {
	if root == nil {
		return nil, fmt.Errorf("root widget is required")
	}

	cfg := defaultAppConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := terminal.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	terminal.EnterAltScreen()
	if cfg.mouseEnabled {
		terminal.EnableMouse()
	}
	terminal.HideCursor()

	width, height := terminal.Size()
	app := &App[T]{
		terminal:   terminal,
		buffer:     NewBuffer(width, height),
		reader:     reader,
		root:       NewWidgetPod(root),
		data:       data,
		lastData:   data,
		same:       sameFunc[T](),
		eventQueue: make(chan func(), cfg.eventQueueSize),
		stopCh:     make(chan struct{}),
		cfg:        cfg,
	}
	app.MarkDirty()
	return app, nil
}

// sameFunc picks the change detector for T: its own Same method when it has
// one, reflect.DeepEqual otherwise.
func sameFunc[T any]() func(a, b T) bool {
	var zero T
	if _, ok := any(zero).(interface{ Same(T) bool }); ok {
		return func(a, b T) bool {
			return any(a).(interface{ Same(T) bool }).Same(b)
		}
	}
	return func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	}
}

// Close restores the terminal and releases the reader.
func (a *App[T]) Close() error {
	a.Stop()
	a.terminal.ShowCursor()
	if a.cfg.mouseEnabled {
		a.terminal.DisableMouse()
	}
	a.terminal.ExitAltScreen()
	err := a.terminal.ExitRawMode()
	if a.reader != nil {
		if cerr := a.reader.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Data returns the current application data.
func (a *App[T]) Data() T { return a.data }

// Apply mutates the data in place and schedules a render. It must run on the
// loop goroutine: from a watcher handler, a QueueUpdate function, or a test.
func (a *App[T]) Apply(fn func(*T)) {
	fn(&a.data)
	a.MarkDirty()
}

// Root returns the root widget.
func (a *App[T]) Root() Widget[T] { return a.root.Widget() }

// Buffer returns the buffer painted by the last Render.
func (a *App[T]) Buffer() *Buffer { return a.buffer }

// Passes returns how many pipeline passes the last Render needed to settle.
func (a *App[T]) Passes() int { return a.lastPasses }

// MarkDirty marks the app as needing a render.
func (a *App[T]) MarkDirty() { a.dirty.Store(true) }

func (a *App[T]) checkAndClearDirty() bool { return a.dirty.Swap(false) }
