//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd         int
	buf        []byte
	partialBuf []byte
	pending    []Event
	sigCh      chan os.Signal
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

// PollEvent reads the next event with a timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if len(r.pending) > 0 {
		return r.pop(), true
	}

	select {
	case <-r.sigCh:
		w, h := terminalSize(r.fd)
		return ResizeEvent{Width: w, Height: h}, true
	default:
	}

	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil || !ready {
		return nil, false
	}

	n, err := unix.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	data := r.buf[:n]
	if len(r.partialBuf) > 0 {
		data = append(r.partialBuf, data...)
		r.partialBuf = nil
	}

	events, remaining := parseInputWithRemainder(data)
	if len(remaining) > 0 {
		r.partialBuf = append([]byte(nil), remaining...)
	}
	r.pending = events
	if len(r.pending) == 0 {
		return nil, false
	}
	return r.pop(), true
}

func (r *stdinReader) pop() Event {
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev
}

// Close releases resources.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	return nil
}

// terminalSize returns the window size of fd, falling back to 80x24.
func terminalSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading and (false, nil) on
// timeout or EINTR.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
