package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/internal/debug"
)

const tailHint = "p pause · f follow · x clear · arrows scroll · q quit"

func runTail(args []string) error {
	fs := flag.NewFlagSet("tail", flag.ExitOnError)
	var common commonFlags
	common.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	defer debug.Close()

	path := fs.Arg(0)
	fromStdin := path == "" || path == "-"

	var src io.Reader = os.Stdin
	if !fromStdin {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	root, err := newScreen(cfg, tailHint, false)
	if err != nil {
		return err
	}
	app, err := newTailApp(root, fromStdin, tui.WithFrameRate(cfg.FrameRate))
	if err != nil {
		return err
	}
	defer app.Close()

	lines := make(chan string)
	app.AddWatcher(tui.Watch(lines, func(line string) {
		app.Apply(func(m *model) { *m = m.appendLine(line) })
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return app.Run()
	})
	g.Go(func() error {
		defer close(lines)
		return readLines(ctx, src, !fromStdin, cfg.Tail.PollInterval, lines)
	})
	g.Go(func() error {
		<-ctx.Done()
		app.Stop()
		return nil
	})
	return g.Wait()
}

// newTailApp opens the UI. When the lines come from stdin, keys are read
// from the controlling terminal instead.
func newTailApp(root *screen, fromStdin bool, opts ...tui.AppOption) (*tui.App[model], error) {
	data := model{Follow: true}
	if !fromStdin {
		return tui.NewApp[model](root, data, opts...)
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("opening controlling terminal: %w", err)
	}
	reader, err := tui.NewEventReader(tty)
	if err != nil {
		tty.Close()
		return nil, err
	}
	app, err := tui.NewAppWithIO[model](tui.NewANSITerminal(os.Stdout, tty), reader, root, data, opts...)
	if err != nil {
		reader.Close()
		return nil, err
	}
	return app, nil
}

// readLines sends each line of r to out until r is exhausted or ctx is done.
// With follow set, EOF means no data yet: reading resumes after poll, like
// tail -f.
func readLines(ctx context.Context, r io.Reader, follow bool, poll time.Duration, out chan<- string) error {
	type result struct {
		line string
		err  error
		done bool
	}
	results := make(chan result)

	// The read loop runs on its own goroutine so a blocked Read does not
	// hold up shutdown.
	go func() {
		send := func(res result) bool {
			select {
			case results <- res:
				return true
			case <-ctx.Done():
				return false
			}
		}

		br := bufio.NewReader(r)
		var partial strings.Builder
		for {
			chunk, err := br.ReadString('\n')
			partial.WriteString(chunk)
			if err == nil {
				line := strings.TrimRight(partial.String(), "\r\n")
				partial.Reset()
				if !send(result{line: line}) {
					return
				}
				continue
			}
			if !errors.Is(err, io.EOF) {
				send(result{err: fmt.Errorf("reading input: %w", err), done: true})
				return
			}
			if follow {
				select {
				case <-time.After(poll):
					continue
				case <-ctx.Done():
					return
				}
			}
			if partial.Len() > 0 && !send(result{line: partial.String()}) {
				return
			}
			send(result{done: true})
			return
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case res := <-results:
			if res.done {
				return res.err
			}
			select {
			case out <- res.line:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
