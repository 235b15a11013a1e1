package main

import (
	"flag"
	"time"

	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/internal/debug"
)

const demoHint = "a/enter add · p pause · f follow · x clear · q quit"

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	every := fs.Duration("every", 0, "Append a word on this interval (0 disables)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	defer debug.Close()

	root, err := newScreen(cfg, demoHint, true)
	if err != nil {
		return err
	}

	app, err := tui.NewApp[model](root, model{Follow: true}, tui.WithFrameRate(cfg.FrameRate))
	if err != nil {
		return err
	}
	defer app.Close()

	if *every > 0 {
		app.AddWatcher(autoAppend(app, *every))
	}
	return app.Run()
}

// autoAppend adds the next word every interval.
func autoAppend(app *tui.App[model], every time.Duration) tui.Watcher {
	return tui.OnTimer(every, func() {
		app.Apply(func(m *model) { *m = m.addWord() })
	})
}
