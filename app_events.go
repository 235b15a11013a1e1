package tui

// Dispatch runs the event phase for ev on the root widget and reports
// whether some widget handled it. Keys go to the global key handler first.
// An unhandled Ctrl+C stops the app.
func (a *App[T]) Dispatch(ev Event) bool {
	defer a.MarkDirty()

	switch e := ev.(type) {
	case ResizeEvent:
		a.st.layoutRequested = true
	case KeyEvent:
		if a.cfg.globalKeyHandler != nil && a.cfg.globalKeyHandler(e) {
			return true
		}
	}

	handled := a.runEvent(ev)
	if key, ok := ev.(KeyEvent); ok && key.Key == KeyCtrlC && !handled {
		a.st.stop = true
	}
	if a.st.stop {
		a.Stop()
	}
	return handled
}

func (a *App[T]) runEvent(ev Event) bool {
	a.st.phase = PhaseEvent
	ctx := &EventCtx{st: &a.st}
	a.root.Event(ctx, ev, &a.data)
	a.st.phase = PhaseIdle
	return ctx.IsHandled()
}

// deliverCommands sends every queued command through the event phase.
// Commands submitted while delivering are kept for the next pass.
func (a *App[T]) deliverCommands() {
	for _, cmd := range a.st.takeCommands() {
		a.runEvent(CommandEvent{Command: cmd})
	}
}

// readInputEvents reads terminal input in a goroutine and queues events.
func (a *App[T]) readInputEvents() {
	for {
		select {
		case <-a.stopCh:
			return
		default:
		}

		event, ok := a.reader.PollEvent(a.cfg.inputLatency)
		if !ok {
			continue
		}

		ev := event
		select {
		case a.eventQueue <- func() { a.Dispatch(ev) }:
		case <-a.stopCh:
			return
		}
	}
}
