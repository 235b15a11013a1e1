package tui

// Selector names a payload-free signal. Selectors are compared by identity,
// so two selectors created with the same name are still distinct.
type Selector struct {
	name string
}

// NewSelector creates a new signal identifier. The name is only used for
// debugging.
func NewSelector(name string) *Selector {
	return &Selector{name: name}
}

func (s *Selector) String() string {
	if s == nil {
		return "<nil selector>"
	}
	return s.name
}

// Command is a signal submitted during one phase and delivered to the tree
// as a CommandEvent before the next pass of the same frame.
type Command struct {
	Selector *Selector
}

// NewCommand wraps sel in a Command.
func NewCommand(sel *Selector) Command {
	return Command{Selector: sel}
}

// CommandEvent carries a submitted command through the event phase.
type CommandEvent struct {
	Command Command
}

func (CommandEvent) isEvent() {}

// Is reports whether the event carries sel.
func (e CommandEvent) Is(sel *Selector) bool {
	return e.Command.Selector == sel
}
