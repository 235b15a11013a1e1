package snap

import tui "github.com/grindlemire/scrollsnap"

// mailbox carries the axes that grew during layout to the next update.
type mailbox struct {
	grew tui.Axes
}

// post adds axes to the pending set. Posting an axis twice before take still
// yields a single snap on it.
func (m *mailbox) post(axes tui.Axes) { m.grew |= axes }

// pending reports whether any axis is waiting for a snap.
func (m *mailbox) pending() bool { return m.grew != tui.AxesNone }

// take returns the pending axes and empties the mailbox.
func (m *mailbox) take() tui.Axes {
	axes := m.grew
	m.grew = tui.AxesNone
	return axes
}
