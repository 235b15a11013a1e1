package tui

// Phase identifies which pass of the frame pipeline is running.
type Phase uint8

const (
	// PhaseIdle is outside of any pass.
	PhaseIdle Phase = iota
	PhaseEvent
	PhaseLifecycle
	PhaseUpdate
	PhaseLayout
	PhasePaint
)

func (p Phase) String() string {
	switch p {
	case PhaseEvent:
		return "event"
	case PhaseLifecycle:
		return "lifecycle"
	case PhaseUpdate:
		return "update"
	case PhaseLayout:
		return "layout"
	case PhasePaint:
		return "paint"
	default:
		return "idle"
	}
}
