// Package snap keeps a scroll viewport pinned to the end of its content
// while that content grows.
//
// The Decorator wraps a viewport and splits the work across two phases of
// the frame pipeline. Layout measures the viewport's content; when it grew
// along an axis the policy tracks, the decorator posts the grown axes to a
// mailbox and asks for another update pass. The following update reads the
// mailbox, evaluates the policy against the current data, scrolls each grown
// and permitted axis to its end, and empties the mailbox whether or not
// anything scrolled.
// Layout never scrolls.
//
// A second form covers trees where the growing list and the scroll
// container are separate widgets: ListSnap submits the ExtendedAtEnd
// command when the list's height grows, and a Follow controller on the
// enclosing Scroll intercepts it during the event phase.
package snap
