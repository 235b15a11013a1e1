// Package tui is a small retained-mode terminal widget host.
//
// A tree of [Widget] values is driven through five phases per frame, always in
// the same order and always on the App's loop goroutine: event, lifecycle,
// update, layout and paint. Only the event phase may mutate application data;
// layout is a pure sizing negotiation. Widgets that detect something during
// layout and need to act on it ask for another update pass with
// [LayoutCtx.RequestUpdate] or broadcast a payload-free [Selector] with
// [LayoutCtx.Submit].
package tui
