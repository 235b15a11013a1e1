package tui

// LifecycleEvent is delivered during the lifecycle pass.
type LifecycleEvent interface {
	isLifecycle()
}

// LifecycleWidgetAdded is delivered once to each widget the first time its
// pod takes part in a lifecycle pass.
type LifecycleWidgetAdded struct{}

// LifecycleChildrenChanged routes through widgets that were already added so
// their new descendants can receive LifecycleWidgetAdded. Leaf widgets ignore it.
type LifecycleChildrenChanged struct{}

func (LifecycleWidgetAdded) isLifecycle()     {}
func (LifecycleChildrenChanged) isLifecycle() {}
