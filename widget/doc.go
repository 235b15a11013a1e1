// Package widget provides the concrete widgets used to build scrollsnap
// trees: labels, lists, flex rows and columns, padding, lenses, controller
// hosts, and the Scroll viewport.
package widget
