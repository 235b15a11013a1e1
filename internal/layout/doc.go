// Package layout holds the geometry shared by the widget host and its widgets.
//
// Sizes and offsets are measured in terminal cells. A widget receives
// [Constraints] from its parent during layout and answers with a [Size];
// parents then position children with a [Point] origin. Types are re-exported
// through the root tui package for public consumption.
package layout
