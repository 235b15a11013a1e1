package tui

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
)

// Color is a terminal color. Zero value represents the terminal default color.
type Color struct {
	typ   ColorType
	index uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, index: index}
}

// Type returns the color representation.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index. Only meaningful for ColorANSI.
func (c Color) ANSI() uint8 {
	return c.index
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Standard colors (ANSI 0-7) and their bright variants (ANSI 8-15).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	BrightBlack = ANSIColor(8)
	BrightRed   = ANSIColor(9)
	BrightGreen = ANSIColor(10)
	BrightWhite = ANSIColor(15)
)
