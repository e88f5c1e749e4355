// Package panel provides the front panel abstraction of the calculator: the
// momentary buttons it samples, the indicator lines it drives, and the clock
// it uses to debounce input. Host implementations live here as well, so the
// calculator core can run without hardware.
package panel

// Button identifies one of the front panel push buttons.
type Button int

//go:generate go tool stringer -linecomment -type=Button
const (
	BUTTON_MOD   = Button(0) // mod
	BUTTON_CLEAR = Button(1) // clear
	BUTTON_NEXT  = Button(2) // next
	BUTTON_PREV  = Button(3) // prev
	BUTTON_INC   = Button(4) // inc
	BUTTON_DEC   = Button(5) // dec
	BUTTON_ADD   = Button(6) // add
	BUTTON_SUB   = Button(7) // sub
	BUTTON_MUL   = Button(8) // mul
)

// BUTTON_COUNT is the number of buttons on the panel.
const BUTTON_COUNT = 9

// Line identifies one of the indicator lines.
type Line int

//go:generate go tool stringer -linecomment -type=Line
const (
	LINE_BIT_7    = Line(0)  // bit7
	LINE_BIT_6    = Line(1)  // bit6
	LINE_BIT_5    = Line(2)  // bit5
	LINE_BIT_4    = Line(3)  // bit4
	LINE_BIT_3    = Line(4)  // bit3
	LINE_BIT_2    = Line(5)  // bit2
	LINE_BIT_1    = Line(6)  // bit1
	LINE_BIT_0    = Line(7)  // bit0
	LINE_ERROR    = Line(8)  // err
	LINE_MODIFIER = Line(9)  // mod
	LINE_LIFE     = Line(10) // life
)

// LINE_COUNT is the number of indicator lines, including the life line.
const LINE_COUNT = 11

// Buttons lists all buttons in sampling priority order.
func Buttons() []Button {
	return []Button{
		BUTTON_MOD,
		BUTTON_CLEAR,
		BUTTON_NEXT,
		BUTTON_PREV,
		BUTTON_INC,
		BUTTON_DEC,
		BUTTON_ADD,
		BUTTON_SUB,
		BUTTON_MUL,
	}
}

// Panel is the capability set the calculator needs from its platform.
type Panel interface {
	// Pressed reports whether the button is currently held down.
	Pressed(button Button) bool
	// SetIndicator drives an indicator line.
	SetIndicator(line Line, value bool)
	// Delay suspends the caller for the given number of milliseconds.
	Delay(ms uint32)
}
