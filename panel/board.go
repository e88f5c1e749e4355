package panel

// Board is a host side Panel built from a Keypad, a set of Leds and a Clock.
type Board struct {
	Keypad
	Leds
	Clock Clock // Debounce source; no delay if nil.
}

var _ Panel = (*Board)(nil)

// Delay waits out the debounce time, then releases the current chord.
func (bd *Board) Delay(ms uint32) {
	if bd.Clock != nil {
		bd.Clock.Delay(ms)
	}
	bd.Keypad.Release()
}

// Reset releases all buttons and darkens all lines.
func (bd *Board) Reset() {
	bd.Keypad.Reset()
	bd.Leds.Reset()
}
