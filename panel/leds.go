package panel

import (
	"strings"
)

// Leds records the state of every indicator line.
type Leds struct {
	State  [LINE_COUNT]bool // Current line state.
	Writes int              // Total line writes.
}

// SetIndicator drives an indicator line.
func (ld *Leds) SetIndicator(line Line, value bool) {
	if line < 0 || int(line) >= LINE_COUNT {
		return
	}

	ld.State[line] = value
	ld.Writes++
}

// Lit reports the state of an indicator line.
func (ld *Leds) Lit(line Line) bool {
	if line < 0 || int(line) >= LINE_COUNT {
		return false
	}

	return ld.State[line]
}

// Value returns the byte shown on the data lines.
func (ld *Leds) Value() (value uint8) {
	for line := LINE_BIT_7; line <= LINE_BIT_0; line++ {
		value <<= 1
		if ld.State[line] {
			value |= 1
		}
	}

	return
}

// String renders the lines as '1'/'0' data bits, then error, modifier and
// life flags as a letter or '-'.
func (ld *Leds) String() string {
	var sb strings.Builder

	for line := LINE_BIT_7; line <= LINE_BIT_0; line++ {
		if ld.State[line] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	flags := []struct {
		line Line
		on   byte
	}{
		{LINE_ERROR, 'E'},
		{LINE_MODIFIER, 'M'},
		{LINE_LIFE, 'L'},
	}
	for _, flag := range flags {
		sb.WriteByte(' ')
		if ld.State[flag.line] {
			sb.WriteByte(flag.on)
		} else {
			sb.WriteByte('-')
		}
	}

	return sb.String()
}

// Reset darkens all lines and zeros the write counter.
func (ld *Leds) Reset() {
	clear(ld.State[:])
	ld.Writes = 0
}
