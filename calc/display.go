package calc

import (
	"iter"

	"github.com/ezrec/stackcalc/internal"
	"github.com/ezrec/stackcalc/panel"
)

const (
	DISPLAY_LINES = 10 // 8 data bits, error, and modifier.
)

// Display is the state of the display lines, in order: data bit 7 down to
// bit 0, error flag, modifier flag.
type Display [DISPLAY_LINES]bool

// Encode maps a cell value and the flags to the display lines.
func Encode(value uint8, err bool, mod bool) (disp Display) {
	for n := range 8 {
		disp[n] = (value>>(7-n))&1 != 0
	}
	disp[8] = err
	disp[9] = mod

	return
}

// Value returns the byte on the data lines.
func (disp Display) Value() (value uint8) {
	for _, bit := range disp[:8] {
		value <<= 1
		if bit {
			value |= 1
		}
	}
	return
}

func (disp Display) Err() bool {
	return disp[8]
}

func (disp Display) Mod() bool {
	return disp[9]
}

// Lines yields each display line with its state.
func (disp Display) Lines() iter.Seq2[panel.Line, bool] {
	return internal.Concat2(
		internal.Indexed(panel.LINE_BIT_7, disp[:8]...),
		internal.Indexed(panel.LINE_ERROR, disp[8], disp[9]),
	)
}

// String renders the display as "10100101 E M", with '-' for dark flags.
func (disp Display) String() string {
	text := make([]byte, 0, 12)
	for _, bit := range disp[:8] {
		if bit {
			text = append(text, '1')
		} else {
			text = append(text, '0')
		}
	}

	text = append(text, ' ')
	if disp.Err() {
		text = append(text, 'E')
	} else {
		text = append(text, '-')
	}

	text = append(text, ' ')
	if disp.Mod() {
		text = append(text, 'M')
	} else {
		text = append(text, '-')
	}

	return string(text)
}
