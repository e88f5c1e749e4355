// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package calc

import (
	"context"
	"fmt"
	"log"

	"github.com/ezrec/stackcalc/panel"
)

const (
	BUTTON_DELAY_MS = 250 // Default debounce delay after an action.
)

// Calculator is the stack machine, wired to its front panel.
type Calculator struct {
	Verbose bool // Set to enable verbose logging.

	Panel   panel.Panel // Front panel buttons, lines and clock.
	DelayMs uint32      // Debounce delay after an action.

	Stack    Stack // Cell stack.
	Modifier bool  // Modifier key latched.
	Error    bool  // Arithmetic range violation latched.
	Fault    error // Most recent range violation, if any.

	Actions int // Actions performed since reset.

	life bool // Life line state.
}

// NewCalculator creates a calculator driving the given panel.
func NewCalculator(p panel.Panel) (calc *Calculator) {
	calc = &Calculator{
		Panel:   p,
		DelayMs: BUTTON_DELAY_MS,
	}

	calc.Reset()

	return
}

// Reset the calculator to its power on state, and refresh the display.
func (calc *Calculator) Reset() {
	if calc.Verbose {
		log.Printf("calc: reset")
	}

	calc.Stack.Reset()
	calc.Modifier = false
	calc.Error = false
	calc.Fault = nil
	calc.Actions = 0

	calc.life = true
	calc.Panel.SetIndicator(panel.LINE_LIFE, calc.life)

	calc.refresh()
}

// ClearError drops the latched error flag. No button does this.
func (calc *Calculator) ClearError() {
	calc.Error = false
	calc.Fault = nil
	calc.refresh()
}

// Display returns the current display line state.
func (calc *Calculator) Display() Display {
	return Encode(calc.Stack.Current(), calc.Error, calc.Modifier)
}

// String returns the calculator state as a string.
func (calc *Calculator) String() (text string) {
	text += fmt.Sprintf("% 5s: %02d\n", "ptr", calc.Stack.Pointer)
	text += fmt.Sprintf("% 5s: 0x%02X\n", "cell", calc.Stack.Current())
	text += fmt.Sprintf("% 5s: %v\n", "mod", calc.Modifier)
	text += fmt.Sprintf("% 5s: %v\n", "err", calc.Error)
	text += fmt.Sprintf("% 5s:", "stack")
	for n, cell := range calc.Stack.Data {
		if n > 0 && n%16 == 0 {
			text += "\n      "
		}
		text += fmt.Sprintf(" %02X", cell)
	}
	text += "\n"

	return
}

// refresh writes the display lines.
func (calc *Calculator) refresh() {
	for line, value := range calc.Display().Lines() {
		calc.Panel.SetIndicator(line, value)
	}
}

// Run polls the panel until the context is cancelled.
func (calc *Calculator) Run(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		calc.PollOnce()
	}
}

// PollOnce samples the buttons in priority order, and performs the action
// of the first one pressed. The display is refreshed whether or not an
// action was taken. After an action, the panel is given the debounce delay.
func (calc *Calculator) PollOnce() (button panel.Button, ok bool) {
	for _, b := range panel.Buttons() {
		if calc.Panel.Pressed(b) {
			button, ok = b, true
			break
		}
	}

	if ok {
		calc.life = !calc.life
		calc.Panel.SetIndicator(panel.LINE_LIFE, calc.life)

		err := calc.Execute(button)
		if err != nil && calc.Verbose {
			log.Printf("calc: %v: %v", button, err)
		}
		calc.Actions++
	}

	calc.refresh()

	if ok {
		calc.Panel.Delay(calc.DelayMs)
	}

	return
}

// Execute performs the action of a single button.
// Only binary operations return an error, which is always ErrArithmetic.
func (calc *Calculator) Execute(button panel.Button) (err error) {
	s := &calc.Stack

	if calc.Verbose {
		log.Printf("calc: %02d: %v (mod %v)", s.Pointer, button, calc.Modifier)
	}

	switch button {
	case panel.BUTTON_MOD:
		calc.Modifier = !calc.Modifier
	case panel.BUTTON_CLEAR:
		if calc.consume() {
			s.ClearAll()
		} else {
			s.SetCurrent(0x00)
		}
	case panel.BUTTON_NEXT:
		if calc.consume() {
			s.JumpToFirst()
		} else {
			s.Advance()
		}
	case panel.BUTTON_PREV:
		if calc.consume() {
			s.JumpToLast()
		} else {
			s.Retreat()
		}
	case panel.BUTTON_INC:
		if calc.consume() {
			s.SetCurrent(0xff)
		} else {
			s.SetCurrent(s.Current() + 1)
		}
	case panel.BUTTON_DEC:
		if calc.consume() {
			s.SetCurrent(0x00)
		} else {
			s.SetCurrent(s.Current() - 1)
		}
	case panel.BUTTON_ADD:
		err = calc.binary(OP_ADD)
	case panel.BUTTON_SUB:
		err = calc.binary(OP_SUB)
	case panel.BUTTON_MUL:
		err = calc.binary(OP_MUL)
	default:
		panic("unknown button")
	}

	return
}

// consume reports, and clears, the modifier.
func (calc *Calculator) consume() (mod bool) {
	mod = calc.Modifier
	calc.Modifier = false
	return
}

// binary combines the two cells behind the pointer into the cell after them,
// leaving the pointer on the result.
//   - Step back, read the first input.
//   - Step forward, read the second input.
//   - Step forward, store the result.
//
// A result outside of a byte is clamped, and latches the error flag.
// The error flag is never cleared here.
func (calc *Calculator) binary(op Op) (err error) {
	s := &calc.Stack

	s.Retreat()
	in1 := s.Current()
	s.Advance()
	in2 := s.Current()
	s.Advance()

	result, clamp := op.apply(int(in1), int(in2))
	if result < 0x00 || result > 0xff {
		calc.Error = true
		s.SetCurrent(clamp)
		err = &ErrArithmetic{Op: op, In1: in1, In2: in2, Result: result}
		calc.Fault = err
		return
	}

	s.SetCurrent(uint8(result))

	return
}
