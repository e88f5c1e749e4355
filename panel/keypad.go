package panel

// Keypad is a host side button source.
//
// Buttons may be held down indefinitely with Hold, or pressed momentarily
// with Press. Momentary presses are queued; the chord at the head of the
// queue reads as pressed until Release is called, which a Board does from
// its debounce Delay.
type Keypad struct {
	held  [BUTTON_COUNT]bool
	queue [][]Button
}

// Press queues a chord of buttons pressed together.
func (kp *Keypad) Press(chord ...Button) {
	kp.queue = append(kp.queue, chord)
}

// Hold sets the held state of a button.
func (kp *Keypad) Hold(button Button, down bool) {
	kp.held[button] = down
}

// Pressed reports whether the button is held, or part of the current chord.
func (kp *Keypad) Pressed(button Button) bool {
	if button < 0 || int(button) >= BUTTON_COUNT {
		return false
	}

	if kp.held[button] {
		return true
	}

	if len(kp.queue) == 0 {
		return false
	}

	for _, b := range kp.queue[0] {
		if b == button {
			return true
		}
	}

	return false
}

// Release lets go of the current chord.
func (kp *Keypad) Release() {
	if len(kp.queue) > 0 {
		kp.queue = kp.queue[1:]
	}
}

// Pending returns the number of queued chords.
func (kp *Keypad) Pending() int {
	return len(kp.queue)
}

// Reset releases all buttons and drops queued chords.
func (kp *Keypad) Reset() {
	clear(kp.held[:])
	kp.queue = nil
}
