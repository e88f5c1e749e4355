// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package simulator runs the calculator on a host, with a simulated front
// panel fed from queued button presses.
package simulator

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"

	"github.com/ezrec/stackcalc/calc"
	"github.com/ezrec/stackcalc/panel"
	"github.com/ezrec/stackcalc/translate"
)

// Simulator state. Calculator + simulated front panel.
type Simulator struct {
	Verbose          bool // If set, enables verbose logging.
	*calc.Calculator      // Reference to the calculator.

	Board panel.Board     // Simulated front panel.
	Clock panel.FakeClock // Debounce delays requested by the calculator.
}

// NewSimulator creates a new simulator.
func NewSimulator() (sim *Simulator) {
	sim = &Simulator{}

	sim.Board.Clock = &sim.Clock
	sim.Calculator = calc.NewCalculator(&sim.Board)

	return
}

// Reset the simulator, dropping any queued presses.
func (sim *Simulator) Reset() {
	sim.Board.Reset()
	sim.Clock = panel.FakeClock{}

	sim.Calculator.Verbose = sim.Verbose
	sim.Calculator.Reset()
}

// Press queues button presses, one poll each.
func (sim *Simulator) Press(buttons ...panel.Button) {
	for _, button := range buttons {
		sim.Board.Press(button)
	}
}

// Pending returns the number of queued presses.
func (sim *Simulator) Pending() int {
	return sim.Board.Pending()
}

// Tick performs a single poll of the calculator.
// done is set when no presses remain queued.
func (sim *Simulator) Tick() (done bool, err error) {
	sim.Calculator.Verbose = sim.Verbose

	if sim.Board.Pending() == 0 {
		done = true
		return
	}

	_, ok := sim.Calculator.PollOnce()
	if !ok {
		// An empty chord; nothing delays, so release it here.
		sim.Board.Release()
		err = ErrIdle
	}

	return
}

// Drain ticks until all queued presses are consumed.
func (sim *Simulator) Drain(ctx context.Context) (err error) {
	for done := false; !done; {
		if err = ctx.Err(); err != nil {
			return
		}
		done, err = sim.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Tape reads whitespace separated button names from in, one line at a time.
// After each press, the display is written to out.
// Text after a '#' is ignored.
func (sim *Simulator) Tape(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)

	lineno := 0
	for scanner.Scan() {
		lineno++

		line, _, _ := strings.Cut(scanner.Text(), "#")
		for _, name := range strings.Fields(line) {
			var button panel.Button
			button, err = panel.ParseButton(name)
			if err != nil {
				return &ErrRuntime{LineNo: lineno, Err: err}
			}

			sim.Press(button)
			err = sim.Drain(ctx)
			if err != nil {
				return &ErrRuntime{LineNo: lineno, Err: err}
			}

			if sim.Verbose {
				log.Printf("sim: %v\n%v", button, sim.Calculator)
			}

			_, err = translate.Fprintf(out, "%-5v %v\n", button, sim.Display())
			if err != nil {
				return
			}
		}
	}

	err = scanner.Err()

	return
}
