package simulator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/stackcalc/calc"
	"github.com/ezrec/stackcalc/panel"
)

func TestSimulator(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()

	assert.False(sim.Verbose)
	assert.NotNil(sim.Calculator)
	assert.Equal(0, sim.Pending())
	assert.True(sim.Board.Lit(panel.LINE_LIFE))
}

func TestSimulator_Tick(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()

	done, err := sim.Tick()
	assert.NoError(err)
	assert.True(done)

	sim.Press(panel.BUTTON_INC, panel.BUTTON_INC, panel.BUTTON_NEXT)
	assert.Equal(3, sim.Pending())

	for range 3 {
		done, err = sim.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	done, err = sim.Tick()
	assert.NoError(err)
	assert.True(done)

	assert.Equal(1, sim.Stack.Pointer)
	assert.Equal(uint8(2), sim.Stack.Data[0])
	assert.Equal(3, sim.Clock.Calls)
	assert.Equal(3*calc.BUTTON_DELAY_MS*time.Millisecond, sim.Clock.Elapsed)
}

func TestSimulator_TickIdle(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()
	sim.Board.Press()

	done, err := sim.Tick()
	assert.ErrorIs(err, ErrIdle)
	assert.False(done)
	assert.Equal(0, sim.Pending())
}

func TestSimulator_Reset(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()
	sim.Press(panel.BUTTON_MOD, panel.BUTTON_INC, panel.BUTTON_MOD)
	assert.NoError(sim.Drain(context.Background()))
	assert.True(sim.Modifier)

	sim.Press(panel.BUTTON_INC)
	sim.Reset()

	assert.Equal(0, sim.Pending())
	assert.Equal(0, sim.Clock.Calls)
	assert.False(sim.Modifier)
	assert.Equal(uint8(0), sim.Stack.Current())
	assert.Equal("00000000 - - L", sim.Board.Leds.String())
}

func TestSimulator_Drain(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()

	// 16 * 16 overflows.
	for range 16 {
		sim.Press(panel.BUTTON_INC)
	}
	sim.Press(panel.BUTTON_NEXT)
	for range 16 {
		sim.Press(panel.BUTTON_INC)
	}
	sim.Press(panel.BUTTON_MUL)

	err := sim.Drain(context.Background())
	assert.NoError(err)
	assert.Equal(2, sim.Stack.Pointer)
	assert.Equal(uint8(0xff), sim.Stack.Current())
	assert.True(sim.Error)
	assert.Equal("11111111 E -", sim.Display().String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim.Press(panel.BUTTON_INC)
	err = sim.Drain(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(1, sim.Pending())
}

func TestSimulator_Tape(t *testing.T) {
	assert := assert.New(t)

	tape := strings.Join([]string{
		"# ten",
		"mod inc mod dec",
		"",
		"inc inc inc inc inc inc inc inc inc inc",
		"next inc inc  # plus two",
		"ADD",
	}, "\n")

	sim := NewSimulator()
	out := &bytes.Buffer{}
	err := sim.Tape(context.Background(), strings.NewReader(tape), out)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(lines, 18)
	assert.Equal("mod   00000000 - M", lines[0])
	assert.Equal("inc   11111111 - -", lines[1])
	assert.Equal("mod   11111111 - M", lines[2])
	assert.Equal("dec   00000000 - -", lines[3])
	assert.Equal("inc   00001010 - -", lines[13])
	assert.Equal("add   00001100 - -", lines[17])
	assert.Equal(uint8(12), sim.Stack.Data[2])
}

func TestSimulator_TapeUnknown(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()
	out := &bytes.Buffer{}
	err := sim.Tape(context.Background(), strings.NewReader("inc\ninc div\n"), out)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(2, rt.LineNo)
	assert.ErrorIs(err, panel.ErrButtonUnknown("div"))
	assert.Equal("line 2 button 'div' unknown", err.Error())

	// Presses before the bad name were applied.
	assert.Equal(uint8(2), sim.Stack.Current())
}
