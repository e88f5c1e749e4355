package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/stackcalc/panel"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value uint8
		err   bool
		mod   bool
		text  string
	}){
		{0x00, false, false, "00000000 - -"},
		{0xff, false, false, "11111111 - -"},
		{0x80, true, false, "10000000 E -"},
		{0x01, false, true, "00000001 - M"},
		{0xa5, true, true, "10100101 E M"},
	}

	for _, entry := range table {
		disp := Encode(entry.value, entry.err, entry.mod)
		assert.Equal(entry.text, disp.String())
		assert.Equal(entry.value, disp.Value())
		assert.Equal(entry.err, disp.Err())
		assert.Equal(entry.mod, disp.Mod())
	}
}

func TestEncode_BitOrder(t *testing.T) {
	assert := assert.New(t)

	disp := Encode(0x80, false, false)
	assert.True(disp[0])
	for n := 1; n < DISPLAY_LINES; n++ {
		assert.False(disp[n], n)
	}

	disp = Encode(0x01, false, false)
	assert.True(disp[7])
}

func TestDisplay_Lines(t *testing.T) {
	assert := assert.New(t)

	disp := Encode(0x41, true, false)

	var lines []panel.Line
	lit := map[panel.Line]bool{}
	for line, value := range disp.Lines() {
		lines = append(lines, line)
		lit[line] = value
	}

	assert.Equal([]panel.Line{
		panel.LINE_BIT_7, panel.LINE_BIT_6, panel.LINE_BIT_5, panel.LINE_BIT_4,
		panel.LINE_BIT_3, panel.LINE_BIT_2, panel.LINE_BIT_1, panel.LINE_BIT_0,
		panel.LINE_ERROR, panel.LINE_MODIFIER,
	}, lines)

	assert.True(lit[panel.LINE_BIT_6])
	assert.True(lit[panel.LINE_BIT_0])
	assert.False(lit[panel.LINE_BIT_7])
	assert.True(lit[panel.LINE_ERROR])
	assert.False(lit[panel.LINE_MODIFIER])
}

func FuzzEncode(f *testing.F) {
	f.Add(uint8(0), false, false)
	f.Add(uint8(0xff), true, true)

	f.Fuzz(func(t *testing.T, value uint8, err bool, mod bool) {
		assert := assert.New(t)

		disp := Encode(value, err, mod)
		assert.Equal(value, disp.Value())
		assert.Equal(err, disp.Err())
		assert.Equal(mod, disp.Mod())

		leds := &panel.Leds{}
		for line, lit := range disp.Lines() {
			leds.SetIndicator(line, lit)
		}
		assert.Equal(value, leds.Value())
	})
}
