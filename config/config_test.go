package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/stackcalc/calc"
	"github.com/ezrec/stackcalc/panel"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "stackcalc.toml")
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(uint32(calc.BUTTON_DELAY_MS), cfg.DebounceMs)
	assert.False(cfg.Verbose)

	keymap, err := cfg.KeyMap()
	assert.NoError(err)
	assert.Equal(panel.BUTTON_ADD, keymap["+"])
	assert.Equal(panel.BUTTON_NEXT, keymap["right"])
	assert.Equal(panel.BUTTON_MOD, keymap["m"])

	keys, err := cfg.ButtonKeys()
	assert.NoError(err)
	assert.Len(keys, panel.BUTTON_COUNT)
	assert.Equal([]string{"up", "k"}, keys[panel.BUTTON_INC])
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `
debounce_ms = 0
verbose = true

[keys]
add = ["p"]
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(uint32(0), cfg.DebounceMs)
	assert.True(cfg.Verbose)
	assert.Equal([]string{"p"}, cfg.Keys["add"])
	assert.Equal([]string{"-", "s"}, cfg.Keys["sub"])
}

func TestLoad_KeepsDebounce(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(writeConfig(t, "verbose = false\n"))
	assert.NoError(err)
	assert.Equal(uint32(calc.BUTTON_DELAY_MS), cfg.DebounceMs)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		is   error
	}){
		{"undecoded", "colour = 3\n", ErrUndecoded},
		{"duplicate", "[keys]\nadd = [\"j\"]\n", ErrKeyDuplicate},
		{"button", "[keys]\ndiv = [\"/\"]\n", panel.ErrButtonUnknown("div")},
		{"syntax", "debounce_ms = \n", nil},
	}

	for _, entry := range table {
		_, err := Load(writeConfig(t, entry.text))
		assert.Error(err, entry.name)
		if entry.is != nil {
			assert.ErrorIs(err, entry.is, entry.name)
		}
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
