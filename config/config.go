// Package config loads the calculator host settings from a TOML file.
//
//	debounce_ms = 250
//	verbose = false
//
//	[keys]
//	add = ["+", "a"]
//	mod = ["m"]
package config

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/stackcalc/calc"
	"github.com/ezrec/stackcalc/panel"
	"github.com/ezrec/stackcalc/translate"
)

var f = translate.From

var (
	ErrKeyDuplicate = errors.New(f("key bound twice"))
	ErrUndecoded    = errors.New(f("unknown setting"))
)

// Config is the host configuration.
type Config struct {
	DebounceMs uint32              `toml:"debounce_ms"` // Delay after each action.
	Verbose    bool                `toml:"verbose"`     // Verbose logging.
	Keys       map[string][]string `toml:"keys"`        // Button name to terminal keys.
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		DebounceMs: calc.BUTTON_DELAY_MS,
		Keys: map[string][]string{
			panel.BUTTON_MOD.String():   {"m"},
			panel.BUTTON_CLEAR.String(): {"c", "backspace"},
			panel.BUTTON_NEXT.String():  {"right", "l"},
			panel.BUTTON_PREV.String():  {"left", "h"},
			panel.BUTTON_INC.String():   {"up", "k"},
			panel.BUTTON_DEC.String():   {"down", "j"},
			panel.BUTTON_ADD.String():   {"+", "a"},
			panel.BUTTON_SUB.String():   {"-", "s"},
			panel.BUTTON_MUL.String():   {"*", "x"},
		},
	}
}

// Load reads path over the defaults. Buttons missing from the file's
// [keys] table keep their default keys.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	file := &Config{}
	md, err := toml.DecodeFile(path, file)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = errors.Join(ErrUndecoded, errors.New(strings.Join(keys, ", ")))
		return
	}

	if md.IsDefined("debounce_ms") {
		cfg.DebounceMs = file.DebounceMs
	}
	cfg.Verbose = file.Verbose
	maps.Copy(cfg.Keys, file.Keys)

	_, err = cfg.KeyMap()

	return
}

// KeyMap returns the terminal key to button mapping.
func (cfg *Config) KeyMap() (keymap map[string]panel.Button, err error) {
	keymap = map[string]panel.Button{}

	for _, name := range slices.Sorted(maps.Keys(cfg.Keys)) {
		var button panel.Button
		button, err = panel.ParseButton(name)
		if err != nil {
			return
		}
		for _, key := range cfg.Keys[name] {
			if prior, ok := keymap[key]; ok && prior != button {
				err = errors.Join(ErrKeyDuplicate, errors.New(f("'%v' on %v and %v", key, prior, button)))
				return
			}
			keymap[key] = button
		}
	}

	return
}

// ButtonKeys returns the keys bound to each button.
func (cfg *Config) ButtonKeys() (keys map[panel.Button][]string, err error) {
	keymap, err := cfg.KeyMap()
	if err != nil {
		return
	}

	keys = map[panel.Button][]string{}
	for _, button := range panel.Buttons() {
		for _, key := range cfg.Keys[button.String()] {
			if keymap[key] == button {
				keys[button] = append(keys[button], key)
			}
		}
	}

	return
}
