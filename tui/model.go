// Package tui is an interactive terminal front panel for the calculator.
//
// Terminal keys stand in for the push buttons, and the indicator lines are
// drawn as LEDs. The debounce delay is a dead time: keys pressed before it
// expires are dropped, as a held button would be on the hardware.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezrec/stackcalc/calc"
	"github.com/ezrec/stackcalc/config"
	"github.com/ezrec/stackcalc/panel"
)

// keyMap binds terminal keys to the panel buttons.
type keyMap struct {
	Buttons [panel.BUTTON_COUNT]key.Binding
	Quit    key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return append(km.Buttons[:], km.Quit)
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.Buttons[:5],
		append(km.Buttons[5:], km.Quit),
	}
}

// Model is the Bubble Tea model of the front panel.
type Model struct {
	Calc  *calc.Calculator
	Board *panel.Board
	Clock *panel.DeadlineClock

	Dropped int    // Key presses dropped during the debounce dead time.
	Last    string // Last action taken.

	keys keyMap
	help help.Model
}

var _ tea.Model = (*Model)(nil)

// New creates a front panel with the configured keys and debounce delay.
func New(cfg *config.Config) (m *Model, err error) {
	keys, err := cfg.ButtonKeys()
	if err != nil {
		return
	}

	m = &Model{
		Board: &panel.Board{},
		Clock: &panel.DeadlineClock{},
		help:  help.New(),
	}
	m.Board.Clock = m.Clock

	m.Calc = calc.NewCalculator(m.Board)
	m.Calc.DelayMs = cfg.DebounceMs
	m.Calc.Verbose = cfg.Verbose

	for _, button := range panel.Buttons() {
		m.keys.Buttons[button] = key.NewBinding(
			key.WithKeys(keys[button]...),
			key.WithHelp(strings.Join(keys[button], "/"), button.String()),
		)
	}
	m.keys.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)

	m.help.Styles.ShortKey = Styles.Lit
	m.help.Styles.ShortDesc = Styles.Label
	m.help.Styles.ShortSeparator = Styles.Label

	return
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		for n, binding := range m.keys.Buttons {
			if key.Matches(msg, binding) {
				m.press(panel.Button(n))
				break
			}
		}
	}

	return m, nil
}

// press runs one poll with the button held, unless in the dead time.
func (m *Model) press(button panel.Button) {
	if m.Clock.Busy() {
		m.Dropped++
		return
	}

	m.Board.Press(button)
	if _, ok := m.Calc.PollOnce(); !ok {
		m.Board.Release()
	}
	m.Last = button.String()
}

func (m *Model) led(line panel.Line, style lipgloss.Style, label string) string {
	if m.Board.Lit(line) {
		return style.Render("● " + label)
	}
	return Styles.Dark.Render("○ " + label)
}

// View implements tea.Model.
func (m *Model) View() string {
	var bits []string
	for line := panel.LINE_BIT_7; line <= panel.LINE_BIT_0; line++ {
		weight := 1 << (panel.LINE_BIT_0 - line)
		bits = append(bits, m.led(line, Styles.Lit, fmt.Sprintf("%d", weight)))
	}

	flags := []string{
		m.led(panel.LINE_ERROR, Styles.Error, "ERR"),
		m.led(panel.LINE_MODIFIER, Styles.Mod, "MOD"),
		m.led(panel.LINE_LIFE, Styles.Status, "LIFE"),
	}

	value := m.Board.Value()
	status := Styles.Status.Render(fmt.Sprintf("cell %02d/%02d = 0x%02X (%d)",
		m.Calc.Stack.Pointer, calc.STACK_SIZE-1, value, value))
	if m.Last != "" {
		status += Styles.Label.Render("   last: " + m.Last)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("stackcalc"),
		"",
		strings.Join(bits, "  "),
		strings.Join(flags, "  "),
		"",
		status,
	)

	return Styles.Panel.Render(body) + "\n" + m.help.View(m.keys) + "\n"
}
