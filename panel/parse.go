package panel

import (
	"strings"
)

// ParseButton returns the button with the given name, ignoring case.
func ParseButton(name string) (Button, error) {
	for _, button := range Buttons() {
		if strings.EqualFold(button.String(), name) {
			return button, nil
		}
	}

	return 0, ErrButtonUnknown(name)
}
