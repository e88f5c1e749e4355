package panel

import (
	"github.com/ezrec/stackcalc/translate"
)

var f = translate.From

// ErrButtonUnknown is returned when a button name cannot be parsed.
type ErrButtonUnknown string

func (err ErrButtonUnknown) Error() string {
	return f("button '%v' unknown", string(err))
}
