package simulator

import (
	"errors"

	"github.com/ezrec/stackcalc/translate"
)

var f = translate.From

var (
	ErrIdle = errors.New(f("poll found no button pressed"))
)

// ErrRuntime indicates the tape line of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
