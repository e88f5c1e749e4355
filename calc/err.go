package calc

import (
	"errors"

	"github.com/ezrec/stackcalc/translate"
)

var f = translate.From

var (
	// Arithmetic errors
	ErrRange = errors.New(f("arithmetic range violation"))
)

// ErrArithmetic describes a clamped binary operation.
type ErrArithmetic struct {
	Op     Op
	In1    uint8
	In2    uint8
	Result int // Exact result, before clamping.
}

func (err *ErrArithmetic) Error() string {
	return f("%d %v %d = %d, %v", err.In1, err.Op, err.In2, err.Result, ErrRange)
}

func (err *ErrArithmetic) Unwrap() error {
	return ErrRange
}
