// Package script drives a simulated calculator from a Starlark program.
//
// The program sees these builtins:
//
//	press(name, count=1)  press a button, count times
//	cell()                value of the current cell
//	pointer()             index of the current cell
//	error()               error flag
//	modifier()            modifier flag
//	display()             display text, as "10100101 E M"
//	clear_error()         drop the error flag
//	reset()               power cycle the calculator
package script

import (
	"context"
	"fmt"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/stackcalc/panel"
	"github.com/ezrec/stackcalc/simulator"
	"github.com/ezrec/stackcalc/translate"
)

var f = translate.From

// ErrScript is a failure while running a script.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrCount is a negative press count.
type ErrCount int

func (err ErrCount) Error() string {
	return f("press count %d is negative", int(err))
}

// Runner runs scripts against a simulator.
type Runner struct {
	Sim    *simulator.Simulator
	Output io.Writer // Destination of print(); discarded if nil.
}

// Run executes the script src, named name, to completion.
// src may be a string, []byte or io.Reader.
func (rn *Runner) Run(ctx context.Context, name string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if rn.Output != nil {
				fmt.Fprintln(rn.Output, msg)
			}
		},
	}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	globals, err = starlark.ExecFileOptions(&opts, thread, name, src, rn.builtins(ctx))
	if err != nil {
		err = &ErrScript{Name: name, Err: err}
	}

	return
}

func (rn *Runner) builtins(ctx context.Context) starlark.StringDict {
	sim := rn.Sim

	return starlark.StringDict{
		"press": starlark.NewBuiltin("press", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			count := 1
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "count?", &count); err != nil {
				return nil, err
			}
			if count < 0 {
				return nil, ErrCount(count)
			}
			button, err := panel.ParseButton(name)
			if err != nil {
				return nil, err
			}
			for range count {
				sim.Press(button)
			}
			if err = sim.Drain(ctx); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),
		"cell": starlark.NewBuiltin("cell", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(sim.Stack.Current())), nil
		}),
		"pointer": starlark.NewBuiltin("pointer", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.MakeInt(sim.Stack.Pointer), nil
		}),
		"error": starlark.NewBuiltin("error", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.Bool(sim.Error), nil
		}),
		"modifier": starlark.NewBuiltin("modifier", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.Bool(sim.Modifier), nil
		}),
		"display": starlark.NewBuiltin("display", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.String(sim.Display().String()), nil
		}),
		"clear_error": starlark.NewBuiltin("clear_error", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			sim.ClearError()
			return starlark.None, nil
		}),
		"reset": starlark.NewBuiltin("reset", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			sim.Reset()
			return starlark.None, nil
		}),
	}
}
