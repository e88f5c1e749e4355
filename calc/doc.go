// Package calc implements the stack machine of the button calculator.
//
// The machine holds a circular stack of 32 byte cells and a pointer selecting
// the current cell. Each poll samples the front panel buttons in a fixed
// priority order, performs at most one action, and shows the current cell on
// eight binary weighted data lines, with two more lines for the error and
// modifier flags.
//
// The modifier button changes the meaning of the next clear, pointer or cell
// button into a jump or extreme value action. The add, subtract and multiply
// buttons combine the two cells behind the pointer into the cell after them,
// clamping results that do not fit in a byte and latching the error flag.
package calc
