package calc

// Op is a binary arithmetic operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD = Op(0) // +
	OP_SUB = Op(1) // -
	OP_MUL = Op(2) // *
)

// apply computes the exact result, and the value to store if it does
// not fit in a cell.
func (op Op) apply(in1, in2 int) (result int, clamp uint8) {
	switch op {
	case OP_ADD:
		result, clamp = in1+in2, 0xff
	case OP_SUB:
		result, clamp = in1-in2, 0x00
	case OP_MUL:
		result, clamp = in1*in2, 0xff
	default:
		panic("unknown op")
	}

	return
}
