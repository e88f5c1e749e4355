package calc

const (
	STACK_SIZE = 32 // Number of cells in the stack
)

// Stack is a fixed size circular stack of byte cells.
type Stack struct {
	Data    [STACK_SIZE]uint8
	Pointer int
}

func (s *Stack) Advance() {
	s.Pointer = (s.Pointer + 1) % STACK_SIZE
}

func (s *Stack) Retreat() {
	s.Pointer = (s.Pointer - 1 + STACK_SIZE) % STACK_SIZE
}

func (s *Stack) Current() uint8 {
	return s.Data[s.Pointer]
}

func (s *Stack) SetCurrent(value uint8) {
	s.Data[s.Pointer] = value
}

// ClearAll zeros every cell, leaving the pointer in place.
func (s *Stack) ClearAll() {
	clear(s.Data[:])
}

func (s *Stack) JumpToFirst() {
	s.Pointer = 0
}

func (s *Stack) JumpToLast() {
	s.Pointer = STACK_SIZE - 1
}

// Reset zeros every cell and the pointer.
func (s *Stack) Reset() {
	s.ClearAll()
	s.Pointer = 0
}
