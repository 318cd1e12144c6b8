package brainfuck

type Tape struct {
	Instructions       []OP
	InstructionPointer int
}

func NewTape(instructions []OP) *Tape {
	return &Tape{
		Instructions:       instructions,
		InstructionPointer: 0,
	}
}

// Current returns the instruction under the pointer. Once the pointer has
// passed the end it returns NO_OP and false; callers stop polling then.
func (t *Tape) Current() (OP, bool) {
	if !t.InBounds(t.InstructionPointer) {
		return NO_OP, false
	}
	return t.Instructions[t.InstructionPointer], true
}

// Advance moves the pointer forward by n. The pointer is never clamped at
// the top end; Current going empty is the termination signal.
func (t *Tape) Advance(n int) {
	t.InstructionPointer = t.InstructionPointer + n
}

func (t *Tape) InBounds(index int) bool {
	return index >= 0 && index <= len(t.Instructions)-1
}

func (t *Tape) Reset() {
	t.InstructionPointer = 0
}
