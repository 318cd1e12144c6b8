package brainfuck

// The OPs for the linear Brainfuck subset the long-form compiler handles.
// This enumeration is the single source of truth for recognized symbols:
// the parser and the machine both dispatch on it, so adding an instruction
// means touching exactly this file.

// There is no loop or input handling here. [ ] , fall through OPFromRune's
// default arm and are skipped like any other comment byte.

type OP rune

const (
	OP_INC           = OP('+')
	OP_DEC           = OP('-')
	OP_POINTER_LEFT  = OP('<')
	OP_POINTER_RIGHT = OP('>')
	OP_OUTPUT        = OP('.')
	NO_OP            = OP('#')
)

var OP_SET = [...]OP{
	OP_INC,
	OP_DEC,
	OP_POINTER_LEFT,
	OP_POINTER_RIGHT,
	OP_OUTPUT,
}

// OPFromRune maps a source rune to its OP. Anything outside the recognized
// set maps to NO_OP.
func OPFromRune(r rune) OP {
	switch OP(r) {
	case OP_INC:
		return OP_INC
	case OP_DEC:
		return OP_DEC
	case OP_POINTER_LEFT:
		return OP_POINTER_LEFT
	case OP_POINTER_RIGHT:
		return OP_POINTER_RIGHT
	case OP_OUTPUT:
		return OP_OUTPUT
	default:
		return NO_OP
	}
}

// Parse scans source one rune at a time and returns the OPs in encounter
// order. Every unrecognized rune is a comment, so parsing never fails;
// instruction-free source yields an empty sequence.
func Parse(source string) []OP {
	ops := []OP{}
	for _, r := range source {
		if op := OPFromRune(r); op != NO_OP {
			ops = append(ops, op)
		}
	}
	return ops
}

// Execute applies the OP to memory. OP_OUTPUT captures the current cell
// value and reports emitted=true; every other recognized OP mutates memory
// and emits nothing. Unrecognized OPs are no-ops so execution stays total
// even if a tape was built without going through Parse.
func (o OP) Execute(memory *Memory) (value int, emitted bool) {
	switch o {
	case OP_INC:
		memory.Increment()
	case OP_DEC:
		memory.Decrement()
	case OP_POINTER_LEFT:
		memory.MovePointerLeft()
	case OP_POINTER_RIGHT:
		memory.MovePointerRight()
	case OP_OUTPUT:
		return memory.GetCurrentCell(), true
	}
	return 0, false
}

func (o OP) String() string {
	return string(rune(o))
}
