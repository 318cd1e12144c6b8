package brainfuck

// Machine walks a Tape once, left to right, against a fresh Memory and
// records an output event for every OP_OUTPUT it executes. Every OP is
// total, the tape cursor only moves forward, and the instruction sequence
// is finite, so Run always terminates in O(len(tape)) steps and never
// returns an error.

type Machine struct {
	Tape             *Tape
	Memory           *Memory
	InstructionCount uint
}

func NewMachine() *Machine {
	return &Machine{
		Memory: NewMemory(),
	}
}

func (m *Machine) Reset() {
	if m.Tape != nil {
		m.Tape.Reset()
	}
	m.Memory.Reset()
	m.InstructionCount = 0
}

// LoadProgram parses source and loads the resulting instructions, resetting
// any prior run's state.
func (m *Machine) LoadProgram(source string) {
	if m.Tape == nil {
		m.Tape = NewTape(Parse(source))
	} else {
		m.Tape.Instructions = Parse(source)
	}
	m.Reset()
}

// Run executes the loaded program and returns the output event log: the
// captured cell values, one per OP_OUTPUT, in execution order. An empty or
// never-loaded program yields an empty log.
func (m *Machine) Run() []int {
	events := []int{}

	if m.Tape == nil {
		return events
	}

	for {
		op, ok := m.Tape.Current()
		if !ok {
			break
		}
		if value, emitted := op.Execute(m.Memory); emitted {
			events = append(events, value)
		}
		m.InstructionCount = m.InstructionCount + 1
		m.Tape.Advance(1)
	}

	return events
}

// Simulate is the one-shot form: parse nothing, just run an instruction
// sequence on a throwaway machine and return its event log.
func Simulate(instructions []OP) []int {
	machine := NewMachine()
	machine.Tape = NewTape(instructions)
	return machine.Run()
}
