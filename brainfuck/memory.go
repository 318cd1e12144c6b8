package brainfuck

// Memory is the machine's cell store: zero-initialized int cells, unbounded
// to the right, with a pointer that starts at cell 0. Cell values are plain
// ints with no wrap at any bound.

type Memory struct {
	Cells         []int
	MemoryPointer int
}

func NewMemory() *Memory {
	return &Memory{
		Cells:         []int{0},
		MemoryPointer: 0,
	}
}

func (m *Memory) Reset() {
	m.Cells = []int{0}
	m.MemoryPointer = 0
}

func (m *Memory) GetCurrentCell() int {
	return m.Cells[m.MemoryPointer]
}

func (m *Memory) Increment() {
	m.Cells[m.MemoryPointer] = m.Cells[m.MemoryPointer] + 1
}

func (m *Memory) Decrement() {
	m.Cells[m.MemoryPointer] = m.Cells[m.MemoryPointer] - 1
}

// MovePointerLeft moves the pointer one cell left. At cell 0 it is a silent
// no-op — the pointer clamps rather than erroring. That clamp is deliberate,
// inherited reference behavior; do not turn it into a bounds failure.
func (m *Memory) MovePointerLeft() {
	if m.MemoryPointer == 0 {
		return
	}
	m.MemoryPointer = m.MemoryPointer - 1
}

// MovePointerRight moves the pointer one cell right, allocating the new
// cell at zero on first visit.
func (m *Memory) MovePointerRight() {
	m.MemoryPointer = m.MemoryPointer + 1
	if m.MemoryPointer > len(m.Cells)-1 {
		m.Cells = append(m.Cells, 0)
	}
}
