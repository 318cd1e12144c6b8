package brainfuck

import (
	"testing"
)

func TestNewMemory(t *testing.T) {
	memory := NewMemory()
	if memory == nil {
		t.Errorf("NewMemory returned nil")
	}

	if len(memory.Cells) != 1 || memory.Cells[0] != 0 {
		t.Errorf("NewMemory didn't start with a single zero cell: %v", memory.Cells)
	}
}

func TestIncrementDecrement(t *testing.T) {
	memory := NewMemory()

	memory.Increment()
	if val := memory.GetCurrentCell(); val != 1 {
		t.Errorf("Increment failed. Value is [%d]. Expected value to be [1]", val)
	}

	memory.Decrement()
	memory.Decrement()
	if val := memory.GetCurrentCell(); val != -1 {
		t.Errorf("Decrement failed. Value is [%d]. Expected value to be [-1]", val)
	}
}

func TestMovePointerRightAllocates(t *testing.T) {
	memory := NewMemory()
	memory.Increment()

	memory.MovePointerRight()
	if memory.MemoryPointer != 1 {
		t.Errorf("Expected MemoryPointer to be [1] but was [%d]", memory.MemoryPointer)
	}

	if len(memory.Cells) != 2 {
		t.Errorf("Expected [2] allocated cells but found [%d]", len(memory.Cells))
	}

	if val := memory.GetCurrentCell(); val != 0 {
		t.Errorf("Freshly allocated cell holds [%d], expected [0]", val)
	}
}

func TestMovePointerLeftClampsAtZero(t *testing.T) {
	memory := NewMemory()

	memory.MovePointerLeft()
	memory.MovePointerLeft()

	if memory.MemoryPointer != 0 {
		t.Errorf("MovePointerLeft at cell 0 moved the pointer to [%d], expected clamp at [0]", memory.MemoryPointer)
	}

	memory.MovePointerRight()
	memory.MovePointerLeft()
	if memory.MemoryPointer != 0 {
		t.Errorf("MovePointerLeft from cell 1 left the pointer at [%d], expected [0]", memory.MemoryPointer)
	}
}

func TestMemoryReset(t *testing.T) {
	memory := NewMemory()
	memory.Increment()
	memory.MovePointerRight()
	memory.Increment()

	memory.Reset()

	if memory.MemoryPointer != 0 || len(memory.Cells) != 1 || memory.Cells[0] != 0 {
		t.Errorf("Reset left memory dirty: pointer [%d], cells %v", memory.MemoryPointer, memory.Cells)
	}
}
