package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	empty := c.String()
	if strings.ContainsFunc(empty, func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("fresh canvas is not blank")
	}

	c.Set(0, 0)
	if c.String() == empty {
		t.Error("Set(0,0) left the canvas blank")
	}

	// Out-of-range dots must be ignored, not panic.
	c.Set(-1, 0)
	c.Set(0, -4)
	c.Set(1000, 1000)

	c.Clear()
	if c.String() != empty {
		t.Error("Clear did not restore the blank canvas")
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(8, 4)
	c.DrawRect(0, 0, 15, 15)

	if c.String() == NewCanvas(8, 4).String() {
		t.Error("DrawRect drew nothing")
	}
}
