package multiples

import (
	"math"

	"github.com/eulergo/sift/consterr"
)

// ErrOverflow reports that the next multiple would exceed the int64 range.
const ErrOverflow consterr.Error = "multiples: next multiple exceeds int64 range"

// Cursor walks the multiples of a fixed positive base. Current starts at the
// base itself and grows by exactly the base on every Advance.
type Cursor struct {
	base    int64
	current int64
}

// NewCursor returns a cursor positioned on its first multiple.
func NewCursor(base int64) *Cursor {
	return &Cursor{base: base, current: base}
}

// Base returns the fixed step of the cursor.
func (c *Cursor) Base() int64 {
	return c.base
}

// Current returns the multiple the cursor is positioned on.
func (c *Cursor) Current() int64 {
	return c.current
}

// Advance steps the cursor to its next multiple.
func (c *Cursor) Advance() error {
	if c.current > math.MaxInt64-c.base {
		return ErrOverflow
	}
	c.current += c.base
	return nil
}

// CompareCursors orders cursors by their current multiple.
func CompareCursors(a, b *Cursor) int {
	switch {
	case a.current < b.current:
		return -1
	case a.current > b.current:
		return 1
	default:
		return 0
	}
}
