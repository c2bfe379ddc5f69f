package outlineview

// Navigator manages cursor position within the visible rows.
type Navigator struct {
	cursor int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{
		cursor: 0,
	}
}

// Cursor returns the current cursor position
func (n *Navigator) Cursor() int {
	return n.cursor
}

// SetCursor sets the cursor position
func (n *Navigator) SetCursor(pos int) {
	n.cursor = pos
}

// MoveUp moves the cursor up if possible
func (n *Navigator) MoveUp() bool {
	if n.cursor > 0 {
		n.cursor--
		return true
	}
	return false
}

// MoveDown moves the cursor down if possible, returns true if moved
func (n *Navigator) MoveDown(maxItems int) bool {
	if n.cursor < maxItems-1 {
		n.cursor++
		return true
	}
	return false
}

// Clamp keeps the cursor within [0, count-1]. An empty list puts it at 0.
func (n *Navigator) Clamp(count int) {
	if n.cursor >= count {
		n.cursor = count - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
}
