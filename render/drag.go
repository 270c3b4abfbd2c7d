package render

// clickSlop is how far in pixels a press may wander and still count as a
// click.
const clickSlop = 4

// dragTracker tells a click from a drag for one pointer.
type dragTracker struct {
	active         bool
	dragged        bool
	startX, startY int
	lastX, lastY   int
}

func (d *dragTracker) Press(x, y int) {
	*d = dragTracker{active: true, startX: x, startY: y, lastX: x, lastY: y}
}

// Move returns how far the pointer moved since the last Move once the
// press has turned into a drag, and zero before that.
func (d *dragTracker) Move(x, y int) (dx, dy int) {
	if !d.active {
		return 0, 0
	}
	if !d.dragged {
		if abs(x-d.startX) <= clickSlop && abs(y-d.startY) <= clickSlop {
			return 0, 0
		}
		d.dragged = true
	}

	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy
}

// Release ends the press. clicked is true when it never became a drag; x
// and y are then where it started.
func (d *dragTracker) Release() (clicked bool, x, y int) {
	clicked = d.active && !d.dragged
	x, y = d.startX, d.startY
	*d = dragTracker{}
	return clicked, x, y
}

func (d *dragTracker) Active() bool {
	return d.active
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
