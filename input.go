package shoal

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// InputQueue accepts pointer events in arrival order. Session implements it;
// Game wraps it to intercept button presses.
type InputQueue interface {
	Push(event InputEvent)
}

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// PointerTracker turns raw pointer samples into the Drag/DragStop event
// stream. Only one pointer steers at a time: the first one pressed owns the
// drag until it is released, and other pointers are ignored meanwhile.
type PointerTracker struct {
	pointers [maxPointers]pointerState
	owner    int

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// NewPointerTracker returns a tracker with no pointer down.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{owner: -1}
}

// Poll reads this frame's mouse and touch state from Ebitengine and pushes
// the resulting events to q. A queued synthetic event replaces real input
// for the frame.
func (t *PointerTracker) Poll(q InputQueue) {
	if t.processInjected(q) {
		return
	}
	t.pollMouse(q)
	t.pollTouches(q)
}

// pollMouse handles mouse input (pointer 0). Any held button steers.
func (t *PointerTracker) pollMouse(q InputQueue) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	t.processPointer(q, 0, float64(mx), float64(my), pressed)
}

// pollTouches handles touch input (pointers 1-9).
func (t *PointerTracker) pollTouches(q InputQueue) {
	touchIDs := ebiten.AppendTouchIDs(t.prevTouchIDs[:0])
	t.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := t.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		t.processPointer(q, slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && !activeSlots[i] {
			ps := &t.pointers[i]
			if ps.down {
				t.processPointer(q, i, ps.lastX, ps.lastY, false)
			}
			t.touchUsed[i] = false
			t.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (t *PointerTracker) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && t.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.touchUsed[i] {
			t.touchUsed[i] = true
			t.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release state machine for one pointer.
// A press or a move while held pushes a Drag at the pointer position; a
// release pushes a DragStop. Holding still pushes nothing.
func (t *PointerTracker) processPointer(q InputQueue, pointerID int, x, y float64, pressed bool) {
	ps := &t.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		if t.owner < 0 {
			t.owner = pointerID
			q.Push(InputEvent{Type: InputDrag, Location: Point{x, y}})
		}
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			ps.lastX, ps.lastY = x, y
			if t.owner == pointerID {
				q.Push(InputEvent{Type: InputDrag, Location: Point{x, y}})
			}
		}
	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = x, y
		if t.owner == pointerID {
			t.owner = -1
			q.Push(InputEvent{Type: InputDragStop})
		}
	}
}
