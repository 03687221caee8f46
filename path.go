package shoal

// Path is an ordered queue of waypoints. Points are appended at the back and
// consumed from the front; they are never reordered.
//
// The zero value is an empty path ready to use. Popping advances a cursor
// over the backing slice, so front removal is O(1); consumed slots are
// reclaimed once they make up more than half of the slice.
type Path struct {
	points []Point
	head   int
}

// Len returns the number of waypoints still queued.
func (p *Path) Len() int {
	return len(p.points) - p.head
}

// Empty reports whether no waypoints remain.
func (p *Path) Empty() bool {
	return p.Len() == 0
}

// Push appends a waypoint unconditionally.
func (p *Path) Push(pt Point) {
	p.points = append(p.points, pt)
}

// PushSpaced appends pt if the path is empty or pt lies more than minSpacing
// from the last queued waypoint. It reports whether the point was kept.
// Dense pointer samples collapse into a sparse polyline this way.
func (p *Path) PushSpaced(pt Point, minSpacing float64) bool {
	if last, ok := p.Last(); ok && Distance(pt, last) <= minSpacing {
		return false
	}
	p.Push(pt)
	return true
}

// Front returns the next waypoint to visit.
func (p *Path) Front() (Point, bool) {
	if p.Empty() {
		return Point{}, false
	}
	return p.points[p.head], true
}

// Last returns the most recently queued waypoint.
func (p *Path) Last() (Point, bool) {
	if p.Empty() {
		return Point{}, false
	}
	return p.points[len(p.points)-1], true
}

// PopFront removes and returns the front waypoint.
func (p *Path) PopFront() (Point, bool) {
	if p.Empty() {
		return Point{}, false
	}
	pt := p.points[p.head]
	p.head++
	if p.head == len(p.points) {
		p.points = p.points[:0]
		p.head = 0
	} else if p.head > len(p.points)/2 {
		n := copy(p.points, p.points[p.head:])
		p.points = p.points[:n]
		p.head = 0
	}
	return pt, true
}

// Clear drops every queued waypoint, keeping the backing storage.
func (p *Path) Clear() {
	p.points = p.points[:0]
	p.head = 0
}

// Points returns a copy of the queued waypoints in visiting order.
func (p *Path) Points() []Point {
	if p.Empty() {
		return nil
	}
	out := make([]Point, p.Len())
	copy(out, p.points[p.head:])
	return out
}

// at returns the i-th queued waypoint counting from the front.
func (p *Path) at(i int) Point {
	return p.points[p.head+i]
}

// drop removes the first n waypoints.
func (p *Path) drop(n int) {
	for i := 0; i < n; i++ {
		p.PopFront()
	}
}
