package shoal

// Button is a rectangular on-screen control centered on Location.
type Button struct {
	Location      Point
	Width, Height float64
	Label         string
	Handler       func()
}

// Contains reports whether p lies inside the button. The left and top edges
// are inside, the right and bottom edges are not.
func (b Button) Contains(p Point) bool {
	return p.X >= b.Location.X-b.Width/2 &&
		p.Y >= b.Location.Y-b.Height/2 &&
		p.X < b.Location.X+b.Width/2 &&
		p.Y < b.Location.Y+b.Height/2
}

// buttonAt returns the first button containing p, or nil.
func buttonAt(buttons []Button, p Point) *Button {
	for i := range buttons {
		if buttons[i].Contains(p) {
			return &buttons[i]
		}
	}
	return nil
}
