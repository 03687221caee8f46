package shoal

import (
	"math"
	"math/rand/v2"
)

// Spawner creates movers on the play-area edges. It owns the random source
// and hands out sequential mover IDs.
type Spawner struct {
	cfg    Config
	rng    *rand.Rand
	nextID uint32
}

// NewSpawner returns a Spawner drawing from rng. A nil rng uses a randomly
// seeded PCG source.
func NewSpawner(cfg Config, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Spawner{cfg: cfg, rng: rng}
}

// Spawn returns a new moving mover at a uniformly random point on a
// uniformly chosen edge of area. Its heading points at the target, jittered
// uniformly within ±JitterFraction·π, and its speed comes from its
// uniformly chosen type.
func (s *Spawner) Spawn(area Rect) *Mover {
	var loc Point
	switch s.rng.IntN(4) {
	case 0: // top
		loc = Point{X: area.X + s.rng.Float64()*area.Width, Y: area.Y}
	case 1: // bottom
		loc = Point{X: area.X + s.rng.Float64()*area.Width, Y: area.Y + area.Height}
	case 2: // left
		loc = Point{X: area.X, Y: area.Y + s.rng.Float64()*area.Height}
	default: // right
		loc = Point{X: area.X + area.Width, Y: area.Y + s.rng.Float64()*area.Height}
	}

	jitter := (s.rng.Float64()*2 - 1) * s.cfg.JitterFraction * math.Pi
	typ := moverTypes[s.rng.IntN(len(moverTypes))]

	s.nextID++
	return &Mover{
		ID:       s.nextID,
		Location: loc,
		Heading:  HeadingTo(loc, area.Target()) + jitter,
		Speed:    s.cfg.SpeedFor(typ),
		Type:     typ,
		State:    StateMoving,
		Size:     s.cfg.MoverSize,
	}
}

// SpawnClear spawns until the candidate is farther than SpawnBuffer from
// every mover in existing. After SpawnAttempts rejected candidates the last
// one is accepted anyway; the second result reports whether the buffer holds.
func (s *Spawner) SpawnClear(area Rect, existing []*Mover) (*Mover, bool) {
	buffer := s.cfg.SpawnBuffer()
	attempts := max(s.cfg.SpawnAttempts, 1)

	var m *Mover
	for i := 0; i < attempts; i++ {
		m = s.Spawn(area)
		if !crowded(m.Location, existing, buffer) {
			return m, true
		}
	}
	return m, false
}

// crowded reports whether any mover lies within buffer of p.
func crowded(p Point, movers []*Mover, buffer float64) bool {
	for _, other := range movers {
		if Distance(other.Location, p) <= buffer {
			return true
		}
	}
	return false
}
