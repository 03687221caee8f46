package shoal

// FirstCollision scans moving movers pairwise in index order and returns the
// first pair closer than dist. Movers in any other state are skipped.
//
// The scan is first-found, not a global pairing: with several overlapping
// pairs the lowest (i, j) wins and the rest wait for a later frame.
func FirstCollision(movers []*Mover, dist float64) (i, j int, ok bool) {
	for i = 0; i < len(movers); i++ {
		if movers[i].State != StateMoving {
			continue
		}
		for j = i + 1; j < len(movers); j++ {
			if movers[j].State != StateMoving {
				continue
			}
			if Distance(movers[i].Location, movers[j].Location) < dist {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// ResolveCollisions marks the first colliding pair as StateCollided and
// reports whether one was found. At most one pair is resolved per call.
func ResolveCollisions(movers []*Mover, dist float64) bool {
	i, j, ok := FirstCollision(movers, dist)
	if !ok {
		return false
	}
	movers[i].State = StateCollided
	movers[j].State = StateCollided
	return true
}
