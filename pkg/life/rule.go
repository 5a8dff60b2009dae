package life

// Next applies the B3/S23 rule: a live cell survives with two or three live
// neighbors, a dead cell is born with exactly three.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
