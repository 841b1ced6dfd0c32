package rules

/*
ApplyConwayRules applies the B3/S23 rule to a single cell.

A live cell survives with exactly 2 or 3 live neighbors, a dead cell is born
with exactly 3, every other combination yields a dead cell.
*/
func ApplyConwayRules(neighbors uint8, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
