package amg

// tuneClassification post-processes a coarse/fine classification so that
// every fine node can interpolate validly, mutating it in place.
//
// Pass 1 (isolation fix): a fine node with no coarse node among its
// transposed-connection neighbors has no interpolation source at all and is
// forced to coarse.
//
// Pass 2 (interpolation condition): one forward sweep over the nodes in index
// order, applying tuneNode to every node still classified fine. Decisions
// taken earlier in the sweep are visible to later nodes; the sweep is not
// iterated to a fixed point.
func tuneClassification(connections, transposed *connectionList, classification []grade) {
	for i := range classification {
		if classification[i] != gradeFine {
			continue
		}
		hasCoarse := false
		for _, j := range transposed.connectedTo(i) {
			if classification[j] == gradeCoarse {
				hasCoarse = true
				break
			}
		}
		if !hasCoarse {
			classification[i] = gradeCoarse
		}
	}

	for i := range classification {
		if classification[i] == gradeFine {
			tuneNode(connections, classification, i)
		}
	}
}

// tuneNode enforces the Ruge–Stüben interpolation condition around one fine
// node: every fine neighbor must share at least one connection with the
// node's coarse neighborhood.
//
// If exactly one fine neighbor violates the condition, that neighbor is
// promoted to coarse; if promoting it still leaves a violator, the tested node
// itself is promoted instead, and the remaining violators wait for their own
// turn in the sweep.
func tuneNode(connections *connectionList, classification []grade, tested int) {
	var coarseNeighbors, fineNeighbors []int
	inCoarse := make(map[int]bool)
	for _, j := range connections.connectedTo(tested) {
		if classification[j] == gradeCoarse {
			coarseNeighbors = append(coarseNeighbors, j)
			inCoarse[j] = true
		} else {
			fineNeighbors = append(fineNeighbors, j)
		}
	}

	violator := findViolator(connections, inCoarse, fineNeighbors, -1)
	if violator < 0 {
		return
	}

	// Tentatively promote the violator and re-check the rest.
	inCoarse[violator] = true
	if findViolator(connections, inCoarse, fineNeighbors, violator) >= 0 {
		classification[tested] = gradeCoarse
	} else {
		classification[violator] = gradeCoarse
	}
}

// findViolator returns the first fine neighbor (in connection order, skipping
// the given index) with no connection into the coarse set, or -1 when all
// satisfy the interpolation condition. Iterating the ordered neighbor slice
// rather than a set keeps the tuning deterministic.
func findViolator(connections *connectionList, inCoarse map[int]bool, fineNeighbors []int, skip int) int {
	for _, k := range fineNeighbors {
		if k == skip {
			continue
		}
		satisfied := false
		for _, c := range connections.connectedTo(k) {
			if inCoarse[c] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return k
		}
	}
	return -1
}
