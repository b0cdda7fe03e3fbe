package amg

// classifyNodes runs the greedy first pass of coarse-grid selection.
//
// The score of a node is its in-degree in the transposed connection list: the
// number of nodes that interpolate from it. The loop repeatedly picks the
// unclassified node with the maximum score (ties to the lowest index) and
// makes it coarse. Unclassified nodes that connect into the chosen node become
// fine, and every out-neighbor of such a node gains a point: it just lost a
// potential interpolation source, making it a better coarse candidate.
// Unclassified out-neighbors of the chosen node lose a point, since they now
// have one interpolation source secured.
//
// The result classifies every node as coarse or fine; it is deterministic for
// a fixed connection order and runs in O(E log V).
func classifyNodes(connections, transposed *connectionList) []grade {
	n := connections.numNodes()
	classification := make([]grade, n)

	table := newScoreTable(n)
	for i := 0; i < n; i++ {
		table.assign(i, len(transposed.connectedTo(i)))
	}

	for !table.empty() {
		selected := table.maxScoreIndex()
		classification[selected] = gradeCoarse
		table.remove(selected)

		for _, j := range transposed.connectedTo(selected) {
			if classification[j] != gradeUnclassified {
				continue
			}
			classification[j] = gradeFine
			table.remove(j)
			for _, k := range connections.connectedTo(j) {
				table.addScore(k, 1)
			}
		}
		for _, j := range connections.connectedTo(selected) {
			if classification[j] == gradeUnclassified {
				table.addScore(j, -1)
			}
		}
	}

	return classification
}
