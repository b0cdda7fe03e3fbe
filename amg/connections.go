package amg

import (
	"math"

	"github.com/katalvlaran/multigrid/sparse"
)

// connectionList stores, per node, the ordered list of node indices it is
// strongly connected to. The layout is a compact offset/index pair: the
// connections of node i occupy nodes[heads[i]:heads[i+1]] in insertion order.
type connectionList struct {
	heads []int
	nodes []int
}

// newConnectionList returns an empty list ready for push/finishNode building.
func newConnectionList() *connectionList {
	return &connectionList{heads: []int{0}}
}

// push appends a connection of the node currently under construction.
func (l *connectionList) push(node int) {
	l.nodes = append(l.nodes, node)
}

// finishNode seals the current node's connection group and starts the next.
func (l *connectionList) finishNode() {
	l.heads = append(l.heads, len(l.nodes))
}

// numNodes returns the number of finished nodes.
func (l *connectionList) numNodes() int {
	return len(l.heads) - 1
}

// connectedTo returns the connections of node i. The slice aliases internal
// storage and must be treated as read-only.
func (l *connectionList) connectedTo(i int) []int {
	return l.nodes[l.heads[i]:l.heads[i+1]]
}

// transpose builds the list of incoming connections: if node i connects to
// node j in l, then j connects to i in the result. A counting sort keeps the
// construction at O(nodes + connections) and preserves, for each target, the
// source order of the original list.
func (l *connectionList) transpose() *connectionList {
	n := l.numNodes()
	t := &connectionList{
		heads: make([]int, n+1),
		nodes: make([]int, len(l.nodes)),
	}
	for _, j := range l.nodes {
		t.heads[j+1]++
	}
	for j := 0; j < n; j++ {
		t.heads[j+1] += t.heads[j]
	}
	next := append([]int(nil), t.heads...)
	for i := 0; i < n; i++ {
		for _, j := range l.connectedTo(i) {
			t.nodes[next[j]] = i
			next[j]++
		}
	}
	return t
}

// strongConnections scans every row of m and collects its strong connections:
// off-diagonal entries whose magnitude is at least threshold times the largest
// off-diagonal magnitude of the row. Rows whose off-diagonals are all zero
// yield an empty group. Insertion order follows the matrix's native column
// order.
func strongConnections(m *sparse.CSR, threshold float64) *connectionList {
	rows, _ := m.Dims()
	list := newConnectionList()
	for i := 0; i < rows; i++ {
		cols, vals := m.Row(i)
		maxAbs := 0.0
		for k, j := range cols {
			if j != i {
				maxAbs = math.Max(maxAbs, math.Abs(vals[k]))
			}
		}
		if maxAbs > 0 {
			bound := threshold * maxAbs
			for k, j := range cols {
				if j != i && math.Abs(vals[k]) >= bound {
					list.push(j)
				}
			}
		}
		list.finishNode()
	}
	return list
}
