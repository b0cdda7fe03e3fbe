package amg

import "container/heap"

// scoreTable maps node indices to mutable integer scores and answers
// maximum-score queries with ties broken by the lowest index. It backs the
// greedy coarse-grid selection: every unclassified node has exactly one live
// entry; classified nodes have none.
//
// The implementation is a lazy max-heap: score changes push a fresh entry and
// stale or removed entries are skipped when they surface at the top, the same
// lazy decrease-key strategy the dijkstra-style priority queues use. Each of
// the O(E) score updates costs O(log V) amortized.
type scoreTable struct {
	entries scoreHeap
	// score is the authoritative per-node score; heap entries carrying any
	// other value are stale.
	score []int
	live  []bool
	count int
}

// newScoreTable creates a table for nodes 0..size-1 with no live entries.
func newScoreTable(size int) *scoreTable {
	return &scoreTable{
		score: make([]int, size),
		live:  make([]bool, size),
	}
}

// assign inserts node index with the given score. The node must not already
// have a live entry.
func (t *scoreTable) assign(index, score int) {
	t.score[index] = score
	t.live[index] = true
	t.count++
	heap.Push(&t.entries, scoreEntry{score: score, index: index})
}

// empty reports whether no live entries remain.
func (t *scoreTable) empty() bool {
	return t.count == 0
}

// maxScoreIndex returns the index with the maximum current score, preferring
// the lowest index among equals. The table must not be empty.
func (t *scoreTable) maxScoreIndex() int {
	for {
		top := t.entries[0]
		if t.live[top.index] && t.score[top.index] == top.score {
			return top.index
		}
		heap.Pop(&t.entries)
	}
}

// remove drops the node's live entry; a node without one is ignored.
func (t *scoreTable) remove(index int) {
	if !t.live[index] {
		return
	}
	t.live[index] = false
	t.count--
}

// addScore adds delta to the node's score; a node without a live entry is
// ignored.
func (t *scoreTable) addScore(index, delta int) {
	if !t.live[index] {
		return
	}
	t.score[index] += delta
	heap.Push(&t.entries, scoreEntry{score: t.score[index], index: index})
}

// scoreEntry is one (score, index) pair in the lazy heap.
type scoreEntry struct {
	score, index int
}

// scoreHeap orders entries by score descending, then index ascending, giving
// the total order that makes the greedy selection deterministic.
type scoreHeap []scoreEntry

func (h scoreHeap) Len() int { return len(h) }
func (h scoreHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return h[i].index < h[j].index
}
func (h scoreHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoreHeap) Push(x any) { *h = append(*h, x.(scoreEntry)) }

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
