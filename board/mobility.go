package board

// Mobility counts the legal knight moves from sq to unvisited on-board
// squares — the "degree" driving Warnsdorff's rule.
// Complexity: O(8) time, zero allocations.
func (b Board) Mobility(sq Square, visited *VisitedSet) int {
	count := 0
	for _, off := range knightOffsets {
		next := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if b.InBounds(next) && !visited.Has(next) {
			count++
		}
	}

	return count
}

// MobilityTracker caches per-square mobility and keeps it current under
// visits and un-visits. It owns the visit transition: call Visit/Unvisit on
// the tracker, not on the underlying set, so cache and set never diverge.
//
// Invariant: for every square, Get(sq) equals Board.Mobility(sq, visited)
// recomputed from scratch (verified in tests).
type MobilityTracker struct {
	b       Board
	visited *VisitedSet
	cache   []int
}

// NewMobilityTracker builds a tracker over visited, priming the cache for
// the whole board.
// Complexity: O(n²·8) once; all later updates are O(8·8).
func NewMobilityTracker(b Board, visited *VisitedSet) *MobilityTracker {
	t := &MobilityTracker{b: b, visited: visited, cache: make([]int, b.Squares())}
	for idx := 0; idx < b.Squares(); idx++ {
		t.cache[idx] = b.Mobility(b.SquareAt(idx), visited)
	}

	return t
}

// Visited exposes the underlying visit set (read paths only; mutate via
// the tracker).
func (t *MobilityTracker) Visited() *VisitedSet {
	return t.visited
}

// Get returns the cached mobility of sq.
// Complexity: O(1).
func (t *MobilityTracker) Get(sq Square) int {
	return t.cache[t.b.Index(sq)]
}

// Visit marks sq visited and refreshes the mobility of its knight
// neighbors. Only the ≤8 squares a knight reaches from sq can change.
// Complexity: O(8·8) amortized.
func (t *MobilityTracker) Visit(sq Square) {
	t.visited.Visit(sq)
	t.refreshNeighbors(sq)
}

// Unvisit clears sq and refreshes the affected neighborhood, including
// sq's own entry; used when a backtracking engine unwinds.
// Complexity: O(8·8) amortized.
func (t *MobilityTracker) Unvisit(sq Square) {
	t.visited.Unvisit(sq)
	t.cache[t.b.Index(sq)] = t.b.Mobility(sq, t.visited)
	t.refreshNeighbors(sq)
}

// refreshNeighbors recomputes the cached mobility of every on-board knight
// neighbor of sq.
func (t *MobilityTracker) refreshNeighbors(sq Square) {
	for _, off := range knightOffsets {
		nb := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if t.b.InBounds(nb) {
			t.cache[t.b.Index(nb)] = t.b.Mobility(nb, t.visited)
		}
	}
}
