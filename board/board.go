package board

// knightOffsets is the canonical enumeration of the 8 knight moves.
// The order is fixed and load-bearing: deterministic engines break
// mobility ties by "first in this order", and the cultural engine's
// chromosome symbols 0–7 index directly into it.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// NumMoves is the number of knight move directions (chromosome alphabet size).
const NumMoves = 8

// MoveOffsets returns the 8 knight offsets in canonical order.
// The array is returned by value; callers may not mutate the canonical table.
// Complexity: O(1).
func MoveOffsets() [8][2]int {
	return knightOffsets
}

// InBounds reports whether sq lies on the board.
// Complexity: O(1).
func (b Board) InBounds(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.N && sq.Col >= 0 && sq.Col < b.N
}

// Apply returns the square reached from sq by move direction idx (0–7).
// The result may be off the board; callers check InBounds.
// Out-of-range idx returns sq unchanged.
// Complexity: O(1).
func (b Board) Apply(sq Square, idx int) Square {
	if idx < 0 || idx >= NumMoves {
		return sq
	}

	return Square{Row: sq.Row + knightOffsets[idx][0], Col: sq.Col + knightOffsets[idx][1]}
}

// MoveIndex returns the offset-table index of the move from → to,
// or -1 when (from,to) is not a knight move.
// Complexity: O(8).
func (b Board) MoveIndex(from, to Square) int {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for i, off := range knightOffsets {
		if off[0] == dr && off[1] == dc {
			return i
		}
	}

	return -1
}

// IsKnightMove reports whether a→b is a legal knight displacement,
// ignoring bounds and visit state.
// Complexity: O(1).
func IsKnightMove(a, b Square) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

// Targets returns the on-board knight destinations from sq, in offset order.
// Visit state is not consulted; filter with a VisitedSet for legal moves.
// Complexity: O(8) time, one ≤8-element allocation.
func (b Board) Targets(sq Square) []Square {
	out := make([]Square, 0, NumMoves)
	for _, off := range knightOffsets {
		next := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if b.InBounds(next) {
			out = append(out, next)
		}
	}

	return out
}

// AppendLegalMoves appends the unvisited on-board destinations from sq to
// dst (offset order preserved) and returns the extended slice. Engines pass
// a reusable buffer to keep the hot path allocation-free.
// Complexity: O(8).
func (b Board) AppendLegalMoves(dst []Square, sq Square, visited *VisitedSet) []Square {
	for _, off := range knightOffsets {
		next := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if b.InBounds(next) && !visited.Has(next) {
			dst = append(dst, next)
		}
	}

	return dst
}
