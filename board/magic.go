package board

import "errors"

// ErrIncompleteTour indicates a path that does not visit every square of
// the board exactly once; magic-square analysis is defined on full tours.
var ErrIncompleteTour = errors.New("board: tour must visit every square exactly once")

// TourAnalysis describes the magic-square properties of a complete tour:
// number the squares 1..n² in visit order and study the line sums.
//
// SemiMagic: all row sums equal and all column sums equal.
// Magic: additionally both diagonals equal, every sum hitting the magic
// constant n(n²+1)/2.
type TourAnalysis struct {
	RowSums       []int
	ColSums       []int
	MainDiagonal  int
	AntiDiagonal  int
	MagicConstant int
	SemiMagic     bool
	Magic         bool
}

// NumberGrid converts a complete tour into the numbered board: grid[r][c]
// holds the 1-based move number at which (r,c) was visited.
// Returns ErrIncompleteTour when path misses squares, repeats one, or
// strays off the board.
// Complexity: O(n²).
func (b Board) NumberGrid(path Path) ([][]int, error) {
	if len(path) != b.Squares() {
		return nil, ErrIncompleteTour
	}

	grid := make([][]int, b.N)
	for r := range grid {
		grid[r] = make([]int, b.N)
	}
	for move, sq := range path {
		if !b.InBounds(sq) || grid[sq.Row][sq.Col] != 0 {
			return nil, ErrIncompleteTour
		}
		grid[sq.Row][sq.Col] = move + 1
	}

	return grid, nil
}

// AnalyzeTour numbers a complete tour and reports its magic-square
// properties. Knight-move legality of the path is not re-checked here;
// the engines guarantee it and the line sums do not depend on it.
// Complexity: O(n²).
func (b Board) AnalyzeTour(path Path) (TourAnalysis, error) {
	grid, err := b.NumberGrid(path)
	if err != nil {
		return TourAnalysis{}, err
	}

	a := TourAnalysis{
		RowSums:       make([]int, b.N),
		ColSums:       make([]int, b.N),
		MagicConstant: b.N * (b.N*b.N + 1) / 2,
	}
	for r := 0; r < b.N; r++ {
		for c := 0; c < b.N; c++ {
			a.RowSums[r] += grid[r][c]
			a.ColSums[c] += grid[r][c]
		}
		a.MainDiagonal += grid[r][r]
		a.AntiDiagonal += grid[r][b.N-1-r]
	}

	a.SemiMagic = allEqual(a.RowSums) && allEqual(a.ColSums)
	a.Magic = a.SemiMagic &&
		a.RowSums[0] == a.MagicConstant && a.ColSums[0] == a.MagicConstant &&
		a.MainDiagonal == a.MagicConstant && a.AntiDiagonal == a.MagicConstant

	return a, nil
}

func allEqual(sums []int) bool {
	for _, s := range sums[1:] {
		if s != sums[0] {
			return false
		}
	}

	return true
}
