package board_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/knightour/backtrack"
	"github.com/katalvlaran/knightour/board"
)

// loShuPath visits the 3×3 squares in an order whose numbering reproduces
// the Lo Shu magic square:
//
//	2 7 6
//	9 5 1
//	4 3 8
//
// (Not a knight path; AnalyzeTour studies the numbering, not legality.)
func loShuPath() board.Path {
	return board.Path{
		{Row: 1, Col: 2}, // 1
		{Row: 0, Col: 0}, // 2
		{Row: 2, Col: 1}, // 3
		{Row: 2, Col: 0}, // 4
		{Row: 1, Col: 1}, // 5
		{Row: 0, Col: 2}, // 6
		{Row: 0, Col: 1}, // 7
		{Row: 2, Col: 2}, // 8
		{Row: 1, Col: 0}, // 9
	}
}

// TestNumberGrid checks the path → numbered-board conversion.
func TestNumberGrid(t *testing.T) {
	b, _ := board.New(3)
	grid, err := b.NumberGrid(loShuPath())
	if err != nil {
		t.Fatalf("NumberGrid error: %v", err)
	}
	want := [][]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}}
	for r := range want {
		for c := range want[r] {
			if grid[r][c] != want[r][c] {
				t.Errorf("grid[%d][%d] = %d; want %d", r, c, grid[r][c], want[r][c])
			}
		}
	}
}

// TestNumberGrid_Errors rejects short, duplicated and off-board paths.
func TestNumberGrid_Errors(t *testing.T) {
	b, _ := board.New(3)

	cases := []struct {
		name string
		path board.Path
	}{
		{"Short", loShuPath()[:8]},
		{"Duplicate", append(loShuPath()[:8], board.Square{Row: 1, Col: 2})},
		{"OffBoard", append(loShuPath()[:8], board.Square{Row: 3, Col: 0})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.NumberGrid(tc.path); !errors.Is(err, board.ErrIncompleteTour) {
				t.Errorf("NumberGrid(%s) error = %v; want ErrIncompleteTour", tc.name, err)
			}
		})
	}
}

// TestAnalyzeTour_MagicSquare verifies the full classification on the
// Lo Shu numbering: every line sums to the magic constant 15.
func TestAnalyzeTour_MagicSquare(t *testing.T) {
	b, _ := board.New(3)
	a, err := b.AnalyzeTour(loShuPath())
	if err != nil {
		t.Fatalf("AnalyzeTour error: %v", err)
	}

	if a.MagicConstant != 15 {
		t.Errorf("MagicConstant = %d; want 15", a.MagicConstant)
	}
	for i := 0; i < 3; i++ {
		if a.RowSums[i] != 15 || a.ColSums[i] != 15 {
			t.Errorf("line %d sums = (%d,%d); want (15,15)", i, a.RowSums[i], a.ColSums[i])
		}
	}
	if a.MainDiagonal != 15 || a.AntiDiagonal != 15 {
		t.Errorf("diagonals = (%d,%d); want (15,15)", a.MainDiagonal, a.AntiDiagonal)
	}
	if !a.SemiMagic || !a.Magic {
		t.Errorf("classification = semi:%v magic:%v; want true,true", a.SemiMagic, a.Magic)
	}
}

// TestAnalyzeTour_RealTour analyzes an actual knight's tour. On 5×5 the
// checkerboard parity of rows makes equal row sums impossible, so any tour
// is provably non-semi-magic; the sums must still account for every move
// number exactly once.
func TestAnalyzeTour_RealTour(t *testing.T) {
	b, _ := board.New(5)
	res, err := backtrack.Solve(b, board.Square{Row: 0, Col: 0})
	if err != nil || !res.Success {
		t.Fatalf("tour solve failed: err=%v success=%v", err, res.Success)
	}

	a, err := b.AnalyzeTour(res.Path)
	if err != nil {
		t.Fatalf("AnalyzeTour error: %v", err)
	}

	if a.MagicConstant != 65 {
		t.Errorf("MagicConstant = %d; want 65", a.MagicConstant)
	}
	total := 0
	for _, s := range a.RowSums {
		total += s
	}
	if total != 325 { // 1+2+…+25
		t.Errorf("row sums total %d; want 325", total)
	}
	if a.SemiMagic {
		t.Error("a 5×5 tour cannot be semi-magic (row parity argument)")
	}
}
