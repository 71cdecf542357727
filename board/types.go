// Package board defines core types and sentinel errors for the board
// geometry used by every Knight's Tour engine in knightour.
package board

import "errors"

// Sentinel errors for board construction and validation.
var (
	// ErrBoardSize indicates a board size below the 1×1 minimum.
	ErrBoardSize = errors.New("board: size must be at least 1")
	// ErrStartOutOfBounds indicates a start square outside the board.
	ErrStartOutOfBounds = errors.New("board: start square out of bounds")
)

// Square is one board cell. Zero value is the top-left corner (0,0).
type Square struct {
	Row, Col int
}

// Path is an ordered visit sequence. A well-formed Path starts at the
// engine's start square, contains pairwise-distinct squares, and every
// consecutive pair is a legal knight move.
type Path []Square

// Board is an n×n chessboard. It is immutable once built; construct via New.
type Board struct {
	// N is the side length. All squares satisfy 0 ≤ Row,Col < N.
	N int
}

// New constructs a Board of side n.
// Returns ErrBoardSize for n < 1.
// Complexity: O(1).
func New(n int) (Board, error) {
	if n < 1 {
		return Board{}, ErrBoardSize
	}

	return Board{N: n}, nil
}

// ValidateStart reports ErrStartOutOfBounds when start lies off the board.
// Engines call this before any search state is allocated (fail-fast).
func (b Board) ValidateStart(start Square) error {
	if !b.InBounds(start) {
		return ErrStartOutOfBounds
	}

	return nil
}

// Squares returns n², the number of cells on the board.
// Complexity: O(1).
func (b Board) Squares() int {
	return b.N * b.N
}

// Index maps sq to its row-major index: Row*N + Col.
// Complexity: O(1).
func (b Board) Index(sq Square) int {
	return sq.Row*b.N + sq.Col
}

// SquareAt converts a row-major index back to a Square.
// Complexity: O(1).
func (b Board) SquareAt(idx int) Square {
	return Square{Row: idx / b.N, Col: idx % b.N}
}

// VisitedSet tracks which squares a path has already consumed.
// Backed by a dense []bool keyed by row-major index; O(1) per operation.
type VisitedSet struct {
	b     Board
	cells []bool
	count int
}

// NewVisitedSet returns an empty visited set for b.
// Complexity: O(n²) allocation, O(1) thereafter.
func NewVisitedSet(b Board) *VisitedSet {
	return &VisitedSet{b: b, cells: make([]bool, b.Squares())}
}

// Visit marks sq as visited. Visiting an already-visited square is a no-op.
func (v *VisitedSet) Visit(sq Square) {
	idx := v.b.Index(sq)
	if !v.cells[idx] {
		v.cells[idx] = true
		v.count++
	}
}

// Unvisit clears sq; used by backtracking engines when unwinding.
func (v *VisitedSet) Unvisit(sq Square) {
	idx := v.b.Index(sq)
	if v.cells[idx] {
		v.cells[idx] = false
		v.count--
	}
}

// Has reports whether sq was visited.
func (v *VisitedSet) Has(sq Square) bool {
	return v.cells[v.b.Index(sq)]
}

// Count returns the number of visited squares.
func (v *VisitedSet) Count() int {
	return v.count
}

// Full reports whether every square on the board has been visited.
func (v *VisitedSet) Full() bool {
	return v.count == v.b.Squares()
}
