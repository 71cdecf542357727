package backtrack

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/knightour/board"
)

// deadlineMask throttles deadline/context polling to one real check per
// 64 recursive calls; a single descent is far below a millisecond, so a
// stop still surfaces within a few steps' latency.
const deadlineMask = 63

// progressEvery throttles the OnProgress hook to one call per this many
// forward moves.
const progressEvery = 5

// Solve runs Warnsdorff-ordered backtracking on b from start.
//
// Contracts:
//   - start must be on the board (board.ErrStartOutOfBounds otherwise).
//   - Deterministic: identical (n, start) yields an identical Result,
//     counters included.
//
// Termination: full tour (Success=true), search exhausted (Success=false,
// deepest partial path), or soft deadline/context stop (Success=false,
// active-branch partial path, Stats.TimedOut=true).
func Solve(b board.Board, start board.Square, opts ...Option) (Result, error) {
	if err := b.ValidateStart(start); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := board.NewVisitedSet(b)
	e := &engine{
		b:       b,
		o:       o,
		tracker: board.NewMobilityTracker(b, visited),
		visited: visited,
		path:    make(board.Path, 0, b.Squares()),
		started: time.Now(),
	}
	if o.TimeLimit > 0 {
		e.deadline = e.started.Add(o.TimeLimit)
		e.useDeadline = true
	}

	success := e.descend(start)

	res := Result{Success: success}
	switch {
	case success:
		res.Path = append(board.Path(nil), e.path...)
	case e.timedOut:
		// The active branch is preserved verbatim: descend stops unwinding
		// once the stop flag is raised.
		res.Path = append(board.Path(nil), e.path...)
	default:
		res.Path = e.best
	}

	res.Stats = Stats{
		Duration:       time.Since(e.started),
		Coverage:       float64(len(res.Path)) / float64(b.Squares()),
		RecursiveCalls: e.recursiveCalls,
		BacktrackCount: e.backtracks,
		ForwardMoves:   e.forwards,
		TimedOut:       e.timedOut,
	}

	return res, nil
}

// engine holds the mutable search state of one run. A dedicated struct
// keeps the recursion signature small and the counters in one place.
type engine struct {
	b           board.Board
	o           Options
	tracker     *board.MobilityTracker
	visited     *board.VisitedSet
	path        board.Path
	best        board.Path // deepest branch snapshot, for exhausted searches
	deadline    time.Time
	started     time.Time
	useDeadline bool
	timedOut    bool

	recursiveCalls int
	backtracks     int
	forwards       int
}

// shouldStop polls the deadline and context sparsely (every 64 calls).
// Once raised, the flag is sticky for the rest of the run.
func (e *engine) shouldStop() bool {
	if e.timedOut {
		return true
	}
	if e.recursiveCalls&deadlineMask != 0 {
		return false
	}
	if e.o.Ctx != nil && e.o.Ctx.Err() != nil {
		e.timedOut = true
	} else if e.useDeadline && time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// candidate pairs a destination with its onward mobility for ordering.
type candidate struct {
	sq  board.Square
	mob int
}

// descend pushes sq and explores its moves in ascending-mobility order.
// Returns true as soon as the path covers the whole board. On a stop the
// method returns false without unwinding, preserving the active branch.
func (e *engine) descend(sq board.Square) bool {
	e.recursiveCalls++
	if e.shouldStop() {
		return false
	}

	e.tracker.Visit(sq)
	e.path = append(e.path, sq)
	e.forwards++

	if len(e.path) > len(e.best) {
		e.best = append(e.best[:0], e.path...)
		e.reportProgress()
	}

	if e.visited.Full() {
		return true
	}

	// Warnsdorff ordering: fewest onward moves first; stable sort keeps
	// canonical offset order on equal mobility (the engine's tie-break).
	// OrderCanonical skips the sort entirely — pure backtracking.
	cands := make([]candidate, 0, board.NumMoves)
	for _, off := range board.MoveOffsets() {
		next := board.Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if e.b.InBounds(next) && !e.visited.Has(next) {
			cands = append(cands, candidate{sq: next, mob: e.tracker.Get(next)})
		}
	}
	if e.o.Ordering == OrderWarnsdorff {
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].mob < cands[j].mob })
	}

	for _, c := range cands {
		if e.descend(c.sq) {
			return true
		}
		if e.timedOut {
			// Keep the active branch intact; no further unwinding.
			return false
		}
	}

	e.backtracks++
	e.tracker.Unvisit(sq)
	e.path = e.path[:len(e.path)-1]

	return false
}

// reportProgress fires the hook at the configured cadence, measured on the
// deepest branch so far to keep percentages monotone.
func (e *engine) reportProgress() {
	if e.o.OnProgress == nil || len(e.best)%progressEvery != 0 {
		return
	}
	pct := 100 * float64(len(e.best)) / float64(e.b.Squares())
	e.o.OnProgress(pct, fmt.Sprintf("exploring move %d/%d", len(e.best), e.b.Squares()))
}
