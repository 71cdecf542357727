package walk

import (
	"fmt"
	"time"

	"github.com/katalvlaran/knightour/board"
)

// progressEvery throttles the OnProgress hook to one call per this many moves.
const progressEvery = 5

// Run executes one non-backtracking walk of b from start under policy p.
//
// Loop: enumerate the legal moves from the current square (offset order),
// hand them to p.Choose, advance, repeat. The walk terminates on full
// coverage (Success=true), on the first dead end, or when the soft
// deadline/context fires — the latter two return the partial path with
// Success=false.
//
// Contracts:
//   - p must be non-nil (ErrNilPolicy otherwise).
//   - start must be on the board (board.ErrStartOutOfBounds otherwise).
//
// Complexity: O(n²·8) time, O(n²) memory; at most n²−1 Choose calls.
func Run(b board.Board, start board.Square, p Policy, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilPolicy
	}
	if err := b.ValidateStart(start); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		startedAt = time.Now()
		deadline  time.Time
		visited   = board.NewVisitedSet(b)
		path      = make(board.Path, 0, b.Squares())
		buf       = make([]board.Square, 0, board.NumMoves)
		current   = start
		res       Result
	)
	if o.TimeLimit > 0 {
		deadline = startedAt.Add(o.TimeLimit)
	}

	visited.Visit(current)
	path = append(path, current)

	for !visited.Full() {
		// Cooperative soft stop: at most one step of latency.
		if o.Ctx.Err() != nil || (o.TimeLimit > 0 && time.Now().After(deadline)) {
			res.Stats.TimedOut = true
			break
		}

		buf = b.AppendLegalMoves(buf[:0], current, visited)
		if len(buf) == 0 {
			res.Stats.DeadEnd = true
			break
		}

		current = p.Choose(buf)
		visited.Visit(current)
		path = append(path, current)

		if o.OnProgress != nil && len(path)%progressEvery == 0 {
			pct := 100 * float64(len(path)) / float64(b.Squares())
			o.OnProgress(pct, fmt.Sprintf("visited %d/%d squares", len(path), b.Squares()))
		}
	}

	res.Success = visited.Full()
	res.Path = path
	res.Stats.Duration = time.Since(startedAt)
	res.Stats.Coverage = float64(len(path)) / float64(b.Squares())
	res.Stats.TotalMoves = len(path)

	return res, nil
}
