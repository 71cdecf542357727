package cultural

import (
	"math/rand"

	"github.com/katalvlaran/knightour/board"
)

// Repair scoring weights shared by the escalating policies.
const (
	repairMobilityWeight   = 2.0  // immediate freedom of the candidate
	repairLookaheadWeight  = 1.0  // best onward mobility one ply deeper
	repairDifficultyWeight = 10.0 // penalty for historically hard squares
	repairBeliefWeight     = 5.0  // reward for historically good transitions
	earlyPathLen           = 5    // squares exempt from the mobility gate
	hardSquareCutoff       = 0.7  // difficulty above which early entry is vetoed
)

// codec decodes chromosomes into concrete paths, repairing illegal or
// repeated gene choices with a policy that escalates by tier. One codec is
// shared across a run; per-decode state lives on the stack.
type codec struct {
	b      board.Board
	tier   Tier
	belief *BeliefSpace // nil below TierCultural
	rng    *rand.Rand
}

// decode maps genes to a path from start. Each symbol's offset is applied
// to the current square; an on-board, unvisited, acceptable target is
// taken as-is, anything else goes through repair. Decoding stops early
// only when no legal move exists.
//
// Returned repairs lists the gene indices that needed repair — the
// bad-move diagnostic consumed by local search.
//
// Invariant: the emitted path is always legal and duplicate-free; repair
// alone is responsible for guaranteeing it.
//
// Complexity: O(n²·8) per decode plus tracker initialization.
func (d *codec) decode(genes Chromosome, start board.Square) (path board.Path, repairs []int) {
	visited := board.NewVisitedSet(d.b)
	tracker := board.NewMobilityTracker(d.b, visited)

	path = make(board.Path, 0, d.b.Squares())
	tracker.Visit(start)
	path = append(path, start)
	current := start

	buf := make([]board.Square, 0, board.NumMoves)
	for gi, g := range genes {
		if visited.Full() {
			break
		}

		next := d.b.Apply(current, int(g))
		if d.b.InBounds(next) && !visited.Has(next) && d.acceptable(next, tracker, len(path)) {
			tracker.Visit(next)
			path = append(path, next)
			current = next
			continue
		}

		buf = d.b.AppendLegalMoves(buf[:0], current, visited)
		if len(buf) == 0 {
			break // genuine dead end; nothing to repair toward
		}
		repaired := d.repair(current, buf, tracker)
		repairs = append(repairs, gi)
		tracker.Visit(repaired)
		path = append(path, repaired)
		current = repaired
	}

	return path, repairs
}

// acceptable gates an already-legal decoded move. TierSimple takes any
// legal square; higher tiers refuse squares that leave the knight with no
// onward move (unless the tour is just starting), and TierCultural-level
// knowledge additionally vetoes early entry into historically hard squares.
func (d *codec) acceptable(next board.Square, tracker *board.MobilityTracker, pathLen int) bool {
	if d.tier == TierSimple {
		return true
	}
	// A square's mobility does not count the square itself, so the cached
	// value equals its onward freedom after the knight lands there.
	if tracker.Get(next) > 0 {
		return true
	}
	if pathLen >= earlyPathLen {
		return false
	}
	if d.belief != nil {
		return d.belief.Difficulty(next) < hardSquareCutoff
	}

	return true
}

// repair replaces an unusable gene with a legal destination. valid is
// non-empty, in canonical offset order. Escalation:
//
//	TierSimple   — the first legal move, in canonical offset order.
//	TierEnhanced — maximize 1-ply lookahead: immediate mobility plus the
//	               best onward mobility one move deeper.
//	TierCultural — the enhanced score, discounted by belief-space square
//	               difficulty and boosted by transition quality.
//	TierAdvanced — ascending mobility (Warnsdorff) as the primary key,
//	               belief score as tie-break, weighted-random among ties.
func (d *codec) repair(current board.Square, valid []board.Square, tracker *board.MobilityTracker) board.Square {
	switch d.tier {
	case TierSimple:
		return valid[0]
	case TierEnhanced:
		return d.repairScored(current, valid, tracker, false)
	case TierCultural:
		return d.repairScored(current, valid, tracker, true)
	default:
		return d.repairWarnsdorff(current, valid, tracker)
	}
}

// repairScored maximizes the lookahead score over all candidates;
// withBelief folds in square difficulty and transition quality.
// Deterministic: ties keep offset order.
func (d *codec) repairScored(current board.Square, valid []board.Square, tracker *board.MobilityTracker, withBelief bool) board.Square {
	best, bestScore := valid[0], -1e18
	for _, cand := range valid {
		score := repairMobilityWeight*float64(tracker.Get(cand)) +
			repairLookaheadWeight*float64(d.bestOnward(cand, tracker))
		if withBelief && d.belief != nil {
			score -= repairDifficultyWeight * d.belief.Difficulty(cand)
			score += repairBeliefWeight * d.belief.TransitionScore(current, cand)
		}
		if score > bestScore {
			best, bestScore = cand, score
		}
	}

	return best
}

// repairWarnsdorff orders candidates by ascending mobility, breaking ties
// by belief transition score, and — when belief scores tie too — by a
// weighted-random pick so the advanced tier keeps exploring.
func (d *codec) repairWarnsdorff(current board.Square, valid []board.Square, tracker *board.MobilityTracker) board.Square {
	minMob := tracker.Get(valid[0])
	for _, cand := range valid[1:] {
		if mob := tracker.Get(cand); mob < minMob {
			minMob = mob
		}
	}

	// Collect the mobility-tied front, then rank by belief score.
	front := make([]board.Square, 0, len(valid))
	for _, cand := range valid {
		if tracker.Get(cand) == minMob {
			front = append(front, cand)
		}
	}
	if len(front) == 1 {
		return front[0]
	}

	best, bestScore, tied := front[0], -1.0, 1
	for _, cand := range front {
		var score float64 = neutralScore
		if d.belief != nil {
			score = d.belief.TransitionScore(current, cand)
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = cand, score, 1
		case score == bestScore:
			// Reservoir-style weighted-random tie-break among equals.
			tied++
			if d.rng.Intn(tied) == 0 {
				best = cand
			}
		}
	}

	return best
}

// bestOnward returns the highest mobility among cand's unvisited targets —
// the 1-ply lookahead term of the repair score.
func (d *codec) bestOnward(cand board.Square, tracker *board.MobilityTracker) int {
	best := 0
	for _, to := range d.b.Targets(cand) {
		if tracker.Visited().Has(to) {
			continue
		}
		if mob := tracker.Get(to); mob > best {
			best = mob
		}
	}

	return best
}
