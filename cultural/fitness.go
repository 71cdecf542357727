package cultural

import "github.com/katalvlaran/knightour/board"

// Fitness weights per tier. The escalation mirrors the tiers themselves:
// the simple tier only values coverage and legality; the enhanced tiers
// reward keeping options open; the advanced tier adds structural bonuses
// and a large completion prize.
const (
	simpleUniqueWeight = 10.0
	simpleLegalWeight  = 5.0

	enhancedMobilityWeight = 2.0
	enhancedRepeatPenalty  = 5.0

	advancedUniqueWeight    = 20.0
	advancedLegalWeight     = 10.0
	advancedRunWeight       = 4.0
	advancedLowMobWeight    = 5.0
	advancedRepeatPenalty   = 15.0
	advancedCompletionBonus = 500.0

	lowMobilityCutoff = 2 // "low-degree" squares per Warnsdorff intuition
)

// pathTraits are the measurable features fitness is built from. One walk
// over the path computes them all.
type pathTraits struct {
	unique      int     // distinct squares (the codec guarantees all are)
	legal       int     // consecutive pairs forming a knight move
	repeats     int     // duplicated squares; 0 for codec output, kept as a guard
	runTotal    int     // summed lengths of maximal legal-move runs
	lowMobility int     // squares entered with ≤ lowMobilityCutoff onward moves
	avgMobility float64 // average onward mobility over the visit sequence
}

// measure walks path once, replaying the visit sequence to evaluate the
// mobility each square had at the moment it was entered.
//
// Complexity: O(|path|·8).
func measure(b board.Board, path board.Path) pathTraits {
	var t pathTraits
	if len(path) == 0 {
		return t
	}

	visited := board.NewVisitedSet(b)
	seen := make(map[board.Square]int, len(path))
	totalMobility := 0
	run := 1

	for i, sq := range path {
		visited.Visit(sq)
		seen[sq]++

		mob := b.Mobility(sq, visited)
		totalMobility += mob
		if mob <= lowMobilityCutoff {
			t.lowMobility++
		}

		if i+1 < len(path) {
			if board.IsKnightMove(sq, path[i+1]) {
				t.legal++
				run++
			} else {
				t.runTotal += run
				run = 1
			}
		}
	}
	t.runTotal += run

	t.unique = len(seen)
	t.repeats = len(path) - t.unique
	t.avgMobility = float64(totalMobility) / float64(len(path))

	return t
}

// fitnessOf scores a decoded path under tier t. Higher is better; scores
// are comparable only within one tier.
func fitnessOf(tier Tier, b board.Board, path board.Path) float64 {
	if len(path) == 0 {
		return 0
	}
	tr := measure(b, path)

	switch tier {
	case TierSimple:
		return simpleUniqueWeight*float64(tr.unique) + simpleLegalWeight*float64(tr.legal)

	case TierEnhanced, TierCultural:
		// TierCultural's novelty is belief-guided variation, not scoring;
		// it shares the enhanced formula.
		return simpleUniqueWeight*float64(tr.unique) +
			simpleLegalWeight*float64(tr.legal) +
			enhancedMobilityWeight*tr.avgMobility -
			enhancedRepeatPenalty*float64(tr.repeats)

	default: // TierAdvanced
		score := advancedUniqueWeight*float64(tr.unique) +
			advancedLegalWeight*float64(tr.legal) +
			advancedRunWeight*float64(tr.runTotal) +
			enhancedMobilityWeight*tr.avgMobility +
			advancedLowMobWeight*float64(tr.lowMobility) -
			advancedRepeatPenalty*float64(tr.repeats)
		if tr.unique == b.Squares() {
			score += advancedCompletionBonus
		}

		return score
	}
}
