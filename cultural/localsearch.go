package cultural

// Local-search shape parameters: small bounded neighborhoods around a gene
// position, so one pass stays cheap even on 12×12 chromosomes.
const (
	swapMinGap      = 2  // minimum distance between swapped positions
	swapMaxGap      = 8  // maximum distance between swapped positions
	reverseMinSpan  = 3  // minimum reversed-segment length
	reverseMaxSpan  = 10 // maximum reversed-segment length
	badMoveBiasProb = 0.5
)

// localSearch runs bounded hill-climbing on ind: a fixed number of pairwise
// gene swaps plus half as many short segment reversals, each re-decoded and
// kept only when fitness does not decrease. Swap points are biased toward
// genes the codec had to repair — the "find bad moves" diagnostic — since
// that is where the chromosome disagrees with the board.
//
// Complexity: O(attempts · n²·8) — each probe re-decodes the chromosome.
func (e *engine) localSearch(ind Individual) Individual {
	if e.chromLen < reverseMaxSpan {
		return ind
	}
	e.stats.LocalSearches++
	best := ind

	for attempt := 0; attempt < e.o.LocalSearchAttempts; attempt++ {
		i := e.pickSwapPoint(best)
		maxJ := i + swapMaxGap
		if maxJ > e.chromLen-1 {
			maxJ = e.chromLen - 1
		}
		if i+swapMinGap > maxJ {
			continue
		}
		j := i + swapMinGap + e.rng.Intn(maxJ-i-swapMinGap+1)

		probe := best.Genes.Clone()
		probe[i], probe[j] = probe[j], probe[i]
		best = e.keepIfNotWorse(best, probe)
	}

	for attempt := 0; attempt < e.o.LocalSearchAttempts/2; attempt++ {
		i := 1 + e.rng.Intn(e.chromLen-reverseMinSpan-1)
		maxJ := i + reverseMaxSpan
		if maxJ > e.chromLen-1 {
			maxJ = e.chromLen - 1
		}
		j := i + reverseMinSpan
		if j > maxJ {
			continue
		}
		j += e.rng.Intn(maxJ - j + 1)

		probe := best.Genes.Clone()
		for l, r := i, j; l < r; l, r = l+1, r-1 {
			probe[l], probe[r] = probe[r], probe[l]
		}
		best = e.keepIfNotWorse(best, probe)
	}

	return best
}

// pickSwapPoint chooses the first swap index: with badMoveBiasProb it
// targets a gene the codec repaired during decode, otherwise a uniform
// interior position.
func (e *engine) pickSwapPoint(ind Individual) int {
	if len(ind.repairs) > 0 && e.rng.Float64() < badMoveBiasProb {
		i := ind.repairs[e.rng.Intn(len(ind.repairs))]
		if i >= 1 && i <= e.chromLen-swapMinGap-1 {
			return i
		}
	}

	return 1 + e.rng.Intn(e.chromLen-swapMinGap-1)
}

// keepIfNotWorse evaluates probe and returns whichever of (current, probe)
// wins; equal fitness keeps the probe, letting plateaus drift.
func (e *engine) keepIfNotWorse(current Individual, probe Chromosome) Individual {
	path, repairs := e.codec.decode(probe, e.start)
	fit := fitnessOf(e.o.Tier, e.b, path)
	if fit < current.Fitness {
		return current
	}

	return Individual{Genes: probe, Path: path, Fitness: fit, repairs: repairs}
}
