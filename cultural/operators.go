package cultural

import "github.com/katalvlaran/knightour/board"

// Operator tuning knobs.
const (
	parentPoolFrac    = 0.5  // parents drawn per generation, as a population fraction
	diversitySample   = 10   // individuals sampled for the diversity estimate
	pureRandomProb    = 0.2  // enhanced mutation: chance of an unconstrained gene
	beliefMutateProb  = 0.7  // cultural mutation: chance of a belief-guided gene
	eliteInjectProb   = 0.3  // cultural crossover: chance of elite-tail injection
	stagnationBoost   = 0.3  // mutation-rate bump at full stagnation
	strongStagnation  = 0.5  // level above which mutation widens to 3 genes
	knowledgeBonusPer = 0.01 // selection bonus per absorbed generation (cultural tiers)
)

// diversity estimates population variety as the average fraction of
// differing genes over a small sample of pairs: 0 for a clone army, →1 for
// unrelated chromosomes. Sampling keeps the estimate O(1) in population
// size.
func (e *engine) diversity(pop Population) float64 {
	limit := diversitySample
	if limit > len(pop) {
		limit = len(pop)
	}
	if limit < 2 {
		return 0
	}

	totalDiff, comparisons := 0, 0
	for i := 0; i < limit; i++ {
		for j := i + 1; j < limit; j++ {
			for k := range pop[i].Genes {
				if pop[i].Genes[k] != pop[j].Genes[k] {
					totalDiff++
				}
			}
			comparisons++
		}
	}
	if comparisons == 0 || e.chromLen == 0 {
		return 0
	}

	return float64(totalDiff) / float64(comparisons*e.chromLen)
}

// adjustedScores returns the selection scores: raw fitness, lifted by the
// diversity bonus on tiers ≥2 and by a small knowledge bonus once the
// belief space has absorbed generations (cultural tiers).
func (e *engine) adjustedScores(pop Population) []float64 {
	scores := make([]float64, len(pop))
	bonus := 0.0
	if e.o.Tier >= TierEnhanced {
		bonus += e.diversity(pop) * e.o.DiversityWeight
	}
	if e.belief != nil && e.belief.Generations() >= e.o.WarmupGenerations {
		bonus += float64(e.belief.Generations()) * knowledgeBonusPer
	}
	for i := range pop {
		scores[i] = pop[i].Fitness + bonus
	}

	return scores
}

// tournament samples TournamentSize individuals and returns the index of
// the fittest under scores.
func (e *engine) tournament(pop Population, scores []float64) int {
	best := e.rng.Intn(len(pop))
	for i := 1; i < e.o.TournamentSize; i++ {
		idx := e.rng.Intn(len(pop))
		if scores[idx] > scores[best] {
			best = idx
		}
	}

	return best
}

// selectParents builds the mating pool: the elite head of the generation
// plus tournament winners up to half the population size.
func (e *engine) selectParents(pop Population, order []int) []Chromosome {
	scores := e.adjustedScores(pop)

	poolSize := int(float64(e.o.PopulationSize) * parentPoolFrac)
	if poolSize < 2 {
		poolSize = 2
	}
	parents := make([]Chromosome, 0, poolSize)
	for _, idx := range order[:e.eliteCount()] {
		parents = append(parents, pop[idx].Genes)
	}
	for len(parents) < poolSize {
		parents = append(parents, pop[e.tournament(pop, scores)].Genes)
	}

	return parents
}

// eliteCount is the number of individuals carried unchanged per generation.
func (e *engine) eliteCount() int {
	count := int(float64(e.o.PopulationSize)*e.o.ElitismFrac + 0.5)
	if count < 1 {
		count = 1
	}
	if count > e.o.PopulationSize {
		count = e.o.PopulationSize
	}

	return count
}

// crossover produces two children from p1 and p2 by fixed-length two-point
// exchange. On cultural tiers past the warm-up, with probability
// eliteInjectProb both children instead inherit the tail of an archived
// elite chromosome — direct knowledge injection.
func (e *engine) crossover(p1, p2 Chromosome) (Chromosome, Chromosome) {
	if e.chromLen < 2 {
		return p1.Clone(), p2.Clone()
	}
	e.stats.Crossovers++

	if e.belief != nil && e.belief.Generations() >= e.o.WarmupGenerations {
		if elite := e.belief.Elite(); len(elite) > 0 && e.rng.Float64() < eliteInjectProb {
			best := elite[0].Genes
			point := 1 + e.rng.Intn(e.chromLen-1)
			c1 := append(p1[:point:point].Clone(), best[point:]...)
			c2 := append(p2[:point:point].Clone(), best[point:]...)

			return c1, c2
		}
	}

	point1 := 1 + e.rng.Intn(e.chromLen-1)
	point2 := point1 + e.rng.Intn(e.chromLen-point1) + 1 // (point1, chromLen]

	c1 := make(Chromosome, e.chromLen)
	c2 := make(Chromosome, e.chromLen)
	copy(c1, p1)
	copy(c2, p2)
	copy(c1[point1:point2], p2[point1:point2])
	copy(c2[point1:point2], p1[point1:point2])

	return c1, c2
}

// mutate perturbs a copy of ind's genes according to the tier policy and
// returns it; the caller re-evaluates. A nil return means the gate did not
// fire and the original genes stand.
func (e *engine) mutate(ind Individual) Chromosome {
	rate := e.o.MutationRate
	stagnation := 0.0
	if e.o.Tier == TierAdvanced && e.belief != nil {
		stagnation = e.belief.StagnationLevel()
		rate += stagnationBoost * stagnation
	}
	if e.rng.Float64() > rate || e.chromLen == 0 {
		return nil
	}
	e.stats.Mutations++

	mutated := ind.Genes.Clone()

	numMutations := 1 + e.rng.Intn(2)
	if e.o.Tier == TierSimple || stagnation > strongStagnation {
		numMutations = 1 + e.rng.Intn(3)
	}

	useBelief := e.o.Tier >= TierCultural && e.belief != nil &&
		e.belief.Generations() >= e.o.WarmupGenerations

	for m := 0; m < numMutations; m++ {
		pos := e.rng.Intn(e.chromLen)

		switch {
		case e.o.Tier == TierSimple:
			mutated[pos] = randGene(e.rng)

		case useBelief && e.rng.Float64() < beliefMutateProb:
			mutated[pos] = e.beliefGene(ind, pos)

		case e.rng.Float64() < pureRandomProb:
			mutated[pos] = randGene(e.rng)

		default:
			mutated[pos] = e.differentGene(mutated, pos)
		}
	}

	return mutated
}

// differentGene picks a random symbol avoiding the immediately preceding
// one — straight-line repeats hit walls quickly.
func (e *engine) differentGene(genes Chromosome, pos int) uint8 {
	if pos == 0 {
		return randGene(e.rng)
	}
	prev := genes[pos-1]
	g := uint8(e.rng.Intn(board.NumMoves - 1))
	if g >= prev {
		g++
	}

	return g
}

// beliefGene derives a symbol for position pos from the belief space: it
// replays ind's decoded path up to pos and asks for the historically best
// move from that square. Falls back to the anti-repeat gene when the
// position lies beyond the decoded path or no history exists.
func (e *engine) beliefGene(ind Individual, pos int) uint8 {
	if pos >= len(ind.Path) {
		return e.differentGene(ind.Genes, pos)
	}
	from := ind.Path[pos]
	visited := board.NewVisitedSet(e.b)
	for _, sq := range ind.Path[:pos+1] {
		visited.Visit(sq)
	}
	suggested, ok := e.belief.SuggestMove(from, visited)
	if !ok {
		return e.differentGene(ind.Genes, pos)
	}
	idx := e.b.MoveIndex(from, suggested)
	if idx < 0 {
		return e.differentGene(ind.Genes, pos)
	}

	return uint8(idx)
}
