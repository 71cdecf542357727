package cultural

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/knightour/board"
)

// Driver cadence knobs.
const (
	progressEveryGens = 5 // OnProgress cadence, in generations

	goodTourCultural = 0.70 // "good tour" coverage threshold, TierCultural
	goodTourAdvanced = 0.80 // stricter threshold for the advanced tier

	localSearchElite = 2 // individuals refined per local-search round

	diversityInjectEvery = 15  // generation period of the diversity check
	diversityInjectAfter = 30  // first generation eligible for injection
	diversityFloor       = 0.3 // below this, fresh blood is injected
	diversityReplaceFrac = 0.2 // population fraction replaced on injection
)

// Evolve runs one evolutionary solve of b from start.
//
// Lifecycle: INIT (random population) → EVALUATE (decode + fitness) →
// UPDATE_BELIEF (cultural tiers) → CHECK_TERMINATION (full coverage,
// generation budget, soft deadline or context) → periodic LOCAL_SEARCH
// (advanced tier) → REPRODUCE (elitism + selection + crossover + mutation)
// → EVALUATE …
//
// The best-ever individual is retained outside the population, so it
// survives generation replacement; both terminal states yield a Result.
//
// Contracts:
//   - start must be on the board (board.ErrStartOutOfBounds otherwise).
//   - Options must validate (ErrBadOptions / ErrUnknownTier otherwise).
//   - Fixed Seed ⇒ identical fitness trajectory and identical Result.
func Evolve(b board.Board, start board.Square, opts ...Option) (Result, error) {
	o := DefaultOptions(TierSimple)
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if err := b.ValidateStart(start); err != nil {
		return Result{}, err
	}

	e := newEngine(b, start, o)

	return e.run(), nil
}

// engine bundles the per-run state: options, RNG, codec, belief space and
// counters. One engine serves exactly one run.
type engine struct {
	b        board.Board
	o        Options
	start    board.Square
	rng      *rand.Rand
	chromLen int
	codec    *codec
	belief   *BeliefSpace // nil below TierCultural

	best     Individual
	hasBest  bool
	stats    Stats
	started  time.Time
	deadline time.Time
	useDL    bool
	timedOut bool
}

func newEngine(b board.Board, start board.Square, o Options) *engine {
	e := &engine{
		b:        b,
		o:        o,
		start:    start,
		rng:      rngFromSeed(o.Seed),
		chromLen: b.Squares() - 1,
		started:  time.Now(),
	}
	if o.TimeLimit > 0 {
		e.deadline = e.started.Add(o.TimeLimit)
		e.useDL = true
	}
	if o.Tier >= TierCultural {
		threshold := goodTourCultural
		if o.Tier == TierAdvanced {
			threshold = goodTourAdvanced
		}
		e.belief = NewBeliefSpace(b, threshold, o.EliteArchiveSize, e.rng)
	}
	e.codec = &codec{b: b, tier: o.Tier, belief: e.belief, rng: e.rng}

	return e
}

// run executes the generation loop and assembles the Result.
func (e *engine) run() Result {
	pop := e.initPopulation()

	for gen := 0; gen < e.o.Generations; gen++ {
		e.evaluate(pop)
		e.stats.Generations = gen + 1

		order := fitnessOrder(pop)
		e.trackBest(pop[order[0]])

		if e.belief != nil {
			e.belief.Update(pop)
		}

		if e.solved() {
			break
		}
		if e.stopped() {
			e.timedOut = true
			break
		}

		if e.localSearchDue(gen) {
			for i := 0; i < localSearchElite && i < len(order); i++ {
				refined := e.localSearch(pop[order[i]])
				pop[order[i]] = refined
				e.trackBest(refined)
			}
		}

		if e.diversityInjectionDue(gen, pop) {
			e.injectDiversity(pop, order)
		}

		e.reportProgress(gen)
		pop = e.reproduce(pop, order)
	}

	return e.result()
}

// initPopulation builds PopulationSize random individuals (not yet evaluated).
func (e *engine) initPopulation() Population {
	pop := make(Population, e.o.PopulationSize)
	for i := range pop {
		pop[i] = Individual{Genes: randChromosome(e.rng, e.chromLen)}
	}

	return pop
}

// evaluate decodes and scores every individual lacking a path. Elite
// carry-overs keep their previous evaluation.
func (e *engine) evaluate(pop Population) {
	for i := range pop {
		if pop[i].Path != nil {
			continue
		}
		path, repairs := e.codec.decode(pop[i].Genes, e.start)
		pop[i].Path = path
		pop[i].repairs = repairs
		pop[i].Fitness = fitnessOf(e.o.Tier, e.b, path)
	}
}

// fitnessOrder returns population indices sorted descending by fitness;
// the stable sort keeps index order on ties for reproducibility.
func fitnessOrder(pop Population) []int {
	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return pop[order[i]].Fitness > pop[order[j]].Fitness
	})

	return order
}

// trackBest retains the best-ever individual outside the population.
func (e *engine) trackBest(ind Individual) {
	if !e.hasBest || ind.Fitness > e.best.Fitness {
		e.best = Individual{
			Genes:   ind.Genes.Clone(),
			Path:    append(board.Path(nil), ind.Path...),
			Fitness: ind.Fitness,
			repairs: append([]int(nil), ind.repairs...),
		}
		e.hasBest = true
	}
}

// solved reports whether the best-ever path covers the whole board.
func (e *engine) solved() bool {
	return e.hasBest && len(e.best.Path) == e.b.Squares()
}

// stopped polls the soft deadline and context once per generation.
func (e *engine) stopped() bool {
	if e.o.Ctx != nil && e.o.Ctx.Err() != nil {
		return true
	}

	return e.useDL && time.Now().After(e.deadline)
}

// localSearchDue gates the periodic elite refinement: advanced tier only,
// past the warm-up, at the configured cadence.
func (e *engine) localSearchDue(gen int) bool {
	return e.o.Tier == TierAdvanced &&
		gen > e.o.WarmupGenerations &&
		gen%e.o.LocalSearchEvery == 0
}

// diversityInjectionDue checks the advanced tier's premature-convergence
// guard.
func (e *engine) diversityInjectionDue(gen int, pop Population) bool {
	return e.o.Tier == TierAdvanced &&
		gen > diversityInjectAfter &&
		gen%diversityInjectEvery == 0 &&
		e.diversity(pop) < diversityFloor
}

// injectDiversity replaces the weakest fifth of the population with fresh
// random individuals (evaluated lazily next EVALUATE).
func (e *engine) injectDiversity(pop Population, order []int) {
	replace := int(float64(len(pop))*diversityReplaceFrac + 0.5)
	if replace < 1 {
		replace = 1
	}
	for i := 0; i < replace; i++ {
		idx := order[len(order)-1-i]
		pop[idx] = Individual{Genes: randChromosome(e.rng, e.chromLen)}
	}
}

// reproduce assembles the next generation: elite carry-over, then
// crossover + mutation over tournament-selected parents.
func (e *engine) reproduce(pop Population, order []int) Population {
	parents := e.selectParents(pop, order)

	next := make(Population, 0, e.o.PopulationSize)
	for _, idx := range order[:e.eliteCount()] {
		next = append(next, pop[idx]) // evaluated; carried unchanged
	}

	for len(next) < e.o.PopulationSize {
		p1 := parents[e.rng.Intn(len(parents))]
		p2 := parents[e.rng.Intn(len(parents))]
		c1, c2 := e.crossover(p1, p2)

		next = append(next, e.offspring(c1))
		if len(next) < e.o.PopulationSize {
			next = append(next, e.offspring(c2))
		}
	}

	return next
}

// offspring wraps genes into an unevaluated individual, applying mutation.
// Mutation needs the decoded path for belief guidance, so the child is
// decoded first when a cultural tier may consult it.
func (e *engine) offspring(genes Chromosome) Individual {
	child := Individual{Genes: genes}
	if e.o.Tier >= TierCultural {
		// Belief-guided mutation replays the decoded path; evaluate now.
		path, repairs := e.codec.decode(genes, e.start)
		child.Path = path
		child.repairs = repairs
		child.Fitness = fitnessOf(e.o.Tier, e.b, path)
	}
	if mutated := e.mutate(child); mutated != nil {
		// Genes changed; drop the stale evaluation.
		child = Individual{Genes: mutated}
	}

	return child
}

// reportProgress fires the hook at the generation cadence.
func (e *engine) reportProgress(gen int) {
	if e.o.OnProgress == nil || gen%progressEveryGens != 0 {
		return
	}
	pct := 100 * float64(gen) / float64(e.o.Generations)
	e.o.OnProgress(pct, fmt.Sprintf("generation %d/%d (%s tier), best fitness %.1f",
		gen, e.o.Generations, e.o.Tier, e.best.Fitness))
}

// result assembles the terminal Result from the best-ever individual.
func (e *engine) result() Result {
	res := Result{
		Success: e.solved(),
		Path:    e.best.Path,
	}
	res.Stats = e.stats
	res.Stats.Duration = time.Since(e.started)
	res.Stats.Coverage = float64(len(e.best.Path)) / float64(e.b.Squares())
	res.Stats.BestFitness = e.best.Fitness
	res.Stats.TimedOut = e.timedOut
	if e.belief != nil {
		res.Stats.StagnationPeak = e.belief.StagnationPeak()
	}

	return res
}
