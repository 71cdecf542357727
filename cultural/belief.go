package cultural

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/knightour/board"
)

// Belief-space tuning knobs. Fractions follow the learning scheme of the
// cultural algorithm: learn positive knowledge from the strongest quarter
// of a generation, negative knowledge from the weakest tenth.
const (
	topLearnFrac    = 0.25 // top slice contributing success/failure counters
	bottomLearnFrac = 0.10 // bottom slice contributing failure counters only
	poorCoverage    = 0.50 // below this a path is "materially incomplete"
	neutralScore    = 0.5  // prior for unknown transitions and squares
	suggestTopProb  = 0.8  // probability of returning the best suggestion
	suggestPoolSize = 3    // fallback pool: uniform pick among this many best
	stagnationEps   = 1.0  // minimum fitness gain counting as improvement
	stagnationSpan  = 30.0 // counter value mapping to stagnation level 1.0
)

// transition is a directed board edge (from → to).
type transition struct {
	from, to board.Square
}

// tally is a success/failure counter pair. Counters only ever increment,
// so belief knowledge is monotone within a run.
type tally struct {
	success, failure int
}

// EliteEntry is one archived individual: genes, decoded path, fitness.
type EliteEntry struct {
	Genes   Chromosome
	Path    board.Path
	Fitness float64
}

// BeliefSpace is the cross-generation knowledge store of one evolutionary
// run: transition quality, per-square difficulty, a bounded elite archive
// and a stagnation counter. It is constructed by the driver and owned by
// exactly one run — never shared, never a singleton.
type BeliefSpace struct {
	b           board.Board
	goodTour    float64 // coverage threshold marking a "good tour"
	transitions map[transition]*tally
	incoming    map[board.Square]*tally // per-square incoming quality
	elite       []EliteEntry            // sorted descending by fitness
	maxElite    int

	generations int
	stagnation  int
	peak        int
	lastBest    float64
	rng         *rand.Rand
}

// NewBeliefSpace returns an empty belief space for b. goodTour is the
// coverage fraction above which a path's transitions count as successes;
// maxElite bounds the archive; rng drives the suggestion tie-breaks.
func NewBeliefSpace(b board.Board, goodTour float64, maxElite int, rng *rand.Rand) *BeliefSpace {
	return &BeliefSpace{
		b:           b,
		goodTour:    goodTour,
		transitions: make(map[transition]*tally),
		incoming:    make(map[board.Square]*tally),
		elite:       make([]EliteEntry, 0, maxElite),
		maxElite:    maxElite,
		rng:         rng,
	}
}

// Generations returns how many Update calls the space has absorbed.
func (bs *BeliefSpace) Generations() int {
	return bs.generations
}

// Update absorbs one evaluated generation. pop must carry decoded paths
// and fitness values; order does not matter.
//
// Learning scheme:
//   - top ~25% by fitness: each path edge increments success when the
//     path's coverage reaches the good-tour threshold, failure otherwise;
//   - bottom ~10% with materially incomplete paths (<50% coverage):
//     failure only — negative knowledge;
//   - the elite archive absorbs the generation's best entries;
//   - the stagnation counter advances when the generation's best fitness
//     fails to improve on the run best by stagnationEps.
//
// Complexity: O(p log p + p·n²) for p individuals.
func (bs *BeliefSpace) Update(pop Population) {
	if len(pop) == 0 {
		return
	}
	bs.generations++

	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return pop[order[i]].Fitness > pop[order[j]].Fitness
	})

	// Stagnation bookkeeping precedes learning so the counter reflects the
	// generation being absorbed.
	best := pop[order[0]].Fitness
	if best-bs.lastBest < stagnationEps {
		bs.stagnation++
		if bs.stagnation > bs.peak {
			bs.peak = bs.stagnation
		}
	} else {
		bs.stagnation = 0
	}
	if best > bs.lastBest {
		bs.lastBest = best
	}

	squares := float64(bs.b.Squares())

	topCount := int(float64(len(pop))*topLearnFrac + 0.5)
	if topCount < 1 {
		topCount = 1
	}
	for _, idx := range order[:topCount] {
		ind := pop[idx]
		good := float64(len(ind.Path))/squares >= bs.goodTour
		bs.absorbPath(ind.Path, good)
		bs.archive(ind)
	}

	bottomCount := int(float64(len(pop))*bottomLearnFrac + 0.5)
	if bottomCount < 1 {
		bottomCount = 1
	}
	for _, idx := range order[len(order)-bottomCount:] {
		ind := pop[idx]
		if float64(len(ind.Path))/squares < poorCoverage {
			bs.absorbPath(ind.Path, false)
		}
	}
}

// absorbPath increments the counters along every edge of path.
func (bs *BeliefSpace) absorbPath(path board.Path, good bool) {
	for i := 0; i+1 < len(path); i++ {
		tr := transition{from: path[i], to: path[i+1]}
		c := bs.transitions[tr]
		if c == nil {
			c = &tally{}
			bs.transitions[tr] = c
		}
		in := bs.incoming[tr.to]
		if in == nil {
			in = &tally{}
			bs.incoming[tr.to] = in
		}
		if good {
			c.success++
			in.success++
		} else {
			c.failure++
			in.failure++
		}
	}
}

// archive inserts ind into the bounded, fitness-descending elite archive.
// Entries with identical fitness and first edge are considered duplicates.
func (bs *BeliefSpace) archive(ind Individual) {
	for _, e := range bs.elite {
		if e.Fitness == ind.Fitness && len(e.Path) > 1 && len(ind.Path) > 1 &&
			e.Path[0] == ind.Path[0] && e.Path[1] == ind.Path[1] {
			return
		}
	}
	pos := sort.Search(len(bs.elite), func(i int) bool {
		return bs.elite[i].Fitness < ind.Fitness
	})
	if pos >= bs.maxElite {
		return
	}
	entry := EliteEntry{
		Genes:   ind.Genes.Clone(),
		Path:    append(board.Path(nil), ind.Path...),
		Fitness: ind.Fitness,
	}
	bs.elite = append(bs.elite, EliteEntry{})
	copy(bs.elite[pos+1:], bs.elite[pos:])
	bs.elite[pos] = entry
	if len(bs.elite) > bs.maxElite {
		bs.elite = bs.elite[:bs.maxElite]
	}
}

// Elite returns a copy of the archive, sorted descending by fitness.
func (bs *BeliefSpace) Elite() []EliteEntry {
	return append([]EliteEntry(nil), bs.elite...)
}

// TransitionCounts exposes the raw counters of (from → to); zeros when the
// transition was never observed.
func (bs *BeliefSpace) TransitionCounts(from, to board.Square) (success, failure int) {
	if c := bs.transitions[transition{from: from, to: to}]; c != nil {
		return c.success, c.failure
	}

	return 0, 0
}

// TransitionScore rates from → to as success/(success+failure);
// neutralScore when unobserved.
func (bs *BeliefSpace) TransitionScore(from, to board.Square) float64 {
	c := bs.transitions[transition{from: from, to: to}]
	if c == nil || c.success+c.failure == 0 {
		return neutralScore
	}

	return float64(c.success) / float64(c.success+c.failure)
}

// Difficulty rates sq by its incoming transitions:
// failure/(success+failure), neutralScore when unknown. Historically hard
// squares score high and repair steers away from them early in a tour.
func (bs *BeliefSpace) Difficulty(sq board.Square) float64 {
	c := bs.incoming[sq]
	if c == nil || c.success+c.failure == 0 {
		return neutralScore
	}

	return float64(c.failure) / float64(c.success+c.failure)
}

// StagnationLevel maps the stagnation counter to [0,1]; 1.0 means the run
// has not improved for stagnationSpan generations or more.
func (bs *BeliefSpace) StagnationLevel() float64 {
	level := float64(bs.stagnation) / stagnationSpan
	if level > 1 {
		level = 1
	}

	return level
}

// StagnationPeak returns the highest counter value reached during the run.
func (bs *BeliefSpace) StagnationPeak() int {
	return bs.peak
}

// SuggestMove returns the historically best recorded move from `from` to an
// unvisited square. The top candidate is returned with high probability;
// otherwise a uniform pick among the few next-best spreads exploration.
// ok=false when no outgoing transition from `from` was ever recorded.
//
// Complexity: O(8 log 8).
func (bs *BeliefSpace) SuggestMove(from board.Square, visited *board.VisitedSet) (sq board.Square, ok bool) {
	type scored struct {
		sq    board.Square
		score float64
	}
	cands := make([]scored, 0, board.NumMoves)
	for _, to := range bs.b.Targets(from) {
		if visited.Has(to) {
			continue
		}
		c := bs.transitions[transition{from: from, to: to}]
		if c == nil || c.success+c.failure == 0 {
			continue
		}
		cands = append(cands, scored{sq: to, score: float64(c.success) / float64(c.success+c.failure)})
	}
	if len(cands) == 0 {
		return board.Square{}, false
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })

	if len(cands) == 1 || bs.rng.Float64() < suggestTopProb {
		return cands[0].sq, true
	}
	pool := suggestPoolSize
	if pool > len(cands) {
		pool = len(cands)
	}

	return cands[bs.rng.Intn(pool)].sq, true
}
