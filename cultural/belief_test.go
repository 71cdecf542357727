package cultural

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightour/board"
)

// beliefFixture returns a belief space over the 5×5 board plus a population
// shaped for the learning scheme: one complete tour on top, two middling
// prefixes, and a short reversed fragment at the bottom whose edges never
// appear in the forward tour.
func beliefFixture(t *testing.T) (*BeliefSpace, board.Board, board.Path, Population) {
	t.Helper()
	b, full := fullTour5(t)
	bs := NewBeliefSpace(b, 0.7, 2, rngFromSeed(1))

	short := board.Path{full[24], full[23], full[22]}
	pop := Population{
		{Genes: Chromosome{1, 2, 3}, Path: full, Fitness: 100},
		{Path: full[:15], Fitness: 50},
		{Path: full[:12], Fitness: 40},
		{Genes: Chromosome{0, 0, 0}, Path: short, Fitness: 1},
	}

	return bs, b, full, pop
}

func TestBeliefUpdateCounters(t *testing.T) {
	bs, _, full, pop := beliefFixture(t)
	short := pop[3].Path

	bs.Update(pop)

	// Top quarter (one individual): the full tour, at coverage 1.0 ≥ 0.7,
	// credits every edge as a success.
	succ, fail := bs.TransitionCounts(full[0], full[1])
	require.Equal(t, 1, succ)
	require.Equal(t, 0, fail)
	require.Equal(t, 1.0, bs.TransitionScore(full[0], full[1]))

	// Bottom tenth (one individual): 3/25 coverage < 0.5, failure only.
	succ, fail = bs.TransitionCounts(short[0], short[1])
	require.Equal(t, 0, succ)
	require.Equal(t, 1, fail)

	// full[1] is only ever entered successfully.
	require.Equal(t, 0.0, bs.Difficulty(full[1]))

	// Unobserved transitions and squares stay at the neutral prior.
	off := board.Square{Row: 4, Col: 4}
	require.Equal(t, neutralScore, bs.TransitionScore(off, full[0]))
	require.Equal(t, 1, bs.Generations())
}

func TestBeliefStagnation(t *testing.T) {
	bs, _, _, pop := beliefFixture(t)

	bs.Update(pop)
	require.Equal(t, 0.0, bs.StagnationLevel(), "first improvement resets the counter")
	require.Equal(t, 0, bs.StagnationPeak())

	bs.Update(pop) // identical best fitness: no improvement
	require.InDelta(t, 1.0/stagnationSpan, bs.StagnationLevel(), 1e-12)
	require.Equal(t, 1, bs.StagnationPeak())

	bs.Update(pop)
	require.Equal(t, 2, bs.StagnationPeak())
}

func TestBeliefArchive(t *testing.T) {
	bs, _, full, pop := beliefFixture(t)

	bs.Update(pop)
	elite := bs.Elite()
	require.Len(t, elite, 1)
	require.Equal(t, 100.0, elite[0].Fitness)
	require.Equal(t, full[0], elite[0].Path[0])

	// Re-absorbing the identical individual is a duplicate: same fitness,
	// same first edge.
	bs.Update(pop)
	require.Len(t, bs.Elite(), 1)

	// A stronger entry lands in front; the archive stays fitness-descending
	// and bounded.
	pop[0].Fitness = 120
	bs.Update(pop)
	elite = bs.Elite()
	require.Len(t, elite, 2)
	require.Equal(t, 120.0, elite[0].Fitness)
	require.Equal(t, 100.0, elite[1].Fitness)

	pop[0].Fitness = 90 // below both archived entries, archive already full
	bs.Update(pop)
	require.Len(t, bs.Elite(), 2)
	require.Equal(t, 120.0, bs.Elite()[0].Fitness)
}

func TestBeliefSuggestMove(t *testing.T) {
	bs, b, full, pop := beliefFixture(t)

	// No history, no suggestion.
	_, ok := bs.SuggestMove(full[0], board.NewVisitedSet(b))
	require.False(t, ok)

	bs.Update(pop)

	// The only recorded outgoing transition from the tour start is its tour
	// successor.
	sq, ok := bs.SuggestMove(full[0], board.NewVisitedSet(b))
	require.True(t, ok)
	require.Equal(t, full[1], sq)
	require.True(t, board.IsKnightMove(full[0], sq))

	// Visited destinations are filtered out.
	visited := board.NewVisitedSet(b)
	visited.Visit(full[1])
	_, ok = bs.SuggestMove(full[0], visited)
	require.False(t, ok)
}
