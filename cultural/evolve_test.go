package cultural_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/cultural"
)

// EvolveSuite exercises the evolutionary engine through its public surface.
type EvolveSuite struct {
	suite.Suite
}

func TestEvolveSuite(t *testing.T) {
	suite.Run(t, new(EvolveSuite))
}

// requireLegalPath asserts the decode invariant on a returned path.
func (s *EvolveSuite) requireLegalPath(path board.Path, start board.Square) {
	s.T().Helper()
	require.NotEmpty(s.T(), path)
	require.Equal(s.T(), start, path[0])
	seen := make(map[board.Square]struct{}, len(path))
	for i, sq := range path {
		_, dup := seen[sq]
		require.Falsef(s.T(), dup, "square %v repeated at index %d", sq, i)
		seen[sq] = struct{}{}
		if i > 0 {
			require.Truef(s.T(), board.IsKnightMove(path[i-1], sq),
				"illegal transition %v → %v", path[i-1], sq)
		}
	}
}

func (s *EvolveSuite) TestValidation() {
	b, err := board.New(5)
	require.NoError(s.T(), err)
	start := board.Square{Row: 0, Col: 0}

	_, err = cultural.Evolve(b, start, cultural.WithPopulationSize(1))
	require.ErrorIs(s.T(), err, cultural.ErrBadOptions)

	_, err = cultural.Evolve(b, start, cultural.WithMutationRate(1.5))
	require.ErrorIs(s.T(), err, cultural.ErrBadOptions)

	_, err = cultural.Evolve(b, start, cultural.WithTier(cultural.Tier(9)))
	require.ErrorIs(s.T(), err, cultural.ErrUnknownTier)

	_, err = cultural.Evolve(b, board.Square{Row: 9, Col: 0})
	require.ErrorIs(s.T(), err, board.ErrStartOutOfBounds)
}

// TestSingleSquareBoard: the 1×1 board is solved by the start square alone.
func (s *EvolveSuite) TestSingleSquareBoard() {
	b, err := board.New(1)
	require.NoError(s.T(), err)

	res, err := cultural.Evolve(b, board.Square{})
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)
	require.Len(s.T(), res.Path, 1)
	require.InDelta(s.T(), 1.0, res.Stats.Coverage, 1e-12)
	require.Equal(s.T(), 1, res.Stats.Generations)
}

// TestDeterminism: a fixed seed reproduces the whole trajectory, counters
// included.
func (s *EvolveSuite) TestDeterminism() {
	b, err := board.New(5)
	require.NoError(s.T(), err)
	start := board.Square{Row: 2, Col: 2}
	opts := []cultural.Option{
		cultural.WithTier(cultural.TierEnhanced),
		cultural.WithPopulationSize(20),
		cultural.WithGenerations(10),
		cultural.WithSeed(42),
	}

	first, err := cultural.Evolve(b, start, opts...)
	require.NoError(s.T(), err)

	for i := 0; i < 3; i++ {
		again, err := cultural.Evolve(b, start, opts...)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first.Path, again.Path)
		require.Equal(s.T(), first.Stats.BestFitness, again.Stats.BestFitness)
		require.Equal(s.T(), first.Stats.Generations, again.Stats.Generations)
		require.Equal(s.T(), first.Stats.Crossovers, again.Stats.Crossovers)
		require.Equal(s.T(), first.Stats.Mutations, again.Stats.Mutations)
	}
}

// TestAllTiersProduceLegalPaths runs each tier briefly and checks the
// returned best path against the decode invariant.
func (s *EvolveSuite) TestAllTiersProduceLegalPaths() {
	b, err := board.New(5)
	require.NoError(s.T(), err)
	start := board.Square{Row: 0, Col: 0}

	for _, tier := range []cultural.Tier{
		cultural.TierSimple, cultural.TierEnhanced,
		cultural.TierCultural, cultural.TierAdvanced,
	} {
		res, err := cultural.Evolve(b, start,
			cultural.WithTier(tier),
			cultural.WithPopulationSize(20),
			cultural.WithGenerations(5),
			cultural.WithSeed(3),
		)
		require.NoErrorf(s.T(), err, "tier %s", tier)
		s.requireLegalPath(res.Path, start)
		require.Greater(s.T(), res.Stats.BestFitness, 0.0)
		require.Greater(s.T(), res.Stats.Coverage, 0.0)
		require.LessOrEqual(s.T(), res.Stats.Coverage, 1.0)
	}
}

// TestAdvancedTierCoverage: the Warnsdorff-guided repair should carry a
// random population well past half the 5×5 board within a modest budget.
func (s *EvolveSuite) TestAdvancedTierCoverage() {
	b, err := board.New(5)
	require.NoError(s.T(), err)
	start := board.Square{Row: 0, Col: 0}

	res, err := cultural.Evolve(b, start,
		cultural.WithTier(cultural.TierAdvanced),
		cultural.WithPopulationSize(40),
		cultural.WithGenerations(30),
		cultural.WithSeed(7),
		cultural.WithTimeLimit(30*time.Second),
	)
	require.NoError(s.T(), err)
	s.requireLegalPath(res.Path, start)
	require.GreaterOrEqual(s.T(), res.Stats.Coverage, 0.5)
	require.Greater(s.T(), res.Stats.Crossovers, 0)
}

// TestExpiredDeadline: an already-expired budget stops after the first
// generation with a partial best and the TimedOut flag raised.
func (s *EvolveSuite) TestExpiredDeadline() {
	b, err := board.New(6)
	require.NoError(s.T(), err)

	res, err := cultural.Evolve(b, board.Square{Row: 0, Col: 0},
		cultural.WithGenerations(50),
		cultural.WithSeed(5),
		cultural.WithTimeLimit(time.Nanosecond),
	)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Stats.TimedOut)
	require.Equal(s.T(), 1, res.Stats.Generations)
	require.False(s.T(), res.Success)
	require.NotEmpty(s.T(), res.Path)
}

// TestContextCancellation: a canceled context behaves like an expired
// deadline.
func (s *EvolveSuite) TestContextCancellation() {
	b, err := board.New(6)
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := cultural.Evolve(b, board.Square{Row: 0, Col: 0},
		cultural.WithContext(ctx),
		cultural.WithTimeLimit(0),
	)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Stats.TimedOut)
	require.Equal(s.T(), 1, res.Stats.Generations)
}

// TestProgressHook verifies bounded, labeled progress reports.
func (s *EvolveSuite) TestProgressHook() {
	b, err := board.New(5)
	require.NoError(s.T(), err)

	fired := 0
	_, err = cultural.Evolve(b, board.Square{Row: 0, Col: 0},
		cultural.WithPopulationSize(20),
		cultural.WithGenerations(20),
		cultural.WithOnProgress(func(pct float64, msg string) {
			require.GreaterOrEqual(s.T(), pct, 0.0)
			require.LessOrEqual(s.T(), pct, 100.0)
			require.NotEmpty(s.T(), msg)
			fired++
		}),
	)
	require.NoError(s.T(), err)
	require.Greater(s.T(), fired, 0, "hook should have fired at least once")
}
