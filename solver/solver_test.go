package solver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/cultural"
	"github.com/katalvlaran/knightour/solver"
)

// SolverSuite exercises the dispatcher: validation, routing and the unified
// result shape.
type SolverSuite struct {
	suite.Suite
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) requireLegalPath(path board.Path, start board.Square) {
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

func (s *SolverSuite) TestValidation() {
	_, err := solver.Solve(0, board.Square{})
	require.ErrorIs(s.T(), err, board.ErrBoardSize)

	_, err = solver.Solve(5, board.Square{Row: 5, Col: 0})
	require.ErrorIs(s.T(), err, board.ErrStartOutOfBounds)

	_, err = solver.Solve(5, board.Square{}, solver.WithStrategy(solver.Strategy(99)))
	require.ErrorIs(s.T(), err, solver.ErrUnknownStrategy)
}

// TestDefaultStrategy: the zero configuration runs the deterministic
// backtracking engine and solves 5×5 from the corner.
func (s *SolverSuite) TestDefaultStrategy() {
	start := board.Square{Row: 0, Col: 0}
	res, err := solver.Solve(5, start)
	require.NoError(s.T(), err)

	require.Equal(s.T(), solver.Backtracking, res.Strategy)
	require.True(s.T(), res.Success)
	require.Len(s.T(), res.Path, 25)
	s.requireLegalPath(res.Path, start)
	require.Greater(s.T(), res.Stats.RecursiveCalls, 0)
	require.InDelta(s.T(), 1.0, res.Stats.Coverage, 1e-12)
	require.Zero(s.T(), res.Stats.GenerationsRun, "evolutionary fields stay zero")
}

// TestOrderedWalkDeterminism: the first-move baseline replays identically.
func (s *SolverSuite) TestOrderedWalkDeterminism() {
	start := board.Square{Row: 0, Col: 0}

	first, err := solver.Solve(5, start, solver.WithStrategy(solver.OrderedWalk))
	require.NoError(s.T(), err)
	s.requireLegalPath(first.Path, start)
	require.InDelta(s.T(), float64(len(first.Path))/25.0, first.Stats.Coverage, 1e-12)

	again, err := solver.Solve(5, start, solver.WithStrategy(solver.OrderedWalk))
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.Path, again.Path)
}

// TestRandomWalkSeeding: one seed replays one walk; walks remain legal.
func (s *SolverSuite) TestRandomWalkSeeding() {
	start := board.Square{Row: 2, Col: 2}

	first, err := solver.Solve(6, start,
		solver.WithStrategy(solver.RandomWalk), solver.WithSeed(42))
	require.NoError(s.T(), err)
	s.requireLegalPath(first.Path, start)

	again, err := solver.Solve(6, start,
		solver.WithStrategy(solver.RandomWalk), solver.WithSeed(42))
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.Path, again.Path)
}

// TestCulturalRouting: tier strategies reach the evolutionary engine and
// surface its statistics; extra overrides pass through.
func (s *SolverSuite) TestCulturalRouting() {
	start := board.Square{Row: 0, Col: 0}

	res, err := solver.Solve(5, start,
		solver.WithStrategy(solver.CulturalTier2),
		solver.WithSeed(7),
		solver.WithCulturalOptions(
			cultural.WithPopulationSize(20),
			cultural.WithGenerations(5),
		),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), solver.CulturalTier2, res.Strategy)
	s.requireLegalPath(res.Path, start)
	require.Greater(s.T(), res.Stats.BestFitness, 0.0)
	require.GreaterOrEqual(s.T(), res.Stats.GenerationsRun, 1)
	require.LessOrEqual(s.T(), res.Stats.GenerationsRun, 5)
	require.Zero(s.T(), res.Stats.RecursiveCalls, "backtracking fields stay zero")
}

// TestCulturalValidationSurfaces: engine-level option errors propagate
// through the dispatcher untouched.
func (s *SolverSuite) TestCulturalValidationSurfaces() {
	_, err := solver.Solve(5, board.Square{},
		solver.WithStrategy(solver.CulturalTier1),
		solver.WithCulturalOptions(cultural.WithPopulationSize(1)),
	)
	require.ErrorIs(s.T(), err, cultural.ErrBadOptions)
}

// TestTimeLimitPassthrough: an expired budget on a large board surfaces as
// a timed-out partial result, not an error.
func (s *SolverSuite) TestTimeLimitPassthrough() {
	res, err := solver.Solve(12, board.Square{Row: 0, Col: 0},
		solver.WithTimeLimit(time.Nanosecond))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Success)
	require.True(s.T(), res.Stats.TimedOut)
	require.NotEmpty(s.T(), res.Path)
}

func (s *SolverSuite) TestStrategyNames() {
	names := map[solver.Strategy]string{
		solver.Backtracking:  "backtracking",
		solver.RandomWalk:    "random-walk",
		solver.OrderedWalk:   "ordered-walk",
		solver.CulturalTier1: "cultural-1",
		solver.CulturalTier2: "cultural-2",
		solver.CulturalTier3: "cultural-3",
		solver.CulturalTier4: "cultural-4",
		solver.Strategy(99):  "unknown",
	}
	for strat, want := range names {
		require.Equal(s.T(), want, strat.String())
	}
}
