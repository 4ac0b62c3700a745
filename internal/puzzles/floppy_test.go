package puzzles

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubedev/twisty/internal/scramble"
	"github.com/cubedev/twisty/internal/search"
)

// solvableState is what the test helpers need: a puzzle that supports both
// enumeration and solving.
type solvableState[S any, M search.Move[M]] interface {
	search.Solvable[S, M]
	search.State[S]
}

type stateDepth[S any] struct {
	state S
	depth int
}

// allDepths walks the full reachable state space breadth-first using the
// solver's own move table and records every state with its true distance
// from solved.
func allDepths[S solvableState[S, M], M search.Move[M]](solved S) []stateDepth[S] {
	seen := make(map[uint64]struct{})
	var out []stateDepth[S]

	frontier := []S{solved}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []S
		for _, s := range frontier {
			key := s.UniqueKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, stateDepth[S]{s, depth})

			for _, m := range s.AvailableMoves() {
				next = append(next, s.Apply(m))
			}
		}
		frontier = next
	}
	return out
}

func TestFloppy122Histogram(t *testing.T) {
	_, summary := search.Enumerate([]Floppy122{SolvedFloppy122()})

	assert.Equal(t, map[int]uint64{0: 1, 1: 2, 2: 2, 3: 1}, summary.Counts)
	assert.Equal(t, uint64(6), summary.Total())
}

func TestFloppy133Histogram(t *testing.T) {
	_, summary := search.Enumerate([]Floppy133{SolvedFloppy133()})

	// the floppy cube's well-known configuration count
	assert.Equal(t, uint64(192), summary.Total())
	assert.Equal(t, uint64(1), summary.Counts[0])
	assert.Equal(t, uint64(4), summary.Counts[1])
}

func TestFloppy123Histogram(t *testing.T) {
	_, first := search.Enumerate([]Floppy123{SolvedFloppy123()})
	_, again := search.Enumerate([]Floppy123{SolvedFloppy123()})

	assert.Equal(t, first.Counts, again.Counts)
	assert.Equal(t, uint64(1), first.Counts[0])
	assert.Equal(t, uint64(3), first.Counts[1])

	// every state found by the solver-side walk is in the histogram
	assert.Equal(t, uint64(len(allDepths[Floppy123, FloppyMove](SolvedFloppy123()))), first.Total())
}

func TestFloppy122SolveOptimal(t *testing.T) {
	for _, sd := range allDepths[Floppy122, FloppyMove](SolvedFloppy122()) {
		moves, err := search.Solve[Floppy122, FloppyMove](sd.state, search.NoHeuristic[Floppy122])
		require.NoError(t, err)
		assert.Len(t, moves, sd.depth)
	}
}

func TestFloppy123SolveOptimal(t *testing.T) {
	for _, sd := range allDepths[Floppy123, FloppyMove](SolvedFloppy123()) {
		moves, err := search.Solve[Floppy123, FloppyMove](sd.state, search.NoHeuristic[Floppy123])
		require.NoError(t, err)
		assert.Len(t, moves, sd.depth)
	}
}

func TestFloppy133SolveOptimal(t *testing.T) {
	cache := search.BuildBoundedCache(SolvedFloppy133(), 4)
	h := func(f Floppy133) int { return cache.Cost(f.UniqueKey()) }

	for _, sd := range allDepths[Floppy133, FloppyMove](SolvedFloppy133()) {
		moves, err := search.Solve[Floppy133, FloppyMove](sd.state, h)
		require.NoError(t, err)
		assert.Len(t, moves, sd.depth, "state key %d", sd.state.UniqueKey())

		// and the solution actually solves the state
		s := sd.state
		for _, m := range moves {
			s = s.Apply(m)
		}
		assert.True(t, s.IsSolved())
	}
}

func TestFloppyRedundancyPruningSafety(t *testing.T) {
	for _, sd := range allDepths[Floppy133, FloppyMove](SolvedFloppy133()) {
		pruned, err := search.Solve[Floppy133, FloppyMove](sd.state, search.NoHeuristic[Floppy133])
		require.NoError(t, err)

		unpruned, err := search.SolveWith[Floppy133, FloppyMove](sd.state, search.NoHeuristic[Floppy133], nil)
		require.NoError(t, err)

		assert.Equal(t, len(unpruned), len(pruned))
	}
}

func TestFloppy133CacheAdmissible(t *testing.T) {
	const radius = 3
	cache := search.BuildBoundedCache(SolvedFloppy133(), radius)

	for _, sd := range allDepths[Floppy133, FloppyMove](SolvedFloppy133()) {
		cost := cache.Cost(sd.state.UniqueKey())
		if sd.depth <= radius {
			assert.Equal(t, sd.depth, cost)
		} else {
			assert.Equal(t, radius+1, cost)
			assert.LessOrEqual(t, cost, sd.depth)
		}
	}
}

func TestRandomFloppy133RespectsParityCoupling(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		f := RandomFloppy133(r)

		flips := 0
		for _, e := range []EdgeOrientation{f.uc, f.dc, f.lc, f.rc} {
			if e == EdgeFlipped {
				flips++
			}
		}

		perm := []int{int(f.ul), int(f.ur), int(f.dl), int(f.dr)}
		inversions := 0
		for i := range perm {
			for j := i + 1; j < len(perm); j++ {
				if perm[i] > perm[j] {
					inversions++
				}
			}
		}

		assert.Equal(t, inversions%2, flips%2)
	}
}

func TestFloppyScrambleRoundTrip(t *testing.T) {
	for seed := range uint64(30) {
		r := rand.New(rand.NewPCG(seed, 7))
		moves, err := scramble.Scramble[Floppy133, FloppyMove](r, RandomFloppy133, search.NoHeuristic[Floppy133])
		require.NoError(t, err)

		want := RandomFloppy133(rand.New(rand.NewPCG(seed, 7)))
		got := SolvedFloppy133()
		for _, m := range moves {
			got = got.Apply(m)
		}
		assert.Equal(t, want, got, "seed=%d", seed)
	}
}

func TestFloppy122ScrambleSolvable(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	hist, err := scramble.Bulk[Floppy122, FloppyMove](r, RandomFloppy122, search.NoHeuristic[Floppy122], 100, 4)
	require.NoError(t, err)

	var total uint64
	for length, count := range hist {
		assert.LessOrEqual(t, length, 3, "no 1x2x2 state is farther than three moves")
		total += count
	}
	assert.Equal(t, uint64(100), total)
}
