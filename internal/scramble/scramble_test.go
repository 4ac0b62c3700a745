package scramble

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubedev/twisty/internal/search"
)

type stepMove int

func (m stepMove) Reverse() stepMove { return -m }

func (m stepMove) String() string {
	if m > 0 {
		return fmt.Sprintf("+%d", int(m))
	}
	return fmt.Sprintf("%d", int(m))
}

// ring is a coordinate on a cycle of `size` positions; solved is zero.
type ring struct {
	pos, size int
	fuel      int
}

func (c ring) step(d int) ring {
	c.pos = ((c.pos+d)%c.size + c.size) % c.size
	return c
}

func (c ring) UniqueKey() uint64 { return uint64(c.pos) }

func (c ring) Neighbors(emit func(ring)) {
	emit(c.step(1))
	emit(c.step(-1))
}

func (c ring) IsSolved() bool { return c.pos == 0 }

func (c ring) AvailableMoves() []stepMove { return []stepMove{1, -1} }

func (c ring) Apply(m stepMove) ring { return c.step(int(m)) }

func (c ring) MaxFuel() int { return c.fuel }

func drawRing(size, fuel int) func(*rand.Rand) ring {
	return func(r *rand.Rand) ring {
		return ring{pos: r.IntN(size), size: size, fuel: fuel}
	}
}

func TestScrambleRoundTrip(t *testing.T) {
	draw := drawRing(9, 9)

	for seed := range uint64(20) {
		r := rand.New(rand.NewPCG(seed, 1))
		moves, err := Scramble[ring, stepMove](r, draw, search.NoHeuristic[ring])
		require.NoError(t, err)

		// applying the scramble to solved must reproduce the drawn state
		want := draw(rand.New(rand.NewPCG(seed, 1)))
		got := ring{pos: 0, size: 9, fuel: 9}
		for _, m := range moves {
			got = got.Apply(m)
		}
		assert.Equal(t, want, got, "seed=%d", seed)
	}
}

func TestScrambleLengthIsOptimal(t *testing.T) {
	draw := drawRing(11, 11)

	for seed := range uint64(20) {
		r := rand.New(rand.NewPCG(seed, 2))
		moves, err := Scramble[ring, stepMove](r, draw, search.NoHeuristic[ring])
		require.NoError(t, err)

		pos := draw(rand.New(rand.NewPCG(seed, 2))).pos
		assert.Len(t, moves, min(pos, 11-pos), "seed=%d", seed)
	}
}

func TestScrambleString(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	out, err := ScrambleString[ring, stepMove](r, drawRing(9, 9), search.NoHeuristic[ring])
	require.NoError(t, err)

	if out != "" {
		assert.Regexp(t, `^[+-]1( [+-]1)*$`, out)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format([]stepMove{}))
	assert.Equal(t, "+1 -1 +1", Format([]stepMove{1, -1, 1}))
}

func TestBulk(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	hist, err := Bulk[ring, stepMove](r, drawRing(9, 9), search.NoHeuristic[ring], 200, 4)
	require.NoError(t, err)

	var total uint64
	for length, count := range hist {
		assert.GreaterOrEqual(t, length, 0)
		assert.LessOrEqual(t, length, 4, "no ring state is farther than size/2")
		total += count
	}
	assert.Equal(t, uint64(200), total)
}

func TestBulkDeterministicSample(t *testing.T) {
	first, err := Bulk[ring, stepMove](rand.New(rand.NewPCG(7, 8)), drawRing(9, 9), search.NoHeuristic[ring], 100, 3)
	require.NoError(t, err)

	again, err := Bulk[ring, stepMove](rand.New(rand.NewPCG(7, 8)), drawRing(9, 9), search.NoHeuristic[ring], 100, 3)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestBulkPropagatesOutOfGas(t *testing.T) {
	// fuel of zero makes every unsolved draw fail
	draw := func(r *rand.Rand) ring {
		return ring{pos: 1 + r.IntN(7), size: 9, fuel: 0}
	}

	_, err := Bulk[ring, stepMove](rand.New(rand.NewPCG(9, 10)), draw, search.NoHeuristic[ring], 20, 4)
	require.Error(t, err)

	var oog search.OutOfGasError
	assert.ErrorAs(t, err, &oog)
	assert.Equal(t, 0, oog.MaxFuel)
}
