// Package scramble turns the solver into a scramble generator: draw a random
// legal state, solve it, and play the solution backwards. The bulk variant
// fans independent solves across a worker pool for statistical sampling of
// solution-length distributions.
package scramble

import (
	"math/rand/v2"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cubedev/twisty/internal/search"
)

var Log = logrus.New()

// progressInterval is how many completed solves pass between bulk progress
// log lines.
const progressInterval = 1000

// Scramble draws a random legal state with draw, solves it back to the
// canonical solved state, and returns the solution reversed with each move
// inverted: a valid scramble sequence starting from solved. The draw
// function is responsible for respecting whatever parity invariants the
// puzzle's state model requires.
func Scramble[S search.Solvable[S, M], M search.Move[M]](r *rand.Rand, draw func(*rand.Rand) S, h search.Heuristic[S]) ([]M, error) {
	state := draw(r)

	solution, err := search.Solve[S, M](state, h)
	if err != nil {
		return nil, err
	}

	// "solved <- scrambled" becomes "scrambled <- solved"
	out := make([]M, len(solution))
	for i, m := range solution {
		out[len(solution)-1-i] = m.Reverse()
	}
	return out, nil
}

// Format renders a move sequence in its human-displayable form, moves
// separated by single spaces.
func Format[M search.Move[M]](moves []M) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ScrambleString is Scramble with the move sequence rendered via Format.
func ScrambleString[S search.Solvable[S, M], M search.Move[M]](r *rand.Rand, draw func(*rand.Rand) S, h search.Heuristic[S]) (string, error) {
	moves, err := Scramble[S, M](r, draw, h)
	if err != nil {
		return "", err
	}
	return Format(moves), nil
}

// Bulk draws n independent random states and solves them across a pool of
// at most `workers` goroutines, returning a solution-length histogram. The
// heuristic is shared read-only across workers; the only other shared state
// is an atomic completion counter used for progress logging. The first
// OutOfGas failure fails the whole batch.
//
// States are drawn up front on the calling goroutine, so a deterministic
// rand source yields a deterministic sample regardless of worker scheduling.
func Bulk[S search.Solvable[S, M], M search.Move[M]](r *rand.Rand, draw func(*rand.Rand) S, h search.Heuristic[S], n, workers int) (map[int]uint64, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	states := make([]S, n)
	for i := range states {
		states[i] = draw(r)
	}

	lengths := make([]int, n)
	var completed atomic.Int64
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(workers)

	for i, s := range states {
		g.Go(func() error {
			solution, err := search.Solve[S, M](s, h)
			if err != nil {
				return err
			}
			lengths[i] = len(solution)

			if c := completed.Add(1); c%progressInterval == 0 {
				elapsed := time.Since(start)
				rate := elapsed / time.Duration(c)
				Log.WithFields(logrus.Fields{
					"solved":    c,
					"elapsed":   elapsed.Round(time.Millisecond),
					"perSolve":  rate.Round(time.Microsecond),
					"pct":       float64(c) / float64(n) * 100,
					"remaining": (time.Duration(int64(n) - c) * rate).Round(time.Second),
				}).Info("bulk scramble progress")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	hist := make(map[int]uint64)
	for _, l := range lengths {
		hist[l]++
	}
	return hist, nil
}
