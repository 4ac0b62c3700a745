package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/cubedev/twisty/internal/puzzles"
	"github.com/cubedev/twisty/internal/scramble"
	"github.com/cubedev/twisty/internal/search"
)

// puzzle binds one puzzle's generic operations behind plain function values
// so the commands can dispatch by name. Scrambling needs a way to draw a
// uniformly random state; puzzles without one leave scramble and bulk nil.
type puzzle struct {
	name      string
	about     string
	enumerate func() (time.Duration, search.Summary)
	scramble  func(r *rand.Rand, cacheDepth int) (string, error)
	bulk      func(r *rand.Rand, cacheDepth, count, workers int) (map[int]uint64, error)
}

func floppy133Heuristic(cacheDepth int) search.Heuristic[puzzles.Floppy133] {
	cache := search.BuildBoundedCache(puzzles.SolvedFloppy133(), cacheDepth)
	return func(s puzzles.Floppy133) int {
		return cache.Cost(s.UniqueKey())
	}
}

var registry = []puzzle{
	{
		name:  "floppy-1x2x2",
		about: "two-corner sliver of the floppy cube, six configurations",
		enumerate: func() (time.Duration, search.Summary) {
			return search.Enumerate([]puzzles.Floppy122{puzzles.SolvedFloppy122()})
		},
		scramble: func(r *rand.Rand, _ int) (string, error) {
			return scramble.ScrambleString[puzzles.Floppy122, puzzles.FloppyMove](
				r, puzzles.RandomFloppy122, search.NoHeuristic)
		},
		bulk: func(r *rand.Rand, _, count, workers int) (map[int]uint64, error) {
			return scramble.Bulk[puzzles.Floppy122, puzzles.FloppyMove](
				r, puzzles.RandomFloppy122, search.NoHeuristic, count, workers)
		},
	},
	{
		name:  "floppy-1x2x3",
		about: "half a floppy cube with one flippable edge",
		enumerate: func() (time.Duration, search.Summary) {
			return search.Enumerate([]puzzles.Floppy123{puzzles.SolvedFloppy123()})
		},
	},
	{
		name:  "floppy-1x3x3",
		about: "the full floppy cube, 192 configurations",
		enumerate: func() (time.Duration, search.Summary) {
			return search.Enumerate([]puzzles.Floppy133{puzzles.SolvedFloppy133()})
		},
		scramble: func(r *rand.Rand, cacheDepth int) (string, error) {
			return scramble.ScrambleString[puzzles.Floppy133, puzzles.FloppyMove](
				r, puzzles.RandomFloppy133, floppy133Heuristic(cacheDepth))
		},
		bulk: func(r *rand.Rand, cacheDepth, count, workers int) (map[int]uint64, error) {
			return scramble.Bulk[puzzles.Floppy133, puzzles.FloppyMove](
				r, puzzles.RandomFloppy133, floppy133Heuristic(cacheDepth), count, workers)
		},
	},
	{
		name:  "pocket-cube",
		about: "the 2x2x2 cube, 3674160 configurations",
		enumerate: func() (time.Duration, search.Summary) {
			return search.Enumerate([]puzzles.PocketCube{puzzles.SolvedPocketCube()})
		},
		scramble: func(r *rand.Rand, cacheDepth int) (string, error) {
			return scramble.ScrambleString[puzzles.PocketCube, puzzles.CubeMove](
				r, puzzles.RandomPocketCube, puzzles.NewPocketCubeHeuristic(cacheDepth))
		},
		bulk: func(r *rand.Rand, cacheDepth, count, workers int) (map[int]uint64, error) {
			return scramble.Bulk[puzzles.PocketCube, puzzles.CubeMove](
				r, puzzles.RandomPocketCube, puzzles.NewPocketCubeHeuristic(cacheDepth), count, workers)
		},
	},
	{
		name:  "mirror-pocket-cube",
		about: "shape-modded pocket cube, counted up to whole-cube rotation",
		enumerate: func() (time.Duration, search.Summary) {
			return search.Enumerate([]puzzles.MirrorPocketCube{puzzles.SolvedMirrorPocketCube()})
		},
	},
}

func findPuzzle(name string) (puzzle, error) {
	for _, p := range registry {
		if p.name == name {
			return p, nil
		}
	}
	return puzzle{}, fmt.Errorf("unknown puzzle %q, see 'twisty list'", name)
}

func formatLengths(lengths map[int]uint64) string {
	keys := make([]int, 0, len(lengths))
	var total uint64
	for k, v := range lengths {
		keys = append(keys, k)
		total += v
	}
	sort.Ints(keys)

	out := fmt.Sprintf("Solved %d scrambles.\n", total)
	for _, k := range keys {
		out += fmt.Sprintf("\t%d moves: %d scrambles (%0.3f %%)\n",
			k, lengths[k], float64(lengths[k])/float64(total)*100)
	}
	return out
}
