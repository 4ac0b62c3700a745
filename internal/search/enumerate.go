// Package search implements the two generic engines at the heart of the
// project: a breadth-first configuration-depth enumerator and an IDA* solver
// with bounded pattern-database heuristics. Both are generic over the puzzle
// type so the hot loops stay monomorphized; the package never imports a
// concrete puzzle.
package search

import (
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// State is the contract a puzzle must satisfy to participate in breadth-first
// enumeration. S is always the implementing type itself.
type State[S any] interface {
	// Neighbors calls emit once per state reachable in a single move.
	Neighbors(emit func(S))

	// UniqueKey is a cheap bit-packed projection of the state used for
	// deduplication and cache lookup. It must be a pure function of the
	// state: two states with equal keys are interchangeable for search.
	UniqueKey() uint64
}

// ConfigCounter is an optional extension of State. A puzzle with a symmetry
// reduction implements it to pick one canonical representative per
// equivalence class; non-canonical states are still expanded by the
// enumerator but excluded from the depth histogram.
type ConfigCounter interface {
	ShouldCount() bool
}

func shouldCount[S any](s S) bool {
	if c, ok := any(s).(ConfigCounter); ok {
		return c.ShouldCount()
	}
	return true
}

// Enumerate explores the full reachable state graph level by level from the
// given start states, deduplicating by UniqueKey, and returns the elapsed
// wall time plus a histogram of new configurations per depth. It terminates
// once a level contributes no new configurations; there is no internal depth
// cutoff.
func Enumerate[S State[S]](starts []S) (time.Duration, Summary) {
	startTime := time.Now()

	counts := make(map[int]uint64)
	seen := make(map[uint64]struct{})

	frontier := make([]S, 0, len(starts))
	frontier = append(frontier, starts...)

	var next []S
	emit := func(n S) { next = append(next, n) }

	for depth := 0; ; depth++ {
		var newConfigs uint64

		for _, s := range frontier {
			key := s.UniqueKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			if shouldCount(s) {
				newConfigs++
			}

			s.Neighbors(emit)
		}

		if newConfigs == 0 {
			break
		}
		counts[depth] = newConfigs

		Log.WithFields(logrus.Fields{
			"depth":    depth,
			"configs":  newConfigs,
			"frontier": len(next),
		}).Debug("enumerated level")

		frontier, next = next, frontier[:0]
	}

	return time.Since(startTime), Summary{Counts: counts}
}
