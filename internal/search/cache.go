package search

// BoundedStateCache is a pattern database: a map from UniqueKey to exact
// distance-from-solved for every state within a fixed search radius of
// solved. Lookups outside the map return the fallback depth, one past the
// build radius, which is still a valid lower bound because the build BFS is
// exhaustive at its depth limit. The cache is immutable after construction
// and safe to share across concurrent solves.
type BoundedStateCache struct {
	stored   map[uint64]int
	fallback int
}

// Fallback is the depth returned for states beyond the build radius.
func (c *BoundedStateCache) Fallback() int { return c.fallback }

// Len is the number of states recorded within the build radius.
func (c *BoundedStateCache) Len() int { return len(c.stored) }

// Cost returns the exact distance from solved for a key within the build
// radius, and the fallback depth otherwise.
func (c *BoundedStateCache) Cost(key uint64) int {
	if d, ok := c.stored[key]; ok {
		return d
	}
	return c.fallback
}

// Known reports the exact distance for a key, if it is within the radius.
func (c *BoundedStateCache) Known(key uint64) (int, bool) {
	d, ok := c.stored[key]
	return d, ok
}

// BuildBoundedCache runs a breadth-first search from the solved state,
// bounded to maxDepth levels, recording every first-seen state's exact
// depth. Every state is recorded regardless of any ConfigCounter the puzzle
// implements: exact distances matter for admissibility, symmetry bookkeeping
// does not.
func BuildBoundedCache[S State[S]](solved S, maxDepth int) *BoundedStateCache {
	stored := make(map[uint64]int)
	seen := make(map[uint64]struct{})

	frontier := []S{solved}
	var next []S
	emit := func(n S) { next = append(next, n) }

	for depth := 0; depth <= maxDepth; depth++ {
		for _, s := range frontier {
			key := s.UniqueKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			stored[key] = depth

			s.Neighbors(emit)
		}

		frontier, next = next, frontier[:0]

		if len(frontier) == 0 {
			Log.WithField("depth", depth).Info("state space exhausted early; cache is exact")
			break
		}
	}

	return &BoundedStateCache{
		stored: stored,
		// the BFS got everything up to maxDepth, so anything missing is
		// strictly farther away
		fallback: maxDepth + 1,
	}
}
