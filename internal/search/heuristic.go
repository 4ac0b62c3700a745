package search

// Heuristic estimates the number of moves remaining to solved. It must be
// admissible: it may never overestimate the true distance, or the solver
// will return wrong answers. Underestimation only costs performance; in
// particular NoHeuristic is always valid.
type Heuristic[S any] func(S) int

// NoHeuristic is the trivial lower bound of zero. Useful for very small
// puzzles, for prototyping, or as a baseline to measure what a real
// heuristic is buying.
func NoHeuristic[S any](S) int {
	return 0
}

// Max combines heuristics by taking the largest of their lower bounds. The
// maximum of admissible heuristics is itself admissible, which is how
// puzzles whose state factors into independent sub-groups combine their
// pattern databases.
func Max[S any](hs ...Heuristic[S]) Heuristic[S] {
	return func(s S) int {
		best := 0
		for _, h := range hs {
			if c := h(s); c > best {
				best = c
			}
		}
		return best
	}
}
