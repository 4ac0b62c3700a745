package search

import "fmt"

// Move is a token identifying one legal transition. M is always the
// implementing type itself. Reverse returns the move undoing this one
// exactly; it is what turns a solve path into a scramble.
type Move[M any] interface {
	comparable
	Reverse() M
	String() string
}

// Solvable is the contract a puzzle must satisfy to be solved by IDA*.
type Solvable[S any, M Move[M]] interface {
	// IsSolved reports whether this configuration is the solved state.
	IsSolved() bool

	// AvailableMoves lists the legal moves from here. Every returned move
	// must be applicable to this configuration.
	AvailableMoves() []M

	// Apply returns the configuration reached by the given move, which is
	// guaranteed to come from AvailableMoves for this configuration.
	Apply(m M) S

	// MaxFuel is a safe maximum for the search depth. Solve never searches
	// deeper; exceeding it is a hard failure, since for a correctly modeled
	// puzzle it should never occur.
	MaxFuel() int
}

// RedundancyFilter is an optional extension of Solvable. IsRedundant reports
// that next is pointless immediately after last, e.g. a second turn of the
// same face. This only trims the branching factor: rejecting a move pair
// that can occur in an optimal solution makes the solver return wrong
// results, so implementations must be conservative. Absent the extension no
// move is ever considered redundant, which is always safe.
type RedundancyFilter[M any] interface {
	IsRedundant(last, next M) bool
}

// OutOfGasError reports that IDA* exhausted its depth ceiling without
// finding a solution. It signals either a genuinely unreachable state or a
// modeling bug (bad move table, wrong solved state, non-admissible
// heuristic) and is never retried with a larger budget.
type OutOfGasError struct {
	MaxFuel int
}

func (e OutOfGasError) Error() string {
	return fmt.Sprintf("search: no solution within max fuel %d", e.MaxFuel)
}

// Solve runs iterative-deepening A* from the given state and returns a
// shortest move sequence to solved, or an OutOfGasError once the fuel budget
// passes the puzzle's MaxFuel. The heuristic must be admissible; see
// Heuristic.
func Solve[S Solvable[S, M], M Move[M]](state S, h Heuristic[S]) ([]M, error) {
	var isRedundant func(last, next M) bool
	if rf, ok := any(state).(RedundancyFilter[M]); ok {
		isRedundant = rf.IsRedundant
	}
	return SolveWith(state, h, isRedundant)
}

// SolveWith is Solve with an explicit redundancy predicate, overriding any
// RedundancyFilter the puzzle implements. Passing nil disables redundancy
// pruning entirely; the result must be identical either way, only slower.
func SolveWith[S Solvable[S, M], M Move[M]](state S, h Heuristic[S], isRedundant func(last, next M) bool) ([]M, error) {
	maxFuel := state.MaxFuel()

	for fuel := 0; fuel <= maxFuel; fuel++ {
		moves := make([]M, 0, fuel)
		if found, path := dfs(state, h, isRedundant, moves, fuel); found {
			return path, nil
		}
	}

	return nil, OutOfGasError{MaxFuel: maxFuel}
}

// dfs is one depth-first pass of the IDA* outer loop. Because the heuristic
// never overestimates, pruning on heuristic(next)+1 > remaining fuel can
// never discard a branch holding a solution within the current budget, so
// the smallest fuel that succeeds yields a shortest solution.
func dfs[S Solvable[S, M], M Move[M]](state S, h Heuristic[S], isRedundant func(last, next M) bool, moves []M, fuel int) (bool, []M) {
	if state.IsSolved() {
		return true, moves
	}

	for _, m := range state.AvailableMoves() {
		if isRedundant != nil && len(moves) > 0 && isRedundant(moves[len(moves)-1], m) {
			continue
		}

		next := state.Apply(m)

		if h(next)+1 > fuel {
			continue
		}

		if found, path := dfs(next, h, isRedundant, append(moves, m), fuel-1); found {
			return true, path
		}
	}

	return false, nil
}
