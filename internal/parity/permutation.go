// Package parity provides permutation and parity helpers for building legal
// random puzzle states. Many twisty puzzles couple the parity of their piece
// permutation to the parity of their orientation vector; these helpers let a
// puzzle draw uniformly random states that respect that coupling.
package parity

import "math/rand/v2"

// Parity is the evenness of a permutation's cycle structure, or of a flip
// vector's count of flipped entries.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// Permutation is a bijection on {0, ..., n-1} stored as an image array:
// p[i] is the image of i.
type Permutation []int

// Identity returns the identity permutation on n elements.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func (p Permutation) Len() int { return len(p) }

func (p Permutation) Apply(i int) int { return p[i] }

// Parity computes the permutation's parity from its cycle decomposition. A
// permutation is odd exactly when it contains an odd number of even-length
// cycles.
func (p Permutation) Parity() Parity {
	seen := make([]bool, len(p))
	odd := false
	for i := range p {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			odd = !odd
		}
	}
	if odd {
		return Odd
	}
	return Even
}

// Compose returns a∘b, the permutation mapping i to a[b[i]].
func Compose(a, b Permutation) Permutation {
	if len(a) != len(b) {
		panic("parity: permutation lengths must match")
	}
	out := make(Permutation, len(a))
	for i := range out {
		out[i] = a[b[i]]
	}
	return out
}

// AnyPermutation returns a uniformly random permutation on n elements.
func AnyPermutation(r *rand.Rand, n int) Permutation {
	p := Identity(n)
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// WithParity returns a uniformly random permutation of the requested parity.
// When the free draw lands in the wrong parity class it is composed with the
// (0 1) transposition, which flips parity without disturbing uniformity
// within the target class. n must be at least 2 for an odd target.
func WithParity(r *rand.Rand, n int, desired Parity) Permutation {
	p := AnyPermutation(r, n)
	if p.Parity() == desired {
		return p
	}
	swap := Identity(n)
	swap[0], swap[1] = swap[1], swap[0]
	return Compose(swap, p)
}

// ShuffleAny shuffles arr arbitrarily and reports the parity of the
// permutation that was applied. The input slice is not modified.
func ShuffleAny[T any](r *rand.Rand, arr []T) ([]T, Parity) {
	p := AnyPermutation(r, len(arr))
	out := make([]T, len(arr))
	for i := range out {
		out[i] = arr[p.Apply(i)]
	}
	return out, p.Parity()
}

// ShuffleWithParity shuffles arr with a permutation of the requested parity.
// The input slice is not modified.
func ShuffleWithParity[T any](r *rand.Rand, arr []T, desired Parity) []T {
	p := WithParity(r, len(arr), desired)
	out := make([]T, len(arr))
	for i := range out {
		out[i] = arr[p.Apply(i)]
	}
	return out
}

// FlipsWithParity returns a random flip vector of length n whose count of
// true entries has the requested parity. The first n-1 entries are drawn
// freely; the last is forced to hit the target.
func FlipsWithParity(r *rand.Rand, n int, desired Parity) []bool {
	if n == 0 {
		if desired == Odd {
			panic("parity: cannot flip an odd number of zero entries")
		}
		return nil
	}

	out := make([]bool, 0, n)
	flipped := 0
	for range n - 1 {
		f := r.IntN(2) == 1
		if f {
			flipped++
		}
		out = append(out, f)
	}

	current := Even
	if flipped%2 == 1 {
		current = Odd
	}
	out = append(out, current != desired)
	return out
}
