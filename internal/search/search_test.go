package search

import "fmt"

// stepMove advances a one-dimensional coordinate puzzle by a signed step.
type stepMove int

func (m stepMove) Reverse() stepMove { return -m }

func (m stepMove) String() string {
	if m > 0 {
		return fmt.Sprintf("+%d", int(m))
	}
	return fmt.Sprintf("%d", int(m))
}

// cyclic is a coordinate on a ring of `size` positions with unit steps in
// both directions. Solved is position zero.
type cyclic struct {
	pos, size int
	fuel      int
}

func newCyclic(size, fuel int) cyclic {
	return cyclic{pos: 0, size: size, fuel: fuel}
}

func (c cyclic) step(d int) cyclic {
	c.pos = ((c.pos+d)%c.size + c.size) % c.size
	return c
}

func (c cyclic) UniqueKey() uint64 { return uint64(c.pos) }

func (c cyclic) Neighbors(emit func(cyclic)) {
	emit(c.step(1))
	emit(c.step(-1))
}

func (c cyclic) IsSolved() bool { return c.pos == 0 }

func (c cyclic) AvailableMoves() []stepMove { return []stepMove{1, -1} }

func (c cyclic) Apply(m stepMove) cyclic { return c.step(int(m)) }

func (c cyclic) MaxFuel() int { return c.fuel }

// IsRedundant rejects immediately undoing the previous step, which can never
// appear in an optimal walk on a ring.
func (c cyclic) IsRedundant(last, next stepMove) bool { return next == -last }

// filteredCyclic is a ring that excludes its last position from the
// configuration counts while still expanding it.
type filteredCyclic struct {
	pos, size int
}

func (c filteredCyclic) step(d int) filteredCyclic {
	c.pos = ((c.pos+d)%c.size + c.size) % c.size
	return c
}

func (c filteredCyclic) UniqueKey() uint64 { return uint64(c.pos) }

func (c filteredCyclic) Neighbors(emit func(filteredCyclic)) {
	emit(c.step(1))
	emit(c.step(-1))
}

func (c filteredCyclic) ShouldCount() bool { return c.pos != c.size-1 }

// line is a coordinate on a path graph, for cache-radius tests: distances
// from solved grow without the wraparound shortcut.
type line struct {
	pos, size int
}

func (l line) UniqueKey() uint64 { return uint64(l.pos) }

func (l line) Neighbors(emit func(line)) {
	if l.pos > 0 {
		emit(line{l.pos - 1, l.size})
	}
	if l.pos < l.size-1 {
		emit(line{l.pos + 1, l.size})
	}
}
