package puzzles

import (
	"math/rand/v2"

	"github.com/cubedev/twisty/internal/parity"
)

// floppy122Corner identifies one of the three movable corner cubelets of the
// 1x2x2 floppy; the fourth position does not exist on this shape.
type floppy122Corner uint8

const (
	f122UL floppy122Corner = iota
	f122UR
	f122DR
)

// Floppy122 is the 1x2x2 floppy: three corner cubelets shuffled by the U2
// and R2 half turns. Six configurations in total.
type Floppy122 struct {
	ul, ur, dr floppy122Corner
}

func SolvedFloppy122() Floppy122 {
	return Floppy122{ul: f122UL, ur: f122UR, dr: f122DR}
}

// RandomFloppy122 draws a uniformly random configuration. The two
// transpositions generate the full symmetric group on three pieces, so every
// arrangement is reachable and no parity constraint applies.
func RandomFloppy122(r *rand.Rand) Floppy122 {
	pieces, _ := parity.ShuffleAny(r, []floppy122Corner{f122UL, f122UR, f122DR})
	return Floppy122{ul: pieces[0], ur: pieces[1], dr: pieces[2]}
}

func (f Floppy122) u2() Floppy122 {
	f.ul, f.ur = f.ur, f.ul
	return f
}

func (f Floppy122) r2() Floppy122 {
	f.ur, f.dr = f.dr, f.ur
	return f
}

// UniqueKey packs the three cubelet identities into two bits each.
func (f Floppy122) UniqueKey() uint64 {
	return uint64(f.ul) | uint64(f.ur)<<2 | uint64(f.dr)<<4
}

func (f Floppy122) Neighbors(emit func(Floppy122)) {
	emit(f.u2())
	emit(f.r2())
}

func (f Floppy122) IsSolved() bool { return f == SolvedFloppy122() }

func (f Floppy122) AvailableMoves() []FloppyMove {
	return []FloppyMove{FloppyU2, FloppyR2}
}

func (f Floppy122) Apply(m FloppyMove) Floppy122 {
	switch m {
	case FloppyU2:
		return f.u2()
	case FloppyR2:
		return f.r2()
	default:
		panic("floppy 1x2x2: move not available: " + m.String())
	}
}

// IsRedundant rejects repeating a half turn, which cancels itself.
func (f Floppy122) IsRedundant(last, next FloppyMove) bool { return last == next }

// MaxFuel is well past the puzzle's diameter of three.
func (f Floppy122) MaxFuel() int { return 8 }
