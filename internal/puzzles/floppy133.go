package puzzles

import (
	"math/rand/v2"

	"github.com/cubedev/twisty/internal/parity"
)

// floppy133Corner identifies one of the four corner cubelets of the floppy
// cube (1x3x3).
type floppy133Corner uint8

const (
	f133UL floppy133Corner = iota
	f133UR
	f133DL
	f133DR
)

// Floppy133 is the floppy cube: four corner cubelets plus four edge centers
// that flip in place when their layer turns. 192 configurations.
type Floppy133 struct {
	ul, ur, dl, dr floppy133Corner
	uc, dc, lc, rc EdgeOrientation
}

func SolvedFloppy133() Floppy133 {
	return Floppy133{
		ul: f133UL, ur: f133UR, dl: f133DL, dr: f133DR,
		uc: EdgeNormal, dc: EdgeNormal, lc: EdgeNormal, rc: EdgeNormal,
	}
}

// RandomFloppy133 draws a uniformly random legal configuration. Every move
// is one corner transposition plus one edge flip, so the corner permutation
// parity always equals the edge flip parity; the draw picks any corner
// arrangement and then forces the flips to match it.
func RandomFloppy133(r *rand.Rand) Floppy133 {
	corners, par := parity.ShuffleAny(r, []floppy133Corner{f133UL, f133UR, f133DL, f133DR})
	flips := parity.FlipsWithParity(r, 4, par)

	edge := func(flipped bool) EdgeOrientation {
		if flipped {
			return EdgeFlipped
		}
		return EdgeNormal
	}

	return Floppy133{
		ul: corners[0], ur: corners[1], dl: corners[2], dr: corners[3],
		uc: edge(flips[0]), dc: edge(flips[1]), lc: edge(flips[2]), rc: edge(flips[3]),
	}
}

func (f Floppy133) u2() Floppy133 {
	f.ul, f.ur = f.ur, f.ul
	f.uc = f.uc.Flipped()
	return f
}

func (f Floppy133) d2() Floppy133 {
	f.dl, f.dr = f.dr, f.dl
	f.dc = f.dc.Flipped()
	return f
}

func (f Floppy133) l2() Floppy133 {
	f.ul, f.dl = f.dl, f.ul
	f.lc = f.lc.Flipped()
	return f
}

func (f Floppy133) r2() Floppy133 {
	f.ur, f.dr = f.dr, f.ur
	f.rc = f.rc.Flipped()
	return f
}

// UniqueKey packs the four cubelet identities into two bits each, then the
// four edge flips into one bit each.
func (f Floppy133) UniqueKey() uint64 {
	key := uint64(f.ul) | uint64(f.ur)<<2 | uint64(f.dl)<<4 | uint64(f.dr)<<6
	key |= uint64(f.uc)<<8 | uint64(f.dc)<<9 | uint64(f.lc)<<10 | uint64(f.rc)<<11
	return key
}

func (f Floppy133) Neighbors(emit func(Floppy133)) {
	emit(f.u2())
	emit(f.d2())
	emit(f.l2())
	emit(f.r2())
}

func (f Floppy133) IsSolved() bool { return f == SolvedFloppy133() }

func (f Floppy133) AvailableMoves() []FloppyMove {
	return []FloppyMove{FloppyU2, FloppyD2, FloppyL2, FloppyR2}
}

func (f Floppy133) Apply(m FloppyMove) Floppy133 {
	switch m {
	case FloppyU2:
		return f.u2()
	case FloppyD2:
		return f.d2()
	case FloppyL2:
		return f.l2()
	default:
		return f.r2()
	}
}

func (f Floppy133) IsRedundant(last, next FloppyMove) bool { return last == next }

// MaxFuel is well past the floppy cube's diameter of eight.
func (f Floppy133) MaxFuel() int { return 12 }
