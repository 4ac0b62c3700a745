package puzzles

// floppy123Corner identifies one of the four corner cubelets of the 1x2x3
// floppy.
type floppy123Corner uint8

const (
	f123UL floppy123Corner = iota
	f123UR
	f123DL
	f123DR
)

// Floppy123 is the 1x2x3 floppy: four corner cubelets plus the right-hand
// center, which R2 flips between its two visible states.
type Floppy123 struct {
	ul, ur, dl, dr floppy123Corner
	// true when the right center shows its solved face; a whole enum for a
	// two-state piece seemed like overkill
	rcSolved bool
}

func SolvedFloppy123() Floppy123 {
	return Floppy123{ul: f123UL, ur: f123UR, dl: f123DL, dr: f123DR, rcSolved: true}
}

func (f Floppy123) u2() Floppy123 {
	f.ul, f.ur = f.ur, f.ul
	return f
}

func (f Floppy123) d2() Floppy123 {
	f.dl, f.dr = f.dr, f.dl
	return f
}

func (f Floppy123) r2() Floppy123 {
	f.ur, f.dr = f.dr, f.ur
	f.rcSolved = !f.rcSolved
	return f
}

// UniqueKey packs the four cubelet identities into two bits each plus one
// bit for the right center.
func (f Floppy123) UniqueKey() uint64 {
	key := uint64(f.ul) | uint64(f.ur)<<2 | uint64(f.dl)<<4 | uint64(f.dr)<<6
	if f.rcSolved {
		key |= 1 << 8
	}
	return key
}

func (f Floppy123) Neighbors(emit func(Floppy123)) {
	emit(f.u2())
	emit(f.d2())
	emit(f.r2())
}

func (f Floppy123) IsSolved() bool { return f == SolvedFloppy123() }

func (f Floppy123) AvailableMoves() []FloppyMove {
	return []FloppyMove{FloppyU2, FloppyD2, FloppyR2}
}

func (f Floppy123) Apply(m FloppyMove) Floppy123 {
	switch m {
	case FloppyU2:
		return f.u2()
	case FloppyD2:
		return f.d2()
	case FloppyR2:
		return f.r2()
	default:
		panic("floppy 1x2x3: move not available: " + m.String())
	}
}

func (f Floppy123) IsRedundant(last, next FloppyMove) bool { return last == next }

func (f Floppy123) MaxFuel() int { return 12 }
