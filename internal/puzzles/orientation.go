// Package puzzles holds the concrete puzzle definitions. Each puzzle
// enumerates its cubelets, derives its move table by hand, and packs its
// state into a uint64 key; the search engines consume them through the
// contracts in internal/search and never the other way around.
package puzzles

// CornerOrientation is the three-valued twist of a corner cubelet, shared by
// many twisty puzzles.
type CornerOrientation uint8

const (
	OrientNormal CornerOrientation = iota
	OrientCW
	OrientCCW
)

func (o CornerOrientation) CW() CornerOrientation {
	switch o {
	case OrientNormal:
		return OrientCW
	case OrientCW:
		return OrientCCW
	default:
		return OrientNormal
	}
}

func (o CornerOrientation) CCW() CornerOrientation {
	switch o {
	case OrientNormal:
		return OrientCCW
	case OrientCCW:
		return OrientCW
	default:
		return OrientNormal
	}
}

// EdgeOrientation is the two-valued flip of an edge cubelet.
type EdgeOrientation uint8

const (
	EdgeNormal EdgeOrientation = iota
	EdgeFlipped
)

func (e EdgeOrientation) Flipped() EdgeOrientation {
	if e == EdgeNormal {
		return EdgeFlipped
	}
	return EdgeNormal
}
