package puzzles

// FloppyMove is a half turn of one outer layer of a floppy puzzle. Half
// turns are their own inverse.
type FloppyMove uint8

const (
	FloppyU2 FloppyMove = iota
	FloppyD2
	FloppyL2
	FloppyR2
)

func (m FloppyMove) Reverse() FloppyMove { return m }

func (m FloppyMove) String() string {
	switch m {
	case FloppyU2:
		return "U2"
	case FloppyD2:
		return "D2"
	case FloppyL2:
		return "L2"
	default:
		return "R2"
	}
}
