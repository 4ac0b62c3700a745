package puzzles

import (
	"math/rand/v2"

	"github.com/cubedev/twisty/internal/parity"
	"github.com/cubedev/twisty/internal/search"
)

// pocketCubelet identifies one of the seven movable corners of the pocket
// cube. The DBL corner stays fixed as the reference frame and never appears.
type pocketCubelet uint8

const (
	pcDBR pocketCubelet = iota
	pcDFL
	pcDFR
	pcUBL
	pcUBR
	pcUFL
	pcUFR
)

// pocketPos tracks which cubelet sits in each of the seven movable corner
// positions.
type pocketPos struct {
	dbr, dfl, dfr, ubl, ubr, ufl, ufr pocketCubelet
}

// pocketOrr tracks the twist of the cubelet in each position, measured
// against the up/down axis: U turns never twist, R and F turns alternate
// clockwise and counterclockwise around the moved face.
type pocketOrr struct {
	dbr, dfl, dfr, ubl, ubr, ufl, ufr CornerOrientation
}

// PocketCube is the 2x2x2 cube with the DBL corner held fixed: 7! positions
// times 3^6 legal twists, 3,674,160 configurations.
type PocketCube struct {
	pos pocketPos
	orr pocketOrr
}

func solvedPocketPos() pocketPos {
	return pocketPos{
		dbr: pcDBR, dfl: pcDFL, dfr: pcDFR,
		ubl: pcUBL, ubr: pcUBR, ufl: pcUFL, ufr: pcUFR,
	}
}

func solvedPocketOrr() pocketOrr {
	return pocketOrr{}
}

func SolvedPocketCube() PocketCube {
	return PocketCube{pos: solvedPocketPos(), orr: solvedPocketOrr()}
}

// RandomPocketCube draws a uniformly random legal configuration: any
// placement of the seven cubelets is reachable, and the twists are free
// except that their total must vanish mod 3, so six are drawn at random and
// the last is forced.
func RandomPocketCube(r *rand.Rand) PocketCube {
	order := []pocketCubelet{pcDBR, pcDFL, pcDFR, pcUBL, pcUBR, pcUFL, pcUFR}
	placed, _ := parity.ShuffleAny(r, order)

	twists := make([]CornerOrientation, 7)
	total := 0
	for i := range 6 {
		t := CornerOrientation(r.IntN(3))
		twists[i] = t
		total += int(t)
	}
	twists[6] = CornerOrientation((3 - total%3) % 3)

	return PocketCube{
		pos: pocketPos{
			dbr: placed[0], dfl: placed[1], dfr: placed[2],
			ubl: placed[3], ubr: placed[4], ufl: placed[5], ufr: placed[6],
		},
		orr: pocketOrr{
			dbr: twists[0], dfl: twists[1], dfr: twists[2],
			ubl: twists[3], ubr: twists[4], ufl: twists[5], ufr: twists[6],
		},
	}
}

func (p pocketPos) r() pocketPos {
	p.ufr, p.dfr, p.dbr, p.ubr = p.dfr, p.dbr, p.ubr, p.ufr
	return p
}

func (p pocketPos) f() pocketPos {
	p.ufl, p.dfl, p.dfr, p.ufr = p.dfl, p.dfr, p.ufr, p.ufl
	return p
}

func (p pocketPos) u() pocketPos {
	p.ufl, p.ufr, p.ubr, p.ubl = p.ufr, p.ubr, p.ubl, p.ufl
	return p
}

func (o pocketOrr) r() pocketOrr {
	o.ufr, o.dfr, o.dbr, o.ubr = o.dfr.CCW(), o.dbr.CW(), o.ubr.CCW(), o.ufr.CW()
	return o
}

func (o pocketOrr) f() pocketOrr {
	o.ufl, o.dfl, o.dfr, o.ufr = o.dfl.CCW(), o.dfr.CW(), o.ufr.CCW(), o.ufl.CW()
	return o
}

func (o pocketOrr) u() pocketOrr {
	// turns about the up/down axis never twist a corner
	o.ufl, o.ufr, o.ubr, o.ubl = o.ufr, o.ubr, o.ubl, o.ufl
	return o
}

func (c PocketCube) r() PocketCube { return PocketCube{pos: c.pos.r(), orr: c.orr.r()} }
func (c PocketCube) f() PocketCube { return PocketCube{pos: c.pos.f(), orr: c.orr.f()} }
func (c PocketCube) u() PocketCube { return PocketCube{pos: c.pos.u(), orr: c.orr.u()} }

// key packs seven positions into three bits each.
func (p pocketPos) key() uint64 {
	return uint64(p.dbr) | uint64(p.dfl)<<3 | uint64(p.dfr)<<6 |
		uint64(p.ubl)<<9 | uint64(p.ubr)<<12 | uint64(p.ufl)<<15 | uint64(p.ufr)<<18
}

// key packs seven twists into two bits each.
func (o pocketOrr) key() uint64 {
	return uint64(o.dbr) | uint64(o.dfl)<<2 | uint64(o.dfr)<<4 |
		uint64(o.ubl)<<6 | uint64(o.ubr)<<8 | uint64(o.ufl)<<10 | uint64(o.ufr)<<12
}

// UniqueKey packs positions into the low 21 bits and twists above them, 35
// bits in total.
func (c PocketCube) UniqueKey() uint64 {
	return c.pos.key() | c.orr.key()<<21
}

func (c PocketCube) Neighbors(emit func(PocketCube)) {
	for _, m := range c.AvailableMoves() {
		emit(c.Apply(m))
	}
}

func (c PocketCube) IsSolved() bool { return c == SolvedPocketCube() }

// CubeFace is one of the three turnable faces; the other three are fixed by
// the DBL reference corner.
type CubeFace uint8

const (
	FaceR CubeFace = iota
	FaceF
	FaceU
)

// CubeMove is a turn of one face by one, two, or three clockwise quarter
// turns.
type CubeMove struct {
	Face  CubeFace
	Turns uint8
}

func (m CubeMove) Reverse() CubeMove {
	return CubeMove{Face: m.Face, Turns: 4 - m.Turns}
}

func (m CubeMove) String() string {
	var face string
	switch m.Face {
	case FaceR:
		face = "R"
	case FaceF:
		face = "F"
	default:
		face = "U"
	}
	switch m.Turns {
	case 2:
		return face + "2"
	case 3:
		return face + "'"
	default:
		return face
	}
}

var pocketMoves = []CubeMove{
	{FaceR, 1}, {FaceR, 2}, {FaceR, 3},
	{FaceF, 1}, {FaceF, 2}, {FaceF, 3},
	{FaceU, 1}, {FaceU, 2}, {FaceU, 3},
}

func (c PocketCube) AvailableMoves() []CubeMove { return pocketMoves }

func (c PocketCube) Apply(m CubeMove) PocketCube {
	for range m.Turns {
		switch m.Face {
		case FaceR:
			c = c.r()
		case FaceF:
			c = c.f()
		default:
			c = c.u()
		}
	}
	return c
}

// IsRedundant rejects turning the same face twice in a row: consecutive
// turns of one face always collapse into a single turn or cancel outright,
// so they never appear in an optimal solution.
func (c PocketCube) IsRedundant(last, next CubeMove) bool {
	return last.Face == next.Face
}

// MaxFuel leaves headroom over the pocket cube's diameter of eleven.
func (c PocketCube) MaxFuel() int { return 14 }

// pocketPositions is the position-only projection of the cube. Any full
// solution projects to a position solution of the same length, so distances
// here never exceed true distances.
type pocketPositions struct {
	p pocketPos
}

func (s pocketPositions) UniqueKey() uint64 { return s.p.key() }

func (s pocketPositions) Neighbors(emit func(pocketPositions)) {
	for _, base := range []func(pocketPos) pocketPos{pocketPos.r, pocketPos.f, pocketPos.u} {
		next := s.p
		for range 3 {
			next = base(next)
			emit(pocketPositions{next})
		}
	}
}

// pocketTwists is the twist-only projection of the cube.
type pocketTwists struct {
	o pocketOrr
}

func (s pocketTwists) UniqueKey() uint64 { return s.o.key() }

func (s pocketTwists) Neighbors(emit func(pocketTwists)) {
	for _, base := range []func(pocketOrr) pocketOrr{pocketOrr.r, pocketOrr.f, pocketOrr.u} {
		next := s.o
		for range 3 {
			next = base(next)
			emit(pocketTwists{next})
		}
	}
}

// NewPocketCubeHeuristic builds the solver heuristic: a whole-state bounded
// cache out to cacheDepth, combined with exhaustive pattern databases over
// the position-only and twist-only projections. All three are admissible, so
// their maximum is too.
func NewPocketCubeHeuristic(cacheDepth int) search.Heuristic[PocketCube] {
	whole := search.BuildBoundedCache(SolvedPocketCube(), cacheDepth)
	positions := search.BuildBoundedCache(pocketPositions{solvedPocketPos()}, SolvedPocketCube().MaxFuel())
	twists := search.BuildBoundedCache(pocketTwists{solvedPocketOrr()}, SolvedPocketCube().MaxFuel())

	return search.Max(
		func(c PocketCube) int { return whole.Cost(c.UniqueKey()) },
		func(c PocketCube) int { return positions.Cost(c.pos.key()) },
		func(c PocketCube) int { return twists.Cost(c.orr.key()) },
	)
}
