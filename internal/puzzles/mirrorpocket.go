package puzzles

// mirrorCubelet is the shape class of a mirror pocket cube piece. The small
// cube stays fixed in the BUL position and never appears; pieces are
// distinguishable only by their shape.
type mirrorCubelet uint8

const (
	mirrorNarrow mirrorCubelet = iota
	mirrorWide
	mirrorBigCube
)

// mirrorOrient is a corner twist with an extra Fixed variant for the big
// cube, whose orientation is invisible.
type mirrorOrient uint8

const (
	moNormal mirrorOrient = iota
	moCW
	moCCW
	moFixed
)

func (o mirrorOrient) cw() mirrorOrient {
	switch o {
	case moNormal:
		return moCW
	case moCW:
		return moCCW
	case moCCW:
		return moNormal
	default:
		return moFixed
	}
}

func (o mirrorOrient) ccw() mirrorOrient {
	switch o {
	case moNormal:
		return moCCW
	case moCCW:
		return moCW
	case moCW:
		return moNormal
	default:
		return moFixed
	}
}

type mirrorPos struct {
	ful, fur, bur, fdl, fdr, bdl, bdr mirrorCubelet
}

type mirrorOrr struct {
	ful, fur, bur, fdl, fdr, bdl, bdr mirrorOrient
}

// MirrorPocketCube is the shape-modded pocket cube: pieces are tracked by
// shape only, turned by the R, F, and D faces around the fixed small cube
// in BUL.
type MirrorPocketCube struct {
	pos mirrorPos
	orr mirrorOrr
}

func SolvedMirrorPocketCube() MirrorPocketCube {
	return MirrorPocketCube{
		pos: mirrorPos{
			ful: mirrorNarrow, fur: mirrorWide, bur: mirrorNarrow,
			fdl: mirrorWide, fdr: mirrorBigCube, bdl: mirrorNarrow, bdr: mirrorWide,
		},
		orr: mirrorOrr{
			// FDR, opposite the small cube, holds the big cube, whose
			// orientation is invisible
			ful: moNormal, fur: moNormal, bur: moNormal,
			fdl: moNormal, fdr: moFixed, bdl: moNormal, bdr: moNormal,
		},
	}
}

func (p mirrorPos) r() mirrorPos {
	p.fur, p.fdr, p.bdr, p.bur = p.fdr, p.bdr, p.bur, p.fur
	return p
}

func (p mirrorPos) f() mirrorPos {
	p.fur, p.ful, p.fdl, p.fdr = p.ful, p.fdl, p.fdr, p.fur
	return p
}

func (p mirrorPos) d() mirrorPos {
	p.fdr, p.fdl, p.bdl, p.bdr = p.fdl, p.bdl, p.bdr, p.fdr
	return p
}

func (o mirrorOrr) r() mirrorOrr {
	o.fur, o.fdr, o.bdr, o.bur = o.fdr.ccw(), o.bdr.cw(), o.bur.ccw(), o.fur.cw()
	return o
}

func (o mirrorOrr) f() mirrorOrr {
	o.fur, o.ful, o.fdl, o.fdr = o.ful.cw(), o.fdl.ccw(), o.fdr.cw(), o.fur.ccw()
	return o
}

func (o mirrorOrr) d() mirrorOrr {
	// orientation is measured against the up/down axis, so D turns move
	// twists without changing them
	o.fdr, o.fdl, o.bdl, o.bdr = o.fdl, o.bdl, o.bdr, o.fdr
	return o
}

func (c MirrorPocketCube) r() MirrorPocketCube {
	return MirrorPocketCube{pos: c.pos.r(), orr: c.orr.r()}
}

func (c MirrorPocketCube) f() MirrorPocketCube {
	return MirrorPocketCube{pos: c.pos.f(), orr: c.orr.f()}
}

func (c MirrorPocketCube) d() MirrorPocketCube {
	return MirrorPocketCube{pos: c.pos.d(), orr: c.orr.d()}
}

// twist is the whole-cube rotation by a third of a turn about the diagonal
// through the small cube and the big cube. It relabels the representation
// without changing the shape, and conjugates the move set onto itself
// (R to D, D to F, F to R), so it is an automorphism of the state graph:
// every shape has three representations related by twist.
func (c MirrorPocketCube) twist() MirrorPocketCube {
	return MirrorPocketCube{
		pos: mirrorPos{
			bur: c.pos.ful, bdl: c.pos.bur, ful: c.pos.bdl,
			bdr: c.pos.fur, fdl: c.pos.bdr, fur: c.pos.fdl,
			fdr: c.pos.fdr,
		},
		orr: mirrorOrr{
			bur: c.orr.ful.cw(), bdl: c.orr.bur.cw(), ful: c.orr.bdl.cw(),
			bdr: c.orr.fur.ccw(), fdl: c.orr.bdr.ccw(), fur: c.orr.fdl.ccw(),
			fdr: c.orr.fdr.cw(),
		},
	}
}

// UniqueKey packs the seven shapes and then the seven twists into two bits
// each, 28 bits in total. Earlier fields sit in higher bits, so comparing
// keys is exactly a field-by-field lexicographic comparison of the state;
// ShouldCount depends on that ordering.
func (c MirrorPocketCube) UniqueKey() uint64 {
	pos := uint64(c.pos.ful)<<12 | uint64(c.pos.fur)<<10 | uint64(c.pos.bur)<<8 |
		uint64(c.pos.fdl)<<6 | uint64(c.pos.fdr)<<4 | uint64(c.pos.bdl)<<2 | uint64(c.pos.bdr)
	orr := uint64(c.orr.ful)<<12 | uint64(c.orr.fur)<<10 | uint64(c.orr.bur)<<8 |
		uint64(c.orr.fdl)<<6 | uint64(c.orr.fdr)<<4 | uint64(c.orr.bdl)<<2 | uint64(c.orr.bdr)
	return pos<<14 | orr
}

func (c MirrorPocketCube) Neighbors(emit func(MirrorPocketCube)) {
	// three faces, three turns each
	emit(c.r())
	emit(c.r().r())
	emit(c.r().r().r())

	emit(c.f())
	emit(c.f().f())
	emit(c.f().f().f())

	emit(c.d())
	emit(c.d().d())
	emit(c.d().d().d())
}

// ShouldCount keeps exactly one representative per twist-equivalence class:
// the one with the smallest packed key. The ordering is arbitrary but must
// stay stable, since changing it would change the published per-depth
// configuration counts.
func (c MirrorPocketCube) ShouldCount() bool {
	key := c.UniqueKey()
	once := c.twist()
	return key <= once.UniqueKey() && key <= once.twist().UniqueKey()
}
