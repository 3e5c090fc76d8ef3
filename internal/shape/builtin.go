package shape

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxedit/internal/voxel"
)

// Built-in shape ids. Block packs reference these by name.
const (
	Cube                = "cube"
	SlabBottom          = "slab_bottom"
	SlabTop             = "slab_top"
	PoleX               = "pole_x"
	PoleY               = "pole_y"
	PoleZ               = "pole_z"
	PoleCross           = "pole_cross"
	Ramp                = "ramp"
	RampFlip            = "ramp_flip"
	RampCornerInner     = "ramp_corner_inner"
	RampCornerInnerFlip = "ramp_corner_inner_flip"
	RampCornerOuter     = "ramp_corner_outer"
	RampCornerOuterFlip = "ramp_corner_outer_flip"
	Stairs              = "stairs"
	StairsFlip          = "stairs_flip"
)

func builtins() []*Shape {
	cube := newCube()
	slabBottom := newSlabBottom()
	ramp := newRamp()
	inner := newRampCornerInner()
	outer := newRampCornerOuter()
	stairs := newStairs()

	return []*Shape{
		cube,
		slabBottom,
		mirrorY(SlabTop, slabBottom),
		newPole(PoleX),
		newPole(PoleY),
		newPole(PoleZ),
		newPoleCross(),
		ramp,
		mirrorY(RampFlip, ramp),
		inner,
		mirrorY(RampCornerInnerFlip, inner),
		outer,
		mirrorY(RampCornerOuterFlip, outer),
		stairs,
		mirrorY(StairsFlip, stairs),
	}
}

// boxFaces emits the six quads of an axis-aligned box inside unit-cube
// space. A face that lies on the unit-cube boundary culls against its axis
// direction; interior faces get the always-emit sentinel.
func boxFaces(min, max mgl32.Vec3) []Face {
	cullAt := func(d voxel.Direction, plane, boundary float32) voxel.Direction {
		if plane == boundary {
			return d
		}
		return voxel.DirNone
	}
	x0, y0, z0 := min.X(), min.Y(), min.Z()
	x1, y1, z1 := max.X(), max.Y(), max.Z()
	return []Face{
		newFace(cullAt(voxel.DirEast, x1, 1), mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{x1, y0, z1}, mgl32.Vec3{x1, y0, z0}, mgl32.Vec3{x1, y1, z0}, mgl32.Vec3{x1, y1, z1}),
		newFace(cullAt(voxel.DirWest, x0, 0), mgl32.Vec3{-1, 0, 0},
			mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x0, y0, z1}, mgl32.Vec3{x0, y1, z1}, mgl32.Vec3{x0, y1, z0}),
		newFace(cullAt(voxel.DirUp, y1, 1), mgl32.Vec3{0, 1, 0},
			mgl32.Vec3{x0, y1, z1}, mgl32.Vec3{x1, y1, z1}, mgl32.Vec3{x1, y1, z0}, mgl32.Vec3{x0, y1, z0}),
		newFace(cullAt(voxel.DirDown, y0, 0), mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x1, y0, z0}, mgl32.Vec3{x1, y0, z1}, mgl32.Vec3{x0, y0, z1}),
		newFace(cullAt(voxel.DirSouth, z1, 1), mgl32.Vec3{0, 0, 1},
			mgl32.Vec3{x0, y0, z1}, mgl32.Vec3{x1, y0, z1}, mgl32.Vec3{x1, y1, z1}, mgl32.Vec3{x0, y1, z1}),
		newFace(cullAt(voxel.DirNorth, z0, 0), mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{x1, y0, z0}, mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x0, y1, z0}, mgl32.Vec3{x1, y1, z0}),
	}
}

func newCube() *Shape {
	return newShape(Cube, CollisionBox,
		[]voxel.Direction{voxel.DirEast, voxel.DirWest, voxel.DirUp, voxel.DirDown, voxel.DirSouth, voxel.DirNorth},
		boxFaces(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})...)
}

func newSlabBottom() *Shape {
	return newShape(SlabBottom, CollisionBox,
		[]voxel.Direction{voxel.DirDown},
		boxFaces(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0.5, 1})...)
}

// newPole builds a square column along the given axis; the caps sit on the
// unit-cube boundary and cull normally, the long sides are interior.
func newPole(id string) *Shape {
	var min, max mgl32.Vec3
	switch id {
	case PoleX:
		min, max = mgl32.Vec3{0, 0.25, 0.25}, mgl32.Vec3{1, 0.75, 0.75}
	case PoleY:
		min, max = mgl32.Vec3{0.25, 0, 0.25}, mgl32.Vec3{0.75, 1, 0.75}
	default:
		min, max = mgl32.Vec3{0.25, 0.25, 0}, mgl32.Vec3{0.75, 0.75, 1}
	}
	return newShape(id, CollisionBox, nil, boxFaces(min, max)...)
}

func newPoleCross() *Shape {
	var faces []Face
	faces = append(faces, boxFaces(mgl32.Vec3{0, 0.25, 0.25}, mgl32.Vec3{1, 0.75, 0.75})...)
	faces = append(faces, boxFaces(mgl32.Vec3{0.25, 0, 0.25}, mgl32.Vec3{0.75, 1, 0.75})...)
	faces = append(faces, boxFaces(mgl32.Vec3{0.25, 0.25, 0}, mgl32.Vec3{0.75, 0.75, 1})...)
	return newShape(PoleCross, CollisionTrimesh, nil, faces...)
}

// newRamp builds the base ramp: solid back wall at +Z, slope descending
// toward -Z. Rotation steps orient it at build time.
func newRamp() *Shape {
	slopeN := mgl32.Vec3{0, 1, -1}.Normalize()
	return newShape(Ramp, CollisionTrimesh,
		[]voxel.Direction{voxel.DirDown, voxel.DirSouth},
		newFace(voxel.DirDown, mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, 0, 1}),
		newFace(voxel.DirSouth, mgl32.Vec3{0, 0, 1},
			mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirNone, slopeN,
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirWest, mgl32.Vec3{-1, 0, 0},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirEast, mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}),
	)
}

// newRampCornerInner is the concave corner: two ramps meeting, solid along
// +Z and +X, the slope notch descending to the (0,*,0) column.
func newRampCornerInner() *Shape {
	return newShape(RampCornerInner, CollisionTrimesh,
		[]voxel.Direction{voxel.DirDown, voxel.DirSouth, voxel.DirEast},
		newFace(voxel.DirDown, mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, 0, 1}),
		newFace(voxel.DirSouth, mgl32.Vec3{0, 0, 1},
			mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirEast, mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 0}),
		newFace(voxel.DirWest, mgl32.Vec3{-1, 0, 0},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirNorth, mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}),
		newFace(voxel.DirNone, mgl32.Vec3{0, 1, -1}.Normalize(),
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{1, 1, 1}),
		newFace(voxel.DirNone, mgl32.Vec3{-1, 1, 0}.Normalize(),
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 0}),
	)
}

// newRampCornerOuter is the convex corner: a tetrahedron with its high
// point at (1,1,1). It covers no neighbouring face completely.
func newRampCornerOuter() *Shape {
	return newShape(RampCornerOuter, CollisionTrimesh, nil,
		newFace(voxel.DirDown, mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}),
		newFace(voxel.DirSouth, mgl32.Vec3{0, 0, 1},
			mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}),
		newFace(voxel.DirEast, mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}),
		newFace(voxel.DirNone, mgl32.Vec3{-1, 1, -1}.Normalize(),
			mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}),
	)
}

// newStairs builds a two-step stair rising toward +Z with a solid back
// wall. Treads and the riser are interior surfaces, the L-shaped sides are
// split into two quads each.
func newStairs() *Shape {
	return newShape(Stairs, CollisionTrimesh,
		[]voxel.Direction{voxel.DirDown, voxel.DirSouth},
		newFace(voxel.DirDown, mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, 0, 1}),
		newFace(voxel.DirSouth, mgl32.Vec3{0, 0, 1},
			mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirNorth, mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0.5, 0}, mgl32.Vec3{0, 0.5, 0}),
		// riser of the upper step
		newFace(voxel.DirNone, mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{1, 0.5, 0.5}, mgl32.Vec3{1, 1, 0.5}, mgl32.Vec3{0, 1, 0.5}),
		// lower tread
		newFace(voxel.DirNone, mgl32.Vec3{0, 1, 0},
			mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{1, 0.5, 0}, mgl32.Vec3{1, 0.5, 0.5}, mgl32.Vec3{0, 0.5, 0.5}),
		// upper tread
		newFace(voxel.DirUp, mgl32.Vec3{0, 1, 0},
			mgl32.Vec3{0, 1, 0.5}, mgl32.Vec3{1, 1, 0.5}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 1}),
		newFace(voxel.DirWest, mgl32.Vec3{-1, 0, 0},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0.5, 1}, mgl32.Vec3{0, 0.5, 0}),
		newFace(voxel.DirWest, mgl32.Vec3{-1, 0, 0},
			mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{0, 0.5, 1}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 0.5}),
		newFace(voxel.DirEast, mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 0.5, 1}, mgl32.Vec3{1, 0.5, 0}),
		newFace(voxel.DirEast, mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{1, 0.5, 0.5}, mgl32.Vec3{1, 0.5, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 0.5}),
	)
}
