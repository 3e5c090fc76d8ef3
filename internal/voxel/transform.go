package voxel

// Transform packs a voxel's orientation into a single byte:
//
//	bits 0-1  rotation around Y in 90° steps (0-3)
//	bit  2    mirror along X
//	bit  3    mirror along Z
//	bit  4    mirror along Y
type Transform uint8

const (
	rotationMask         = 0x3
	flipXBit   Transform = 1 << 2
	flipZBit   Transform = 1 << 3
	flipYBit   Transform = 1 << 4
)

// NewTransform builds a packed transform from its components.
func NewTransform(rotation int, flipX, flipZ, flipY bool) Transform {
	t := Transform(rotation & rotationMask)
	if flipX {
		t |= flipXBit
	}
	if flipZ {
		t |= flipZBit
	}
	if flipY {
		t |= flipYBit
	}
	return t
}

// Rotation returns the Y rotation step in 0..3.
func (t Transform) Rotation() int { return int(t & rotationMask) }

func (t Transform) FlipX() bool { return t&flipXBit != 0 }
func (t Transform) FlipZ() bool { return t&flipZBit != 0 }
func (t Transform) FlipY() bool { return t&flipYBit != 0 }

// InverseRotation is the step count that undoes Rotation. Mapping a world
// direction into a voxel's local frame uses this, never the forward step.
func (t Transform) InverseRotation() int { return (4 - t.Rotation()) & 3 }

// Entry is one stored voxel: a block id plus its orientation. Block 0 is
// air and is never stored in a chunk.
type Entry struct {
	Block     uint16
	Transform Transform
}
