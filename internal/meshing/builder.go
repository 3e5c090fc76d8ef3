package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxedit/internal/profiling"
	"voxedit/internal/registry"
	"voxedit/internal/shape"
	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
	"voxedit/internal/world"
)

// Builder turns one (layer, chunk) pair into geometry buffers, one per
// texture atlas. Neighbour lookups go through the world's composited read,
// never the chunk's own storage, so culling is correct across chunk and
// layer boundaries.
type Builder struct {
	world  *world.World
	blocks *registry.BlockRegistry
	shapes *shape.Registry
	tiles  *tileset.Registry
}

func NewBuilder(w *world.World, blocks *registry.BlockRegistry, shapes *shape.Registry, tiles *tileset.Registry) *Builder {
	return &Builder{world: w, blocks: blocks, shapes: shapes, tiles: tiles}
}

// BuildChunk meshes every visible voxel of the chunk. It returns nil when
// the chunk contributes no geometry — empty, fully occluded, or no default
// tileset registered yet (textures still loading).
func (b *Builder) BuildChunk(layer *world.Layer, chunk *world.Chunk) map[int]*GeometryData {
	defer profiling.Track("meshing.BuildChunk")()

	if b.tiles.DefaultTilesetID() < 0 {
		return nil
	}

	buffers := make(map[int]*GeometryData)
	origin := chunk.Origin()

	for idx, entry := range chunk.Entries() {
		local := chunk.LocalCoord(idx)
		worldPos := origin.Add(local).Add(layer.Offset)

		// A higher-priority layer defining this coordinate owns it; this
		// chunk must not also emit geometry there.
		if top, _, ok := b.world.TopLayerAt(worldPos); !ok || top != layer {
			continue
		}

		// Unregistered block or shape ids are skipped, not failed: old
		// scenes must survive a removed block pack.
		def, ok := b.blocks.Get(entry.Block)
		if !ok {
			continue
		}
		shp, ok := b.shapes.Get(def.ShapeID)
		if !ok {
			continue
		}

		b.meshVoxel(buffers, shp, def, entry.Transform, local, worldPos)
	}

	for id, g := range buffers {
		if g.IsEmpty() {
			delete(buffers, id)
		}
	}
	if len(buffers) == 0 {
		return nil
	}
	return buffers
}

func (b *Builder) meshVoxel(buffers map[int]*GeometryData, shp *shape.Shape, def *registry.BlockDefinition,
	tr voxel.Transform, local, worldPos voxel.Coord) {

	rot := tr.Rotation()
	for _, face := range shp.Faces {
		if dir := b.worldFaceDirection(face.Cull, tr); dir != voxel.DirNone {
			if neighbour, ok := b.world.GetVoxelAt(worldPos.Add(dir.Offset())); ok {
				if b.neighbourOccludes(neighbour, dir.Opposite()) {
					continue
				}
			}
		}

		ref := def.FaceTexture(face.Cull)
		region, ok := b.tiles.TileUV(ref)
		if !ok {
			continue // unresolved texture: skip the face, keep the voxel
		}
		atlas := b.tiles.ResolveTilesetID(ref)
		buf := buffers[atlas]
		if buf == nil {
			buf = &GeometryData{}
			buffers[atlas] = buf
		}
		appendFace(buf, face, rot, tr, local, region)
	}
}

// worldFaceDirection maps a face's nominal local cull direction into world
// space: rotation first, then the vertical mirror. The always-emit sentinel
// passes through untouched.
func (b *Builder) worldFaceDirection(cull voxel.Direction, tr voxel.Transform) voxel.Direction {
	if cull == voxel.DirNone {
		return voxel.DirNone
	}
	d := cull.RotateY(tr.Rotation())
	if tr.FlipY() {
		d = d.FlipY()
	}
	return d
}

// neighbourOccludes asks the neighbour's shape whether it fully covers the
// face pointing back at us. `toward` is the world direction from the
// neighbour toward the queried voxel; it is mapped into the neighbour's
// local frame with the INVERSE of the neighbour's rotation — the forward
// rotation produces plausible but wrong culling for rotated non-cube
// shapes.
func (b *Builder) neighbourOccludes(n voxel.Entry, toward voxel.Direction) bool {
	def, ok := b.blocks.Get(n.Block)
	if !ok {
		return false
	}
	shp, ok := b.shapes.Get(def.ShapeID)
	if !ok {
		return false
	}
	local := toward.RotateY(n.Transform.InverseRotation())
	if n.Transform.FlipY() {
		local = local.FlipY()
	}
	return shp.Occludes(local)
}

// appendFace transforms a face's vertices and normal by the voxel's
// rotation and mirrors, offsets them to the voxel's chunk-local position,
// and fan-triangulates into the buffer. Each mirror inverts orientation,
// so an odd number of active mirrors reverses the emission order to keep
// the winding outward.
func appendFace(buf *GeometryData, face shape.Face, rot int, tr voxel.Transform, local voxel.Coord, region tileset.UVRegion) {
	base := uint32(buf.VertexCount())
	count := len(face.Vertices)
	reversed := tr.FlipX() != tr.FlipZ() != tr.FlipY()

	normal := rotateNormal(face.Normal, rot)
	if tr.FlipX() {
		normal[0] = -normal[0]
	}
	if tr.FlipZ() {
		normal[2] = -normal[2]
	}
	if tr.FlipY() {
		normal[1] = -normal[1]
	}

	for i := 0; i < count; i++ {
		vi := i
		if reversed {
			vi = count - 1 - i
		}
		v := rotatePoint(face.Vertices[vi], rot)
		if tr.FlipX() {
			v[0] = 1 - v[0]
		}
		if tr.FlipZ() {
			v[2] = 1 - v[2]
		}
		if tr.FlipY() {
			v[1] = 1 - v[1]
		}
		buf.Positions = append(buf.Positions,
			v.X()+float32(local.X), v.Y()+float32(local.Y), v.Z()+float32(local.Z))
		buf.Normals = append(buf.Normals, normal.X(), normal.Y(), normal.Z())

		uv := face.UVs[vi]
		buf.UVs = append(buf.UVs,
			region.OffsetU+uv.X()*region.ScaleU,
			region.OffsetV+uv.Y()*region.ScaleV)
	}

	buf.Indices = append(buf.Indices, base, base+1, base+2)
	if count == 4 {
		buf.Indices = append(buf.Indices, base, base+2, base+3)
	}
}

// rotatePoint rotates a unit-cube point around the cube's vertical center
// axis in 90° steps, matching the direction permutation (+X→-Z).
func rotatePoint(v mgl32.Vec3, steps int) mgl32.Vec3 {
	for i := 0; i < steps&3; i++ {
		v = mgl32.Vec3{v.Z(), v.Y(), 1 - v.X()}
	}
	return v
}

func rotateNormal(n mgl32.Vec3, steps int) mgl32.Vec3 {
	for i := 0; i < steps&3; i++ {
		n = mgl32.Vec3{n.Z(), n.Y(), -n.X()}
	}
	return n
}
