package world

import (
	"voxedit/internal/voxel"
)

// Layer is one independently offsettable voxel grid. Chunks are addressed
// in layer-local space; the offset places the layer in world space. Layers
// composite by Order, highest first.
type Layer struct {
	ID      int
	Name    string
	Order   int
	Visible bool
	Offset  voxel.Coord

	chunkSize int
	chunks    map[voxel.Coord]*Chunk
}

func newLayer(id int, name string, order, chunkSize int) *Layer {
	return &Layer{
		ID:        id,
		Name:      name,
		Order:     order,
		Visible:   true,
		chunkSize: chunkSize,
		chunks:    make(map[voxel.Coord]*Chunk),
	}
}

// locate splits a world position into the owning chunk's coordinates and
// the local coordinates inside it, accounting for the layer offset.
// Euclidean modulo keeps the arithmetic correct for negative positions.
func (l *Layer) locate(pos voxel.Coord) (chunkCoord, local voxel.Coord) {
	p := pos.Sub(l.Offset)
	chunkCoord = voxel.Coord{
		X: voxel.FloorDiv(p.X, l.chunkSize),
		Y: voxel.FloorDiv(p.Y, l.chunkSize),
		Z: voxel.FloorDiv(p.Z, l.chunkSize),
	}
	local = voxel.Coord{
		X: voxel.Mod(p.X, l.chunkSize),
		Y: voxel.Mod(p.Y, l.chunkSize),
		Z: voxel.Mod(p.Z, l.chunkSize),
	}
	return chunkCoord, local
}

// Chunk returns the chunk at chunk-space coordinates, if present.
func (l *Layer) Chunk(cc voxel.Coord) (*Chunk, bool) {
	c, ok := l.chunks[cc]
	return c, ok
}

// GetOrCreateChunk lazily instantiates chunks on first write.
func (l *Layer) GetOrCreateChunk(cc voxel.Coord) *Chunk {
	if c, ok := l.chunks[cc]; ok {
		return c
	}
	c := NewChunk(cc.X, cc.Y, cc.Z, l.chunkSize)
	l.chunks[cc] = c
	return c
}

// GetVoxelAt reads the entry at a world position.
func (l *Layer) GetVoxelAt(pos voxel.Coord) (voxel.Entry, bool) {
	cc, local := l.locate(pos)
	c, ok := l.chunks[cc]
	if !ok {
		return voxel.Entry{}, false
	}
	return c.Get(local.X, local.Y, local.Z)
}

// SetVoxelAt writes the entry at a world position and returns the chunk it
// landed in.
func (l *Layer) SetVoxelAt(pos voxel.Coord, e voxel.Entry) *Chunk {
	cc, local := l.locate(pos)
	c := l.GetOrCreateChunk(cc)
	c.Set(local.X, local.Y, local.Z, e)
	return c
}

// RemoveVoxelAt deletes the entry at a world position. The owning chunk is
// dropped as soon as it becomes empty, keeping memory bounded to painted
// regions. Returns the affected chunk, or nil when nothing was stored there.
func (l *Layer) RemoveVoxelAt(pos voxel.Coord) *Chunk {
	cc, local := l.locate(pos)
	c, ok := l.chunks[cc]
	if !ok {
		return nil
	}
	c.Delete(local.X, local.Y, local.Z)
	if c.IsEmpty() {
		delete(l.chunks, cc)
	}
	return c
}

// ChunkCount returns the number of live chunks in the layer.
func (l *Layer) ChunkCount() int { return len(l.chunks) }

// Chunks returns the layer's live chunks in unspecified order.
func (l *Layer) Chunks() []*Chunk {
	out := make([]*Chunk, 0, len(l.chunks))
	for _, c := range l.chunks {
		out = append(out, c)
	}
	return out
}

// MarkAllDirty flags every chunk in the layer for rebuild.
func (l *Layer) MarkAllDirty() {
	for _, c := range l.chunks {
		c.MarkDirty()
	}
}
