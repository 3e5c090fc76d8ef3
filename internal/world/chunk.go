package world

import (
	"iter"

	"voxedit/internal/voxel"
)

// DefaultChunkSize is the edge length of a chunk in voxels.
const DefaultChunkSize = 16

// Chunk is one fixed-size cube partition of a layer's grid. Storage is a
// sparse map from linear index to entry; a chunk that loses its last entry
// is removed from its layer. Local coordinates are the caller's contract:
// layers always derive them via Euclidean modulo before calling in.
type Chunk struct {
	CX, CY, CZ int
	Size       int

	entries map[int]voxel.Entry
	dirty   bool
}

// NewChunk creates an empty chunk at the given chunk-space coordinates.
// New chunks start dirty so the first rebuild pass picks them up.
func NewChunk(cx, cy, cz, size int) *Chunk {
	return &Chunk{
		CX:      cx,
		CY:      cy,
		CZ:      cz,
		Size:    size,
		entries: make(map[int]voxel.Entry),
		dirty:   true,
	}
}

// Index converts local coordinates to the linear storage index.
func (c *Chunk) Index(lx, ly, lz int) int {
	return (ly*c.Size+lz)*c.Size + lx
}

// LocalCoord is the inverse of Index.
func (c *Chunk) LocalCoord(idx int) voxel.Coord {
	lx := idx % c.Size
	lz := (idx / c.Size) % c.Size
	ly := idx / (c.Size * c.Size)
	return voxel.Coord{X: lx, Y: ly, Z: lz}
}

// Origin returns the chunk's layer-local origin.
func (c *Chunk) Origin() voxel.Coord {
	return voxel.Coord{X: c.CX * c.Size, Y: c.CY * c.Size, Z: c.CZ * c.Size}
}

// Get returns the entry at local coordinates.
func (c *Chunk) Get(lx, ly, lz int) (voxel.Entry, bool) {
	e, ok := c.entries[c.Index(lx, ly, lz)]
	return e, ok
}

// Set stores an entry and marks the chunk dirty.
func (c *Chunk) Set(lx, ly, lz int, e voxel.Entry) {
	c.entries[c.Index(lx, ly, lz)] = e
	c.dirty = true
}

// Delete removes the entry at local coordinates, if any, and marks the
// chunk dirty when something was actually removed.
func (c *Chunk) Delete(lx, ly, lz int) {
	idx := c.Index(lx, ly, lz)
	if _, ok := c.entries[idx]; !ok {
		return
	}
	delete(c.entries, idx)
	c.dirty = true
}

// Len returns the number of stored entries.
func (c *Chunk) Len() int { return len(c.entries) }

// IsEmpty reports whether the chunk holds no entries.
func (c *Chunk) IsEmpty() bool { return len(c.entries) == 0 }

// Entries iterates the stored (linear index, entry) pairs. Iteration
// reflects live state; it makes no snapshot guarantee.
func (c *Chunk) Entries() iter.Seq2[int, voxel.Entry] {
	return func(yield func(int, voxel.Entry) bool) {
		for idx, e := range c.entries {
			if !yield(idx, e) {
				return
			}
		}
	}
}

// IsDirty reports whether the chunk changed since the last rebuild.
func (c *Chunk) IsDirty() bool { return c.dirty }

// MarkDirty flags the chunk for the next rebuild pass.
func (c *Chunk) MarkDirty() { c.dirty = true }

// SetClean is called by the rebuild driver once it has consumed the chunk.
func (c *Chunk) SetClean() { c.dirty = false }
