package world

import (
	"errors"
	"fmt"
	"sort"

	"voxedit/internal/voxel"
)

// ErrUnknownLayer signals a write against a layer name that does not exist.
// Layer names are caller-controlled, so this is a programmer error, not
// recoverable runtime data.
var ErrUnknownLayer = errors.New("unknown layer")

// ChunkRef pairs a chunk with the layer that owns it; the rebuild driver
// works in these units.
type ChunkRef struct {
	Layer *Layer
	Chunk *Chunk
}

// RemovedChunk identifies a chunk of a removed layer. The external renderer
// sweeps these once before the layer is dropped for good.
type RemovedChunk struct {
	LayerID   int
	LayerName string
	Coord     voxel.Coord
}

// World is the ordered collection of layers. Reads composite across layers
// by descending order; writes fan out dirty flags, including to chunks that
// share a face boundary with the written position.
//
// The world provides no internal locking: a single external driver is
// expected to interleave edits and rebuilds, never running them
// concurrently over the same chunk.
type World struct {
	ChunkSize int

	layers   []*Layer // kept sorted descending by Order
	nextID   int
	removed  []RemovedChunk
	listener Listener
}

// New creates an empty world. A non-positive chunk size falls back to the
// default.
func New(chunkSize int) *World {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &World{ChunkSize: chunkSize, nextID: 1}
}

// SetListener registers the lifecycle listener. Passing nil detaches it.
func (w *World) SetListener(l Listener) { w.listener = l }

func (w *World) sortLayers() {
	sort.SliceStable(w.layers, func(i, j int) bool {
		return w.layers[i].Order > w.layers[j].Order
	})
}

// AddLayer creates a new layer with an auto-incremented id and an order
// equal to the current layer count, placing it on top.
func (w *World) AddLayer(name string) *Layer {
	l := newLayer(w.nextID, name, len(w.layers), w.ChunkSize)
	w.nextID++
	w.layers = append(w.layers, l)
	w.sortLayers()
	w.emit(name, ActionLayerAdd, map[string]any{"id": l.ID, "order": l.Order})
	return l
}

// RestoreLayer recreates a layer with explicit id, order, visibility and
// offset, bypassing auto-id assignment. The deserializer uses this to keep
// identities verbatim across a round-trip.
func (w *World) RestoreLayer(id int, name string, order int, visible bool, offset voxel.Coord) *Layer {
	l := newLayer(id, name, order, w.ChunkSize)
	l.Visible = visible
	l.Offset = offset
	if id >= w.nextID {
		w.nextID = id + 1
	}
	w.layers = append(w.layers, l)
	w.sortLayers()
	w.emit(name, ActionLayerAdd, map[string]any{"id": id, "order": order})
	return l
}

// Layer finds a layer by name.
func (w *World) Layer(name string) (*Layer, bool) {
	for _, l := range w.layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Layers returns the layers in composite order (descending by Order).
func (w *World) Layers() []*Layer {
	out := make([]*Layer, len(w.layers))
	copy(out, w.layers)
	return out
}

// LayerCount returns the number of layers.
func (w *World) LayerCount() int { return len(w.layers) }

// RemoveLayer queues the layer's chunks for a one-time removal sweep and
// drops the layer. Every remaining layer is invalidated: the removed layer
// may have been occluding voxels anywhere.
func (w *World) RemoveLayer(name string) bool {
	for i, l := range w.layers {
		if l.Name != name {
			continue
		}
		for _, c := range l.chunks {
			w.removed = append(w.removed, RemovedChunk{
				LayerID:   l.ID,
				LayerName: l.Name,
				Coord:     voxel.Coord{X: c.CX, Y: c.CY, Z: c.CZ},
			})
		}
		w.layers = append(w.layers[:i], w.layers[i+1:]...)
		w.markAllLayersDirty()
		w.emit(name, ActionLayerRemove, map[string]any{"id": l.ID})
		return true
	}
	return false
}

// MoveLayer changes a layer's composite order. All layers are invalidated
// because the winning entry may change at any coordinate.
func (w *World) MoveLayer(name string, order int) error {
	l, ok := w.Layer(name)
	if !ok {
		return fmt.Errorf("move layer %q: %w", name, ErrUnknownLayer)
	}
	if l.Order == order {
		return nil
	}
	l.Order = order
	w.sortLayers()
	w.markAllLayersDirty()
	w.emit(name, ActionLayerReorder, map[string]any{"order": order})
	return nil
}

// SetLayerOffset repositions a layer in world space. Offset changes can
// alter composited results world-wide, so every chunk everywhere is
// re-evaluated.
func (w *World) SetLayerOffset(name string, offset voxel.Coord) error {
	l, ok := w.Layer(name)
	if !ok {
		return fmt.Errorf("offset layer %q: %w", name, ErrUnknownLayer)
	}
	if l.Offset == offset {
		return nil
	}
	l.Offset = offset
	w.markAllLayersDirty()
	w.emit(name, ActionLayerOffset, map[string]any{"offset": offset})
	return nil
}

// TranslateLayer shifts a layer's offset by a delta.
func (w *World) TranslateLayer(name string, delta voxel.Coord) error {
	l, ok := w.Layer(name)
	if !ok {
		return fmt.Errorf("translate layer %q: %w", name, ErrUnknownLayer)
	}
	return w.SetLayerOffset(name, l.Offset.Add(delta))
}

// SetLayerVisible toggles a layer. Like offset changes, visibility affects
// composited results everywhere.
func (w *World) SetLayerVisible(name string, visible bool) error {
	l, ok := w.Layer(name)
	if !ok {
		return fmt.Errorf("layer %q: %w", name, ErrUnknownLayer)
	}
	if l.Visible == visible {
		return nil
	}
	l.Visible = visible
	w.markAllLayersDirty()
	w.emit(name, ActionLayerUpdate, map[string]any{"visible": visible})
	return nil
}

// GetVoxelAt is the composited read: the first visible layer, scanning by
// descending order, with an entry at pos wins. A miss is an explicit
// absent result, never an error.
func (w *World) GetVoxelAt(pos voxel.Coord) (voxel.Entry, bool) {
	_, e, ok := w.TopLayerAt(pos)
	return e, ok
}

// TopLayerAt returns the winning layer alongside the entry. The mesh
// builder uses the layer identity to skip voxels hidden behind
// higher-priority layers.
func (w *World) TopLayerAt(pos voxel.Coord) (*Layer, voxel.Entry, bool) {
	for _, l := range w.layers {
		if !l.Visible {
			continue
		}
		if e, ok := l.GetVoxelAt(pos); ok {
			return l, e, true
		}
	}
	return nil, voxel.Entry{}, false
}

// GetVoxelNeighbour reads the composited entry one step toward dir.
func (w *World) GetVoxelNeighbour(pos voxel.Coord, dir voxel.Direction) (voxel.Entry, bool) {
	return w.GetVoxelAt(pos.Add(dir.Offset()))
}

// SetVoxelAt writes an entry into the named layer at a world position.
// Writing block 0 (air) is equivalent to removing the voxel. A write to a
// nonexistent layer is a hard failure.
func (w *World) SetVoxelAt(layerName string, pos voxel.Coord, e voxel.Entry) error {
	l, ok := w.Layer(layerName)
	if !ok {
		return fmt.Errorf("set voxel in layer %q: %w", layerName, ErrUnknownLayer)
	}
	if e.Block == 0 {
		w.removeVoxel(l, pos)
		return nil
	}
	l.SetVoxelAt(pos, e)
	w.markNeighbourChunksDirty(l, pos)
	w.emit(layerName, ActionVoxelSet, map[string]any{"pos": pos, "block": e.Block})
	return nil
}

// SetVoxels is the bulk form of SetVoxelAt; the layer is resolved once.
func (w *World) SetVoxels(layerName string, positions []voxel.Coord, entries []voxel.Entry) error {
	if len(positions) != len(entries) {
		return fmt.Errorf("set voxels: %d positions for %d entries", len(positions), len(entries))
	}
	l, ok := w.Layer(layerName)
	if !ok {
		return fmt.Errorf("set voxels in layer %q: %w", layerName, ErrUnknownLayer)
	}
	for i, pos := range positions {
		if entries[i].Block == 0 {
			w.removeVoxel(l, pos)
			continue
		}
		l.SetVoxelAt(pos, entries[i])
		w.markNeighbourChunksDirty(l, pos)
		w.emit(layerName, ActionVoxelSet, map[string]any{"pos": pos, "block": entries[i].Block})
	}
	return nil
}

// RemoveVoxelAt deletes the entry at a world position. An unknown layer is
// a silent no-op, mirroring read semantics.
func (w *World) RemoveVoxelAt(layerName string, pos voxel.Coord) {
	l, ok := w.Layer(layerName)
	if !ok {
		return
	}
	w.removeVoxel(l, pos)
}

// RemoveVoxels is the bulk form of RemoveVoxelAt.
func (w *World) RemoveVoxels(layerName string, positions []voxel.Coord) {
	l, ok := w.Layer(layerName)
	if !ok {
		return
	}
	for _, pos := range positions {
		w.removeVoxel(l, pos)
	}
}

func (w *World) removeVoxel(l *Layer, pos voxel.Coord) {
	if l.RemoveVoxelAt(pos) == nil {
		return
	}
	w.markNeighbourChunksDirty(l, pos)
	w.emit(l.Name, ActionVoxelRemove, map[string]any{"pos": pos})
}

// markNeighbourChunksDirty flags the 0-6 chunks sharing a face boundary
// with pos: a voxel on a chunk edge changes culling decisions in the
// neighbouring chunk.
func (w *World) markNeighbourChunksDirty(l *Layer, pos voxel.Coord) {
	own, _ := l.locate(pos)
	for d := voxel.Direction(0); d < voxel.NumDirections; d++ {
		ncc, _ := l.locate(pos.Add(d.Offset()))
		if ncc == own {
			continue
		}
		if c, ok := l.Chunk(ncc); ok {
			c.MarkDirty()
		}
	}
}

func (w *World) markAllLayersDirty() {
	for _, l := range w.layers {
		l.MarkAllDirty()
	}
}

// MarkAllDirty forces a full rebuild, e.g. after a texture atlas finally
// becomes available.
func (w *World) MarkAllDirty() { w.markAllLayersDirty() }

// AllDirtyChunks returns every dirty chunk across all layers, in composite
// order. The rebuild driver consumes this once per tick.
func (w *World) AllDirtyChunks() []ChunkRef {
	var out []ChunkRef
	for _, l := range w.layers {
		for _, c := range l.chunks {
			if c.IsDirty() {
				out = append(out, ChunkRef{Layer: l, Chunk: c})
			}
		}
	}
	return out
}

// AllChunks returns every live chunk across all layers.
func (w *World) AllChunks() []ChunkRef {
	var out []ChunkRef
	for _, l := range w.layers {
		for _, c := range l.chunks {
			out = append(out, ChunkRef{Layer: l, Chunk: c})
		}
	}
	return out
}

// AllChunksToBeRemoved drains the removal queue: chunks of layers removed
// since the last call, reported exactly once.
func (w *World) AllChunksToBeRemoved() []RemovedChunk {
	out := w.removed
	w.removed = nil
	return out
}

// Clear drops every layer without going through the removal queue; it is
// used for wholesale reloads where the caller rebuilds from scratch.
func (w *World) Clear() {
	w.layers = nil
	w.removed = nil
	w.nextID = 1
}
