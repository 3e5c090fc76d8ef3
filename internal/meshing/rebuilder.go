package meshing

import (
	"voxedit/internal/config"
	"voxedit/internal/profiling"
	"voxedit/internal/world"
)

// ChunkMesh is one rebuilt chunk handed to the renderer. A nil Buffers map
// means the chunk contributes no geometry and its node should be cleared.
type ChunkMesh struct {
	Layer   *world.Layer
	Chunk   *world.Chunk
	Buffers map[int]*GeometryData
}

// Rebuilder is the per-tick driver discipline around the builder: apply
// all edits for a tick, then rebuild the chunks that became dirty, up to a
// budget. Chunks are independent units of work, so order does not matter;
// a chunk either completes or is left dirty for the next tick.
type Rebuilder struct {
	world   *world.World
	builder *Builder
}

func NewRebuilder(w *world.World, b *Builder) *Rebuilder {
	return &Rebuilder{world: w, builder: b}
}

// Tick rebuilds dirty chunks and clears their dirty flags. Chunks beyond
// the budget stay dirty and are picked up next tick.
func (r *Rebuilder) Tick() []ChunkMesh {
	defer profiling.Track("meshing.Rebuilder.Tick")()

	refs := r.world.AllDirtyChunks()
	if len(refs) == 0 {
		return nil
	}
	if budget := config.GetRebuildBudget(); budget > 0 && len(refs) > budget {
		refs = refs[:budget]
	}

	out := make([]ChunkMesh, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ChunkMesh{
			Layer:   ref.Layer,
			Chunk:   ref.Chunk,
			Buffers: r.builder.BuildChunk(ref.Layer, ref.Chunk),
		})
		ref.Chunk.SetClean()
	}
	return out
}

// RemovedChunks drains the world's removal queue for the renderer sweep.
func (r *Rebuilder) RemovedChunks() []world.RemovedChunk {
	return r.world.AllChunksToBeRemoved()
}
