package meshing

import (
	"testing"

	"voxedit/internal/config"
	"voxedit/internal/registry"
	"voxedit/internal/shape"
	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
	"voxedit/internal/world"
)

const (
	blockStone = 1
	blockRamp  = 2
	blockSlab  = 3
)

func newTestRig(t *testing.T) (*world.World, *Builder) {
	t.Helper()
	tiles := tileset.NewRegistry()
	if err := tiles.Register(tileset.Tileset{ID: 1, Name: "terrain", Columns: 4, Rows: 4, TileSize: 16}); err != nil {
		t.Fatalf("tileset: %v", err)
	}
	shapes := shape.NewRegistry()
	blocks := registry.NewBlockRegistry(tiles)
	defs := []*registry.BlockDefinition{
		{ID: blockStone, Name: "stone", ShapeID: shape.Cube, DefaultTexture: tileset.TileRef{Tileset: 1, Index: 0}},
		{ID: blockRamp, Name: "stone_ramp", ShapeID: shape.Ramp, DefaultTexture: tileset.TileRef{Tileset: 1, Index: 1}},
		{ID: blockSlab, Name: "stone_slab", ShapeID: shape.SlabBottom, DefaultTexture: tileset.TileRef{Tileset: 1, Index: 2}},
	}
	for _, d := range defs {
		if err := blocks.Register(d); err != nil {
			t.Fatalf("block %s: %v", d.Name, err)
		}
	}
	w := world.New(16)
	w.AddLayer("main")
	return w, NewBuilder(w, blocks, shapes, tiles)
}

func totalVertices(buffers map[int]*GeometryData) int {
	n := 0
	for _, g := range buffers {
		n += g.VertexCount()
	}
	return n
}

func meshChunkAt(t *testing.T, w *world.World, b *Builder, layerName string, chunkCoord voxel.Coord) map[int]*GeometryData {
	t.Helper()
	l, ok := w.Layer(layerName)
	if !ok {
		t.Fatalf("layer %q missing", layerName)
	}
	c, ok := l.Chunk(chunkCoord)
	if !ok {
		t.Fatalf("chunk %v missing in layer %q", chunkCoord, layerName)
	}
	return b.BuildChunk(l, c)
}

func TestIsolatedCube(t *testing.T) {
	w, b := newTestRig(t)
	if err := w.SetVoxelAt("main", voxel.Coord{}, voxel.Entry{Block: blockStone}); err != nil {
		t.Fatal(err)
	}
	buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
	// 6 faces, 4 vertices each
	if got := totalVertices(buffers); got != 24 {
		t.Fatalf("isolated cube: got %d vertices, want 24", got)
	}
	for _, g := range buffers {
		if len(g.Indices) != 36 {
			t.Fatalf("isolated cube: got %d indices, want 36", len(g.Indices))
		}
		if len(g.UVs) != 2*g.VertexCount() || len(g.Normals) != len(g.Positions) {
			t.Fatal("buffer attribute counts disagree")
		}
	}
}

func TestAdjacentCubesCullTouchingFaces(t *testing.T) {
	w, b := newTestRig(t)
	w.SetVoxelAt("main", voxel.Coord{X: 0}, voxel.Entry{Block: blockStone})
	w.SetVoxelAt("main", voxel.Coord{X: 1}, voxel.Entry{Block: blockStone})
	buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
	// 5 visible faces per cube: the touching pair is culled symmetrically.
	if got := totalVertices(buffers); got != 40 {
		t.Fatalf("adjacent cubes: got %d vertices, want 40", got)
	}
}

func TestCrossChunkCulling(t *testing.T) {
	w, b := newTestRig(t)
	w.SetVoxelAt("main", voxel.Coord{X: 15}, voxel.Entry{Block: blockStone})
	w.SetVoxelAt("main", voxel.Coord{X: 16}, voxel.Entry{Block: blockStone})
	buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
	if got := totalVertices(buffers); got != 20 {
		t.Fatalf("cross-chunk culling: got %d vertices, want 20", got)
	}
}

func TestCrossLayerCulling(t *testing.T) {
	w, b := newTestRig(t)
	w.AddLayer("overlay")
	w.SetVoxelAt("main", voxel.Coord{X: 0}, voxel.Entry{Block: blockStone})
	w.SetVoxelAt("overlay", voxel.Coord{X: 1}, voxel.Entry{Block: blockStone})

	buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
	if got := totalVertices(buffers); got != 20 {
		t.Fatalf("cross-layer culling: got %d vertices, want 20", got)
	}
}

func TestVoxelHiddenByHigherLayerIsSkipped(t *testing.T) {
	w, b := newTestRig(t)
	w.AddLayer("overlay") // higher order
	p := voxel.Coord{X: 2, Y: 2, Z: 2}
	w.SetVoxelAt("main", p, voxel.Entry{Block: blockStone})
	w.SetVoxelAt("overlay", p, voxel.Entry{Block: blockRamp})

	if buffers := meshChunkAt(t, w, b, "main", voxel.Coord{}); buffers != nil {
		t.Fatalf("occluded layer must contribute no geometry, got %d vertices", totalVertices(buffers))
	}
	if buffers := meshChunkAt(t, w, b, "overlay", voxel.Coord{}); buffers == nil {
		t.Fatal("winning layer must contribute geometry")
	}
}

// A ramp's culling must use the inverse of its own rotation when deciding
// whether it hides a neighbour's face. The base ramp's solid back wall
// points at +Z; one rotation step moves its open low side toward the cube,
// three steps move the back wall there.
func TestRampRotationCulling(t *testing.T) {
	// An isolated ramp has 18 vertices: three quads and two triangles.
	// rot 1: cube keeps all 24, ramp keeps all 18.
	// rot 3: the cube face against the ramp's back wall is culled, and the
	// back wall itself is culled against the cube: (24-4) + (18-4).
	cases := []struct {
		rotation int
		want     int
	}{
		{1, 42},
		{3, 34},
	}
	for _, tc := range cases {
		w, b := newTestRig(t)
		w.SetVoxelAt("main", voxel.Coord{X: 0}, voxel.Entry{Block: blockStone})
		w.SetVoxelAt("main", voxel.Coord{X: 1}, voxel.Entry{
			Block:     blockRamp,
			Transform: voxel.NewTransform(tc.rotation, false, false, false),
		})
		buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
		if got := totalVertices(buffers); got != tc.want {
			t.Errorf("rotation %d: got %d vertices, want %d", tc.rotation, got, tc.want)
		}
	}
}

// Mirroring a bottom slab vertically makes it act as a top slab: it hides
// the bottom face of a cube above it, and its own (now top) full face is
// hidden by that cube.
func TestFlipYSlabOcclusion(t *testing.T) {
	w, b := newTestRig(t)
	w.SetVoxelAt("main", voxel.Coord{Y: 0}, voxel.Entry{
		Block:     blockSlab,
		Transform: voxel.NewTransform(0, false, false, true),
	})
	w.SetVoxelAt("main", voxel.Coord{Y: 1}, voxel.Entry{Block: blockStone})
	buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
	// slab 24-4, cube 24-4
	if got := totalVertices(buffers); got != 40 {
		t.Fatalf("flipped slab under cube: got %d vertices, want 40", got)
	}

	// Without the mirror the slab's solid side faces the floor: nothing is
	// culled on either block.
	w2, b2 := newTestRig(t)
	w2.SetVoxelAt("main", voxel.Coord{Y: 0}, voxel.Entry{Block: blockSlab})
	w2.SetVoxelAt("main", voxel.Coord{Y: 1}, voxel.Entry{Block: blockStone})
	buffers = meshChunkAt(t, w2, b2, "main", voxel.Coord{})
	if got := totalVertices(buffers); got != 48 {
		t.Fatalf("plain slab under cube: got %d vertices, want 48", got)
	}
}

func TestUnregisteredBlockSkipped(t *testing.T) {
	w, b := newTestRig(t)
	w.SetVoxelAt("main", voxel.Coord{X: 0}, voxel.Entry{Block: 99})
	if buffers := meshChunkAt(t, w, b, "main", voxel.Coord{}); buffers != nil {
		t.Fatal("unregistered block must be skipped silently")
	}

	w.SetVoxelAt("main", voxel.Coord{X: 2}, voxel.Entry{Block: blockStone})
	buffers := meshChunkAt(t, w, b, "main", voxel.Coord{})
	if got := totalVertices(buffers); got != 24 {
		t.Fatalf("registered neighbour of unknown block: got %d vertices, want 24", got)
	}
}

func TestNoDefaultTilesetDefersGeometry(t *testing.T) {
	tiles := tileset.NewRegistry()
	shapes := shape.NewRegistry()
	blocks := registry.NewBlockRegistry(tiles)
	blocks.Register(&registry.BlockDefinition{ID: blockStone, Name: "stone", ShapeID: shape.Cube})

	w := world.New(16)
	l := w.AddLayer("main")
	w.SetVoxelAt("main", voxel.Coord{}, voxel.Entry{Block: blockStone})

	b := NewBuilder(w, blocks, shapes, tiles)
	c, _ := l.Chunk(voxel.Coord{})
	if buffers := b.BuildChunk(l, c); buffers != nil {
		t.Fatal("builder must defer until a default tileset is registered")
	}
}

func TestRebuilderBudget(t *testing.T) {
	old := config.GetRebuildBudget()
	config.SetRebuildBudget(1)
	defer config.SetRebuildBudget(old)

	w, b := newTestRig(t)
	w.SetVoxelAt("main", voxel.Coord{X: 0}, voxel.Entry{Block: blockStone})
	w.SetVoxelAt("main", voxel.Coord{X: 17}, voxel.Entry{Block: blockStone})

	r := NewRebuilder(w, b)
	first := r.Tick()
	if len(first) != 1 {
		t.Fatalf("first tick: got %d chunks, want 1 (budgeted)", len(first))
	}
	second := r.Tick()
	if len(second) != 1 {
		t.Fatalf("second tick: got %d chunks, want 1", len(second))
	}
	if third := r.Tick(); third != nil {
		t.Fatalf("third tick: got %d chunks, want none", len(third))
	}
}

func BenchmarkBuildChunkFullSlab(b *testing.B) {
	tiles := tileset.NewRegistry()
	tiles.Register(tileset.Tileset{ID: 1, Name: "terrain", Columns: 4, Rows: 4})
	shapes := shape.NewRegistry()
	blocks := registry.NewBlockRegistry(tiles)
	blocks.Register(&registry.BlockDefinition{ID: blockStone, Name: "stone", ShapeID: shape.Cube, DefaultTexture: tileset.TileRef{Tileset: 1}})

	w := world.New(16)
	l := w.AddLayer("main")
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			w.SetVoxelAt("main", voxel.Coord{X: x, Z: z}, voxel.Entry{Block: blockStone})
		}
	}
	builder := NewBuilder(w, blocks, shapes, tiles)
	c, _ := l.Chunk(voxel.Coord{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.BuildChunk(l, c)
	}
}
