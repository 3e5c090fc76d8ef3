package blockpack

import (
	"os"
	"path/filepath"
	"testing"

	"voxedit/internal/registry"
	"voxedit/internal/shape"
	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
)

const samplePack = `
name: basic
tilesets:
  - id: 1
    name: terrain
    tile_size: 16
    columns: 8
    rows: 8
blocks:
  - id: 1
    name: grass
    shape: cube
    collidable: true
    default_texture: {tileset: 1, index: 3}
    faces:
      up: {tileset: 1, index: 0}
      down: {tileset: 1, index: 2}
  - id: 2
    name: stone_ramp
    shape: ramp
    collidable: true
    default_texture: {index: 1}
`

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	return path
}

func newRegistries() (*tileset.Registry, *registry.BlockRegistry, *shape.Registry) {
	tiles := tileset.NewRegistry()
	return tiles, registry.NewBlockRegistry(tiles), shape.NewRegistry()
}

func TestLoadAndApply(t *testing.T) {
	pack, err := Load(writePack(t, samplePack))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if pack.Name != "basic" || len(pack.Blocks) != 2 {
		t.Fatalf("unexpected pack: %+v", pack)
	}

	tiles, blocks, shapes := newRegistries()
	if err := Apply(pack, tiles, blocks, shapes); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if tiles.DefaultTilesetID() != 1 {
		t.Errorf("default tileset: got %d, want 1", tiles.DefaultTilesetID())
	}

	def, ok := blocks.Get(1)
	if !ok {
		t.Fatal("grass not registered")
	}
	if def.ShapeID != shape.Cube || !def.Collidable {
		t.Errorf("grass definition wrong: %+v", def)
	}
	if ref := def.FaceTexture(voxel.DirUp); ref.Index != 0 {
		t.Errorf("grass up face: got index %d, want 0", ref.Index)
	}
	if ref := def.FaceTexture(voxel.DirSouth); ref.Index != 3 {
		t.Errorf("grass fallback: got index %d, want 3", ref.Index)
	}

	ramp, ok := blocks.Get(2)
	if !ok {
		t.Fatal("stone_ramp not registered")
	}
	if ramp.DefaultTexture.Tileset != 1 {
		t.Errorf("ramp texture must be back-filled to tileset 1, got %d", ramp.DefaultTexture.Tileset)
	}
}

func TestApplyRejectsUnknownShape(t *testing.T) {
	pack, err := Load(writePack(t, `
name: broken
tilesets:
  - {id: 1, name: t, tile_size: 16, columns: 2, rows: 2}
blocks:
  - id: 1
    name: mystery
    shape: dodecahedron
    default_texture: {index: 0}
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tiles, blocks, shapes := newRegistries()
	if err := Apply(pack, tiles, blocks, shapes); err == nil {
		t.Fatal("unknown shape must fail apply")
	}
}

func TestApplyRejectsUnknownFace(t *testing.T) {
	pack, err := Load(writePack(t, `
name: broken
tilesets:
  - {id: 1, name: t, tile_size: 16, columns: 2, rows: 2}
blocks:
  - id: 1
    name: grass
    shape: cube
    default_texture: {index: 0}
    faces:
      sideways: {index: 1}
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tiles, blocks, shapes := newRegistries()
	if err := Apply(pack, tiles, blocks, shapes); err == nil {
		t.Fatal("unknown face name must fail apply")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing pack file must fail")
	}
}
