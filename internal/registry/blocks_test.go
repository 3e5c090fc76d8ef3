package registry

import (
	"errors"
	"testing"

	"voxedit/internal/shape"
	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
)

func TestRegisterRejectsAirID(t *testing.T) {
	r := NewBlockRegistry(nil)
	err := r.Register(&BlockDefinition{ID: 0, Name: "ghost", ShapeID: shape.Cube})
	if !errors.Is(err, ErrInvalidBlockID) {
		t.Fatalf("got %v, want ErrInvalidBlockID", err)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	r := NewBlockRegistry(nil)
	if err := r.Register(&BlockDefinition{ID: 1, Name: "stone", ShapeID: shape.Cube}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register(&BlockDefinition{ID: 1, Name: "grass", ShapeID: shape.Cube}); err == nil {
		t.Fatal("duplicate id must fail")
	}
}

func TestTilesetBackfill(t *testing.T) {
	tiles := tileset.NewRegistry()
	if err := tiles.Register(tileset.Tileset{ID: 3, Name: "terrain", Columns: 4, Rows: 4}); err != nil {
		t.Fatalf("tileset: %v", err)
	}

	r := NewBlockRegistry(tiles)
	def := &BlockDefinition{
		ID:      7,
		Name:    "grass",
		ShapeID: shape.Cube,
		FaceTextures: map[voxel.Direction]tileset.TileRef{
			voxel.DirUp:   {Index: 1},
			voxel.DirDown: {Tileset: 9, Index: 2},
		},
		DefaultTexture: tileset.TileRef{Index: 0},
	}
	if err := r.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, _ := r.Get(7)
	if got.DefaultTexture.Tileset != 3 {
		t.Errorf("default texture tileset: got %d, want back-filled 3", got.DefaultTexture.Tileset)
	}
	if got.FaceTextures[voxel.DirUp].Tileset != 3 {
		t.Errorf("up face tileset: got %d, want back-filled 3", got.FaceTextures[voxel.DirUp].Tileset)
	}
	if got.FaceTextures[voxel.DirDown].Tileset != 9 {
		t.Errorf("explicit tileset must not be rewritten, got %d", got.FaceTextures[voxel.DirDown].Tileset)
	}
}

func TestFaceTextureFallback(t *testing.T) {
	def := &BlockDefinition{
		ID:             1,
		ShapeID:        shape.Cube,
		FaceTextures:   map[voxel.Direction]tileset.TileRef{voxel.DirUp: {Tileset: 1, Index: 5}},
		DefaultTexture: tileset.TileRef{Tileset: 1, Index: 2},
	}
	if ref := def.FaceTexture(voxel.DirUp); ref.Index != 5 {
		t.Errorf("up override: got index %d, want 5", ref.Index)
	}
	if ref := def.FaceTexture(voxel.DirNorth); ref.Index != 2 {
		t.Errorf("fallback: got index %d, want 2", ref.Index)
	}
}

func TestLookupByName(t *testing.T) {
	r := NewBlockRegistry(nil)
	if err := r.Register(&BlockDefinition{ID: 4, Name: "ramp_stone", ShapeID: shape.Ramp}); err != nil {
		t.Fatalf("register: %v", err)
	}
	id, ok := r.Lookup("ramp_stone")
	if !ok || id != 4 {
		t.Fatalf("lookup: got %d/%v", id, ok)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Fatal("unknown name must not resolve")
	}
}
