package blockpack

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"voxedit/internal/registry"
	"voxedit/internal/shape"
	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
)

// Load parses a pack file. Image paths stay relative to the pack file's
// directory until Apply resolves them.
func Load(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read pack file: %w", err)
	}
	var pack Pack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("could not unmarshal pack yaml: %w", err)
	}
	for i, ts := range pack.Tilesets {
		if ts.Image != "" && !filepath.IsAbs(ts.Image) {
			pack.Tilesets[i].Image = filepath.Join(filepath.Dir(path), ts.Image)
		}
	}
	return &pack, nil
}

// Apply registers the pack's tilesets and blocks. A pack referencing an
// unknown shape or face name is a pack bug and fails registration; holes in
// a scene caused by a *missing* pack remain the mesh builder's skip policy.
func Apply(pack *Pack, tiles *tileset.Registry, blocks *registry.BlockRegistry, shapes *shape.Registry) error {
	for _, ts := range pack.Tilesets {
		var err error
		if ts.Image != "" {
			err = tiles.RegisterFromImage(ts.ID, ts.Name, ts.Image, ts.TileSize)
		} else {
			err = tiles.Register(tileset.Tileset{
				ID:       ts.ID,
				Name:     ts.Name,
				Columns:  ts.Columns,
				Rows:     ts.Rows,
				TileSize: ts.TileSize,
			})
		}
		if err != nil {
			return fmt.Errorf("pack %q: %w", pack.Name, err)
		}
	}

	for _, bd := range pack.Blocks {
		if bd.ID <= 0 || bd.ID > 0xFFFF {
			return fmt.Errorf("pack %q: block %q: id %d out of range", pack.Name, bd.Name, bd.ID)
		}
		if _, ok := shapes.Get(bd.Shape); !ok {
			return fmt.Errorf("pack %q: block %q: unknown shape %q", pack.Name, bd.Name, bd.Shape)
		}

		def := &registry.BlockDefinition{
			ID:             uint16(bd.ID),
			Name:           bd.Name,
			ShapeID:        bd.Shape,
			Collidable:     bd.Collidable,
			DefaultTexture: tileset.TileRef{Tileset: bd.DefaultTexture.Tileset, Index: bd.DefaultTexture.Index},
		}
		if len(bd.Faces) > 0 {
			def.FaceTextures = make(map[voxel.Direction]tileset.TileRef, len(bd.Faces))
			for faceName, ref := range bd.Faces {
				dir, ok := voxel.ParseDirection(faceName)
				if !ok {
					return fmt.Errorf("pack %q: block %q: unknown face %q", pack.Name, bd.Name, faceName)
				}
				def.FaceTextures[dir] = tileset.TileRef{Tileset: ref.Tileset, Index: ref.Index}
			}
		}
		if err := blocks.Register(def); err != nil {
			return fmt.Errorf("pack %q: %w", pack.Name, err)
		}
	}
	return nil
}
