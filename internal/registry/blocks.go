package registry

import (
	"errors"
	"fmt"

	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
)

// ErrInvalidBlockID is returned for block id 0, which is reserved for air.
var ErrInvalidBlockID = errors.New("block id 0 is reserved for air")

// BlockDefinition binds a block id to a shape and its textures. Definitions
// are immutable after registration apart from the one-time tileset back-fill
// Register performs.
type BlockDefinition struct {
	ID             uint16
	Name           string
	ShapeID        string
	FaceTextures   map[voxel.Direction]tileset.TileRef
	DefaultTexture tileset.TileRef
	Collidable     bool
}

// FaceTexture resolves the texture for one face, falling back to the
// block's default texture.
func (d *BlockDefinition) FaceTexture(dir voxel.Direction) tileset.TileRef {
	if ref, ok := d.FaceTextures[dir]; ok {
		return ref
	}
	return d.DefaultTexture
}

// BlockRegistry is the id → definition table. It is an owned object passed
// into the mesh builder rather than a process-wide singleton, so scenes can
// carry independent block packs.
type BlockRegistry struct {
	blocks map[uint16]*BlockDefinition
	names  map[string]uint16
	tiles  *tileset.Registry
}

func NewBlockRegistry(tiles *tileset.Registry) *BlockRegistry {
	return &BlockRegistry{
		blocks: make(map[uint16]*BlockDefinition),
		names:  make(map[string]uint16),
		tiles:  tiles,
	}
}

// Register adds a definition. Block id 0 is rejected: it is the air value
// and must never resolve to a definition. Unqualified tile refs are
// back-filled with the current default tileset id, once, here.
func (r *BlockRegistry) Register(def *BlockDefinition) error {
	if def.ID == 0 {
		return fmt.Errorf("register %q: %w", def.Name, ErrInvalidBlockID)
	}
	if _, ok := r.blocks[def.ID]; ok {
		return fmt.Errorf("register %q: block id %d already taken", def.Name, def.ID)
	}

	if r.tiles != nil {
		if id := r.tiles.DefaultTilesetID(); id > 0 {
			if def.DefaultTexture.Tileset == 0 {
				def.DefaultTexture.Tileset = id
			}
			for dir, ref := range def.FaceTextures {
				if ref.Tileset == 0 {
					ref.Tileset = id
					def.FaceTextures[dir] = ref
				}
			}
		}
	}

	r.blocks[def.ID] = def
	if def.Name != "" {
		r.names[def.Name] = def.ID
	}
	return nil
}

// Get looks a definition up by id. Unregistered ids are a missing-data
// condition, not an error; the mesh builder skips such voxels.
func (r *BlockRegistry) Get(id uint16) (*BlockDefinition, bool) {
	def, ok := r.blocks[id]
	return def, ok
}

// Lookup resolves a block name to its id.
func (r *BlockRegistry) Lookup(name string) (uint16, bool) {
	id, ok := r.names[name]
	return id, ok
}

// Len returns the number of registered definitions.
func (r *BlockRegistry) Len() int { return len(r.blocks) }
