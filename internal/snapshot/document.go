// Package snapshot converts a world to and from the versioned, human-diffable
// interchange document, and reads/writes scene files. Long-term storage
// policy belongs to the caller; this package only defines the interchange
// shape and the codec around it.
package snapshot

import (
	"encoding/json"
)

// Version is the only interchange version this codec accepts.
const Version = 1

// Document is the interchange form of a whole world. `Blocks` is present
// only when the document is self-contained (e.g. produced by a format
// converter); it is absent when the caller's own registry is authoritative.
type Document struct {
	Version      int               `json:"version"`
	ChunkSize    int               `json:"chunkSize"`
	Tilesets     []TilesetDoc      `json:"tilesets,omitempty"`
	Blocks       []BlockDoc        `json:"blocks,omitempty"`
	Layers       []LayerDoc        `json:"layers"`
	ObjectLayers []json.RawMessage `json:"objectLayers,omitempty"`
}

// TilesetDoc describes one atlas grid.
type TilesetDoc struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Columns  int    `json:"columns"`
	Rows     int    `json:"rows"`
	TileSize int    `json:"tileSize,omitempty"`
}

// BlockDoc is a self-contained block definition.
type BlockDoc struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Shape          string             `json:"shape"`
	Collidable     bool               `json:"collidable"`
	DefaultTexture TileRefDoc         `json:"defaultTexture"`
	Faces          map[string]TileRefDoc `json:"faces,omitempty"`
}

// TileRefDoc mirrors tileset.TileRef in the document.
type TileRefDoc struct {
	Tileset int `json:"tileset"`
	Index   int `json:"index"`
}

// LayerDoc is one layer with its voxels keyed by "x,y,z" world coordinates.
type LayerDoc struct {
	ID      int                 `json:"id"`
	Name    string              `json:"name"`
	Visible bool                `json:"visible"`
	Order   int                 `json:"order"`
	Offset  *OffsetDoc          `json:"offset,omitempty"`
	Voxels  map[string]VoxelDoc `json:"voxels"`
}

// OffsetDoc is a layer's world-space translation.
type OffsetDoc struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// VoxelDoc is one stored voxel.
type VoxelDoc struct {
	Block     int `json:"block"`
	Transform int `json:"transform"`
}
