// Package tileset resolves tile references into normalized UV regions of a
// texture atlas. Texture pixels never enter the voxel core; only atlas
// dimensions are needed to compute regions.
package tileset

import (
	"fmt"
	"image"
	"os"

	// Loading an atlas only needs its dimensions; register the decoders the
	// editor's asset pipeline produces.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// TileRef names one tile of one atlas. Tileset 0 means "the default
// tileset", resolved at registration or lookup time.
type TileRef struct {
	Tileset int `json:"tileset" yaml:"tileset"`
	Index   int `json:"index" yaml:"index"`
}

// UVRegion is the normalized rectangle of a tile within its atlas.
type UVRegion struct {
	OffsetU, OffsetV float32
	ScaleU, ScaleV   float32
}

// Tileset describes one atlas as a regular grid of tiles.
type Tileset struct {
	ID       int
	Name     string
	Columns  int
	Rows     int
	TileSize int
}

// Registry is the texture collaborator handed to the mesh builder. The
// default tileset id is -1 until the first atlas arrives; the builder
// defers chunk geometry until then.
type Registry struct {
	sets      map[int]*Tileset
	defaultID int
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[int]*Tileset), defaultID: -1}
}

// Register adds an atlas. The first registered atlas becomes the default.
func (r *Registry) Register(ts Tileset) error {
	if ts.ID <= 0 {
		return fmt.Errorf("tileset: id must be >= 1, got %d", ts.ID)
	}
	if ts.Columns <= 0 || ts.Rows <= 0 {
		return fmt.Errorf("tileset %d: grid %dx%d is invalid", ts.ID, ts.Columns, ts.Rows)
	}
	r.sets[ts.ID] = &ts
	if r.defaultID < 0 {
		r.defaultID = ts.ID
	}
	return nil
}

// RegisterFromImage derives the tile grid from the atlas image on disk.
func (r *Registry) RegisterFromImage(id int, name, path string, tileSize int) error {
	if tileSize <= 0 {
		return fmt.Errorf("tileset %d: tile size must be positive", id)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tileset %d: %w", id, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("tileset %d: decode %s: %w", id, path, err)
	}
	return r.Register(Tileset{
		ID:       id,
		Name:     name,
		Columns:  cfg.Width / tileSize,
		Rows:     cfg.Height / tileSize,
		TileSize: tileSize,
	})
}

// DefaultTilesetID returns the default atlas id, or -1 when no atlas has
// been registered yet.
func (r *Registry) DefaultTilesetID() int { return r.defaultID }

// SetDefault overrides which atlas unqualified tile refs resolve against.
func (r *Registry) SetDefault(id int) error {
	if _, ok := r.sets[id]; !ok {
		return fmt.Errorf("tileset: unknown id %d", id)
	}
	r.defaultID = id
	return nil
}

// TileUV resolves a tile reference to its UV region. A zero tileset id in
// the ref falls back to the default atlas.
func (r *Registry) TileUV(ref TileRef) (UVRegion, bool) {
	id := ref.Tileset
	if id == 0 {
		id = r.defaultID
	}
	ts, ok := r.sets[id]
	if !ok {
		return UVRegion{}, false
	}
	if ref.Index < 0 || ref.Index >= ts.Columns*ts.Rows {
		return UVRegion{}, false
	}
	su := 1 / float32(ts.Columns)
	sv := 1 / float32(ts.Rows)
	return UVRegion{
		OffsetU: float32(ref.Index%ts.Columns) * su,
		OffsetV: float32(ref.Index/ts.Columns) * sv,
		ScaleU:  su,
		ScaleV:  sv,
	}, true
}

// ResolveTilesetID maps a ref's tileset (possibly 0) to the concrete atlas
// id geometry should be batched under.
func (r *Registry) ResolveTilesetID(ref TileRef) int {
	if ref.Tileset == 0 {
		return r.defaultID
	}
	return ref.Tileset
}

// All returns the registered tilesets in unspecified order.
func (r *Registry) All() []*Tileset {
	out := make([]*Tileset, 0, len(r.sets))
	for _, ts := range r.sets {
		out = append(out, ts)
	}
	return out
}
