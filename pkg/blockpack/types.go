// Package blockpack loads block-pack definition files: the tilesets and
// block definitions a scene's palette is built from. Packs are plain YAML
// so artists can edit them without tooling.
package blockpack

// Pack is one parsed block-pack file.
type Pack struct {
	Name     string       `yaml:"name"`
	Tilesets []TilesetDef `yaml:"tilesets"`
	Blocks   []BlockDef   `yaml:"blocks"`
}

// TilesetDef declares one atlas, either by explicit grid or by pointing at
// an image whose dimensions define the grid.
type TilesetDef struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Image    string `yaml:"image,omitempty"`
	TileSize int    `yaml:"tile_size"`
	Columns  int    `yaml:"columns,omitempty"`
	Rows     int    `yaml:"rows,omitempty"`
}

// BlockDef declares one block: its shape, per-face texture overrides and
// the fallback texture.
type BlockDef struct {
	ID             int                `yaml:"id"`
	Name           string             `yaml:"name"`
	Shape          string             `yaml:"shape"`
	Collidable     bool               `yaml:"collidable"`
	DefaultTexture TileRef            `yaml:"default_texture"`
	Faces          map[string]TileRef `yaml:"faces,omitempty"`
}

// TileRef names a tile inside an atlas; tileset 0 resolves against the
// default atlas at registration time.
type TileRef struct {
	Tileset int `yaml:"tileset"`
	Index   int `yaml:"index"`
}
