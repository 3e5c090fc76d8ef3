package snapshot

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"voxedit/internal/voxel"
	"voxedit/internal/world"
)

// ErrUnsupportedVersion is returned for any document version other than 1.
// There is no silent upgrade path.
var ErrUnsupportedVersion = errors.New("unsupported document version")

// Serialize walks every layer — visible or not — and every chunk,
// converting local coordinates back to world space and keying voxels as
// "x,y,z" strings. Layers are emitted in ascending order for stable diffs.
func Serialize(w *world.World, tilesets []TilesetDoc) *Document {
	doc := &Document{
		Version:   Version,
		ChunkSize: w.ChunkSize,
		Tilesets:  tilesets,
	}

	layers := w.Layers()
	doc.Layers = make([]LayerDoc, 0, len(layers))
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].Order < layers[j].Order })

	for _, l := range layers {
		ld := LayerDoc{
			ID:      l.ID,
			Name:    l.Name,
			Visible: l.Visible,
			Order:   l.Order,
			Voxels:  make(map[string]VoxelDoc),
		}
		if l.Offset != (voxel.Coord{}) {
			ld.Offset = &OffsetDoc{X: l.Offset.X, Y: l.Offset.Y, Z: l.Offset.Z}
		}
		for _, c := range l.Chunks() {
			origin := c.Origin()
			for idx, e := range c.Entries() {
				pos := origin.Add(c.LocalCoord(idx)).Add(l.Offset)
				ld.Voxels[pos.String()] = VoxelDoc{
					Block:     int(e.Block),
					Transform: int(e.Transform),
				}
			}
		}
		doc.Layers = append(doc.Layers, ld)
	}
	return doc
}

// Deserialize replaces the target world's contents with the document's.
// Layer ids, orders, visibility and offsets are restored verbatim; voxels
// re-enter through the normal world-space write path so offset arithmetic
// is applied once, consistently. Malformed voxel keys are skipped
// individually rather than failing the whole document.
func Deserialize(doc *Document, w *world.World) error {
	if doc.Version != Version {
		return fmt.Errorf("version %d: %w", doc.Version, ErrUnsupportedVersion)
	}

	w.Clear()
	if doc.ChunkSize > 0 {
		w.ChunkSize = doc.ChunkSize
	}

	layers := make([]LayerDoc, len(doc.Layers))
	copy(layers, doc.Layers)
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].Order < layers[j].Order })

	for _, ld := range layers {
		offset := voxel.Coord{}
		if ld.Offset != nil {
			offset = voxel.Coord{X: ld.Offset.X, Y: ld.Offset.Y, Z: ld.Offset.Z}
		}
		w.RestoreLayer(ld.ID, ld.Name, ld.Order, ld.Visible, offset)

		for key, vd := range ld.Voxels {
			pos, ok := parseCoordKey(key)
			if !ok {
				log.Printf("snapshot: layer %q: skipping malformed voxel key %q", ld.Name, key)
				continue
			}
			if vd.Block <= 0 || vd.Block > 0xFFFF {
				log.Printf("snapshot: layer %q: skipping voxel %q with block %d", ld.Name, key, vd.Block)
				continue
			}
			if err := w.SetVoxelAt(ld.Name, pos, voxel.Entry{
				Block:     uint16(vd.Block),
				Transform: voxel.Transform(vd.Transform),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseCoordKey(key string) (voxel.Coord, bool) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return voxel.Coord{}, false
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return voxel.Coord{}, false
		}
		vals[i] = v
	}
	return voxel.Coord{X: vals[0], Y: vals[1], Z: vals[2]}, true
}
