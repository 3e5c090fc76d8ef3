// voxtool inspects and converts scene files without an editor session.
//
// Usage:
//
//	voxtool [-pack pack.yaml] [-mesh] [-out scene.vxz] scene.json
//
// The scene may be plain JSON or a compressed .vxz file. With -mesh the
// whole world is remeshed and per-layer geometry totals are printed; -out
// re-saves the scene, converting between formats based on the extension.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"voxedit/internal/config"
	"voxedit/internal/meshing"
	"voxedit/internal/profiling"
	"voxedit/internal/registry"
	"voxedit/internal/shape"
	"voxedit/internal/snapshot"
	"voxedit/internal/tileset"
	"voxedit/internal/voxel"
	"voxedit/internal/world"
	"voxedit/pkg/blockpack"
)

func main() {
	packPath := flag.String("pack", "", "block pack YAML to load block and tileset definitions from")
	mesh := flag.Bool("mesh", false, "rebuild all chunk geometry and print per-layer totals")
	outPath := flag.String("out", "", "re-save the scene to this path (.json or .vxz)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: voxtool [flags] scene.json|scene%s\n", snapshot.CompressedExt)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	scenePath := flag.Arg(0)

	doc, err := snapshot.ReadFile(scenePath)
	if err != nil {
		log.Fatalf("read %s: %v", scenePath, err)
	}

	config.SetChunkSize(doc.ChunkSize)
	w := world.New(config.GetChunkSize())
	if err := snapshot.Deserialize(doc, w); err != nil {
		log.Fatalf("load %s: %v", scenePath, err)
	}

	tiles := tileset.NewRegistry()
	shapes := shape.NewRegistry()
	blocks := registry.NewBlockRegistry(tiles)
	if err := loadDefinitions(doc, *packPath, tiles, shapes, blocks); err != nil {
		log.Fatalf("definitions: %v", err)
	}

	printStats(scenePath, doc, w, blocks)

	if *mesh {
		meshStats(w, blocks, shapes, tiles)
	}

	if *outPath != "" {
		out := snapshot.Serialize(w, doc.Tilesets)
		out.Blocks = doc.Blocks
		out.ObjectLayers = doc.ObjectLayers
		if err := snapshot.WriteFile(*outPath, out); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
		fmt.Printf("wrote %s\n", *outPath)
	}
}

// loadDefinitions fills the registries from the block pack when one is
// given, otherwise from the document's own embedded definitions.
func loadDefinitions(doc *snapshot.Document, packPath string, tiles *tileset.Registry, shapes *shape.Registry, blocks *registry.BlockRegistry) error {
	if packPath != "" {
		pack, err := blockpack.Load(packPath)
		if err != nil {
			return err
		}
		return blockpack.Apply(pack, tiles, blocks, shapes)
	}

	for _, ts := range doc.Tilesets {
		err := tiles.Register(tileset.Tileset{
			ID:       ts.ID,
			Name:     ts.Name,
			Columns:  ts.Columns,
			Rows:     ts.Rows,
			TileSize: ts.TileSize,
		})
		if err != nil {
			return err
		}
	}
	for _, b := range doc.Blocks {
		def := &registry.BlockDefinition{
			ID:             uint16(b.ID),
			Name:           b.Name,
			ShapeID:        b.Shape,
			Collidable:     b.Collidable,
			DefaultTexture: tileset.TileRef{Tileset: b.DefaultTexture.Tileset, Index: b.DefaultTexture.Index},
		}
		if len(b.Faces) > 0 {
			def.FaceTextures = make(map[voxel.Direction]tileset.TileRef, len(b.Faces))
			for name, ref := range b.Faces {
				dir, ok := voxel.ParseDirection(name)
				if !ok {
					return fmt.Errorf("block %q: unknown face %q", b.Name, name)
				}
				def.FaceTextures[dir] = tileset.TileRef{Tileset: ref.Tileset, Index: ref.Index}
			}
		}
		if err := blocks.Register(def); err != nil {
			return fmt.Errorf("block %q: %w", b.Name, err)
		}
	}
	return nil
}

func printStats(path string, doc *snapshot.Document, w *world.World, blocks *registry.BlockRegistry) {
	fmt.Printf("%s: version %d, chunk size %d, %d tilesets, %d blocks, %d layers\n",
		path, doc.Version, doc.ChunkSize, len(doc.Tilesets), blocks.Len(), w.LayerCount())

	for _, l := range w.Layers() {
		voxels := 0
		for _, c := range l.Chunks() {
			voxels += c.Len()
		}
		vis := "visible"
		if !l.Visible {
			vis = "hidden"
		}
		fmt.Printf("  layer %q (order %d, %s, offset %s): %d chunks, %d voxels\n",
			l.Name, l.Order, vis, l.Offset, l.ChunkCount(), voxels)
	}
}

func meshStats(w *world.World, blocks *registry.BlockRegistry, shapes *shape.Registry, tiles *tileset.Registry) {
	profiling.Reset()

	builder := meshing.NewBuilder(w, blocks, shapes, tiles)
	rebuilder := meshing.NewRebuilder(w, builder)
	w.MarkAllDirty()

	vertsPerLayer := make(map[string]int)
	chunksMeshed := 0
	for {
		meshes := rebuilder.Tick()
		if len(meshes) == 0 {
			break
		}
		for _, m := range meshes {
			chunksMeshed++
			for _, buf := range m.Buffers {
				vertsPerLayer[m.Layer.Name] += buf.VertexCount()
			}
		}
	}

	fmt.Printf("meshed %d chunks\n", chunksMeshed)
	for _, l := range w.Layers() {
		fmt.Printf("  layer %q: %d vertices\n", l.Name, vertsPerLayer[l.Name])
	}
	fmt.Printf("timings: %s\n", profiling.Summary(4))
}
