package meshing

// GeometryData holds the vertex buffers for one texture atlas of one
// chunk. Positions are chunk-local; the renderer places the chunk node at
// chunkOrigin + layerOffset.
type GeometryData struct {
	Positions []float32 // xyz triplets
	Normals   []float32 // xyz triplets
	UVs       []float32 // uv pairs
	Indices   []uint32
}

// VertexCount returns the number of vertices in the buffer.
func (g *GeometryData) VertexCount() int { return len(g.Positions) / 3 }

// IsEmpty reports whether the buffer holds no geometry.
func (g *GeometryData) IsEmpty() bool { return len(g.Indices) == 0 }
