package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxedit/internal/voxel"
)

// CollisionHint tells the physics adapter how to approximate a shape.
type CollisionHint uint8

const (
	CollisionBox CollisionHint = iota
	CollisionTrimesh
	CollisionNone
)

// Face is one renderable surface of a shape. Vertices live in unit-cube
// space ([0,1]³) and wind counter-clockwise seen from outside. Cull names
// the axis direction the face nominally points toward; faces with
// voxel.DirNone are emitted unconditionally.
type Face struct {
	Cull     voxel.Direction
	Normal   mgl32.Vec3
	Vertices []mgl32.Vec3
	UVs      []mgl32.Vec2
}

// Shape is immutable geometric data shared by every voxel that references
// it. The occlusion mask records which of a neighbour's faces this shape
// fully covers, one bit per axis direction.
type Shape struct {
	ID        string
	Collision CollisionHint
	Faces     []Face

	occludes [voxel.NumDirections]bool
}

// Occludes reports whether the shape fully covers its face toward d,
// expressed in the shape's own local frame.
func (s *Shape) Occludes(d voxel.Direction) bool {
	if d >= voxel.NumDirections {
		return false
	}
	return s.occludes[d]
}

// newShape assembles a shape and its occlusion mask. The mask is explicit
// rather than derived from geometry or from the shape id.
func newShape(id string, hint CollisionHint, occludes []voxel.Direction, faces ...Face) *Shape {
	s := &Shape{ID: id, Collision: hint, Faces: faces}
	for _, d := range occludes {
		s.occludes[d] = true
	}
	return s
}

// newFace builds a face, projecting UVs from vertex positions and fixing
// the winding so it agrees with the supplied normal.
func newFace(cull voxel.Direction, normal mgl32.Vec3, verts ...mgl32.Vec3) Face {
	if len(verts) != 3 && len(verts) != 4 {
		panic(fmt.Sprintf("shape: face needs 3 or 4 vertices, got %d", len(verts)))
	}
	a := verts[1].Sub(verts[0])
	b := verts[2].Sub(verts[0])
	if a.Cross(b).Dot(normal) < 0 {
		for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
			verts[i], verts[j] = verts[j], verts[i]
		}
	}
	uvs := make([]mgl32.Vec2, len(verts))
	for i, v := range verts {
		uvs[i] = projectUV(normal, v)
	}
	return Face{Cull: cull, Normal: normal, Vertices: verts, UVs: uvs}
}

// projectUV maps a unit-cube vertex onto the texture plane of the axis the
// normal leans toward.
func projectUV(normal, v mgl32.Vec3) mgl32.Vec2 {
	ax := math.Abs(float64(normal.X()))
	ay := math.Abs(float64(normal.Y()))
	az := math.Abs(float64(normal.Z()))
	switch {
	case ay >= ax && ay >= az:
		return mgl32.Vec2{v.X(), v.Z()}
	case ax >= az:
		return mgl32.Vec2{v.Z(), 1 - v.Y()}
	default:
		return mgl32.Vec2{v.X(), 1 - v.Y()}
	}
}

// mirrorY derives the upside-down variant of a shape: vertices and normals
// are mirrored through y=0.5, cull directions and the occlusion mask swap
// Up and Down.
func mirrorY(id string, src *Shape) *Shape {
	out := &Shape{ID: id, Collision: src.Collision}
	for _, f := range src.Faces {
		verts := make([]mgl32.Vec3, len(f.Vertices))
		for i, v := range f.Vertices {
			verts[i] = mgl32.Vec3{v.X(), 1 - v.Y(), v.Z()}
		}
		n := mgl32.Vec3{f.Normal.X(), -f.Normal.Y(), f.Normal.Z()}
		out.Faces = append(out.Faces, newFace(f.Cull.FlipY(), n, verts...))
	}
	for d := voxel.Direction(0); d < voxel.NumDirections; d++ {
		out.occludes[d.FlipY()] = src.occludes[d]
	}
	return out
}

// Registry is the id → shape lookup table. Shapes are registered once and
// handed out as shared read-only values.
type Registry struct {
	shapes map[string]*Shape
}

// NewRegistry returns a registry pre-populated with every built-in shape.
func NewRegistry() *Registry {
	r := &Registry{shapes: make(map[string]*Shape)}
	for _, s := range builtins() {
		r.shapes[s.ID] = s
	}
	return r
}

// Register adds a custom shape. Re-registering an id is a caller bug.
func (r *Registry) Register(s *Shape) error {
	if s.ID == "" {
		return fmt.Errorf("shape: empty id")
	}
	if _, ok := r.shapes[s.ID]; ok {
		return fmt.Errorf("shape: %q already registered", s.ID)
	}
	r.shapes[s.ID] = s
	return nil
}

// Get looks a shape up by id.
func (r *Registry) Get(id string) (*Shape, bool) {
	s, ok := r.shapes[id]
	return s, ok
}
