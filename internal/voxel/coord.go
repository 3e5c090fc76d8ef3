package voxel

import "fmt"

// Coord is an integer grid position. Depending on context it holds world,
// layer-local or chunk coordinates.
type Coord struct {
	X, Y, Z int
}

func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// FloorDiv divides rounding toward negative infinity, so chunk indices stay
// correct for negative world coordinates.
func FloorDiv(a, size int) int {
	q := a / size
	if a%size != 0 && (a < 0) != (size < 0) {
		q--
	}
	return q
}

// Mod is the Euclidean remainder, always in [0, size).
func Mod(a, size int) int {
	return ((a % size) + size) % size
}
