package voxel

// Direction identifies one of the six axis-aligned neighbour directions.
// DirNone is the "always emit" sentinel used by faces whose geometry points
// at no single axis (slopes, interior surfaces); such faces never take part
// in neighbour culling.
type Direction uint8

const (
	DirEast  Direction = iota // +X
	DirWest                   // -X
	DirUp                     // +Y
	DirDown                   // -Y
	DirSouth                  // +Z
	DirNorth                  // -Z
	DirNone

	NumDirections = 6
)

var dirNames = [...]string{"east", "west", "up", "down", "south", "north", "none"}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "invalid"
}

// ParseDirection maps the lowercase face names used by block packs and
// interchange documents back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range dirNames[:NumDirections] {
		if n == s {
			return Direction(i), true
		}
	}
	return DirNone, false
}

var dirOffsets = [NumDirections]Coord{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// Offset returns the unit step toward d. DirNone has no offset.
func (d Direction) Offset() Coord {
	if d >= NumDirections {
		return Coord{}
	}
	return dirOffsets[d]
}

var opposites = [NumDirections]Direction{
	DirWest, DirEast, DirDown, DirUp, DirNorth, DirSouth,
}

func (d Direction) Opposite() Direction {
	if d >= NumDirections {
		return DirNone
	}
	return opposites[d]
}

// One 90° step around the vertical axis: +X→-Z→-X→+Z→+X. Up and Down are
// fixed points, as is the sentinel.
var rotateOnce = [NumDirections]Direction{
	DirNorth, DirSouth, DirUp, DirDown, DirEast, DirWest,
}

// RotateY rotates d by the given number of 90° steps around the Y axis.
func (d Direction) RotateY(steps int) Direction {
	if d >= NumDirections {
		return d
	}
	for i := 0; i < steps&3; i++ {
		d = rotateOnce[d]
	}
	return d
}

// FlipY swaps Up and Down; horizontal directions are unchanged.
func (d Direction) FlipY() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}
