package voxel

import "testing"

func TestTransformPacking(t *testing.T) {
	for rot := 0; rot < 4; rot++ {
		for _, fx := range []bool{false, true} {
			for _, fz := range []bool{false, true} {
				for _, fy := range []bool{false, true} {
					tr := NewTransform(rot, fx, fz, fy)
					if tr.Rotation() != rot {
						t.Fatalf("rotation: got %d, want %d", tr.Rotation(), rot)
					}
					if tr.FlipX() != fx || tr.FlipZ() != fz || tr.FlipY() != fy {
						t.Fatalf("flips: got %v/%v/%v, want %v/%v/%v",
							tr.FlipX(), tr.FlipZ(), tr.FlipY(), fx, fz, fy)
					}
				}
			}
		}
	}
}

func TestRotationInverse(t *testing.T) {
	for rot := 0; rot < 4; rot++ {
		tr := NewTransform(rot, false, false, false)
		for d := Direction(0); d < NumDirections; d++ {
			rotated := d.RotateY(rot)
			if back := rotated.RotateY(tr.InverseRotation()); back != d {
				t.Errorf("rot %d: %v rotated to %v, inverse gave %v", rot, d, rotated, back)
			}
		}
	}
}

func TestRotateYFullTurn(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		if got := d.RotateY(4); got != d {
			t.Errorf("%v rotated 4 steps: got %v", d, got)
		}
	}
	if got := DirEast.RotateY(1); got != DirNorth {
		t.Errorf("east rotated once: got %v, want north", got)
	}
	if got := DirUp.RotateY(3); got != DirUp {
		t.Errorf("up must be a fixed point, got %v", got)
	}
}

func TestEuclideanCoordMath(t *testing.T) {
	cases := []struct {
		world, size, div, mod int
	}{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
	}
	for _, c := range cases {
		if got := FloorDiv(c.world, c.size); got != c.div {
			t.Errorf("FloorDiv(%d,%d): got %d, want %d", c.world, c.size, got, c.div)
		}
		if got := Mod(c.world, c.size); got != c.mod {
			t.Errorf("Mod(%d,%d): got %d, want %d", c.world, c.size, got, c.mod)
		}
	}
}

func TestDirectionOpposites(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		off := d.Offset()
		opp := d.Opposite().Offset()
		if off.X+opp.X != 0 || off.Y+opp.Y != 0 || off.Z+opp.Z != 0 {
			t.Errorf("%v: offsets do not cancel", d)
		}
	}
}
