package hex

import "fmt"

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DistanceCube returns hex distance between two cube coords.
// On the x+y+z=0 plane the sum of absolute deltas is always even.
func DistanceCube(a, b Cube) int {
	d := a.Sub(b)
	return (absInt(d.X) + absInt(d.Y) + absInt(d.Z)) / 2
}

// DistanceAxial returns hex distance between two axial coords.
func DistanceAxial(a, b Axial) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceOffset returns hex distance between two offset coords.
func DistanceOffset(a, b Offset) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// Length returns the distance from the origin to c.
func (c Cube) Length() int { return DistanceCube(c, Cube{}) }

// DistanceChecked is DistanceCube with overflow detection on the
// difference and on the summed magnitudes.
func DistanceChecked(a, b Cube) (int, error) {
	d, err := a.SubChecked(b)
	if err != nil {
		return 0, fmt.Errorf("distance %v to %v: %w", a, b, err)
	}
	sum := 0
	for _, v := range [3]int{d.X, d.Y, d.Z} {
		m, ok := negInt(v)
		if !ok {
			return 0, fmt.Errorf("distance %v to %v: %w", a, b, ErrOverflow)
		}
		if v > 0 {
			m = v
		}
		if sum, ok = addInt(sum, m); !ok {
			return 0, fmt.Errorf("distance %v to %v: %w", a, b, ErrOverflow)
		}
	}
	return sum / 2, nil
}
