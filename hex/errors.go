package hex

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDirection is returned when a direction index cannot be
	// resolved to one of the six table entries.
	ErrInvalidDirection = errors.New("hex: invalid direction")
	// ErrDegenerateLine is returned when a line sample is requested for a
	// zero-length segment, where no step size exists.
	ErrDegenerateLine = errors.New("hex: degenerate line")
	// ErrOverflow is returned by the checked arithmetic helpers.
	ErrOverflow = errors.New("hex: integer overflow")
	// ErrIndexRange is returned when a sample index lies outside a line.
	ErrIndexRange = errors.New("hex: index out of range")
)

func addInt(a, b int) (int, bool) {
	s := a + b
	// overflow iff both operands share a sign that the sum does not
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}

func negInt(a int) (int, bool) {
	if a == math.MinInt {
		return 0, false
	}
	return -a, true
}

// AddChecked returns c+d, or ErrOverflow if any component wraps.
func (c Cube) AddChecked(d Cube) (Cube, error) {
	x, okX := addInt(c.X, d.X)
	y, okY := addInt(c.Y, d.Y)
	z, okZ := addInt(c.Z, d.Z)
	if !okX || !okY || !okZ {
		return Cube{}, fmt.Errorf("add %v + %v: %w", c, d, ErrOverflow)
	}
	return Cube{x, y, z}, nil
}

// NegChecked returns -c, or ErrOverflow if a component is math.MinInt.
func (c Cube) NegChecked() (Cube, error) {
	x, okX := negInt(c.X)
	y, okY := negInt(c.Y)
	z, okZ := negInt(c.Z)
	if !okX || !okY || !okZ {
		return Cube{}, fmt.Errorf("negate %v: %w", c, ErrOverflow)
	}
	return Cube{x, y, z}, nil
}

// SubChecked returns c-d, or ErrOverflow if any step wraps.
func (c Cube) SubChecked(d Cube) (Cube, error) {
	n, err := d.NegChecked()
	if err != nil {
		return Cube{}, fmt.Errorf("subtract %v - %v: %w", c, d, ErrOverflow)
	}
	out, err := c.AddChecked(n)
	if err != nil {
		return Cube{}, fmt.Errorf("subtract %v - %v: %w", c, d, ErrOverflow)
	}
	return out, nil
}
