package hex

import (
	"fmt"
	"math"
)

// FracCube is a point in continuous cube space, produced by interpolation
// or pixel conversion. It is not a grid cell until rounded.
type FracCube struct {
	X float64
	Y float64
	Z float64
}

// Frac returns c as a continuous point.
func (c Cube) Frac() FracCube {
	return FracCube{float64(c.X), float64(c.Y), float64(c.Z)}
}

// Lerp interpolates between a and b: a + (b-a)*t per component.
// Lerp(a, b, 0) is exactly a and Lerp(a, b, 1) is exactly b.
func Lerp(a, b Cube, t float64) FracCube {
	return FracCube{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

func lerp(a, b int, t float64) float64 {
	fa := float64(a)
	return fa + float64(b-a)*t
}

// Round returns the lattice cell nearest to f. The component with the
// largest rounding residual is recomputed from the other two so that the
// result satisfies x+y+z=0. Ties resolve x first, then y, then z.
func (f FracCube) Round() Cube {
	rx := math.Round(f.X)
	ry := math.Round(f.Y)
	rz := math.Round(f.Z)

	dx := math.Abs(rx - f.X)
	dy := math.Abs(ry - f.Y)
	dz := math.Abs(rz - f.Z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// LinePoint returns the i-th sample of the line from a to b, where the
// line has DistanceCube(a, b) steps. It returns ErrDegenerateLine when a
// and b coincide and ErrIndexRange when i is outside [0, N].
func LinePoint(a, b Cube, i int) (Cube, error) {
	n := DistanceCube(a, b)
	if n == 0 {
		return Cube{}, fmt.Errorf("line %v to %v: %w", a, b, ErrDegenerateLine)
	}
	if i < 0 || i > n {
		return Cube{}, fmt.Errorf("line sample %d of %d: %w", i, n, ErrIndexRange)
	}
	return linePoint(a, b, n, i), nil
}

func linePoint(a, b Cube, n, i int) Cube {
	switch i {
	case 0:
		return a
	case n:
		return b
	}
	return Lerp(a, b, 1.0/float64(n)*float64(i)).Round()
}

// LineDraw returns the cells approximating the segment from a to b.
// It samples i = 0..N-1 where N = DistanceCube(a, b), so b itself is not
// included and the result has N cells. When a == b the result is [a].
func LineDraw(a, b Cube) []Cube {
	n := DistanceCube(a, b)
	if n == 0 {
		return []Cube{a}
	}
	out := make([]Cube, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, linePoint(a, b, n, i))
	}
	return out
}

// LineDrawInclusive is LineDraw with b appended: N+1 cells for N > 0,
// and [a] when a == b.
func LineDrawInclusive(a, b Cube) []Cube {
	n := DistanceCube(a, b)
	if n == 0 {
		return []Cube{a}
	}
	out := make([]Cube, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, linePoint(a, b, n, i))
	}
	return out
}
