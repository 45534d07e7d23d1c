package hex

import "fmt"

// Direction indexes one of the six hex-adjacent steps. Any int is accepted
// and wraps modulo 6, so -1 is SouthEast and 6 is East again.
type Direction int

// Directions in pointy-top orientation, counter-clockwise from east.
const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// Directions for axial neighbors in pointy-top orientation.
var Directions = []Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

var cubeDirections = [6]Cube{
	{+1, -1, 0}, {+1, 0, -1}, {0, +1, -1},
	{-1, +1, 0}, {-1, 0, +1}, {0, -1, +1},
}

// offsetDirections is indexed by row parity first; rows of different
// parity see their upper and lower neighbors at different column deltas.
var offsetDirections = [2][6]Offset{
	{{+1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, +1}, {0, +1}},
	{{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {0, +1}, {+1, +1}},
}

// diagonals lie between consecutive directions at distance 2.
var cubeDiagonals = [6]Cube{
	{+2, -1, -1}, {+1, +1, -2}, {-1, +2, -1},
	{-2, +1, +1}, {-1, -1, +2}, {+1, -2, +1},
}

// Normalize wraps d into [0, 6).
func (d Direction) Normalize() Direction {
	return ((d % 6) + 6) % 6
}

// index normalizes d and fails if the result still cannot address a table.
func (d Direction) index() (int, error) {
	i := int(d.Normalize())
	if i < 0 || i >= 6 {
		return 0, fmt.Errorf("direction %d: %w", int(d), ErrInvalidDirection)
	}
	return i, nil
}

func (d Direction) String() string {
	switch d.Normalize() {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case West:
		return "W"
	case SouthWest:
		return "SW"
	case SouthEast:
		return "SE"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// CubeDirection returns the unit cube step for d.
func CubeDirection(d Direction) (Cube, error) {
	i, err := d.index()
	if err != nil {
		return Cube{}, err
	}
	return cubeDirections[i], nil
}

// AxialDirection returns the unit axial step for d.
func AxialDirection(d Direction) (Axial, error) {
	i, err := d.index()
	if err != nil {
		return Axial{}, err
	}
	return Directions[i], nil
}

// OffsetDirection returns the offset step for d from a row of the given
// parity. Only the low bit of parity is used.
func OffsetDirection(parity int, d Direction) (Offset, error) {
	i, err := d.index()
	if err != nil {
		return Offset{}, err
	}
	return offsetDirections[parity&1][i], nil
}

// CubeDiagonal returns the diagonal step between d and d+1.
func CubeDiagonal(d Direction) (Cube, error) {
	i, err := d.index()
	if err != nil {
		return Cube{}, err
	}
	return cubeDiagonals[i], nil
}

// Neighbor returns the adjacent cube in direction d.
func (c Cube) Neighbor(d Direction) (Cube, error) {
	step, err := CubeDirection(d)
	if err != nil {
		return Cube{}, err
	}
	return c.Add(step), nil
}

// DiagonalNeighbor returns the cube two steps away between d and d+1.
func (c Cube) DiagonalNeighbor(d Direction) (Cube, error) {
	step, err := CubeDiagonal(d)
	if err != nil {
		return Cube{}, err
	}
	return c.Add(step), nil
}

// Neighbor returns the adjacent axial coordinate in direction d.
func (a Axial) Neighbor(d Direction) (Axial, error) {
	step, err := AxialDirection(d)
	if err != nil {
		return Axial{}, err
	}
	return a.Add(step), nil
}

// Neighbor returns the adjacent offset coordinate in direction d, using
// the table for o's row parity.
func (o Offset) Neighbor(d Direction) (Offset, error) {
	step, err := OffsetDirection(o.Parity(), d)
	if err != nil {
		return Offset{}, err
	}
	return o.Add(step), nil
}

// Neighbors returns all six axial neighbors of a, in direction order.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}
