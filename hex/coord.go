package hex

// Axial represents axial coordinates (q, r) for pointy-top orientation.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// Offset represents "odd-r" offset coordinates: odd rows are shoved right
// by half a hex, which matches row-major rectangular storage.
type Offset struct {
	Col int
	Row int
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{a.Q - b.Q, a.R - b.R} }

// Neg returns -a.
func (a Axial) Neg() Axial { return Axial{-a.Q, -a.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Add returns c+d in cube space.
func (c Cube) Add(d Cube) Cube { return Cube{c.X + d.X, c.Y + d.Y, c.Z + d.Z} }

// Neg returns -c.
func (c Cube) Neg() Cube { return Cube{-c.X, -c.Y, -c.Z} }

// Sub returns c-d, computed as c + (-d).
func (c Cube) Sub(d Cube) Cube { return c.Add(d.Neg()) }

// Mul scales a cube vector by k.
func (c Cube) Mul(k int) Cube { return Cube{c.X * k, c.Y * k, c.Z * k} }

// Valid reports whether c lies on the cube lattice plane x+y+z=0.
func (c Cube) Valid() bool { return c.X+c.Y+c.Z == 0 }

// Add returns o+p componentwise. The result is only a lattice step when p
// comes from the direction table for o's row parity.
func (o Offset) Add(p Offset) Offset { return Offset{o.Col + p.Col, o.Row + p.Row} }

// Sub returns o-p componentwise.
func (o Offset) Sub(p Offset) Offset { return Offset{o.Col - p.Col, o.Row - p.Row} }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	y := -x - z
	return Cube{X: x, Y: y, Z: z}
}

// ToAxial converts cube to axial. Y is dropped; it is recoverable as -q-r.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// ToOffset converts cube to odd-r offset coordinates.
func (c Cube) ToOffset() Offset {
	return Offset{Col: c.X + halfEvenBelow(c.Z), Row: c.Z}
}

// ToCube converts odd-r offset coordinates to cube.
func (o Offset) ToCube() Cube {
	x := o.Col - halfEvenBelow(o.Row)
	z := o.Row
	return Cube{X: x, Y: -x - z, Z: z}
}

// ToOffset converts axial to odd-r offset coordinates.
func (a Axial) ToOffset() Offset { return a.ToCube().ToOffset() }

// ToAxial converts odd-r offset coordinates to axial.
func (o Offset) ToAxial() Axial { return o.ToCube().ToAxial() }

// Parity returns 0 for even rows and 1 for odd rows, negative rows included.
func (o Offset) Parity() int { return o.Row & 1 }

// halfEvenBelow returns (n - (n&1)) / 2. n&1 is 1 for every odd n in two's
// complement, so the numerator is always even and the division is exact;
// this equals floor(n/2) for negative n as well.
func halfEvenBelow(n int) int {
	return (n - (n & 1)) / 2
}
