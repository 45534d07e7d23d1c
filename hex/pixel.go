package hex

import "math"

// Point is a pixel-space position.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Corner returns corner i of a pointy-top hex of the given size (center to
// corner) centered at center. Corner i sits at 60*i+30 degrees.
func Corner(center Point, size float64, i int) Point {
	angleDeg := 60*float64(i) + 30
	angleRad := math.Pi / 180 * angleDeg
	return Point{
		X: center.X + size*math.Cos(angleRad),
		Y: center.Y + size*math.Sin(angleRad),
	}
}

// AxialToPixel converts axial to pixel coordinates for pointy-top layout.
// size is the hex radius (corner to center) in pixels.
func AxialToPixel(a Axial, size float64) (x, y float64) {
	// pointy-top: x = size*sqrt(3)*(q + r/2); y = size*3/2*r
	x = size * math.Sqrt(3) * (float64(a.Q) + float64(a.R)/2.0)
	y = size * 1.5 * float64(a.R)
	return
}

// PixelToFrac is the inverse of AxialToPixel, landing in continuous cube
// space. Round the result to obtain the containing cell.
func PixelToFrac(x, y, size float64) FracCube {
	q := (math.Sqrt(3)/3*x - y/3) / size
	r := (2.0 / 3 * y) / size
	return FracCube{X: q, Y: -q - r, Z: r}
}
