package hex

// Rotate turns c by 60 degrees about the origin.
func (c Cube) Rotate(clockwise bool) Cube {
	if clockwise {
		return Cube{X: -c.Z, Y: -c.X, Z: -c.Y}
	}
	return Cube{X: -c.Y, Y: -c.Z, Z: -c.X}
}

// RotateAround turns c by 60 degrees about pivot.
func (c Cube) RotateAround(pivot Cube, clockwise bool) Cube {
	return c.Sub(pivot).Rotate(clockwise).Add(pivot)
}

// RotateSteps turns c by n*60 degrees clockwise about the origin. Negative
// n turns counter-clockwise; six steps in either sense is the identity.
func (c Cube) RotateSteps(n int) Cube {
	n = ((n % 6) + 6) % 6
	for i := 0; i < n; i++ {
		c = c.Rotate(true)
	}
	return c
}
