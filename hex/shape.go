package hex

// Ring returns the axial coordinates at exact distance k from center c,
// starting k steps south-west of c and walking each side in direction
// order. If k==0, returns [c]. Negative k yields nil.
func Ring(c Axial, k int) []Axial {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(Directions[SouthWest].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Spiral returns c followed by rings 1..radius, so cells come out ordered
// by distance from c.
func Spiral(c Axial, radius int) []Axial {
	if radius < 0 {
		return nil
	}
	res := make([]Axial, 0, 1+3*radius*(radius+1))
	for k := 0; k <= radius; k++ {
		res = append(res, Ring(c, k)...)
	}
	return res
}

// Disk returns all axial coordinates at distance <= r from center c.
func Disk(c Axial, r int) []Axial {
	if r < 0 {
		return nil
	}
	res := make([]Axial, 0, 1+3*r*(r+1))
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}
