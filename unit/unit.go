// Package unit moves and turns groups of hex cells as one piece.
package unit

import (
	"fmt"

	"github.com/gravitas-015/hexgrid/hex"
)

// Unit is an ordered group of cells turned about a shared pivot.
// The pivot need not be a member, and members may repeat.
type Unit struct {
	Members []hex.Cube
	Pivot   hex.Cube
}

// New builds a unit, copying members so later edits to the caller's
// slice do not leak in.
func New(pivot hex.Cube, members ...hex.Cube) Unit {
	return Unit{Members: append([]hex.Cube(nil), members...), Pivot: pivot}
}

// FromAxial builds a unit from axial cells.
func FromAxial(pivot hex.Axial, members ...hex.Axial) Unit {
	cubes := make([]hex.Cube, len(members))
	for i, a := range members {
		cubes[i] = a.ToCube()
	}
	return Unit{Members: cubes, Pivot: pivot.ToCube()}
}

// Len returns the number of members.
func (u Unit) Len() int { return len(u.Members) }

// Cells returns a copy of the members in axial form.
func (u Unit) Cells() []hex.Axial {
	out := make([]hex.Axial, len(u.Members))
	for i, c := range u.Members {
		out[i] = c.ToAxial()
	}
	return out
}

// Rotate returns u with every member turned 60 degrees about the pivot.
func (u Unit) Rotate(clockwise bool) Unit {
	v := Unit{Members: make([]hex.Cube, 0, len(u.Members)), Pivot: u.Pivot}
	for _, h := range u.Members {
		v.Members = append(v.Members, h.RotateAround(u.Pivot, clockwise))
	}
	return v
}

// RotateSteps returns u turned n*60 degrees clockwise about the pivot;
// negative n turns counter-clockwise.
func (u Unit) RotateSteps(n int) Unit {
	v := Unit{Members: make([]hex.Cube, 0, len(u.Members)), Pivot: u.Pivot}
	for _, h := range u.Members {
		v.Members = append(v.Members, h.Sub(u.Pivot).RotateSteps(n).Add(u.Pivot))
	}
	return v
}

// Translate returns u shifted by delta. The pivot moves with the members.
func (u Unit) Translate(delta hex.Cube) Unit {
	v := Unit{Members: make([]hex.Cube, 0, len(u.Members)), Pivot: u.Pivot.Add(delta)}
	for _, h := range u.Members {
		v.Members = append(v.Members, h.Add(delta))
	}
	return v
}

// Neighbor returns u moved one step in direction d.
func (u Unit) Neighbor(d hex.Direction) (Unit, error) {
	step, err := hex.CubeDirection(d)
	if err != nil {
		return Unit{}, fmt.Errorf("unit neighbor: %w", err)
	}
	return u.Translate(step), nil
}

// Contains reports whether c is one of the members.
func (u Unit) Contains(c hex.Cube) bool {
	for _, m := range u.Members {
		if m == c {
			return true
		}
	}
	return false
}
