// Package hex implements coordinate math for pointy-top hexagonal grids.
//
// Three encodings of the same lattice are provided: Axial (q, r), Cube
// (x, y, z with x+y+z=0) and odd-r Offset (col, row). All are plain value
// types; every operation returns a new value and is safe for concurrent
// use. Distance, rotation and line drawing work in cube space; convert
// with ToCube and back with ToAxial or ToOffset.
//
// Integers are Go ints. The plain arithmetic wraps silently on overflow
// like any Go int; callers near the limits use AddChecked, SubChecked,
// NegChecked and DistanceChecked, which report ErrOverflow.
package hex
