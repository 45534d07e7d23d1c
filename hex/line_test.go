package hex

import (
	"errors"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	cells := Disk(Axial{1, -2}, 4)
	for _, pa := range cells {
		for _, pb := range []Axial{{0, 0}, {7, -3}, {-5, 9}, {2, 2}} {
			a, b := pa.ToCube(), pb.ToCube()
			if got := Lerp(a, b, 0); got != a.Frac() {
				t.Fatalf("Lerp(%v, %v, 0) = %v, want %v", a, b, got, a.Frac())
			}
			if got := Lerp(a, b, 1); got != b.Frac() {
				t.Fatalf("Lerp(%v, %v, 1) = %v, want %v", a, b, got, b.Frac())
			}
		}
	}
	mid := Lerp(Cube{0, 0, 0}, Cube{4, -2, -2}, 0.5)
	if mid != (FracCube{2, -1, -1}) {
		t.Fatalf("midpoint: got %v", mid)
	}
	// a + (b-a)*t, not (a + (b-a))*t
	if got := Lerp(Cube{2, -2, 0}, Cube{4, -4, 0}, 0.5); got != (FracCube{3, -3, 0}) {
		t.Fatalf("offset midpoint: got %v", got)
	}
}

func TestRoundRestoresInvariant(t *testing.T) {
	cases := []struct {
		in   FracCube
		want Cube
	}{
		{FracCube{0.1, -0.1, 0}, Cube{0, 0, 0}},
		// x residual strictly largest
		{FracCube{1.4, -0.3, -1.1}, Cube{1, 0, -1}},
		// y residual strictly largest
		{FracCube{0.25, -0.6, 0.35}, Cube{0, 0, 0}},
		// x ties z: falls through to z
		{FracCube{0.6, -0.2, -0.4}, Cube{1, 0, -1}},
		// x ties y above z: y is rebuilt
		{FracCube{0.5, 0.5, -1}, Cube{1, 0, -1}},
	}
	for _, tc := range cases {
		got := tc.in.Round()
		if !got.Valid() {
			t.Fatalf("Round(%v) = %v violates x+y+z=0", tc.in, got)
		}
		if got != tc.want {
			t.Errorf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundTieOrder(t *testing.T) {
	// dy == dz: z is rebuilt
	if got := (FracCube{1, -0.5, -0.5}).Round(); got != (Cube{1, -1, 0}) {
		t.Fatalf("got %v", got)
	}
	// dx == dy > dz: y is rebuilt
	if got := (FracCube{0.5, -0.5, 0}).Round(); got != (Cube{1, -1, 0}) {
		t.Fatalf("got %v", got)
	}
}

func TestLineDrawExample(t *testing.T) {
	got := LineDraw(Cube{0, 0, 0}, Cube{3, -3, 0})
	want := []Cube{{0, 0, 0}, {1, -1, 0}, {2, -2, 0}}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLineDrawKnownLines(t *testing.T) {
	cases := []struct {
		a, b Cube
		want []Cube
	}{
		{Cube{0, 0, 0}, Cube{2, 1, -3}, []Cube{{0, 0, 0}, {1, 0, -1}, {1, 1, -2}}},
		{Cube{-2, 0, 2}, Cube{3, -1, -2}, []Cube{{-2, 0, 2}, {-1, 0, 1}, {0, 0, 0}, {1, -1, 0}, {2, -1, -1}}},
		{Cube{1, -4, 3}, Cube{-3, 3, 0}, []Cube{{1, -4, 3}, {0, -3, 3}, {0, -2, 2}, {-1, -1, 2}, {-1, 0, 1}, {-2, 1, 1}, {-2, 2, 0}}},
		{Cube{0, 0, 0}, Cube{4, -2, -2}, []Cube{{0, 0, 0}, {1, -1, 0}, {2, -1, -1}, {3, -2, -1}}},
	}
	for _, tc := range cases {
		got := LineDraw(tc.a, tc.b)
		if len(got) != len(tc.want) {
			t.Fatalf("line %v->%v: expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("line %v->%v cell %d: expected %v, got %v", tc.a, tc.b, i, tc.want[i], got[i])
			}
			if i > 0 && DistanceCube(got[i-1], got[i]) != 1 {
				t.Fatalf("line %v->%v: cells %d and %d not adjacent", tc.a, tc.b, i-1, i)
			}
		}
	}
}

func TestLineDrawProperties(t *testing.T) {
	a := Cube{-1, 3, -2}
	for _, pb := range Disk(Axial{2, -1}, 5) {
		b := pb.ToCube()
		n := DistanceCube(a, b)
		line := LineDraw(a, b)
		if n == 0 {
			if len(line) != 1 || line[0] != a {
				t.Fatalf("degenerate line: expected [%v], got %v", a, line)
			}
			continue
		}
		if len(line) != n {
			t.Fatalf("line %v->%v: expected %d cells, got %d", a, b, n, len(line))
		}
		if line[0] != a {
			t.Fatalf("line must start at %v, got %v", a, line[0])
		}
		for _, c := range line {
			if !c.Valid() {
				t.Fatalf("line cell %v violates x+y+z=0", c)
			}
			if c == b {
				t.Fatalf("exclusive line %v->%v contains the endpoint", a, b)
			}
		}
		incl := LineDrawInclusive(a, b)
		if len(incl) != n+1 || incl[n] != b {
			t.Fatalf("inclusive line %v->%v must end at b, got %v", a, b, incl)
		}
		for i := range line {
			if incl[i] != line[i] {
				t.Fatalf("inclusive and exclusive lines disagree at %d", i)
			}
		}
	}
}

func TestLinePoint(t *testing.T) {
	a, b := Cube{0, 0, 0}, Cube{3, -3, 0}
	for i, want := range LineDrawInclusive(a, b) {
		got, err := LinePoint(a, b, i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("sample %d: expected %v, got %v", i, want, got)
		}
	}
	if _, err := LinePoint(a, b, 4); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if _, err := LinePoint(a, b, -1); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if _, err := LinePoint(a, a, 0); !errors.Is(err, ErrDegenerateLine) {
		t.Fatalf("expected ErrDegenerateLine, got %v", err)
	}
}
