/*
Copyright © 2026 the cutfill authors.
This file is part of cutfill.

cutfill is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

cutfill is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with cutfill.  If not, see <http://www.gnu.org/licenses/>.
*/

package cutfill

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/kr/pretty"
)

func TestPolygonize(t *testing.T) {
	t.Run("square with dangle", func(t *testing.T) {
		lines := []geom.LineString{
			{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			{{X: 1, Y: 1}, {X: 2, Y: 2}},
		}
		valid, invalid := Polygonize(lines)
		if len(invalid) != 0 {
			t.Errorf("have %d invalid rings, want 0", len(invalid))
		}
		want := []geom.Polygon{{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}}}
		if diff := pretty.Diff(valid, want); len(diff) > 0 {
			t.Errorf("have %v, want %v: %v", valid, want, diff)
		}
	})

	t.Run("clockwise input", func(t *testing.T) {
		lines := []geom.LineString{
			{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		}
		valid, _ := Polygonize(lines)
		want := []geom.Polygon{{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}}}
		if diff := pretty.Diff(valid, want); len(diff) > 0 {
			t.Errorf("have %v, want %v: %v", valid, want, diff)
		}
	})

	t.Run("shared edge", func(t *testing.T) {
		lines := []geom.LineString{
			{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			{{X: 1, Y: 0}, {X: 1, Y: 1}},
		}
		valid, invalid := Polygonize(lines)
		if len(valid) != 2 || len(invalid) != 0 {
			t.Fatalf("have %d valid and %d invalid, want 2 and 0", len(valid), len(invalid))
		}
		for i, p := range valid {
			if different(p.Area(), 1) {
				t.Errorf("polygon %d: have area %g, want 1", i, p.Area())
			}
		}
	})

	t.Run("open lines", func(t *testing.T) {
		lines := []geom.LineString{
			{{X: 0, Y: 0}, {X: 10, Y: 0}},
			{{X: 2, Y: 1}, {X: 8, Y: 1}},
		}
		valid, invalid := Polygonize(lines)
		if len(valid) != 0 || len(invalid) != 0 {
			t.Errorf("have %d valid and %d invalid, want none", len(valid), len(invalid))
		}
	})

	t.Run("bowtie", func(t *testing.T) {
		// The crossing is not a vertex, so the ring is not simple.
		lines := []geom.LineString{
			{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: 0}},
		}
		valid, invalid := Polygonize(lines)
		if len(valid) != 0 || len(invalid) != 1 {
			t.Fatalf("have %d valid and %d invalid, want 0 and 1", len(valid), len(invalid))
		}
		if len(invalid[0]) != 4 {
			t.Errorf("have %d vertices, want 4", len(invalid[0]))
		}
	})
}

func TestSignedArea(t *testing.T) {
	ccw := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: 3}}
	if a := signedArea(ccw); a != 6 {
		t.Errorf("counter-clockwise: have %g, want 6", a)
	}
	cw := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 0}}
	if a := signedArea(cw); a != -6 {
		t.Errorf("clockwise: have %g, want -6", a)
	}
}

func TestSimple(t *testing.T) {
	tests := []struct {
		name string
		r    []geom.Point
		want bool
	}{
		{
			name: "square",
			r:    []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			want: true,
		},
		{
			name: "bowtie",
			r:    []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}},
		},
		{
			name: "touching",
			r: []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1},
				{X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := simple(test.r); have != test.want {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestMakeValid(t *testing.T) {
	bowtie := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	have := MakeValid(bowtie)
	want := []geom.Polygon{
		{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 0}}},
		{{{X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}}},
	}
	if diff := pretty.Diff(have, want); len(diff) > 0 {
		t.Errorf("have %v, want %v: %v", have, want, diff)
	}
	var total float64
	for _, p := range have {
		total += p.Area()
	}
	if different(total, 2) {
		t.Errorf("total area: have %g, want 2", total)
	}
}

func TestMakeValidLoop(t *testing.T) {
	// The ring loops back over itself, leaving a small lobe.
	r := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 5, Y: 1}, {X: 3, Y: 1}, {X: 0, Y: 1}}
	have := MakeValid(r)
	if len(have) == 0 {
		t.Fatal("no polygons returned")
	}
	for i, p := range have {
		if a := p.Area(); math.IsNaN(a) || a <= 0 {
			t.Errorf("polygon %d: invalid area %g", i, a)
		}
	}
}
