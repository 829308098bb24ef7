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
	"sort"

	"github.com/ctessum/geom"
)

// MakeValid repairs the open ring r, which crosses or touches itself, by
// splitting it into simple polygons. The ring is split at every point
// where it meets itself and the resulting pieces that lie inside r by the
// even-odd rule are returned. Pieces without area are dropped.
func MakeValid(r []geom.Point) []geom.Polygon {
	n := len(r)
	if n < 3 {
		return nil
	}
	closed := make([]geom.Point, n+1)
	copy(closed, r)
	closed[n] = r[0]
	original := geom.Polygon{closed}

	g := newPlanarGraph()
	for i := 0; i < n; i++ {
		g.addLine(nodeSegment(r, i))
	}
	rings, invalid := g.rings()
	// Rings still invalid after noding only touch themselves at a
	// vertex; they have no crossings left to resolve, so they are kept
	// whole.
	rings = append(rings, invalid...)

	var o []geom.Polygon
	for _, ring := range rings {
		if math.Abs(signedArea(ring)) <= Tolerance {
			continue
		}
		pt, ok := interiorPoint(ring)
		if !ok || pt.Within(original) != geom.Inside {
			continue
		}
		o = append(o, toPolygon(ring))
	}
	sortPolygons(o)
	return o
}

// nodeSegment returns segment i of the open ring r with a vertex added
// at every point where another segment of r meets it.
func nodeSegment(r []geom.Point, i int) []geom.Point {
	n := len(r)
	s := Segment{r[i], r[(i+1)%n]}
	pts := []geom.Point{s.Start, s.End}
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		pts = append(pts, SegmentIntersection(s, Segment{r[j], r[(j+1)%n]})...)
	}
	d := sub(s.End, s.Start)
	sort.SliceStable(pts, func(a, b int) bool {
		return dot(sub(pts[a], s.Start), d) < dot(sub(pts[b], s.Start), d)
	})
	return pts
}

// interiorPoint returns a point strictly inside the simple open ring r.
// It casts a horizontal line through the widest vertical gap between
// vertices and returns the midpoint between the first two crossings.
func interiorPoint(r []geom.Point) (geom.Point, bool) {
	ys := make([]float64, len(r))
	for i, p := range r {
		ys[i] = p.Y
	}
	sort.Float64s(ys)
	gap, y := 0., 0.
	for i := 1; i < len(ys); i++ {
		if ys[i]-ys[i-1] > gap {
			gap = ys[i] - ys[i-1]
			y = (ys[i] + ys[i-1]) / 2
		}
	}
	if gap == 0 {
		return geom.Point{}, false
	}
	var xs []float64
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		if (a.Y < y) != (b.Y < y) {
			xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
	}
	if len(xs) < 2 {
		return geom.Point{}, false
	}
	sort.Float64s(xs)
	return geom.Point{X: (xs[0] + xs[1]) / 2, Y: y}, true
}

// sortPolygons orders polygons by the lower-left corner of their bounds.
func sortPolygons(p []geom.Polygon) {
	sort.SliceStable(p, func(i, j int) bool {
		bi, bj := p[i].Bounds(), p[j].Bounds()
		return lessXY(bi.Min, bj.Min)
	})
}
