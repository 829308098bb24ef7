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

// SegmentIntersection returns the points where a and b meet. It returns
// no points if they do not meet, one point if they cross or touch, and
// the two ends of the shared part if they are collinear and overlap.
//
// Adapted from the polygon clipping algorithm of Martínez et al.
// (http://wwwdi.ujaen.es/~fmartin/bool_op.html).
func SegmentIntersection(a, b Segment) []geom.Point {
	if !a.Bounds().Overlaps(b.Bounds()) {
		return nil
	}
	p0, d0 := a.Start, sub(a.End, a.Start)
	p1, d1 := b.Start, sub(b.End, b.Start)
	e := sub(p1, p0)
	kross := cross(d0, d1)
	sqrLen0, sqrLen1 := dot(d0, d0), dot(d1, d1)

	const sqrEpsilon = 1e-20
	if kross*kross > sqrEpsilon*sqrLen0*sqrLen1 {
		// The segments are not parallel.
		s := cross(e, d1) / kross
		if s < -Tolerance || s > 1+Tolerance {
			return nil
		}
		t := cross(e, d0) / kross
		if t < -Tolerance || t > 1+Tolerance {
			return nil
		}
		// Touching lines report the existing vertex exactly.
		return []geom.Point{pointAt(a, b, math.Max(0, math.Min(1, s)))}
	}

	// The segments are parallel.
	kross = cross(e, d0)
	if kross*kross > sqrEpsilon*sqrLen0*dot(e, e) {
		// The segments are on different lines.
		return nil
	}
	if sqrLen0 == 0 {
		return nil
	}

	// The segments are on the same line; find the overlap.
	s0 := dot(d0, e) / sqrLen0
	s1 := s0 + dot(d0, d1)/sqrLen0
	smin, smax := math.Min(s0, s1), math.Max(s0, s1)
	if smin > 1+Tolerance || smax < -Tolerance {
		return nil
	}
	lo, hi := math.Max(0, smin), math.Min(1, smax)
	ptLo, ptHi := pointAt(a, b, lo), pointAt(a, b, hi)
	if PointsEqual(ptLo, ptHi) {
		return []geom.Point{ptLo}
	}
	return []geom.Point{ptLo, ptHi}
}

// pointAt returns the point at fraction u along a, preferring an
// existing end point of a or b at that position.
func pointAt(a, b Segment, u float64) geom.Point {
	pt := lerp(a.Start, a.End, u)
	for _, end := range []geom.Point{a.Start, a.End, b.Start, b.End} {
		if PointsEqual(pt, end) {
			return end
		}
	}
	return pt
}

// Intersections returns the points where a and b meet, sorted by x and
// then y, with duplicates removed.
func Intersections(a, b geom.LineString) []geom.Point {
	var pts []geom.Point
	for i := 0; i < len(a)-1; i++ {
		sa := Segment{a[i], a[i+1]}
		for j := 0; j < len(b)-1; j++ {
			pts = append(pts, SegmentIntersection(sa, Segment{b[j], b[j+1]})...)
		}
	}
	return dedupe(pts)
}

// onLine returns the points of pts that lie on line, ordered by their
// distance along it.
func onLine(line geom.LineString, pts []geom.Point) []geom.Point {
	type located struct {
		pt geom.Point
		d  float64
	}
	var l []located
	for _, pt := range pts {
		if _, d, ok := locate(line, pt); ok {
			l = append(l, located{pt: pt, d: d})
		}
	}
	sort.SliceStable(l, func(i, j int) bool { return l[i].d < l[j].d })
	o := make([]geom.Point, len(l))
	for i, ll := range l {
		o[i] = ll.pt
	}
	return o
}

// Split cuts line at every point of pts that lies on it.
func Split(line geom.LineString, pts []geom.Point) []geom.LineString {
	return CutByPoints(line, onLine(line, pts))
}
