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

import "github.com/ctessum/geom"

// onLineTolerance is the largest distance from a line at which a point is
// still considered to lie on it.
const onLineTolerance = 1e-8

// vertexDistances returns the distance along l of each vertex of l.
func vertexDistances(l geom.LineString) []float64 {
	o := make([]float64, len(l))
	for i := 1; i < len(l); i++ {
		o[i] = o[i-1] + Distance(l[i-1], l[i])
	}
	return o
}

// splitAt returns the two pieces of l on either side of a cut point pt
// lying between vertices i-1 and i. If replace is true, vertex i is
// replaced by pt rather than kept after it.
func splitAt(l geom.LineString, i int, pt geom.Point, replace bool) []geom.LineString {
	first := make(geom.LineString, 0, i+1)
	first = append(first, l[:i]...)
	first = append(first, pt)

	rest := i
	if replace {
		rest = i + 1
	}
	second := make(geom.LineString, 0, len(l)-rest+1)
	second = append(second, pt)
	second = append(second, l[rest:]...)
	return []geom.LineString{first, second}
}

// CutByDistance cuts line at distance d from its start. When d coincides
// with a vertex the line is split at that vertex, which then appears in
// both pieces; otherwise a new interpolated point is inserted. The line
// is returned whole if d is at or beyond either end.
func CutByDistance(line geom.LineString, d float64) []geom.LineString {
	dists := vertexDistances(line)
	if len(line) < 2 || d <= Tolerance || d >= dists[len(dists)-1]-Tolerance {
		return []geom.LineString{line}
	}
	for i := 1; i < len(line); i++ {
		if floatEqual(dists[i], d) {
			return splitAt(line, i, line[i], true)
		}
		if dists[i] > d {
			u := (d - dists[i-1]) / (dists[i] - dists[i-1])
			return splitAt(line, i, lerp(line[i-1], line[i], u), false)
		}
	}
	return []geom.LineString{line}
}

// locate finds the first segment of line that pt lies on. It returns the
// index of the segment and the distance of pt along line, or ok=false if
// pt is not on line.
func locate(line geom.LineString, pt geom.Point) (seg int, d float64, ok bool) {
	for i := 0; i < len(line)-1; i++ {
		dist, along := distToSegment(pt, Segment{line[i], line[i+1]})
		if dist < onLineTolerance {
			return i, d + along, true
		}
		d += Distance(line[i], line[i+1])
	}
	return -1, 0, false
}

// CutByPoint cuts line at pt, which should lie on line. The cut inserts pt
// itself rather than an interpolated point, so lines cut at a shared
// intersection share its exact coordinates. A vertex matching pt is
// replaced by pt. The line is returned whole if pt is not on the line or
// falls at or beyond either end.
func CutByPoint(line geom.LineString, pt geom.Point) []geom.LineString {
	if len(line) < 2 {
		return []geom.LineString{line}
	}
	i, d, ok := locate(line, pt)
	if !ok || d <= Tolerance || d >= line.Length()-Tolerance {
		return []geom.LineString{line}
	}
	switch {
	case PointsEqual(line[i], pt):
		return splitAt(line, i, pt, true)
	case PointsEqual(line[i+1], pt):
		return splitAt(line, i+1, pt, true)
	default:
		return splitAt(line, i+1, pt, false)
	}
}

// CutByDistances cuts line at each of the distances ds, measured from the
// start of line. ds must be in increasing order.
func CutByDistances(line geom.LineString, ds []float64) []geom.LineString {
	pieces := []geom.LineString{line}
	var offset float64
	for _, d := range ds {
		last := pieces[len(pieces)-1]
		cut := CutByDistance(last, d-offset)
		if len(cut) == 2 {
			offset += cut[0].Length()
		}
		pieces = append(pieces[:len(pieces)-1], cut...)
	}
	return pieces
}

// CutByPoints cuts line at each of pts, which must be ordered by their
// distance along line.
func CutByPoints(line geom.LineString, pts []geom.Point) []geom.LineString {
	pieces := []geom.LineString{line}
	for _, pt := range pts {
		last := pieces[len(pieces)-1]
		pieces = append(pieces[:len(pieces)-1], CutByPoint(last, pt)...)
	}
	return pieces
}
