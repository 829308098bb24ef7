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

// Package cutfill calculates the cut and fill between two repeat surveys
// of the same cross section. Each survey is a polyline of
// (distance along section, elevation) points; the area between the two
// lines is partitioned into polygons which are given a positive area where
// the later survey lies above the earlier one (fill) and a negative area
// where it lies below (cut).
package cutfill

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// Tolerance is the largest coordinate difference at which two values are
// still considered equal, corresponding to agreement to 8 decimal places.
const Tolerance = 0.5e-8

// floatEqual returns whether a and b agree to within Tolerance.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// PointsEqual returns whether the coordinates of a and b agree to
// within Tolerance.
func PointsEqual(a, b geom.Point) bool {
	return floatEqual(a.X, b.X) && floatEqual(a.Y, b.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b geom.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func sub(a, b geom.Point) geom.Point { return geom.Point{X: a.X - b.X, Y: a.Y - b.Y} }

func cross(a, b geom.Point) float64 { return a.X*b.Y - a.Y*b.X }

func dot(a, b geom.Point) float64 { return a.X*b.X + a.Y*b.Y }

// lerp returns the point a fraction u of the way from a to b.
func lerp(a, b geom.Point, u float64) geom.Point {
	return geom.Point{X: a.X + u*(b.X-a.X), Y: a.Y + u*(b.Y-a.Y)}
}

// lessXY orders points by x, then by y.
func lessXY(a, b geom.Point) bool {
	if !floatEqual(a.X, b.X) {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func sortPoints(pts []geom.Point) {
	sort.SliceStable(pts, func(i, j int) bool { return lessXY(pts[i], pts[j]) })
}

// dedupe sorts pts by x then y and removes points that are equal to
// the previous point within Tolerance.
func dedupe(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return nil
	}
	sorted := make([]geom.Point, len(pts))
	copy(sorted, pts)
	sortPoints(sorted)
	o := sorted[:1]
	for _, p := range sorted[1:] {
		dup := false
		for _, q := range o {
			if PointsEqual(p, q) {
				dup = true
				break
			}
		}
		if !dup {
			o = append(o, p)
		}
	}
	return o
}
