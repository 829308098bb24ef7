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

	"github.com/ctessum/geom"
)

// Segment is a straight line between two points.
type Segment struct {
	Start, End geom.Point
}

// Length returns the length of s.
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Degenerate returns whether the start and end of s coincide.
func (s Segment) Degenerate() bool {
	return s.Start.X == s.End.X && s.Start.Y == s.End.Y
}

// Bounds returns the rectangular extent of s.
func (s Segment) Bounds() *geom.Bounds {
	return geom.LineString{s.Start, s.End}.Bounds()
}

// Projection is the result of projecting a point onto the line through
// a Segment.
type Projection struct {
	// Point is the projected point on the line.
	Point geom.Point

	// D is the distance of Point from the segment start, negative when
	// Point falls before the start.
	D float64

	// Offset is the perpendicular distance of the projected point from
	// the line. It is negative when the cross product of the segment
	// direction and the vector from the segment end to the point is
	// negative, and positive otherwise.
	Offset float64

	// U is the fractional position of Point along the segment.
	U float64
}

// Project projects p onto the line through s, which may extend beyond
// the segment ends. It returns a *DegenerateInputError if s has zero
// length.
//
// Adapted from http://paulbourke.net/geometry/pointline/
func Project(s Segment, p geom.Point) (Projection, error) {
	d := sub(s.End, s.Start)
	if d.X == 0 && d.Y == 0 {
		return Projection{}, &DegenerateInputError{
			Line:   "segment",
			Index:  -1,
			Reason: "start and end points are the same",
		}
	}
	u := dot(sub(p, s.Start), d) / dot(d, d)
	pt := lerp(s.Start, s.End, u)

	dist := Distance(pt, s.Start)
	if u < 0 {
		dist = -dist
	}
	offset := Distance(pt, p)
	if cross(d, sub(p, s.End)) < 0 {
		offset = -offset
	}
	return Projection{Point: pt, D: dist, Offset: offset, U: u}, nil
}

// distToSegment returns the shortest distance from p to any point on s
// and the distance along s of the closest point.
func distToSegment(p geom.Point, s Segment) (dist, along float64) {
	d := sub(s.End, s.Start)
	l2 := dot(d, d)
	if l2 == 0 {
		return Distance(p, s.Start), 0
	}
	u := math.Max(0, math.Min(1, dot(sub(p, s.Start), d)/l2))
	pt := lerp(s.Start, s.End, u)
	return Distance(p, pt), u * math.Sqrt(l2)
}
