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
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// EventKind identifies a data-quality event raised while calculating a
// difference.
type EventKind int

const (
	// RepairEvent marks a polygon produced by repairing a ring that
	// crossed or touched itself.
	RepairEvent EventKind = iota

	// AmbiguousEvent marks a polygon that could not be classified as cut
	// or fill because the first line met the classification probe more
	// than once, or not at all. Its area is set to zero.
	AmbiguousEvent
)

func (k EventKind) String() string {
	switch k {
	case RepairEvent:
		return "repair"
	case AmbiguousEvent:
		return "ambiguous"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event records a data-quality event for one polygon of a Result.
type Event struct {
	Kind    EventKind
	Polygon int     // index into Result.Polygons
	X       float64 // distance along the section where the event occurred
}

// Result holds the difference between two lines. It should be treated as
// read-only once returned.
type Result struct {
	// Intersections are the points where the lines (and closing lines,
	// if used) meet, sorted by x and then y.
	Intersections []geom.Point

	// Polygons are the areas between the lines, ordered by the
	// lower-left corner of their bounds.
	Polygons []geom.Polygon

	// Areas holds the signed area of each polygon: positive for fill and
	// negative for cut.
	Areas []float64

	Events []Event
}

// Count returns the number of events of kind k.
func (r *Result) Count(k EventKind) int {
	var n int
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Repaired returns whether polygon i was produced by repairing an
// invalid ring.
func (r *Result) Repaired(i int) bool {
	for _, e := range r.Events {
		if e.Kind == RepairEvent && e.Polygon == i {
			return true
		}
	}
	return false
}

// A Differ calculates the cut and fill between pairs of lines.
// The zero value is ready to use and logs to the logrus standard logger.
type Differ struct {
	Log logrus.FieldLogger
}

func (d *Differ) log() logrus.FieldLogger {
	if d.Log == nil {
		return logrus.StandardLogger()
	}
	return d.Log
}

// Difference calculates the cut and fill between line1 and line2 using
// a zero-value Differ.
func Difference(line1, line2 geom.LineString, closeEnds bool) (*Result, error) {
	return new(Differ).Difference(line1, line2, closeEnds)
}

// Difference calculates the areas between line1, the earlier survey, and
// line2, the later one. Areas where line2 lies above line1 are fill and
// have positive area; areas where it lies below are cut and have negative
// area.
//
// If closeEnds is true, the open ends of the lines are closed with
// vertical lines at the ends of the x-range they share, so that the
// area beyond the first or last crossing of the lines is included.
// A *ClosingError is returned if the lines share no x-range.
// A *DegenerateInputError is returned if either line has fewer than two
// points or repeats a point.
func (d *Differ) Difference(line1, line2 geom.LineString, closeEnds bool) (*Result, error) {
	if err := validate(line1, "line1"); err != nil {
		return nil, err
	}
	if err := validate(line2, "line2"); err != nil {
		return nil, err
	}

	r := new(Result)
	var pieces []geom.LineString
	if closeEnds {
		left, right, err := Close(line1, line2)
		if err != nil {
			return nil, err
		}
		leftPts := dedupe(append(Intersections(left, line1), Intersections(left, line2)...))
		rightPts := dedupe(append(Intersections(right, line1), Intersections(right, line2)...))

		var all []geom.Point
		all = append(all, Intersections(line1, line2)...)
		all = append(all, leftPts...)
		all = append(all, rightPts...)
		r.Intersections = dedupe(all)

		pieces = append(pieces, Split(line1, r.Intersections)...)
		pieces = append(pieces, Split(line2, r.Intersections)...)
		pieces = append(pieces, Split(left, leftPts)...)
		pieces = append(pieces, Split(right, rightPts)...)
	} else {
		r.Intersections = Intersections(line1, line2)
		pieces = append(pieces, Split(line1, r.Intersections)...)
		pieces = append(pieces, Split(line2, r.Intersections)...)
	}

	type region struct {
		geom.Polygon
		repaired bool
	}
	valid, invalid := Polygonize(pieces)
	regions := make([]region, 0, len(valid))
	for _, p := range valid {
		regions = append(regions, region{Polygon: p})
	}
	for _, ring := range invalid {
		repaired := MakeValid(ring)
		d.log().WithFields(logrus.Fields{
			"vertices": len(ring),
			"polygons": len(repaired),
		}).Warn("cutfill: polygon boundary crosses itself; repairing")
		for _, p := range repaired {
			regions = append(regions, region{Polygon: p, repaired: true})
		}
	}
	sort.SliceStable(regions, func(i, j int) bool {
		bi, bj := regions[i].Bounds(), regions[j].Bounds()
		return lessXY(bi.Min, bj.Min)
	})

	r.Polygons = make([]geom.Polygon, len(regions))
	r.Areas = make([]float64, len(regions))
	for i, reg := range regions {
		r.Polygons[i] = reg.Polygon
		x := ProbeX(reg.Polygon)
		if reg.repaired {
			r.Events = append(r.Events, Event{Kind: RepairEvent, Polygon: i, X: x})
		}
		sign, ok := Sign(reg.Polygon, line1)
		if !ok {
			d.log().WithFields(logrus.Fields{
				"polygon":  i,
				"distance": x,
			}).Warn("cutfill: line1 does not cross the classification probe exactly once, " +
				"possibly because it doubles back on itself; assigning zero area. " +
				"Check the cross section at this distance.")
			r.Events = append(r.Events, Event{Kind: AmbiguousEvent, Polygon: i, X: x})
		}
		r.Areas[i] = reg.Area() * float64(sign)
	}

	d.log().WithFields(logrus.Fields{
		"intersections": len(r.Intersections),
		"polygons":      len(r.Polygons),
		"repairs":       r.Count(RepairEvent),
		"ambiguous":     r.Count(AmbiguousEvent),
	}).Debug("cutfill: calculated difference")
	return r, nil
}

// validate checks that l has at least two points, that its coordinates
// are finite and that no point repeats the one before it.
func validate(l geom.LineString, name string) error {
	if len(l) < 2 {
		return &DegenerateInputError{
			Line:   name,
			Index:  -1,
			Reason: fmt.Sprintf("has %d points; at least 2 are required", len(l)),
		}
	}
	for i, p := range l {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return &DegenerateInputError{Line: name, Index: i, Reason: "coordinates are not finite"}
		}
		if i > 0 && PointsEqual(p, l[i-1]) {
			return &DegenerateInputError{Line: name, Index: i, Reason: "repeats the previous point"}
		}
	}
	return nil
}
