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
	"sort"

	"github.com/ctessum/geom"
)

// ProbeX returns the x position at which p is classified: the middle of
// its horizontal extent.
func ProbeX(p geom.Polygon) float64 {
	b := p.Bounds()
	return b.Min.X + (b.Max.X-b.Min.X)/2
}

// Sign classifies p by whether it lies above or below line. A vertical
// probe is cast through p at ProbeX(p), spanning the combined y-range of
// p and line. It returns 1 if the probe meets p above where it meets
// line, -1 if it meets p below line, and 0 otherwise.
//
// The classification needs the probe to meet line exactly once; if line
// doubles back on itself, or does not reach the probe, ok is false and
// the sign is 0.
func Sign(p geom.Polygon, line geom.LineString) (sign int, ok bool) {
	b := p.Bounds().Copy()
	b.Extend(line.Bounds())
	x := ProbeX(p)
	probe := Segment{geom.Point{X: x, Y: b.Min.Y}, geom.Point{X: x, Y: b.Max.Y}}

	var polyYs []float64
	for _, r := range p {
		polyYs = append(polyYs, crossings(probe, r)...)
	}
	lineYs := uniqueFloats(crossings(probe, line))
	if len(lineYs) != 1 {
		return 0, false
	}
	y := lineYs[0]
	for _, py := range polyYs {
		if py > y+Tolerance {
			return 1, true
		}
	}
	for _, py := range polyYs {
		if py < y-Tolerance {
			return -1, true
		}
	}
	return 0, true
}

// crossings returns the y values where probe meets the segments of l.
func crossings(probe Segment, l []geom.Point) []float64 {
	var ys []float64
	for i := 0; i < len(l)-1; i++ {
		for _, pt := range SegmentIntersection(probe, Segment{l[i], l[i+1]}) {
			ys = append(ys, pt.Y)
		}
	}
	return ys
}

// uniqueFloats sorts v and removes values within Tolerance of the
// previous value.
func uniqueFloats(v []float64) []float64 {
	if len(v) == 0 {
		return nil
	}
	sort.Float64s(v)
	o := v[:1]
	for _, f := range v[1:] {
		if !floatEqual(f, o[len(o)-1]) {
			o = append(o, f)
		}
	}
	return o
}
