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
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
)

// Interval is a stretch of the section between two consecutive
// intersections, with the net signed area of the polygons in it.
type Interval struct {
	X0, X1 float64
	Area   float64
}

// Intervals divides the section at the distinct x positions of the
// intersections in r. Each polygon's area is assigned to the interval
// holding its probe position (see ProbeX); polygons outside every
// interval are not included.
func Intervals(r *Result) []Interval {
	var xs []float64
	for _, p := range r.Intersections {
		xs = append(xs, p.X)
	}
	xs = uniqueFloats(xs)
	if len(xs) < 2 {
		return nil
	}
	o := make([]Interval, len(xs)-1)
	for i := range o {
		o[i] = Interval{X0: xs[i], X1: xs[i+1]}
	}
	for i, p := range r.Polygons {
		x := ProbeX(p)
		for j := range o {
			if x >= o[j].X0 && x < o[j].X1 {
				o[j].Area += r.Areas[i]
				break
			}
		}
	}
	return o
}

// Summary holds the totals of a Result.
type Summary struct {
	// Length is the distance along the section between the first and
	// last intersection.
	Length float64

	Fill float64 // sum of positive areas
	Cut  float64 // sum of negative areas
	Net  float64 // Fill + Cut

	// Repaired is the net area of polygons produced by repairing
	// invalid rings. It is included in Fill, Cut and Net.
	Repaired float64

	Polygons, Repairs, Ambiguous int
}

// Summarize calculates the totals of r.
func Summarize(r *Result) Summary {
	s := Summary{
		Polygons:  len(r.Polygons),
		Repairs:   r.Count(RepairEvent),
		Ambiguous: r.Count(AmbiguousEvent),
	}
	if n := len(r.Intersections); n > 1 {
		s.Length = r.Intersections[n-1].X - r.Intersections[0].X
	}
	var fill, cut, repaired []float64
	for i, a := range r.Areas {
		if a > 0 {
			fill = append(fill, a)
		} else if a < 0 {
			cut = append(cut, a)
		}
		if r.Repaired(i) {
			repaired = append(repaired, a)
		}
	}
	s.Fill = floats.Sum(fill)
	s.Cut = floats.Sum(cut)
	s.Net = s.Fill + s.Cut
	s.Repaired = floats.Sum(repaired)
	return s
}

// Table returns s as a two-column table.
func (s Summary) Table() Table {
	return Table{
		{"Length", fmt.Sprintf("%g", s.Length)},
		{"Fill", fmt.Sprintf("%g", s.Fill)},
		{"Cut", fmt.Sprintf("%g", s.Cut)},
		{"Net", fmt.Sprintf("%g", s.Net)},
		{"Polygons", fmt.Sprint(s.Polygons)},
		{"Repaired polygons", fmt.Sprint(s.Repairs)},
		{"Repaired area", fmt.Sprintf("%g", s.Repaired)},
		{"Ambiguous polygons", fmt.Sprint(s.Ambiguous)},
	}
}

// A Table holds a text representation of report data.
type Table [][]string

// Tabbed creates a tab-separated table.
func (t Table) Tabbed(w io.Writer) (n int, err error) {
	ww := new(tabwriter.Writer)
	ww.Init(w, 0, 2, 0, '\t', 0)
	var nn int
	for _, l := range t {
		for _, r := range l {
			nn, err = fmt.Fprint(ww, r+"\t")
			if err != nil {
				return
			}
			n += nn
		}
		nn, err = fmt.Fprint(ww, "\n")
		if err != nil {
			return
		}
		n += nn
	}
	err = ww.Flush()
	return
}
