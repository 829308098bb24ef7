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
	"bytes"
	"strings"
	"testing"

	"github.com/ctessum/geom"
)

// crossingResult returns the difference between a flat line and one
// rising across it, which has 2.5 of cut followed by 2.5 of fill.
func crossingResult(t *testing.T) *Result {
	line1 := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}
	line2 := geom.LineString{{X: 0, Y: -1}, {X: 10, Y: 1}}
	r, err := Difference(line1, line2, true)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestIntervals(t *testing.T) {
	have := Intervals(crossingResult(t))
	want := []Interval{{X0: 0, X1: 5, Area: -2.5}, {X0: 5, X1: 10, Area: 2.5}}
	if len(have) != len(want) {
		t.Fatalf("have %v, want %v", have, want)
	}
	for i := range want {
		if different(have[i].X0, want[i].X0) || different(have[i].X1, want[i].X1) ||
			different(have[i].Area, want[i].Area) {
			t.Errorf("interval %d: have %+v, want %+v", i, have[i], want[i])
		}
	}
}

func TestIntervalsEmpty(t *testing.T) {
	r := &Result{Intersections: []geom.Point{{X: 1, Y: 1}}}
	if have := Intervals(r); len(have) != 0 {
		t.Errorf("have %v, want none", have)
	}
}

func TestSummarize(t *testing.T) {
	have := Summarize(crossingResult(t))
	want := Summary{Length: 10, Fill: 2.5, Cut: -2.5, Net: 0, Polygons: 2}
	if different(have.Length, want.Length) || different(have.Fill, want.Fill) ||
		different(have.Cut, want.Cut) || different(have.Net, want.Net) ||
		have.Polygons != want.Polygons || have.Repairs != 0 || have.Ambiguous != 0 {
		t.Errorf("have %+v, want %+v", have, want)
	}
}

func TestSummarizeEvents(t *testing.T) {
	sq := func(x float64) geom.Polygon {
		return geom.Polygon{{{X: x, Y: 0}, {X: x + 1, Y: 0}, {X: x + 1, Y: 1}, {X: x, Y: 1}, {X: x, Y: 0}}}
	}
	r := &Result{
		Intersections: []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}},
		Polygons:      []geom.Polygon{sq(0), sq(1), sq(2)},
		Areas:         []float64{1, -1, 0},
		Events: []Event{
			{Kind: RepairEvent, Polygon: 1, X: 1.5},
			{Kind: AmbiguousEvent, Polygon: 2, X: 2.5},
		},
	}
	s := Summarize(r)
	if s.Repairs != 1 || s.Ambiguous != 1 || s.Repaired != -1 || s.Net != 0 {
		t.Errorf("have %+v", s)
	}
	if !r.Repaired(1) || r.Repaired(0) {
		t.Error("wrong repaired polygons")
	}
}

func TestTabbed(t *testing.T) {
	b := new(bytes.Buffer)
	if _, err := Summarize(crossingResult(t)).Table().Tabbed(b); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("have %d lines, want 8:\n%s", len(lines), b.String())
	}
	for _, prefix := range []string{"Length", "Fill", "Cut", "Net"} {
		if !strings.Contains(b.String(), prefix) {
			t.Errorf("table is missing %s:\n%s", prefix, b.String())
		}
	}
	if f := strings.Fields(lines[1]); len(f) != 2 || f[0] != "Fill" || f[1] != "2.5" {
		t.Errorf("have fill row %q", lines[1])
	}
}
