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

// halfEdge is one direction of an edge in a planarGraph.
type halfEdge struct {
	from, to int // node indices
	twin     *halfEdge
	next     *halfEdge
	face     int
	angle    float64
	removed  bool
}

// planarGraph holds line work as nodes joined by edges so that the
// closed areas it bounds can be traced.
type planarGraph struct {
	nodes []geom.Point
	out   [][]*halfEdge // outgoing half edges of each node
	edges map[[2]int]bool
}

func newPlanarGraph() *planarGraph {
	return &planarGraph{edges: make(map[[2]int]bool)}
}

// node returns the index of the node at pt, creating it if necessary.
// Points within Tolerance of an existing node share that node.
func (g *planarGraph) node(pt geom.Point) int {
	for i, n := range g.nodes {
		if PointsEqual(n, pt) {
			return i
		}
	}
	g.nodes = append(g.nodes, pt)
	g.out = append(g.out, nil)
	return len(g.nodes) - 1
}

// addEdge joins the nodes at a and b. Zero-length and repeated edges are
// ignored.
func (g *planarGraph) addEdge(a, b geom.Point) {
	i, j := g.node(a), g.node(b)
	if i == j {
		return
	}
	key := [2]int{i, j}
	if j < i {
		key = [2]int{j, i}
	}
	if g.edges[key] {
		return
	}
	g.edges[key] = true

	pi, pj := g.nodes[i], g.nodes[j]
	e := &halfEdge{from: i, to: j, angle: math.Atan2(pj.Y-pi.Y, pj.X-pi.X)}
	t := &halfEdge{from: j, to: i, angle: math.Atan2(pi.Y-pj.Y, pi.X-pj.X)}
	e.twin, t.twin = t, e
	g.out[i] = append(g.out[i], e)
	g.out[j] = append(g.out[j], t)
}

// addLine adds every segment of l to the graph.
func (g *planarGraph) addLine(l []geom.Point) {
	for i := 0; i < len(l)-1; i++ {
		g.addEdge(l[i], l[i+1])
	}
}

// active returns the outgoing half edges of node n that have not been
// removed.
func (g *planarGraph) active(n int) []*halfEdge {
	var o []*halfEdge
	for _, e := range g.out[n] {
		if !e.removed {
			o = append(o, e)
		}
	}
	return o
}

func (e *halfEdge) remove() {
	e.removed = true
	e.twin.removed = true
}

// pruneDangles repeatedly removes edges that end at a node with no other
// edges, as they cannot bound an area.
func (g *planarGraph) pruneDangles() {
	queue := make([]int, 0, len(g.nodes))
	for n := range g.nodes {
		if len(g.active(n)) == 1 {
			queue = append(queue, n)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		a := g.active(n)
		if len(a) != 1 {
			continue
		}
		a[0].remove()
		if len(g.active(a[0].to)) == 1 {
			queue = append(queue, a[0].to)
		}
	}
}

// face is a closed walk around the boundary of an area of a planarGraph.
type face struct {
	nodes     []int
	edges     []*halfEdge
	component int
}

// traceFaces links each half edge to the next one around the area to its
// left and returns the resulting faces. Bounded faces are traced
// counter-clockwise.
func (g *planarGraph) traceFaces() []face {
	outs := make([][]*halfEdge, len(g.nodes))
	for n := range g.nodes {
		a := g.active(n)
		sort.SliceStable(a, func(i, j int) bool { return a[i].angle < a[j].angle })
		outs[n] = a
	}
	for n := range g.nodes {
		for _, e := range outs[n] {
			around := outs[e.to]
			for k, o := range around {
				if o == e.twin {
					e.next = around[(k-1+len(around))%len(around)]
					break
				}
			}
			e.face = -1
		}
	}

	components := g.components()
	var faces []face
	for n := range g.nodes {
		for _, start := range outs[n] {
			if start.face >= 0 {
				continue
			}
			f := face{component: components[start.from]}
			for e := start; e.face < 0; e = e.next {
				e.face = len(faces)
				f.nodes = append(f.nodes, e.from)
				f.edges = append(f.edges, e)
			}
			faces = append(faces, f)
		}
	}
	return faces
}

// components labels each node with the connected component it is part of.
func (g *planarGraph) components() []int {
	label := make([]int, len(g.nodes))
	for i := range label {
		label[i] = -1
	}
	c := 0
	for n := range g.nodes {
		if label[n] >= 0 {
			continue
		}
		stack := []int{n}
		label[n] = c
		for len(stack) > 0 {
			m := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range g.active(m) {
				if label[e.to] < 0 {
					label[e.to] = c
					stack = append(stack, e.to)
				}
			}
		}
		c++
	}
	return label
}

// removeCutEdges removes edges that have the same face on both sides and
// reports whether any were found.
func (g *planarGraph) removeCutEdges(faces []face) bool {
	found := false
	for _, f := range faces {
		for _, e := range f.edges {
			if !e.removed && e.face == e.twin.face {
				e.remove()
				found = true
			}
		}
	}
	return found
}

// rings traces the closed areas of g. Simple rings are returned as valid
// and rings that cross or touch themselves as invalid. The outer boundary
// of each connected part of the graph and rings without area are left out.
func (g *planarGraph) rings() (valid, invalid [][]geom.Point) {
	g.pruneDangles()
	faces := g.traceFaces()
	for g.removeCutEdges(faces) {
		g.pruneDangles()
		faces = g.traceFaces()
	}

	// The outer boundary of each component is the face with the
	// smallest signed area.
	outer := make(map[int]int)
	areas := make([]float64, len(faces))
	for i, f := range faces {
		areas[i] = signedArea(g.points(f.nodes))
		if j, ok := outer[f.component]; !ok || areas[i] < areas[j] {
			outer[f.component] = i
		}
	}
	for i, f := range faces {
		if outer[f.component] == i {
			continue
		}
		ring := g.points(f.nodes)
		switch {
		case !simple(ring):
			invalid = append(invalid, ring)
		case areas[i] > Tolerance:
			valid = append(valid, ring)
		}
	}
	return valid, invalid
}

func (g *planarGraph) points(nodes []int) []geom.Point {
	o := make([]geom.Point, len(nodes))
	for i, n := range nodes {
		o[i] = g.nodes[n]
	}
	return o
}

// Polygonize assembles the closed areas bounded by the given line work.
// Lines are joined wherever their vertices coincide; crossings away from
// vertices are not detected. Rings that do not cross or touch themselves
// are returned as valid polygons; the rest are returned as invalid open
// rings that need repair before use.
func Polygonize(lines []geom.LineString) (valid []geom.Polygon, invalid [][]geom.Point) {
	g := newPlanarGraph()
	for _, l := range lines {
		g.addLine(l)
	}
	rings, invalid := g.rings()
	for _, r := range rings {
		valid = append(valid, toPolygon(r))
	}
	return valid, invalid
}

// signedArea returns the area of the open ring r, positive when r is
// counter-clockwise.
// See http://www.mathopenref.com/coordpolygonarea2.html
func signedArea(r []geom.Point) float64 {
	if len(r) < 3 {
		return 0
	}
	n := len(r) - 1
	a := (r[n].X + r[0].X) * (r[0].Y - r[n].Y)
	for i := 0; i < n; i++ {
		a += (r[i].X + r[i+1].X) * (r[i+1].Y - r[i].Y)
	}
	return a / 2
}

// simple returns whether the open ring r neither crosses nor touches
// itself.
func simple(r []geom.Point) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if PointsEqual(r[i], r[j]) {
				return false
			}
		}
	}
	for i := 0; i < n; i++ {
		a := Segment{r[i], r[(i+1)%n]}
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent
			}
			if len(SegmentIntersection(a, Segment{r[j], r[(j+1)%n]})) > 0 {
				return false
			}
		}
	}
	return true
}

// toPolygon returns the open ring r as a closed, counter-clockwise
// polygon starting at its lowest-left vertex.
func toPolygon(r []geom.Point) geom.Polygon {
	ring := make([]geom.Point, len(r))
	copy(ring, r)
	if signedArea(ring) < 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	first := 0
	for i, p := range ring {
		if lessXY(p, ring[first]) {
			first = i
		}
	}
	closed := make([]geom.Point, 0, len(ring)+1)
	closed = append(closed, ring[first:]...)
	closed = append(closed, ring[:first]...)
	closed = append(closed, closed[0])
	return geom.Polygon{closed}
}
