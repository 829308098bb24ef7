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

// Close returns vertical lines closing the left and right ends of the
// region between line1 and line2. The lines are placed at the ends of the
// x-range shared by both lines and span the combined y-range of both
// lines. A *ClosingError is returned if the lines share no x-range.
func Close(line1, line2 geom.LineString) (left, right geom.LineString, err error) {
	b1, b2 := line1.Bounds(), line2.Bounds()

	minx := math.Max(b1.Min.X, b2.Min.X)
	maxx := math.Min(b1.Max.X, b2.Max.X)
	if !(maxx-minx > Tolerance) {
		return nil, nil, &ClosingError{MinX: minx, MaxX: maxx}
	}

	b := b1.Copy()
	b.Extend(b2)

	left = geom.LineString{{X: minx, Y: b.Min.Y}, {X: minx, Y: b.Max.Y}}
	right = geom.LineString{{X: maxx, Y: b.Min.Y}, {X: maxx, Y: b.Max.Y}}
	return left, right, nil
}
