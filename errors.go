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

import "fmt"

// DegenerateInputError is returned when a line or segment does not have
// enough distinct points to take part in a calculation.
type DegenerateInputError struct {
	// Line names the offending line, e.g. "line1".
	Line string
	// Index is the index of the offending point, or -1 when the line as
	// a whole is at fault.
	Index  int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("cutfill: degenerate %s: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("cutfill: degenerate %s at point %d: %s", e.Line, e.Index, e.Reason)
}

// ClosingError is returned when the ends of two lines are to be closed
// but the lines do not share an x-range to close over.
type ClosingError struct {
	// MinX and MaxX are the limits of the shared x-range. MinX >= MaxX.
	MinX, MaxX float64
}

func (e *ClosingError) Error() string {
	return fmt.Sprintf("cutfill: cannot close line ends: the lines share no x-range "+
		"(shared range would be %g to %g)", e.MinX, e.MaxX)
}
