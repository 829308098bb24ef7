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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// Section is a survey line already projected onto a line of section:
// X is distance along the section and Y is elevation.
type Section struct {
	Name string
	Line geom.LineString
}

// ReadSection reads a section from CSV data with distance in the first
// column and elevation in the second. Further columns are ignored, as are
// empty lines and lines starting with '#'. A first row that is not
// numeric is taken to be a header.
func ReadSection(r io.Reader, name string) (*Section, error) {
	c := csv.NewReader(r)
	c.FieldsPerRecord = -1
	c.Comment = '#'
	c.TrimLeadingSpace = true

	s := &Section{Name: name}
	for row := 0; ; row++ {
		rec, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cutfill: reading section %s: %v", name, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("cutfill: reading section %s: row %d has %d columns; "+
				"distance and elevation are required", name, row+1, len(rec))
		}
		d, errD := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errD != nil || errZ != nil {
			if row == 0 {
				continue // header
			}
			return nil, fmt.Errorf("cutfill: reading section %s: row %d: invalid number in %q",
				name, row+1, strings.Join(rec, ","))
		}
		s.Line = append(s.Line, geom.Point{X: d, Y: z})
	}
	return s, nil
}

// OpenSection reads the section in the CSV file at path. The section is
// named after the file.
func OpenSection(path string) (*Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cutfill: opening section: %v", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ReadSection(f, name)
}

// Reverse reverses the order of the points in s, for sections surveyed
// in the opposite direction to the one they are to be compared in.
func (s *Section) Reverse() {
	for i, j := 0, len(s.Line)-1; i < j; i, j = i+1, j-1 {
		s.Line[i], s.Line[j] = s.Line[j], s.Line[i]
	}
}

// Adjust shifts every elevation in s by dz.
func (s *Section) Adjust(dz float64) {
	for i := range s.Line {
		s.Line[i].Y += dz
	}
}
