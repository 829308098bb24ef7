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
	"strconv"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/tealeg/xlsx"
)

// WriteCSV writes one row per interval with the columns x0, x1 and area.
func WriteCSV(w io.Writer, intervals []Interval) error {
	c := csv.NewWriter(w)
	if err := c.Write([]string{"x0", "x1", "area"}); err != nil {
		return err
	}
	for _, iv := range intervals {
		rec := []string{
			strconv.FormatFloat(iv.X0, 'g', -1, 64),
			strconv.FormatFloat(iv.X1, 'g', -1, 64),
			strconv.FormatFloat(iv.Area, 'g', -1, 64),
		}
		if err := c.Write(rec); err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}

// kind describes polygon i of r as "fill", "cut" or "none".
func kind(r *Result, i int) string {
	switch {
	case r.Areas[i] > 0:
		return "fill"
	case r.Areas[i] < 0:
		return "cut"
	default:
		return "none"
	}
}

// WriteXLSX writes r as a workbook with an "Intervals" sheet (x0, x1,
// area), a "Polygons" sheet (one row per polygon) and a "Summary" sheet.
func WriteXLSX(w io.Writer, r *Result) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet("Intervals")
	if err != nil {
		return err
	}
	addRow(sheet, "x0", "x1", "area")
	for _, iv := range Intervals(r) {
		row := sheet.AddRow()
		row.AddCell().SetFloat(iv.X0)
		row.AddCell().SetFloat(iv.X1)
		row.AddCell().SetFloat(iv.Area)
	}

	sheet, err = f.AddSheet("Polygons")
	if err != nil {
		return err
	}
	addRow(sheet, "polygon", "kind", "area", "xmin", "xmax", "repaired")
	for i, p := range r.Polygons {
		b := p.Bounds()
		row := sheet.AddRow()
		row.AddCell().SetInt(i)
		row.AddCell().SetString(kind(r, i))
		row.AddCell().SetFloat(r.Areas[i])
		row.AddCell().SetFloat(b.Min.X)
		row.AddCell().SetFloat(b.Max.X)
		row.AddCell().SetString(strconv.FormatBool(r.Repaired(i)))
	}

	sheet, err = f.AddSheet("Summary")
	if err != nil {
		return err
	}
	for _, l := range Summarize(r).Table() {
		addRow(sheet, l...)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cutfill: writing workbook: %v", err)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

// polygonRecord is the attribute layout of polygon shapefiles.
type polygonRecord struct {
	geom.Polygon
	Area     float64
	Kind     string
	Repaired int
}

// WriteShapefile writes the polygons of r, with their signed areas, to
// the shapefile at filename. The coordinates are distance along section
// and elevation.
func WriteShapefile(filename string, r *Result) error {
	e, err := shp.NewEncoder(filename, polygonRecord{})
	if err != nil {
		return fmt.Errorf("cutfill: creating shapefile: %v", err)
	}
	defer e.Close()
	for i, p := range r.Polygons {
		rec := polygonRecord{Polygon: p, Area: r.Areas[i], Kind: kind(r, i)}
		if r.Repaired(i) {
			rec.Repaired = 1
		}
		if err := e.Encode(&rec); err != nil {
			return fmt.Errorf("cutfill: writing polygon %d to shapefile: %v", i, err)
		}
	}
	return nil
}
