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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/kr/pretty"
)

func TestReadSection(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    geom.LineString
		wantErr bool
	}{
		{
			name: "header",
			data: "distance,elevation,code\n0,10.5,GS\n2.5,11,GS\n",
			want: geom.LineString{{X: 0, Y: 10.5}, {X: 2.5, Y: 11}},
		},
		{
			name: "comments",
			data: "# surveyed 2024-05-02\n0, 1\n\n# toe\n4, 2\n",
			want: geom.LineString{{X: 0, Y: 1}, {X: 4, Y: 2}},
		},
		{
			name:    "one column",
			data:    "0\n1\n",
			wantErr: true,
		},
		{
			name:    "bad number",
			data:    "0,1\n2,x\n",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := ReadSection(strings.NewReader(test.data), test.name)
			if test.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := pretty.Diff(s.Line, test.want); len(diff) > 0 {
				t.Errorf("have %v, want %v: %v", s.Line, test.want, diff)
			}
		})
	}
}

func TestOpenSection(t *testing.T) {
	dir, err := os.MkdirTemp("", "cutfill")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "XS-12.csv")
	if err := os.WriteFile(path, []byte("0,1\n1,2\n3,0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := OpenSection(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "XS-12" {
		t.Errorf("have name %q, want XS-12", s.Name)
	}

	s.Reverse()
	s.Adjust(0.5)
	want := geom.LineString{{X: 3, Y: 0.5}, {X: 1, Y: 2.5}, {X: 0, Y: 1.5}}
	if diff := pretty.Diff(s.Line, want); len(diff) > 0 {
		t.Errorf("have %v, want %v: %v", s.Line, want, diff)
	}

	if _, err := OpenSection(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
