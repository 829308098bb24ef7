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

package hash

import "testing"

type record struct {
	Name   string
	Values []float64
	Attrs  map[string]int
}

func TestHash(t *testing.T) {
	a := record{Name: "a", Values: []float64{1, 2.5}, Attrs: map[string]int{"x": 1, "y": 2, "z": 3}}
	b := record{Name: "a", Values: []float64{1, 2.5}, Attrs: map[string]int{"z": 3, "y": 2, "x": 1}}
	if Hash(a) != Hash(b) {
		t.Error("equal values should have equal hashes")
	}
	if Hash(&a) != Hash(&b) {
		t.Error("pointers to equal values should have equal hashes")
	}

	b.Values[1] = 2.5000000000000004
	if Hash(a) == Hash(b) {
		t.Error("values differing in the last bit should have different hashes")
	}
	if len(Hash(a)) != 32 {
		t.Errorf("have hash length %d, want 32", len(Hash(a)))
	}
}
