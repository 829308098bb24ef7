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

// Command cutfill is a command-line interface for calculating cut and fill
// between repeat cross-section surveys.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/cutfill/cutfillutil"
)

func main() {
	if err := cutfillutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
