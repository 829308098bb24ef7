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

package cutfillutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/cutfill"
	"github.com/spatialmodel/cutfill/internal/hash"
)

// Job describes the comparison of two surveys of one section.
type Job struct {
	// Name identifies the section in messages. If empty, the name of the
	// T0 file is used.
	Name string

	// T0 and T1 are the paths of CSV files holding the initial and final
	// surveys.
	T0, T1 string

	// Close specifies whether the open section ends should be closed.
	// If nil, the default for the run is used.
	Close *bool

	ReverseT0, ReverseT1 bool
	AdjustT0, AdjustT1   float64

	// Output is the file the results are written to, if any.
	Output string
}

// jobFile is the layout of a TOML job file.
type jobFile struct {
	Section []Job
}

// LoadJobs reads the jobs in the TOML file at path. Relative file paths
// in the jobs are taken to be relative to the directory of the job file.
func LoadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cutfill: opening job file: %v", err)
	}
	defer f.Close()

	var jf jobFile
	if _, err := toml.DecodeReader(bufio.NewReader(f), &jf); err != nil {
		return nil, fmt.Errorf("cutfill: there has been an error parsing the job file: %v", err)
	}
	if len(jf.Section) == 0 {
		return nil, fmt.Errorf("cutfill: job file %s has no [[Section]] entries", path)
	}
	dir := filepath.Dir(path)
	for i := range jf.Section {
		j := &jf.Section[i]
		j.T0 = relativeTo(dir, os.ExpandEnv(j.T0))
		j.T1 = relativeTo(dir, os.ExpandEnv(j.T1))
		if j.Output != "" {
			j.Output = relativeTo(dir, os.ExpandEnv(j.Output))
		}
	}
	return jf.Section, nil
}

func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// name returns the name of the section the job compares.
func (j Job) name() string {
	if j.Name != "" {
		return j.Name
	}
	return strings.TrimSuffix(filepath.Base(j.T0), filepath.Ext(j.T0))
}

// Diff runs job, writing a summary of the result to w and the full results
// to job.Output if it is set.
func Diff(w io.Writer, log logrus.FieldLogger, job Job) (*cutfill.Result, error) {
	name := job.name()
	log = log.WithField("section", name)

	s0, err := cutfill.OpenSection(job.T0)
	if err != nil {
		return nil, fmt.Errorf("cutfill: section %s: %v", name, err)
	}
	s1, err := cutfill.OpenSection(job.T1)
	if err != nil {
		return nil, fmt.Errorf("cutfill: section %s: %v", name, err)
	}
	if job.ReverseT0 {
		s0.Reverse()
	}
	if job.ReverseT1 {
		s1.Reverse()
	}
	s0.Adjust(job.AdjustT0)
	s1.Adjust(job.AdjustT1)

	closeEnds := true
	if job.Close != nil {
		closeEnds = *job.Close
	}
	d := &cutfill.Differ{Log: log}
	r, err := d.Difference(s0.Line, s1.Line, closeEnds)
	if err != nil {
		return nil, describeError(name, job, err)
	}

	fmt.Fprintf(w, "Section %s\n", name)
	if _, err := cutfill.Summarize(r).Table().Tabbed(w); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Fingerprint\t%s\n\n", hash.Hash(r))

	if job.Output != "" {
		if err := writeOutput(job.Output, r); err != nil {
			return nil, fmt.Errorf("cutfill: section %s: %v", name, err)
		}
		log.WithField("file", job.Output).Info("cutfill: wrote results")
	}
	return r, nil
}

// describeError names the section and survey file responsible for err.
func describeError(name string, job Job, err error) error {
	var degenerate *cutfill.DegenerateInputError
	if errors.As(err, &degenerate) {
		file := job.T0
		if degenerate.Line == "line2" {
			file = job.T1
		}
		return fmt.Errorf("cutfill: section %s: survey %s: %v", name, file, err)
	}
	return fmt.Errorf("cutfill: section %s: %v", name, err)
}

// writeOutput writes r to path in the format given by its extension.
func writeOutput(path string, r *cutfill.Result) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".shp":
		return cutfill.WriteShapefile(path, r)
	case ".csv", ".xlsx":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if ext == ".csv" {
			err = cutfill.WriteCSV(f, cutfill.Intervals(r))
		} else {
			err = cutfill.WriteXLSX(f, r)
		}
		if err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output format %q; use .csv, .xlsx or .shp", ext)
	}
}

// Batch runs every job in turn. closeEnds is used for jobs that do not
// set Close. It stops at the first job that fails.
func Batch(w io.Writer, log logrus.FieldLogger, jobs []Job, closeEnds bool) error {
	for _, job := range jobs {
		if job.Close == nil {
			c := closeEnds
			job.Close = &c
		}
		if _, err := Diff(w, log, job); err != nil {
			return err
		}
	}
	return nil
}
