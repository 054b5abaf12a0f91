// Copyright 2025 The Population Sample Simulator Authors
// This file is part of the Population Sample Simulator.
//
// The simulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The simulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the simulator. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/thatguywow/population-sample-simulator/sampler"
)

// RecordTable converts sampled records into tabular form, with one
// column per axis in the fixed axis order.
func RecordTable(axes []sampler.AxisLabels, records []sampler.Record) ([]string, [][]string) {
	columns := make([]string, len(axes))
	for i, ax := range axes {
		columns[i] = ax.Name
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(columns))
		for j, name := range columns {
			row[j] = r[name]
		}
		rows[i] = row
	}
	return columns, rows
}

// WriteCSV writes a header line followed by the rows.
func WriteCSV(w io.Writer, columns []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("cannot write CSV header; %v", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row %d; %v", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the rows to the named CSV file.
func WriteCSVFile(filename string, columns []string, rows [][]string) (err error) {
	f, fErr := os.Create(filename)
	if fErr != nil {
		return fmt.Errorf("cannot open CSV file; %v", fErr)
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)
	return WriteCSV(f, columns, rows)
}

// RenderPreview prints at most limit rows as a text table.
func RenderPreview(out io.Writer, columns []string, rows [][]string, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	header := table.Row{}
	for _, c := range columns {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for i, row := range rows {
		if i >= limit {
			t.AppendFooter(table.Row{fmt.Sprintf("%d more rows", len(rows)-limit)})
			break
		}
		r := table.Row{}
		for _, v := range row {
			r = append(r, v)
		}
		t.AppendRow(r)
	}
	t.Render()
}
