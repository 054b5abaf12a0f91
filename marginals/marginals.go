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

// Package marginals decodes target marginals from their transport
// formats into the typed axis structure consumed by the fitter. Two
// formats are supported: tall-form CSV with an axis,category,value
// header, and a tagged JSON marginals file.
package marginals

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thatguywow/population-sample-simulator/ipf"
)

// fileID tags a JSON marginals file.
const fileID = "marginals"

// fileJSON is the on-disk JSON layout of a marginals file.
type fileJSON struct {
	FileID string     `json:"file-id"`
	Axes   []ipf.Axis `json:"axes"`
}

// DecodeCSV reads tall-form marginals: one row per (axis, category) pair
// with a numeric target value. Axes and categories keep their
// first-appearance order; values of duplicate (axis, category) pairs
// are summed, matching a pivot of the tall table.
func DecodeCSV(r io.Reader) ([]ipf.Axis, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header; %v", err)
	}
	axisCol, categoryCol, valueCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "axis":
			axisCol = i
		case "category":
			categoryCol = i
		case "value":
			valueCol = i
		}
	}
	if axisCol < 0 || categoryCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("CSV must have axis,category,value columns; got header %v", header)
	}

	var axes []ipf.Axis
	axisIdx := map[string]int{}
	categoryIdx := map[string]map[string]int{}
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d; %v", line, err)
		}
		axisName := strings.TrimSpace(row[axisCol])
		category := strings.TrimSpace(row[categoryCol])
		value, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for axis %q on line %d; %v", row[valueCol], axisName, line, err)
		}

		ai, ok := axisIdx[axisName]
		if !ok {
			ai = len(axes)
			axisIdx[axisName] = ai
			categoryIdx[axisName] = map[string]int{}
			axes = append(axes, ipf.Axis{Name: axisName})
		}
		ci, ok := categoryIdx[axisName][category]
		if !ok {
			categoryIdx[axisName][category] = len(axes[ai].Categories)
			axes[ai].Categories = append(axes[ai].Categories, ipf.Category{Label: category, Target: value})
		} else {
			axes[ai].Categories[ci].Target += value
		}
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("CSV contains no marginal rows")
	}
	return axes, nil
}

// Read loads marginals from a JSON file written by Write.
func Read(filename string) (axes []ipf.Axis, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed opening marginals file %v; %v", filename, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed reading marginals file; %v", err)
	}
	return DecodeJSON(contents)
}

// DecodeJSON parses a tagged JSON marginals document.
func DecodeJSON(contents []byte) ([]ipf.Axis, error) {
	var doc fileJSON
	if err := json.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("cannot unmarshal marginals; %v", err)
	}
	if doc.FileID != fileID {
		return nil, fmt.Errorf("document is not a marginals file")
	}
	return doc.Axes, nil
}

// Write stores marginals as a tagged JSON file.
func Write(filename string, axes []ipf.Axis) (err error) {
	f, fErr := os.Create(filename)
	if fErr != nil {
		return fmt.Errorf("cannot open JSON file; %v", fErr)
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)
	jOut, err := json.MarshalIndent(fileJSON{FileID: fileID, Axes: axes}, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to convert JSON file; %v", err)
	}
	_, err = fmt.Fprintln(f, string(jOut))
	if err != nil {
		return fmt.Errorf("failed to write JSON file; %v", err)
	}
	return nil
}
