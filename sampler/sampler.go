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

// Package sampler draws labeled individual records from a fitted
// contingency table by weighted random selection over its flattened
// cells. Draws are i.i.d. with replacement; the only contract shared
// with the fitter is the table's shape and its row-major index mapping.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/thatguywow/population-sample-simulator/ipf"
)

// Error kinds reported before any record is produced.
var (
	// ErrDimensionMismatch is reported when the axis labels disagree
	// with the table's shape.
	ErrDimensionMismatch = errors.New("axis labels mismatch table shape")

	// ErrDegenerateTable is reported when the total table weight is zero
	// and no probability distribution can be formed.
	ErrDegenerateTable = errors.New("table has zero total weight")
)

// Record is one sampled individual: a mapping from axis name to the
// category label drawn for that axis.
type Record map[string]string

// AxisLabels carries the ordered category labels of one axis. The axis
// order must match the fixed axis order of the table.
type AxisLabels struct {
	Name   string
	Labels []string
}

// Labels extracts the per-axis label lists from fitter axes, preserving
// the axis order agreed between fitter and sampler.
func Labels(axes []ipf.Axis) []AxisLabels {
	labels := make([]AxisLabels, len(axes))
	for i, ax := range axes {
		labels[i] = AxisLabels{Name: ax.Name, Labels: ax.Labels()}
	}
	return labels
}

// Sample draws n records from the table with cell probabilities
// proportional to the cell weights. The random generator is supplied by
// the caller; a fixed seed gives a reproducible sample.
func Sample(rg *rand.Rand, table *ipf.Table, axes []AxisLabels, n int) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample size (%d) must be non-negative", n)
	}
	if err := checkShape(table, axes); err != nil {
		return nil, err
	}
	if total := table.Total(); total <= 0 {
		return nil, fmt.Errorf("%w (total %v)", ErrDegenerateTable, total)
	}
	at, err := newAliasTable(table.Cells())
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		flat := at.sample(rg)
		coords, err := table.Coords(flat)
		if err != nil {
			return nil, err
		}
		record := make(Record, len(axes))
		for i, ax := range axes {
			record[ax.Name] = ax.Labels[coords[i]]
		}
		records = append(records, record)
	}
	return records, nil
}

// checkShape verifies that the label lists agree with the table's shape
// axis by axis.
func checkShape(table *ipf.Table, axes []AxisLabels) error {
	shape := table.Shape()
	if len(axes) != len(shape) {
		return fmt.Errorf("%w: %d axes given, table has %d", ErrDimensionMismatch, len(axes), len(shape))
	}
	for i, ax := range axes {
		if len(ax.Labels) != shape[i] {
			return fmt.Errorf("%w: axis %q has %d labels, table expects %d", ErrDimensionMismatch, ax.Name, len(ax.Labels), shape[i])
		}
	}
	return nil
}
