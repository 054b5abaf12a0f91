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

package ipf

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MaxCells bounds the size of a contingency table. The product of all
// category counts must stay below this bound; larger tables must be
// rejected before allocation rather than discovered via an out-of-memory
// failure.
const MaxCells = 1_000_000

// Table is a dense contingency table with one dimension per axis. Cells
// are stored in row-major order with the last axis varying fastest; the
// flat/multi-index mapping is reversible via FlatIndex and Coords and is
// the convention shared with the sampler.
type Table struct {
	shape   []int     // category count per axis
	strides []int     // row-major strides
	cells   []float64 // cell weights, len = product of shape
}

// NewUniformTable creates a table of the given shape with every cell set
// to one. A strictly positive start keeps every cell reachable by
// multiplicative scaling.
func NewUniformTable(shape []int) (*Table, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("table must have at least one axis")
	}
	size := 1
	for i, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("axis %d has invalid category count (%d)", i, n)
		}
		if size > MaxCells/n {
			return nil, fmt.Errorf("table exceeds cell bound (%d); reduce the number of axes or categories", MaxCells)
		}
		size *= n
	}
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	cells := make([]float64, size)
	for i := range cells {
		cells[i] = 1.0
	}
	return &Table{shape: shape, strides: strides, cells: cells}, nil
}

// NumAxes returns the number of axes of the table.
func (t *Table) NumAxes() int {
	return len(t.shape)
}

// Shape returns a copy of the per-axis category counts.
func (t *Table) Shape() []int {
	shape := make([]int, len(t.shape))
	copy(shape, t.shape)
	return shape
}

// Size returns the number of cells.
func (t *Table) Size() int {
	return len(t.cells)
}

// Cells returns the flat cell weights in row-major order. The slice is
// the table's backing store and must not be mutated by the caller.
func (t *Table) Cells() []float64 {
	return t.cells
}

// Total returns the sum of all cell weights.
func (t *Table) Total() float64 {
	return floats.Sum(t.cells)
}

// FlatIndex maps per-axis coordinates to the row-major flat index.
func (t *Table) FlatIndex(coords []int) (int, error) {
	if len(coords) != len(t.shape) {
		return 0, fmt.Errorf("coordinate count (%d) mismatches number of axes (%d)", len(coords), len(t.shape))
	}
	flat := 0
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			return 0, fmt.Errorf("coordinate %d on axis %d is out of range [0,%d)", c, i, t.shape[i])
		}
		flat += c * t.strides[i]
	}
	return flat, nil
}

// Coords maps a row-major flat index back to per-axis coordinates.
func (t *Table) Coords(flat int) ([]int, error) {
	if flat < 0 || flat >= len(t.cells) {
		return nil, fmt.Errorf("flat index (%d) is out of range [0,%d)", flat, len(t.cells))
	}
	coords := make([]int, len(t.shape))
	for i := range t.shape {
		coords[i] = (flat / t.strides[i]) % t.shape[i]
	}
	return coords, nil
}

// Marginal projects the table onto one axis: for each category of the
// axis it sums the cell weights across all other axes.
func (t *Table) Marginal(axis int) ([]float64, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("axis index (%d) is out of range [0,%d)", axis, len(t.shape))
	}
	marginal := make([]float64, t.shape[axis])
	stride := t.strides[axis]
	size := t.shape[axis]
	for i, w := range t.cells {
		marginal[(i/stride)%size] += w
	}
	return marginal, nil
}

// ScaleAxis multiplies every cell by the ratio belonging to its category
// on the given axis, broadcast across all other axes.
func (t *Table) ScaleAxis(axis int, ratios []float64) error {
	if axis < 0 || axis >= len(t.shape) {
		return fmt.Errorf("axis index (%d) is out of range [0,%d)", axis, len(t.shape))
	}
	if len(ratios) != t.shape[axis] {
		return fmt.Errorf("ratio count (%d) mismatches category count (%d) of axis %d", len(ratios), t.shape[axis], axis)
	}
	stride := t.strides[axis]
	size := t.shape[axis]
	for i := range t.cells {
		t.cells[i] *= ratios[(i/stride)%size]
	}
	return nil
}
