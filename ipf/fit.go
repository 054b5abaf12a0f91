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

// Package ipf fits a dense joint contingency table to per-axis target
// marginals using classic multiplicative iterative proportional fitting.
// The fitter is deterministic: axes are processed in the given order each
// sweep, and identical inputs produce a bit-for-bit identical table.
package ipf

import (
	"fmt"
	"math"
)

// Default fitting parameters.
const (
	DefaultMaxIterations = 500
	DefaultTolerance     = 1e-6
)

// Category is one labeled category of an axis with its target total.
type Category struct {
	Label  string  `json:"label"`
	Target float64 `json:"target"`
}

// Axis is one categorical dimension of the population with an ordered
// set of categories. Category order is significant only for array-index
// correspondence between fitter and sampler.
type Axis struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Labels returns the category labels of the axis in order.
func (a Axis) Labels() []string {
	labels := make([]string, len(a.Categories))
	for i, c := range a.Categories {
		labels[i] = c.Label
	}
	return labels
}

// Targets returns the category target totals of the axis in order.
func (a Axis) Targets() []float64 {
	targets := make([]float64, len(a.Categories))
	for i, c := range a.Categories {
		targets[i] = c.Target
	}
	return targets
}

// Result carries the fitted table together with the convergence metric.
// A run that exhausts MaxIterations still yields a table; callers judge
// its quality via MaxDeviation and Converged.
type Result struct {
	Table        *Table  // fitted contingency table
	MaxDeviation float64 // max |ratio-1| observed in the last sweep
	Iterations   int     // number of full sweeps performed
	Converged    bool    // true if MaxDeviation fell below the tolerance
}

// Fit computes a joint contingency table whose per-axis marginals match
// the target totals of the given axes. The table starts uniform and is
// rescaled along each axis in turn for up to maxIterations sweeps,
// stopping early once the maximum ratio deviation of a full sweep falls
// below tolerance.
//
// A category whose current marginal is zero keeps a scaling ratio of
// zero; its target is unreachable by multiplicative scaling and the
// deviation metric reflects that instead of hiding it.
func Fit(axes []Axis, maxIterations int, tolerance float64) (*Result, error) {
	if err := checkAxes(axes); err != nil {
		return nil, err
	}
	if maxIterations < 1 {
		return nil, fmt.Errorf("maximum number of iterations (%d) must be positive", maxIterations)
	}
	if tolerance <= 0 || math.IsNaN(tolerance) {
		return nil, fmt.Errorf("tolerance (%v) must be positive", tolerance)
	}

	shape := make([]int, len(axes))
	targets := make([][]float64, len(axes))
	for i, ax := range axes {
		shape[i] = len(ax.Categories)
		targets[i] = ax.Targets()
	}
	table, err := NewUniformTable(shape)
	if err != nil {
		return nil, err
	}

	res := &Result{Table: table}
	for iter := 0; iter < maxIterations; iter++ {
		maxDeviation := 0.0
		for axis := range axes {
			current, err := table.Marginal(axis)
			if err != nil {
				return nil, err
			}
			ratios := make([]float64, len(current))
			for j, cur := range current {
				if cur == 0 {
					// cell-starved category; stays at zero
					ratios[j] = 0
				} else {
					ratios[j] = targets[axis][j] / cur
				}
				if d := math.Abs(ratios[j] - 1.0); d > maxDeviation {
					maxDeviation = d
				}
			}
			if err := table.ScaleAxis(axis, ratios); err != nil {
				return nil, err
			}
		}
		res.Iterations++
		res.MaxDeviation = maxDeviation
		if maxDeviation < tolerance {
			res.Converged = true
			break
		}
	}
	return res, nil
}

// checkAxes validates the marginal inputs before any iteration. Negative
// or NaN targets, empty axes, and duplicate labels within an axis are
// rejected with the axis name and offending value.
func checkAxes(axes []Axis) error {
	if len(axes) == 0 {
		return fmt.Errorf("no axes given")
	}
	for _, ax := range axes {
		if len(ax.Categories) == 0 {
			return fmt.Errorf("axis %q has no categories", ax.Name)
		}
		seen := map[string]bool{}
		for _, c := range ax.Categories {
			if seen[c.Label] {
				return fmt.Errorf("axis %q has duplicate category %q", ax.Name, c.Label)
			}
			seen[c.Label] = true
			if c.Target < 0 || math.IsNaN(c.Target) {
				return fmt.Errorf("axis %q has invalid target (%v) for category %q", ax.Name, c.Target, c.Label)
			}
		}
	}
	return nil
}
