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
	"math"
	"testing"
)

// checkMarginals verifies that the fitted table reproduces every target
// marginal within the given tolerance.
func checkMarginals(t *testing.T, table *Table, axes []Axis, tol float64) {
	t.Helper()
	for i, ax := range axes {
		current, err := table.Marginal(i)
		if err != nil {
			t.Fatalf("marginal of axis %q: %v", ax.Name, err)
		}
		for j, c := range ax.Categories {
			if math.Abs(current[j]-c.Target) > tol {
				t.Fatalf("axis %q category %q: want %v, got %v", ax.Name, c.Label, c.Target, current[j])
			}
		}
	}
}

// TestFit_TwoAxes fits the sex/region scenario with independent marginals;
// a single sweep is enough to reach the targets exactly.
func TestFit_TwoAxes(t *testing.T) {
	axes := []Axis{
		{Name: "sex", Categories: []Category{{"Male", 60}, {"Female", 40}}},
		{Name: "region", Categories: []Category{{"North", 70}, {"South", 30}}},
	}
	res, err := Fit(axes, DefaultMaxIterations, DefaultTolerance)
	if err != nil {
		t.Fatalf("fit failed; %v", err)
	}
	if !res.Converged {
		t.Fatalf("independent marginals: want convergence, got deviation %v after %d iterations", res.MaxDeviation, res.Iterations)
	}
	checkMarginals(t, res.Table, axes, 1e-6)
	// joint cells are the product-form weights: 42, 18, 28, 12
	want := []float64{42, 18, 28, 12}
	for i, w := range res.Table.Cells() {
		if math.Abs(w-want[i]) > 1e-6 {
			t.Fatalf("cell %d: want %v, got %v", i, want[i], w)
		}
	}
}

// TestFit_ThreeAxes checks marginal consistency for a three-axis fit with
// inconsistent grand totals, which needs several sweeps.
func TestFit_ThreeAxes(t *testing.T) {
	axes := []Axis{
		{Name: "sex", Categories: []Category{{"Male", 49}, {"Female", 49}, {"Other", 2}}},
		{Name: "region", Categories: []Category{{"Attica", 35}, {"Crete", 25}, {"Thessaly", 20}, {"Epirus", 20}}},
		{Name: "education", Categories: []Category{{"Primary", 12}, {"Secondary", 45}, {"Tertiary", 33}, {"Postgraduate", 10}}},
	}
	res, err := Fit(axes, DefaultMaxIterations, DefaultTolerance)
	if err != nil {
		t.Fatalf("fit failed; %v", err)
	}
	if !res.Converged {
		t.Fatalf("want convergence, got deviation %v after %d iterations", res.MaxDeviation, res.Iterations)
	}
	checkMarginals(t, res.Table, axes, 1e-3)
	for i, w := range res.Table.Cells() {
		if w < 0 {
			t.Fatalf("cell %d went negative (%v)", i, w)
		}
	}
}

// TestFit_Deterministic checks that repeated runs produce a bit-for-bit
// identical table.
func TestFit_Deterministic(t *testing.T) {
	axes := []Axis{
		{Name: "a", Categories: []Category{{"x", 13}, {"y", 7}, {"z", 5}}},
		{Name: "b", Categories: []Category{{"p", 11}, {"q", 14}}},
	}
	first, err := Fit(axes, 50, 1e-9)
	if err != nil {
		t.Fatalf("first fit failed; %v", err)
	}
	second, err := Fit(axes, 50, 1e-9)
	if err != nil {
		t.Fatalf("second fit failed; %v", err)
	}
	if first.Iterations != second.Iterations || first.MaxDeviation != second.MaxDeviation {
		t.Fatalf("fit metadata differs between runs")
	}
	for i := range first.Table.Cells() {
		if first.Table.Cells()[i] != second.Table.Cells()[i] {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
}

// TestFit_ZeroTarget checks that a zero-target category drives its cells
// to zero without disturbing the remaining categories.
func TestFit_ZeroTarget(t *testing.T) {
	axes := []Axis{
		{Name: "sex", Categories: []Category{{"Male", 50}, {"Female", 50}, {"Other", 0}}},
		{Name: "region", Categories: []Category{{"North", 60}, {"South", 40}}},
	}
	res, err := Fit(axes, DefaultMaxIterations, DefaultTolerance)
	if err != nil {
		t.Fatalf("fit failed; %v", err)
	}
	marginal, err := res.Table.Marginal(0)
	if err != nil {
		t.Fatalf("marginal of axis 0: %v", err)
	}
	if marginal[2] != 0 {
		t.Fatalf("zero-target category: want 0, got %v", marginal[2])
	}
	if math.Abs(marginal[0]-50) > 1e-6 || math.Abs(marginal[1]-50) > 1e-6 {
		t.Fatalf("remaining categories off target: got %v", marginal)
	}
}

// TestFit_SingleCategoryAxis checks that a one-category axis is a no-op
// scaling step and must not error.
func TestFit_SingleCategoryAxis(t *testing.T) {
	axes := []Axis{
		{Name: "country", Categories: []Category{{"Greece", 100}}},
		{Name: "sex", Categories: []Category{{"Male", 60}, {"Female", 40}}},
	}
	res, err := Fit(axes, DefaultMaxIterations, DefaultTolerance)
	if err != nil {
		t.Fatalf("fit failed; %v", err)
	}
	if !res.Converged {
		t.Fatalf("want convergence, got deviation %v", res.MaxDeviation)
	}
	checkMarginals(t, res.Table, axes, 1e-6)
}

// TestFit_InvalidInputs rejects invalid marginals and parameters before
// any iteration.
func TestFit_InvalidInputs(t *testing.T) {
	valid := []Axis{
		{Name: "sex", Categories: []Category{{"Male", 60}, {"Female", 40}}},
	}
	if _, err := Fit(nil, 10, 1e-6); err == nil {
		t.Fatalf("no axes: want error, got nil")
	}
	if _, err := Fit([]Axis{{Name: "empty"}}, 10, 1e-6); err == nil {
		t.Fatalf("axis without categories: want error, got nil")
	}
	negative := []Axis{
		{Name: "sex", Categories: []Category{{"Male", -1}, {"Female", 40}}},
	}
	if _, err := Fit(negative, 10, 1e-6); err == nil {
		t.Fatalf("negative target: want error, got nil")
	}
	nan := []Axis{
		{Name: "sex", Categories: []Category{{"Male", math.NaN()}}},
	}
	if _, err := Fit(nan, 10, 1e-6); err == nil {
		t.Fatalf("NaN target: want error, got nil")
	}
	duplicate := []Axis{
		{Name: "sex", Categories: []Category{{"Male", 60}, {"Male", 40}}},
	}
	if _, err := Fit(duplicate, 10, 1e-6); err == nil {
		t.Fatalf("duplicate category: want error, got nil")
	}
	if _, err := Fit(valid, 0, 1e-6); err == nil {
		t.Fatalf("zero iterations: want error, got nil")
	}
	if _, err := Fit(valid, 10, 0); err == nil {
		t.Fatalf("zero tolerance: want error, got nil")
	}
}

// TestFit_OversizedTable rejects inputs whose cell product exceeds the
// bound before any allocation.
func TestFit_OversizedTable(t *testing.T) {
	big := make([]Category, 1001)
	for i := range big {
		big[i] = Category{Label: fmt.Sprintf("c%d", i), Target: 1}
	}
	axes := []Axis{
		{Name: "a", Categories: big},
		{Name: "b", Categories: big},
	}
	if _, err := Fit(axes, 10, 1e-6); err == nil {
		t.Fatalf("oversized table: want error, got nil")
	}
}

// TestFit_NonConvergence checks that a run out of iterations still
// returns the table together with the deviation metric.
func TestFit_NonConvergence(t *testing.T) {
	axes := []Axis{
		{Name: "a", Categories: []Category{{"x", 13}, {"y", 7}, {"z", 5}}},
		{Name: "b", Categories: []Category{{"p", 11}, {"q", 14}}},
	}
	res, err := Fit(axes, 1, 1e-12)
	if err != nil {
		t.Fatalf("fit failed; %v", err)
	}
	if res.Converged {
		t.Fatalf("one sweep at 1e-12: want non-convergence")
	}
	if res.Table == nil {
		t.Fatalf("non-converged fit must still return the table")
	}
	if res.Iterations != 1 {
		t.Fatalf("iterations: want 1, got %d", res.Iterations)
	}
	if res.MaxDeviation <= 0 {
		t.Fatalf("deviation metric must be exposed, got %v", res.MaxDeviation)
	}
}
