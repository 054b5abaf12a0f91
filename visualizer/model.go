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

// Package visualizer renders the quality of a fit with a local
// web-server: one chart per axis comparing the target marginal against
// the fitted table's projection.
package visualizer

import (
	"fmt"
	"sync"

	"github.com/thatguywow/population-sample-simulator/ipf"
)

// AxisView is the plot data of one axis.
type AxisView struct {
	Name   string    // axis name
	Labels []string  // category labels
	Target []float64 // target marginal totals
	Fitted []float64 // fitted table projection
}

// view is the data model behind the rendered pages.
type view struct {
	axes         []AxisView
	maxDeviation float64
	iterations   int
	converged    bool
}

var (
	viewMu    sync.Mutex
	viewState *view
)

// setViewState produces the plot model from a fit result.
func setViewState(axes []ipf.Axis, res *ipf.Result) error {
	if res == nil || res.Table == nil {
		return fmt.Errorf("no fit result to visualize")
	}
	if len(axes) != res.Table.NumAxes() {
		return fmt.Errorf("axis count (%d) mismatches table axes (%d)", len(axes), res.Table.NumAxes())
	}
	v := &view{
		maxDeviation: res.MaxDeviation,
		iterations:   res.Iterations,
		converged:    res.Converged,
	}
	for i, ax := range axes {
		fitted, err := res.Table.Marginal(i)
		if err != nil {
			return err
		}
		v.axes = append(v.axes, AxisView{
			Name:   ax.Name,
			Labels: ax.Labels(),
			Target: ax.Targets(),
			Fitted: fitted,
		})
	}
	viewMu.Lock()
	viewState = v
	viewMu.Unlock()
	return nil
}

// currentView returns the current data model for rendering.
func currentView() (*view, error) {
	viewMu.Lock()
	defer viewMu.Unlock()
	if viewState == nil {
		return nil, fmt.Errorf("no fit has been visualized yet")
	}
	return viewState, nil
}
