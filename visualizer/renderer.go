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

package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/thatguywow/population-sample-simulator/ipf"
)

// HTML reference for the rendered marginal pages.
const marginalRef = "marginal"

// renderMain renders the main menu with one entry per axis.
func renderMain(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Population Sample Simulator: Fit Inspector</title>
  </head>
  <body>
    <h1>Population Sample Simulator: Fit Inspector</h1>
`)
	_, _ = fmt.Fprintf(w, "    <p>%d iterations, max deviation %.3g, converged: %v</p>\n    <ul>\n", view.iterations, view.maxDeviation, view.converged)
	for _, ax := range view.axes {
		_, _ = fmt.Fprintf(w, "    <li> <h3> <a href=\"/%s/%s\"> Axis %s </a> </h3> </li>\n", marginalRef, ax.Name, ax.Name)
	}
	_, _ = fmt.Fprint(w, "    </ul>\n</body>\n</html>\n")
}

// convertMarginalData converts marginal totals to chart points.
func convertMarginalData(data []float64) []opts.BarData {
	items := []opts.BarData{}
	for _, v := range data {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

// newMarginalChart creates a bar chart comparing the target marginal of
// one axis with the fitted table's projection.
func newMarginalChart(view AxisView) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Axis %v", view.Name),
			Subtitle: "Target vs. fitted marginal totals",
		}))
	chart.SetXAxis(view.Labels).
		AddSeries("Target", convertMarginalData(view.Target)).
		AddSeries("Fitted", convertMarginalData(view.Fitted))
	return chart
}

// renderMarginal renders the marginal chart of one axis.
func renderMarginal(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	name := r.URL.Path[len("/"+marginalRef+"/"):]
	for _, ax := range view.axes {
		if ax.Name == name {
			_ = newMarginalChart(ax).Render(w)
			return
		}
	}
	http.Error(w, fmt.Sprintf("unknown axis %q", name), http.StatusNotFound)
}

// FireUpWeb produces a data model for the fit result and visualizes it
// with a local web-server.
func FireUpWeb(axes []ipf.Axis, res *ipf.Result, addr string) error {
	if err := setViewState(axes, res); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+marginalRef+"/", renderMarginal)
	return http.ListenAndServe(":"+addr, nil)
}
