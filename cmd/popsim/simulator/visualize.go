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

package simulator

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/ipf"
	"github.com/thatguywow/population-sample-simulator/logger"
	"github.com/thatguywow/population-sample-simulator/utils"
	"github.com/thatguywow/population-sample-simulator/visualizer"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "fit a contingency table and inspect the fit in a browser",
	ArgsUsage: "<marginals-file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.MaxIterationsFlag,
		&utils.ToleranceFlag,
		&utils.PortFlag,
	},
	Description: `
The visualize command requires one argument: <marginals-file>

It fits the marginals and serves one chart per axis comparing the
target marginal with the fitted table's projection.`,
}

// visualizeAction fits the marginals and fires up the fit inspector.
func visualizeAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing marginals file as parameter")
	}
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "PopsimVisualize")

	axes, err := loadMarginals(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	res, err := ipf.Fit(axes, cfg.MaxIterations, cfg.Tolerance)
	if err != nil {
		return err
	}
	log.Noticef("fit finished after %d sweeps (max deviation %v); serving charts on port %v", res.Iterations, res.MaxDeviation, cfg.Port)
	return visualizer.FireUpWeb(axes, res, cfg.Port)
}
