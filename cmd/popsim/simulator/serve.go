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
	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/api"
	"github.com/thatguywow/population-sample-simulator/logger"
	"github.com/thatguywow/population-sample-simulator/utils"
)

// ServeCommand data structure for the serve app.
var ServeCommand = cli.Command{
	Action: serveAction,
	Name:   "serve",
	Usage:  "run the HTTP generation service",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.MaxIterationsFlag,
		&utils.ToleranceFlag,
		&utils.RandomSeedFlag,
		&utils.PortFlag,
	},
	Description: `
The serve command starts a web server exposing the record generator on
POST /api/generate. Marginals are uploaded per request; the demo mode
needs no upload.`,
}

// serveAction starts the HTTP generation service.
func serveAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "PopsimServe")

	svc := api.NewService(cfg.RandomSeed, cfg.MaxIterations, cfg.Tolerance)
	log.Noticef("listening on port %v", cfg.Port)
	return api.NewServer(svc, log).ListenAndServe(cfg.Port)
}
