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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/cmd/popsim/simulator"
)

var popsimApp = &cli.App{
	Name:     "Synthetic population generator",
	HelpName: "popsim",
	Usage:    "fit contingency tables to marginals and sample synthetic populations",
	Commands: []*cli.Command{
		&simulator.FitCommand,
		&simulator.DemoCommand,
		&simulator.ServeCommand,
		&simulator.VisualizeCommand,
	},
}

func main() {
	if err := popsimApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
