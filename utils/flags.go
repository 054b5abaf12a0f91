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

package utils

import (
	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/ipf"
)

// Command-line flags shared across the popsim commands.
var (
	RowsFlag = cli.IntFlag{
		Name:    "rows",
		Aliases: []string{"n"},
		Usage:   "number of records to generate",
		Value:   100,
	}
	MaxIterationsFlag = cli.IntFlag{
		Name:  "max-iterations",
		Usage: "maximum number of fitting sweeps",
		Value: ipf.DefaultMaxIterations,
	}
	ToleranceFlag = cli.Float64Flag{
		Name:  "tolerance",
		Usage: "convergence tolerance of the fitting sweeps",
		Value: ipf.DefaultTolerance,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set the random seed for sampling (-1 for time-based)",
		Value: -1,
	}
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write generated records to the given CSV file",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port for the local web server",
		Value: "8080",
	}
)
