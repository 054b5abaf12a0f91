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
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/logger"
)

// Config carries the user-specified run parameters of one command
// invocation.
type Config struct {
	AppName     string
	CommandName string

	LogLevel      string  // logging verbosity
	Rows          int     // number of records to generate
	MaxIterations int     // fitting sweep bound
	Tolerance     float64 // fitting convergence tolerance
	RandomSeed    int64   // sampling seed; resolved to a time-based value if -1
	Output        string  // CSV output path, empty for stdout preview only
	Port          string  // web server port
}

// NewConfig reads the command's flags into a Config with user-specified
// values or the flag defaults. A random seed of -1 is resolved to a
// time-derived seed so that every run gets a fresh but reportable value.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		LogLevel:      getFlagValue(ctx, logger.LogLevelFlag).(string),
		Rows:          getFlagValue(ctx, RowsFlag).(int),
		MaxIterations: getFlagValue(ctx, MaxIterationsFlag).(int),
		Tolerance:     getFlagValue(ctx, ToleranceFlag).(float64),
		RandomSeed:    getFlagValue(ctx, RandomSeedFlag).(int64),
		Output:        getFlagValue(ctx, OutputFlag).(string),
		Port:          getFlagValue(ctx, PortFlag).(string),
	}
	if cfg.Rows < 0 {
		return nil, fmt.Errorf("number of rows (%d) must be non-negative", cfg.Rows)
	}
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	return cfg, nil
}

// getFlagValue returns the value specified by the user if the flag is
// present in the cli context, otherwise the default flag value.
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	for _, cmdFlag := range ctx.Command.Flags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}
		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}
		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}
		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}
		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// fall back to the flag's default value
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}
	return nil
}
