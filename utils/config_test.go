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
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/logger"
)

func prepareMockCliContext(args ...string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.Int(RowsFlag.Name, RowsFlag.Value, "number of records to generate")
	flagSet.Int(MaxIterationsFlag.Name, MaxIterationsFlag.Value, "maximum number of fitting sweeps")
	flagSet.Float64(ToleranceFlag.Name, ToleranceFlag.Value, "convergence tolerance")
	flagSet.Int64(RandomSeedFlag.Name, RandomSeedFlag.Value, "random seed")
	flagSet.String(OutputFlag.Name, "", "output CSV file")
	flagSet.String(PortFlag.Name, PortFlag.Value, "web server port")
	flagSet.String(logger.LogLevelFlag.Name, "info", "log level")
	_ = flagSet.Parse(args)

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	ctx.Command = &cli.Command{
		Name: "test_command",
		Flags: []cli.Flag{
			&RowsFlag,
			&MaxIterationsFlag,
			&ToleranceFlag,
			&RandomSeedFlag,
			&OutputFlag,
			&PortFlag,
			&logger.LogLevelFlag,
		},
	}
	return ctx
}

func TestUtilsConfig_NewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(prepareMockCliContext())
	require.NoError(t, err)

	assert.Equal(t, "test_command", cfg.CommandName)
	assert.Equal(t, 100, cfg.Rows)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.InDelta(t, 1e-6, cfg.Tolerance, 0)
	assert.Equal(t, "", cfg.Output)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	// a seed of -1 is resolved to a fresh time-derived value
	assert.GreaterOrEqual(t, cfg.RandomSeed, int64(0))
}

func TestUtilsConfig_NewConfigUserValues(t *testing.T) {
	ctx := prepareMockCliContext(
		"-rows", "5000",
		"-max-iterations", "50",
		"-random-seed", "42",
		"-output", "synthetic.csv",
	)
	cfg, err := NewConfig(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Rows)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, "synthetic.csv", cfg.Output)
}

func TestUtilsConfig_NewConfigRejectsNegativeRows(t *testing.T) {
	_, err := NewConfig(prepareMockCliContext("-rows", "-1"))
	assert.Error(t, err)
}
