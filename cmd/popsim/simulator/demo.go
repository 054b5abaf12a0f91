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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/demogen"
	"github.com/thatguywow/population-sample-simulator/logger"
	"github.com/thatguywow/population-sample-simulator/utils"
)

// DemoCommand data structure for the demo app.
var DemoCommand = cli.Command{
	Action: demoAction,
	Name:   "demo",
	Usage:  "generate demographic records without fitting",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.RowsFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
	},
	Description: `
The demo command generates rows from the built-in demographic model
(age, sex, education, income, region) without requiring marginals.`,
}

// demoAction generates demographic records and writes them out.
func demoAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "PopsimDemo")

	log.Noticef("generating %d rows with random seed %d", cfg.Rows, cfg.RandomSeed)
	rows := demogen.New(cfg.RandomSeed).Rows(cfg.Rows)

	columns := demogen.Columns()
	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Values())
	}
	if cfg.Output != "" {
		log.Noticef("writing %d records to %v", len(values), cfg.Output)
		return utils.WriteCSVFile(cfg.Output, columns, values)
	}
	utils.RenderPreview(os.Stdout, columns, values, previewRows)
	return nil
}
