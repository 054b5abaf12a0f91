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
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/thatguywow/population-sample-simulator/ipf"
	"github.com/thatguywow/population-sample-simulator/logger"
	"github.com/thatguywow/population-sample-simulator/marginals"
	"github.com/thatguywow/population-sample-simulator/sampler"
	"github.com/thatguywow/population-sample-simulator/utils"
)

// previewRows limits the number of records echoed to the terminal.
const previewRows = 20

// FitCommand data structure for the fit app.
var FitCommand = cli.Command{
	Action:    fitAction,
	Name:      "fit",
	Usage:     "fit a contingency table to marginals and sample records from it",
	ArgsUsage: "<marginals-file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.RowsFlag,
		&utils.MaxIterationsFlag,
		&utils.ToleranceFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
	},
	Description: `
The fit command requires one argument: <marginals-file>

<marginals-file> holds the target marginals, either as tall-form CSV
with axis,category,value columns or as a marginals JSON file.`,
}

// loadMarginals reads the marginals file, choosing the decoder by the
// file extension.
func loadMarginals(filename string) ([]ipf.Axis, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		return marginals.Read(filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed opening marginals file %v; %v", filename, err)
	}
	defer func() { _ = f.Close() }()
	return marginals.DecodeCSV(f)
}

// fitAction fits the marginals and samples the requested number of records.
func fitAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing marginals file as parameter")
	}
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "PopsimFit")

	axes, err := loadMarginals(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	log.Infof("fitting %d axes (max %d sweeps, tolerance %v)", len(axes), cfg.MaxIterations, cfg.Tolerance)
	res, err := ipf.Fit(axes, cfg.MaxIterations, cfg.Tolerance)
	if err != nil {
		return err
	}
	if res.Converged {
		log.Noticef("converged after %d sweeps (max deviation %v)", res.Iterations, res.MaxDeviation)
	} else {
		log.Warningf("no convergence after %d sweeps; max deviation %v", res.Iterations, res.MaxDeviation)
	}

	log.Noticef("using random seed %d", cfg.RandomSeed)
	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	records, err := sampler.Sample(rg, res.Table, sampler.Labels(axes), cfg.Rows)
	if err != nil {
		return err
	}

	columns, rows := utils.RecordTable(sampler.Labels(axes), records)
	if cfg.Output != "" {
		log.Noticef("writing %d records to %v", len(rows), cfg.Output)
		return utils.WriteCSVFile(cfg.Output, columns, rows)
	}
	utils.RenderPreview(os.Stdout, columns, rows, previewRows)
	return nil
}
