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

//go:generate mockgen -source service.go -destination service_mock.go -package api

// Package api serves population generation over HTTP. It is a thin
// transport layer: parsing and fitting live in the marginals and ipf
// packages, and the service only wires them to request/response shapes.
package api

import (
	"math/rand"
	"sync"

	"github.com/thatguywow/population-sample-simulator/demogen"
	"github.com/thatguywow/population-sample-simulator/ipf"
	"github.com/thatguywow/population-sample-simulator/sampler"
)

// Service produces population samples for the HTTP handlers.
type Service interface {
	// Demo generates n independent demo rows.
	Demo(n int) []demogen.Row

	// FitSample fits a contingency table to the marginals and samples n
	// records from it. The fit result is returned for quality reporting.
	FitSample(axes []ipf.Axis, n int) ([]sampler.Record, *ipf.Result, error)
}

// simulatorService is the production Service backed by the fitter and
// the samplers. Requests are served on separate goroutines and
// *rand.Rand is not safe for concurrent use, so the service never
// shares a generator across calls: a mutex-guarded seed source hands
// every call its own freshly seeded generator.
type simulatorService struct {
	seedMu        sync.Mutex
	seeds         *rand.Rand
	maxIterations int
	tolerance     float64
}

// NewService creates a Service drawing from the given seed with the
// given fitting parameters.
func NewService(seed int64, maxIterations int, tolerance float64) Service {
	return &simulatorService{
		seeds:         rand.New(rand.NewSource(seed)),
		maxIterations: maxIterations,
		tolerance:     tolerance,
	}
}

// nextSeed derives a per-call seed under the lock.
func (s *simulatorService) nextSeed() int64 {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return s.seeds.Int63()
}

func (s *simulatorService) Demo(n int) []demogen.Row {
	return demogen.New(s.nextSeed()).Rows(n)
}

func (s *simulatorService) FitSample(axes []ipf.Axis, n int) ([]sampler.Record, *ipf.Result, error) {
	res, err := ipf.Fit(axes, s.maxIterations, s.tolerance)
	if err != nil {
		return nil, nil, err
	}
	rg := rand.New(rand.NewSource(s.nextSeed()))
	records, err := sampler.Sample(rg, res.Table, sampler.Labels(axes), n)
	if err != nil {
		return nil, nil, err
	}
	return records, res, nil
}
