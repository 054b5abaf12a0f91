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

package sampler

import (
	"fmt"
	"math"
	"math/rand"
)

// aliasTable holds the precomputed tables of Walker's alias method for
// drawing i.i.d. samples from a finite weight vector in constant time
// per draw.
type aliasTable struct {
	n     int       // number of outcomes
	prob  []float64 // probability table
	alias []int     // alias table
}

// newAliasTable builds an alias table from non-negative weights. The
// weights must sum to a positive value.
func newAliasTable(weights []float64) (*aliasTable, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("weight vector is empty")
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("invalid weight (%v) at index %d", w, i)
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("total weight (%v) is not positive", total)
	}

	prob := make([]float64, n)
	alias := make([]int, n)
	scaled := make([]float64, n)

	// normalize so that the average probability is one, then split the
	// outcomes into under- and over-full worklists
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
		if scaled[i] < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l

		scaled[l] -= 1.0 - scaled[s]
		if scaled[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// leftovers are full bins up to floating-point round-off
	for _, i := range large {
		prob[i] = 1.0
	}
	for _, i := range small {
		prob[i] = 1.0
	}

	return &aliasTable{n: n, prob: prob, alias: alias}, nil
}

// sample draws one outcome index using the given random generator.
func (a *aliasTable) sample(rg *rand.Rand) int {
	i := rg.Intn(a.n)
	if rg.Float64() < a.prob[i] {
		return i
	}
	return a.alias[i]
}
