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

// Package demogen produces demo population rows from hard-coded
// illustrative distributions. Rows are independent of each other and
// share no state or algorithm with the fitting path.
package demogen

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"math"
	"math/rand"
	"strconv"
	"time"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Age range of the generated adult population.
const (
	minAge = 18
	maxAge = 90
)

var (
	sexLabels = []string{"Male", "Female", "Other"}
	sexPMF    = []float64{0.49, 0.49, 0.02}

	educationLabels = []string{"Primary", "Secondary", "Tertiary", "Postgraduate"}
	educationPMF    = []float64{0.12, 0.45, 0.33, 0.10}

	regions = []string{"Attica", "Central Macedonia", "Crete", "Peloponnese", "Thessaly", "Epirus"}
)

// Row is one generated demo individual.
type Row struct {
	ID        string `json:"id"`
	Age       int    `json:"age"`
	Sex       string `json:"sex"`
	Education string `json:"education"`
	Income    int    `json:"income"`
	Region    string `json:"region"`
	CreatedAt string `json:"created_at"`
}

// Columns returns the output column order for demo rows.
func Columns() []string {
	return []string{"id", "age", "sex", "education", "income", "region", "created_at"}
}

// Values returns the row's fields in Columns order, formatted as strings.
func (r Row) Values() []string {
	return []string{
		r.ID,
		strconv.Itoa(r.Age),
		r.Sex,
		r.Education,
		strconv.Itoa(r.Income),
		r.Region,
		r.CreatedAt,
	}
}

// Generator draws demo rows from a seeded random source.
type Generator struct {
	rg  *rand.Rand
	src exprand.Source // source for the log-normal income draw
}

// New creates a generator with the given seed; the same seed reproduces
// the same categorical draws.
func New(seed int64) *Generator {
	return &Generator{
		rg:  rand.New(rand.NewSource(seed)),
		src: exprand.NewSource(uint64(seed)),
	}
}

// Row generates one demo individual.
func (g *Generator) Row() Row {
	age := minAge + g.rg.Intn(maxAge-minAge+1)
	sex := sexLabels[pick(g.rg, sexPMF)]
	education := educationLabels[pick(g.rg, educationPMF)]
	region := regions[g.rg.Intn(len(regions))]

	// log-normal income with an age-dependent location
	base := 18000.0 + math.Max(0, float64(age-25))*800.0
	income := distuv.LogNormal{
		Mu:    math.Log(math.Max(10000.0, base)),
		Sigma: 0.6,
		Src:   g.src,
	}.Rand()

	return Row{
		ID:        rowID(),
		Age:       age,
		Sex:       sex,
		Education: education,
		Income:    int(income),
		Region:    region,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Rows generates n independent demo individuals.
func (g *Generator) Rows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = g.Row()
	}
	return rows
}

// pick samples the discrete finite random variable defined by the given
// probability mass function. Uses Kahan's summation to keep the running
// probability sum stable.
func pick(rg *rand.Rand, pmf []float64) int {
	u := rg.Float64()
	sum := 0.0
	c := 0.0
	lastPositive := 0
	for i, p := range pmf {
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if u <= sum {
			return i
		}
		if p > 0.0 {
			lastPositive = i
		}
	}
	return lastPositive
}

// rowID returns a fresh random identifier of 16 hex digits.
func rowID() string {
	b := make([]byte, 8)
	if _, err := cryptorand.Read(b); err != nil {
		// crypto/rand failure leaves no sane fallback for identifiers
		panic(err)
	}
	return hex.EncodeToString(b)
}
