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

package marginals

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatguywow/population-sample-simulator/ipf"
)

func TestMarginals_DecodeCSV(t *testing.T) {
	t.Run("tall form", func(t *testing.T) {
		in := "axis,category,value\n" +
			"sex,Male,60\n" +
			"sex,Female,40\n" +
			"region,North,70\n" +
			"region,South,30\n"
		axes, err := DecodeCSV(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, axes, 2)
		assert.Equal(t, "sex", axes[0].Name)
		assert.Equal(t, []string{"Male", "Female"}, axes[0].Labels())
		assert.Equal(t, []float64{60, 40}, axes[0].Targets())
		assert.Equal(t, "region", axes[1].Name)
		assert.Equal(t, []float64{70, 30}, axes[1].Targets())
	})

	t.Run("interleaved axes keep first-appearance order", func(t *testing.T) {
		in := "axis,category,value\n" +
			"region,North,70\n" +
			"sex,Male,60\n" +
			"region,South,30\n" +
			"sex,Female,40\n"
		axes, err := DecodeCSV(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, axes, 2)
		assert.Equal(t, "region", axes[0].Name)
		assert.Equal(t, "sex", axes[1].Name)
	})

	t.Run("duplicate categories are summed", func(t *testing.T) {
		in := "axis,category,value\n" +
			"sex,Male,25\n" +
			"sex,Male,35\n" +
			"sex,Female,40\n"
		axes, err := DecodeCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []float64{60, 40}, axes[0].Targets())
	})

	t.Run("reordered columns", func(t *testing.T) {
		in := "value,axis,category\n" +
			"60,sex,Male\n" +
			"40,sex,Female\n"
		axes, err := DecodeCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []float64{60, 40}, axes[0].Targets())
	})

	t.Run("missing columns", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader("a,b,c\n1,2,3\n"))
		assert.Error(t, err)
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader("axis,category,value\nsex,Male,lots\n"))
		assert.Error(t, err)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader("axis,category,value\n"))
		assert.Error(t, err)
	})
}

func TestMarginals_JSONRoundTrip(t *testing.T) {
	axes := []ipf.Axis{
		{Name: "sex", Categories: []ipf.Category{{Label: "Male", Target: 60}, {Label: "Female", Target: 40}}},
		{Name: "region", Categories: []ipf.Category{{Label: "North", Target: 70}, {Label: "South", Target: 30}}},
	}
	filename := filepath.Join(t.TempDir(), "marginals.json")
	require.NoError(t, Write(filename, axes))

	got, err := Read(filename)
	require.NoError(t, err)
	assert.Equal(t, axes, got)
}

func TestMarginals_ReadRejectsForeignFile(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"file-id":"state","axes":[]}`))
	assert.Error(t, err)

	_, err = DecodeJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = Read(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
