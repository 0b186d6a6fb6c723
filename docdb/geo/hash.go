// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geo

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	// DefaultHashBits is the grid depth of a flat index when its
	// configuration does not override it.
	DefaultHashBits = 26
	// DefaultHashMax is the upper coordinate bound of the grid.
	DefaultHashMax = 180.0
	// DefaultHashMin is the lower coordinate bound of the grid.
	DefaultHashMin = -180.0

	maxHashBits = 32

	// numBuckets is the total number of cells along one axis of the hash
	// space, 2^32.
	numBuckets = float64(1 << 32)
)

// HashParams are the grid parameters of a flat index's geo-hash converter.
type HashParams struct {
	// Bits is the grid depth. Each level splits a cell in four.
	Bits int
	// Min and Max bound the coordinate space the grid covers.
	Min, Max float64
	// Scaling maps coordinates to cell units: 2^32 / (Max - Min).
	Scaling float64
}

// ParseHashParams derives the converter parameters from an index's auxiliary
// configuration. Absent values take the defaults; present values may be any
// numeric encoding.
func ParseHashParams(info map[string]interface{}) (HashParams, error) {
	p := HashParams{Bits: DefaultHashBits, Min: DefaultHashMin, Max: DefaultHashMax}

	if v, ok := info["bits"]; ok {
		bits, err := cast.ToIntE(v)
		if err != nil {
			return p, errors.Wrap(err, "bits is not numeric")
		}
		if bits < 1 || bits > maxHashBits {
			return p, errors.Errorf("bits must be in [1, %d], got %d", maxHashBits, bits)
		}
		p.Bits = bits
	}
	if v, ok := info["min"]; ok {
		min, err := cast.ToFloat64E(v)
		if err != nil {
			return p, errors.Wrap(err, "min is not numeric")
		}
		p.Min = min
	}
	if v, ok := info["max"]; ok {
		max, err := cast.ToFloat64E(v)
		if err != nil {
			return p, errors.Wrap(err, "max is not numeric")
		}
		p.Max = max
	}

	if p.Max <= p.Min {
		return p, errors.Errorf("min %v must be below max %v", p.Min, p.Max)
	}

	p.Scaling = numBuckets / (p.Max - p.Min)
	return p, nil
}

// CellEdge returns the edge length of a full-depth grid cell in coordinate
// units.
func (p HashParams) CellEdge() float64 {
	return (p.Max - p.Min) / float64(uint64(1)<<uint(p.Bits))
}

// ErrorSphere returns the converter's spherical fudge distance in degrees:
// twice the edge of a full-depth cell, the worst-case drift of a hashed and
// unhashed position.
func (p HashParams) ErrorSphere() float64 {
	return 2 * p.CellEdge()
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// ComputeXScanDistance widens a north-south scan distance to the east-west
// distance that covers the same great-circle extent at latitude y. Inputs
// and output in degrees. The result is the scan distance divided by the
// cosine of the farthest latitude the scan reaches, clamped to 89 degrees so
// the divisor stays away from zero, and capped at the 180 degrees that cover
// the whole hemisphere.
func ComputeXScanDistance(y, maxDistDegrees float64) float64 {
	return math.Min(180,
		maxDistDegrees/math.Cos(DegToRad(math.Min(89, math.Abs(y)+maxDistDegrees))))
}
