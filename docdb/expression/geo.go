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

package expression

import (
	"fmt"

	"github.com/dolthub/go-docdb-server/docdb/geo"
)

// GeoPredicate discriminates the relation a geo predicate requires between
// the document geometry and the query geometry.
type GeoPredicate byte

const (
	// GeoWithinPred requires the document geometry to be contained in the
	// query geometry.
	GeoWithinPred GeoPredicate = iota
	// GeoIntersectsPred requires the two geometries to intersect.
	GeoIntersectsPred
)

// GeoWithin matches documents whose geometry relates to a query geometry.
type GeoWithin struct {
	leaf
	geometry *geo.Container
	pred     GeoPredicate
}

// NewGeoWithin creates a containment predicate on path.
func NewGeoWithin(path string, geometry *geo.Container) *GeoWithin {
	return &GeoWithin{leaf{path: path}, geometry, GeoWithinPred}
}

// NewGeoIntersects creates an intersection predicate on path.
func NewGeoIntersects(path string, geometry *geo.Container) *GeoWithin {
	return &GeoWithin{leaf{path: path}, geometry, GeoIntersectsPred}
}

// Geometry returns the query geometry.
func (e *GeoWithin) Geometry() *geo.Container { return e.geometry }

// Predicate returns the required relation.
func (e *GeoWithin) Predicate() GeoPredicate { return e.pred }

func (e *GeoWithin) String() string {
	op := "WITHIN"
	if e.pred == GeoIntersectsPred {
		op = "INTERSECTS"
	}
	return fmt.Sprintf("%s GEO %s", e.path, op)
}

// GeoNear matches documents ordered by distance from a reference point.
type GeoNear struct {
	leaf
	center     geo.Point
	crs        geo.CRS
	nearSphere bool
}

// NewGeoNear creates a proximity predicate on path with the reference point
// expressed in the given frame.
func NewGeoNear(path string, center geo.Point, crs geo.CRS) *GeoNear {
	return &GeoNear{leaf{path: path}, center, crs, false}
}

// NewNearSphere creates a proximity predicate on path that requests
// spherical distance over a legacy flat reference point.
func NewNearSphere(path string, center geo.Point) *GeoNear {
	return &GeoNear{leaf{path: path}, center, geo.Flat, true}
}

// Center returns the reference point.
func (e *GeoNear) Center() geo.Point { return e.center }

// CRS returns the reference frame of the center point.
func (e *GeoNear) CRS() geo.CRS { return e.crs }

// NearSphere reports whether spherical distance was requested regardless of
// the center's frame.
func (e *GeoNear) NearSphere() bool { return e.nearSphere }

func (e *GeoNear) String() string {
	return fmt.Sprintf("%s NEAR (%v, %v) %s", e.path, e.center.X, e.center.Y, e.crs)
}
