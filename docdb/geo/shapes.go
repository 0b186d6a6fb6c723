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

// Package geo holds the geometry collaborators of the planner: legacy flat
// shapes, spherical regions backed by the S2 library, and the geo-hash
// conversion parameters of flat indexes.
package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// CRS identifies the reference frame of a geometry or query point.
type CRS byte

const (
	// Flat is the legacy planar frame, coordinates in degrees on a plane.
	Flat CRS = iota
	// Sphere is the spherical frame of GeoJSON geometries.
	Sphere
)

func (c CRS) String() string {
	if c == Sphere {
		return "sphere"
	}
	return "flat"
}

// Point is a position, x longitude-like and y latitude-like, in degrees.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in the flat frame.
type Box struct {
	Min, Max Point
}

// Circle is a disk in the flat frame. Radius in the same units as the plane.
type Circle struct {
	Center Point
	Radius float64
}

// Polygon is a simple polygon in the flat frame.
type Polygon struct {
	Vertices []Point
}

// Cap is a geodesic disk on the unit sphere, the geometry of a centerSphere
// query. The center is in degrees, the radius in radians.
type Cap struct {
	center Point
	radius float64
	cap    s2.Cap
}

// NewCap returns the cap centered on center with the given radius in
// radians.
func NewCap(center Point, radiusRad float64) *Cap {
	ll := s2.LatLngFromDegrees(center.Y, center.X)
	return &Cap{
		center: center,
		radius: radiusRad,
		cap:    s2.CapFromCenterAngle(s2.PointFromLatLng(ll), s1.Angle(radiusRad)),
	}
}

// Center returns the cap's center in degrees.
func (c *Cap) Center() Point { return c.center }

// Radius returns the cap's radius in radians.
func (c *Cap) Radius() float64 { return c.radius }

// S2Cap returns the spherical region of the cap.
func (c *Cap) S2Cap() s2.Cap { return c.cap }

// Container holds one parsed geometry in one of the two reference frames.
// At most one of the shape slots is set.
type Container struct {
	point   *Point
	box     *Box
	circle  *Circle
	polygon *Polygon

	cap    *Cap
	region s2.Region
}

// NewFlatPoint returns a container holding a point in the flat frame.
func NewFlatPoint(p Point) *Container { return &Container{point: &p} }

// NewFlatBox returns a container holding a box in the flat frame.
func NewFlatBox(b Box) *Container { return &Container{box: &b} }

// NewFlatCircle returns a container holding a circle in the flat frame.
func NewFlatCircle(c Circle) *Container { return &Container{circle: &c} }

// NewFlatPolygon returns a container holding a polygon in the flat frame.
func NewFlatPolygon(p Polygon) *Container { return &Container{polygon: &p} }

// NewSphereCap returns a container holding a geodesic cap, center in
// degrees and radius in radians.
func NewSphereCap(center Point, radiusRad float64) *Container {
	c := NewCap(center, radiusRad)
	return &Container{cap: c, region: c.cap}
}

// NewSpherePolygon returns a container holding a spherical polygon built
// from the given vertices, in degrees, in counterclockwise order.
func NewSpherePolygon(vertices []Point) *Container {
	pts := make([]s2.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = s2.PointFromLatLng(s2.LatLngFromDegrees(v.Y, v.X))
	}
	loop := s2.LoopFromPoints(pts)
	return &Container{region: s2.PolygonFromLoops([]*s2.Loop{loop})}
}

// HasFlatRegion reports whether the geometry has a covering in the flat
// frame.
func (g *Container) HasFlatRegion() bool {
	return g.point != nil || g.box != nil || g.circle != nil || g.polygon != nil
}

// HasS2Region reports whether the geometry has a spherical region.
func (g *Container) HasS2Region() bool { return g.region != nil }

// S2Region returns the spherical region of the geometry, or nil.
func (g *Container) S2Region() s2.Region { return g.region }

// GetCap returns the geometry as a geodesic cap, or nil when the geometry is
// not one.
func (g *Container) GetCap() *Cap { return g.cap }
