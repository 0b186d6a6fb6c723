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

package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-docdb-server/docdb"
	"github.com/dolthub/go-docdb-server/docdb/expression"
	"github.com/dolthub/go-docdb-server/docdb/geo"
)

// RateIndexes walks the predicate tree and attaches to every
// bounds-generating leaf not under a Nor a tag listing which of the
// shortlisted indexes could satisfy it: First for indexes the leaf could
// bind at the leading key, NotFirst for trailing compound keys. Rating is
// the unique tag assignment point; a node that already carries a tag is an
// invariant failure. The tag of a negation is cloned onto its child, and the
// two copies evolve independently afterwards.
func RateIndexes(node docdb.MatchExpression, prefix string, indexes []*docdb.IndexEntry) {
	if _, ok := node.(*expression.Nor); ok {
		return
	}

	switch {
	case isBoundsGenerating(node):
		fullPath := prefix + node.Path()
		if not, ok := node.(*expression.Not); ok {
			fullPath = prefix + not.Child().Path()
		}

		if node.Tag() != nil {
			panic(docdb.ErrNodeAlreadyTagged.New(node))
		}
		rt := docdb.NewRelevantTag(fullPath)
		node.SetTag(rt)

		for i, idx := range indexes {
			for pos, elt := range idx.KeyPattern {
				if elt.Field != fullPath || !compatible(elt, idx, fullPath, node) {
					continue
				}
				if pos == 0 {
					rt.First = append(rt.First, i)
				} else {
					rt.NotFirst = append(rt.NotFirst, i)
				}
			}
		}

		if not, ok := node.(*expression.Not); ok {
			not.Child().SetTag(rt.Clone())
		}
	case arrayUsesIndexOnChildren(node):
		prefix = childPrefix(prefix, node)
		for _, child := range node.Children() {
			RateIndexes(child, prefix, indexes)
		}
	case isLogical(node):
		for _, child := range node.Children() {
			RateIndexes(child, prefix, indexes)
		}
	}
}

// compatible decides whether node may use idx at the key position
// represented by elt. The decision runs on the effective kind of the key
// element: its kind literal, unless the index is an ordinary sorted one, in
// which case the literal is cosmetic and treated as empty.
func compatible(elt docdb.KeyElement, idx *docdb.IndexEntry, fullPath string, node docdb.MatchExpression) bool {
	kind := elt.Kind
	if idx.Type == docdb.BTree {
		kind = ""
	}

	switch kind {
	case "":
		return sortedKeyCompatible(idx, fullPath, node)
	case docdb.KindHashed:
		switch node.(type) {
		case *expression.Equals, *expression.In:
			return true
		}
		return false
	case docdb.Kind2DSphere:
		switch e := node.(type) {
		case *expression.GeoWithin:
			return e.Geometry().HasS2Region()
		case *expression.GeoNear:
			return e.CRS() == geo.Sphere || e.NearSphere()
		}
		return false
	case docdb.Kind2D:
		return flatGeoCompatible(idx, node)
	case docdb.KindText:
		_, ok := node.(*expression.Text)
		return ok
	case docdb.KindGeoHaystack:
		// Haystack planning is driven elsewhere.
		return false
	default:
		logrus.WithFields(logrus.Fields{
			"node":  node.String(),
			"field": elt.Field,
			"kind":  elt.Kind,
			"index": idx.Name,
		}).Warn("unknown kind in index key pattern")
		panic(docdb.ErrUnknownIndexKeyType.New(elt.Kind, idx.Name))
	}
}

// sortedKeyCompatible decides compatibility with an ordinary sorted key
// element.
func sortedKeyCompatible(idx *docdb.IndexEntry, fullPath string, node docdb.MatchExpression) bool {
	switch e := node.(type) {
	case *expression.Equals:
		// A sparse index omits documents missing the field, but equality to
		// null must match them too.
		if e.Value() == nil && idx.Sparse {
			return false
		}
	case *expression.GeoWithin, *expression.GeoNear:
		return false
	case *expression.Not:
		// {a:[1,2,3]} does not match a != 3, but a scan over the complement
		// intervals of a multikey index would return it.
		if idx.Sparse || idx.Multikey {
			return false
		}
		switch e.Child().(type) {
		case *expression.Regex, *expression.Mod:
			return false
		}
	}

	if idx.Type != docdb.FullText {
		return true
	}

	// Inside a text index, ordinary elements split into the equality prefix
	// and the trailing suffix. Equalities may bind anywhere; anything else
	// only a suffix position.
	if _, ok := node.(*expression.Equals); ok {
		return true
	}
	for _, elt := range idx.KeyPattern {
		if elt.Kind != "" {
			// The divider comes before the field: a suffix position.
			return true
		}
		if elt.Field == fullPath {
			return false
		}
	}
	return false
}

// flatGeoCompatible decides compatibility with a flat geospatial key. A flat
// index answers flat proximity queries, containment in flat geometries, and
// containment in a geodesic cap whose projected bounding box stays clear of
// the coordinate space edges.
func flatGeoCompatible(idx *docdb.IndexEntry, node docdb.MatchExpression) bool {
	switch e := node.(type) {
	case *expression.GeoNear:
		return e.CRS() == geo.Flat
	case *expression.GeoWithin:
		if e.Predicate() != expression.GeoWithinPred {
			return false
		}
		g := e.Geometry()
		if g.HasFlatRegion() {
			return true
		}
		c := g.GetCap()
		if c == nil {
			return false
		}
		return twoDWontWrap(c, idx)
	}
	return false
}

// twoDWontWrap reports whether a geodesic cap, widened by the index's hash
// conversion error, projects to a bounding box inside (-180, 180) x
// (-90, 90). A box crossing either edge would wrap, which a flat scan cannot
// express.
func twoDWontWrap(c *geo.Cap, idx *docdb.IndexEntry) bool {
	params, err := geo.ParseHashParams(idx.Info)
	if err != nil {
		// The catalog validated the parameters at creation time.
		panic(docdb.ErrInvalidGeoParameters.New(idx.Name, err))
	}

	center := c.Center()
	yscan := geo.RadToDeg(c.Radius()) + params.ErrorSphere()
	xscan := geo.ComputeXScanDistance(center.Y, yscan)

	return center.X+xscan < 180 && center.X-xscan > -180 &&
		center.Y+yscan < 90 && center.Y-yscan > -90
}
