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
	"github.com/dolthub/go-docdb-server/docdb"
	"github.com/dolthub/go-docdb-server/docdb/expression"
	"github.com/dolthub/go-docdb-server/docdb/geo"
)

func eq(path string, value interface{}) *expression.Equals {
	return expression.NewEquals(path, value)
}

func gt(path string, value interface{}) *expression.GreaterThan {
	return expression.NewGreaterThan(path, value)
}

func lt(path string, value interface{}) *expression.LessThan {
	return expression.NewLessThan(path, value)
}

func in(path string, values ...interface{}) *expression.In {
	return expression.NewIn(path, values...)
}

func regex(path, pattern string) *expression.Regex {
	return expression.NewRegex(path, pattern, "")
}

func exists(path string) *expression.Exists {
	return expression.NewExists(path)
}

func not(child docdb.MatchExpression) *expression.Not {
	return expression.NewNot(child)
}

func and(children ...docdb.MatchExpression) *expression.And {
	return expression.NewAnd(children...)
}

func or(children ...docdb.MatchExpression) *expression.Or {
	return expression.NewOr(children...)
}

func nor(children ...docdb.MatchExpression) *expression.Nor {
	return expression.NewNor(children...)
}

func text(query string) *expression.Text {
	return expression.NewText(query, "")
}

func elemMatch(path string, children ...docdb.MatchExpression) *expression.ElemMatchObject {
	return expression.NewElemMatchObject(path, children...)
}

func btreeIndex(name string, fields ...string) *docdb.IndexEntry {
	kp := make(docdb.KeyPattern, len(fields))
	for i, f := range fields {
		kp[i] = docdb.KeyElement{Field: f}
	}
	return &docdb.IndexEntry{Collection: "test", Name: name, Type: docdb.BTree, KeyPattern: kp}
}

func hashedIndex(name, field string) *docdb.IndexEntry {
	return &docdb.IndexEntry{
		Collection: "test",
		Name:       name,
		Type:       docdb.Hashed,
		KeyPattern: docdb.KeyPattern{{Field: field, Kind: docdb.KindHashed}},
	}
}

func twoDIndex(name, field string, info map[string]interface{}) *docdb.IndexEntry {
	return &docdb.IndexEntry{
		Collection: "test",
		Name:       name,
		Type:       docdb.Geo2D,
		KeyPattern: docdb.KeyPattern{{Field: field, Kind: docdb.Kind2D}},
		Info:       info,
	}
}

func sphereIndex(name, field string) *docdb.IndexEntry {
	return &docdb.IndexEntry{
		Collection: "test",
		Name:       name,
		Type:       docdb.Geo2DSphere,
		KeyPattern: docdb.KeyPattern{{Field: field, Kind: docdb.Kind2DSphere}},
	}
}

// textIndex builds a text index whose key pattern is the prefix fields, the
// text divider, then the suffix fields.
func textIndex(name string, prefix []string, suffix ...string) *docdb.IndexEntry {
	kp := make(docdb.KeyPattern, 0, len(prefix)+len(suffix)+1)
	for _, f := range prefix {
		kp = append(kp, docdb.KeyElement{Field: f})
	}
	kp = append(kp, docdb.KeyElement{Field: docdb.FullTextField, Kind: docdb.KindText})
	for _, f := range suffix {
		kp = append(kp, docdb.KeyElement{Field: f})
	}
	return &docdb.IndexEntry{Collection: "test", Name: name, Type: docdb.FullText, KeyPattern: kp}
}

func haystackIndex(name, field string) *docdb.IndexEntry {
	return &docdb.IndexEntry{
		Collection: "test",
		Name:       name,
		Type:       docdb.GeoHaystack,
		KeyPattern: docdb.KeyPattern{{Field: field, Kind: docdb.KindGeoHaystack}},
	}
}

func sphereCapWithin(path string, center geo.Point, radiusRad float64) *expression.GeoWithin {
	return expression.NewGeoWithin(path, geo.NewSphereCap(center, radiusRad))
}

func gatherFields(tree docdb.MatchExpression) map[string]struct{} {
	fields := make(map[string]struct{})
	GetFields(tree, "", fields)
	return fields
}

func indexNames(indexes []*docdb.IndexEntry) []string {
	names := make([]string, len(indexes))
	for i, idx := range indexes {
		names[i] = idx.Name
	}
	return names
}
