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
)

// Every node falls into exactly one of four categories for index selection:
// bounds-generating leaves, array operators indexable through their
// children, logical composites, and everything else (never indexable).

// isBoundsGenerating reports whether scan bounds over the node's own field
// can be derived from the node. Negations qualify when the negated predicate
// is itself a bounds-generating leaf.
func isBoundsGenerating(node docdb.MatchExpression) bool {
	switch e := node.(type) {
	case *expression.Not:
		return isSelfIndexableLeaf(e.Child())
	default:
		return isSelfIndexableLeaf(node)
	}
}

func isSelfIndexableLeaf(node docdb.MatchExpression) bool {
	switch node.(type) {
	case *expression.Equals,
		*expression.GreaterThan,
		*expression.GreaterThanOrEqual,
		*expression.LessThan,
		*expression.LessThanOrEqual,
		*expression.In,
		*expression.Exists,
		*expression.Regex,
		*expression.Mod,
		*expression.TypeIs,
		*expression.Text,
		*expression.GeoWithin,
		*expression.GeoNear:
		return true
	}
	return false
}

// arrayUsesIndexOnChildren reports whether the node is an array quantifier
// that is transparent to index selection and contributes only by pushing its
// path onto its children.
func arrayUsesIndexOnChildren(node docdb.MatchExpression) bool {
	switch node.(type) {
	case *expression.ElemMatchObject, *expression.AllElemMatch:
		return true
	}
	return false
}

func isLogical(node docdb.MatchExpression) bool {
	switch node.(type) {
	case *expression.And, *expression.Or, *expression.Not, *expression.Nor:
		return true
	}
	return false
}

// childPrefix extends the path prefix with an array quantifier's path. The
// empty path is the sentinel of nested quantifiers and leaves the prefix
// unchanged.
func childPrefix(prefix string, node docdb.MatchExpression) string {
	if p := node.Path(); p != "" {
		return prefix + p + "."
	}
	return prefix
}
