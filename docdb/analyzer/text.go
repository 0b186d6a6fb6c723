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

// StripInvalidTextIndexAssignments enforces the structural prerequisite of
// compound text indexes. A text index with a non-empty key prefix can only
// be used when every prefix field has an equality predicate in the same
// conjunction as the text predicate. Rating cannot see that constraint
// locally, so this pass walks the tree once per such index and strips the
// assignments that cannot be satisfied.
func StripInvalidTextIndexAssignments(node docdb.MatchExpression, indexes []*docdb.IndexEntry) {
	for i, idx := range indexes {
		if idx.Type != docdb.FullText {
			continue
		}

		prefix, ok := idx.KeyPattern.TextPrefix()
		if !ok {
			panic(docdb.ErrTextKeyNotFound.New(idx.Name))
		}
		if len(prefix) == 0 {
			continue
		}

		prefixPaths := make(map[string]struct{}, len(prefix))
		for _, field := range prefix {
			prefixPaths[field] = struct{}{}
		}

		stripInvalidTextAssignments(node, i, prefixPaths)
	}
}

// stripInvalidTextAssignments removes references to the text index at
// shortlist position i from every leaf whose surrounding structure cannot
// satisfy the index's equality prefix.
func stripInvalidTextAssignments(node docdb.MatchExpression, i int, prefixPaths map[string]struct{}) {
	// A leaf reached here sits outside any conjunction that satisfies the
	// prefix: eligible conjunctions keep their tagged children out of this
	// walk.
	if isBoundsGenerating(node) {
		if rt := node.Tag(); rt != nil {
			rt.RemoveIndex(i)
		}
		return
	}

	// Negations cannot satisfy the conjunction requirement.
	switch node.(type) {
	case *expression.Not, *expression.Nor:
		return
	}

	and, ok := node.(*expression.And)
	if !ok {
		for _, child := range node.Children() {
			stripInvalidTextAssignments(child, i, prefixPaths)
		}
		return
	}

	// For the conjunction to use the index, a text predicate must be among
	// its children and the remaining children must equality-bind every
	// prefix field.
	hasText := false
	remaining := make(map[string]struct{}, len(prefixPaths))
	for path := range prefixPaths {
		remaining[path] = struct{}{}
	}

	for _, child := range and.Children() {
		rt := child.Tag()
		if rt == nil || !rt.References(i) {
			stripInvalidTextAssignments(child, i, prefixPaths)
			continue
		}
		if _, ok := child.(*expression.Text); ok {
			hasText = true
		} else {
			// Suffix assignments erase nothing: their paths are not in the
			// prefix set.
			delete(remaining, child.Path())
		}
	}

	if !hasText || len(remaining) > 0 {
		for _, child := range and.Children() {
			stripInvalidTextAssignments(child, i, prefixPaths)
		}
	}
}
