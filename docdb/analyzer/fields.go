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

// GetFields walks the predicate tree in pre-order and adds to fields the
// fully-qualified path of every bounds-generating leaf reachable without
// crossing a Nor. Callers use the set to shortlist candidate indexes.
func GetFields(node docdb.MatchExpression, prefix string, fields map[string]struct{}) {
	if _, ok := node.(*expression.Nor); ok {
		return
	}

	switch {
	case isBoundsGenerating(node):
		fields[prefix+node.Path()] = struct{}{}
	case arrayUsesIndexOnChildren(node):
		prefix = childPrefix(prefix, node)
		for _, child := range node.Children() {
			GetFields(child, prefix, fields)
		}
	case isLogical(node):
		for _, child := range node.Children() {
			GetFields(child, prefix, fields)
		}
	}
}
