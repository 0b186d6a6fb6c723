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

// Package docdb defines the core types shared by the document query planner:
// the predicate tree, the index catalog and the relevance annotations the
// analyzer attaches to the tree.
package docdb

import "fmt"

// MatchExpression is a node of a parsed match predicate tree. A node's
// concrete type determines whether it carries a path and whether it carries
// children. The tree is owned by the caller; the analyzer mutates it only
// through the tag slot.
type MatchExpression interface {
	fmt.Stringer
	// Path returns the document field the node constrains, relative to the
	// nearest enclosing array quantifier. It is empty for nodes that do not
	// constrain a field of their own.
	Path() string
	// Children returns the node's children in order, or nil for leaves.
	Children() []MatchExpression
	// Tag returns the relevance tag attached to this node, or nil.
	Tag() *RelevantTag
	// SetTag attaches a relevance tag to this node. The node owns the tag.
	SetTag(*RelevantTag)
}
