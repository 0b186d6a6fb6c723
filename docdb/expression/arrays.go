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
	"strings"

	"github.com/dolthub/go-docdb-server/docdb"
)

// ElemMatchObject matches documents where at least one element of an array
// field satisfies all child predicates. The children's paths are relative to
// the array elements, so the node pushes its own path onto them. An empty
// path is the sentinel for the nested form, whose operand has no local path
// of its own.
type ElemMatchObject struct {
	taggable
	path     string
	children []docdb.MatchExpression
}

// NewElemMatchObject creates an element-match predicate over the array at
// path.
func NewElemMatchObject(path string, children ...docdb.MatchExpression) *ElemMatchObject {
	return &ElemMatchObject{path: path, children: children}
}

func (e *ElemMatchObject) Path() string                      { return e.path }
func (e *ElemMatchObject) Children() []docdb.MatchExpression { return e.children }

func (e *ElemMatchObject) String() string {
	return fmt.Sprintf("%s ELEM_MATCH (%s)", e.path, joinExpressions(e.children))
}

// AllElemMatch matches documents where, for each child element-match, some
// element of the array field satisfies it. The children are element-match
// nodes with the empty sentinel path.
type AllElemMatch struct {
	taggable
	path     string
	children []docdb.MatchExpression
}

// NewAllElemMatch creates an all-with-element-match predicate over the array
// at path.
func NewAllElemMatch(path string, children ...docdb.MatchExpression) *AllElemMatch {
	return &AllElemMatch{path: path, children: children}
}

func (e *AllElemMatch) Path() string                      { return e.path }
func (e *AllElemMatch) Children() []docdb.MatchExpression { return e.children }

func (e *AllElemMatch) String() string {
	return fmt.Sprintf("%s ALL (%s)", e.path, joinExpressions(e.children))
}

func joinExpressions(children []docdb.MatchExpression) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = child.String()
	}
	return strings.Join(parts, ", ")
}
