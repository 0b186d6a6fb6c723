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

package docdb

// Visitor visits match expression nodes in the tree.
type Visitor interface {
	// Visit method is invoked for each node encountered by Walk. If the
	// result is nil, the children of the node are not walked.
	Visit(node MatchExpression) Visitor
}

// Walk traverses the predicate tree in depth-first order. It starts by
// calling v.Visit(node); node must not be nil. If the visitor returned by
// v.Visit(node) is not nil, Walk is invoked recursively with the returned
// visitor for each of the children of node.
func Walk(v Visitor, node MatchExpression) {
	if v = v.Visit(node); v == nil {
		return
	}

	for _, child := range node.Children() {
		Walk(v, child)
	}
}

type inspector func(MatchExpression) bool

func (f inspector) Visit(node MatchExpression) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the predicate tree in depth-first order. It starts by
// calling f(node); node must not be nil. If f returns true, Inspect invokes
// f recursively for each of the children of node.
func Inspect(node MatchExpression, f func(MatchExpression) bool) {
	Walk(inspector(f), node)
}
