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

	"github.com/dolthub/go-docdb-server/docdb"
)

// And matches documents satisfying every child predicate.
type And struct {
	taggable
	children []docdb.MatchExpression
}

// NewAnd creates a conjunction of the given predicates.
func NewAnd(children ...docdb.MatchExpression) *And {
	return &And{children: children}
}

func (e *And) Path() string                      { return "" }
func (e *And) Children() []docdb.MatchExpression { return e.children }

func (e *And) String() string { return fmt.Sprintf("AND(%s)", joinExpressions(e.children)) }

// Or matches documents satisfying at least one child predicate.
type Or struct {
	taggable
	children []docdb.MatchExpression
}

// NewOr creates a disjunction of the given predicates.
func NewOr(children ...docdb.MatchExpression) *Or {
	return &Or{children: children}
}

func (e *Or) Path() string                      { return "" }
func (e *Or) Children() []docdb.MatchExpression { return e.children }

func (e *Or) String() string { return fmt.Sprintf("OR(%s)", joinExpressions(e.children)) }

// Not matches documents failing its child predicate. A negation over an
// indexable leaf can itself derive scan bounds, so Not reports the child's
// path as its own.
type Not struct {
	taggable
	child docdb.MatchExpression
}

// NewNot creates the negation of a predicate.
func NewNot(child docdb.MatchExpression) *Not {
	return &Not{child: child}
}

// Child returns the negated predicate.
func (e *Not) Child() docdb.MatchExpression { return e.child }

func (e *Not) Path() string                      { return e.child.Path() }
func (e *Not) Children() []docdb.MatchExpression { return []docdb.MatchExpression{e.child} }

func (e *Not) String() string { return fmt.Sprintf("NOT(%s)", e.child) }

// Nor matches documents failing every child predicate. No path below a Nor
// is usable by a positive index match, so the planner passes never descend
// into one.
type Nor struct {
	taggable
	children []docdb.MatchExpression
}

// NewNor creates the joint negation of the given predicates.
func NewNor(children ...docdb.MatchExpression) *Nor {
	return &Nor{children: children}
}

func (e *Nor) Path() string                      { return "" }
func (e *Nor) Children() []docdb.MatchExpression { return e.children }

func (e *Nor) String() string { return fmt.Sprintf("NOR(%s)", joinExpressions(e.children)) }
