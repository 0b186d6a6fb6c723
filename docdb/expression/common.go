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

// Package expression defines the concrete match expression nodes of the
// predicate tree.
package expression

import (
	"github.com/dolthub/go-docdb-server/docdb"
)

// taggable provides the mutable tag slot every node carries.
type taggable struct {
	tag *docdb.RelevantTag
}

func (t *taggable) Tag() *docdb.RelevantTag      { return t.tag }
func (t *taggable) SetTag(rt *docdb.RelevantTag) { t.tag = rt }

// leaf provides the path accessor and empty child list of leaf predicates.
type leaf struct {
	taggable
	path string
}

func (l *leaf) Path() string                      { return l.path }
func (l *leaf) Children() []docdb.MatchExpression { return nil }

var (
	_ docdb.MatchExpression = (*Equals)(nil)
	_ docdb.MatchExpression = (*GreaterThan)(nil)
	_ docdb.MatchExpression = (*GreaterThanOrEqual)(nil)
	_ docdb.MatchExpression = (*LessThan)(nil)
	_ docdb.MatchExpression = (*LessThanOrEqual)(nil)
	_ docdb.MatchExpression = (*In)(nil)
	_ docdb.MatchExpression = (*Exists)(nil)
	_ docdb.MatchExpression = (*Regex)(nil)
	_ docdb.MatchExpression = (*Mod)(nil)
	_ docdb.MatchExpression = (*TypeIs)(nil)
	_ docdb.MatchExpression = (*Where)(nil)
	_ docdb.MatchExpression = (*Text)(nil)
	_ docdb.MatchExpression = (*GeoWithin)(nil)
	_ docdb.MatchExpression = (*GeoNear)(nil)
	_ docdb.MatchExpression = (*ElemMatchObject)(nil)
	_ docdb.MatchExpression = (*AllElemMatch)(nil)
	_ docdb.MatchExpression = (*And)(nil)
	_ docdb.MatchExpression = (*Or)(nil)
	_ docdb.MatchExpression = (*Not)(nil)
	_ docdb.MatchExpression = (*Nor)(nil)
)
