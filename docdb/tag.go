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

import (
	"fmt"
	"strings"
)

// RelevantTag records, for a single predicate leaf, which shortlisted indexes
// could satisfy it. Entries are positions into the shortlist handed to the
// rating pass, not index pointers: the shortlist is immutable for the
// duration of a planning call and positions are trivially cloned and
// compared.
type RelevantTag struct {
	// Path is the predicate's fully-qualified field, with every enclosing
	// array quantifier's path prepended.
	Path string
	// First lists the shortlist positions of indexes whose leading key this
	// leaf could bind.
	First []int
	// NotFirst lists the shortlist positions of indexes for which this leaf
	// could bind a trailing compound key.
	NotFirst []int
}

// NewRelevantTag returns an empty tag for the given fully-qualified path.
func NewRelevantTag(path string) *RelevantTag {
	return &RelevantTag{Path: path}
}

// Clone returns an independently-owned copy of the tag.
func (t *RelevantTag) Clone() *RelevantTag {
	nt := NewRelevantTag(t.Path)
	nt.First = append(nt.First, t.First...)
	nt.NotFirst = append(nt.NotFirst, t.NotFirst...)
	return nt
}

// References reports whether either list contains the shortlist position i.
func (t *RelevantTag) References(i int) bool {
	return contains(t.First, i) || contains(t.NotFirst, i)
}

// RemoveIndex deletes every entry for the shortlist position i from both
// lists.
func (t *RelevantTag) RemoveIndex(i int) {
	t.First = remove(t.First, i)
	t.NotFirst = remove(t.NotFirst, i)
}

func (t *RelevantTag) String() string {
	return fmt.Sprintf("relevant(%s first=%s notFirst=%s)",
		t.Path, formatPositions(t.First), formatPositions(t.NotFirst))
}

func contains(s []int, i int) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}
	return false
}

func remove(s []int, i int) []int {
	out := s[:0]
	for _, v := range s {
		if v != i {
			out = append(out, v)
		}
	}
	return out
}

func formatPositions(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
