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

import "github.com/dolthub/go-docdb-server/docdb"

// FindRelevantIndexes returns the subset of indexes whose leading key field
// appears in fields, in catalog order. No other filtering happens at this
// stage: whether a shortlisted index can actually serve a given predicate is
// decided per leaf by the rating pass.
func FindRelevantIndexes(fields map[string]struct{}, indexes []*docdb.IndexEntry) []*docdb.IndexEntry {
	var relevant []*docdb.IndexEntry
	for _, idx := range indexes {
		leading, ok := idx.KeyPattern.Leading()
		if !ok {
			continue
		}
		if _, ok := fields[leading.Field]; ok {
			relevant = append(relevant, idx)
		}
	}
	return relevant
}
