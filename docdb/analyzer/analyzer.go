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

// Package analyzer implements index selection over a match predicate tree:
// gathering the indexed fields a query references, shortlisting the catalog
// down to the indexes whose leading key could serve, rating every predicate
// leaf against the shortlist, and enforcing the structural prerequisites of
// compound text indexes.
package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-docdb-server/docdb"
)

// Analyzer sequences the index-selection passes over an owned predicate
// tree. The individual passes stay public and callable on their own; the
// analyzer adds tracing and debug logging around them.
type Analyzer struct {
	// Debug logs the shortlist and the tagged tree after the passes run.
	Debug bool
}

// NewDefault creates a new Analyzer with the default configuration.
func NewDefault() *Analyzer {
	return &Analyzer{}
}

// Analyze tags tree in place against the catalog and returns the shortlist
// the tags index into. The tree and catalog are owned by the caller; the
// only mutations are tag attachment and the removal of entries from those
// tags by the text-index pass. Invariant violations panic, per the
// planner's no-partial-results contract.
func (a *Analyzer) Analyze(ctx *docdb.Context, tree docdb.MatchExpression, catalog []*docdb.IndexEntry) []*docdb.IndexEntry {
	span, ctx := ctx.Span("analyzer.gather_fields")
	fields := make(map[string]struct{})
	GetFields(tree, "", fields)
	span.Finish()

	span, ctx = ctx.Span("analyzer.shortlist_indexes")
	relevant := FindRelevantIndexes(fields, catalog)
	span.Finish()

	span, ctx = ctx.Span("analyzer.rate_indexes")
	RateIndexes(tree, "", relevant)
	span.Finish()

	span, ctx = ctx.Span("analyzer.validate_text_indexes")
	StripInvalidTextIndexAssignments(tree, relevant)
	span.Finish()

	if a.Debug {
		names := make([]string, len(relevant))
		for i, idx := range relevant {
			names[i] = idx.Name
		}
		ctx.Logger().WithFields(logrus.Fields{
			"shortlist": names,
			"tree":      tree.String(),
		}).Debug("rated predicate tree")
	}

	return relevant
}
