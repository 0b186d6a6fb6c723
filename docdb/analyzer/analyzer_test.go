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
	"context"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-docdb-server/docdb"
	"github.com/dolthub/go-docdb-server/docdb/expression"
)

func TestAnalyzeBasicEquality(t *testing.T) {
	require := require.New(t)

	reg := docdb.NewIndexRegistry()
	require.NoError(reg.AddIndex(btreeIndex("a_1", "a")))
	require.NoError(reg.AddIndex(btreeIndex("b_1", "b")))

	tree := eq("a", 5)

	a := NewDefault()
	relevant := a.Analyze(docdb.NewEmptyContext(), tree, reg.IndexesByCollection("test"))

	require.Equal([]string{"a_1"}, indexNames(relevant))

	rt := tree.Tag()
	require.NotNil(rt)
	require.Equal("a", rt.Path)
	require.Equal([]int{0}, rt.First)
	require.Empty(rt.NotFirst)
}

func TestAnalyzeCompoundText(t *testing.T) {
	require := require.New(t)

	reg := docdb.NewIndexRegistry()
	require.NoError(reg.AddIndex(textIndex("a_text", []string{"a"})))

	eqLeaf := eq("a", 1)
	textLeaf := text("hi")
	tree := and(eqLeaf, textLeaf)

	relevant := NewDefault().Analyze(docdb.NewEmptyContext(), tree, reg.IndexesByCollection("test"))
	require.Equal([]string{"a_text"}, indexNames(relevant))

	require.True(eqLeaf.Tag().References(0))
	require.True(textLeaf.Tag().References(0))
}

func TestAnalyzeShortlistPositionsStayDense(t *testing.T) {
	require := require.New(t)

	// The catalog has indexes the query never touches; tags index into the
	// shortlist, not the catalog.
	reg := docdb.NewIndexRegistry()
	require.NoError(reg.AddIndex(btreeIndex("z_1", "z")))
	require.NoError(reg.AddIndex(btreeIndex("a_1", "a")))

	tree := eq("a", 5)
	relevant := NewDefault().Analyze(docdb.NewEmptyContext(), tree, reg.IndexesByCollection("test"))

	require.Equal([]string{"a_1"}, indexNames(relevant))
	require.Equal([]int{0}, tree.Tag().First)
}

func TestAnalyzeTagInvariants(t *testing.T) {
	require := require.New(t)

	reg := docdb.NewIndexRegistry()
	require.NoError(reg.AddIndex(btreeIndex("a_1", "a")))
	require.NoError(reg.AddIndex(btreeIndex("ab_1", "a", "b")))

	tree := and(
		eq("a", 1),
		or(gt("b", 2), not(lt("a", 0))),
		nor(eq("a", 9)),
		expression.NewWhere("this.a > 0"),
	)

	relevant := NewDefault().Analyze(docdb.NewEmptyContext(), tree, reg.IndexesByCollection("test"))

	// Every bounds-generating leaf outside the Nor carries exactly one tag;
	// nothing else does, except the negation's child clone.
	var underNor, underNot bool
	docdb.Inspect(tree, func(node docdb.MatchExpression) bool {
		switch node.(type) {
		case *expression.Nor:
			underNor = true
			return true
		case *expression.Where:
			require.Nil(node.Tag())
			return true
		}

		if underNor {
			require.Nil(node.Tag())
			return true
		}

		if isBoundsGenerating(node) || underNot {
			require.NotNil(node.Tag())
		} else {
			require.Nil(node.Tag())
		}
		if _, ok := node.(*expression.Not); ok {
			underNot = true
		} else {
			underNot = false
		}
		return true
	})

	// Every First entry binds the leading key of the index it points at.
	docdb.Inspect(tree, func(node docdb.MatchExpression) bool {
		rt := node.Tag()
		if rt == nil {
			return true
		}
		for _, i := range rt.First {
			leading, ok := relevant[i].KeyPattern.Leading()
			require.True(ok)
			require.Equal(rt.Path, leading.Field)
		}
		return true
	})
}

func TestAnalyzeTracesSpans(t *testing.T) {
	require := require.New(t)

	tracer := mocktracer.New()
	ctx := docdb.NewContext(context.Background(), docdb.WithTracer(tracer))

	reg := docdb.NewIndexRegistry()
	require.NoError(reg.AddIndex(btreeIndex("a_1", "a")))

	NewDefault().Analyze(ctx, eq("a", 1), reg.IndexesByCollection("test"))

	var ops []string
	for _, span := range tracer.FinishedSpans() {
		ops = append(ops, span.OperationName)
	}
	require.Equal([]string{
		"analyzer.gather_fields",
		"analyzer.shortlist_indexes",
		"analyzer.rate_indexes",
		"analyzer.validate_text_indexes",
	}, ops)
}
