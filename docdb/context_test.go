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
	"context"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestContextSpan(t *testing.T) {
	require := require.New(t)

	tracer := mocktracer.New()
	ctx := NewContext(context.Background(), WithTracer(tracer))

	span, child := ctx.Span("outer")
	inner, _ := child.Span("inner")
	inner.Finish()
	span.Finish()

	spans := tracer.FinishedSpans()
	require.Len(spans, 2)
	require.Equal("inner", spans[0].OperationName)
	require.Equal("outer", spans[1].OperationName)

	// The inner span is a child of the outer one.
	require.Equal(spans[1].SpanContext.SpanID, spans[0].ParentID)
}

func TestContextDefaults(t *testing.T) {
	require := require.New(t)

	ctx := NewEmptyContext()
	require.NotNil(ctx.Logger())

	// A span from the no-op tracer still finishes cleanly.
	span, _ := ctx.Span("noop")
	span.Finish()
}

func TestContextWithLogger(t *testing.T) {
	require := require.New(t)

	entry := logrus.WithField("component", "planner")
	ctx := NewContext(context.Background(), WithLogger(entry))
	require.Equal(entry, ctx.Logger())
}
