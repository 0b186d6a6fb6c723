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

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context carries the process-wide collaborators of a planning call: the
// standard context, a tracer and a structured logger.
type Context struct {
	context.Context
	tracer opentracing.Tracer
	logger *logrus.Entry
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTracer returns an option that sets the tracer spans are started from.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithLogger returns an option that sets the logger entry of the context.
func WithLogger(e *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = e
	}
}

// NewContext returns a Context wrapping ctx. Unless overridden it uses a
// no-op tracer and the standard logrus logger.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		tracer:  opentracing.NoopTracer{},
		logger:  logrus.NewEntry(logrus.StandardLogger()),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewEmptyContext returns a default context for tests.
func NewEmptyContext() *Context { return NewContext(context.TODO()) }

// Span creates a new tracing span with the given operation name. It returns
// the span and a new context that should be passed to all children of this
// span.
func (c *Context) Span(opName string, opts ...opentracing.StartSpanOption) (opentracing.Span, *Context) {
	if parent := opentracing.SpanFromContext(c.Context); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}

	span := c.tracer.StartSpan(opName, opts...)
	ctx := opentracing.ContextWithSpan(c.Context, span)

	return span, &Context{Context: ctx, tracer: c.tracer, logger: c.logger}
}

// Logger returns the structured logger of the context.
func (c *Context) Logger() *logrus.Entry { return c.logger }
