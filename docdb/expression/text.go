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

// Text is a full-text search predicate. It binds the reserved full-text
// field rather than a document path of its own, which lets the generic
// rating machinery match it against the text-typed element of a text index's
// key pattern.
type Text struct {
	taggable
	query    string
	language string
}

// NewText creates a full-text predicate for the given query string.
func NewText(query, language string) *Text {
	return &Text{query: query, language: language}
}

// Path returns the reserved full-text field.
func (e *Text) Path() string { return docdb.FullTextField }

func (e *Text) Children() []docdb.MatchExpression { return nil }

// Query returns the search string.
func (e *Text) Query() string { return e.query }

// Language returns the stemming language of the query, or empty for the
// index default.
func (e *Text) Language() string { return e.language }

func (e *Text) String() string { return fmt.Sprintf("TEXT(%q)", e.query) }
