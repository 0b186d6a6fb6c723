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
	"strings"
)

// In matches documents whose field equals any value of a list.
type In struct {
	leaf
	values []interface{}
}

// NewIn creates an in-list predicate on path.
func NewIn(path string, values ...interface{}) *In {
	return &In{leaf{path: path}, values}
}

// Values returns the literals of the list.
func (e *In) Values() []interface{} { return e.values }

func (e *In) String() string {
	parts := make([]string, len(e.values))
	for i, v := range e.values {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s IN (%s)", e.path, strings.Join(parts, ", "))
}

// Exists matches documents that carry the field at all.
type Exists struct {
	leaf
}

// NewExists creates an existence predicate on path.
func NewExists(path string) *Exists {
	return &Exists{leaf{path: path}}
}

func (e *Exists) String() string { return fmt.Sprintf("%s EXISTS", e.path) }

// Regex matches documents whose string field matches a pattern.
type Regex struct {
	leaf
	pattern string
	options string
}

// NewRegex creates a regular expression predicate on path.
func NewRegex(path, pattern, options string) *Regex {
	return &Regex{leaf{path: path}, pattern, options}
}

// Pattern returns the expression source.
func (e *Regex) Pattern() string { return e.pattern }

// Options returns the matching options of the expression.
func (e *Regex) Options() string { return e.options }

func (e *Regex) String() string { return fmt.Sprintf("%s =~ /%s/%s", e.path, e.pattern, e.options) }

// Mod matches documents whose numeric field has a given remainder under a
// divisor.
type Mod struct {
	leaf
	divisor   int64
	remainder int64
}

// NewMod creates a modulo predicate on path.
func NewMod(path string, divisor, remainder int64) *Mod {
	return &Mod{leaf{path: path}, divisor, remainder}
}

// Divisor returns the divisor of the predicate.
func (e *Mod) Divisor() int64 { return e.divisor }

// Remainder returns the required remainder.
func (e *Mod) Remainder() int64 { return e.remainder }

func (e *Mod) String() string {
	return fmt.Sprintf("%s %% %d = %d", e.path, e.divisor, e.remainder)
}

// TypeIs matches documents whose field carries a value of a given encoded
// type.
type TypeIs struct {
	leaf
	code int
}

// NewTypeIs creates a type predicate on path with the encoded type code.
func NewTypeIs(path string, code int) *TypeIs {
	return &TypeIs{leaf{path: path}, code}
}

// Code returns the encoded type code.
func (e *TypeIs) Code() int { return e.code }

func (e *TypeIs) String() string { return fmt.Sprintf("%s TYPE %d", e.path, e.code) }

// Where is an opaque predicate evaluated per document. It can never use an
// index.
type Where struct {
	leaf
	code string
}

// NewWhere creates an opaque predicate from its source code.
func NewWhere(code string) *Where {
	return &Where{code: code}
}

func (e *Where) String() string { return fmt.Sprintf("WHERE(%s)", e.code) }
