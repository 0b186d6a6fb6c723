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

import "fmt"

// comparison is the common shape of the single-value comparison leaves.
type comparison struct {
	leaf
	value interface{}
}

// Value returns the literal the predicate compares against. A nil value is
// the null literal.
func (c *comparison) Value() interface{} { return c.value }

// Equals matches documents whose field equals a literal value.
type Equals struct {
	comparison
}

// NewEquals creates an equality predicate on path. A nil value matches both
// null fields and missing fields.
func NewEquals(path string, value interface{}) *Equals {
	return &Equals{comparison{leaf{path: path}, value}}
}

func (e *Equals) String() string { return fmt.Sprintf("%s = %v", e.path, e.value) }

// GreaterThan matches documents whose field orders above a literal value.
type GreaterThan struct {
	comparison
}

// NewGreaterThan creates a greater-than predicate on path.
func NewGreaterThan(path string, value interface{}) *GreaterThan {
	return &GreaterThan{comparison{leaf{path: path}, value}}
}

func (e *GreaterThan) String() string { return fmt.Sprintf("%s > %v", e.path, e.value) }

// GreaterThanOrEqual matches documents whose field orders at or above a
// literal value.
type GreaterThanOrEqual struct {
	comparison
}

// NewGreaterThanOrEqual creates a greater-than-or-equal predicate on path.
func NewGreaterThanOrEqual(path string, value interface{}) *GreaterThanOrEqual {
	return &GreaterThanOrEqual{comparison{leaf{path: path}, value}}
}

func (e *GreaterThanOrEqual) String() string { return fmt.Sprintf("%s >= %v", e.path, e.value) }

// LessThan matches documents whose field orders below a literal value.
type LessThan struct {
	comparison
}

// NewLessThan creates a less-than predicate on path.
func NewLessThan(path string, value interface{}) *LessThan {
	return &LessThan{comparison{leaf{path: path}, value}}
}

func (e *LessThan) String() string { return fmt.Sprintf("%s < %v", e.path, e.value) }

// LessThanOrEqual matches documents whose field orders at or below a literal
// value.
type LessThanOrEqual struct {
	comparison
}

// NewLessThanOrEqual creates a less-than-or-equal predicate on path.
func NewLessThanOrEqual(path string, value interface{}) *LessThanOrEqual {
	return &LessThanOrEqual{comparison{leaf{path: path}, value}}
}

func (e *LessThanOrEqual) String() string { return fmt.Sprintf("%s <= %v", e.path, e.value) }
