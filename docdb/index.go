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

// IndexType discriminates the access method behind an index.
type IndexType byte

const (
	// BTree is an ordinary sorted index.
	BTree IndexType = iota
	// Hashed indexes the hash of a single field.
	Hashed
	// Geo2D is a flat (planar) geospatial index.
	Geo2D
	// Geo2DSphere is a spherical geospatial index.
	Geo2DSphere
	// FullText is a text search index.
	FullText
	// GeoHaystack is a bucketed geospatial index.
	GeoHaystack
)

func (t IndexType) String() string {
	switch t {
	case BTree:
		return "btree"
	case Hashed:
		return KindHashed
	case Geo2D:
		return Kind2D
	case Geo2DSphere:
		return Kind2DSphere
	case FullText:
		return KindText
	case GeoHaystack:
		return KindGeoHaystack
	}
	return fmt.Sprintf("IndexType(%d)", t)
}

// Key-pattern kind literals for specialty key elements. An ordinary sorted
// element carries the empty kind.
const (
	KindHashed      = "hashed"
	Kind2D          = "2d"
	Kind2DSphere    = "2dsphere"
	KindText        = "text"
	KindGeoHaystack = "geoHaystack"
)

// FullTextField is the reserved field name full-text predicates bind and the
// conventional name of the text-typed element in a text index's key pattern.
const FullTextField = "_fts"

// KeyElement is one field of an index's composite key.
type KeyElement struct {
	Field string
	// Kind is the specialty kind literal of the element, or empty for an
	// ordinary sorted element.
	Kind string
}

// KeyPattern is the ordered sequence of key elements declaring an index's
// composite key.
type KeyPattern []KeyElement

// Leading returns the first element of the pattern and false if the pattern
// is empty.
func (k KeyPattern) Leading() (KeyElement, bool) {
	if len(k) == 0 {
		return KeyElement{}, false
	}
	return k[0], true
}

// TextPrefix returns the fields preceding the first specialty-typed element,
// which for a text index divides the equality prefix from the text payload.
// The bool is false when the pattern has no specialty-typed element.
func (k KeyPattern) TextPrefix() ([]string, bool) {
	for i, elt := range k {
		if elt.Kind != "" {
			fields := make([]string, i)
			for j := 0; j < i; j++ {
				fields[j] = k[j].Field
			}
			return fields, true
		}
	}
	return nil, false
}

func (k KeyPattern) String() string {
	parts := make([]string, len(k))
	for i, elt := range k {
		if elt.Kind == "" {
			parts[i] = elt.Field
		} else {
			parts[i] = fmt.Sprintf("%s:%q", elt.Field, elt.Kind)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// IndexEntry describes one index of a collection. Entries are plain data:
// the catalog that produced them is external and outlives the planning call,
// and the analyzer only ever reads them.
type IndexEntry struct {
	Collection string
	// Name does not participate in shape comparisons: two same-shaped
	// indexes under different names are still duplicates.
	Name string `hash:"ignore"`
	Type IndexType
	KeyPattern KeyPattern
	// Sparse indexes omit documents missing the indexed field.
	Sparse bool
	// Multikey indexes may expand to one key per array element of the
	// indexed field.
	Multikey bool
	// Info carries auxiliary index configuration, such as the geo-hash
	// conversion parameters of a 2d index.
	Info map[string]interface{}
}

func (e *IndexEntry) String() string {
	return fmt.Sprintf("%s.%s %s %s", e.Collection, e.Name, e.Type, e.KeyPattern)
}
