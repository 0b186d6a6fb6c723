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
	"sync"

	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"

	"github.com/dolthub/go-docdb-server/docdb/geo"
)

type indexKey struct {
	collection, name string
}

// IndexRegistry keeps the indexes of every collection, in registration
// order. Registration validates the shape invariants the planner later
// relies on, so a registered entry never trips them.
type IndexRegistry struct {
	mut sync.RWMutex

	indexes    map[indexKey]*IndexEntry
	indexOrder []indexKey
	hashes     map[uint64]indexKey
}

// NewIndexRegistry returns a new empty registry.
func NewIndexRegistry() *IndexRegistry {
	return &IndexRegistry{
		indexes: make(map[indexKey]*IndexEntry),
		hashes:  make(map[uint64]indexKey),
	}
}

// AddIndex validates and registers idx. It fails when an index with the same
// collection and name exists, when another registered index has the exact
// same shape, or when the entry's key pattern is invalid for its type.
func (r *IndexRegistry) AddIndex(idx *IndexEntry) error {
	if err := validateEntry(idx); err != nil {
		return err
	}

	h, err := hashstructure.Hash(idx, nil)
	if err != nil {
		return errors.Wrapf(err, "unable to hash index %q", idx.Name)
	}

	r.mut.Lock()
	defer r.mut.Unlock()

	key := indexKey{idx.Collection, idx.Name}
	if _, ok := r.indexes[key]; ok {
		return ErrIndexRegistered.New(idx.Collection, idx.Name)
	}
	if prev, ok := r.hashes[h]; ok {
		return ErrDuplicateIndex.New(idx.Name, r.indexes[prev].Name)
	}

	r.indexes[key] = idx
	r.indexOrder = append(r.indexOrder, key)
	r.hashes[h] = key
	return nil
}

// Index returns the registered index of the collection with the given name,
// or nil.
func (r *IndexRegistry) Index(collection, name string) *IndexEntry {
	r.mut.RLock()
	defer r.mut.RUnlock()
	return r.indexes[indexKey{collection, name}]
}

// IndexesByCollection returns the indexes of the collection in registration
// order.
func (r *IndexRegistry) IndexesByCollection(collection string) []*IndexEntry {
	r.mut.RLock()
	defer r.mut.RUnlock()

	var out []*IndexEntry
	for _, key := range r.indexOrder {
		if key.collection == collection {
			out = append(out, r.indexes[key])
		}
	}
	return out
}

// Indexes returns every registered index in registration order.
func (r *IndexRegistry) Indexes() []*IndexEntry {
	r.mut.RLock()
	defer r.mut.RUnlock()

	out := make([]*IndexEntry, len(r.indexOrder))
	for i, key := range r.indexOrder {
		out[i] = r.indexes[key]
	}
	return out
}

func validateEntry(idx *IndexEntry) error {
	if len(idx.KeyPattern) == 0 {
		return ErrInvalidKeyPattern.New(idx.KeyPattern, idx.Type, idx.Name)
	}

	for _, elt := range idx.KeyPattern {
		switch elt.Kind {
		case "", KindHashed, Kind2D, Kind2DSphere, KindText, KindGeoHaystack:
		default:
			return ErrUnknownIndexKeyType.New(elt.Kind, idx.Name)
		}
	}

	// A text index must carry the divider element the structural validator
	// scans for.
	if idx.Type == FullText {
		if _, ok := idx.KeyPattern.TextPrefix(); !ok {
			return ErrTextKeyNotFound.New(idx.Name)
		}
	}

	// A flat geo key parses its hash parameters from Info during rating.
	if idx.Type != BTree {
		for _, elt := range idx.KeyPattern {
			if elt.Kind != Kind2D {
				continue
			}
			if _, err := geo.ParseHashParams(idx.Info); err != nil {
				return ErrInvalidGeoParameters.New(idx.Name, err)
			}
			break
		}
	}

	return nil
}
