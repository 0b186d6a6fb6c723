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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrIndexRegistered is returned when an index with the same collection
	// and name is already in the registry.
	ErrIndexRegistered = errors.NewKind("an index on %q named %q is already registered")

	// ErrDuplicateIndex is returned when an index duplicates the full shape
	// of an already registered one.
	ErrDuplicateIndex = errors.NewKind("index %q duplicates registered index %q")

	// ErrInvalidKeyPattern is returned when an index declares a key pattern
	// its type cannot carry.
	ErrInvalidKeyPattern = errors.NewKind("invalid key pattern %s for %s index %q")

	// ErrTextKeyNotFound signals a text index whose key pattern lacks a
	// text-typed element. Raised as an invariant failure: registration
	// rejects such indexes, so the planner never sees one.
	ErrTextKeyNotFound = errors.NewKind("text index %q has no text-typed element in its key pattern")

	// ErrUnknownIndexKeyType signals a key element whose kind literal is not
	// one the planner knows. Raised as an invariant failure.
	ErrUnknownIndexKeyType = errors.NewKind("unknown kind %q in the key pattern of index %q")

	// ErrNodeAlreadyTagged signals that the rating pass visited a node that
	// already carries a tag. Raised as an invariant failure: rating is the
	// unique assignment point.
	ErrNodeAlreadyTagged = errors.NewKind("predicate %s is already tagged")

	// ErrInvalidGeoParameters signals geo-hash parameters that cannot be
	// parsed from an index's auxiliary configuration.
	ErrInvalidGeoParameters = errors.NewKind("invalid geo hash parameters for index %q: %s")
)
