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
	"testing"

	"github.com/stretchr/testify/require"
)

func newBTree(collection, name string, fields ...string) *IndexEntry {
	kp := make(KeyPattern, len(fields))
	for i, f := range fields {
		kp[i] = KeyElement{Field: f}
	}
	return &IndexEntry{Collection: collection, Name: name, Type: BTree, KeyPattern: kp}
}

func TestIndexRegistryAddIndex(t *testing.T) {
	require := require.New(t)

	r := NewIndexRegistry()
	require.NoError(r.AddIndex(newBTree("users", "name_1", "name")))
	require.NoError(r.AddIndex(newBTree("users", "age_1", "age")))
	require.NoError(r.AddIndex(newBTree("posts", "title_1", "title")))

	require.NotNil(r.Index("users", "name_1"))
	require.Nil(r.Index("users", "missing"))
	require.Nil(r.Index("posts", "name_1"))
}

func TestIndexRegistryDuplicateName(t *testing.T) {
	require := require.New(t)

	r := NewIndexRegistry()
	require.NoError(r.AddIndex(newBTree("users", "name_1", "name")))

	err := r.AddIndex(newBTree("users", "name_1", "other"))
	require.Error(err)
	require.True(ErrIndexRegistered.Is(err))
}

func TestIndexRegistryDuplicateShape(t *testing.T) {
	require := require.New(t)

	r := NewIndexRegistry()
	require.NoError(r.AddIndex(newBTree("users", "name_1", "name")))

	// Same shape under another name is still a duplicate.
	err := r.AddIndex(newBTree("users", "name_idx", "name"))
	require.Error(err)
	require.True(ErrDuplicateIndex.Is(err))

	// The same shape on another collection is not.
	require.NoError(r.AddIndex(newBTree("posts", "name_1", "name")))
}

func TestIndexRegistryOrder(t *testing.T) {
	require := require.New(t)

	r := NewIndexRegistry()
	require.NoError(r.AddIndex(newBTree("users", "c_1", "c")))
	require.NoError(r.AddIndex(newBTree("posts", "a_1", "a")))
	require.NoError(r.AddIndex(newBTree("users", "b_1", "b")))

	var names []string
	for _, idx := range r.IndexesByCollection("users") {
		names = append(names, idx.Name)
	}
	require.Equal([]string{"c_1", "b_1"}, names)

	names = nil
	for _, idx := range r.Indexes() {
		names = append(names, idx.Name)
	}
	require.Equal([]string{"c_1", "a_1", "b_1"}, names)
}

func TestIndexRegistryValidation(t *testing.T) {
	testCases := []struct {
		name string
		idx  *IndexEntry
		kind func(error) bool
	}{
		{
			"empty key pattern",
			&IndexEntry{Collection: "users", Name: "empty", Type: BTree},
			ErrInvalidKeyPattern.Is,
		},
		{
			"unknown element kind",
			&IndexEntry{
				Collection: "users",
				Name:       "bad_kind",
				Type:       BTree,
				KeyPattern: KeyPattern{{Field: "a", Kind: "wat"}},
			},
			ErrUnknownIndexKeyType.Is,
		},
		{
			"text index without text element",
			&IndexEntry{
				Collection: "users",
				Name:       "no_divider",
				Type:       FullText,
				KeyPattern: KeyPattern{{Field: "a"}, {Field: "b"}},
			},
			ErrTextKeyNotFound.Is,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := NewIndexRegistry().AddIndex(tt.idx)
			require.Error(t, err)
			require.True(t, tt.kind(err))
		})
	}
}

func TestKeyPatternTextPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  KeyPattern
		expected []string
		ok       bool
	}{
		{
			"no specialty element",
			KeyPattern{{Field: "a"}, {Field: "b"}},
			nil,
			false,
		},
		{
			"leading text element",
			KeyPattern{{Field: FullTextField, Kind: KindText}},
			[]string{},
			true,
		},
		{
			"prefixed text element",
			KeyPattern{{Field: "a"}, {Field: "b"}, {Field: FullTextField, Kind: KindText}, {Field: "c"}},
			[]string{"a", "b"},
			true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			prefix, ok := tt.pattern.TextPrefix()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, prefix)
		})
	}
}
