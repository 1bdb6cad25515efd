/*
 * Lumina - a semantic model for the Lumina programming language
 *
 * Copyright Lumina Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-lang/lumina/sema"
)

func loadTestModel(t *testing.T) *benchModel {
	t.Helper()

	c, err := loadCorpus(filepath.Join("testdata", "corpus.yaml"))
	require.NoError(t, err)

	model, err := c.build()
	require.NoError(t, err)

	return model
}

func TestCorpusBuild(t *testing.T) {

	t.Parallel()

	model := loadTestModel(t)

	require.Contains(t, model.classes, "Box")
	require.Contains(t, model.classes, "Pair")
	require.Len(t, model.requests, 3)

	box := model.classes["Box"]
	assert.Len(t, box.TypeParameters(), 1)
	assert.Len(t, box.Constructors(), 2)
	assert.Len(t, box.Methods(), 2)
	assert.Len(t, box.Fields(), 1)
	assert.Len(t, box.Accessors(), 2)

	pair := model.classes["Pair"]
	require.NotNil(t, pair.Supertype())
	assert.Same(t, box, pair.Supertype().Declaration)

	assert.Equal(t, "Box<String>", model.requests[0].String())
	assert.Equal(t, "Pair<Int, String>", model.requests[1].String())
	assert.True(t, model.requests[2].IsRaw())
}

func TestCorpusSpecialization(t *testing.T) {

	t.Parallel()

	model := loadTestModel(t)

	sink := &sema.RecordingSink{}
	specializer := sema.NewSpecializer(sink)

	t.Run("parameterized request", func(t *testing.T) {
		members := specializer.Members(model.requests[0])
		require.NotEmpty(t, members)

		var specialized int
		for _, member := range members {
			if _, ok := member.(sema.SpecializedDeclaration); ok {
				specialized++
			}
		}

		// every member except the type-parameter-free method changes
		assert.Equal(t, len(members)-1, specialized)
	})

	t.Run("raw request produces no views", func(t *testing.T) {
		for _, member := range specializer.Members(model.requests[2]) {
			_, ok := member.(sema.SpecializedDeclaration)
			assert.False(t, ok)
		}
	})

	t.Run("no diagnostics", func(t *testing.T) {
		assert.Empty(t, sink.Diagnostics)
	})
}

func TestSplitTypeReference(t *testing.T) {

	t.Parallel()

	t.Run("plain name", func(t *testing.T) {
		t.Parallel()

		name, arguments, err := splitTypeReference("Int")
		require.NoError(t, err)
		assert.Equal(t, "Int", name)
		assert.Empty(t, arguments)
	})

	t.Run("type arguments", func(t *testing.T) {
		t.Parallel()

		name, arguments, err := splitTypeReference("Pair<Int, String>")
		require.NoError(t, err)
		assert.Equal(t, "Pair", name)
		assert.Equal(t, []string{"Int", "String"}, arguments)
	})

	t.Run("nested type arguments", func(t *testing.T) {
		t.Parallel()

		name, arguments, err := splitTypeReference("Pair<Box<Int>, Pair<A, B>>")
		require.NoError(t, err)
		assert.Equal(t, "Pair", name)
		assert.Equal(t, []string{"Box<Int>", "Pair<A, B>"}, arguments)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		_, _, err := splitTypeReference("Pair<Int")
		assert.Error(t, err)

		_, _, err = splitTypeReference("Pair<Box<Int>")
		assert.Error(t, err)
	})
}

func TestResolveTypeSuggestion(t *testing.T) {

	t.Parallel()

	model := loadTestModel(t)

	_, err := model.resolveType("Pari<Int, String>", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean `Pair`?")
}
