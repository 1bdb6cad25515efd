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

package sema

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteType(t *testing.T) {

	t.Parallel()

	library := &Library{Name: "test"}

	tDecl := NewTypeParameterDeclaration("T", nil)
	box := NewClassDeclaration(library, "Box", tDecl)

	typeArguments := []Type{StringType}
	typeParameters := box.TypeParameters()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, SubstituteType(nil, typeArguments, typeParameters))
	})

	t.Run("simple type unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Same(t,
			Type(IntType),
			SubstituteType(IntType, typeArguments, typeParameters),
		)
	})

	t.Run("type parameter replaced", func(t *testing.T) {
		t.Parallel()

		assert.Same(t,
			Type(StringType),
			SubstituteType(tDecl.DeclaredType(), typeArguments, typeParameters),
		)
	})

	t.Run("foreign type parameter unchanged", func(t *testing.T) {
		t.Parallel()

		uDecl := NewTypeParameterDeclaration("U", nil)

		assert.Same(t,
			Type(uDecl.DeclaredType()),
			SubstituteType(uDecl.DeclaredType(), typeArguments, typeParameters),
		)
	})

	t.Run("empty type arguments leave any type unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Same(t,
			Type(tDecl.DeclaredType()),
			SubstituteType(tDecl.DeclaredType(), nil, typeParameters),
		)
	})

	t.Run("instance type argument replaced", func(t *testing.T) {
		t.Parallel()

		boxOfT := NewInstanceType(box, tDecl.DeclaredType())

		substituted := SubstituteType(boxOfT, typeArguments, typeParameters)

		require.IsType(t, &InstanceType{}, substituted)
		assert.True(t,
			substituted.Equal(NewInstanceType(box, StringType)),
		)
		// the original is untouched
		assert.Same(t, Type(tDecl.DeclaredType()), boxOfT.TypeArguments[0])
	})

	t.Run("instance type without free occurrences is not copied", func(t *testing.T) {
		t.Parallel()

		boxOfInt := NewInstanceType(box, IntType)

		assert.Same(t,
			Type(boxOfInt),
			SubstituteType(boxOfInt, typeArguments, typeParameters),
		)
	})

	t.Run("nested instance type", func(t *testing.T) {
		t.Parallel()

		boxOfBoxOfT := NewInstanceType(
			box,
			NewInstanceType(box, tDecl.DeclaredType()),
		)

		substituted := SubstituteType(boxOfBoxOfT, typeArguments, typeParameters)

		assert.True(t,
			substituted.Equal(
				NewInstanceType(box, NewInstanceType(box, StringType)),
			),
		)
	})

	t.Run("function type", func(t *testing.T) {
		t.Parallel()

		signature := NewFunctionType(
			tDecl.DeclaredType(),
			NewParameterDeclaration("i", IntType),
		)

		substituted := SubstituteType(signature, typeArguments, typeParameters)

		require.IsType(t, &FunctionType{}, substituted)
		substitutedSignature := substituted.(*FunctionType)

		assert.True(t, substitutedSignature.ReturnType.Equal(StringType))
		// the unaffected parameter is kept as-is
		assert.Same(t,
			signature.Parameters[0],
			substitutedSignature.Parameters[0],
		)
	})

	t.Run("function type without free occurrences is not copied", func(t *testing.T) {
		t.Parallel()

		signature := NewFunctionType(
			BoolType,
			NewParameterDeclaration("i", IntType),
		)

		assert.Same(t,
			Type(signature),
			SubstituteType(signature, typeArguments, typeParameters),
		)
	})

	t.Run("changed parameter becomes a member view", func(t *testing.T) {
		t.Parallel()

		signature := NewFunctionType(
			VoidType,
			NewParameterDeclaration("value", tDecl.DeclaredType()),
		)

		substituted := SubstituteType(signature, typeArguments, typeParameters)

		substitutedSignature := substituted.(*FunctionType)
		parameter := substitutedSignature.Parameters[0]

		require.IsType(t, &ParameterMember{}, parameter)
		assert.True(t, parameter.Type().Equal(StringType))

		// a bare signature substitution has no class-shaped context
		view := parameter.(*ParameterMember)
		assert.Nil(t, view.DefiningInstantiation())
	})
}

// TestSubstituteType_Idempotence verifies that substitution is referentially
// idempotent: a type with no free occurrences of the formal type parameters
// is returned unchanged, whatever its shape.
func TestSubstituteType_Idempotence(t *testing.T) {

	t.Parallel()

	library := &Library{Name: "test"}

	tDecl := NewTypeParameterDeclaration("T", nil)
	box := NewClassDeclaration(library, "Box", tDecl)

	typeArguments := []Type{StringType}
	typeParameters := box.TypeParameters()

	simpleTypes := []Type{
		AnyType,
		BoolType,
		IntType,
		NumType,
		StringType,
		VoidType,
	}

	genSimpleType := gen.IntRange(0, len(simpleTypes)-1).
		Map(func(i int) Type {
			return simpleTypes[i]
		})

	// closed types: arbitrarily nested, never mentioning T
	genClosedType := genSimpleType.
		Map(func(typ Type) Type {
			return NewInstanceType(box, NewInstanceType(box, typ))
		})

	properties := gopter.NewProperties(nil)

	properties.Property("closed types substitute to themselves", prop.ForAll(
		func(typ Type) bool {
			return SubstituteType(typ, typeArguments, typeParameters) == typ
		},
		genClosedType,
	))

	pair := NewClassDeclaration(
		library,
		"Pair",
		NewTypeParameterDeclaration("A", nil),
		NewTypeParameterDeclaration("B", nil),
	)

	properties.Property("substituting twice is the same as substituting once", prop.ForAll(
		func(typ Type) bool {
			open := NewInstanceType(pair, tDecl.DeclaredType(), typ)

			once := SubstituteType(open, typeArguments, typeParameters)
			twice := SubstituteType(once, typeArguments, typeParameters)

			// the first substitution closes the type,
			// so the second must return it unchanged
			return twice == once && once.Equal(twice)
		},
		genClosedType,
	))

	properties.TestingRun(t)
}
