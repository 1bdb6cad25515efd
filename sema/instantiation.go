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
	"github.com/lumina-lang/lumina/errors"
)

// Instantiation pairs a generic class declaration with actual type arguments.
// It is the "defining type" a member view is seen through.
//
// Invariant: the number of type arguments either matches the number of
// the declaration's formal type parameters, or is zero,
// in which case the instantiation is raw (unspecialized).
type Instantiation struct {
	declaration   *ClassDeclaration
	typeArguments []Type
}

func NewInstantiation(declaration *ClassDeclaration, typeArguments ...Type) *Instantiation {
	if declaration == nil {
		panic(errors.NewUnexpectedError("instantiation of nil class declaration"))
	}
	if len(typeArguments) != 0 &&
		len(typeArguments) != len(declaration.TypeParameters()) {

		panic(errors.NewDefaultUserError(
			"class `%s` declares %d type parameter(s), got %d type argument(s)",
			declaration.Name(),
			len(declaration.TypeParameters()),
			len(typeArguments),
		))
	}
	return &Instantiation{
		declaration:   declaration,
		typeArguments: typeArguments,
	}
}

func (t *Instantiation) Declaration() *ClassDeclaration {
	return t.declaration
}

func (t *Instantiation) TypeArguments() []Type {
	return t.typeArguments
}

func (t *Instantiation) TypeParameters() []*TypeParameterDeclaration {
	return t.declaration.TypeParameters()
}

// IsRaw returns true if the instantiation carries no actual type arguments
func (t *Instantiation) IsRaw() bool {
	return len(t.typeArguments) == 0
}

// InstanceType returns the type denoted by this instantiation
func (t *Instantiation) InstanceType() *InstanceType {
	return &InstanceType{
		Declaration:   t.declaration,
		TypeArguments: t.typeArguments,
	}
}

func (t *Instantiation) Equal(other *Instantiation) bool {
	if other == nil {
		return false
	}
	return t.InstanceType().Equal(other.InstanceType())
}

func (t *Instantiation) String() string {
	return t.InstanceType().String()
}

// InstantiationOf derives the instantiation of the target class declaration
// as seen from the given context instantiation, by walking the supertype
// chain of the context's declaration and substituting type arguments stepwise.
//
// If the target is not in the context's supertype chain,
// or the chain loses its type arguments on the way,
// the raw instantiation of the target is returned.
func InstantiationOf(target *ClassDeclaration, context *Instantiation) *Instantiation {
	if target == nil {
		return nil
	}

	for instantiation := context; instantiation != nil; {
		if instantiation.declaration == target {
			return instantiation
		}

		supertype := instantiation.declaration.Supertype()
		if supertype == nil {
			break
		}

		substituted := SubstituteType(
			supertype,
			instantiation.typeArguments,
			instantiation.declaration.TypeParameters(),
		)

		instanceType, ok := substituted.(*InstanceType)
		if !ok {
			break
		}

		instantiation = NewInstantiation(
			instanceType.Declaration,
			instanceType.TypeArguments...,
		)
	}

	return NewInstantiation(target)
}
