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

// SubstituteType structurally replaces free occurrences of the given formal
// type parameters in the given type with the corresponding actual type arguments.
//
// The substitution is total over the type model and referentially idempotent:
// if nothing is replaced, the input type itself is returned,
// so substituting a type with no free occurrences of the formals
// always yields a type equal to the input.
//
// A nil type substitutes to nil. An empty type argument list
// leaves any type unchanged.
func SubstituteType(
	typ Type,
	typeArguments []Type,
	typeParameters []*TypeParameterDeclaration,
) Type {
	return substituteType(typ, typeArguments, typeParameters, nil, nil)
}

// substituteType is the internal form of SubstituteType, additionally
// threading the defining instantiation and the specializer through,
// so that parameters of substituted function types can be wrapped
// as parameter members carrying the proper context.
func substituteType(
	typ Type,
	typeArguments []Type,
	typeParameters []*TypeParameterDeclaration,
	defining *Instantiation,
	specializer *Specializer,
) Type {
	if typ == nil {
		return nil
	}

	if len(typeArguments) == 0 {
		return typ
	}

	switch typ := typ.(type) {
	case *SimpleType:
		return typ

	case *TypeParameterType:
		for i, typeParameter := range typeParameters {
			if typ.Declaration != typeParameter {
				continue
			}
			if i >= len(typeArguments) {
				break
			}
			return typeArguments[i]
		}
		return typ

	case *InstanceType:
		substitutedArguments := substituteTypes(
			typ.TypeArguments,
			typeArguments,
			typeParameters,
			defining,
			specializer,
		)
		if substitutedArguments == nil {
			return typ
		}
		return &InstanceType{
			Declaration:   typ.Declaration,
			TypeArguments: substitutedArguments,
		}

	case *FunctionType:
		return substituteSignature(
			typ,
			typeArguments,
			typeParameters,
			defining,
			specializer,
		)

	default:
		panic(errors.NewUnexpectedError("cannot substitute type: %T", typ))
	}
}

// substituteTypes substitutes each type in the given slice.
// It returns nil if no element changed.
func substituteTypes(
	types []Type,
	typeArguments []Type,
	typeParameters []*TypeParameterDeclaration,
	defining *Instantiation,
	specializer *Specializer,
) []Type {
	var substituted []Type
	for i, typ := range types {
		substitutedType := substituteType(
			typ,
			typeArguments,
			typeParameters,
			defining,
			specializer,
		)
		if substitutedType == typ {
			if substituted != nil {
				substituted[i] = typ
			}
			continue
		}
		if substituted == nil {
			substituted = make([]Type, len(types))
			copy(substituted, types[:i])
		}
		substituted[i] = substitutedType
	}
	return substituted
}

// substituteSignature substitutes a full signature type.
// Parameters whose declared type changes, and field-initializing parameters
// regardless, are wrapped as parameter members carrying the pre-substituted
// type; other unchanged parameters are kept as-is.
// The input signature is returned unchanged if nothing was replaced.
func substituteSignature(
	signature *FunctionType,
	typeArguments []Type,
	typeParameters []*TypeParameterDeclaration,
	defining *Instantiation,
	specializer *Specializer,
) *FunctionType {
	if signature == nil {
		return nil
	}

	substitutedReturnType := substituteType(
		signature.ReturnType,
		typeArguments,
		typeParameters,
		defining,
		specializer,
	)

	var substitutedParameters []Parameter
	for i, parameter := range signature.Parameters {
		substitutedType := substituteType(
			parameter.Type(),
			typeArguments,
			typeParameters,
			defining,
			specializer,
		)

		// field-initializing parameters always specialize, even when their
		// declared type is unchanged: the initialized field is resolved
		// lazily and may belong to a differently instantiated class
		_, isFieldParameter := parameter.(FieldParameter)

		if !isFieldParameter && substitutedType == parameter.Type() {
			if substitutedParameters != nil {
				substitutedParameters[i] = parameter
			}
			continue
		}
		if substitutedParameters == nil {
			substitutedParameters = make([]Parameter, len(signature.Parameters))
			copy(substitutedParameters, signature.Parameters[:i])
		}
		substitutedParameters[i] = newParameterViewWithType(
			parameter,
			defining,
			specializer,
			substitutedType,
		)
	}

	if substitutedReturnType == signature.ReturnType &&
		substitutedParameters == nil {

		return signature
	}

	if substitutedParameters == nil {
		substitutedParameters = signature.Parameters
	}

	return &FunctionType{
		Parameters: substitutedParameters,
		ReturnType: substitutedReturnType,
	}
}

// newParameterViewWithType wraps the given parameter in a member view
// carrying the already-substituted type.
// Field parameters keep their field relation.
func newParameterViewWithType(
	parameter Parameter,
	defining *Instantiation,
	specializer *Specializer,
	typ Type,
) Parameter {
	if fieldParameter, ok := parameter.(FieldParameter); ok {
		return newFieldParameterMember(fieldParameter, defining, specializer, typ)
	}
	return newParameterMember(parameter, defining, specializer, typ)
}
