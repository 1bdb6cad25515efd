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

package common

import (
	"github.com/lumina-lang/lumina/errors"
)

type DeclarationKind int

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindClass
	DeclarationKindConstructor
	DeclarationKindMethod
	DeclarationKindFunction
	DeclarationKindField
	DeclarationKindParameter
	DeclarationKindFieldParameter
	DeclarationKindGetter
	DeclarationKindSetter
	DeclarationKindTypeParameter
	DeclarationKindLibrary
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindClass,
		DeclarationKindTypeParameter:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) IsExecutableDeclaration() bool {
	switch k {
	case DeclarationKindConstructor,
		DeclarationKindMethod,
		DeclarationKindFunction,
		DeclarationKindGetter,
		DeclarationKindSetter:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) IsAccessorDeclaration() bool {
	return k == DeclarationKindGetter ||
		k == DeclarationKindSetter
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindUnknown:
		return "unknown"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindConstructor:
		return "constructor"
	case DeclarationKindMethod:
		return "method"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindField:
		return "field"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindFieldParameter:
		return "field parameter"
	case DeclarationKindGetter:
		return "getter"
	case DeclarationKindSetter:
		return "setter"
	case DeclarationKindTypeParameter:
		return "type parameter"
	case DeclarationKindLibrary:
		return "library"
	}

	panic(errors.NewUnreachableError())
}
