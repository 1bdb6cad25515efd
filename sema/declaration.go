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
	"github.com/lumina-lang/lumina/common"
)

// Declaration is the capability set common to every nameable entity
// of the model: base declarations as written in source,
// and specialized member views produced by a Specializer.
//
// Consumers can treat both uniformly.
type Declaration interface {
	isDeclaration()
	Name() string
	Kind() common.DeclarationKind
	Access() common.Access
	Position() common.Position
	DocString() string
	Modifiers() common.ModifierSet
	Library() *Library
	Parent() Declaration
	IsDeprecated() bool
	IsSynthetic() bool
	IsPrivate() bool
	// VisitChildren visits each non-nil child declaration
	VisitChildren(visit func(Declaration))
}

// Library identifies the compilation unit a declaration belongs to
type Library struct {
	Name string
}

// Variable is the capability set of value-holding declarations:
// fields, parameters, and local-like declarations.
type Variable interface {
	Declaration
	Type() Type
	IsConst() bool
	IsFinal() bool
	IsStatic() bool
	// Initializer returns the initializer executable, if any.
	// Specialized views do not support this operation:
	// nested function-like children are not substitution-aware.
	Initializer() Executable
}

// Field is a variable declared in a class
type Field interface {
	Variable
	// PropagatedType is the inferred type, if more precise than the declared one
	PropagatedType() Type
	Getter() Accessor
	Setter() Accessor
	EnclosingClass() *ClassDeclaration
}

// Executable is the capability set of callable declarations
type Executable interface {
	Declaration
	// Signature is the full signature type: parameters and return type
	Signature() *FunctionType
	Parameters() []Parameter
	ReturnType() Type
	// Functions returns the nested function declarations.
	// Specialized views do not support this operation.
	Functions() []Executable
	// LocalVariables returns the local variable declarations.
	// Specialized views do not support this operation.
	LocalVariables() []Variable
}

// Constructor is an executable that constructs instances of its enclosing class
type Constructor interface {
	Executable
	EnclosingClass() *ClassDeclaration
	// RedirectedConstructor is the constructor this constructor delegates to, if any
	RedirectedConstructor() Constructor
	IsFactory() bool
}

// Method is an executable member of a class
type Method interface {
	Executable
	EnclosingClass() *ClassDeclaration
	IsAbstract() bool
	IsStatic() bool
}

// Accessor is a property accessor: a getter or a setter
type Accessor interface {
	Executable
	IsGetter() bool
	IsSetter() bool
	CorrespondingGetter() Accessor
	CorrespondingSetter() Accessor
	// Variable is the variable this accessor exposes, if any
	Variable() Variable
	EnclosingClass() *ClassDeclaration
}

// Parameter is a formal parameter of an executable
type Parameter interface {
	Variable
	IsNamed() bool
	IsRequired() bool
	// Ancestor returns the closest enclosing declaration
	// satisfying the given predicate, if any
	Ancestor(predicate func(Declaration) bool) Declaration
}

// FieldParameter is a constructor parameter which initializes a field directly,
// e.g. `this.x`. Its effective type is the type of the field it initializes.
type FieldParameter interface {
	Parameter
	Field() Field
}

// TypeParameter is a formal type parameter of a generic declaration
type TypeParameter interface {
	Declaration
	// Bound is the upper bound, if any
	Bound() Type
}

// Ancestor returns the closest ancestor of the given declaration
// satisfying the predicate, or nil
func Ancestor(declaration Declaration, predicate func(Declaration) bool) Declaration {
	if declaration == nil {
		return nil
	}
	for ancestor := declaration.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		if predicate(ancestor) {
			return ancestor
		}
	}
	return nil
}
