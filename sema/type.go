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
	"strings"

	"github.com/turbolent/prettier"
)

// Type is the supertype of all types in the model.
//
// Equality is structural value equality (`Equal`),
// never pointer identity: the substitution function may return
// either the original or a fresh value, and change detection
// in the specialization factories only relies on `Equal`.
type Type interface {
	isType()
	Equal(other Type) bool
	Doc() prettier.Doc
	String() string
}

const typeDocMaxLineWidth = 80

func renderDoc(doc prettier.Doc) string {
	var b strings.Builder
	prettier.Prettier(&b, doc, typeDocMaxLineWidth, "    ")
	return b.String()
}

// typesEqual compares two possibly-nil types by value
func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// SimpleType

// SimpleType is a non-generic named type, e.g. `Int` or `String`
type SimpleType struct {
	Name string
}

var _ Type = &SimpleType{}

var (
	AnyType    = &SimpleType{Name: "Any"}
	BoolType   = &SimpleType{Name: "Bool"}
	IntType    = &SimpleType{Name: "Int"}
	NumType    = &SimpleType{Name: "Num"}
	StringType = &SimpleType{Name: "String"}
	VoidType   = &SimpleType{Name: "Void"}
)

func (*SimpleType) isType() {}

func (t *SimpleType) Equal(other Type) bool {
	otherType, ok := other.(*SimpleType)
	if !ok {
		return false
	}
	return t.Name == otherType.Name
}

func (t *SimpleType) Doc() prettier.Doc {
	return prettier.Text(t.Name)
}

func (t *SimpleType) String() string {
	return t.Name
}

// TypeParameterType

// TypeParameterType is a reference to a formal type parameter,
// e.g. the `T` in the body of `class Box<T>`.
//
// Two references are equal if and only if they refer to
// the same type parameter declaration.
type TypeParameterType struct {
	Declaration *TypeParameterDeclaration
}

var _ Type = &TypeParameterType{}

func (*TypeParameterType) isType() {}

func (t *TypeParameterType) Equal(other Type) bool {
	otherType, ok := other.(*TypeParameterType)
	if !ok {
		return false
	}
	return t.Declaration == otherType.Declaration
}

func (t *TypeParameterType) Doc() prettier.Doc {
	return prettier.Text(t.Declaration.Name())
}

func (t *TypeParameterType) String() string {
	return t.Declaration.Name()
}

// InstanceType

// InstanceType is the type denoted by a class declaration
// applied to actual type arguments, e.g. `Pair<String, Int>`.
// A class used without type arguments is "raw".
type InstanceType struct {
	Declaration   *ClassDeclaration
	TypeArguments []Type
}

var _ Type = &InstanceType{}

func NewInstanceType(declaration *ClassDeclaration, typeArguments ...Type) *InstanceType {
	return &InstanceType{
		Declaration:   declaration,
		TypeArguments: typeArguments,
	}
}

func (*InstanceType) isType() {}

func (t *InstanceType) Equal(other Type) bool {
	otherType, ok := other.(*InstanceType)
	if !ok {
		return false
	}

	if t.Declaration != otherType.Declaration {
		return false
	}

	if len(t.TypeArguments) != len(otherType.TypeArguments) {
		return false
	}

	for i, typeArgument := range t.TypeArguments {
		otherTypeArgument := otherType.TypeArguments[i]
		if !typeArgument.Equal(otherTypeArgument) {
			return false
		}
	}

	return true
}

const typeArgumentSeparatorDoc = prettier.Text(",")

func typeArgumentsDoc(typeArguments []Type) prettier.Doc {
	argumentDocs := make([]prettier.Doc, 0, len(typeArguments))
	for _, typeArgument := range typeArguments {
		argumentDocs = append(argumentDocs, typeArgument.Doc())
	}

	var joined prettier.Concat
	for i, argumentDoc := range argumentDocs {
		if i > 0 {
			joined = append(
				joined,
				typeArgumentSeparatorDoc,
				prettier.Line{},
			)
		}
		joined = append(joined, argumentDoc)
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text("<"),
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.SoftLine{},
					joined,
				},
			},
			prettier.SoftLine{},
			prettier.Text(">"),
		},
	}
}

func (t *InstanceType) Doc() prettier.Doc {
	nameDoc := prettier.Doc(prettier.Text(t.Declaration.Name()))
	if len(t.TypeArguments) == 0 {
		return nameDoc
	}

	return prettier.Concat{
		nameDoc,
		typeArgumentsDoc(t.TypeArguments),
	}
}

func (t *InstanceType) String() string {
	return renderDoc(t.Doc())
}

// FunctionType

// FunctionType is the full signature of an executable declaration:
// its parameters, in order, and its return type.
//
// The parameters are declarations, not bare types,
// so that a substituted signature can carry specialized parameter views.
type FunctionType struct {
	Parameters []Parameter
	ReturnType Type
}

var _ Type = &FunctionType{}

func NewFunctionType(returnType Type, parameters ...Parameter) *FunctionType {
	return &FunctionType{
		Parameters: parameters,
		ReturnType: returnType,
	}
}

func (*FunctionType) isType() {}

// Equal compares parameter types pairwise and the return type.
// Parameter names and labels are not significant for signature equality.
func (t *FunctionType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionType)
	if !ok {
		return false
	}

	if len(t.Parameters) != len(otherType.Parameters) {
		return false
	}

	for i, parameter := range t.Parameters {
		otherParameter := otherType.Parameters[i]
		if !typesEqual(parameter.Type(), otherParameter.Type()) {
			return false
		}
	}

	return typesEqual(t.ReturnType, otherType.ReturnType)
}

func (t *FunctionType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("fun("),
	}

	for i, parameter := range t.Parameters {
		if i > 0 {
			doc = append(
				doc,
				typeArgumentSeparatorDoc,
				prettier.Space,
			)
		}
		parameterType := parameter.Type()
		if parameterType == nil {
			doc = append(doc, prettier.Text("?"))
		} else {
			doc = append(doc, parameterType.Doc())
		}
	}

	doc = append(doc, prettier.Text("): "))

	if t.ReturnType == nil {
		doc = append(doc, VoidType.Doc())
	} else {
		doc = append(doc, t.ReturnType.Doc())
	}

	return doc
}

func (t *FunctionType) String() string {
	return renderDoc(t.Doc())
}
