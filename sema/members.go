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

// ConstructorMember is the view of a constructor
// through a defining instantiation
type ConstructorMember struct {
	executableMember
	constructor Constructor
}

var _ Constructor = &ConstructorMember{}
var _ SpecializedDeclaration = &ConstructorMember{}

func newConstructorMember(
	constructor Constructor,
	defining *Instantiation,
	specializer *Specializer,
	signature *FunctionType,
) *ConstructorMember {
	member := &ConstructorMember{
		constructor: constructor,
	}
	initExecutableMemberWithSignature(
		&member.executableMember,
		constructor,
		defining,
		specializer,
		signature,
	)
	return member
}

func (m *ConstructorMember) EnclosingClass() *ClassDeclaration {
	return m.constructor.EnclosingClass()
}

// RedirectedConstructor returns the view of the redirected constructor
// through the same defining instantiation, keeping the redirect chain
// consistent under the substitution
func (m *ConstructorMember) RedirectedConstructor() Constructor {
	return m.specializer.Constructor(
		m.constructor.RedirectedConstructor(),
		m.defining,
	)
}

func (m *ConstructorMember) IsFactory() bool {
	return m.constructor.IsFactory()
}

// MethodMember is the view of a method through a defining instantiation
type MethodMember struct {
	executableMember
	method Method
}

var _ Method = &MethodMember{}
var _ SpecializedDeclaration = &MethodMember{}

func newMethodMember(
	method Method,
	defining *Instantiation,
	specializer *Specializer,
	signature *FunctionType,
) *MethodMember {
	member := &MethodMember{
		method: method,
	}
	initExecutableMemberWithSignature(
		&member.executableMember,
		method,
		defining,
		specializer,
		signature,
	)
	return member
}

func (m *MethodMember) EnclosingClass() *ClassDeclaration {
	return m.method.EnclosingClass()
}

func (m *MethodMember) IsAbstract() bool {
	return m.method.IsAbstract()
}

func (m *MethodMember) IsStatic() bool {
	return m.method.IsStatic()
}

// AccessorMember is the view of a property accessor
// through a defining instantiation
type AccessorMember struct {
	executableMember
	accessor Accessor
}

var _ Accessor = &AccessorMember{}
var _ SpecializedDeclaration = &AccessorMember{}

// newAccessorMember computes the substituted signature lazily:
// an accessor view can be required because the backing field's
// propagated type changed, not its own signature
func newAccessorMember(
	accessor Accessor,
	defining *Instantiation,
	specializer *Specializer,
) *AccessorMember {
	member := &AccessorMember{
		accessor: accessor,
	}
	initLazyExecutableMember(
		&member.executableMember,
		accessor,
		defining,
		specializer,
	)
	return member
}

func newAccessorMemberWithSignature(
	accessor Accessor,
	defining *Instantiation,
	specializer *Specializer,
	signature *FunctionType,
) *AccessorMember {
	member := &AccessorMember{
		accessor: accessor,
	}
	initExecutableMemberWithSignature(
		&member.executableMember,
		accessor,
		defining,
		specializer,
		signature,
	)
	return member
}

func (m *AccessorMember) IsGetter() bool {
	return m.accessor.IsGetter()
}

func (m *AccessorMember) IsSetter() bool {
	return m.accessor.IsSetter()
}

func (m *AccessorMember) EnclosingClass() *ClassDeclaration {
	return m.accessor.EnclosingClass()
}

func (m *AccessorMember) CorrespondingGetter() Accessor {
	return m.specializer.Accessor(
		m.accessor.CorrespondingGetter(),
		m.defining,
	)
}

func (m *AccessorMember) CorrespondingSetter() Accessor {
	return m.specializer.Accessor(
		m.accessor.CorrespondingSetter(),
		m.defining,
	)
}

// Variable returns the view of the variable backing this accessor.
// A backing field is re-specialized through the same defining instantiation.
func (m *AccessorMember) Variable() Variable {
	variable := m.accessor.Variable()
	if variable == nil {
		return nil
	}
	if field, ok := variable.(Field); ok {
		return m.specializer.Field(field, m.defining)
	}
	return variable
}

// FieldMember is the view of a field through a defining instantiation
type FieldMember struct {
	variableMember
	field          Field
	propagatedType Type
}

var _ Field = &FieldMember{}
var _ SpecializedDeclaration = &FieldMember{}

func newFieldMember(
	field Field,
	defining *Instantiation,
	specializer *Specializer,
	typ Type,
	propagatedType Type,
) *FieldMember {
	return &FieldMember{
		variableMember: newVariableMemberWithType(
			field,
			defining,
			specializer,
			typ,
		),
		field:          field,
		propagatedType: propagatedType,
	}
}

func (m *FieldMember) PropagatedType() Type {
	return m.propagatedType
}

func (m *FieldMember) EnclosingClass() *ClassDeclaration {
	return m.field.EnclosingClass()
}

func (m *FieldMember) Getter() Accessor {
	return m.specializer.Accessor(m.field.Getter(), m.defining)
}

func (m *FieldMember) Setter() Accessor {
	return m.specializer.Accessor(m.field.Setter(), m.defining)
}

// ParameterMember is the view of a parameter through a defining instantiation.
// It composes the variable specialization with the parameter-specific
// capabilities.
type ParameterMember struct {
	variableMember
	parameter Parameter
}

var _ Parameter = &ParameterMember{}
var _ SpecializedDeclaration = &ParameterMember{}

func newParameterMember(
	parameter Parameter,
	defining *Instantiation,
	specializer *Specializer,
	typ Type,
) *ParameterMember {
	return &ParameterMember{
		variableMember: newVariableMemberWithType(
			parameter,
			defining,
			specializer,
			typ,
		),
		parameter: parameter,
	}
}

func (m *ParameterMember) IsNamed() bool {
	return m.parameter.IsNamed()
}

func (m *ParameterMember) IsRequired() bool {
	return m.parameter.IsRequired()
}

// Ancestor delegates the ancestor search to the base parameter,
// and re-specializes the result through the factory matching its kind.
// An ancestor is only re-specialized if the parameter was specialized
// against a class-shaped defining instantiation; parameters wrapped
// during a bare signature substitution return the ancestor unspecialized.
func (m *ParameterMember) Ancestor(predicate func(Declaration) bool) Declaration {
	ancestor := m.parameter.Ancestor(predicate)
	if ancestor == nil {
		return nil
	}

	if m.defining == nil || m.specializer == nil {
		return ancestor
	}

	switch ancestor := ancestor.(type) {
	case Constructor:
		return m.specializer.Constructor(ancestor, m.defining)
	case Method:
		return m.specializer.Method(ancestor, m.defining)
	case Accessor:
		return m.specializer.Accessor(ancestor, m.defining)
	default:
		return ancestor
	}
}

// FieldParameterMember is the view of a field-initializing constructor
// parameter through a defining instantiation
type FieldParameterMember struct {
	ParameterMember
	fieldParameter FieldParameter
}

var _ FieldParameter = &FieldParameterMember{}
var _ SpecializedDeclaration = &FieldParameterMember{}

func newFieldParameterMember(
	fieldParameter FieldParameter,
	defining *Instantiation,
	specializer *Specializer,
	typ Type,
) *FieldParameterMember {
	return &FieldParameterMember{
		ParameterMember: *newParameterMember(
			fieldParameter,
			defining,
			specializer,
			typ,
		),
		fieldParameter: fieldParameter,
	}
}

// Field returns the view of the initialized field.
// The field is specialized against the instantiation of its own enclosing
// class as seen from this parameter's defining instantiation, which may
// differ from the defining instantiation itself when the field is inherited.
func (m *FieldParameterMember) Field() Field {
	field := m.fieldParameter.Field()
	if field == nil {
		return nil
	}

	if m.defining == nil || m.specializer == nil {
		return field
	}

	defining := m.defining
	enclosing := field.EnclosingClass()
	if enclosing != nil && enclosing != defining.Declaration() {
		defining = InstantiationOf(enclosing, defining)
	}

	return m.specializer.Field(field, defining)
}

// TypeParameterMember is the view of a type parameter
// through a defining instantiation, carrying the substituted bound
type TypeParameterMember struct {
	memberBase
	typeParameter TypeParameter
	bound         Type
}

var _ TypeParameter = &TypeParameterMember{}
var _ SpecializedDeclaration = &TypeParameterMember{}

func newTypeParameterMember(
	typeParameter TypeParameter,
	defining *Instantiation,
	specializer *Specializer,
	bound Type,
) *TypeParameterMember {
	return &TypeParameterMember{
		memberBase:    newMemberBase(typeParameter, defining, specializer),
		typeParameter: typeParameter,
		bound:         bound,
	}
}

func (m *TypeParameterMember) Bound() Type {
	return m.bound
}
