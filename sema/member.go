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
	"sync"

	"github.com/lumina-lang/lumina/common"
	"github.com/lumina-lang/lumina/errors"
)

// SpecializedDeclaration is implemented by every member view
// produced by a Specializer, in addition to the capability
// interface of the view's kind.
type SpecializedDeclaration interface {
	Declaration
	// BaseDeclaration is the original declaration the view is based on.
	// It is never mutated and must outlive the view.
	BaseDeclaration() Declaration
	// DefiningInstantiation is the instantiation the declaration is viewed through
	DefiningInstantiation() *Instantiation
	// SubstituteFor applies the defining instantiation's type arguments
	// to the given type. A nil type substitutes to nil.
	SubstituteFor(typ Type) Type
}

// memberBase is the common core of all member views:
// a base declaration seen through a defining instantiation.
// All descriptive metadata delegates verbatim to the base declaration.
type memberBase struct {
	decl        Declaration
	defining    *Instantiation
	specializer *Specializer
}

func newMemberBase(
	decl Declaration,
	defining *Instantiation,
	specializer *Specializer,
) memberBase {
	if decl == nil {
		panic(errors.NewUnexpectedError("member view of nil declaration"))
	}
	return memberBase{
		decl:        decl,
		defining:    defining,
		specializer: specializer,
	}
}

func (m *memberBase) isDeclaration() {}

func (m *memberBase) BaseDeclaration() Declaration {
	return m.decl
}

func (m *memberBase) DefiningInstantiation() *Instantiation {
	return m.defining
}

func (m *memberBase) Name() string {
	return m.decl.Name()
}

func (m *memberBase) Kind() common.DeclarationKind {
	return m.decl.Kind()
}

func (m *memberBase) Access() common.Access {
	return m.decl.Access()
}

func (m *memberBase) Position() common.Position {
	return m.decl.Position()
}

func (m *memberBase) DocString() string {
	return m.decl.DocString()
}

func (m *memberBase) Modifiers() common.ModifierSet {
	return m.decl.Modifiers()
}

func (m *memberBase) Library() *Library {
	return m.decl.Library()
}

func (m *memberBase) Parent() Declaration {
	return m.decl.Parent()
}

func (m *memberBase) IsDeprecated() bool {
	return m.decl.IsDeprecated()
}

func (m *memberBase) IsSynthetic() bool {
	return m.decl.IsSynthetic()
}

func (m *memberBase) IsPrivate() bool {
	return m.decl.IsPrivate()
}

func (m *memberBase) VisitChildren(_ func(Declaration)) {
	// no substitutable children by default
}

func (m *memberBase) SubstituteFor(typ Type) Type {
	if typ == nil {
		return nil
	}
	if m.defining == nil {
		return typ
	}
	return substituteType(
		typ,
		m.defining.TypeArguments(),
		m.defining.TypeParameters(),
		m.defining,
		m.specializer,
	)
}

// variableMember is the common core of specialized value-holding views.
// The substituted declared type is computed once, at construction.
type variableMember struct {
	memberBase
	variable Variable
	typ      Type
}

// newVariableMember computes the substituted declared type from the base
func newVariableMember(
	variable Variable,
	defining *Instantiation,
	specializer *Specializer,
) variableMember {
	base := newMemberBase(variable, defining, specializer)
	return variableMember{
		memberBase: base,
		variable:   variable,
		typ:        base.SubstituteFor(variable.Type()),
	}
}

// newVariableMemberWithType uses an already-substituted declared type,
// avoiding a second substitution when the caller computed it
func newVariableMemberWithType(
	variable Variable,
	defining *Instantiation,
	specializer *Specializer,
	typ Type,
) variableMember {
	return variableMember{
		memberBase: newMemberBase(variable, defining, specializer),
		variable:   variable,
		typ:        typ,
	}
}

func (m *variableMember) Type() Type {
	return m.typ
}

func (m *variableMember) IsConst() bool {
	return m.variable.IsConst()
}

func (m *variableMember) IsFinal() bool {
	return m.variable.IsFinal()
}

func (m *variableMember) IsStatic() bool {
	return m.variable.IsStatic()
}

// Initializer is not supported on specialized variables:
// nested function-like children are not substitution-aware
func (m *variableMember) Initializer() Executable {
	panic(errors.NewUnsupportedOperationError(
		"initializer of specialized %s `%s`",
		m.Kind().Name(),
		m.Name(),
	))
}

// executableMember is the common core of specialized callable views.
// The substituted signature is computed lazily, on first access,
// and cached for the life of the view.
type executableMember struct {
	memberBase
	executable    Executable
	signatureOnce sync.Once
	signature     *FunctionType
}

// initLazyExecutableMember defers the signature substitution
// to the first access
func initLazyExecutableMember(
	member *executableMember,
	executable Executable,
	defining *Instantiation,
	specializer *Specializer,
) {
	member.memberBase = newMemberBase(executable, defining, specializer)
	member.executable = executable
}

// initExecutableMemberWithSignature uses an already-substituted signature,
// avoiding a second substitution when the caller computed it
func initExecutableMemberWithSignature(
	member *executableMember,
	executable Executable,
	defining *Instantiation,
	specializer *Specializer,
	signature *FunctionType,
) {
	member.memberBase = newMemberBase(executable, defining, specializer)
	member.executable = executable
	member.signature = signature
}

func (m *executableMember) Signature() *FunctionType {
	m.signatureOnce.Do(func() {
		if m.signature != nil {
			// pre-substituted at construction
			return
		}
		baseSignature := m.executable.Signature()
		if m.defining == nil {
			m.signature = baseSignature
			return
		}
		m.signature = substituteSignature(
			baseSignature,
			m.defining.TypeArguments(),
			m.defining.TypeParameters(),
			m.defining,
			m.specializer,
		)
	})
	return m.signature
}

func (m *executableMember) Parameters() []Parameter {
	signature := m.Signature()
	if signature == nil {
		return nil
	}
	return signature.Parameters
}

func (m *executableMember) ReturnType() Type {
	signature := m.Signature()
	if signature == nil {
		return nil
	}
	return signature.ReturnType
}

// Functions is not supported on specialized executables:
// nested declarations are not re-substituted
func (m *executableMember) Functions() []Executable {
	panic(errors.NewUnsupportedOperationError(
		"nested functions of specialized %s `%s`",
		m.Kind().Name(),
		m.Name(),
	))
}

// LocalVariables is not supported on specialized executables:
// nested declarations are not re-substituted
func (m *executableMember) LocalVariables() []Variable {
	panic(errors.NewUnsupportedOperationError(
		"local variables of specialized %s `%s`",
		m.Kind().Name(),
		m.Name(),
	))
}

// VisitChildren visits the base's nested functions and local variables
// unsubstituted, and the specialized parameters.
// Visiting nested declarations against the base instead of the view
// mirrors the limitation of Functions and LocalVariables.
func (m *executableMember) VisitChildren(visit func(Declaration)) {
	for _, function := range m.executable.Functions() {
		safeVisit(function, visit)
	}
	for _, variable := range m.executable.LocalVariables() {
		safeVisit(variable, visit)
	}
	for _, parameter := range m.Parameters() {
		safeVisit(parameter, visit)
	}
}
