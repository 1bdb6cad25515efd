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

// Specializer produces member views of declarations through instantiations.
//
// Every factory follows the same stateless decision:
// if the defining instantiation is nil or raw, or substitution changes
// none of the kind's relevant types, the declaration itself is returned;
// otherwise a view carrying the substituted types is constructed.
// Base declarations are never mutated.
//
// A declaration whose relevant type is missing is reported to the
// diagnostic sink and conservatively treated as unspecialized,
// uniformly for all kinds.
type Specializer struct {
	sink DiagnosticSink
}

// NewSpecializer returns a specializer reporting anomalies
// to the given sink. A nil sink discards them.
func NewSpecializer(sink DiagnosticSink) *Specializer {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Specializer{
		sink: sink,
	}
}

// substituteFor applies the given instantiation's type arguments to the type
func (s *Specializer) substituteFor(typ Type, defining *Instantiation) Type {
	return substituteType(
		typ,
		defining.TypeArguments(),
		defining.TypeParameters(),
		defining,
		s,
	)
}

func (s *Specializer) substituteSignatureFor(
	signature *FunctionType,
	defining *Instantiation,
) *FunctionType {
	return substituteSignature(
		signature,
		defining.TypeArguments(),
		defining.TypeParameters(),
		defining,
		s,
	)
}

// Constructor returns the view of the given constructor through the given
// instantiation, or the constructor itself if substitution is a no-op
func (s *Specializer) Constructor(
	declaration Constructor,
	defining *Instantiation,
) Constructor {
	if declaration == nil || defining == nil || defining.IsRaw() {
		return declaration
	}

	signature := declaration.Signature()
	if signature == nil {
		s.sink.Report(&MissingSignatureError{Declaration: declaration})
		return declaration
	}

	substituted := s.substituteSignatureFor(signature, defining)
	if substituted.Equal(signature) {
		return declaration
	}

	return newConstructorMember(declaration, defining, s, substituted)
}

// Method returns the view of the given method through the given
// instantiation, or the method itself if substitution is a no-op
func (s *Specializer) Method(
	declaration Method,
	defining *Instantiation,
) Method {
	if declaration == nil || defining == nil || defining.IsRaw() {
		return declaration
	}

	signature := declaration.Signature()
	if signature == nil {
		s.sink.Report(&MissingSignatureError{Declaration: declaration})
		return declaration
	}

	substituted := s.substituteSignatureFor(signature, defining)
	if substituted.Equal(signature) {
		return declaration
	}

	return newMethodMember(declaration, defining, s, substituted)
}

// Field returns the view of the given field through the given instantiation,
// or the field itself if substitution changes neither the declared
// nor the propagated type
func (s *Specializer) Field(
	declaration Field,
	defining *Instantiation,
) Field {
	if declaration == nil || defining == nil || defining.IsRaw() {
		return declaration
	}

	declaredType := declaration.Type()
	if declaredType == nil {
		s.sink.Report(&MissingTypeError{Declaration: declaration})
		return declaration
	}

	substituted := s.substituteFor(declaredType, defining)

	propagatedType := declaration.PropagatedType()
	substitutedPropagated := s.substituteFor(propagatedType, defining)

	if substituted.Equal(declaredType) &&
		typesEqual(substitutedPropagated, propagatedType) {

		return declaration
	}

	return newFieldMember(
		declaration,
		defining,
		s,
		substituted,
		substitutedPropagated,
	)
}

// Accessor returns the view of the given property accessor through the given
// instantiation, or the accessor itself if substitution changes neither its
// signature nor, for an accessor backed by a non-synthetic field,
// that field's propagated type
func (s *Specializer) Accessor(
	declaration Accessor,
	defining *Instantiation,
) Accessor {
	if declaration == nil || defining == nil || defining.IsRaw() {
		return declaration
	}

	signature := declaration.Signature()
	if signature == nil {
		s.sink.Report(&MissingSignatureError{Declaration: declaration})
		return declaration
	}

	substituted := s.substituteSignatureFor(signature, defining)
	if !substituted.Equal(signature) {
		return newAccessorMemberWithSignature(declaration, defining, s, substituted)
	}

	if field, ok := declaration.Variable().(Field); ok && !field.IsSynthetic() {
		propagatedType := field.PropagatedType()
		substitutedPropagated := s.substituteFor(propagatedType, defining)
		if !typesEqual(substitutedPropagated, propagatedType) {
			return newAccessorMember(declaration, defining, s)
		}
	}

	return declaration
}

// Parameter returns the view of the given parameter through the given
// instantiation, or the parameter itself if substitution is a no-op.
//
// Field parameters always specialize, skipping the comparison:
// their effective type depends on a field which is resolved lazily.
func (s *Specializer) Parameter(
	declaration Parameter,
	defining *Instantiation,
) Parameter {
	if declaration == nil || defining == nil || defining.IsRaw() {
		return declaration
	}

	if fieldParameter, ok := declaration.(FieldParameter); ok {
		substituted := s.substituteFor(declaration.Type(), defining)
		return newFieldParameterMember(fieldParameter, defining, s, substituted)
	}

	declaredType := declaration.Type()
	if declaredType == nil {
		s.sink.Report(&MissingTypeError{Declaration: declaration})
		return declaration
	}

	substituted := s.substituteFor(declaredType, defining)
	if substituted.Equal(declaredType) {
		return declaration
	}

	return newParameterMember(declaration, defining, s, substituted)
}

// TypeParameter returns the view of the given type parameter through the
// given instantiation, or the type parameter itself if substitution
// does not change its bound
func (s *Specializer) TypeParameter(
	declaration TypeParameter,
	defining *Instantiation,
) TypeParameter {
	if declaration == nil || defining == nil || defining.IsRaw() {
		return declaration
	}

	bound := declaration.Bound()
	if bound == nil {
		// an unbounded type parameter cannot be changed by substitution
		return declaration
	}

	substituted := s.substituteFor(bound, defining)
	if substituted.Equal(bound) {
		return declaration
	}

	return newTypeParameterMember(declaration, defining, s, substituted)
}
