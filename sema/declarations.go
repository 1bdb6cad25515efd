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

// declarationBase carries the metadata common to all base declarations
type declarationBase struct {
	name       string
	access     common.Access
	position   common.Position
	docString  string
	modifiers  common.ModifierSet
	library    *Library
	parent     Declaration
	deprecated bool
}

func newDeclarationBase(name string) declarationBase {
	return declarationBase{
		name:   name,
		access: common.AccessPublic,
	}
}

func (d *declarationBase) isDeclaration() {}

func (d *declarationBase) Name() string {
	return d.name
}

func (d *declarationBase) Access() common.Access {
	return d.access
}

func (d *declarationBase) SetAccess(access common.Access) {
	d.access = access
}

func (d *declarationBase) Position() common.Position {
	return d.position
}

func (d *declarationBase) SetPosition(position common.Position) {
	d.position = position
}

func (d *declarationBase) DocString() string {
	return d.docString
}

func (d *declarationBase) SetDocString(docString string) {
	d.docString = docString
}

func (d *declarationBase) Modifiers() common.ModifierSet {
	return d.modifiers
}

func (d *declarationBase) SetModifiers(modifiers common.ModifierSet) {
	d.modifiers = modifiers
}

// Library returns the library this declaration belongs to,
// resolving through the parent chain when not set directly
func (d *declarationBase) Library() *Library {
	if d.library != nil {
		return d.library
	}
	if d.parent != nil {
		return d.parent.Library()
	}
	return nil
}

func (d *declarationBase) SetLibrary(library *Library) {
	d.library = library
}

func (d *declarationBase) Parent() Declaration {
	return d.parent
}

func (d *declarationBase) IsDeprecated() bool {
	return d.deprecated
}

func (d *declarationBase) SetDeprecated(deprecated bool) {
	d.deprecated = deprecated
}

func (d *declarationBase) IsSynthetic() bool {
	return d.modifiers.Has(common.ModifierSynthetic)
}

func (d *declarationBase) IsPrivate() bool {
	return d.access.IsPrivate()
}

func (d *declarationBase) VisitChildren(_ func(Declaration)) {
	// no children by default
}

// safeVisit visits the given declaration only if it is non-nil
func safeVisit(declaration Declaration, visit func(Declaration)) {
	if declaration == nil {
		return
	}
	visit(declaration)
}

// ClassDeclaration

// ClassDeclaration is a class or interface declaration,
// possibly generic over formal type parameters
type ClassDeclaration struct {
	declarationBase
	typeParameters []*TypeParameterDeclaration
	supertype      *InstanceType
	constructors   []*ConstructorDeclaration
	methods        []*MethodDeclaration
	fields         []*FieldDeclaration
	accessors      []*AccessorDeclaration
}

var _ Declaration = &ClassDeclaration{}

func NewClassDeclaration(
	library *Library,
	name string,
	typeParameters ...*TypeParameterDeclaration,
) *ClassDeclaration {
	declaration := &ClassDeclaration{
		declarationBase: newDeclarationBase(name),
		typeParameters:  typeParameters,
	}
	declaration.library = library
	for _, typeParameter := range typeParameters {
		typeParameter.parent = declaration
	}
	return declaration
}

func (d *ClassDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindClass
}

func (d *ClassDeclaration) TypeParameters() []*TypeParameterDeclaration {
	return d.typeParameters
}

// TypeParameterTypes returns the references to the class's own type parameters,
// i.e. the identity type arguments
func (d *ClassDeclaration) TypeParameterTypes() []Type {
	if len(d.typeParameters) == 0 {
		return nil
	}
	types := make([]Type, 0, len(d.typeParameters))
	for _, typeParameter := range d.typeParameters {
		types = append(types, typeParameter.DeclaredType())
	}
	return types
}

func (d *ClassDeclaration) Supertype() *InstanceType {
	return d.supertype
}

func (d *ClassDeclaration) SetSupertype(supertype *InstanceType) {
	d.supertype = supertype
}

func (d *ClassDeclaration) Constructors() []*ConstructorDeclaration {
	return d.constructors
}

func (d *ClassDeclaration) AddConstructor(constructor *ConstructorDeclaration) {
	constructor.parent = d
	constructor.enclosingClass = d
	d.constructors = append(d.constructors, constructor)
}

func (d *ClassDeclaration) Methods() []*MethodDeclaration {
	return d.methods
}

func (d *ClassDeclaration) AddMethod(method *MethodDeclaration) {
	method.parent = d
	method.enclosingClass = d
	d.methods = append(d.methods, method)
}

func (d *ClassDeclaration) Fields() []*FieldDeclaration {
	return d.fields
}

func (d *ClassDeclaration) AddField(field *FieldDeclaration) {
	field.parent = d
	field.enclosingClass = d
	d.fields = append(d.fields, field)
}

func (d *ClassDeclaration) Accessors() []*AccessorDeclaration {
	return d.accessors
}

func (d *ClassDeclaration) AddAccessor(accessor *AccessorDeclaration) {
	accessor.parent = d
	accessor.enclosingClass = d
	d.accessors = append(d.accessors, accessor)
}

// MemberNames returns the names of all declared members, in declaration order
func (d *ClassDeclaration) MemberNames() []string {
	var names []string
	for _, constructor := range d.constructors {
		names = append(names, constructor.Name())
	}
	for _, method := range d.methods {
		names = append(names, method.Name())
	}
	for _, field := range d.fields {
		names = append(names, field.Name())
	}
	for _, accessor := range d.accessors {
		names = append(names, accessor.Name())
	}
	return names
}

func (d *ClassDeclaration) VisitChildren(visit func(Declaration)) {
	for _, typeParameter := range d.typeParameters {
		safeVisit(typeParameter, visit)
	}
	for _, constructor := range d.constructors {
		safeVisit(constructor, visit)
	}
	for _, method := range d.methods {
		safeVisit(method, visit)
	}
	for _, field := range d.fields {
		safeVisit(field, visit)
	}
	for _, accessor := range d.accessors {
		safeVisit(accessor, visit)
	}
}

// TypeParameterDeclaration

type TypeParameterDeclaration struct {
	declarationBase
	bound Type
	typ   *TypeParameterType
}

var _ TypeParameter = &TypeParameterDeclaration{}

func NewTypeParameterDeclaration(name string, bound Type) *TypeParameterDeclaration {
	declaration := &TypeParameterDeclaration{
		declarationBase: newDeclarationBase(name),
		bound:           bound,
	}
	declaration.typ = &TypeParameterType{Declaration: declaration}
	return declaration
}

func (d *TypeParameterDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindTypeParameter
}

func (d *TypeParameterDeclaration) Bound() Type {
	return d.bound
}

func (d *TypeParameterDeclaration) SetBound(bound Type) {
	d.bound = bound
}

// DeclaredType returns the canonical reference to this type parameter
func (d *TypeParameterDeclaration) DeclaredType() *TypeParameterType {
	return d.typ
}

// executableBase carries the state common to all base executable declarations
type executableBase struct {
	declarationBase
	signature      *FunctionType
	functions      []Executable
	localVariables []Variable
}

func newExecutableBase(name string, signature *FunctionType) executableBase {
	return executableBase{
		declarationBase: newDeclarationBase(name),
		signature:       signature,
	}
}

// adoptParameters sets the given declaration as the parent
// of every base parameter declaration in its signature
func (d *executableBase) adoptParameters(parent Declaration) {
	if d.signature == nil {
		return
	}
	for _, parameter := range d.signature.Parameters {
		switch parameter := parameter.(type) {
		case *ParameterDeclaration:
			parameter.parent = parent
		case *FieldParameterDeclaration:
			parameter.parent = parent
		}
	}
}

func (d *executableBase) Signature() *FunctionType {
	return d.signature
}

func (d *executableBase) Parameters() []Parameter {
	if d.signature == nil {
		return nil
	}
	return d.signature.Parameters
}

func (d *executableBase) ReturnType() Type {
	if d.signature == nil {
		return nil
	}
	return d.signature.ReturnType
}

func (d *executableBase) Functions() []Executable {
	return d.functions
}

func (d *executableBase) AddFunction(function Executable) {
	d.functions = append(d.functions, function)
}

func (d *executableBase) LocalVariables() []Variable {
	return d.localVariables
}

func (d *executableBase) AddLocalVariable(variable Variable) {
	d.localVariables = append(d.localVariables, variable)
}

func (d *executableBase) VisitChildren(visit func(Declaration)) {
	for _, parameter := range d.Parameters() {
		safeVisit(parameter, visit)
	}
	for _, function := range d.functions {
		safeVisit(function, visit)
	}
	for _, variable := range d.localVariables {
		safeVisit(variable, visit)
	}
}

// ConstructorDeclaration

type ConstructorDeclaration struct {
	executableBase
	enclosingClass *ClassDeclaration
	redirected     *ConstructorDeclaration
}

var _ Constructor = &ConstructorDeclaration{}

func NewConstructorDeclaration(name string, signature *FunctionType) *ConstructorDeclaration {
	declaration := &ConstructorDeclaration{
		executableBase: newExecutableBase(name, signature),
	}
	declaration.adoptParameters(declaration)
	return declaration
}

func (d *ConstructorDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindConstructor
}

func (d *ConstructorDeclaration) EnclosingClass() *ClassDeclaration {
	return d.enclosingClass
}

func (d *ConstructorDeclaration) RedirectedConstructor() Constructor {
	if d.redirected == nil {
		return nil
	}
	return d.redirected
}

func (d *ConstructorDeclaration) SetRedirectedConstructor(redirected *ConstructorDeclaration) {
	d.redirected = redirected
}

func (d *ConstructorDeclaration) IsFactory() bool {
	return d.modifiers.Has(common.ModifierFactory)
}

// MethodDeclaration

type MethodDeclaration struct {
	executableBase
	enclosingClass *ClassDeclaration
}

var _ Method = &MethodDeclaration{}

func NewMethodDeclaration(name string, signature *FunctionType) *MethodDeclaration {
	declaration := &MethodDeclaration{
		executableBase: newExecutableBase(name, signature),
	}
	declaration.adoptParameters(declaration)
	return declaration
}

func (d *MethodDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindMethod
}

func (d *MethodDeclaration) EnclosingClass() *ClassDeclaration {
	return d.enclosingClass
}

func (d *MethodDeclaration) IsAbstract() bool {
	return d.modifiers.Has(common.ModifierAbstract)
}

func (d *MethodDeclaration) IsStatic() bool {
	return d.modifiers.Has(common.ModifierStatic)
}

// AccessorDeclaration

type AccessorDeclaration struct {
	executableBase
	setter         bool
	enclosingClass *ClassDeclaration
	variable       *FieldDeclaration
}

var _ Accessor = &AccessorDeclaration{}

func NewGetterDeclaration(name string, signature *FunctionType) *AccessorDeclaration {
	declaration := &AccessorDeclaration{
		executableBase: newExecutableBase(name, signature),
	}
	declaration.adoptParameters(declaration)
	return declaration
}

func NewSetterDeclaration(name string, signature *FunctionType) *AccessorDeclaration {
	declaration := &AccessorDeclaration{
		executableBase: newExecutableBase(name, signature),
		setter:         true,
	}
	declaration.adoptParameters(declaration)
	return declaration
}

func (d *AccessorDeclaration) Kind() common.DeclarationKind {
	if d.setter {
		return common.DeclarationKindSetter
	}
	return common.DeclarationKindGetter
}

func (d *AccessorDeclaration) IsGetter() bool {
	return !d.setter
}

func (d *AccessorDeclaration) IsSetter() bool {
	return d.setter
}

func (d *AccessorDeclaration) EnclosingClass() *ClassDeclaration {
	return d.enclosingClass
}

func (d *AccessorDeclaration) Variable() Variable {
	if d.variable == nil {
		return nil
	}
	return d.variable
}

func (d *AccessorDeclaration) CorrespondingGetter() Accessor {
	if d.IsGetter() || d.variable == nil || d.variable.getter == nil {
		return nil
	}
	return d.variable.getter
}

func (d *AccessorDeclaration) CorrespondingSetter() Accessor {
	if d.IsSetter() || d.variable == nil || d.variable.setter == nil {
		return nil
	}
	return d.variable.setter
}

// FieldDeclaration

type FieldDeclaration struct {
	declarationBase
	typ            Type
	propagatedType Type
	enclosingClass *ClassDeclaration
	getter         *AccessorDeclaration
	setter         *AccessorDeclaration
	initializer    Executable
}

var _ Field = &FieldDeclaration{}

func NewFieldDeclaration(name string, typ Type) *FieldDeclaration {
	return &FieldDeclaration{
		declarationBase: newDeclarationBase(name),
		typ:             typ,
	}
}

func (d *FieldDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindField
}

func (d *FieldDeclaration) Type() Type {
	return d.typ
}

func (d *FieldDeclaration) PropagatedType() Type {
	return d.propagatedType
}

func (d *FieldDeclaration) SetPropagatedType(propagatedType Type) {
	d.propagatedType = propagatedType
}

func (d *FieldDeclaration) IsConst() bool {
	return d.modifiers.Has(common.ModifierConst)
}

func (d *FieldDeclaration) IsFinal() bool {
	return d.modifiers.Has(common.ModifierFinal)
}

func (d *FieldDeclaration) IsStatic() bool {
	return d.modifiers.Has(common.ModifierStatic)
}

func (d *FieldDeclaration) Initializer() Executable {
	return d.initializer
}

func (d *FieldDeclaration) SetInitializer(initializer Executable) {
	d.initializer = initializer
}

func (d *FieldDeclaration) EnclosingClass() *ClassDeclaration {
	return d.enclosingClass
}

func (d *FieldDeclaration) Getter() Accessor {
	if d.getter == nil {
		return nil
	}
	return d.getter
}

// SetGetter attaches the given accessor as this field's getter
// and back-links the accessor to this field
func (d *FieldDeclaration) SetGetter(getter *AccessorDeclaration) {
	d.getter = getter
	getter.variable = d
}

func (d *FieldDeclaration) Setter() Accessor {
	if d.setter == nil {
		return nil
	}
	return d.setter
}

// SetSetter attaches the given accessor as this field's setter
// and back-links the accessor to this field
func (d *FieldDeclaration) SetSetter(setter *AccessorDeclaration) {
	d.setter = setter
	setter.variable = d
}

func (d *FieldDeclaration) VisitChildren(visit func(Declaration)) {
	safeVisit(d.initializer, visit)
}

// ParameterDeclaration

type ParameterDeclaration struct {
	declarationBase
	typ         Type
	named       bool
	required    bool
	initializer Executable
}

var _ Parameter = &ParameterDeclaration{}

func NewParameterDeclaration(name string, typ Type) *ParameterDeclaration {
	return &ParameterDeclaration{
		declarationBase: newDeclarationBase(name),
		typ:             typ,
		required:        true,
	}
}

func (d *ParameterDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindParameter
}

func (d *ParameterDeclaration) Type() Type {
	return d.typ
}

func (d *ParameterDeclaration) IsConst() bool {
	return d.modifiers.Has(common.ModifierConst)
}

func (d *ParameterDeclaration) IsFinal() bool {
	return d.modifiers.Has(common.ModifierFinal)
}

func (d *ParameterDeclaration) IsStatic() bool {
	return false
}

func (d *ParameterDeclaration) Initializer() Executable {
	return d.initializer
}

func (d *ParameterDeclaration) IsNamed() bool {
	return d.named
}

func (d *ParameterDeclaration) SetNamed(named bool) {
	d.named = named
}

func (d *ParameterDeclaration) IsRequired() bool {
	return d.required
}

func (d *ParameterDeclaration) SetRequired(required bool) {
	d.required = required
}

func (d *ParameterDeclaration) Ancestor(predicate func(Declaration) bool) Declaration {
	return Ancestor(d, predicate)
}

// FieldParameterDeclaration

// FieldParameterDeclaration is a constructor parameter which directly
// initializes a field, e.g. `this.x`. If no type is declared explicitly,
// its type is the type of the initialized field, resolved lazily.
type FieldParameterDeclaration struct {
	ParameterDeclaration
	field *FieldDeclaration
}

var _ FieldParameter = &FieldParameterDeclaration{}

func NewFieldParameterDeclaration(name string, field *FieldDeclaration) *FieldParameterDeclaration {
	return &FieldParameterDeclaration{
		ParameterDeclaration: *NewParameterDeclaration(name, nil),
		field:                field,
	}
}

func (d *FieldParameterDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindFieldParameter
}

func (d *FieldParameterDeclaration) Type() Type {
	if d.typ != nil {
		return d.typ
	}
	if d.field != nil {
		return d.field.Type()
	}
	return nil
}

func (d *FieldParameterDeclaration) Field() Field {
	if d.field == nil {
		return nil
	}
	return d.field
}

func (d *FieldParameterDeclaration) Ancestor(predicate func(Declaration) bool) Declaration {
	return Ancestor(d, predicate)
}

// FunctionDeclaration

// FunctionDeclaration is a plain, non-member function
type FunctionDeclaration struct {
	executableBase
}

var _ Executable = &FunctionDeclaration{}

func NewFunctionDeclaration(name string, signature *FunctionType) *FunctionDeclaration {
	declaration := &FunctionDeclaration{
		executableBase: newExecutableBase(name, signature),
	}
	declaration.adoptParameters(declaration)
	return declaration
}

func (d *FunctionDeclaration) Kind() common.DeclarationKind {
	return common.DeclarationKindFunction
}
