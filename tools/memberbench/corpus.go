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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/lumina-lang/lumina/common"
	"github.com/lumina-lang/lumina/sema"
)

// corpus is the YAML description of a set of generic class declarations
// and the instantiations to specialize them through
type corpus struct {
	Library  string        `yaml:"library"`
	Classes  []classSpec   `yaml:"classes"`
	Requests []requestSpec `yaml:"requests"`
}

type classSpec struct {
	Name           string              `yaml:"name"`
	TypeParameters []typeParameterSpec `yaml:"typeParameters"`
	Supertype      string              `yaml:"supertype"`
	Fields         []fieldSpec         `yaml:"fields"`
	Constructors   []constructorSpec   `yaml:"constructors"`
	Methods        []methodSpec        `yaml:"methods"`
}

type typeParameterSpec struct {
	Name  string `yaml:"name"`
	Bound string `yaml:"bound"`
}

type fieldSpec struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	PropagatedType string `yaml:"propagatedType"`
	Getter         bool   `yaml:"getter"`
	Setter         bool   `yaml:"setter"`
}

type parameterSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Field names a field of the enclosing class which this
	// constructor parameter directly initializes
	Field string `yaml:"field"`
}

type constructorSpec struct {
	Name        string          `yaml:"name"`
	Factory     bool            `yaml:"factory"`
	RedirectsTo string          `yaml:"redirectsTo"`
	Parameters  []parameterSpec `yaml:"parameters"`
}

type methodSpec struct {
	Name       string          `yaml:"name"`
	ReturnType string          `yaml:"returnType"`
	Parameters []parameterSpec `yaml:"parameters"`
}

type requestSpec struct {
	Class     string   `yaml:"class"`
	Arguments []string `yaml:"arguments"`
}

func loadCorpus(path string) (*corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	var c corpus
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}

	return &c, nil
}

// benchModel is the corpus resolved into the declaration model
type benchModel struct {
	library  *sema.Library
	classes  map[string]*sema.ClassDeclaration
	requests []*sema.Instantiation
}

var simpleTypes = map[string]sema.Type{
	"Any":    sema.AnyType,
	"Bool":   sema.BoolType,
	"Int":    sema.IntType,
	"Num":    sema.NumType,
	"String": sema.StringType,
	"Void":   sema.VoidType,
}

// build resolves the corpus in two passes: first all class declarations
// and their type parameters are created, then all type references,
// members, and requests are resolved against them
func (c *corpus) build() (*benchModel, error) {
	libraryName := c.Library
	if libraryName == "" {
		libraryName = "bench"
	}

	model := &benchModel{
		library: &sema.Library{Name: libraryName},
		classes: make(map[string]*sema.ClassDeclaration, len(c.Classes)),
	}

	scopes := make(map[string]map[string]*sema.TypeParameterDeclaration, len(c.Classes))

	for _, classSpec := range c.Classes {
		if _, ok := model.classes[classSpec.Name]; ok {
			return nil, fmt.Errorf("duplicate class: %s", classSpec.Name)
		}

		scope := make(map[string]*sema.TypeParameterDeclaration)

		typeParameters := make([]*sema.TypeParameterDeclaration, 0, len(classSpec.TypeParameters))
		for _, typeParameterSpec := range classSpec.TypeParameters {
			// bounds may refer to sibling type parameters, resolved below
			typeParameter := sema.NewTypeParameterDeclaration(typeParameterSpec.Name, nil)
			typeParameters = append(typeParameters, typeParameter)
			scope[typeParameterSpec.Name] = typeParameter
		}

		model.classes[classSpec.Name] = sema.NewClassDeclaration(
			model.library,
			classSpec.Name,
			typeParameters...,
		)
		scopes[classSpec.Name] = scope
	}

	for _, classSpec := range c.Classes {
		err := model.buildClass(classSpec, scopes[classSpec.Name])
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", classSpec.Name, err)
		}
	}

	for _, requestSpec := range c.Requests {
		request, err := model.buildRequest(requestSpec)
		if err != nil {
			return nil, err
		}
		model.requests = append(model.requests, request)
	}

	return model, nil
}

func (m *benchModel) buildClass(
	spec classSpec,
	scope map[string]*sema.TypeParameterDeclaration,
) error {
	class := m.classes[spec.Name]

	for i, typeParameterSpec := range spec.TypeParameters {
		if typeParameterSpec.Bound == "" {
			continue
		}
		bound, err := m.resolveType(typeParameterSpec.Bound, scope)
		if err != nil {
			return err
		}
		class.TypeParameters()[i].SetBound(bound)
	}

	if spec.Supertype != "" {
		supertype, err := m.resolveType(spec.Supertype, scope)
		if err != nil {
			return err
		}
		instanceType, ok := supertype.(*sema.InstanceType)
		if !ok {
			return fmt.Errorf("supertype is not a class type: %s", spec.Supertype)
		}
		class.SetSupertype(instanceType)
	}

	fields := make(map[string]*sema.FieldDeclaration, len(spec.Fields))

	for _, fieldSpec := range spec.Fields {
		field, err := m.buildField(fieldSpec, scope)
		if err != nil {
			return err
		}
		class.AddField(field)
		fields[fieldSpec.Name] = field

		if fieldSpec.Getter {
			getter := sema.NewGetterDeclaration(
				fieldSpec.Name,
				sema.NewFunctionType(field.Type()),
			)
			field.SetGetter(getter)
			class.AddAccessor(getter)
		}

		if fieldSpec.Setter {
			setter := sema.NewSetterDeclaration(
				fieldSpec.Name+"=",
				sema.NewFunctionType(
					sema.VoidType,
					sema.NewParameterDeclaration("newValue", field.Type()),
				),
			)
			field.SetSetter(setter)
			class.AddAccessor(setter)
		}
	}

	constructors := make(map[string]*sema.ConstructorDeclaration, len(spec.Constructors))

	for _, constructorSpec := range spec.Constructors {
		parameters, err := m.buildParameters(constructorSpec.Parameters, scope, fields)
		if err != nil {
			return err
		}

		constructor := sema.NewConstructorDeclaration(
			constructorSpec.Name,
			sema.NewFunctionType(
				sema.NewInstanceType(class, class.TypeParameterTypes()...),
				parameters...,
			),
		)
		if constructorSpec.Factory {
			constructor.SetModifiers(common.NewModifierSet(common.ModifierFactory))
		}
		class.AddConstructor(constructor)
		constructors[constructorSpec.Name] = constructor
	}

	// redirects can only be resolved once all constructors exist
	for _, constructorSpec := range spec.Constructors {
		if constructorSpec.RedirectsTo == "" {
			continue
		}
		target, ok := constructors[constructorSpec.RedirectsTo]
		if !ok {
			return fmt.Errorf(
				"constructor %s redirects to unknown constructor: %s",
				constructorSpec.Name,
				constructorSpec.RedirectsTo,
			)
		}
		constructors[constructorSpec.Name].SetRedirectedConstructor(target)
	}

	for _, methodSpec := range spec.Methods {
		returnType, err := m.resolveType(methodSpec.ReturnType, scope)
		if err != nil {
			return err
		}

		parameters, err := m.buildParameters(methodSpec.Parameters, scope, fields)
		if err != nil {
			return err
		}

		class.AddMethod(sema.NewMethodDeclaration(
			methodSpec.Name,
			sema.NewFunctionType(returnType, parameters...),
		))
	}

	return nil
}

func (m *benchModel) buildField(
	spec fieldSpec,
	scope map[string]*sema.TypeParameterDeclaration,
) (*sema.FieldDeclaration, error) {
	typ, err := m.resolveType(spec.Type, scope)
	if err != nil {
		return nil, err
	}

	field := sema.NewFieldDeclaration(spec.Name, typ)

	if spec.PropagatedType != "" {
		propagatedType, err := m.resolveType(spec.PropagatedType, scope)
		if err != nil {
			return nil, err
		}
		field.SetPropagatedType(propagatedType)
	}

	return field, nil
}

func (m *benchModel) buildParameters(
	specs []parameterSpec,
	scope map[string]*sema.TypeParameterDeclaration,
	fields map[string]*sema.FieldDeclaration,
) ([]sema.Parameter, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	parameters := make([]sema.Parameter, 0, len(specs))
	for _, spec := range specs {
		if spec.Field != "" {
			field, ok := fields[spec.Field]
			if !ok {
				return nil, fmt.Errorf(
					"parameter %s initializes unknown field: %s",
					spec.Name,
					spec.Field,
				)
			}
			parameters = append(
				parameters,
				sema.NewFieldParameterDeclaration(spec.Name, field),
			)
			continue
		}

		typ, err := m.resolveType(spec.Type, scope)
		if err != nil {
			return nil, err
		}
		parameters = append(
			parameters,
			sema.NewParameterDeclaration(spec.Name, typ),
		)
	}

	return parameters, nil
}

func (m *benchModel) buildRequest(spec requestSpec) (*sema.Instantiation, error) {
	class, ok := m.classes[spec.Class]
	if !ok {
		return nil, m.unknownClassError(spec.Class)
	}

	typeArguments := make([]sema.Type, 0, len(spec.Arguments))
	for _, argument := range spec.Arguments {
		// requests instantiate with closed types, so no scope applies
		typ, err := m.resolveType(argument, nil)
		if err != nil {
			return nil, err
		}
		typeArguments = append(typeArguments, typ)
	}

	if len(typeArguments) != 0 &&
		len(typeArguments) != len(class.TypeParameters()) {

		return nil, fmt.Errorf(
			"class %s takes %d type argument(s), got %d",
			spec.Class,
			len(class.TypeParameters()),
			len(typeArguments),
		)
	}

	return sema.NewInstantiation(class, typeArguments...), nil
}

// resolveType resolves a type reference of the corpus:
// a type parameter in scope, a simple type, or a class reference,
// optionally applied to type arguments, e.g. `Pair<Int, T>`
func (m *benchModel) resolveType(
	reference string,
	scope map[string]*sema.TypeParameterDeclaration,
) (sema.Type, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("missing type reference")
	}

	name, argumentReferences, err := splitTypeReference(reference)
	if err != nil {
		return nil, err
	}

	if len(argumentReferences) == 0 {
		if typeParameter, ok := scope[name]; ok {
			return typeParameter.DeclaredType(), nil
		}
		if simpleType, ok := simpleTypes[name]; ok {
			return simpleType, nil
		}
		if class, ok := m.classes[name]; ok {
			return sema.NewInstanceType(class), nil
		}
		return nil, m.unknownTypeError(name)
	}

	class, ok := m.classes[name]
	if !ok {
		return nil, m.unknownClassError(name)
	}

	typeArguments := make([]sema.Type, 0, len(argumentReferences))
	for _, argumentReference := range argumentReferences {
		typeArgument, err := m.resolveType(argumentReference, scope)
		if err != nil {
			return nil, err
		}
		typeArguments = append(typeArguments, typeArgument)
	}

	return sema.NewInstanceType(class, typeArguments...), nil
}

// splitTypeReference splits `Name<A, B<C>>` into the name and the
// top-level type argument references
func splitTypeReference(reference string) (name string, arguments []string, err error) {
	open := strings.IndexByte(reference, '<')
	if open < 0 {
		return reference, nil, nil
	}
	if !strings.HasSuffix(reference, ">") {
		return "", nil, fmt.Errorf("malformed type reference: %s", reference)
	}

	name = strings.TrimSpace(reference[:open])
	inner := reference[open+1 : len(reference)-1]

	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return "", nil, fmt.Errorf("malformed type reference: %s", reference)
			}
		case ',':
			if depth == 0 {
				arguments = append(arguments, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, fmt.Errorf("malformed type reference: %s", reference)
	}
	arguments = append(arguments, strings.TrimSpace(inner[start:]))

	return name, arguments, nil
}

func (m *benchModel) unknownClassError(name string) error {
	return m.unknownError("class", name)
}

func (m *benchModel) unknownTypeError(name string) error {
	return m.unknownError("type", name)
}

func (m *benchModel) unknownError(kind string, name string) error {
	candidates := make([]string, 0, len(m.classes)+len(simpleTypes))
	for className := range m.classes {
		candidates = append(candidates, className)
	}
	for simpleTypeName := range simpleTypes {
		candidates = append(candidates, simpleTypeName)
	}

	closest := sema.ClosestMemberName(name, candidates)
	if closest != "" {
		return fmt.Errorf("unknown %s: %s (did you mean `%s`?)", kind, name, closest)
	}
	return fmt.Errorf("unknown %s: %s", kind, name)
}
