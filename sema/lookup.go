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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Member returns the view of the named member of the instantiated class,
// or nil if the class declares no member with the given name.
// Constructors shadow methods, methods shadow fields,
// fields shadow accessors.
func (s *Specializer) Member(defining *Instantiation, name string) Declaration {
	if defining == nil {
		return nil
	}

	class := defining.Declaration()

	for _, constructor := range class.Constructors() {
		if constructor.Name() == name {
			return s.Constructor(constructor, defining)
		}
	}

	for _, method := range class.Methods() {
		if method.Name() == name {
			return s.Method(method, defining)
		}
	}

	for _, field := range class.Fields() {
		if field.Name() == name {
			return s.Field(field, defining)
		}
	}

	for _, accessor := range class.Accessors() {
		if accessor.Name() == name {
			return s.Accessor(accessor, defining)
		}
	}

	return nil
}

// Members returns the views of all members of the instantiated class,
// in declaration order
func (s *Specializer) Members(defining *Instantiation) []Declaration {
	if defining == nil {
		return nil
	}

	class := defining.Declaration()

	var members []Declaration

	for _, constructor := range class.Constructors() {
		members = append(members, s.Constructor(constructor, defining))
	}
	for _, method := range class.Methods() {
		members = append(members, s.Method(method, defining))
	}
	for _, field := range class.Fields() {
		members = append(members, s.Field(field, defining))
	}
	for _, accessor := range class.Accessors() {
		members = append(members, s.Accessor(accessor, defining))
	}

	return members
}

// ClosestMemberName finds the candidate with the smallest edit distance
// from the given name. In case of typos, this should provide a helpful hint
// for a consumer's diagnostics. It returns the empty string if no candidate
// is close enough.
func ClosestMemberName(name string, candidates []string) (closestName string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	sortedCandidates := make([]string, len(candidates))
	copy(sortedCandidates, candidates)
	sort.Strings(sortedCandidates)

	for _, candidate := range sortedCandidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest name if the distance is greater than one
		// already found, or if the edits required would involve a complete
		// replacement of the candidate's text
		if distance < closestDistance && distance < len(candidate) {
			closestName = candidate
			closestDistance = distance
		}
	}

	return
}
