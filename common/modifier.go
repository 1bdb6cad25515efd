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
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/lumina-lang/lumina/errors"
)

type Modifier uint

const (
	ModifierConst Modifier = iota
	ModifierFinal
	ModifierStatic
	ModifierLate
	ModifierCovariant
	ModifierAbstract
	ModifierExternal
	ModifierFactory
	ModifierSynthetic

	// modifierCount must remain the last entry
	modifierCount
)

func (m Modifier) Name() string {
	switch m {
	case ModifierConst:
		return "const"
	case ModifierFinal:
		return "final"
	case ModifierStatic:
		return "static"
	case ModifierLate:
		return "late"
	case ModifierCovariant:
		return "covariant"
	case ModifierAbstract:
		return "abstract"
	case ModifierExternal:
		return "external"
	case ModifierFactory:
		return "factory"
	case ModifierSynthetic:
		return "synthetic"
	}

	panic(errors.NewUnreachableError())
}

// ModifierSet is a set of declaration modifiers.
// The zero value is the empty set.
// Sets are treated as immutable once attached to a declaration.
type ModifierSet struct {
	bits bitset.BitSet
}

func NewModifierSet(modifiers ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range modifiers {
		s.bits.Set(uint(m))
	}
	return s
}

func (s ModifierSet) Has(m Modifier) bool {
	return s.bits.Test(uint(m))
}

func (s ModifierSet) IsEmpty() bool {
	return s.bits.None()
}

func (s ModifierSet) Modifiers() []Modifier {
	var modifiers []Modifier
	for i, ok := s.bits.NextSet(0); ok && i < uint(modifierCount); i, ok = s.bits.NextSet(i + 1) {
		modifiers = append(modifiers, Modifier(i))
	}
	return modifiers
}

func (s ModifierSet) String() string {
	var sb strings.Builder
	for i, m := range s.Modifiers() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.Name())
	}
	return sb.String()
}
