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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierSet(t *testing.T) {

	t.Parallel()

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var s ModifierSet

		assert.True(t, s.IsEmpty())
		assert.False(t, s.Has(ModifierConst))
		assert.Empty(t, s.Modifiers())
	})

	t.Run("has", func(t *testing.T) {
		t.Parallel()

		s := NewModifierSet(ModifierFinal, ModifierStatic)

		assert.False(t, s.IsEmpty())
		assert.True(t, s.Has(ModifierFinal))
		assert.True(t, s.Has(ModifierStatic))
		assert.False(t, s.Has(ModifierConst))
	})

	t.Run("modifiers are ordered", func(t *testing.T) {
		t.Parallel()

		s := NewModifierSet(ModifierSynthetic, ModifierConst, ModifierAbstract)

		assert.Equal(t,
			[]Modifier{
				ModifierConst,
				ModifierAbstract,
				ModifierSynthetic,
			},
			s.Modifiers(),
		)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()

		s := NewModifierSet(ModifierLate, ModifierLate)

		assert.Equal(t, []Modifier{ModifierLate}, s.Modifiers())
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", NewModifierSet().String())
		assert.Equal(t,
			"static factory",
			NewModifierSet(ModifierFactory, ModifierStatic).String(),
		)
	})
}

func TestModifier_Name(t *testing.T) {

	t.Parallel()

	for m := ModifierConst; m < modifierCount; m++ {
		assert.NotEmpty(t, m.Name())
	}
}
