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

func TestPosition(t *testing.T) {

	t.Parallel()

	first := Position{Offset: 10, Line: 2, Column: 3}
	second := Position{Offset: 20, Line: 4, Column: 1}

	assert.Equal(t, "2:3", first.String())

	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, 1, second.Compare(first))
	assert.Equal(t, 0, first.Compare(first))
}

func TestAccess(t *testing.T) {

	t.Parallel()

	assert.True(t, AccessPrivate.IsPrivate())
	assert.False(t, AccessPublic.IsPrivate())
	assert.False(t, AccessNotSpecified.IsPrivate())

	assert.Equal(t, "private", AccessPrivate.Description())
	assert.Equal(t, "public", AccessPublic.Description())
	assert.Equal(t, "not specified", AccessNotSpecified.Description())
}
