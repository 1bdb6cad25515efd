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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnexpectedError(t *testing.T) {

	t.Parallel()

	err := NewUnexpectedError("cannot handle %s", "input")

	assert.Equal(t, "cannot handle input", err.Error())
	assert.True(t, IsInternalError(err))
	assert.False(t, IsUserError(err))
}

func TestUnsupportedOperationError(t *testing.T) {

	t.Parallel()

	err := NewUnsupportedOperationError("initializer of %s `%s`", "field", "value")

	assert.Equal(t,
		"unsupported operation: initializer of field `value`",
		err.Error(),
	)
	assert.True(t, IsInternalError(err))
}

func TestUnreachableError(t *testing.T) {

	t.Parallel()

	err := NewUnreachableError()

	assert.Contains(t, err.Error(), "unreachable")
	assert.NotEmpty(t, err.Stack)
	assert.True(t, IsInternalError(err))
}

func TestDefaultUserError(t *testing.T) {

	t.Parallel()

	err := NewDefaultUserError("expected %d argument(s)", 2)

	assert.Equal(t, "expected 2 argument(s)", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsInternalError(err))
}

// wrappingError wraps an inner error without being
// an internal or user error itself
type wrappingError struct {
	inner error
}

func (e wrappingError) Error() string {
	return fmt.Sprintf("wrapped: %s", e.inner)
}

func (e wrappingError) Unwrap() error {
	return e.inner
}

func TestErrorChainPredicates(t *testing.T) {

	t.Parallel()

	t.Run("wrapped internal error", func(t *testing.T) {
		t.Parallel()

		err := wrappingError{inner: NewUnexpectedError("boom")}

		assert.True(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
	})

	t.Run("wrapped user error", func(t *testing.T) {
		t.Parallel()

		err := wrappingError{inner: NewDefaultUserError("bad input")}

		assert.True(t, IsUserError(err))
		assert.False(t, IsInternalError(err))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("plain")

		assert.False(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.False(t, IsInternalError(nil))
		assert.False(t, IsUserError(nil))
	})
}
