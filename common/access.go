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
	"github.com/lumina-lang/lumina/errors"
)

type Access int

const (
	AccessNotSpecified Access = iota
	AccessPrivate
	AccessPublic
)

func (a Access) IsPrivate() bool {
	return a == AccessPrivate
}

func (a Access) Description() string {
	switch a {
	case AccessNotSpecified:
		return "not specified"
	case AccessPrivate:
		return "private"
	case AccessPublic:
		return "public"
	}

	panic(errors.NewUnreachableError())
}
