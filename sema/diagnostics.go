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
	"fmt"

	"github.com/lumina-lang/lumina/errors"
)

// DiagnosticSink receives informational anomalies encountered during
// specialization. Anomalies are conservative degrades, not failures:
// the specializer reports and continues with the declaration unchanged.
type DiagnosticSink interface {
	Report(diagnostic error)
}

// NoopSink discards all diagnostics
type NoopSink struct{}

var _ DiagnosticSink = NoopSink{}

func (NoopSink) Report(error) {}

// RecordingSink collects all reported diagnostics, in order.
// It is not safe for concurrent use.
type RecordingSink struct {
	Diagnostics []error
}

var _ DiagnosticSink = &RecordingSink{}

func (s *RecordingSink) Report(diagnostic error) {
	s.Diagnostics = append(s.Diagnostics, diagnostic)
}

// MissingSignatureError

// MissingSignatureError is reported when an executable declaration's
// signature type cannot be determined at substitution time.
// The declaration is treated as unspecialized.
type MissingSignatureError struct {
	Declaration Declaration
}

var _ errors.SecondaryError = &MissingSignatureError{}

func (e *MissingSignatureError) Error() string {
	return fmt.Sprintf(
		"cannot specialize %s `%s`: missing signature type",
		e.Declaration.Kind().Name(),
		e.Declaration.Name(),
	)
}

func (e *MissingSignatureError) SecondaryError() string {
	return "the declaration is treated as unspecialized"
}

// MissingTypeError

// MissingTypeError is reported when a value declaration's declared type
// cannot be determined at substitution time.
// The declaration is treated as unspecialized.
type MissingTypeError struct {
	Declaration Declaration
}

var _ errors.SecondaryError = &MissingTypeError{}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf(
		"cannot specialize %s `%s`: missing declared type",
		e.Declaration.Kind().Name(),
		e.Declaration.Name(),
	)
}

func (e *MissingTypeError) SecondaryError() string {
	return "the declaration is treated as unspecialized"
}
