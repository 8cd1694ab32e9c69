// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter holds the diagnostic model shared by the kdl parser: a
// span-anchored record of what went wrong, and a handler that accumulates
// these records across a single parse so that more than one error can be
// surfaced from one pass over the source.
package reporter

import (
	"fmt"

	"github.com/kralicky/kdl/ast"
)

// Kind classifies the underlying cause of a Diagnostic, mirroring the
// taxonomy a caller might want to switch on without string-matching Label.
type Kind int

const (
	// KindOther is the catch-all kind for diagnostics that don't need a
	// more specific classification.
	KindOther Kind = iota
	// KindContext marks a diagnostic produced at a named cut point; Context
	// holds the production name (e.g. "type name", "value").
	KindContext
	// KindParseInt marks a diagnostic raised while converting a numeric
	// literal's digits to an integer (e.g. i128 overflow).
	KindParseInt
	// KindParseFloat marks a diagnostic raised while converting a numeric
	// literal's digits to a float.
	KindParseFloat
)

// Severity is uniformly Error in this layer; warnings are never produced.
type Severity int

const (
	// SeverityError is the only severity this package currently emits.
	SeverityError Severity = iota
)

// Diagnostic is a single structured parse error: where it happened, a short
// human label, optional elaboration, the production it happened in, and a
// coarse Kind for programmatic dispatch.
type Diagnostic struct {
	Span     ast.Span
	Label    string
	Help     string
	Context  string
	Kind     Kind
	Severity Severity
}

func (d Diagnostic) Error() string {
	if d.Help != "" {
		return fmt.Sprintf("%d-%d: %s (%s)", d.Span.Start, d.Span.End, d.Label, d.Help)
	}
	return fmt.Sprintf("%d-%d: %s", d.Span.Start, d.Span.End, d.Label)
}

// Handler accumulates diagnostics in first-observation order. It has no
// other responsibility: it does not decide recoverability, does not dedupe,
// and does not rank diagnostics by severity since this layer only emits
// errors.
type Handler struct {
	diagnostics []Diagnostic
}

// New returns an empty Handler.
func New() *Handler {
	return &Handler{}
}

// Report appends d to the handler's ordered diagnostic list.
func (h *Handler) Report(d Diagnostic) {
	h.diagnostics = append(h.diagnostics, d)
}

// Diagnostics returns all diagnostics reported so far, in first-observation
// order.
func (h *Handler) Diagnostics() []Diagnostic {
	return h.diagnostics
}

// HasErrors reports whether any diagnostic has been recorded.
func (h *Handler) HasErrors() bool {
	return len(h.diagnostics) > 0
}
