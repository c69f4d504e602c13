// Package querygen builds parameterized GraphQL documents. Only checked
// identifiers (type, table and field names) are ever interpolated into
// document text; values always travel through the bound-variables map.
package querygen

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports caller input that violates an operation's
// documented precondition. It is always raised before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError from a format string. Used
// by operations for preconditions checked outside this package, such as a
// referenced table not existing.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...any) *ValidationError {
	return NewValidationError(format, args...)
}

// https://spec.graphql.org/October2021/#Name
var namePattern = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Query is a finished document with its bound variables.
type Query struct {
	Document  string
	Variables map[string]any
}

// Builder assembles a document body. Identifier slots and value slots are
// kept apart by construction: WriteIdent validates names before they reach
// the text, and Bind routes values into the variables map only.
type Builder struct {
	body strings.Builder
	defs []string
	vars map[string]any
}

func NewBuilder() *Builder {
	return &Builder{vars: map[string]any{}}
}

// WriteIdent writes a GraphQL name into the document text after
// validating it against the Name grammar.
func (b *Builder) WriteIdent(name string) error {
	if !namePattern.MatchString(name) {
		return validationErrorf("invalid GraphQL name %q", name)
	}
	b.body.WriteString(name)

	return nil
}

// WriteSyntax writes fixed document syntax. Callers pass literals only,
// never caller-supplied data.
func (b *Builder) WriteSyntax(s string) {
	b.body.WriteString(s)
}

// Bind declares a variable of the given GraphQL type, attaches its value,
// and returns the "$name" reference to write into the document.
func (b *Builder) Bind(name, gqlType string, value any) string {
	b.defs = append(b.defs, "$"+name+": "+gqlType)
	b.vars[name] = value

	return "$" + name
}

// Build wraps the body with the operation header (keyword plus optional
// operation name) and the accumulated variable declarations.
func (b *Builder) Build(operation string) Query {
	var doc strings.Builder
	doc.WriteString(operation)
	if len(b.defs) > 0 {
		doc.WriteString("(" + strings.Join(b.defs, ", ") + ")")
	}
	doc.WriteString(" ")
	doc.WriteString(b.body.String())

	variables := b.vars
	if len(variables) == 0 {
		variables = nil
	}

	return Query{Document: doc.String(), Variables: variables}
}
