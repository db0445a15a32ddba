package schema

import "fmt"

// ValidationError describes a single validation rejection.
type ValidationError struct {
	Cause  error
	Field  string
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Detail
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, e.Detail)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Validator checks a value against a schema, failing hard on rejection.
type Validator interface {
	Validate(value any) error
}

// Result is the discriminated outcome of a safe validation: either OK with
// the accepted value, or an error, never both.
type Result struct {
	Value any
	Err   *ValidationError
	OK    bool
}

// SafeValidator checks a value against a schema without ever panicking,
// reporting the outcome as a Result.
type SafeValidator interface {
	SafeValidate(value any) Result
}

// Manifest is the validation contract supplied per mount: a props schema and
// a mapping of event name to payload schema. The runtime holds it by
// reference and never mutates it.
type Manifest struct {
	Props  Validator
	Events map[string]SafeValidator
}
