package errors

import (
	"fmt"
	"strings"
	"time"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // remote registration
	PhaseFetch    Phase = "fetch"    // bundle or manifest retrieval
	PhaseLoad     Phase = "load"     // script load state machine
	PhaseMount    Phase = "mount"    // element creation and attachment
	PhaseValidate Phase = "validate" // prop and event payload validation
	PhaseManifest Phase = "manifest" // manifest parsing
	PhaseGenerate Phase = "generate" // type generation
)

// Kind categorizes the error
type Kind string

const (
	KindNotRegistered Kind = "not_registered"
	KindTimeout       Kind = "timeout"
	KindFetchFailed   Kind = "fetch_failed"
	KindScriptFailed  Kind = "script_failed"
	KindIntegrity     Kind = "integrity_mismatch"
	KindPropInvalid   Kind = "prop_invalid"
	KindEventInvalid  Kind = "event_invalid"
	KindVersion       Kind = "version_incompatible"
	KindBadManifest   Kind = "bad_manifest"
	KindInvalidInput  Kind = "invalid_input"
	KindNotFound      Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Remote string
	URL    string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Remote != "" {
		b.WriteString(" remote ")
		b.WriteString(e.Remote)
	}

	if e.URL != "" {
		b.WriteString(" (")
		b.WriteString(e.URL)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Remote sets the remote id the error concerns
func (b *Builder) Remote(id string) *Builder {
	b.err.Remote = id
	return b
}

// URL sets the bundle or manifest URL
func (b *Builder) URL(url string) *Builder {
	b.err.URL = url
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotRegistered creates an unknown-remote error
func NotRegistered(id string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNotRegistered,
		Remote: id,
		Detail: "no registration for remote",
	}
}

// LoadTimeout creates a load-timeout error naming the elapsed bound
func LoadTimeout(id string, timeout time.Duration) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindTimeout,
		Remote: id,
		Detail: fmt.Sprintf("load did not settle within %s", timeout),
	}
}

// LoadFailed creates a script-load failure error
func LoadFailed(id, url string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindScriptFailed,
		Remote: id,
		URL:    url,
		Cause:  cause,
		Detail: "bundle failed to load",
	}
}

// FetchFailed creates a bundle retrieval error
func FetchFailed(url string, cause error) *Error {
	return &Error{
		Phase: PhaseFetch,
		Kind:  KindFetchFailed,
		URL:   url,
		Cause: cause,
	}
}

// IntegrityMismatch creates a subresource-integrity failure error
func IntegrityMismatch(url, detail string) *Error {
	return &Error{
		Phase:  PhaseFetch,
		Kind:   KindIntegrity,
		URL:    url,
		Detail: detail,
	}
}

// ScriptFailed creates a bundle execution error
func ScriptFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindScriptFailed,
		Cause:  cause,
		Detail: detail,
	}
}

// PropValidation creates a dev-mode prop schema rejection error
func PropValidation(id string, cause error) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindPropInvalid,
		Remote: id,
		Cause:  cause,
		Detail: "props rejected by manifest schema",
	}
}

// VersionIncompatible creates a contract version mismatch error
func VersionIncompatible(id, hostRange, componentVersion string) *Error {
	return &Error{
		Phase:  PhaseMount,
		Kind:   KindVersion,
		Remote: id,
		Detail: fmt.Sprintf("component version %s does not satisfy host range %s", componentVersion, hostRange),
	}
}

// ManifestFetch creates a manifest retrieval error
func ManifestFetch(url string, cause error) *Error {
	return &Error{
		Phase:  PhaseManifest,
		Kind:   KindFetchFailed,
		URL:    url,
		Cause:  cause,
		Detail: "manifest unreachable",
	}
}

// ManifestShape creates a malformed-manifest error
func ManifestShape(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseManifest,
		Kind:   KindBadManifest,
		Detail: detail,
	}
}

// NotFound creates a missing-entity error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an underlying error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Cause:  cause,
		Detail: detail,
	}
}
