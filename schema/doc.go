// Package schema defines the validation gate remote mounts pass props and
// event payloads through.
//
// The gate is a pair of capability interfaces rather than a schema-library
// type: Validator fails hard (used for eager dev-mode prop checks) and
// SafeValidator returns a discriminated Result without ever panicking (used
// per event payload, where a single malformed event must not tear down the
// mount). A Manifest is a plain data record referencing these interfaces.
//
// ObjectSpec is the built-in implementation, validating map-shaped values
// against named cty types.
package schema
