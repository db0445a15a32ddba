// Package manifest models the contract a remote component publishes: its
// props, events, capabilities, tag name, and contract version.
//
// A manifest is a JSON document. Parse validates its shape, Compile turns it
// into the schema gate the runtime consults at mount time, and
// ResolveCompatibility checks the manifest's contract version against a
// host-declared semantic version range.
package manifest
