// Package typegen converts a component manifest into Go type declarations:
// Props, per-event payload structs, Events, Capabilities, and the TagName
// constant.
//
// Local manifests are introspected directly; remote manifests fetched over
// HTTP carry JSON-Schema sections that are translated first (see
// FromJSONSchema).
package typegen
