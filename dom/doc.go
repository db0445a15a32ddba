// Package dom provides the host-side element model remote components are
// mounted into.
//
// It is a deliberately small stand-in for a browser DOM: elements carry
// string attributes, arbitrary-valued properties, and insertion-ordered event
// listeners; containers are single-slot child holders with replace-children
// semantics. Rendering internals belong to the remote components themselves
// and are out of scope here.
//
// Definitions is the custom-element tag registry. Bundles define tags during
// load through the engine's host binding; Go hosts may define tags directly
// with an upgrade hook that runs when an element of that tag is created.
//
// Elements and containers are not safe for concurrent use. Definitions is.
package dom
