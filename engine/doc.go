// Package engine executes fetched component bundles with wazero.
//
// A bundle is a core WebAssembly module. During execution it may call the
// host's define function to register its custom-element tags with the
// runtime's definitions. The engine is the default remount.Runner; hosts
// with non-wasm bundles supply their own runner instead.
package engine
