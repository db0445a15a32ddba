// Package runtime implements the remote-component mount runtime: a registry
// of loadable remotes, a deduplicated timeout-bounded loader, and a mounter
// that wires loaded components into host containers.
//
// A Runtime instance owns all of its state. Hosts construct one runtime per
// embedding (tests construct a fresh one each) instead of sharing ambient
// globals, and a runtime is safe for concurrent use.
//
// Loading is keyed by bundle URL, not remote id: two ids sharing a URL share
// one load, and for any number of concurrent LoadRemote calls naming the
// same URL exactly one fetch-and-run side effect occurs. A caller's timeout
// abandons only that caller's wait; the shared load keeps running and a
// later success still satisfies the cache. A failed load evicts its cache
// entry so the next attempt re-fetches.
package runtime
