// Package fetch retrieves remote component bundles and manifests over HTTP,
// with optional subresource-integrity verification of the payload.
package fetch
