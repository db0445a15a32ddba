package remount

import "context"

// Fetcher retrieves a remote component bundle by URL.
type Fetcher interface {
	// Fetch downloads the bundle at url. When integrity is non-empty it is a
	// subresource-integrity string ("sha256-<base64>") the payload must match.
	Fetch(ctx context.Context, url, integrity string) ([]byte, error)
}

// Runner executes a fetched component bundle.
//
// Running a bundle is the load's side effect: a well-behaved bundle registers
// its custom-element tag definitions with the host during Run.
type Runner interface {
	Run(ctx context.Context, bundle []byte) error
}
