package runtime

import (
	"context"
	"sync"

	"go.uber.org/zap"

	remount "github.com/wippyai/remote-mount"
	"github.com/wippyai/remote-mount/dom"
	"github.com/wippyai/remote-mount/engine"
	"github.com/wippyai/remote-mount/fetch"
)

// Registration identifies a loadable remote.
type Registration struct {
	// ID is the host-chosen unique key for the remote.
	ID string
	// URL is the fetchable bundle location.
	URL string
	// Integrity is an optional subresource-integrity hash for the bundle.
	Integrity string
	// VersionRange is an optional semantic version constraint on the
	// remote's contract version.
	VersionRange string
}

// Runtime holds the registration map, the URL-keyed load cache, and the tag
// definitions for one host instance.
type Runtime struct {
	fetcher       remount.Fetcher
	runner        remount.Runner
	ownEngine     *engine.Engine
	defs          *dom.Definitions
	registrations map[string]Registration
	loads         map[string]*loadState
	mu            sync.Mutex
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithFetcher replaces the default HTTP bundle fetcher.
func WithFetcher(f remount.Fetcher) Option {
	return func(r *Runtime) {
		r.fetcher = f
	}
}

// WithRunner replaces the default wazero bundle runner.
func WithRunner(run remount.Runner) Option {
	return func(r *Runtime) {
		r.runner = run
	}
}

// WithDefinitions shares an existing tag-definition registry.
func WithDefinitions(defs *dom.Definitions) Option {
	return func(r *Runtime) {
		r.defs = defs
	}
}

// New creates a Runtime. Unless overridden it fetches bundles over HTTP and
// executes them with a wazero engine bound to the runtime's definitions.
func New(ctx context.Context, opts ...Option) (*Runtime, error) {
	r := &Runtime{
		registrations: make(map[string]Registration),
		loads:         make(map[string]*loadState),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.defs == nil {
		r.defs = dom.NewDefinitions()
	}
	if r.fetcher == nil {
		r.fetcher = fetch.New()
	}
	if r.runner == nil {
		eng, err := engine.New(ctx, engine.WithDefinitions(r.defs))
		if err != nil {
			return nil, err
		}
		r.runner = eng
		r.ownEngine = eng
	}

	return r, nil
}

// Close releases runtime resources. Mounted elements stay usable; only the
// bundle engine (when owned by the runtime) is shut down.
func (r *Runtime) Close(ctx context.Context) error {
	if r.ownEngine != nil {
		return r.ownEngine.Close(ctx)
	}
	return nil
}

// Definitions returns the tag-definition registry loads write into.
func (r *Runtime) Definitions() *dom.Definitions {
	return r.defs
}

// RegisterRemote inserts or overwrites the registration for reg.ID. The URL
// is not checked for reachability; failures surface at load time. There is
// no deregistration.
func (r *Runtime) RegisterRemote(reg Registration) {
	r.mu.Lock()
	r.registrations[reg.ID] = reg
	r.mu.Unlock()

	Logger().Debug("registered remote",
		zap.String("id", reg.ID),
		zap.String("url", reg.URL))
}

// Registration returns the registration for id, if any.
func (r *Runtime) Registration(id string) (Registration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	return reg, ok
}
