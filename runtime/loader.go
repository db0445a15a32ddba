package runtime

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/remote-mount/errors"
)

// DefaultLoadTimeout bounds a load when the caller does not supply a timeout.
const DefaultLoadTimeout = 10 * time.Second

// loadState tracks one in-flight or settled load, keyed by bundle URL.
// err is written before done is closed and never afterwards.
type loadState struct {
	done chan struct{}
	err  error
}

// LoadRemote ensures the bundle for the registered remote id has been
// fetched and executed, at most once per URL across all concurrent callers.
//
// Each call races the shared load against its own timeout (DefaultLoadTimeout
// when timeout <= 0). A timed-out or cancelled wait does not cancel the
// underlying load; other waiters and future callers still observe its
// outcome. A failed load evicts its cache entry so the next call retries.
func (r *Runtime) LoadRemote(ctx context.Context, id string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}

	r.mu.Lock()
	reg, ok := r.registrations[id]
	if !ok {
		r.mu.Unlock()
		return errors.NotRegistered(id)
	}

	ls, ok := r.loads[reg.URL]
	if !ok {
		// Cache before racing any timeout: the entry's lifetime is
		// independent of this caller's wait.
		ls = &loadState{done: make(chan struct{})}
		r.loads[reg.URL] = ls
		go r.runLoad(context.WithoutCancel(ctx), reg, ls)
	}
	r.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ls.done:
		return ls.err
	case <-timer.C:
		Logger().Debug("load wait timed out",
			zap.String("id", id),
			zap.Duration("timeout", timeout))
		return errors.LoadTimeout(id, timeout)
	case <-ctx.Done():
		return errors.Wrap(errors.PhaseLoad, errors.KindTimeout, ctx.Err(), "load wait cancelled")
	}
}

// runLoad performs the fetch-and-run side effect and settles ls.
func (r *Runtime) runLoad(ctx context.Context, reg Registration, ls *loadState) {
	start := time.Now()

	bundle, err := r.fetcher.Fetch(ctx, reg.URL, reg.Integrity)
	if err == nil {
		err = r.runner.Run(ctx, bundle)
	}

	if err != nil {
		ls.err = errors.LoadFailed(reg.ID, reg.URL, err)
		// Evict so a later attempt re-fetches instead of observing a
		// permanently poisoned entry.
		r.mu.Lock()
		delete(r.loads, reg.URL)
		r.mu.Unlock()

		Logger().Warn("remote load failed",
			zap.String("id", reg.ID),
			zap.String("url", reg.URL),
			zap.Error(err))
	} else {
		Logger().Debug("remote loaded",
			zap.String("id", reg.ID),
			zap.String("url", reg.URL),
			zap.Duration("elapsed", time.Since(start)))
	}

	close(ls.done)
}
