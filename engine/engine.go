package engine

import (
	"context"
	"encoding/binary"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/remote-mount/dom"
	"github.com/wippyai/remote-mount/errors"
)

// HostNamespace is the import namespace bundles use to reach host functions.
const HostNamespace = "remount:host"

// Engine runs component bundles on a wazero runtime.
type Engine struct {
	runtime wazero.Runtime
	defs    *dom.Definitions
}

// Config holds configuration for engine creation
type Config struct {
	// Definitions receives the tags bundles define. A fresh registry is
	// created when nil.
	Definitions *dom.Definitions

	// MemoryLimitPages sets the maximum memory per instance in pages
	// (64KB each). 0 means the wazero default.
	MemoryLimitPages uint32
}

// Option configures engine creation.
type Option func(*Config)

// WithDefinitions binds the engine's define host function to defs.
func WithDefinitions(defs *dom.Definitions) Option {
	return func(c *Config) {
		c.Definitions = defs
	}
}

// WithMemoryLimitPages caps bundle memory.
func WithMemoryLimitPages(pages uint32) Option {
	return func(c *Config) {
		c.MemoryLimitPages = pages
	}
}

// New creates an engine and instantiates its host module.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Definitions == nil {
		cfg.Definitions = dom.NewDefinitions()
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	e := &Engine{
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		defs:    cfg.Definitions,
	}

	_, err := e.runtime.NewHostModuleBuilder(HostNamespace).
		NewFunctionBuilder().WithFunc(e.defineElement).Export("define").
		Instantiate(ctx)
	if err != nil {
		e.runtime.Close(ctx)
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindScriptFailed, err, "instantiate host module")
	}

	return e, nil
}

// Definitions returns the registry the engine's define function writes into.
func (e *Engine) Definitions() *dom.Definitions {
	return e.defs
}

// Run implements remount.Runner: it compiles and instantiates the bundle,
// then invokes its register entry point when one is exported. Instantiation
// is the bundle's chance to define its tags through the host module.
func (e *Engine) Run(ctx context.Context, bundle []byte) error {
	if isComponentBinary(bundle) {
		return errors.ScriptFailed("component-model binaries are not runnable; ship a core module bundle", nil)
	}

	compiled, err := e.runtime.CompileModule(ctx, bundle)
	if err != nil {
		return errors.ScriptFailed("compile bundle", err)
	}
	defer compiled.Close(ctx)

	mod, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return errors.ScriptFailed("instantiate bundle", err)
	}
	defer mod.Close(ctx)

	for _, entry := range []string{"register", "_start"} {
		fn := mod.ExportedFunction(entry)
		if fn == nil {
			continue
		}
		if _, err := fn.Call(ctx); err != nil {
			return errors.ScriptFailed("call "+entry, err)
		}
		break
	}

	return nil
}

// Close releases all wazero resources.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// defineElement is the host binding bundles call to register a tag. The tag
// name is read from guest memory at ptr/length. Returns 0 on success.
func (e *Engine) defineElement(_ context.Context, m api.Module, ptr, length uint32) uint32 {
	buf, ok := m.Memory().Read(ptr, length)
	if !ok {
		Logger().Warn("define: tag name out of memory bounds",
			zap.Uint32("ptr", ptr),
			zap.Uint32("len", length))
		return 1
	}

	tag := string(buf)
	if err := e.defs.Define(tag, nil); err != nil {
		Logger().Warn("define: rejected tag",
			zap.String("tag", tag),
			zap.Error(err))
		return 1
	}

	Logger().Debug("bundle defined tag", zap.String("tag", tag))
	return 0
}

// isComponentBinary reports whether data is a component-model binary rather
// than a core module: same magic, version field greater than 1.
func isComponentBinary(data []byte) bool {
	if len(data) < 8 {
		return false
	}
	if data[0] != 0x00 || data[1] != 0x61 || data[2] != 0x73 || data[3] != 0x6D {
		return false
	}
	return binary.LittleEndian.Uint32(data[4:8]) > 1
}
