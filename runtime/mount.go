package runtime

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/remote-mount/dom"
	"github.com/wippyai/remote-mount/errors"
	"github.com/wippyai/remote-mount/manifest"
	"github.com/wippyai/remote-mount/schema"
)

// CapabilityProperty is the single well-known element property host
// capabilities are attached under. Remotes read it from the element; the
// host never publishes capabilities through shared state.
const CapabilityProperty = "hostCapabilities"

// Fallback is what to render when a mount fails: an element, plain text, or
// an element producer. The zero value renders nothing.
type Fallback struct {
	element *dom.Element
	produce func() *dom.Element
	text    string
	kind    int
}

const (
	fallbackNone = iota
	fallbackElement
	fallbackText
	fallbackFunc
)

// FallbackElement renders el on mount failure.
func FallbackElement(el *dom.Element) Fallback {
	return Fallback{kind: fallbackElement, element: el}
}

// FallbackText renders plain text on mount failure.
func FallbackText(s string) Fallback {
	return Fallback{kind: fallbackText, text: s}
}

// FallbackFunc calls produce on mount failure and renders its result.
func FallbackFunc(produce func() *dom.Element) Fallback {
	return Fallback{kind: fallbackFunc, produce: produce}
}

// EventCallback receives forwarded component events.
type EventCallback func(event string, payload any)

// MountOptions configures one mount.
type MountOptions struct {
	// Container receives the mounted element. It is owned exclusively by
	// the caller; the runtime only replaces and removes its children.
	Container *dom.Container
	// Props are applied to the element before attachment.
	Props Props
	// Capabilities, when non-nil, is attached under CapabilityProperty.
	Capabilities any
	// OnEvent receives (event, payload) for events named in the manifest.
	OnEvent EventCallback
	// Manifest is the optional validation contract for props and events.
	Manifest *schema.Manifest
	// Fallback is rendered into Container when the mount fails.
	Fallback Fallback
	// RemoteID names the registered remote to load.
	RemoteID string
	// TagName is the custom element tag to instantiate.
	TagName string
	// ContractVersion is the component's manifest version, checked against
	// the registration's VersionRange when both are present.
	ContractVersion string
	// Timeout bounds the load wait; DefaultLoadTimeout when zero.
	Timeout time.Duration
	// DevMode enables eager prop validation and per-event payload
	// validation. Production mounts skip both.
	DevMode bool
}

// MountHandle is the result of a successful mount. It exclusively tracks
// the created element until Unmount.
type MountHandle struct {
	element   *dom.Element
	container *dom.Container
	listeners []dom.ListenerHandle
	unmounted bool
}

// Element returns the mounted element.
func (h *MountHandle) Element() *dom.Element {
	return h.element
}

// Unmount detaches every listener the mount registered and removes the
// element from its container if it is still that container's child. Safe to
// call more than once.
func (h *MountHandle) Unmount() {
	if h.unmounted {
		return
	}
	h.unmounted = true

	for _, l := range h.listeners {
		h.element.RemoveEventListener(l)
	}
	if h.container.Contains(h.element) {
		h.container.Remove(h.element)
	}
}

// Mount loads the remote, instantiates its element, applies props and
// capabilities, wires event listeners, and attaches the element to the
// container. On failure the fallback (if any) is rendered into the
// container and the original error is still returned: callers observe the
// failure even though the UI already degraded.
func (r *Runtime) Mount(ctx context.Context, opts MountOptions) (*MountHandle, error) {
	if opts.Container == nil {
		return nil, errors.InvalidInput(errors.PhaseMount, "mount requires a container")
	}

	handle, err := r.mount(ctx, opts)
	if err != nil {
		r.renderFallback(opts)
		return nil, err
	}
	return handle, nil
}

func (r *Runtime) mount(ctx context.Context, opts MountOptions) (*MountHandle, error) {
	if err := r.LoadRemote(ctx, opts.RemoteID, opts.Timeout); err != nil {
		return nil, err
	}

	if opts.TagName == "" {
		return nil, errors.InvalidInput(errors.PhaseMount, "mount requires a tag name")
	}

	if opts.ContractVersion != "" {
		if reg, ok := r.Registration(opts.RemoteID); ok && reg.VersionRange != "" {
			if !manifest.ResolveCompatibility(reg.VersionRange, opts.ContractVersion) {
				return nil, errors.VersionIncompatible(opts.RemoteID, reg.VersionRange, opts.ContractVersion)
			}
		}
	}

	el := dom.NewElement(opts.TagName)
	if err := r.defs.Upgrade(el); err != nil {
		return nil, errors.Wrap(errors.PhaseMount, errors.KindScriptFailed, err, "element upgrade failed")
	}

	// Dev-mode guard only: production mounts apply props unchecked.
	if opts.DevMode && opts.Manifest != nil && opts.Manifest.Props != nil {
		if err := opts.Manifest.Props.Validate(opts.Props.Interfaces()); err != nil {
			return nil, errors.PropValidation(opts.RemoteID, err)
		}
	}

	applyProps(el, opts.Props)

	if opts.Capabilities != nil {
		el.SetProperty(CapabilityProperty, opts.Capabilities)
	}

	var listeners []dom.ListenerHandle
	if opts.Manifest != nil {
		listeners = r.wireEvents(el, opts)
	}

	opts.Container.ReplaceChildren(el)

	Logger().Debug("mounted remote",
		zap.String("id", opts.RemoteID),
		zap.String("tag", opts.TagName))

	return &MountHandle{
		element:   el,
		container: opts.Container,
		listeners: listeners,
	}, nil
}

// wireEvents attaches one listener per manifest event. In dev mode an
// invalid payload is logged and dropped; the external callback never sees
// it. A malformed single event must not tear down a working mount.
func (r *Runtime) wireEvents(el *dom.Element, opts MountOptions) []dom.ListenerHandle {
	names := make([]string, 0, len(opts.Manifest.Events))
	for name := range opts.Manifest.Events {
		names = append(names, name)
	}
	sort.Strings(names)

	listeners := make([]dom.ListenerHandle, 0, len(names))
	for _, name := range names {
		event := name
		validator := opts.Manifest.Events[event]

		h := el.AddEventListener(event, func(ev dom.Event) {
			payload := ev.Detail

			if opts.DevMode && validator != nil {
				res := validator.SafeValidate(payload)
				if !res.OK {
					Logger().Warn("event payload failed validation",
						zap.String("id", opts.RemoteID),
						zap.String("event", event),
						zap.Error(res.Err))
					return
				}
			}

			if opts.OnEvent != nil {
				opts.OnEvent(event, payload)
			}
		})
		listeners = append(listeners, h)
	}
	return listeners
}

// renderFallback patches the container after a failed mount. The mount
// error still propagates; this only degrades the UI.
func (r *Runtime) renderFallback(opts MountOptions) {
	switch opts.Fallback.kind {
	case fallbackElement:
		if opts.Fallback.element != nil {
			opts.Container.ReplaceChildren(opts.Fallback.element)
		}
	case fallbackText:
		opts.Container.ReplaceText(opts.Fallback.text)
	case fallbackFunc:
		if el := opts.Fallback.produce(); el != nil {
			opts.Container.ReplaceChildren(el)
		}
	}
}
