// Package remount provides a runtime for loading and mounting
// independently-deployed remote UI components into a host application.
//
// Remotes are opaque component bundles identified by a host-chosen id and
// fetched from a URL. The runtime deduplicates concurrent loads per URL,
// bounds every load with a caller-supplied timeout, applies typed props and
// host capabilities to the mounted element, wires schema-gated event
// listeners, and degrades to a fallback UI when a mount fails.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	remount/             Root package with the Fetcher and Runner interfaces
//	├── runtime/         Registry, loader, and mounter for remote components
//	├── dom/             Element, container, and tag-definition model
//	├── schema/          Validation gate interfaces and cty-backed specs
//	├── manifest/        Component manifest documents and version checks
//	├── fetch/           HTTP bundle fetching with integrity verification
//	├── engine/          wazero-backed bundle runner
//	├── typegen/         Manifest-to-Go type declaration generator
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Register a remote, then mount it into a container:
//
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	rt.RegisterRemote(runtime.Registration{
//	    ID:  "user-card",
//	    URL: "https://cdn.example.com/user-card.wasm",
//	})
//
//	container := dom.NewContainer()
//	handle, err := rt.Mount(ctx, runtime.MountOptions{
//	    RemoteID:  "user-card",
//	    TagName:   "user-card",
//	    Container: container,
//	    Props:     runtime.Props{"userId": runtime.StringProp("123")},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer handle.Unmount()
//
// # Thread Safety
//
// Runtime is safe for concurrent use. Elements and containers are NOT
// thread-safe; a mounted element must be driven by a single goroutine, or
// access must be synchronized by the host.
package remount
