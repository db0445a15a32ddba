package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/wippyai/remote-mount/dom"
	remounterrors "github.com/wippyai/remote-mount/errors"
)

// minimalWASM is an empty core module: magic + version 1, no sections.
var minimalWASM = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

// componentWASM carries the component-model version/layer header.
var componentWASM = []byte{0x00, 0x61, 0x73, 0x6D, 0x0D, 0x00, 0x01, 0x00}

func TestEngine_RunMinimalModule(t *testing.T) {
	ctx := context.Background()

	eng, err := New(ctx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close(ctx)

	if err := eng.Run(ctx, minimalWASM); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Re-running the same bundle must not collide on instance names.
	if err := eng.Run(ctx, minimalWASM); err != nil {
		t.Fatalf("second Run: %v", err)
	}
}

func TestEngine_RunGarbage(t *testing.T) {
	ctx := context.Background()

	eng, err := New(ctx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close(ctx)

	err = eng.Run(ctx, []byte("definitely not wasm"))
	if err == nil {
		t.Fatal("expected compile failure")
	}
	var me *remounterrors.Error
	if !errors.As(err, &me) || me.Kind != remounterrors.KindScriptFailed {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEngine_RejectsComponentBinary(t *testing.T) {
	ctx := context.Background()

	eng, err := New(ctx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close(ctx)

	if err := eng.Run(ctx, componentWASM); err == nil {
		t.Fatal("expected rejection of component-model binary")
	}
}

func TestEngine_SharedDefinitions(t *testing.T) {
	ctx := context.Background()
	defs := dom.NewDefinitions()

	eng, err := New(ctx, WithDefinitions(defs), WithMemoryLimitPages(256))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close(ctx)

	if eng.Definitions() != defs {
		t.Error("engine not bound to the supplied definitions")
	}
}

func TestIsComponentBinary(t *testing.T) {
	if isComponentBinary(minimalWASM) {
		t.Error("core module misclassified as component")
	}
	if !isComponentBinary(componentWASM) {
		t.Error("component binary not detected")
	}
	if isComponentBinary([]byte{0x00, 0x61}) {
		t.Error("short input misclassified")
	}
	if isComponentBinary([]byte("notwasm!")) {
		t.Error("wrong magic misclassified")
	}
}
