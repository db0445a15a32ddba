package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindScriptFailed,
				Remote: "user-card",
				URL:    "https://cdn.example.com/user-card.wasm",
				Detail: "bundle failed to load",
			},
			contains: []string{"[load]", "script_failed", "user-card", "cdn.example.com", "bundle failed to load"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseMount,
				Kind:  KindInvalidInput,
			},
			contains: []string{"[mount]", "invalid_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseFetch,
				Kind:   KindFetchFailed,
				Detail: "bad status",
				Cause:  errors.New("connection refused"),
			},
			contains: []string{"[fetch]", "fetch_failed", "bad status", "caused by", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindScriptFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseLoad,
		Kind:   KindTimeout,
		Remote: "chart",
	}

	if !errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindTimeout}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindScriptFailed}) {
		t.Error("expected no match on different kind")
	}
	if errors.Is(err, &Error{Phase: PhaseMount, Kind: KindTimeout}) {
		t.Error("expected no match on different phase")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseMount, KindPropInvalid).
		Remote("user-card").
		Value(42).
		Cause(cause).
		Detail("prop %q rejected", "count").
		Build()

	if err.Phase != PhaseMount || err.Kind != KindPropInvalid {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Remote != "user-card" {
		t.Errorf("Remote = %q", err.Remote)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v", err.Value)
	}
	if !errors.Is(err, err) {
		t.Error("error does not match itself")
	}
	if !strings.Contains(err.Error(), `prop "count" rejected`) {
		t.Errorf("formatted detail missing: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap chain")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if e := NotRegistered("x"); e.Kind != KindNotRegistered || e.Remote != "x" {
		t.Errorf("NotRegistered: %+v", e)
	}

	e := LoadTimeout("chart", 250*time.Millisecond)
	if e.Kind != KindTimeout {
		t.Errorf("LoadTimeout kind: %s", e.Kind)
	}
	if !strings.Contains(e.Error(), "250ms") {
		t.Errorf("timeout bound missing from message: %q", e.Error())
	}

	cause := errors.New("404")
	if e := LoadFailed("chart", "https://x/y.wasm", cause); !errors.Is(e, cause) {
		t.Error("LoadFailed cause not wrapped")
	}
	if e := ManifestShape("missing %q section", "props"); !strings.Contains(e.Error(), `missing "props" section`) {
		t.Errorf("ManifestShape: %q", e.Error())
	}
}
