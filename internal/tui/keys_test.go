package tui

import (
	"strings"
	"testing"

	"github.com/jask/photogrid/internal/config"
)

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	open := r.Lookup("enter", scopeGrid)
	if open == nil || open.Action != actionOpen {
		t.Fatalf("enter in grid = %+v, want %q", open, actionOpen)
	}
	drop := r.Lookup("enter", scopeMoving)
	if drop == nil || drop.Action != actionDrop {
		t.Fatalf("enter in moving = %+v, want %q", drop, actionDrop)
	}

	// q closes the lightbox instead of quitting.
	if b := r.Lookup("q", scopeLightbox); b == nil || b.Action != actionClose {
		t.Fatalf("q in lightbox = %+v, want %q", b, actionClose)
	}
	// Moving scope falls back to the global quit binding.
	if b := r.Lookup("q", scopeMoving); b == nil || b.Action != actionQuit {
		t.Fatalf("q in moving = %+v, want %q", b, actionQuit)
	}
	if b := r.Lookup(" ", scopeGrid); b == nil || b.Action != actionPick {
		t.Fatalf("space in grid = %+v, want %q", b, actionPick)
	}
	if b := r.Lookup("G", scopeGrid); b == nil || b.Action != actionLast {
		t.Fatalf("G in grid = %+v, want %q", b, actionLast)
	}
	if b := r.Lookup("g", scopeGrid); b == nil || b.Action != actionFirst {
		t.Fatalf("g in grid = %+v, want %q", b, actionFirst)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionOpen, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionPick, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionPick, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionOpen {
		t.Fatalf("scope_a bindings = %+v", a)
	}
	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionPick {
		t.Fatalf("scope_b bindings = %+v", b)
	}
}

func TestKeyRegistryHelpOrder(t *testing.T) {
	r := NewKeyRegistry()

	var got []string
	for _, b := range r.HelpBindings(scopeGrid) {
		got = append(got, b.Help().Key)
	}
	want := []string{"←↑↓→", "enter", "space", "/", "g", "G", "q"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("grid help keys = %v, want %v", got, want)
	}
}

func TestKeyRegistryApplyOverrides(t *testing.T) {
	r := NewKeyRegistry()
	err := r.ApplyOverrides([]config.KeyOverride{
		{Scope: scopeGrid, Action: string(actionOpen), Keys: []string{"o", "Return"}},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if b := r.Lookup("o", scopeGrid); b == nil || b.Action != actionOpen {
		t.Fatalf("o in grid = %+v, want %q", b, actionOpen)
	}
	if b := r.Lookup("enter", scopeGrid); b == nil || b.Action != actionOpen {
		t.Fatalf("enter in grid = %+v, want %q", b, actionOpen)
	}
}

func TestKeyRegistryApplyOverridesErrors(t *testing.T) {
	tests := []struct {
		name    string
		items   []config.KeyOverride
		wantErr string
	}{
		{"missing scope", []config.KeyOverride{{Action: "open", Keys: []string{"o"}}}, "scope is required"},
		{"unknown scope", []config.KeyOverride{{Scope: "nope", Action: "open", Keys: []string{"o"}}}, "unknown scope"},
		{"unknown action", []config.KeyOverride{{Scope: scopeGrid, Action: "fly", Keys: []string{"o"}}}, "unknown action"},
		{"no keys", []config.KeyOverride{{Scope: scopeGrid, Action: "open"}}, "keys are required"},
		{"conflict", []config.KeyOverride{{Scope: scopeGrid, Action: "open", Keys: []string{"space"}}}, "conflict"},
		{"duplicate", []config.KeyOverride{
			{Scope: scopeGrid, Action: "open", Keys: []string{"o"}},
			{Scope: scopeGrid, Action: "open", Keys: []string{"v"}},
		}, "duplicated"},
	}
	for _, tt := range tests {
		err := NewKeyRegistry().ApplyOverrides(tt.items)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: err = %v, want substring %q", tt.name, err, tt.wantErr)
		}
	}
}
