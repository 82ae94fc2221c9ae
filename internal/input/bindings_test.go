package input

import (
	"strings"
	"testing"

	"portfolio/internal/config"
	"portfolio/internal/world"
)

func TestDefaultBindings(t *testing.T) {
	b, warnings := NewBindings(config.Default().Keys)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	tcs := []struct {
		key  string
		want world.Action
	}{
		{"w", world.ActionForward},
		{"UP", world.ActionForward},
		{"s", world.ActionBackward},
		{"a", world.ActionTurnLeft},
		{"right", world.ActionTurnRight},
		{"e", world.ActionConfirm},
		{"Esc", world.ActionCancel},
	}
	for _, tc := range tcs {
		got, ok := b.Action(tc.key)
		if !ok || got != tc.want {
			t.Fatalf("Action(%q) = %v, %v; want %v", tc.key, got, ok, tc.want)
		}
	}
	if _, ok := b.Action("f13"); ok {
		t.Fatal("unbound key resolved")
	}
	if got := b.KeysFor(world.ActionForward); len(got) != 2 || got[0] != "up" || got[1] != "w" {
		t.Fatalf("KeysFor(forward) = %v", got)
	}
}

func TestBindingsWarnAndSkip(t *testing.T) {
	b, warnings := NewBindings(map[string][]string{
		"jump":    {"space"},
		"confirm": {"e", "f13"},
		"cancel":  {"e"},
	})
	if len(warnings) != 3 {
		t.Fatalf("warnings = %v; want 3", warnings)
	}
	joined := strings.Join(warnings, "\n")
	for _, want := range []string{`unknown action "jump"`, `unknown key "f13"`, `already bound`} {
		if !strings.Contains(joined, want) {
			t.Fatalf("warnings %q missing %q", joined, want)
		}
	}
	if a, _ := b.Action("e"); a != world.ActionCancel {
		t.Fatalf("e bound to %v; want cancel (sorted first)", a)
	}
	if keys := b.Keys(); len(keys) != 1 {
		t.Fatalf("Keys = %v", keys)
	}
}
