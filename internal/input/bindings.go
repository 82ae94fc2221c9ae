package input

import (
	"fmt"
	"sort"
	"strings"

	"portfolio/internal/world"
)

// KeyNames are the key names a binding may use. Each host maps them onto its own key
// codes; any other name is reported and ignored.
var KeyNames = []string{
	"w", "a", "s", "d", "e", "q", "f", "space", "enter", "escape", "backspace",
	"up", "down", "left", "right",
}

func knownKey(name string) bool {
	for _, k := range KeyNames {
		if k == name {
			return true
		}
	}
	return false
}

// Bindings resolves key names to actions. A key maps to at most one action.
type Bindings struct {
	byKey map[string]world.Action
}

// NewBindings builds bindings from an action-name -> key-names table. Unknown action or
// key names and keys bound twice are skipped and returned as warnings.
func NewBindings(table map[string][]string) (*Bindings, []string) {
	b := &Bindings{byKey: make(map[string]world.Action)}
	var warnings []string

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := world.ParseAction(name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown action %q", name))
			continue
		}
		for _, key := range table[name] {
			key = normalize(key)
			if !knownKey(key) {
				warnings = append(warnings, fmt.Sprintf("unknown key %q for %s", key, action))
				continue
			}
			if prev, dup := b.byKey[key]; dup {
				warnings = append(warnings, fmt.Sprintf("key %q already bound to %s", key, prev))
				continue
			}
			b.byKey[key] = action
		}
	}
	return b, warnings
}

// Action returns the action bound to key.
func (b *Bindings) Action(key string) (world.Action, bool) {
	a, ok := b.byKey[normalize(key)]
	return a, ok
}

// Keys returns every bound key name, sorted.
func (b *Bindings) Keys() []string {
	out := make([]string, 0, len(b.byKey))
	for k := range b.byKey {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KeysFor returns the keys bound to action, sorted.
func (b *Bindings) KeysFor(action world.Action) []string {
	var out []string
	for k, a := range b.byKey {
		if a == action {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "esc":
		return "escape"
	case "return":
		return "enter"
	}
	return key
}
