package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/photogrid/internal/config"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal   = "global"
	scopeGrid     = "grid"
	scopeMoving   = "moving"
	scopeLightbox = "lightbox"
	scopeJump     = "jump"
)

const (
	actionQuit     Action = "quit"
	actionNavigate Action = "navigate"
	actionUp       Action = "up"
	actionDown     Action = "down"
	actionLeft     Action = "left"
	actionRight    Action = "right"
	actionOpen     Action = "open"
	actionPick     Action = "pick"
	actionDrop     Action = "drop"
	actionCancel   Action = "cancel"
	actionClose    Action = "close"
	actionNext     Action = "next"
	actionPrev     Action = "prev"
	actionJump     Action = "jump"
	actionSelect   Action = "select"
	actionFirst    Action = "first"
	actionLast     Action = "last"
	actionHelp     Action = "help"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}
	// Arrow movement shares one help entry; the per-direction bindings carry
	// no help text and are hidden from the footer.
	arrows := func(scope string) {
		reg(scope, actionNavigate, []string{"←↑↓→"}, "move")
		reg(scope, actionUp, []string{"up", "k"}, "")
		reg(scope, actionDown, []string{"down", "j"}, "")
		reg(scope, actionLeft, []string{"left", "h"}, "")
		reg(scope, actionRight, []string{"right", "l"}, "")
	}

	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeGlobal, actionHelp, []string{"?"}, "help")

	arrows(scopeGrid)
	reg(scopeGrid, actionOpen, []string{"enter"}, "view")
	reg(scopeGrid, actionPick, []string{"space"}, "pick up")
	reg(scopeGrid, actionJump, []string{"/"}, "jump")
	reg(scopeGrid, actionFirst, []string{"g", "home"}, "first")
	reg(scopeGrid, actionLast, []string{"G", "end"}, "last")
	reg(scopeGrid, actionQuit, []string{"q", "ctrl+c"}, "quit")

	arrows(scopeMoving)
	reg(scopeMoving, actionDrop, []string{"space", "enter"}, "drop")
	reg(scopeMoving, actionCancel, []string{"esc"}, "cancel")

	reg(scopeLightbox, actionNext, []string{"right", "l", "n"}, "next")
	reg(scopeLightbox, actionPrev, []string{"left", "h", "p"}, "prev")
	reg(scopeLightbox, actionClose, []string{"esc", "q"}, "close")

	reg(scopeJump, actionSelect, []string{"enter"}, "go")
	reg(scopeJump, actionCancel, []string{"esc"}, "cancel")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, falling back to the global
// scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings returns footer entries for scope, skipping bindings without
// help text.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Keep a single uppercase rune so g and G stay distinct.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	s = strings.ReplaceAll(s, "escape", "esc")
	return s
}

// ApplyOverrides rebinds actions from configuration. Every override must name
// a known scope and action, and the result must not bind one key to two
// actions in the same scope.
func (r *KeyRegistry) ApplyOverrides(items []config.KeyOverride) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("key override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("key override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("key override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("key override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("key override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("key override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	scopes := make([]string, 0, len(r.bindingsByScope))
	for scope := range r.bindingsByScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	for _, scope := range scopes {
		seen := make(map[string]Action)
		for _, b := range r.bindingsByScope[scope] {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("key override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
