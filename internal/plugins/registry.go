package plugins

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps plugin identifiers to implementations. Plugins register
// themselves from init() into the default registry; tests build their own
// with NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	rules  map[string]Rule
	fixes  map[string]Fix
	axioms map[string]Axiom
}

func NewRegistry() *Registry {
	return &Registry{
		rules:  make(map[string]Rule),
		fixes:  make(map[string]Fix),
		axioms: make(map[string]Axiom),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry populated by plugin packages.
func Default() *Registry {
	return defaultRegistry
}

func RegisterRule(r Rule)   { defaultRegistry.RegisterRule(r) }
func RegisterFix(f Fix)     { defaultRegistry.RegisterFix(f) }
func RegisterAxiom(a Axiom) { defaultRegistry.RegisterAxiom(a) }

func (reg *Registry) RegisterRule(r Rule) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	id := r.Type()
	if id == "" {
		panic("rule type is empty")
	}
	if _, exists := reg.rules[id]; exists {
		panic(fmt.Sprintf("rule %s already registered", id))
	}
	reg.rules[id] = r
}

func (reg *Registry) RegisterFix(f Fix) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	id := f.Type()
	if id == "" {
		panic("fix type is empty")
	}
	if _, exists := reg.fixes[id]; exists {
		panic(fmt.Sprintf("fix %s already registered", id))
	}
	reg.fixes[id] = f
}

func (reg *Registry) RegisterAxiom(a Axiom) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	id := a.ID()
	if id == "" {
		panic("axiom id is empty")
	}
	if _, exists := reg.axioms[id]; exists {
		panic(fmt.Sprintf("axiom %s already registered", id))
	}
	reg.axioms[id] = a
}

func (reg *Registry) Rule(typ string) (Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rules[typ]
	return r, ok
}

func (reg *Registry) Fix(typ string) (Fix, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	f, ok := reg.fixes[typ]
	return f, ok
}

func (reg *Registry) Axiom(id string) (Axiom, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	a, ok := reg.axioms[id]
	return a, ok
}

// Rules returns every registered rule sorted by type.
func (reg *Registry) Rules() []Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Rule, 0, len(reg.rules))
	for _, r := range reg.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type() < out[j].Type() })
	return out
}

func (reg *Registry) Fixes() []Fix {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Fix, 0, len(reg.fixes))
	for _, f := range reg.fixes {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type() < out[j].Type() })
	return out
}

func (reg *Registry) Axioms() []Axiom {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Axiom, 0, len(reg.axioms))
	for _, a := range reg.axioms {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
