// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/problem"
)

// Factory constructs one problem instance. Factories run once, inside Build.
type Factory func() (problem.Problem, error)

// Entry is one registered problem together with its lookup key.
type Entry struct {
	Name    string
	Problem problem.Problem
}

type pending struct {
	name    string
	factory Factory
}

// Builder collects factories in registration order. It is single-threaded
// and intended to be filled during program start-up.
type Builder struct {
	pending []pending
	names   map[string]struct{}
	built   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]struct{})}
}

// Register queues a factory under name.
//
// Errors: ErrEmptyName, ErrNilFactory, ErrDuplicateName, ErrBuilt.
func (b *Builder) Register(name string, f Factory) error {
	switch {
	case b.built:
		return fmt.Errorf("Register(%q): %w", name, ErrBuilt)
	case name == "":
		return fmt.Errorf("Register: %w", ErrEmptyName)
	case f == nil:
		return fmt.Errorf("Register(%q): %w", name, ErrNilFactory)
	}
	if _, dup := b.names[name]; dup {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateName)
	}
	b.names[name] = struct{}{}
	b.pending = append(b.pending, pending{name: name, factory: f})

	return nil
}

// MustRegister is Register for static tables whose names are known to be
// unique; it panics on error.
func (b *Builder) MustRegister(name string, f Factory) {
	if err := b.Register(name, f); err != nil {
		panic(err)
	}
}

// Build runs every factory in registration order and freezes the result.
// The first failing factory aborts the build; no partial Registry is returned.
func (b *Builder) Build() (*Registry, error) {
	if b.built {
		return nil, fmt.Errorf("Build: %w", ErrBuilt)
	}
	r := &Registry{
		entries: make([]Entry, 0, len(b.pending)),
		byName:  make(map[string]int, len(b.pending)),
	}
	for _, p := range b.pending {
		inst, err := p.factory()
		if err != nil {
			return nil, fmt.Errorf("Build: %q: %w", p.name, err)
		}
		if inst == nil {
			return nil, fmt.Errorf("Build: %q returned nil: %w", p.name, ErrNilFactory)
		}
		r.byName[p.name] = len(r.entries)
		r.entries = append(r.entries, Entry{Name: p.name, Problem: inst})
	}
	b.built = true

	return r, nil
}

// Registry is an immutable, ordered name → Problem table.
// All methods are safe for concurrent use.
type Registry struct {
	entries []Entry
	byName  map[string]int
}

// Len returns the number of registered problems.
func (r *Registry) Len() int { return len(r.entries) }

// Lookup returns the problem registered under name, or ErrNotFound.
func (r *Registry) Lookup(name string) (problem.Problem, error) {
	i, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrNotFound)
	}

	return r.entries[i].Problem, nil
}

// All returns the entries in registration order. The slice is a copy.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name
	}

	return out
}

// Index returns the registration position of name, or -1.
func (r *Registry) Index(name string) int {
	if i, ok := r.byName[name]; ok {
		return i
	}

	return -1
}
