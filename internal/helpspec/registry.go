package helpspec

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateCommand reports a name registered twice. This is a
// misconfiguration and fatal at startup.
var ErrDuplicateCommand = errors.New("duplicate command")

// ErrUnknownCommand reports a lookup for a name that was never registered.
var ErrUnknownCommand = errors.New("unknown command")

// Registry maps command names to their help contracts. It is populated once
// at startup and read-only afterwards, so concurrent lookups are safe.
type Registry struct {
	specs map[string]CommandSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]CommandSpec)}
}

// Register validates spec and adds it under its name.
func (r *Registry) Register(spec CommandSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if _, ok := r.specs[spec.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, spec.Name)
	}
	r.specs[spec.Name] = spec
	return nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (CommandSpec, error) {
	spec, ok := r.specs[name]
	if !ok {
		return CommandSpec{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return spec, nil
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
