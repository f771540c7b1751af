package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Key identifies a platform schema: the integration domain plus the
// platform literal. All three template schemas share Platform "template".
type Key struct {
	Domain   string
	Platform string
}

// String renders the key the way Home Assistant names platforms,
// e.g. "binary_sensor.template".
func (k Key) String() string {
	return k.Domain + "." + k.Platform
}

// SchemaNotFoundError is returned by Lookup for an unregistered key.
type SchemaNotFoundError struct {
	Key   Key
	Known []Key
}

func (e *SchemaNotFoundError) Error() string {
	known := make([]string, len(e.Known))
	for i, k := range e.Known {
		known[i] = k.String()
	}

	return fmt.Sprintf("no schema registered for platform %q in domain %q (known: %s)",
		e.Key.Platform, e.Key.Domain, strings.Join(known, ", "))
}

// Registry maps keys to platform schemas. It is immutable once built.
type Registry struct {
	schemas map[Key]*PlatformSchema
	keys    []Key
}

// NewRegistry builds a registry; registering the same key twice is an error.
func NewRegistry(schemas ...*PlatformSchema) (*Registry, error) {
	r := &Registry{schemas: make(map[Key]*PlatformSchema, len(schemas))}

	for _, s := range schemas {
		if s == nil {
			return nil, fmt.Errorf("nil platform schema")
		}

		k := s.Key()
		if _, dup := r.schemas[k]; dup {
			return nil, fmt.Errorf("duplicate platform schema %s", k)
		}

		r.schemas[k] = s
		r.keys = append(r.keys, k)
	}

	slices.SortFunc(r.keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})

	return r, nil
}

// Lookup returns the schema for domain and platform, or a *SchemaNotFoundError.
func (r *Registry) Lookup(domain, platform string) (*PlatformSchema, error) {
	k := Key{Domain: domain, Platform: platform}

	if s, ok := r.schemas[k]; ok {
		return s, nil
	}

	return nil, &SchemaNotFoundError{Key: k, Known: r.Keys()}
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []Key {
	return slices.Clone(r.keys)
}

// Platforms returns the platform literals registered for domain, sorted.
func (r *Registry) Platforms(domain string) []string {
	var out []string

	for _, k := range r.keys {
		if k.Domain == domain {
			out = append(out, k.Platform)
		}
	}

	return out
}

// Domains returns the distinct domains with at least one schema, sorted.
func (r *Registry) Domains() []string {
	var out []string

	for _, k := range r.keys {
		if !slices.Contains(out, k.Domain) {
			out = append(out, k.Domain)
		}
	}

	return out
}

var defaultRegistry = mustRegistry(
	AlarmControlPanelPlatform,
	BinarySensorPlatform,
	SensorPlatform,
)

// Default returns the process-wide registry of the template platforms.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(schemas ...*PlatformSchema) *Registry {
	r, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}

	return r
}
