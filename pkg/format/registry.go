package format

import (
	"fmt"
	"io"
	"mime"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry knows the predefined formats plus custom ones registered at
// startup. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	custom map[string]Format
	order  []string
}

// NewRegistry returns a registry holding only the predefined formats.
func NewRegistry() *Registry {
	return &Registry{custom: make(map[string]Format)}
}

// Register adds a custom format. Names of predefined formats and names
// already registered are rejected.
func (r *Registry) Register(name, contentType string) (Format, error) {
	f := New(name, contentType)
	if f.name == "" || strings.ContainsAny(f.name, ". \t") {
		return Format{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, _, err := mime.ParseMediaType(f.contentType); err != nil {
		return Format{}, fmt.Errorf("%w: %q: %w", ErrInvalidContentType, contentType, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := byName[f.name]; ok {
		return Format{}, fmt.Errorf("%w: %s", ErrDuplicate, f.name)
	}
	if _, ok := r.custom[f.name]; ok {
		return Format{}, fmt.Errorf("%w: %s", ErrDuplicate, f.name)
	}
	r.custom[f.name] = f
	r.order = append(r.order, f.name)
	return f, nil
}

// LoadYAML registers every entry of a "name: content/type" mapping, in sorted
// name order. It stops at the first invalid entry.
func (r *Registry) LoadYAML(src io.Reader) error {
	var m map[string]string
	if err := yaml.NewDecoder(src).Decode(&m); err != nil && err != io.EOF {
		return fmt.Errorf("format: decode yaml: %w", err)
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := r.Register(name, m[name]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds a predefined or registered format by name, with the same
// normalization as the package level Lookup.
func (r *Registry) Lookup(name string) (Format, bool) {
	if f, ok := Lookup(name); ok {
		return f, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.custom[normalizeName(name)]
	return f, ok
}

// ByName is Lookup falling back to Unknown.
func (r *Registry) ByName(name string) Format {
	if f, ok := r.Lookup(name); ok {
		return f
	}
	return Unknown
}

// Custom returns the registered formats in registration order.
func (r *Registry) Custom() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.custom[name])
	}
	return out
}

// Resolve applies the predefined rules first. When none matches, the first
// registered format whose content type occurs in the token wins; otherwise
// def is returned as in the package level Resolve.
func (r *Registry) Resolve(def Format, token string) Format {
	if f, ok := match(token); ok {
		return f
	}
	if f, ok := r.matchCustom(token); ok {
		return f
	}
	return orHTML(def)
}

// ResolveAll is Resolve over several tokens; the first token that matches
// anything wins.
func (r *Registry) ResolveAll(def Format, tokens []string) Format {
	for _, t := range tokens {
		if f, ok := match(t); ok {
			return f
		}
		if f, ok := r.matchCustom(t); ok {
			return f
		}
	}
	return orHTML(def)
}

func (r *Registry) matchCustom(token string) (Format, bool) {
	t := strings.ToLower(token)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		f := r.custom[name]
		if strings.Contains(t, strings.ToLower(f.contentType)) {
			return f, true
		}
	}
	return Format{}, false
}
