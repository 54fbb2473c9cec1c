// Package team provides the registry of organizational teams that goal
// documents may ask things of. The registry is loaded once at startup from a
// YAML file and is read-only afterwards, so concurrent lookups need no
// locking.
package team

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Team is one entry in the registry.
type Team struct {
	// Name is the short name used in goal documents (the map key in the
	// registry file), e.g. "compiler".
	Name string `yaml:"-"`

	DisplayName string `yaml:"display_name"`
	URL         string `yaml:"url,omitempty"`
}

// Registry maps short team names to team records.
type Registry struct {
	teams map[string]*Team
	names []string // sorted
}

type registryFile struct {
	Teams map[string]*Team `yaml:"teams"`
}

// Load reads a registry from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading team registry: %w", err)
	}
	reg, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing team registry %s: %w", path, err)
	}
	return reg, nil
}

// LoadBytes parses a registry from YAML content.
func LoadBytes(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("team registry lists no teams")
	}
	return New(file.Teams), nil
}

// New builds a registry from a name → team map. Each team's Name field is
// set from its map key.
func New(teams map[string]*Team) *Registry {
	reg := &Registry{teams: make(map[string]*Team, len(teams))}
	for name, t := range teams {
		if t == nil {
			t = &Team{}
		}
		t.Name = name
		reg.teams[name] = t
		reg.names = append(reg.names, name)
	}
	sort.Strings(reg.names)
	return reg
}

// Lookup returns the team with the given short name, if any.
func (r *Registry) Lookup(name string) (*Team, bool) {
	t, ok := r.teams[name]
	return t, ok
}

// Names returns all short team names in sorted order.
func (r *Registry) Names() []string {
	return r.names
}
