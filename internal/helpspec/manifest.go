package helpspec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML document declaring every command's help contract.
type Manifest struct {
	Commands []CommandSpec `yaml:"commands"`
}

// ParseManifest decodes a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing help manifest: %w", err)
	}
	if len(m.Commands) == 0 {
		return nil, errors.New("help manifest declares no commands")
	}
	return &m, nil
}

// BuildRegistry parses data and registers every declared command.
func BuildRegistry(data []byte) (*Registry, error) {
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, spec := range m.Commands {
		if err := reg.Register(spec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// MustBuildRegistry is BuildRegistry for embedded manifests, where a bad
// manifest is a programmer error.
func MustBuildRegistry(data []byte) *Registry {
	reg, err := BuildRegistry(data)
	if err != nil {
		panic(err)
	}
	return reg
}
