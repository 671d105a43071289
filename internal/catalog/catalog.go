// Package catalog reads component type catalogs from YAML.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type file struct {
	ComponentTypes []*domain.ComponentType `yaml:"component_types"`
}

// Parse decodes a catalog document. Entries must have a name and a positive
// default replacement distance; names must be unique ignoring case.
func Parse(r io.Reader) ([]*domain.ComponentType, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.ComponentTypes))
	for i, t := range f.ComponentTypes {
		if t == nil || strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("entry %d: name is required: %w", i, domain.ErrInvalidInput)
		}
		t.Name = strings.TrimSpace(t.Name)
		if t.DefaultReplacementDistance <= 0 {
			return nil, fmt.Errorf("entry %q: default_replacement_distance must be positive: %w", t.Name, domain.ErrInvalidInput)
		}
		key := strings.ToLower(t.Name)
		if seen[key] {
			return nil, fmt.Errorf("entry %q: duplicate name: %w", t.Name, domain.ErrInvalidInput)
		}
		seen[key] = true
	}
	return f.ComponentTypes, nil
}

// Default returns the built-in catalog.
func Default() []*domain.ComponentType {
	types, err := Parse(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return types
}
