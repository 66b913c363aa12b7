// Package library holds the palette of component definitions: the SVG
// template and default parameters each component type is created from.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
)

// Definition describes one placeable component type.
type Definition struct {
	Type       string                 `json:"type"`
	Label      string                 `json:"label"`
	Template   string                 `json:"template"` // SVG fragment, no data-id
	Width      float64                `json:"width"`
	Height     float64                `json:"height"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// Library is the set of definitions, keyed by type and ordered for display.
type Library struct {
	defs  map[string]*Definition
	order []string
}

// New returns a library preloaded with the builtin definitions.
func New() *Library {
	l := &Library{defs: make(map[string]*Definition)}
	for i := range builtinDefinitions {
		l.add(&builtinDefinitions[i])
	}
	return l
}

func (l *Library) add(def *Definition) {
	if _, exists := l.defs[def.Type]; !exists {
		l.order = append(l.order, def.Type)
	}
	l.defs[def.Type] = def
}

// Definition returns the definition for a type, or nil.
func (l *Library) Definition(componentType string) *Definition {
	return l.defs[componentType]
}

// Definitions returns all definitions in display order.
func (l *Library) Definitions() []*Definition {
	out := make([]*Definition, 0, len(l.order))
	for _, t := range l.order {
		out = append(out, l.defs[t])
	}
	return out
}

// LoadDir merges user definitions from every .json file in dir. User
// definitions override builtins of the same type.
func (l *Library) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read library dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := l.loadFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func (l *Library) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return err
	}
	for i := range defs {
		def := &defs[i]
		if def.Type == "" || def.Template == "" {
			return fmt.Errorf("definition %d needs type and template", i)
		}
		l.add(def)
	}
	return nil
}

// Instantiate builds a fresh component from a definition at the given
// position, with a new id and the definition's default parameters baked into
// its metadata. The element is detached; the caller appends it.
func (l *Library) Instantiate(componentType string, x, y float64) (*component.Component, error) {
	def := l.defs[componentType]
	if def == nil {
		return nil, fmt.Errorf("no definition for component type %q", componentType)
	}

	el, err := svgdom.ParseFragment(def.Template)
	if err != nil {
		return nil, fmt.Errorf("template for %s: %w", componentType, err)
	}

	comp := component.FromElement(el)
	comp.SetID(component.NewID(def.Type))

	meta := component.Metadata{Type: def.Type}
	if len(def.Parameters) > 0 {
		meta.Parameters = make(map[string]interface{}, len(def.Parameters))
		for k, v := range def.Parameters {
			meta.Parameters[k] = v
		}
	}
	comp.SetMetadata(meta)
	comp.SetPosition(x, y)
	return comp, nil
}
