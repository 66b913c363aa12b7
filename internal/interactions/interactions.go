// Package interactions manages the event-action rules stored in component
// metadata: what happens on the canvas when a component is clicked, toggled,
// or changed.
package interactions

import (
	"fmt"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/mapper"
)

// Actions a rule can apply to a target property.
const (
	ActionSet       = "set"
	ActionToggle    = "toggle"
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// Manager edits and executes interaction rules. Rules live inside each
// component's data-metadata attribute; the manager is stateless apart from
// its collaborators.
type Manager struct {
	state *app.State
	index *mapper.Mapper
}

// NewManager creates an interactions manager over the shared state and the
// component index.
func NewManager(state *app.State, index *mapper.Mapper) *Manager {
	return &Manager{state: state, index: index}
}

// Rules returns comp's interaction rules. The slice is the metadata copy;
// mutate through AddRule/UpdateRule/RemoveRule.
func (m *Manager) Rules(comp *component.Component) []component.InteractionRule {
	return comp.Metadata().Interactions
}

// AddRule validates and appends a rule to comp's metadata.
func (m *Manager) AddRule(comp *component.Component, rule component.InteractionRule) error {
	if err := m.validate(comp, rule); err != nil {
		return err
	}
	meta := comp.Metadata()
	meta.Interactions = append(meta.Interactions, rule)
	comp.SetMetadata(meta)
	m.state.SetModified(true)
	m.state.Document().Flush()
	return nil
}

// UpdateRule replaces the rule at index i.
func (m *Manager) UpdateRule(comp *component.Component, i int, rule component.InteractionRule) error {
	meta := comp.Metadata()
	if i < 0 || i >= len(meta.Interactions) {
		return fmt.Errorf("no interaction rule at index %d", i)
	}
	if err := m.validate(comp, rule); err != nil {
		return err
	}
	meta.Interactions[i] = rule
	comp.SetMetadata(meta)
	m.state.SetModified(true)
	m.state.Document().Flush()
	return nil
}

// RemoveRule deletes the rule at index i.
func (m *Manager) RemoveRule(comp *component.Component, i int) error {
	meta := comp.Metadata()
	if i < 0 || i >= len(meta.Interactions) {
		return fmt.Errorf("no interaction rule at index %d", i)
	}
	meta.Interactions = append(meta.Interactions[:i], meta.Interactions[i+1:]...)
	comp.SetMetadata(meta)
	m.state.SetModified(true)
	m.state.Document().Flush()
	return nil
}

func (m *Manager) validate(comp *component.Component, rule component.InteractionRule) error {
	if rule.Event == "" {
		return fmt.Errorf("interaction rule needs an event")
	}
	if !contains(mapper.EventsForType(comp.Type()), rule.Event) {
		return fmt.Errorf("component type %q does not emit %q", comp.Type(), rule.Event)
	}
	switch rule.Action {
	case ActionSet, ActionToggle, ActionIncrement, ActionDecrement:
	default:
		return fmt.Errorf("unknown action %q", rule.Action)
	}
	if rule.Target == "" {
		return fmt.Errorf("interaction rule needs a target")
	}
	if rule.Property == "" {
		return fmt.Errorf("interaction rule needs a property")
	}
	if rule.Action == ActionSet && rule.Value == "" {
		return fmt.Errorf("set action needs a value")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
