package interactions

import (
	"sort"

	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/mapper"
)

// The rule editor builds its dropdowns in a cascade: pick an event the source
// emits, then a target, then one of the target's properties, then an action
// that makes sense for that property. Each level's options depend on the
// previous pick.

// EventOptions lists the events comp can emit.
func (m *Manager) EventOptions(comp *component.Component) []string {
	return mapper.EventsForType(comp.Type())
}

// TargetOptions lists every other component as a candidate target.
func (m *Manager) TargetOptions(comp *component.Component) []mapper.Target {
	return m.index.Targets(comp.ID())
}

// PropertyOptions lists the writable properties of the target component: the
// parameters the index mapped for it, with the per-type defaults as a
// fallback for components that expose nothing yet.
func (m *Manager) PropertyOptions(targetID string) []string {
	entry := m.index.Component(targetID)
	if entry == nil {
		return nil
	}
	var props []string
	for key, p := range entry.Parameters {
		if p.Writable {
			props = append(props, key)
		}
	}
	if len(props) == 0 {
		return WritableProperties(entry.Type)
	}
	sort.Strings(props)
	return props
}

// ActionOptions lists the actions that apply to the target's property, driven
// by the mapped parameter type: boolean properties toggle, numeric ones step,
// everything accepts set. A property the index has not mapped falls back to
// name heuristics.
func (m *Manager) ActionOptions(targetID, property string) []string {
	if entry := m.index.Component(targetID); entry != nil {
		if p, ok := entry.Parameters[property]; ok {
			switch p.Type {
			case mapper.TypeBoolean:
				return []string{ActionSet, ActionToggle}
			case mapper.TypeNumber:
				return []string{ActionSet, ActionIncrement, ActionDecrement}
			default:
				return []string{ActionSet}
			}
		}
	}
	switch {
	case isBoolProperty(property):
		return []string{ActionSet, ActionToggle}
	case isNumericProperty(property):
		return []string{ActionSet, ActionIncrement, ActionDecrement}
	default:
		return []string{ActionSet}
	}
}

// WritableProperties lists the properties a component type exposes to
// interaction rules.
func WritableProperties(componentType string) []string {
	switch componentType {
	case "led":
		return []string{"color", "on", "blink"}
	case "motor", "pump":
		return []string{"speed", "running", "color"}
	case "valve":
		return []string{"open", "color"}
	case "display":
		return []string{"text", "value", "color"}
	case "slider":
		return []string{"value", "min", "max"}
	case "gauge", "counter", "sensor":
		return []string{"value", "color"}
	case "button":
		return []string{"label", "color"}
	case "switch":
		return []string{"state", "color"}
	default:
		return []string{"color"}
	}
}

func isBoolProperty(property string) bool {
	switch property {
	case "on", "blink", "running", "open", "state":
		return true
	}
	return false
}

func isNumericProperty(property string) bool {
	switch property {
	case "value", "speed", "min", "max":
		return true
	}
	return false
}

func isColorProperty(property string) bool {
	switch property {
	case "color", "fill", "stroke":
		return true
	}
	return false
}
