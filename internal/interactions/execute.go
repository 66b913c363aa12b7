package interactions

import (
	"log"
	"strconv"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
)

// Trigger fires event on the component with sourceID, executing every
// matching rule in order. A bad rule is logged and skipped; one broken rule
// never blocks the rest.
func (m *Manager) Trigger(sourceID, event string) {
	el := m.state.Document().ByID(sourceID)
	if el == nil {
		return
	}
	source := component.FromElement(el)

	for _, rule := range source.Metadata().Interactions {
		if rule.Event != event {
			continue
		}
		if err := m.execute(rule); err != nil {
			log.Printf("interaction on %s: %v", sourceID, err)
		}
	}
	m.state.Document().Flush()
}

func (m *Manager) execute(rule component.InteractionRule) error {
	el := m.state.Document().ByID(rule.Target)
	if el == nil {
		return errTargetGone(rule.Target)
	}
	target := component.FromElement(el)
	meta := target.Metadata()
	if meta.Parameters == nil {
		meta.Parameters = make(map[string]interface{})
	}

	current := meta.Parameters[rule.Property]
	var next interface{}

	switch rule.Action {
	case ActionSet:
		next = parseValue(rule.Value)
	case ActionToggle:
		next = !truthy(current)
	case ActionIncrement:
		next = numeric(current) + step(rule.Value)
	case ActionDecrement:
		next = numeric(current) - step(rule.Value)
	default:
		return errUnknownAction(rule.Action)
	}

	meta.Parameters[rule.Property] = next
	target.SetMetadata(meta)

	if isColorProperty(rule.Property) {
		if s, ok := next.(string); ok {
			// Mirror onto the element so the canvas recolors without a
			// metadata round-trip.
			el.SetAttr("fill", s)
			m.state.Emit(app.EventColorChanged, app.ColorChangedData{
				ElementID: rule.Target,
				Property:  rule.Property,
				Value:     s,
			})
		}
	}
	m.state.SetModified(true)
	return nil
}

func errTargetGone(id string) error   { return &ruleError{"target " + id + " not in document"} }
func errUnknownAction(a string) error { return &ruleError{"unknown action " + a} }

type ruleError struct{ msg string }

func (e *ruleError) Error() string { return e.msg }

// parseValue interprets a rule value string as bool or number when it reads
// as one, else keeps it as a string.
func parseValue(s string) interface{} {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		return err == nil && b
	case float64:
		return t != 0
	}
	return false
}

func numeric(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}

// step parses the rule value as the increment step, defaulting to 1.
func step(value string) float64 {
	if value == "" {
		return 1
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 1
	}
	return f
}
