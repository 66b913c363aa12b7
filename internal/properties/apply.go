package properties

import (
	"fmt"
	"strconv"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
)

// Apply writes one property edit to a single component and flushes the
// document, so the component index picks the change up immediately.
func (m *Manager) Apply(comp *component.Component, key, value string) error {
	if err := m.applyValue(comp, key, value); err != nil {
		return err
	}
	m.state.SetModified(true)
	m.state.Document().Flush()
	return nil
}

// applyValue routes one edit: position keys move the element, presentation
// keys land as SVG attributes, everything else goes into metadata
// parameters. Color edits are announced so the canvas recolors.
func (m *Manager) applyValue(comp *component.Component, key, value string) error {
	switch key {
	case "x", "y":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		pos := comp.Position()
		if key == "x" {
			comp.SetPosition(f, pos.Y)
		} else {
			comp.SetPosition(pos.X, f)
		}
	case "fill", "stroke":
		comp.Element().SetAttr(key, value)
		m.state.Emit(app.EventColorChanged, app.ColorChangedData{
			ElementID: comp.ID(),
			Property:  key,
			Value:     value,
		})
	case "width", "height", "opacity", "font-size":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		comp.Element().SetAttr(key, value)
	case "transform", "visibility", "font-family":
		comp.Element().SetAttr(key, value)
	default:
		meta := comp.Metadata()
		if meta.Parameters == nil {
			meta.Parameters = make(map[string]interface{})
		}
		meta.Parameters[key] = coerce(value)
		comp.SetMetadata(meta)

		if key == "color" {
			comp.Element().SetAttr("fill", value)
			m.state.Emit(app.EventColorChanged, app.ColorChangedData{
				ElementID: comp.ID(),
				Property:  key,
				Value:     value,
			})
		}
	}
	return nil
}

// BatchApply writes one property to every selected component and announces
// the batch, so dependent panels refresh once instead of per component.
func (m *Manager) BatchApply(key, value string) error {
	selected := m.core.Selected()
	if len(selected) == 0 {
		return fmt.Errorf("nothing selected")
	}

	ids := make([]string, 0, len(selected))
	for _, comp := range selected {
		if err := m.applyValue(comp, key, value); err != nil {
			return fmt.Errorf("apply %s to %s: %w", key, comp.ID(), err)
		}
		ids = append(ids, comp.ID())
	}
	m.state.SetModified(true)

	m.state.Emit(app.EventComponentsBatchUpdated, app.BatchUpdateData{
		ComponentIDs: ids,
		Property:     key,
		Value:        value,
	})
	m.state.Document().Flush()
	return nil
}

// ApplyCanvas edits the document itself: its size or background.
func (m *Manager) ApplyCanvas(key, value string) error {
	root := m.state.Document().Root()
	switch key {
	case "width", "height":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid canvas %s: %w", key, err)
		}
		root.SetAttr(key, value)
	case "background":
		root.SetAttr("data-background", value)
		root.SetAttr("style", "background-color: "+value)
	default:
		return fmt.Errorf("unknown canvas property %q", key)
	}
	m.state.SetModified(true)
	m.state.Document().Flush()
	return nil
}

// coerce interprets an edit box value as bool or number when it reads as
// one, else keeps the string.
func coerce(s string) interface{} {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
