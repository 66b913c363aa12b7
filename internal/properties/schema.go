// Package properties builds the property panel's model from the current
// selection and applies edits back to the document.
package properties

import "github.com/digitaltwin-run/pwa-sub000/internal/component"

// FieldKind selects the widget used to edit a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindBool
	KindColor
)

// Field describes one editable property of a component type.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind
}

// SchemaForType returns the editable fields of a component type. Unknown
// types still expose a color so every component responds to recoloring.
func SchemaForType(componentType string) []Field {
	switch componentType {
	case "led":
		return []Field{
			{Key: "color", Label: "Color", Kind: KindColor},
			{Key: "on", Label: "On", Kind: KindBool},
			{Key: "blink", Label: "Blink", Kind: KindBool},
		}
	case "motor", "pump":
		return []Field{
			{Key: "speed", Label: "Speed", Kind: KindNumber},
			{Key: "running", Label: "Running", Kind: KindBool},
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	case "valve":
		return []Field{
			{Key: "open", Label: "Open", Kind: KindBool},
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	case "display":
		return []Field{
			{Key: "text", Label: "Text", Kind: KindText},
			{Key: "value", Label: "Value", Kind: KindNumber},
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	case "slider":
		return []Field{
			{Key: "value", Label: "Value", Kind: KindNumber},
			{Key: "min", Label: "Min", Kind: KindNumber},
			{Key: "max", Label: "Max", Kind: KindNumber},
		}
	case "gauge", "counter", "sensor":
		return []Field{
			{Key: "value", Label: "Value", Kind: KindNumber},
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	case "button":
		return []Field{
			{Key: "label", Label: "Label", Kind: KindText},
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	case "switch":
		return []Field{
			{Key: "state", Label: "State", Kind: KindBool},
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	default:
		return []Field{
			{Key: "color", Label: "Color", Kind: KindColor},
		}
	}
}

// commonPropertyKeys is the fixed candidate list for multi-selection editing.
// Only keys every selected component actually carries survive the
// intersection, so the batch form never offers an edit that would silently
// skip part of the selection.
var commonPropertyKeys = []Field{
	{Key: "transform", Label: "Transform", Kind: KindText},
	{Key: "scale", Label: "Scale", Kind: KindNumber},
	{Key: "zoom", Label: "Zoom", Kind: KindNumber},
	{Key: "fill", Label: "Fill", Kind: KindColor},
	{Key: "stroke", Label: "Stroke", Kind: KindColor},
	{Key: "color", Label: "Color", Kind: KindColor},
	{Key: "x", Label: "X", Kind: KindNumber},
	{Key: "y", Label: "Y", Kind: KindNumber},
	{Key: "width", Label: "Width", Kind: KindNumber},
	{Key: "height", Label: "Height", Kind: KindNumber},
	{Key: "opacity", Label: "Opacity", Kind: KindNumber},
	{Key: "visibility", Label: "Visibility", Kind: KindText},
	{Key: "font-family", Label: "Font", Kind: KindText},
	{Key: "font-size", Label: "Font Size", Kind: KindNumber},
}

// CommonFields returns the candidate keys present on every selected
// component, in the fixed list order. This is what a multi-selection can edit
// in one batch.
func CommonFields(selected []*component.Component) []Field {
	if len(selected) == 0 {
		return nil
	}
	var common []Field
	for _, f := range commonPropertyKeys {
		all := true
		for _, comp := range selected {
			if _, ok := PropertyValue(comp, f.Key); !ok {
				all = false
				break
			}
		}
		if all {
			common = append(common, f)
		}
	}
	return common
}

// PropertyValue reads one property off a component as a display string:
// position keys come from the element's geometry, then metadata parameters,
// then plain SVG attributes. The second result reports whether the component
// carries the property at all.
func PropertyValue(comp *component.Component, key string) (string, bool) {
	switch key {
	case "x":
		return formatNum(comp.Position().X), true
	case "y":
		return formatNum(comp.Position().Y), true
	}
	if v, ok := comp.Metadata().Parameters[key]; ok {
		return valueString(v), true
	}
	if comp.Element().HasAttr(key) {
		return comp.Element().Attr(key), true
	}
	return "", false
}
