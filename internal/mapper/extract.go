package mapper

import (
	"strconv"
	"strings"

	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
)

// Parameter types the extractor infers.
const (
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeColor   = "color"
	TypeString  = "string"
)

// reserved data attributes already surfaced through dedicated Entry fields.
var reservedDataAttrs = map[string]bool{
	"data-id":       true,
	"data-type":     true,
	"data-metadata": true,
	"data-label":    true,
	"data-name":     true,
}

// extractParameters merges metadata parameters with data-* attributes into
// one typed map. A data-* attribute of the same name overrides the metadata
// value, so direct element edits win over a stale blob.
func extractParameters(el *svgdom.Element, meta component.Metadata) map[string]Parameter {
	var params map[string]Parameter
	put := func(key string, value interface{}) {
		if params == nil {
			params = make(map[string]Parameter)
		}
		params[key] = Parameter{
			Value:    value,
			Type:     inferType(key, value),
			Writable: true,
			Readable: true,
		}
	}

	for key, value := range meta.Parameters {
		put(key, value)
	}
	for name, raw := range el.DataAttrs() {
		if reservedDataAttrs[name] {
			continue
		}
		put(strings.TrimPrefix(name, "data-"), coerceValue(raw))
	}
	return params
}

// extractStates derives the boolean state view: every boolean parameter plus
// any parameter whose key suggests an on/off flavor.
func extractStates(params map[string]Parameter) map[string]bool {
	var states map[string]bool
	for key, p := range params {
		lower := strings.ToLower(key)
		if p.Type != TypeBoolean && !strings.Contains(lower, "on") && !strings.Contains(lower, "active") {
			continue
		}
		if states == nil {
			states = make(map[string]bool)
		}
		states[key] = truthyValue(p.Value)
	}
	return states
}

// extractColors collects fill and stroke, taking the first value found on the
// element or any descendant, so grouped components report the color of their
// colored shapes.
func extractColors(el *svgdom.Element) map[string]string {
	var colors map[string]string
	el.Walk(func(e *svgdom.Element) bool {
		for _, attr := range []string{"fill", "stroke"} {
			v := e.Attr(attr)
			if v == "" || v == "none" {
				continue
			}
			if colors == nil {
				colors = make(map[string]string)
			}
			if _, seen := colors[attr]; !seen {
				colors[attr] = v
			}
		}
		return true
	})
	return colors
}

// extractSVGAttributes returns every non-data attribute in document order.
func extractSVGAttributes(el *svgdom.Element) map[string]string {
	var out map[string]string
	for _, a := range el.Attrs() {
		if strings.HasPrefix(a.Name, "data-") {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[a.Name] = a.Value
	}
	return out
}

// inferType classifies a parameter value. Color detection goes by key
// substring and by #-prefixed values, matching how component templates store
// their colors.
func inferType(key string, value interface{}) string {
	switch v := value.(type) {
	case bool:
		return TypeBoolean
	case float64, int:
		return TypeNumber
	case string:
		if isColorKey(key) || strings.HasPrefix(v, "#") {
			return TypeColor
		}
		return TypeString
	}
	return TypeString
}

func isColorKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "color") || lower == "fill" || lower == "stroke"
}

// coerceValue interprets a raw attribute string as bool or number when it
// reads as one, else keeps the string.
func coerceValue(s string) interface{} {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func truthyValue(v interface{}) bool {
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
