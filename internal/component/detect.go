// Component type detection from metadata, attributes, and shape heuristics.
package component

import (
	"strings"

	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
)

// Known component types, used by class-name detection and the property
// schema. Order matters for class matching: more specific names first.
var knownTypes = []string{
	"button", "switch", "slider", "gauge", "display",
	"motor", "led", "sensor", "pump", "valve", "counter",
}

// Type resolves the component's type with the precedence: explicit metadata
// type, data-type attribute, CSS-class heuristics, child-tag heuristics, and
// finally "unknown".
func (c *Component) Type() string {
	if meta := c.Metadata(); meta.Type != "" {
		return meta.Type
	}
	if t := c.el.Attr("data-type"); t != "" {
		return t
	}
	if t := typeFromClass(c.el.Attr("class")); t != "" {
		return t
	}
	if t := typeFromShape(c.el); t != "" {
		return t
	}
	return "unknown"
}

func typeFromClass(class string) string {
	if class == "" {
		return ""
	}
	lower := strings.ToLower(class)
	for _, t := range knownTypes {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return ""
}

// typeFromShape guesses a type from the dominant child shape: circles read
// as buttons, rects as switches, text as displays.
func typeFromShape(el *svgdom.Element) string {
	found := ""
	el.Walk(func(e *svgdom.Element) bool {
		if found != "" {
			return false
		}
		switch e.Tag {
		case "circle":
			found = "button"
		case "rect":
			if e != el {
				found = "switch"
			}
		case "text":
			found = "display"
		}
		return true
	})
	if found == "" {
		switch el.Tag {
		case "circle":
			found = "button"
		case "rect":
			found = "switch"
		case "text":
			found = "display"
		}
	}
	return found
}
