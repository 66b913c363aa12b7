// Package component models a placed canvas component: an SVG element carrying
// a data-id attribute plus typed metadata, geometry, and interaction rules.
package component

import (
	"encoding/json"
	"log"
	"regexp"
	"strconv"

	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

// Metadata is the JSON blob stored in a component's data-metadata attribute.
type Metadata struct {
	Type         string                 `json:"type,omitempty"`
	Name         string                 `json:"name,omitempty"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
	Interactions []InteractionRule      `json:"interactions,omitempty"`
}

// InteractionRule is a stored event→action→target→property→value binding.
type InteractionRule struct {
	Event    string `json:"event"`
	Action   string `json:"action"` // set, toggle, increment, decrement
	Target   string `json:"target"` // target component id
	Property string `json:"property"`
	Value    string `json:"value,omitempty"`
}

// Component wraps an SVG element that represents one placed device.
type Component struct {
	el *svgdom.Element
}

// FromElement wraps an element as a Component. Returns nil for a nil element.
func FromElement(el *svgdom.Element) *Component {
	if el == nil {
		return nil
	}
	return &Component{el: el}
}

// Element returns the underlying SVG element.
func (c *Component) Element() *svgdom.Element {
	return c.el
}

// ID returns the component's data-id.
func (c *Component) ID() string {
	return c.el.Attr("data-id")
}

// SetID replaces the component's data-id.
func (c *Component) SetID(id string) {
	c.el.SetAttr("data-id", id)
}

// Metadata decodes the data-metadata attribute. Malformed JSON is treated as
// empty metadata and logged, never propagated.
func (c *Component) Metadata() Metadata {
	raw := c.el.Attr("data-metadata")
	if raw == "" {
		return Metadata{}
	}
	var meta Metadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		log.Printf("component %s: malformed data-metadata ignored: %v", c.ID(), err)
		return Metadata{}
	}
	return meta
}

// SetMetadata encodes meta back into the data-metadata attribute.
func (c *Component) SetMetadata(meta Metadata) {
	data, err := json.Marshal(meta)
	if err != nil {
		log.Printf("component %s: encode metadata: %v", c.ID(), err)
		return
	}
	c.el.SetAttr("data-metadata", string(data))
}

var translateRe = regexp.MustCompile(`translate\(\s*(-?[\d.]+)\s*[,\s]\s*(-?[\d.]+)\s*\)`)

// Position returns the component's position in canvas user space: the
// translate(...) term for transformed elements, x/y attributes otherwise.
func (c *Component) Position() geometry.Point2D {
	if tf := c.el.Attr("transform"); tf != "" {
		if m := translateRe.FindStringSubmatch(tf); m != nil {
			x, _ := strconv.ParseFloat(m[1], 64)
			y, _ := strconv.ParseFloat(m[2], 64)
			return geometry.NewPoint2D(x, y)
		}
	}
	return geometry.NewPoint2D(c.attrFloat("x"), c.attrFloat("y"))
}

// SetPosition moves the component. Group-type elements (or any element
// already positioned by a transform) get their translate(...) term rewritten;
// shapes get x/y attributes.
func (c *Component) SetPosition(x, y float64) {
	translate := "translate(" + formatNum(x) + ", " + formatNum(y) + ")"
	if tf := c.el.Attr("transform"); tf != "" {
		if translateRe.MatchString(tf) {
			c.el.SetAttr("transform", translateRe.ReplaceAllString(tf, translate))
		} else {
			c.el.SetAttr("transform", translate+" "+tf)
		}
		return
	}
	if c.el.Tag == "g" {
		c.el.SetAttr("transform", translate)
		return
	}
	c.el.SetAttr("x", formatNum(x))
	c.el.SetAttr("y", formatNum(y))
}

// Bounds returns the component's axis-aligned bounding box in user space.
// Size comes from width/height attributes when present; for containers the
// extent of child shapes is used.
func (c *Component) Bounds() geometry.Rect {
	pos := c.Position()
	w := c.attrFloat("width")
	h := c.attrFloat("height")
	if w == 0 && h == 0 {
		w, h = c.childExtent()
	}
	return geometry.NewRect(pos.X, pos.Y, w, h)
}

// HitTest reports whether the point lies within the component's bounds.
func (c *Component) HitTest(p geometry.Point2D) bool {
	return c.Bounds().Contains(p)
}

// Name resolves a display name: data-label, data-name, aria-label, or title
// attributes, then text content, falling back to the id. Metadata naming is
// applied by the mapper, not here, so the attribute chain stays the single
// source for element-level names.
func (c *Component) Name() string {
	for _, attr := range []string{"data-label", "data-name", "aria-label", "title"} {
		if v := c.el.Attr(attr); v != "" {
			return v
		}
	}
	if text := c.el.TextContent(); text != "" {
		return text
	}
	return c.ID()
}

func (c *Component) attrFloat(name string) float64 {
	v, err := strconv.ParseFloat(c.el.Attr(name), 64)
	if err != nil {
		return 0
	}
	return v
}

// childExtent computes the united extent of child shapes relative to the
// component origin.
func (c *Component) childExtent() (w, h float64) {
	var maxX, maxY float64
	c.el.Walk(func(e *svgdom.Element) bool {
		if e == c.el {
			return true
		}
		var right, bottom float64
		switch e.Tag {
		case "circle", "ellipse":
			cx := elAttrFloat(e, "cx")
			cy := elAttrFloat(e, "cy")
			rx := elAttrFloat(e, "r")
			ry := rx
			if rx == 0 {
				rx = elAttrFloat(e, "rx")
				ry = elAttrFloat(e, "ry")
			}
			right, bottom = cx+rx, cy+ry
		default:
			right = elAttrFloat(e, "x") + elAttrFloat(e, "width")
			bottom = elAttrFloat(e, "y") + elAttrFloat(e, "height")
		}
		if right > maxX {
			maxX = right
		}
		if bottom > maxY {
			maxY = bottom
		}
		return true
	})
	return maxX, maxY
}

func elAttrFloat(e *svgdom.Element, name string) float64 {
	v, err := strconv.ParseFloat(e.Attr(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
