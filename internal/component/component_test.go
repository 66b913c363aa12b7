package component

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

func mustFragment(t *testing.T, markup string) *Component {
	t.Helper()
	el, err := svgdom.ParseFragment(markup)
	require.NoError(t, err)
	return FromElement(el)
}

func TestPositionFromAttributes(t *testing.T) {
	c := mustFragment(t, `<rect data-id="m1" x="10" y="20" width="50" height="40"/>`)
	assert.Equal(t, geometry.NewPoint2D(10, 20), c.Position())
	assert.Equal(t, geometry.NewRect(10, 20, 50, 40), c.Bounds())
}

func TestPositionFromTransform(t *testing.T) {
	tests := []struct {
		name      string
		transform string
		want      geometry.Point2D
	}{
		{"comma separated", "translate(100, 40)", geometry.NewPoint2D(100, 40)},
		{"space separated", "translate(100 40)", geometry.NewPoint2D(100, 40)},
		{"negative", "translate(-5,-7.5)", geometry.NewPoint2D(-5, -7.5)},
		{"with rotation", "translate(3, 4) rotate(45)", geometry.NewPoint2D(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustFragment(t, `<g data-id="g1" transform="`+tt.transform+`"/>`)
			assert.Equal(t, tt.want, c.Position())
		})
	}
}

func TestSetPositionShape(t *testing.T) {
	c := mustFragment(t, `<rect data-id="m1" x="10" y="20" width="50" height="40"/>`)
	c.SetPosition(33, 44)
	assert.Equal(t, "33", c.Element().Attr("x"))
	assert.Equal(t, "44", c.Element().Attr("y"))
	assert.Equal(t, geometry.NewPoint2D(33, 44), c.Position())
}

func TestSetPositionGroupRewritesTranslate(t *testing.T) {
	c := mustFragment(t, `<g data-id="g1" transform="translate(1, 2) rotate(30)"/>`)
	c.SetPosition(9, 8)
	assert.Equal(t, "translate(9, 8) rotate(30)", c.Element().Attr("transform"))

	// A bare group gains a transform.
	c2 := mustFragment(t, `<g data-id="g2"/>`)
	c2.SetPosition(5, 6)
	assert.Equal(t, "translate(5, 6)", c2.Element().Attr("transform"))
}

func TestGroupBoundsFromChildExtent(t *testing.T) {
	c := mustFragment(t, `<g data-id="g1" transform="translate(100, 50)">`+
		`<circle cx="10" cy="10" r="8"/><rect x="0" y="20" width="30" height="12"/></g>`)
	b := c.Bounds()
	assert.Equal(t, 100.0, b.X)
	assert.Equal(t, 50.0, b.Y)
	assert.Equal(t, 30.0, b.Width)
	assert.Equal(t, 32.0, b.Height)
}

func TestTypeDetectionPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			"metadata wins",
			`<g data-id="a" data-type="switch" data-metadata='{"type":"led"}'/>`,
			"led",
		},
		{
			"data-type attribute",
			`<g data-id="a" data-type="motor"/>`,
			"motor",
		},
		{
			"class heuristic",
			`<g data-id="a" class="component sensor-widget"/>`,
			"sensor",
		},
		{
			"circle child reads as button",
			`<g data-id="a"><circle r="5"/></g>`,
			"button",
		},
		{
			"rect child reads as switch",
			`<g data-id="a"><rect width="4" height="4"/></g>`,
			"switch",
		},
		{
			"text child reads as display",
			`<g data-id="a"><text>hi</text></g>`,
			"display",
		},
		{
			"bare rect element",
			`<rect data-id="a" width="4" height="4"/>`,
			"switch",
		},
		{
			"nothing to go on",
			`<g data-id="a"/>`,
			"unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustFragment(t, tt.markup).Type())
		})
	}
}

func TestMetadataRoundtrip(t *testing.T) {
	c := mustFragment(t, `<g data-id="led1"/>`)
	c.SetMetadata(Metadata{
		Type:       "led",
		Parameters: map[string]interface{}{"color": "#ff0000", "on": true},
		Interactions: []InteractionRule{
			{Event: "click", Action: "toggle", Target: "led1", Property: "on"},
		},
	})

	meta := c.Metadata()
	assert.Equal(t, "led", meta.Type)
	assert.Equal(t, "#ff0000", meta.Parameters["color"])
	require.Len(t, meta.Interactions, 1)
	assert.Equal(t, "toggle", meta.Interactions[0].Action)
}

func TestMalformedMetadataIsEmpty(t *testing.T) {
	c := mustFragment(t, `<g data-id="x" data-metadata="{broken"/>`)
	assert.Equal(t, Metadata{}, c.Metadata())
}

func TestNameResolution(t *testing.T) {
	tests := []struct {
		markup string
		want   string
	}{
		{`<g data-id="a" data-label="Main Pump"/>`, "Main Pump"},
		{`<g data-id="a" data-name="Pump 2"/>`, "Pump 2"},
		{`<g data-id="a" aria-label="Pump 3"/>`, "Pump 3"},
		{`<g data-id="a" title="Pump 4"/>`, "Pump 4"},
		{`<text data-id="a">Pump 5</text>`, "Pump 5"},
		{`<g data-id="a"/>`, "a"},
		// Metadata names are resolved by the component index, not here.
		{`<g data-id="a" data-metadata='{"name":"Mapped Name"}'/>`, "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustFragment(t, tt.markup).Name())
	}
}

func TestNewIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^motor-\d+-\d+$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewID("motor")
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1, "ids should vary")

	assert.Regexp(t, `^component-\d+-\d+$`, NewID(""))
}

func TestFallbackID(t *testing.T) {
	a := FallbackID("led")
	b := FallbackID("led")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "led-")
}
