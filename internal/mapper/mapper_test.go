package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
)

const mapperCanvas = `<svg xmlns="http://www.w3.org/2000/svg">
  <rect data-id="m1" data-type="motor" data-speed="50" x="10" y="10" width="40" height="40" fill="#808080"/>
  <g data-id="led1" data-metadata='{"type":"led","name":"Status LED","parameters":{"color":"#ff0000","on":true}}' transform="translate(200, 10)">
    <circle cx="10" cy="10" r="10" fill="#ff0000"/>
  </g>
  <g data-id="b1" data-type="button" data-label="Start"><circle r="8"/></g>
</svg>`

func newTestMapper(t *testing.T) (*app.State, *Mapper) {
	t.Helper()
	state := app.NewState()
	doc, err := svgdom.ParseString(mapperCanvas)
	require.NoError(t, err)
	state.SetDocument(doc)
	return state, NewMapper(state)
}

func TestScanIndexesComponents(t *testing.T) {
	_, m := newTestMapper(t)
	require.Equal(t, 3, m.Count())

	motor := m.Component("m1")
	require.NotNil(t, motor)
	assert.Equal(t, "motor", motor.Type)
	assert.Equal(t, 10.0, motor.Position.X)
	assert.Equal(t, 40.0, motor.Width)
	assert.Equal(t, 40.0, motor.Height)

	led := m.Component("led1")
	require.NotNil(t, led)
	assert.Equal(t, "led", led.Type, "metadata type outranks shape heuristics")
	assert.Equal(t, "Status LED", led.Name)
	assert.Equal(t, 20.0, led.Width, "group size comes from child extent")

	button := m.Component("b1")
	require.NotNil(t, button)
	assert.Equal(t, "Start", button.Name)
	assert.Equal(t, []string{"click", "press", "release"}, button.Events)

	assert.Nil(t, m.Component("ghost"))
}

func TestScanExtractsTypedParameters(t *testing.T) {
	_, m := newTestMapper(t)

	motor := m.Component("m1")
	require.NotNil(t, motor)
	speed, ok := motor.Parameters["speed"]
	require.True(t, ok, "data-speed becomes a parameter")
	assert.Equal(t, 50.0, speed.Value)
	assert.Equal(t, TypeNumber, speed.Type)
	assert.True(t, speed.Writable)
	assert.True(t, speed.Readable)

	led := m.Component("led1")
	require.NotNil(t, led)
	assert.Equal(t, TypeColor, led.Parameters["color"].Type)
	assert.Equal(t, "#ff0000", led.Parameters["color"].Value)
	assert.Equal(t, TypeBoolean, led.Parameters["on"].Type)
	assert.Equal(t, true, led.Parameters["on"].Value)
}

func TestScanDerivesStatesAndColors(t *testing.T) {
	_, m := newTestMapper(t)

	led := m.Component("led1")
	require.NotNil(t, led)
	assert.Equal(t, map[string]bool{"on": true}, led.States)
	assert.Equal(t, "#ff0000", led.Colors["fill"], "descendant fill surfaces on the group")

	motor := m.Component("m1")
	require.NotNil(t, motor)
	assert.Empty(t, motor.States)
	assert.Equal(t, "#808080", motor.Colors["fill"])
	assert.Equal(t, "10", motor.SVGAttributes["x"])
	assert.NotContains(t, motor.SVGAttributes, "data-speed", "data attributes stay out of the raw view")
}

func TestDataAttributeOverridesMetadata(t *testing.T) {
	state := app.NewState()
	doc, err := svgdom.ParseString(`<svg>` +
		`<g data-id="g1" data-metadata='{"parameters":{"level":5,"mode":"auto"}}' data-level="9"/>` +
		`</svg>`)
	require.NoError(t, err)
	state.SetDocument(doc)
	m := NewMapper(state)

	entry := m.Component("g1")
	require.NotNil(t, entry)
	assert.Equal(t, 9.0, entry.Parameters["level"].Value, "direct attribute wins over the metadata blob")
	assert.Equal(t, "auto", entry.Parameters["mode"].Value)
	assert.Equal(t, TypeString, entry.Parameters["mode"].Type)
}

func TestScanIsIdempotent(t *testing.T) {
	_, m := newTestMapper(t)
	before := m.Components()

	m.Scan()
	m.Scan()

	after := m.Components()
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

func TestMutationTriggersRescan(t *testing.T) {
	state, m := newTestMapper(t)

	rescans := 0
	state.On(app.EventPropertiesRescanned, func(interface{}) { rescans++ })

	el := svgdom.NewElement("rect")
	el.SetAttr("data-id", "new1")
	el.SetAttr("data-type", "switch")
	el.SetAttr("x", "5")
	el.SetAttr("y", "5")
	state.Document().Root().AppendChild(el)
	state.Document().Flush()

	assert.Equal(t, 1, rescans, "one coalesced batch, one rescan")
	require.NotNil(t, m.Component("new1"))
	assert.Equal(t, 4, m.Count())

	el.Remove()
	state.Document().Flush()
	assert.Nil(t, m.Component("new1"), "removed elements leave the index")
	assert.Equal(t, 3, m.Count())
}

func TestDocumentReplacedRebuildsIndex(t *testing.T) {
	state, m := newTestMapper(t)

	doc, err := svgdom.ParseString(`<svg><g data-id="only" data-type="gauge"/></svg>`)
	require.NoError(t, err)
	state.SetDocument(doc)

	assert.Equal(t, 1, m.Count())
	assert.Nil(t, m.Component("m1"))
	require.NotNil(t, m.Component("only"))

	// The new document's mutations keep driving rescans.
	el := svgdom.NewElement("g")
	el.SetAttr("data-id", "second")
	doc.Root().AppendChild(el)
	doc.Flush()
	assert.Equal(t, 2, m.Count())
}

func TestVariables(t *testing.T) {
	_, m := newTestMapper(t)
	vars := m.Variables()

	color, ok := vars["Status LED.color"]
	require.True(t, ok, "keys use the component display name")
	assert.Equal(t, "led1", color.ComponentID)
	assert.Equal(t, "color", color.Parameter)
	assert.Equal(t, TypeColor, color.Type)
	assert.True(t, color.Writable)
	assert.True(t, color.Readable)
	assert.Equal(t, "#ff0000", color.CurrentValue)

	on := vars["Status LED.on"]
	assert.Equal(t, TypeBoolean, on.Type)
	assert.Equal(t, true, on.CurrentValue)
	assert.True(t, on.Writable, "parameter entry wins over the derived state")

	speed := vars["m1.speed"]
	assert.Equal(t, TypeNumber, speed.Type)
	assert.Equal(t, 50.0, speed.CurrentValue)

	fill := vars["m1.fill"]
	assert.Equal(t, TypeColor, fill.Type)
	assert.Equal(t, "#808080", fill.CurrentValue)

	names := m.VariableNames()
	assert.Contains(t, names, "Status LED.color")
	assert.True(t, sortedStrings(names))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func TestTargets(t *testing.T) {
	_, m := newTestMapper(t)

	all := m.Targets("")
	require.Len(t, all, 3)
	assert.Equal(t, "m1", all[0].ID)
	assert.Equal(t, []string{"speed"}, all[0].Parameters)

	others := m.Targets("m1")
	require.Len(t, others, 2)
	for _, target := range others {
		assert.NotEqual(t, "m1", target.ID)
	}
	assert.Equal(t, []string{"color", "on"}, others[0].Parameters)
}

func TestExport(t *testing.T) {
	_, m := newTestMapper(t)

	data, err := m.Export()
	require.NoError(t, err)

	var doc struct {
		Summary struct {
			TotalComponents int            `json:"totalComponents"`
			CountsByType    map[string]int `json:"countsByType"`
		} `json:"summary"`
		Components []map[string]interface{} `json:"components"`
		Variables  map[string]Variable      `json:"variables"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Components, 3)
	assert.Equal(t, 3, doc.Summary.TotalComponents)
	assert.Equal(t, map[string]int{"motor": 1, "led": 1, "button": 1}, doc.Summary.CountsByType)
	assert.Equal(t, "#ff0000", doc.Variables["Status LED.color"].CurrentValue)
}
