package interactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/mapper"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
)

const interactionsCanvas = `<svg xmlns="http://www.w3.org/2000/svg">
  <g data-id="b1" data-type="button"><circle r="8"/></g>
  <g data-id="led1" data-metadata='{"type":"led","parameters":{"color":"#00ff00","on":false}}'>
    <circle cx="5" cy="5" r="5"/>
  </g>
  <g data-id="m1" data-metadata='{"type":"motor","parameters":{"speed":10}}'>
    <rect width="20" height="20"/>
  </g>
</svg>`

func newTestManager(t *testing.T) (*app.State, *Manager) {
	t.Helper()
	state := app.NewState()
	doc, err := svgdom.ParseString(interactionsCanvas)
	require.NoError(t, err)
	state.SetDocument(doc)
	return state, NewManager(state, mapper.NewMapper(state))
}

func comp(t *testing.T, state *app.State, id string) *component.Component {
	t.Helper()
	el := state.Document().ByID(id)
	require.NotNil(t, el)
	return component.FromElement(el)
}

func TestRuleCRUD(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")

	rule := component.InteractionRule{
		Event: "click", Action: ActionToggle, Target: "led1", Property: "on",
	}
	require.NoError(t, m.AddRule(button, rule))
	require.Len(t, m.Rules(button), 1)
	assert.True(t, state.Modified)

	updated := rule
	updated.Property = "blink"
	require.NoError(t, m.UpdateRule(button, 0, updated))
	assert.Equal(t, "blink", m.Rules(button)[0].Property)

	assert.Error(t, m.UpdateRule(button, 5, updated))
	assert.Error(t, m.RemoveRule(button, -1))

	require.NoError(t, m.RemoveRule(button, 0))
	assert.Empty(t, m.Rules(button))
}

func TestRuleValidation(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")

	tests := []struct {
		name string
		rule component.InteractionRule
	}{
		{"missing event", component.InteractionRule{Action: ActionSet, Target: "led1", Property: "color", Value: "#fff"}},
		{"event not emitted by type", component.InteractionRule{Event: "toggle", Action: ActionSet, Target: "led1", Property: "color", Value: "#fff"}},
		{"unknown action", component.InteractionRule{Event: "click", Action: "explode", Target: "led1", Property: "color", Value: "#fff"}},
		{"missing target", component.InteractionRule{Event: "click", Action: ActionSet, Property: "color", Value: "#fff"}},
		{"missing property", component.InteractionRule{Event: "click", Action: ActionSet, Target: "led1", Value: "#fff"}},
		{"set without value", component.InteractionRule{Event: "click", Action: ActionSet, Target: "led1", Property: "color"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, m.AddRule(button, tt.rule))
		})
	}
	assert.Empty(t, m.Rules(button))
}

func TestCascadingOptions(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")

	assert.Equal(t, []string{"click", "press", "release"}, m.EventOptions(button))

	targets := m.TargetOptions(button)
	require.Len(t, targets, 2, "source excluded from its own targets")
	assert.Equal(t, "led1", targets[0].ID)

	assert.Equal(t, []string{"color", "on"}, m.PropertyOptions("led1"),
		"options come from the mapped parameters")
	assert.Equal(t, []string{"label", "color"}, m.PropertyOptions("b1"),
		"per-type defaults cover components with nothing mapped")
	assert.Nil(t, m.PropertyOptions("ghost"))

	assert.Equal(t, []string{ActionSet, ActionToggle}, m.ActionOptions("led1", "on"))
	assert.Equal(t, []string{ActionSet, ActionIncrement, ActionDecrement}, m.ActionOptions("m1", "speed"))
	assert.Equal(t, []string{ActionSet}, m.ActionOptions("led1", "color"))
	assert.Equal(t, []string{ActionSet, ActionToggle}, m.ActionOptions("ghost", "running"),
		"unmapped properties fall back to name heuristics")
}

func TestTriggerToggle(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "click", Action: ActionToggle, Target: "led1", Property: "on",
	}))

	m.Trigger("b1", "click")
	assert.Equal(t, true, comp(t, state, "led1").Metadata().Parameters["on"])

	m.Trigger("b1", "click")
	assert.Equal(t, false, comp(t, state, "led1").Metadata().Parameters["on"])
}

func TestTriggerSetColorEmitsEvent(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "click", Action: ActionSet, Target: "led1", Property: "color", Value: "#ff0000",
	}))

	var change app.ColorChangedData
	state.On(app.EventColorChanged, func(data interface{}) {
		change = data.(app.ColorChangedData)
	})

	m.Trigger("b1", "click")

	led := comp(t, state, "led1")
	assert.Equal(t, "#ff0000", led.Metadata().Parameters["color"])
	assert.Equal(t, "#ff0000", led.Element().Attr("fill"))
	assert.Equal(t, app.ColorChangedData{ElementID: "led1", Property: "color", Value: "#ff0000"}, change)
}

func TestTriggerIncrementDecrement(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "press", Action: ActionIncrement, Target: "m1", Property: "speed", Value: "5",
	}))
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "release", Action: ActionDecrement, Target: "m1", Property: "speed",
	}))

	m.Trigger("b1", "press")
	assert.Equal(t, 15.0, comp(t, state, "m1").Metadata().Parameters["speed"])

	m.Trigger("b1", "release") // default step is 1
	assert.Equal(t, 14.0, comp(t, state, "m1").Metadata().Parameters["speed"])
}

func TestTriggerMatchesEventOnly(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "press", Action: ActionToggle, Target: "led1", Property: "on",
	}))

	m.Trigger("b1", "click")
	assert.Equal(t, false, comp(t, state, "led1").Metadata().Parameters["on"])
}

func TestRuleEditsRefreshIndex(t *testing.T) {
	state := app.NewState()
	doc, err := svgdom.ParseString(interactionsCanvas)
	require.NoError(t, err)
	state.SetDocument(doc)
	index := mapper.NewMapper(state)
	m := NewManager(state, index)

	button := comp(t, state, "b1")
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "click", Action: ActionToggle, Target: "led1", Property: "on",
	}))
	assert.False(t, state.Document().Dirty(), "rule edits deliver their mutations immediately")

	m.Trigger("b1", "click")
	assert.False(t, state.Document().Dirty())
	assert.Equal(t, true, index.Component("led1").Parameters["on"].Value,
		"the index sees the triggered change without an extra flush")
}

func TestTriggerSurvivesMissingTarget(t *testing.T) {
	state, m := newTestManager(t)
	button := comp(t, state, "b1")
	require.NoError(t, m.AddRule(button, component.InteractionRule{
		Event: "click", Action: ActionToggle, Target: "led1", Property: "on",
	}))

	state.Document().ByID("led1").Remove()
	m.Trigger("b1", "click") // logged, not fatal

	m.Trigger("ghost", "click") // unknown source is a no-op
}
