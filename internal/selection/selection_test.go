package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

const testCanvas = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600">
  <rect data-id="m1" data-type="motor" x="10" y="10" width="40" height="40"/>
  <rect data-id="m2" data-type="motor" x="100" y="10" width="40" height="40"/>
  <g data-id="led1" data-type="led" transform="translate(200, 10)">
    <circle cx="10" cy="10" r="10"/>
  </g>
</svg>`

func newTestCore(t *testing.T) (*app.State, *Core) {
	t.Helper()
	state := app.NewState()
	doc, err := svgdom.ParseString(testCanvas)
	require.NoError(t, err)
	state.SetDocument(doc)
	return state, NewCore(state)
}

func compByID(t *testing.T, state *app.State, id string) *component.Component {
	t.Helper()
	el := state.Document().ByID(id)
	require.NotNil(t, el, "element %s", id)
	return component.FromElement(el)
}

func TestSelectDeselectToggle(t *testing.T) {
	state, core := newTestCore(t)
	m1 := compByID(t, state, "m1")

	var events []app.SelectionChangedData
	state.On(app.EventSelectionChanged, func(data interface{}) {
		events = append(events, data.(app.SelectionChangedData))
	})

	core.Select(m1)
	assert.True(t, core.IsSelected(m1))
	assert.Equal(t, 1, core.Count())

	// Re-selecting is a no-op: no duplicate, no event.
	core.Select(m1)
	assert.Equal(t, 1, core.Count())
	assert.Len(t, events, 1)

	core.Toggle(m1)
	assert.False(t, core.IsSelected(m1))
	assert.Equal(t, 0, core.Count())

	core.Toggle(m1)
	assert.True(t, core.IsSelected(m1))

	// Distinct wrappers around the same element are the same selection entry.
	again := compByID(t, state, "m1")
	assert.True(t, core.IsSelected(again))
	core.Select(again)
	assert.Equal(t, 1, core.Count())
}

func TestNilSafety(t *testing.T) {
	_, core := newTestCore(t)
	core.Select(nil)
	core.Deselect(nil)
	core.Toggle(nil)
	assert.Equal(t, 0, core.Count())
}

func TestClearEmitsEvenWhenEmpty(t *testing.T) {
	state, core := newTestCore(t)

	var events int
	state.On(app.EventSelectionChanged, func(interface{}) { events++ })

	core.Clear()
	assert.Equal(t, 1, events)

	core.Select(compByID(t, state, "m1"))
	core.Clear()
	assert.Equal(t, 0, core.Count())
	assert.Equal(t, 3, events)
}

func TestSelectAll(t *testing.T) {
	_, core := newTestCore(t)
	core.SelectAll()
	assert.Equal(t, 3, core.Count())

	ids := make([]string, 0, 3)
	for _, comp := range core.Selected() {
		ids = append(ids, comp.ID())
	}
	assert.Equal(t, []string{"m1", "m2", "led1"}, ids, "document order preserved")
}

func TestSelectInRect(t *testing.T) {
	_, core := newTestCore(t)

	// Covers m1 entirely, overlaps m2 by one unit, misses led1.
	core.SelectInRect(geometry.NewRect(0, 0, 101, 60))
	assert.Equal(t, 2, core.Count())

	// The rect's right edge lands exactly on m2's left edge: touching does
	// not count as intersecting.
	core.SelectInRect(geometry.NewRect(0, 0, 100, 60))
	require.Equal(t, 1, core.Count())
	assert.Equal(t, "m1", core.Selected()[0].ID())

	// Replaces rather than accumulates.
	core.SelectInRect(geometry.NewRect(500, 500, 10, 10))
	assert.Equal(t, 0, core.Count())
}

func TestComponentAt(t *testing.T) {
	_, core := newTestCore(t)

	hit := core.ComponentAt(geometry.NewPoint2D(30, 30))
	require.NotNil(t, hit)
	assert.Equal(t, "m1", hit.ID())

	assert.Nil(t, core.ComponentAt(geometry.NewPoint2D(400, 400)))
}

func TestOwnerOfWalksUp(t *testing.T) {
	state, core := newTestCore(t)

	led := state.Document().ByID("led1")
	require.NotNil(t, led)
	require.NotEmpty(t, led.Children())
	circle := led.Children()[0]

	owner := core.OwnerOf(circle)
	require.NotNil(t, owner)
	assert.Equal(t, "led1", owner.ID())

	// The root itself never resolves to a component.
	assert.Nil(t, core.OwnerOf(state.Document().Root()))
}

func TestDocumentReplacedResetsSelection(t *testing.T) {
	state, core := newTestCore(t)
	core.Select(compByID(t, state, "m1"))
	require.Equal(t, 1, core.Count())

	doc, err := svgdom.ParseString(`<svg><rect data-id="other" x="0" y="0" width="5" height="5"/></svg>`)
	require.NoError(t, err)
	state.SetDocument(doc)

	assert.Equal(t, 0, core.Count())
}

func TestIndicatorsMatchBounds(t *testing.T) {
	state, core := newTestCore(t)
	core.Select(compByID(t, state, "m1"))
	core.Select(compByID(t, state, "m2"))

	ind := core.Indicators()
	require.Len(t, ind, 2)
	assert.Equal(t, geometry.NewRect(10, 10, 40, 40), ind[0])
	assert.Equal(t, geometry.NewRect(100, 10, 40, 40), ind[1])
}
