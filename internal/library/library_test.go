package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

func TestBuiltinsPresent(t *testing.T) {
	l := New()
	for _, want := range []string{"motor", "led", "button", "switch", "sensor", "display", "slider", "gauge"} {
		assert.NotNil(t, l.Definition(want), want)
	}
	assert.Len(t, l.Definitions(), 8)
	assert.Nil(t, l.Definition("teleporter"))
}

func TestInstantiate(t *testing.T) {
	l := New()

	comp, err := l.Instantiate("led", 120, 80)
	require.NoError(t, err)

	assert.Regexp(t, `^led-\d+-\d+$`, comp.ID())
	assert.Equal(t, "led", comp.Type())
	assert.Equal(t, geometry.NewPoint2D(120, 80), comp.Position())
	assert.Equal(t, "#ff0000", comp.Metadata().Parameters["color"])
	assert.Nil(t, comp.Element().Parent(), "instantiated element is detached")

	// Instances do not share ids or parameter maps.
	other, err := l.Instantiate("led", 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, comp.ID(), other.ID())

	meta := other.Metadata()
	meta.Parameters["color"] = "#00ff00"
	other.SetMetadata(meta)
	assert.Equal(t, "#ff0000", comp.Metadata().Parameters["color"])

	_, err = l.Instantiate("teleporter", 0, 0)
	assert.Error(t, err)
}

func TestLoadDirOverridesBuiltins(t *testing.T) {
	dir := t.TempDir()
	custom := `[
  {"type":"led","label":"Big LED","width":48,"height":48,
   "template":"<g data-type=\"led\"><circle cx=\"24\" cy=\"24\" r=\"22\"/></g>",
   "parameters":{"color":"#ffff00"}},
  {"type":"valve","label":"Valve","width":40,"height":40,
   "template":"<g data-type=\"valve\"><rect width=\"40\" height=\"40\"/></g>"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.json"), []byte(custom), 0o644))

	l := New()
	require.NoError(t, l.LoadDir(dir))

	led := l.Definition("led")
	require.NotNil(t, led)
	assert.Equal(t, "Big LED", led.Label)
	assert.NotNil(t, l.Definition("valve"))
	assert.Len(t, l.Definitions(), 9, "override replaces, addition appends")
}

func TestLoadDirRejectsBadDefinitions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"),
		[]byte(`[{"label":"No Type"}]`), 0o644))

	assert.Error(t, New().LoadDir(dir))
	assert.Error(t, New().LoadDir(filepath.Join(dir, "missing")))
}
