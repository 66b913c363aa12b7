package properties

import (
	"fmt"
	"strconv"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
)

// Mode says what the panel is showing.
type Mode int

const (
	// ModeCanvas shows the document itself: nothing is selected.
	ModeCanvas Mode = iota
	// ModeSingle shows one component's full form.
	ModeSingle
	// ModeMulti shows the fields common to every selected component.
	ModeMulti
)

// FieldValue is a schema field with its current value. Mixed is set in
// multi-selection when the selected components disagree; the panel shows a
// placeholder instead of a misleading single value.
type FieldValue struct {
	Field
	Value string
	Mixed bool
}

// Model is everything the panel needs to render.
type Model struct {
	Mode   Mode
	Title  string
	ID     string
	Type   string
	Fields []FieldValue
	Count  int
}

// Manager builds panel models from the selection and applies edits.
type Manager struct {
	state *app.State
	core  *selection.Core
}

// NewManager creates a properties manager over the shared state and
// selection.
func NewManager(state *app.State, core *selection.Core) *Manager {
	return &Manager{state: state, core: core}
}

// BuildModel derives the panel model from the current selection.
func (m *Manager) BuildModel() Model {
	selected := m.core.Selected()
	switch len(selected) {
	case 0:
		return m.canvasModel()
	case 1:
		return m.singleModel(selected[0])
	default:
		return m.multiModel(selected)
	}
}

func (m *Manager) canvasModel() Model {
	root := m.state.Document().Root()
	return Model{
		Mode:  ModeCanvas,
		Title: "Canvas",
		Fields: []FieldValue{
			{Field: Field{Key: "width", Label: "Width", Kind: KindNumber}, Value: root.Attr("width")},
			{Field: Field{Key: "height", Label: "Height", Kind: KindNumber}, Value: root.Attr("height")},
			{Field: Field{Key: "background", Label: "Background", Kind: KindColor}, Value: root.Attr("data-background")},
		},
	}
}

func (m *Manager) singleModel(comp *component.Component) Model {
	fields := []FieldValue{}
	pos := comp.Position()
	fields = append(fields,
		FieldValue{Field: Field{Key: "x", Label: "X", Kind: KindNumber}, Value: formatNum(pos.X)},
		FieldValue{Field: Field{Key: "y", Label: "Y", Kind: KindNumber}, Value: formatNum(pos.Y)},
	)
	params := comp.Metadata().Parameters
	for _, f := range SchemaForType(comp.Type()) {
		fields = append(fields, FieldValue{Field: f, Value: valueString(params[f.Key])})
	}
	return Model{
		Mode:   ModeSingle,
		Title:  comp.Name(),
		ID:     comp.ID(),
		Type:   comp.Type(),
		Fields: fields,
		Count:  1,
	}
}

func (m *Manager) multiModel(selected []*component.Component) Model {
	fields := []FieldValue{}
	for _, f := range CommonFields(selected) {
		first, _ := PropertyValue(selected[0], f.Key)
		mixed := false
		for _, comp := range selected[1:] {
			if v, _ := PropertyValue(comp, f.Key); v != first {
				mixed = true
				break
			}
		}
		fv := FieldValue{Field: f, Value: first, Mixed: mixed}
		if mixed {
			fv.Value = ""
		}
		fields = append(fields, fv)
	}
	return Model{
		Mode:   ModeMulti,
		Title:  fmt.Sprintf("%d components", len(selected)),
		Fields: fields,
		Count:  len(selected),
	}
}

func valueString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNum(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
