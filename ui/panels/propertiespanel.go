// Package panels provides the side panel widgets: properties, interactions,
// and the component library.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/properties"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
)

// PropertiesPanel edits the properties of the current selection: one
// component's full form, the common fields of a multi-selection, or the
// canvas itself when nothing is selected.
type PropertiesPanel struct {
	state *app.State
	core  *selection.Core
	props *properties.Manager
	win   fyne.Window

	box     *fyne.Container
	heading *widget.Label
}

// NewPropertiesPanel creates the panel and keeps it synced to the selection.
func NewPropertiesPanel(state *app.State, core *selection.Core, props *properties.Manager) *PropertiesPanel {
	pp := &PropertiesPanel{
		state:   state,
		core:    core,
		props:   props,
		heading: widget.NewLabel("Canvas"),
	}
	pp.heading.TextStyle = fyne.TextStyle{Bold: true}
	pp.box = container.NewVBox(pp.heading)
	pp.rebuild()

	refresh := func(interface{}) { pp.rebuild() }
	state.On(app.EventSelectionChanged, refresh)
	state.On(app.EventComponentsBatchUpdated, refresh)
	state.On(app.EventComponentsMoved, refresh)
	state.On(app.EventPropertiesRescanned, refresh)

	return pp
}

// SetWindow provides the parent window for error dialogs.
func (pp *PropertiesPanel) SetWindow(win fyne.Window) {
	pp.win = win
}

// Container returns the panel for embedding.
func (pp *PropertiesPanel) Container() fyne.CanvasObject {
	return container.NewVScroll(pp.box)
}

func (pp *PropertiesPanel) rebuild() {
	model := pp.props.BuildModel()

	pp.heading.SetText(model.Title)
	objects := []fyne.CanvasObject{pp.heading}

	if model.Mode == properties.ModeSingle {
		objects = append(objects,
			widget.NewLabel("ID: "+model.ID),
			widget.NewLabel("Type: "+model.Type),
		)
	}

	form := widget.NewForm()
	for _, fv := range model.Fields {
		form.Append(fv.Label, pp.fieldWidget(model, fv))
	}
	objects = append(objects, form)

	pp.box.Objects = objects
	pp.box.Refresh()
}

func (pp *PropertiesPanel) fieldWidget(model properties.Model, fv properties.FieldValue) fyne.CanvasObject {
	if fv.Kind == properties.KindBool && !fv.Mixed {
		check := widget.NewCheck("", nil)
		check.SetChecked(fv.Value == "true")
		check.OnChanged = func(on bool) {
			value := "false"
			if on {
				value = "true"
			}
			pp.apply(model, fv.Key, value)
		}
		return check
	}

	entry := widget.NewEntry()
	if fv.Mixed {
		entry.SetPlaceHolder("(mixed)")
	} else {
		entry.SetText(fv.Value)
	}
	entry.OnSubmitted = func(value string) {
		pp.apply(model, fv.Key, value)
	}
	return entry
}

func (pp *PropertiesPanel) apply(model properties.Model, key, value string) {
	var err error
	switch model.Mode {
	case properties.ModeCanvas:
		err = pp.props.ApplyCanvas(key, value)
	case properties.ModeSingle:
		selected := pp.core.Selected()
		if len(selected) == 0 {
			return
		}
		err = pp.props.Apply(selected[0], key, value)
	case properties.ModeMulti:
		err = pp.props.BatchApply(key, value)
	}
	if err != nil && pp.win != nil {
		dialog.ShowError(err, pp.win)
	}
}
