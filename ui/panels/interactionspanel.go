package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/interactions"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
)

// InteractionsPanel edits the event-action rules of the selected component.
// The rule editor cascades: event, then target, then property, then action.
type InteractionsPanel struct {
	state *app.State
	core  *selection.Core
	rules *interactions.Manager
	win   fyne.Window

	box     *fyne.Container
	heading *widget.Label

	eventSelect    *widget.Select
	targetSelect   *widget.Select
	propertySelect *widget.Select
	actionSelect   *widget.Select
	valueEntry     *widget.Entry

	targetIDs []string
}

// NewInteractionsPanel creates the panel and keeps it synced to the
// selection.
func NewInteractionsPanel(state *app.State, core *selection.Core, rules *interactions.Manager) *InteractionsPanel {
	ip := &InteractionsPanel{
		state:   state,
		core:    core,
		rules:   rules,
		heading: widget.NewLabel("Interactions"),
	}
	ip.heading.TextStyle = fyne.TextStyle{Bold: true}
	ip.box = container.NewVBox(ip.heading)
	ip.rebuild()

	refresh := func(interface{}) { ip.rebuild() }
	state.On(app.EventSelectionChanged, refresh)
	state.On(app.EventPropertiesRescanned, refresh)

	return ip
}

// SetWindow provides the parent window for error dialogs.
func (ip *InteractionsPanel) SetWindow(win fyne.Window) {
	ip.win = win
}

// Container returns the panel for embedding.
func (ip *InteractionsPanel) Container() fyne.CanvasObject {
	return container.NewVScroll(ip.box)
}

func (ip *InteractionsPanel) selectedComponent() *component.Component {
	selected := ip.core.Selected()
	if len(selected) != 1 {
		return nil
	}
	return selected[0]
}

func (ip *InteractionsPanel) rebuild() {
	comp := ip.selectedComponent()
	if comp == nil {
		ip.box.Objects = []fyne.CanvasObject{
			ip.heading,
			widget.NewLabel("Select one component to edit its interactions."),
		}
		ip.box.Refresh()
		return
	}

	objects := []fyne.CanvasObject{ip.heading}

	// Existing rules with remove buttons.
	for i, rule := range ip.rules.Rules(comp) {
		idx := i
		label := fmt.Sprintf("on %s: %s %s.%s", rule.Event, rule.Action, rule.Target, rule.Property)
		if rule.Value != "" {
			label += " = " + rule.Value
		}
		row := container.NewBorder(nil, nil, nil,
			widget.NewButton("✕", func() {
				if err := ip.rules.RemoveRule(comp, idx); err == nil {
					ip.rebuild()
				}
			}),
			widget.NewLabel(label),
		)
		objects = append(objects, row)
	}

	objects = append(objects, widget.NewSeparator(), ip.buildRuleEditor(comp))
	ip.box.Objects = objects
	ip.box.Refresh()
}

func (ip *InteractionsPanel) buildRuleEditor(comp *component.Component) fyne.CanvasObject {
	ip.eventSelect = widget.NewSelect(ip.rules.EventOptions(comp), nil)

	targets := ip.rules.TargetOptions(comp)
	ip.targetIDs = ip.targetIDs[:0]
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		ip.targetIDs = append(ip.targetIDs, t.ID)
		names = append(names, fmt.Sprintf("%s (%s)", t.Name, t.ID))
	}
	ip.propertySelect = widget.NewSelect(nil, nil)
	ip.actionSelect = widget.NewSelect(nil, nil)
	ip.valueEntry = widget.NewEntry()

	ip.targetSelect = widget.NewSelect(names, func(string) {
		idx := ip.targetSelect.SelectedIndex()
		if idx < 0 || idx >= len(ip.targetIDs) {
			return
		}
		ip.propertySelect.Options = ip.rules.PropertyOptions(ip.targetIDs[idx])
		ip.propertySelect.ClearSelected()
		ip.propertySelect.Refresh()
	})
	ip.propertySelect.OnChanged = func(property string) {
		var targetID string
		if idx := ip.targetSelect.SelectedIndex(); idx >= 0 && idx < len(ip.targetIDs) {
			targetID = ip.targetIDs[idx]
		}
		ip.actionSelect.Options = ip.rules.ActionOptions(targetID, property)
		ip.actionSelect.ClearSelected()
		ip.actionSelect.Refresh()
	}

	addBtn := widget.NewButton("Add Rule", func() {
		idx := ip.targetSelect.SelectedIndex()
		if idx < 0 || idx >= len(ip.targetIDs) {
			return
		}
		rule := component.InteractionRule{
			Event:    ip.eventSelect.Selected,
			Action:   ip.actionSelect.Selected,
			Target:   ip.targetIDs[idx],
			Property: ip.propertySelect.Selected,
			Value:    ip.valueEntry.Text,
		}
		if err := ip.rules.AddRule(comp, rule); err != nil {
			if ip.win != nil {
				dialog.ShowError(err, ip.win)
			}
			return
		}
		ip.rebuild()
	})

	form := widget.NewForm(
		widget.NewFormItem("Event", ip.eventSelect),
		widget.NewFormItem("Target", ip.targetSelect),
		widget.NewFormItem("Property", ip.propertySelect),
		widget.NewFormItem("Action", ip.actionSelect),
		widget.NewFormItem("Value", ip.valueEntry),
	)
	return container.NewVBox(form, addBtn)
}
