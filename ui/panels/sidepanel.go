package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/editor"
	"github.com/digitaltwin-run/pwa-sub000/internal/interactions"
	"github.com/digitaltwin-run/pwa-sub000/internal/library"
	"github.com/digitaltwin-run/pwa-sub000/internal/properties"
)

// SidePanel groups the editor's panels into tabs.
type SidePanel struct {
	tabs *container.AppTabs

	Properties   *PropertiesPanel
	Interactions *InteractionsPanel
	Library      *LibraryPanel
}

// NewSidePanel builds the tabbed side panel over the editor services.
func NewSidePanel(state *app.State, ed *editor.Editor, rules *interactions.Manager,
	props *properties.Manager, lib *library.Library) *SidePanel {

	sp := &SidePanel{
		Properties:   NewPropertiesPanel(state, ed.Core, props),
		Interactions: NewInteractionsPanel(state, ed.Core, rules),
		Library:      NewLibraryPanel(state, ed.Core, lib),
	}

	sp.tabs = container.NewAppTabs(
		container.NewTabItem("Properties", sp.Properties.Container()),
		container.NewTabItem("Interactions", sp.Interactions.Container()),
		container.NewTabItem("Library", sp.Library.Container()),
	)
	sp.tabs.SetTabLocation(container.TabLocationTop)
	return sp
}

// SetWindow provides the parent window for dialogs.
func (sp *SidePanel) SetWindow(win fyne.Window) {
	sp.Properties.SetWindow(win)
	sp.Interactions.SetWindow(win)
}

// Container returns the tabbed panel for embedding.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.tabs
}
