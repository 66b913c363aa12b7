// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/editor"
	"github.com/digitaltwin-run/pwa-sub000/internal/interactions"
	"github.com/digitaltwin-run/pwa-sub000/internal/library"
	"github.com/digitaltwin-run/pwa-sub000/internal/mapper"
	"github.com/digitaltwin-run/pwa-sub000/internal/properties"
	"github.com/digitaltwin-run/pwa-sub000/internal/version"
	"github.com/digitaltwin-run/pwa-sub000/ui/canvas"
	"github.com/digitaltwin-run/pwa-sub000/ui/panels"
	"github.com/digitaltwin-run/pwa-sub000/ui/prefs"
)

const (
	prefKeyLastDir      = "lastDirectory"
	prefKeyLastDocument = "lastDocument"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	editor *editor.Editor
	index  *mapper.Mapper
	rules  *interactions.Manager
	props  *properties.Manager
	lib    *library.Library

	canvas    *canvas.EditorCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	zoomLabel *widget.Label
}

// New creates a new main window over a shared application state.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Digital Twin Editor")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupServices()
	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.restoreLastDocument()

	return mw
}

// setupServices wires the editing services over the shared state.
func (mw *MainWindow) setupServices() {
	mw.editor = editor.New(mw.state)
	mw.index = mapper.NewMapper(mw.state)
	mw.rules = interactions.NewManager(mw.state, mw.index)
	mw.props = properties.NewManager(mw.state, mw.editor.Core)

	mw.lib = library.New()
	// User definitions extend and override the builtins.
	userLib := filepath.Join(prefs.ConfigDir(), "library")
	if _, err := os.Stat(userLib); err == nil {
		if err := mw.lib.LoadDir(userLib); err != nil {
			log.Printf("load user library: %v", err)
		}
	}
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewEditorCanvas(mw.editor)

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.editor, mw.rules, mw.props, mw.lib)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")
	mw.zoomLabel = widget.NewLabel("100%")
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
		mw.prefs.SetFloat("zoom", zoom)
	})

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mw.canvas.Container(),
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25) // Side panel takes 25% of width

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(
		float32(mw.prefs.FloatWithFallback("windowWidth", 1200)),
		float32(mw.prefs.FloatWithFallback("windowHeight", 800)),
	))

	if zoom := mw.prefs.Float("zoom"); zoom > 0 {
		mw.canvas.SetZoom(zoom)
	}
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	actualBtn := widget.NewButton("1:1", mw.onActualSize)

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		actualBtn,
		mw.zoomLabel,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Canvas", mw.onNewCanvas),
		fyne.NewMenuItem("Open SVG...", mw.onOpenDocument),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", mw.onSaveDocument),
		fyne.NewMenuItem("Save As...", mw.onSaveDocumentAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Component Map...", mw.onExportMap),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Copy", func() { mw.editor.Clipboard.Copy() }),
		fyne.NewMenuItem("Paste", func() { mw.editor.Clipboard.Paste() }),
		fyne.NewMenuItem("Duplicate", func() { mw.editor.Clipboard.Duplicate() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Select All", func() { mw.editor.Core.SelectAll() }),
		fyne.NewMenuItem("Delete", func() { mw.editor.DeleteSelection() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupShortcuts routes keyboard input into the editor's shortcut table.
func (mw *MainWindow) setupShortcuts() {
	mw.editor.Keys.InputFocused = func() bool {
		switch mw.Canvas().Focused().(type) {
		case *widget.Entry, *widget.SelectEntry:
			return true
		}
		return false
	}

	handle := func(s editor.Shortcut) func(fyne.Shortcut) {
		return func(fyne.Shortcut) {
			if mw.editor.Keys.Handle(s) {
				mw.canvas.Refresh()
			}
		}
	}
	ctrl := func(key fyne.KeyName) *desktop.CustomShortcut {
		return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl}
	}
	mw.Canvas().AddShortcut(ctrl(fyne.KeyC), handle(editor.Shortcut{Key: "c", Ctrl: true}))
	mw.Canvas().AddShortcut(ctrl(fyne.KeyV), handle(editor.Shortcut{Key: "v", Ctrl: true}))
	mw.Canvas().AddShortcut(ctrl(fyne.KeyD), handle(editor.Shortcut{Key: "d", Ctrl: true}))
	mw.Canvas().AddShortcut(ctrl(fyne.KeyA), handle(editor.Shortcut{Key: "a", Ctrl: true}))

	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		var key string
		switch ev.Name {
		case fyne.KeyDelete:
			key = "delete"
		case fyne.KeyBackspace:
			key = "backspace"
		case fyne.KeyEscape:
			key = "escape"
		default:
			return
		}
		if mw.editor.Keys.Handle(editor.Shortcut{Key: key}) {
			mw.canvas.Refresh()
		}
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDocumentReplaced, func(data interface{}) {
		if mw.state.DocumentPath != "" {
			mw.SetTitle("Digital Twin Editor - " + filepath.Base(mw.state.DocumentPath))
		} else {
			mw.SetTitle("Digital Twin Editor")
		}
		mw.canvas.Refresh()
	})

	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		if sel, ok := data.(app.SelectionChangedData); ok {
			if sel.Count == 0 {
				mw.updateStatus("Ready")
			} else {
				mw.updateStatus(fmt.Sprintf("%d component(s) selected", sel.Count))
			}
		}
	})

	mw.state.On(app.EventNotification, func(data interface{}) {
		if msg, ok := data.(string); ok {
			mw.updateStatus(msg)
		}
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	dir := filepath.Dir(filePath)
	mw.app.Preferences().SetString(prefKeyLastDir, dir)
}

// restoreLastDocument reopens the document from the previous session.
func (mw *MainWindow) restoreLastDocument() {
	path := mw.app.Preferences().String(prefKeyLastDocument)
	if path == "" {
		return
	}
	if err := mw.state.LoadDocument(path); err != nil {
		mw.updateStatus("Could not reopen " + filepath.Base(path))
		return
	}
	mw.state.SetModified(false) // Don't mark as modified on restore
}

// Menu action handlers

func (mw *MainWindow) onNewCanvas() {
	mw.state.DocumentPath = ""
	mw.state.SetDocument(app.NewState().Document())
	mw.state.SetModified(false)
	mw.SetTitle("Digital Twin Editor")
	mw.canvas.Refresh()
}

func (mw *MainWindow) onOpenDocument() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadDocument(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.app.Preferences().SetString(prefKeyLastDocument, path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".svg"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveDocument() {
	if mw.state.DocumentPath == "" {
		mw.onSaveDocumentAs()
		return
	}
	if err := mw.state.SaveDocument(mw.state.DocumentPath); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.state.SetModified(false)
	mw.updateStatus("Saved " + filepath.Base(mw.state.DocumentPath))
}

func (mw *MainWindow) onSaveDocumentAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".svg" {
			path += ".svg"
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveDocument(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.state.DocumentPath = path
		mw.app.Preferences().SetString(prefKeyLastDocument, path)
		mw.state.SetModified(false)
		mw.SetTitle("Digital Twin Editor - " + filepath.Base(path))
	}, mw.Window)
	fd.SetFileName("canvas.svg")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportMap() {
	data, err := mw.index.Export()
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Component map exported")
	}, mw.Window)
	fd.SetFileName("components.json")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onZoomIn() {
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onActualSize() {
	mw.canvas.SetZoom(1.0)
}

// SavePrefs persists the window geometry before shutdown.
func (mw *MainWindow) SavePrefs() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat("windowWidth", float64(size.Width))
	mw.prefs.SetFloat("windowHeight", float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences")
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Digital Twin Editor",
		fmt.Sprintf("Digital Twin Editor v%s\n\n"+
			"An SVG canvas editor for interactive digital twins.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
