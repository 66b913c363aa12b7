// Digital Twin Editor - an SVG canvas editor for interactive digital twins.
package main

import (
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/ui/mainwindow"
	"github.com/digitaltwin-run/pwa-sub000/ui/prefs"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	fyneApp := fyneapp.NewWithID("run.digitaltwin.editor")
	fyneApp.Settings().SetTheme(&app.EditorTheme{})

	state := app.NewState()
	p := prefs.Load()

	win := mainwindow.New(fyneApp, state, p)
	win.SetMaster()

	// During development a rebuilt binary offers to restart in place.
	if reloader := app.NewHotReloader(2 * time.Second); reloader != nil {
		reloader.OnNewBinary(func() {
			dialog.ShowConfirm("New Build",
				"A newer binary is available. Restart now?",
				func(restart bool) {
					if !restart {
						reloader.ResetBaseline()
						reloader.Start()
						return
					}
					win.SavePrefs()
					if err := reloader.Restart(); err != nil {
						log.Printf("restart: %v", err)
					}
				}, win)
		})
		reloader.Start()
		defer reloader.Stop()
	}

	win.SetOnClosed(func() {
		win.SavePrefs()
	})

	win.ShowAndRun()
}
