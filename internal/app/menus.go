package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About "+AppName, a.aboutText(), a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *Application) aboutText() string {
	return fmt.Sprintf("%s %s\nCatalog: %s\nBooks: %d",
		AppName, AppVersion, a.store.Path(), a.controller.Catalog().Count())
}
