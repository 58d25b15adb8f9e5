package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gridsim/power-triangle/internal/history"
	"github.com/gridsim/power-triangle/internal/ui"
)

func main() {
	myApp := app.NewWithID("com.gridsim.power-triangle")
	myWindow := myApp.NewWindow("Power Triangle")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	store := history.NewStore(history.DefaultLimit)
	ui.NewRootUI(myWindow, myApp, store)

	myWindow.ShowAndRun()
}
