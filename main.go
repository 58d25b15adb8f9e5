package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gridsim/power-triangle/internal/config"
	"github.com/gridsim/power-triangle/internal/history"
	"github.com/gridsim/power-triangle/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.gridsim.power-triangle"
	AppName = "Power Triangle"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := history.NewStore(settings.GetHistoryLimit())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store)

	// Show and run
	myWindow.ShowAndRun()
}
