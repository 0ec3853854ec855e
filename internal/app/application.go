package app

import (
	"image"

	"booksy-collection/internal/background"
	"booksy-collection/internal/catalog"
	"booksy-collection/internal/config"
	"booksy-collection/internal/controllers"
	"booksy-collection/internal/logger"
	"booksy-collection/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Booksy Collection"
	AppID      = "io.booksy.collection"
	AppVersion = "1.0.0"
	WindowName = "📚 Booksy Collection"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	config     config.Config
	store      *catalog.Store
	view       *views.MainView
	controller *controllers.MainController
	lifecycle  *Lifecycle
}

// NewApplication creates the fyne application and loads the catalog.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return NewApplicationWithApp(fyneApp, cfg, log, controllers.UIScheduler)
}

// NewApplicationWithApp wires the application onto an existing fyne.App.
func NewApplicationWithApp(fyneApp fyne.App, cfg config.Config, log logger.Logger, schedule controllers.Scheduler) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	window := fyneApp.NewWindow(WindowName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"data_file":  cfg.DataFile,
		"background": cfg.Background,
		"width":      cfg.WindowWidth,
		"height":     cfg.WindowHeight,
	})

	store := catalog.NewStore(cfg.DataFile, log)
	books, err := store.Load()
	if err != nil {
		return nil, err
	}

	view := views.NewMainView(window)

	application := &Application{
		fyneApp: fyneApp,
		window:  window,
		logger:  log,
		config:  cfg,
		store:   store,
		view:    view,
	}

	application.controller = controllers.NewMainController(view, store, books, log, controllers.Options{
		SplashDelay: cfg.SplashDelay,
		Background:  application.loadBackground,
		Schedule:    schedule,
	})
	application.lifecycle = NewLifecycle(application.controller, log)
	application.setupMenus()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// loadBackground sizes the splash picture to the window as it is now.
func (a *Application) loadBackground() (image.Image, error) {
	size := a.window.Canvas().Size()
	width, height := int(size.Width), int(size.Height)
	if width <= 0 || height <= 0 {
		width, height = int(a.config.WindowWidth), int(a.config.WindowHeight)
	}
	return background.Load(a.config.Background, width, height)
}

// Start shows the splash screen without entering the event loop.
func (a *Application) Start() error {
	return a.controller.Start()
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	if err := a.Start(); err != nil {
		return err
	}

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	return nil
}

// Quit stops the event loop from any goroutine.
func (a *Application) Quit() {
	fyne.Do(a.fyneApp.Quit)
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}
