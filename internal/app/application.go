package app

import (
	"fmt"
	"io/fs"
	"math/rand/v2"

	"crocpad/assets"
	"crocpad/internal/config"
	"crocpad/internal/controllers"
	"crocpad/internal/logger"
	"crocpad/internal/prank"
	"crocpad/internal/resources"
	"crocpad/internal/shutdown"
	"crocpad/internal/sound"
	"crocpad/internal/themes"
	"crocpad/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = controllers.AppName
	AppID        = "com.crocpad.crocpadplusplus"
	WindowWidth  = 800
	WindowHeight = 600
)

// Options overrides parts of the wiring; zero values select the real thing
type Options struct {
	ConfigPath string
	Assets     fs.FS
	App        fyne.App
	Player     sound.Player
	Logger     logger.Logger
	Rand       *rand.Rand
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	lifecycle  *Lifecycle
	store      *config.Store
	logger     logger.Logger
}

// NewApplication loads settings and resources and builds the window.
// Any error here means the editor cannot start.
func NewApplication(opts Options) (*Application, error) {
	path := opts.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	store := config.NewStore(path)
	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel()))
	}

	fsys := opts.Assets
	if fsys == nil {
		fsys = assets.FS
	}
	bundle, err := resources.Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	fyneApp := opts.App
	if fyneApp == nil {
		fyneApp = app.NewWithID(AppID)
	}
	fyneApp.SetIcon(bundle.Icon)

	window := fyneApp.NewWindow(AppName)
	window.SetIcon(bundle.Icon)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	lifecycle := NewLifecycle(fyneApp, window, log)

	player := opts.Player
	if player == nil {
		beepPlayer, err := sound.NewBeepPlayer(bundle.Sounds, log)
		if err != nil {
			return nil, fmt.Errorf("load sound effects: %w", err)
		}
		player = beepPlayer
	}
	if stopper, ok := player.(shutdown.Shutdownable); ok {
		lifecycle.Register("sound", stopper)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	registry := themes.NewRegistry()
	view := views.NewMainView(fyneApp, window)
	interceptor := prank.NewInterceptor(cfg, player, view, rng, log)

	controller := controllers.NewMainController(controllers.Dependencies{
		View:    view,
		Store:   store,
		Config:  cfg,
		Themes:  registry,
		License: bundle.License,
		Tips:    bundle.Tips,
		Rand:    rng,
		Logger:  log,
	})

	view.SetKeyFilter(func(key fyne.KeyName) bool {
		return interceptor.KeyPressed(key).Consumed
	})
	view.SetTextChangedHandler(controller.TextChanged)
	view.SetMenus(views.MenuActions{
		ShowTip:      controller.ShowTip,
		SetTheme:     controller.SetTheme,
		InsertSymbol: controller.InsertSymbol,
		OpenSettings: controller.OpenSettings,
		OpenFile:     controller.OpenFile,
		SaveFile:     controller.SaveFile,
		NewFile:      controller.NewFile,
		ChangeFont:   controller.ChangeFont,
		ToggleWrap:   controller.ToggleWrap,
		ToggleSound:  controller.ToggleSound,
	}, registry)

	controller.Restore()
	lifecycle.Attach(controller.Startup)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"settings":   store.Path(),
		"visualmode": cfg.Theme(),
		"linewrap":   cfg.LineWrap(),
		"sounds":     cfg.SoundEnabled(),
		"eula":       cfg.EULAAccepted(),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		lifecycle:  lifecycle,
		store:      store,
		logger:     log,
	}, nil
}

// Run shows the window and blocks until the event loop ends
func (a *Application) Run() {
	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()
	a.lifecycle.Shutdown()
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}
