package app

import (
	"crocpad/internal/logger"
	"crocpad/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle ties startup and every way of leaving the editor to one shutdown sequence
type Lifecycle struct {
	fyneApp fyne.App
	window  fyne.Window
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, window fyne.Window, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		window:  window,
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

// Attach runs onStarted once the event loop is up and hooks window close
// and termination signals into Shutdown
func (l *Lifecycle) Attach(onStarted func()) {
	l.fyneApp.Lifecycle().SetOnStarted(func() {
		l.logger.Debug("Lifecycle", "event loop started", nil)
		onStarted()
	})

	l.window.SetCloseIntercept(func() {
		l.logger.Info("Lifecycle", "window close requested", nil)
		l.Shutdown()
		l.window.Close()
	})

	l.manager.Listen(func() {
		fyne.Do(l.quit)
	})
}

func (l *Lifecycle) quit() {
	l.Shutdown()
	l.fyneApp.Quit()
}

// Shutdown stops every registered component; later calls do nothing
func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
