package controllers

import (
	"fmt"
	"math/rand/v2"

	"crocpad/internal/config"
	"crocpad/internal/document"
	"crocpad/internal/logger"
	"crocpad/internal/onboarding"
	"crocpad/internal/themes"

	"fyne.io/fyne/v2"
)

// AppName prefixes the window title
const AppName = "Crocpad++"

// Fonts offered by the Change font dialog
var Fonts = []string{"Comic Sans MS"}

// Symbols offered by the Insert symbol dialog
var Symbols = []string{
	"🐊", "🐍", "🌭", "💳", "🔊", "😱", "✅", "❌",
	"©", "®", "™", "§", "¶", "†", "‡", "•",
	"←", "→", "↑", "↓", "★", "☆", "♠", "♥",
	"♦", "♣", "☺", "☹", "∞", "≈", "≠", "±",
}

// View is everything the controller needs from the window
type View interface {
	onboarding.Presenter

	SetTitle(title string)
	SetText(text string)
	InsertText(text string)
	SetLineWrap(on bool)
	SetWrapChecked(on bool)
	SetSoundChecked(on bool)
	ApplyTheme(th fyne.Theme)
	SetStatus(status string)

	ShowTip(tip string)
	ShowError(title string, err error)
	ChooseOpenPath(onChosen func(path string))
	ChooseSavePath(onChosen func(path string))
	ChooseFont(fonts []string, onChosen func(font string))
	ChooseSymbol(symbols []string, onChosen func(symbol string))
}

// ConfigStore persists the settings
type ConfigStore interface {
	Path() string
	Save(cfg *config.AppConfig) error
}

// Dependencies groups what NewMainController needs
type Dependencies struct {
	View    View
	Store   ConfigStore
	Config  *config.AppConfig
	Themes  *themes.Registry
	License string
	Tips    []string
	Rand    *rand.Rand
	Logger  logger.Logger
}

// MainController owns the settings and the document and implements every menu action.
// All methods run on the UI thread.
type MainController struct {
	view   View
	store  ConfigStore
	cfg    *config.AppConfig
	themes *themes.Registry
	doc    *document.Document
	tips   []string
	rng    *rand.Rand
	logger logger.Logger

	onboarding *onboarding.Flow
}

// NewMainController creates a new main controller
func NewMainController(deps Dependencies) *MainController {
	mc := &MainController{
		view:   deps.View,
		store:  deps.Store,
		cfg:    deps.Config,
		themes: deps.Themes,
		doc:    document.New(),
		tips:   deps.Tips,
		rng:    deps.Rand,
		logger: deps.Logger,
	}
	mc.onboarding = onboarding.NewFlow(deps.License, onboarding.LicenseQuiz, deps.View, licenseAcceptance{mc}, deps.Logger)
	return mc
}

// Document exposes the current document
func (mc *MainController) Document() *document.Document {
	return mc.doc
}

// Onboarding exposes the license gate
func (mc *MainController) Onboarding() *onboarding.Flow {
	return mc.onboarding
}

// Restore applies the stored settings to a freshly built window
func (mc *MainController) Restore() {
	mc.view.ApplyTheme(mc.resolveTheme(mc.cfg.Theme()))

	wrap := mc.cfg.LineWrap()
	mc.view.SetLineWrap(wrap)
	mc.view.SetWrapChecked(wrap)
	mc.view.SetSoundChecked(mc.cfg.SoundEnabled())

	mc.setDocumentName(document.UntitledName)
}

// Startup runs the license gate and then shows the tip of the day
func (mc *MainController) Startup() {
	mc.onboarding.Start(mc.ShowTip)
}

// TextChanged keeps the document in step with the editor widget
func (mc *MainController) TextChanged(text string) {
	mc.doc.SetText(text)
}

// ShowTip displays a uniformly random tip
func (mc *MainController) ShowTip() {
	if len(mc.tips) == 0 {
		return
	}
	mc.view.ShowTip(mc.tips[mc.rng.IntN(len(mc.tips))])
}

// SetTheme applies a theme app-wide and remembers it
func (mc *MainController) SetTheme(name string) {
	th, ok := mc.themes.Lookup(name)
	if !ok {
		mc.logger.Warning("MainController", "unknown theme requested", map[string]interface{}{
			"theme": name,
		})
		return
	}

	mc.view.ApplyTheme(th)
	mc.cfg.SetTheme(name)
	mc.persist()
}

// ToggleWrap flips line wrapping on the live editor
func (mc *MainController) ToggleWrap() {
	on := !mc.cfg.LineWrap()
	mc.view.SetLineWrap(on)
	mc.view.SetWrapChecked(on)
	mc.cfg.SetLineWrap(on)
	mc.persist()
}

// ToggleSound flips keystroke sound effects
func (mc *MainController) ToggleSound() {
	on := !mc.cfg.SoundEnabled()
	mc.cfg.SetSoundEnabled(on)
	mc.view.SetSoundChecked(on)
	mc.persist()
}

// OpenFile asks for a path and loads it into the editor
func (mc *MainController) OpenFile() {
	mc.view.ChooseOpenPath(func(path string) {
		if path == "" {
			return
		}
		mc.load(path, "Open failed")
	})
}

// SaveFile asks for a path and writes the editor contents to it
func (mc *MainController) SaveFile() {
	mc.view.ChooseSavePath(func(path string) {
		if path == "" {
			return
		}

		if err := document.Save(path, mc.doc.Text()); err != nil {
			mc.handleError("Save failed", err)
			return
		}

		mc.setDocumentName(path)
		mc.view.SetStatus(fmt.Sprintf("Saved %s", path))
		mc.logger.Info("MainController", "document saved", map[string]interface{}{
			"path":  path,
			"bytes": len(mc.doc.Text()),
		})
	})
}

// NewFile starts a fresh untitled document, which is never actually empty
func (mc *MainController) NewFile() {
	mc.setDocumentName(document.UntitledName)
	mc.replaceText(document.Advertisement)
}

// OpenSettings loads the settings file itself into the editor
func (mc *MainController) OpenSettings() {
	mc.load(mc.store.Path(), "Open settings failed")
}

// ChangeFont offers a font dialog; the choice is noted and nothing changes
func (mc *MainController) ChangeFont() {
	mc.view.ChooseFont(Fonts, func(font string) {
		if font == "" {
			return
		}
		mc.logger.Info("MainController", "font change requested", map[string]interface{}{
			"font": font,
		})
	})
}

// InsertSymbol inserts a picked symbol at the cursor
func (mc *MainController) InsertSymbol() {
	mc.view.ChooseSymbol(Symbols, func(symbol string) {
		if symbol == "" {
			return
		}
		mc.view.InsertText(symbol)
	})
}

func (mc *MainController) load(path, errorTitle string) {
	text, err := document.Load(path)
	if err != nil {
		mc.handleError(errorTitle, err)
		return
	}

	mc.replaceText(text)
	mc.setDocumentName(path)
	mc.view.SetStatus(fmt.Sprintf("Opened %s", path))
	mc.logger.Info("MainController", "document opened", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
}

func (mc *MainController) replaceText(text string) {
	mc.doc.SetText(text)
	mc.view.SetText(text)
}

// setDocumentName records the name and then refreshes the window title
func (mc *MainController) setDocumentName(name string) {
	mc.doc.SetName(name)
	mc.view.SetTitle(fmt.Sprintf("%s - %s", AppName, name))
}

func (mc *MainController) resolveTheme(name string) fyne.Theme {
	if th, ok := mc.themes.Lookup(name); ok {
		return th
	}
	mc.logger.Warning("MainController", "unknown theme in settings, using default", map[string]interface{}{
		"theme": name,
	})
	return mc.themes.Default()
}

// persist saves the settings after a mutation
func (mc *MainController) persist() error {
	if err := mc.store.Save(mc.cfg); err != nil {
		mc.handleError("Settings not saved", err)
		return err
	}
	mc.logger.Debug("MainController", "settings saved", map[string]interface{}{
		"path": mc.store.Path(),
	})
	return nil
}

// handleError logs err and shows it without ending the session
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})
	mc.view.ShowError(title, err)
}

// licenseAcceptance stores the onboarding outcome in the settings file
type licenseAcceptance struct {
	mc *MainController
}

func (a licenseAcceptance) EULAAccepted() bool {
	return a.mc.cfg.EULAAccepted()
}

func (a licenseAcceptance) Accept() error {
	a.mc.cfg.SetEULAAccepted(true)
	if err := a.mc.persist(); err != nil {
		return fmt.Errorf("record license acceptance: %w", err)
	}
	return nil
}
