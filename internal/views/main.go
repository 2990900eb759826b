package views

import (
	"crocpad/internal/themes"
	"crocpad/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MainView is the editor window: menu bar, editor pane and status bar
type MainView struct {
	app    fyne.App
	window fyne.Window

	mainContainer *fyne.Container
	editor        *components.Editor
	statusBar     *components.StatusBar
	menus         *Menus

	textChangedHandler func(string)
}

// NewMainView creates a new main view
func NewMainView(app fyne.App, window fyne.Window) *MainView {
	view := &MainView{
		app:    app,
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.editor = components.NewEditor()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.editor,
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.editor.OnChanged = func(text string) {
		mv.statusBar.SetDocumentText(text)
		if mv.textChangedHandler != nil {
			mv.textChangedHandler(text)
		}
	}
}

// Event handler setters - called during application wiring

// SetKeyFilter sets the filter every key press passes through
func (mv *MainView) SetKeyFilter(filter components.KeyFilter) {
	mv.editor.SetKeyFilter(filter)
}

// SetTextChangedHandler sets the handler for edits to the buffer
func (mv *MainView) SetTextChangedHandler(handler func(string)) {
	mv.textChangedHandler = handler
}

// SetMenus builds the menu bar and installs it on the window
func (mv *MainView) SetMenus(actions MenuActions, registry *themes.Registry) {
	mv.menus = BuildMenus(actions, registry)
	mv.window.SetMainMenu(mv.menus.Main)
}

// UI update methods - called by controller

// SetTitle updates the window title
func (mv *MainView) SetTitle(title string) {
	mv.window.SetTitle(title)
}

// SetText replaces the whole buffer
func (mv *MainView) SetText(text string) {
	mv.editor.SetText(text)
}

// InsertText types text at the cursor
func (mv *MainView) InsertText(text string) {
	mv.editor.Insert(text)
	mv.window.Canvas().Focus(mv.editor)
}

// SetLineWrap applies the wrap mode to the live editor
func (mv *MainView) SetLineWrap(on bool) {
	mv.editor.SetLineWrap(on)
}

// SetWrapChecked updates the Line wrap menu tick
func (mv *MainView) SetWrapChecked(on bool) {
	if mv.menus == nil {
		return
	}
	mv.menus.Wrap.Checked = on
	mv.menus.Main.Refresh()
}

// SetSoundChecked updates the Sound effects menu tick
func (mv *MainView) SetSoundChecked(on bool) {
	if mv.menus == nil {
		return
	}
	mv.menus.Sound.Checked = on
	mv.menus.Main.Refresh()
}

// ApplyTheme switches the look of the whole application
func (mv *MainView) ApplyTheme(th fyne.Theme) {
	mv.app.Settings().SetTheme(th)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Show displays the window and focuses the editor
func (mv *MainView) Show() {
	mv.window.Show()
	mv.window.Canvas().Focus(mv.editor)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Editor returns the editor widget
func (mv *MainView) Editor() *components.Editor {
	return mv.editor
}

// Menus returns the installed menus, nil before SetMenus
func (mv *MainView) Menus() *Menus {
	return mv.menus
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
