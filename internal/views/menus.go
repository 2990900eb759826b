package views

import (
	"strconv"

	"crocpad/internal/themes"

	"fyne.io/fyne/v2"
)

// RecentFileCount is the number of decorative Recent Files submenus
const RecentFileCount = 200

// MenuActions binds each menu entry to its handler
type MenuActions struct {
	ShowTip      func()
	SetTheme     func(name string)
	InsertSymbol func()
	OpenSettings func()
	OpenFile     func()
	SaveFile     func()
	NewFile      func()
	ChangeFont   func()
	ToggleWrap   func()
	ToggleSound  func()
}

// Menus is the built menu bar plus the two checkable items that need refreshing
type Menus struct {
	Main  *fyne.MainMenu
	Wrap  *fyne.MenuItem
	Sound *fyne.MenuItem
}

// BuildMenus constructs the six top-level menus in their fixed order
func BuildMenus(actions MenuActions, registry *themes.Registry) *Menus {
	wrapItem := fyne.NewMenuItem("Line wrap", actions.ToggleWrap)
	wrapItem.Checked = true
	soundItem := fyne.NewMenuItem("Sound effects", actions.ToggleSound)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Tip of the Day", actions.ShowTip),
	)

	themesItem := fyne.NewMenuItem("Themes", nil)
	themesItem.ChildMenu = fyne.NewMenu("",
		themeItem(registry, themes.Light, actions.SetTheme),
		themeItem(registry, themes.Dark, actions.SetTheme),
	)
	accessibilityItem := fyne.NewMenuItem("Accessibility", nil)
	accessibilityItem.ChildMenu = fyne.NewMenu("",
		themeItem(registry, themes.HotDogStand, actions.SetTheme),
		themeItem(registry, themes.QuiteDark, actions.SetTheme),
	)
	viewMenu := fyne.NewMenu("View", themesItem, accessibilityItem)

	recentMenu := fyne.NewMenu("Recent Files", recentFileItems()...)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Insert symbol", actions.InsertSymbol),
		fyne.NewMenuItem("Open settings file", actions.OpenSettings),
	)

	searchMenu := fyne.NewMenu("Search",
		fyne.NewMenuItem("Search for file to open", actions.OpenFile),
		fyne.NewMenuItem("Search for file to save", actions.SaveFile),
		fyne.NewMenuItem("Search for a new file", actions.NewFile),
	)

	toolsMenu := fyne.NewMenu("Special Tools",
		fyne.NewMenuItem("Change font", actions.ChangeFont),
		wrapItem,
		soundItem,
	)

	return &Menus{
		Main:  fyne.NewMainMenu(helpMenu, viewMenu, recentMenu, editMenu, searchMenu, toolsMenu),
		Wrap:  wrapItem,
		Sound: soundItem,
	}
}

func themeItem(registry *themes.Registry, name string, setTheme func(string)) *fyne.MenuItem {
	label := name
	if th, ok := registry.Lookup(name); ok {
		label = th.Label()
	}
	return fyne.NewMenuItem(label, func() {
		setTheme(name)
	})
}

// recentFileItems returns numbered submenus that never contain anything
func recentFileItems() []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, RecentFileCount)
	for i := range items {
		item := fyne.NewMenuItem(strconv.Itoa(i), nil)
		item.ChildMenu = fyne.NewMenu("")
		items[i] = item
	}
	return items
}
