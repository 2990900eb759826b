// Package themes provides the four application-wide looks of Crocpad++.
package themes

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	Light       = "light"
	Dark        = "dark"
	HotDogStand = "hotdogstand"
	QuiteDark   = "quitedark"
)

// TextSize is the editor point size every theme enforces
const TextSize float32 = 30

// houseStyle is the only typeface Crocpad++ renders body text in
var houseStyle = fyne.TextStyle{Bold: true, Italic: true}

// EditorTheme overrides a handful of palette entries on top of Fyne's default
// theme and forces the house typeface and text size.
type EditorTheme struct {
	name    string
	label   string
	variant fyne.ThemeVariant
	palette map[fyne.ThemeColorName]color.Color
}

var _ fyne.Theme = (*EditorTheme)(nil)

func (t *EditorTheme) Name() string  { return t.name }
func (t *EditorTheme) Label() string { return t.label }

func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if c, ok := t.palette[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font ignores the requested style except for monospace and symbol text
func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace || style.Symbol {
		return theme.DefaultTheme().Font(style)
	}
	return theme.DefaultTheme().Font(houseStyle)
}

func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return TextSize
	}
	return theme.DefaultTheme().Size(name)
}

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func newLight() *EditorTheme {
	return &EditorTheme{
		name:    Light,
		label:   "Light mode",
		variant: theme.VariantLight,
		palette: map[fyne.ThemeColorName]color.Color{
			theme.ColorNameBackground:      rgb(0xff, 0xff, 0xff),
			theme.ColorNameInputBackground: rgb(0xfa, 0xfa, 0xfa),
			theme.ColorNameForeground:      rgb(0x10, 0x10, 0x10),
		},
	}
}

func newDark() *EditorTheme {
	return &EditorTheme{
		name:    Dark,
		label:   "Dark mode",
		variant: theme.VariantDark,
		palette: map[fyne.ThemeColorName]color.Color{
			theme.ColorNameBackground:      rgb(0x2b, 0x2b, 0x2b),
			theme.ColorNameInputBackground: rgb(0x1e, 0x1e, 0x1e),
			theme.ColorNameForeground:      rgb(0xe0, 0xe0, 0xe0),
		},
	}
}

// newHotDogStand is the "high visibility" accessibility theme
func newHotDogStand() *EditorTheme {
	red, yellow := rgb(0xff, 0x00, 0x00), rgb(0xff, 0xff, 0x00)
	return &EditorTheme{
		name:    HotDogStand,
		label:   "High visibility theme",
		variant: theme.VariantLight,
		palette: map[fyne.ThemeColorName]color.Color{
			theme.ColorNameBackground:        red,
			theme.ColorNameInputBackground:   yellow,
			theme.ColorNameForeground:        rgb(0x00, 0x00, 0x00),
			theme.ColorNameButton:            yellow,
			theme.ColorNamePrimary:           rgb(0x00, 0x00, 0xff),
			theme.ColorNameMenuBackground:    red,
			theme.ColorNameOverlayBackground: yellow,
			theme.ColorNameSelection:         rgb(0x00, 0x00, 0xff),
		},
	}
}

// newQuiteDark is the "theme for blind users": near-black text on black
func newQuiteDark() *EditorTheme {
	black := rgb(0x00, 0x00, 0x00)
	return &EditorTheme{
		name:    QuiteDark,
		label:   "Theme for blind users",
		variant: theme.VariantDark,
		palette: map[fyne.ThemeColorName]color.Color{
			theme.ColorNameBackground:        black,
			theme.ColorNameInputBackground:   black,
			theme.ColorNameForeground:        rgb(0x08, 0x08, 0x08),
			theme.ColorNameButton:            black,
			theme.ColorNameMenuBackground:    black,
			theme.ColorNameOverlayBackground: black,
			theme.ColorNamePlaceHolder:       black,
		},
	}
}

// Registry looks themes up by the name stored in the settings file
type Registry struct {
	order  []string
	themes map[string]*EditorTheme
}

func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*EditorTheme)}
	for _, t := range []*EditorTheme{newLight(), newDark(), newHotDogStand(), newQuiteDark()} {
		r.order = append(r.order, t.name)
		r.themes[t.name] = t
	}
	return r
}

// Names returns the registered theme names in menu order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Registry) Lookup(name string) (*EditorTheme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Default is the theme used when the stored name is unknown
func (r *Registry) Default() *EditorTheme {
	return r.themes[Light]
}
