package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TabWidth is the tab stop in spaces, roughly 800 pixels at the forced text size
const TabWidth = 80

// KeyFilter sees a key press before the editor and reports whether it consumed it
type KeyFilter func(key fyne.KeyName) bool

// Editor is a multi-line entry whose key presses pass through a filter first
type Editor struct {
	widget.Entry

	filter KeyFilter
}

// NewEditor creates a wrapping multi-line editor
func NewEditor() *Editor {
	e := &Editor{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.TextStyle = fyne.TextStyle{TabWidth: TabWidth}
	e.ExtendBaseWidget(e)
	return e
}

// SetKeyFilter installs the filter consulted on every key press
func (e *Editor) SetKeyFilter(filter KeyFilter) {
	e.filter = filter
}

// TypedKey runs the filter and then, unless consumed, the normal entry handling
func (e *Editor) TypedKey(key *fyne.KeyEvent) {
	if e.filter != nil && e.filter(key.Name) {
		return
	}
	e.Entry.TypedKey(key)
}

// SetLineWrap switches between word wrapping and no wrapping
func (e *Editor) SetLineWrap(on bool) {
	if on {
		e.Wrapping = fyne.TextWrapWord
	} else {
		e.Wrapping = fyne.TextWrapOff
	}
	e.Refresh()
}

// LineWrap reports whether word wrapping is active
func (e *Editor) LineWrap() bool {
	return e.Wrapping != fyne.TextWrapOff
}

// Insert types text at the cursor, replacing any selection
func (e *Editor) Insert(text string) {
	for _, r := range text {
		e.Entry.TypedRune(r)
	}
}
