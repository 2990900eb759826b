package components

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and a summary of the document
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	documentInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.documentInfo = widget.NewLabel(documentSummary(""))
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.documentInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetDocumentText refreshes the line and character counts
func (sb *StatusBar) SetDocumentText(text string) {
	sb.documentInfo.SetText(documentSummary(text))
}

// GetDocumentInfo returns the document summary text
func (sb *StatusBar) GetDocumentInfo() string {
	return sb.documentInfo.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.documentInfo.SetText(documentSummary(""))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func documentSummary(text string) string {
	lines := strings.Count(text, "\n") + 1
	return fmt.Sprintf("Lines: %d  Characters: %d", lines, len([]rune(text)))
}
