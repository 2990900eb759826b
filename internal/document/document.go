// Package document holds the text being edited and its display name.
package document

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// UntitledName is shown for documents that have never been opened or saved
const UntitledName = "** Untitled **"

// Advertisement replaces the buffer whenever the user asks for a new file
const Advertisement = `To remove this message, please make sure you have entered
your full credit card details, made payable to:
Crocpad++ Inc
PO BOX 477362213321233
Cheshire Cheese
Snekland
Australia`

// ErrNotText is returned when a file's bytes are not valid UTF-8
var ErrNotText = errors.New("file is not UTF-8 text")

// Document is an opaque text buffer plus the name shown in the title bar
type Document struct {
	name string
	text string
}

func New() *Document {
	return &Document{name: UntitledName}
}

func (d *Document) Name() string {
	return d.name
}

func (d *Document) SetName(name string) {
	d.name = name
}

func (d *Document) Text() string {
	return d.text
}

func (d *Document) SetText(text string) {
	d.text = text
}

// Load reads a file and decodes it as UTF-8 text
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("open %s: %w", path, ErrNotText)
	}
	return string(data), nil
}

// Save writes text verbatim to path
func Save(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
