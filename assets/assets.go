// Package assets bundles the read-only resources Crocpad++ ships with.
package assets

import "embed"

// FS holds the license text, tips, keystroke sounds and window icon.
//
//go:embed EULA.txt tips.txt crocpad.png sounds/*.wav
var FS embed.FS
