// Package resources loads and validates the static files Crocpad++ needs to start.
package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"crocpad/internal/sound"

	"fyne.io/fyne/v2"
)

const (
	LicenseFile = "EULA.txt"
	TipsFile    = "tips.txt"
	IconFile    = "crocpad.png"
)

// SoundFiles maps each keystroke cue to its clip
var SoundFiles = map[sound.Cue]string{
	sound.CueDefault: "sounds/click.wav",
	sound.CueEnter:   "sounds/scream.wav",
	sound.CueError:   "sounds/wrong.wav",
}

// ErrMissing marks a resource that is absent or empty
var ErrMissing = errors.New("resource missing or empty")

// Bundle is the validated set of read-only resources
type Bundle struct {
	License string
	Tips    []string
	Sounds  map[sound.Cue][]byte
	Icon    fyne.Resource
}

// Load reads every resource from fsys and fails on the first missing one
func Load(fsys fs.FS) (*Bundle, error) {
	license, err := readRequired(fsys, LicenseFile)
	if err != nil {
		return nil, err
	}

	tipsData, err := readRequired(fsys, TipsFile)
	if err != nil {
		return nil, err
	}
	tips := parseTips(tipsData)
	if len(tips) == 0 {
		return nil, fmt.Errorf("%s: no tips: %w", TipsFile, ErrMissing)
	}

	icon, err := readRequired(fsys, IconFile)
	if err != nil {
		return nil, err
	}

	sounds := make(map[sound.Cue][]byte, len(SoundFiles))
	for cue, name := range SoundFiles {
		clip, err := readRequired(fsys, name)
		if err != nil {
			return nil, err
		}
		sounds[cue] = []byte(clip)
	}

	return &Bundle{
		License: license,
		Tips:    tips,
		Sounds:  sounds,
		Icon:    fyne.NewStaticResource(IconFile, []byte(icon)),
	}, nil
}

func readRequired(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", name, ErrMissing)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", name, ErrMissing)
	}
	return string(data), nil
}

// parseTips keeps one tip per non-blank line
func parseTips(data string) []string {
	var tips []string
	for _, line := range strings.Split(data, "\n") {
		if tip := strings.TrimSpace(line); tip != "" {
			tips = append(tips, tip)
		}
	}
	return tips
}
