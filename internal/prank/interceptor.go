// Package prank turns ordinary typing into a series of small interruptions.
package prank

import (
	"math/rand/v2"

	"crocpad/internal/logger"
	"crocpad/internal/sound"

	"fyne.io/fyne/v2"
)

const (
	// FlashProbability is the chance a space flashes the "Are you sure?" dialog
	FlashProbability = 0.20
	// TroubleshooterProbability is the chance any key opens the troubleshooter
	TroubleshooterProbability = 0.05
)

// Settings exposes the live sound preference
type Settings interface {
	SoundEnabled() bool
}

// Prompter shows the prank dialogs
type Prompter interface {
	FlashConfirm()
	ShowTroubleshooter()
}

// Result describes what a single key press set off
type Result struct {
	Consumed       bool
	Played         []sound.Cue
	Stopped        []sound.Cue
	Flashed        bool
	Troubleshooter bool
}

// Interceptor sees every key press before the editor does
type Interceptor struct {
	settings Settings
	player   sound.Player
	prompter Prompter
	rng      *rand.Rand
	logger   logger.Logger
}

func NewInterceptor(settings Settings, player sound.Player, prompter Prompter, rng *rand.Rand, log logger.Logger) *Interceptor {
	return &Interceptor{
		settings: settings,
		player:   player,
		prompter: prompter,
		rng:      rng,
		logger:   log,
	}
}

// KeyPressed runs the sound, flash and troubleshooter checks in that order.
// The three are independent and the event is never consumed.
func (i *Interceptor) KeyPressed(key fyne.KeyName) Result {
	var res Result

	if i.settings.SoundEnabled() {
		i.playSounds(key, &res)
	}

	if key == fyne.KeySpace && i.rng.Float64() < FlashProbability {
		res.Flashed = true
		i.prompter.FlashConfirm()
	}

	if i.rng.Float64() < TroubleshooterProbability {
		res.Troubleshooter = true
		i.logger.Debug("Interceptor", "troubleshooter triggered", map[string]interface{}{
			"key": string(key),
		})
		i.prompter.ShowTroubleshooter()
	}

	return res
}

// playSounds follows the editor's long-standing branch chain: Enter screams
// and then also clicks, Backspace buzzes instead of clicking.
func (i *Interceptor) playSounds(key fyne.KeyName, res *Result) {
	if isEnter(key) {
		i.stop(sound.CueDefault, res)
		i.play(sound.CueEnter, res)
	}
	if key == fyne.KeyBackspace {
		i.stop(sound.CueDefault, res)
		i.play(sound.CueError, res)
	} else {
		i.play(sound.CueDefault, res)
	}
}

func (i *Interceptor) play(cue sound.Cue, res *Result) {
	i.player.Play(cue)
	res.Played = append(res.Played, cue)
}

func (i *Interceptor) stop(cue sound.Cue, res *Result) {
	i.player.Stop(cue)
	res.Stopped = append(res.Stopped, cue)
}

func isEnter(key fyne.KeyName) bool {
	return key == fyne.KeyReturn || key == fyne.KeyEnter
}
