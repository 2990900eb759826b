package prank

import (
	"math/rand/v2"
	"testing"

	"crocpad/internal/logger"
	"crocpad/internal/sound"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

type soundSetting bool

func (s soundSetting) SoundEnabled() bool { return bool(s) }

type event struct {
	op  string
	cue sound.Cue
}

type recordingPlayer struct {
	events []event
}

func (r *recordingPlayer) Play(cue sound.Cue) { r.events = append(r.events, event{"play", cue}) }
func (r *recordingPlayer) Stop(cue sound.Cue) { r.events = append(r.events, event{"stop", cue}) }

func (r *recordingPlayer) played() []sound.Cue {
	var cues []sound.Cue
	for _, e := range r.events {
		if e.op == "play" {
			cues = append(cues, e.cue)
		}
	}
	return cues
}

type countingPrompter struct {
	flashes         int
	troubleshooters int
}

func (c *countingPrompter) FlashConfirm()       { c.flashes++ }
func (c *countingPrompter) ShowTroubleshooter() { c.troubleshooters++ }

// quietRNG never rolls under either probability
func quietRNG() *rand.Rand {
	return rand.New(constSource(^uint64(0)))
}

// loudRNG always rolls under both probabilities
func loudRNG() *rand.Rand {
	return rand.New(constSource(0))
}

type constSource uint64

func (c constSource) Uint64() uint64 { return uint64(c) }

func newTestInterceptor(soundOn bool, rng *rand.Rand) (*Interceptor, *recordingPlayer, *countingPrompter) {
	player := &recordingPlayer{}
	prompter := &countingPrompter{}
	return NewInterceptor(soundSetting(soundOn), player, prompter, rng, logger.NoOpLogger{}), player, prompter
}

func TestSoundPolicy(t *testing.T) {
	tests := []struct {
		name   string
		sound  bool
		key    fyne.KeyName
		events []event
	}{
		{
			name:   "backspace with sound off is silent",
			sound:  false,
			key:    fyne.KeyBackspace,
			events: nil,
		},
		{
			name:   "backspace plays only the error sound",
			sound:  true,
			key:    fyne.KeyBackspace,
			events: []event{{"stop", sound.CueDefault}, {"play", sound.CueError}},
		},
		{
			name:   "return screams then clicks",
			sound:  true,
			key:    fyne.KeyReturn,
			events: []event{{"stop", sound.CueDefault}, {"play", sound.CueEnter}, {"play", sound.CueDefault}},
		},
		{
			name:   "keypad enter behaves like return",
			sound:  true,
			key:    fyne.KeyEnter,
			events: []event{{"stop", sound.CueDefault}, {"play", sound.CueEnter}, {"play", sound.CueDefault}},
		},
		{
			name:   "letters click",
			sound:  true,
			key:    fyne.KeyA,
			events: []event{{"play", sound.CueDefault}},
		},
		{
			name:   "space clicks",
			sound:  true,
			key:    fyne.KeySpace,
			events: []event{{"play", sound.CueDefault}},
		},
		{
			name:   "letters with sound off are silent",
			sound:  false,
			key:    fyne.KeyQ,
			events: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, player, _ := newTestInterceptor(tt.sound, quietRNG())

			res := i.KeyPressed(tt.key)

			assert.Equal(t, tt.events, player.events)
			assert.Equal(t, player.played(), res.Played)
			assert.False(t, res.Consumed)
		})
	}
}

func TestBackspaceNeverClicks(t *testing.T) {
	i, player, _ := newTestInterceptor(true, quietRNG())
	i.KeyPressed(fyne.KeyBackspace)
	assert.NotContains(t, player.played(), sound.CueDefault)
	assert.Equal(t, []sound.Cue{sound.CueError}, player.played())
}

func TestFlashOnlyOnSpace(t *testing.T) {
	i, _, prompter := newTestInterceptor(false, loudRNG())

	res := i.KeyPressed(fyne.KeyA)
	assert.False(t, res.Flashed)
	assert.Zero(t, prompter.flashes)

	res = i.KeyPressed(fyne.KeySpace)
	assert.True(t, res.Flashed)
	assert.Equal(t, 1, prompter.flashes)
}

func TestAllChecksCanFireTogether(t *testing.T) {
	i, player, prompter := newTestInterceptor(true, loudRNG())

	res := i.KeyPressed(fyne.KeySpace)

	assert.True(t, res.Flashed)
	assert.True(t, res.Troubleshooter)
	assert.Equal(t, []sound.Cue{sound.CueDefault}, player.played())
	assert.Equal(t, 1, prompter.flashes)
	assert.Equal(t, 1, prompter.troubleshooters)
	assert.False(t, res.Consumed)
}

func TestQuietRollsNeverPrank(t *testing.T) {
	i, _, prompter := newTestInterceptor(true, quietRNG())
	for _, key := range []fyne.KeyName{fyne.KeySpace, fyne.KeyA, fyne.KeyReturn, fyne.KeyBackspace} {
		res := i.KeyPressed(key)
		assert.False(t, res.Flashed)
		assert.False(t, res.Troubleshooter)
	}
	assert.Zero(t, prompter.flashes)
	assert.Zero(t, prompter.troubleshooters)
}

func TestPrankProbabilities(t *testing.T) {
	const n = 100000
	i, _, prompter := newTestInterceptor(false, rand.New(rand.NewPCG(20, 5)))

	for k := 0; k < n; k++ {
		i.KeyPressed(fyne.KeySpace)
	}
	assert.InDelta(t, FlashProbability, float64(prompter.flashes)/n, 0.01)
	assert.InDelta(t, TroubleshooterProbability, float64(prompter.troubleshooters)/n, 0.005)

	i, _, prompter = newTestInterceptor(false, rand.New(rand.NewPCG(7, 11)))
	for k := 0; k < n; k++ {
		i.KeyPressed(fyne.KeyX)
	}
	assert.Zero(t, prompter.flashes)
	assert.InDelta(t, TroubleshooterProbability, float64(prompter.troubleshooters)/n, 0.005)
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	keys := []fyne.KeyName{fyne.KeySpace, fyne.KeyA, fyne.KeyReturn, fyne.KeySpace, fyne.KeyBackspace}

	run := func() []Result {
		i, _, _ := newTestInterceptor(true, rand.New(rand.NewPCG(1, 2)))
		var results []Result
		for round := 0; round < 200; round++ {
			for _, key := range keys {
				results = append(results, i.KeyPressed(key))
			}
		}
		return results
	}

	assert.Equal(t, run(), run())
}
