// Package sound plays the keystroke sound effects.
package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"crocpad/internal/logger"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Cue names one of the keystroke clips
type Cue string

const (
	CueDefault Cue = "default"
	CueEnter   Cue = "enter"
	CueError   Cue = "error"
)

// Cues lists every clip the player expects
var Cues = []Cue{CueDefault, CueEnter, CueError}

// SampleRate is the rate the speaker runs at; clips are resampled to it
const SampleRate beep.SampleRate = 44100

const resampleQuality = 4

// Player starts and stops cue playback
type Player interface {
	Play(cue Cue)
	Stop(cue Cue)
}

// BeepPlayer mixes decoded clips through the beep speaker.
// Each cue keeps a handle to its most recent playback so it can be stopped.
type BeepPlayer struct {
	mu      sync.Mutex
	buffers map[Cue]*beep.Buffer
	playing map[Cue]*beep.Ctrl
	output  func(s ...beep.Streamer)
	locker  sync.Locker
	muted   bool
	logger  logger.Logger
}

type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// NewBeepPlayer decodes every clip and opens the audio device. A clip that
// fails to decode is an error; a missing audio device only mutes the player.
func NewBeepPlayer(clips map[Cue][]byte, log logger.Logger) (*BeepPlayer, error) {
	buffers, err := Decode(clips)
	if err != nil {
		return nil, err
	}

	p := newPlayer(buffers, speaker.Play, speakerLocker{}, log)

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		log.Warning("BeepPlayer", "audio device unavailable, sound effects muted", map[string]interface{}{
			"error": err.Error(),
		})
		p.muted = true
	}

	return p, nil
}

func newPlayer(buffers map[Cue]*beep.Buffer, output func(s ...beep.Streamer), locker sync.Locker, log logger.Logger) *BeepPlayer {
	return &BeepPlayer{
		buffers: buffers,
		playing: make(map[Cue]*beep.Ctrl),
		output:  output,
		locker:  locker,
		logger:  log,
	}
}

// Decode turns wav bytes into in-memory buffers at SampleRate
func Decode(clips map[Cue][]byte) (map[Cue]*beep.Buffer, error) {
	buffers := make(map[Cue]*beep.Buffer, len(Cues))
	for _, cue := range Cues {
		data, ok := clips[cue]
		if !ok {
			return nil, fmt.Errorf("sound %q: clip missing", cue)
		}

		streamer, format, err := wav.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("sound %q: decode wav: %w", cue, err)
		}

		target := format
		target.SampleRate = SampleRate
		buffer := beep.NewBuffer(target)
		buffer.Append(beep.Resample(resampleQuality, format.SampleRate, SampleRate, streamer))
		streamer.Close()

		if buffer.Len() == 0 {
			return nil, fmt.Errorf("sound %q: clip is empty", cue)
		}
		buffers[cue] = buffer
	}
	return buffers, nil
}

// Play starts a fresh playback of cue
func (p *BeepPlayer) Play(cue Cue) {
	if p.muted {
		return
	}
	buffer, ok := p.buffers[cue]
	if !ok {
		return
	}

	ctrl := &beep.Ctrl{Streamer: buffer.Streamer(0, buffer.Len())}

	p.mu.Lock()
	p.playing[cue] = ctrl
	p.mu.Unlock()

	p.output(ctrl)
}

// Stop silences the latest playback of cue, if any
func (p *BeepPlayer) Stop(cue Cue) {
	p.mu.Lock()
	ctrl, ok := p.playing[cue]
	delete(p.playing, cue)
	p.mu.Unlock()

	if !ok {
		return
	}

	p.locker.Lock()
	ctrl.Streamer = nil
	p.locker.Unlock()
}

// Shutdown releases the audio device
func (p *BeepPlayer) Shutdown() {
	if p.muted {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.logger.Debug("BeepPlayer", "audio device closed", nil)
}
