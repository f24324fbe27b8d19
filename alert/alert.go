// Package alert plays procedural notification tones for track events.
// Audio is optional at runtime: initialization failure leaves the
// notifier silent and every play call becomes a no-op
package alert

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Tone identifies an alert sound
type Tone int

const (
	ToneTrackNew Tone = iota
	ToneTrackStale
	ToneTrackLost
	toneCount
)

// Notifier manages alert audio
type Notifier struct {
	mu            sync.Mutex
	mixer         *beep.Mixer
	cache         *toneCache
	alarmStreamer *beep.Ctrl
	initialized   bool
	muted         bool
}

// NewNotifier creates an alert notifier
func NewNotifier() *Notifier {
	return &Notifier{
		mixer: &beep.Mixer{},
		cache: newToneCache(),
	}
}

// Initialize sets up the audio system
func (n *Notifier) Initialize() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(n.mixer)
	n.initialized = true
	return nil
}

// Cleanup stops all sounds and silences the notifier
func (n *Notifier) Cleanup() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return
	}

	if n.alarmStreamer != nil {
		n.alarmStreamer.Paused = true
	}
	n.mixer.Clear()
	n.initialized = false
}

// SetMuted toggles tone playback without tearing down the speaker
func (n *Notifier) SetMuted(muted bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.muted = muted
}

// IsMuted returns the current mute state
func (n *Notifier) IsMuted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.muted
}

// Play queues a one-shot alert tone
func (n *Notifier) Play(t Tone) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized || n.muted {
		return
	}

	buf := n.cache.get(t)
	if buf == nil {
		return
	}
	n.mixer.Add(buf.Streamer(0, buf.Len()))
}

// StartAlarm starts the looping stale-track alarm
func (n *Notifier) StartAlarm() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized || n.muted {
		return
	}

	// If already sounding, don't restart
	if n.alarmStreamer != nil && !n.alarmStreamer.Paused {
		return
	}

	// The pulse generator cycles forever, no loop wrapper needed
	ctrl := &beep.Ctrl{Streamer: NewPulseGenerator(sampleRate), Paused: false}
	n.alarmStreamer = ctrl
	n.mixer.Add(ctrl)
}

// StopAlarm pauses the stale-track alarm
func (n *Notifier) StopAlarm() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.alarmStreamer != nil {
		n.alarmStreamer.Paused = true
	}
}

// ChimeGenerator generates a short two-note rising chime
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	split := g.sr.N(time.Millisecond * 120)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// E6 then A6, each with a fast decay envelope
		freq := 1318.51
		noteT := t
		if g.pos >= split {
			freq = 1760.0
			noteT = float64(g.pos-split) / float64(g.sr)
		}
		envelope := math.Exp(-noteT * 18)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz with harmonics
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms to avoid a click
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// PulseGenerator generates the rhythmic stale-track alarm cycle
type PulseGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewPulseGenerator creates a pulse generator with a 800ms cycle
func NewPulseGenerator(sr beep.SampleRate) *PulseGenerator {
	return &PulseGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 800),
	}
}

func (g *PulseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	pulseLen := g.sr.N(time.Millisecond * 150)
	for i := range samples {
		cyclePos := g.pos % g.samples
		t := float64(cyclePos) / float64(g.sr)

		sample := 0.0
		if cyclePos < pulseLen {
			envelope := 1.0 - float64(cyclePos)/float64(pulseLen)
			sample = 0.25 * envelope * math.Sin(2*math.Pi*660*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PulseGenerator) Err() error {
	return nil
}
