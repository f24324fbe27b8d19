package alert

import (
	"math"
	"testing"
	"time"
)

func TestBuzzGeneratorStream(t *testing.T) {
	gen := NewBuzzGenerator(sampleRate, 220)
	samples := make([][2]float64, 512)

	n, ok := gen.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Expected full stream, got n=%d ok=%v", n, ok)
	}
	if gen.Err() != nil {
		t.Errorf("Expected nil Err, got %v", gen.Err())
	}

	peak := 0.0
	for _, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("Expected mono-identical channels, got %v vs %v", s[0], s[1])
		}
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		t.Errorf("Expected non-silent output")
	}
	if peak > 1.0 {
		t.Errorf("Expected samples within unit range, peak %v", peak)
	}
}

func TestBuzzGeneratorFadesIn(t *testing.T) {
	gen := NewBuzzGenerator(sampleRate, 220)
	samples := make([][2]float64, 16)
	gen.Stream(samples)

	// First samples sit inside the 20ms fade-in window
	if a := math.Abs(samples[1][0]); a > 0.01 {
		t.Errorf("Expected faded-in start, got %v", a)
	}
}

func TestChimeGeneratorDecays(t *testing.T) {
	gen := NewChimeGenerator(sampleRate)
	total := sampleRate.N(time.Millisecond * 100)
	samples := make([][2]float64, total)
	gen.Stream(samples)

	early := peakAmplitude(samples[:total/4])
	late := peakAmplitude(samples[3*total/4:])
	if late >= early {
		t.Errorf("Expected decaying envelope, early peak %v late peak %v", early, late)
	}
}

func TestPulseGeneratorCycle(t *testing.T) {
	gen := NewPulseGenerator(sampleRate)
	cycle := sampleRate.N(time.Millisecond * 800)
	pulse := sampleRate.N(time.Millisecond * 150)
	samples := make([][2]float64, cycle)
	gen.Stream(samples)

	if peakAmplitude(samples[:pulse]) == 0 {
		t.Errorf("Expected audible pulse at cycle start")
	}
	if peakAmplitude(samples[pulse+1:]) != 0 {
		t.Errorf("Expected silence between pulses")
	}
}

func TestToneCacheReusesBuffers(t *testing.T) {
	c := newToneCache()

	first := c.get(ToneTrackStale)
	if first == nil || first.Len() == 0 {
		t.Fatalf("Expected rendered buffer")
	}
	if second := c.get(ToneTrackStale); second != first {
		t.Errorf("Expected cached buffer on second get")
	}
	if c.get(Tone(-1)) != nil || c.get(toneCount) != nil {
		t.Errorf("Expected nil for out-of-range tones")
	}
}

func TestRenderToneLengths(t *testing.T) {
	for tone := Tone(0); tone < toneCount; tone++ {
		buf := renderTone(tone)
		if buf == nil || buf.Len() == 0 {
			t.Errorf("Tone %d: expected non-empty buffer", tone)
		}
	}
}

func TestUninitializedNotifierIsSilent(t *testing.T) {
	n := NewNotifier()

	// None of these may touch the speaker before Initialize
	n.Play(ToneTrackNew)
	n.StartAlarm()
	n.StopAlarm()
	n.Cleanup()

	n.SetMuted(true)
	if !n.IsMuted() {
		t.Errorf("Expected muted state to persist")
	}
}

func peakAmplitude(samples [][2]float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	return peak
}
