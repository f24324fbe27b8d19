package alert

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// toneCache stores pre-rendered one-shot tone buffers
type toneCache struct {
	mu    sync.RWMutex
	store [toneCount]*beep.Buffer
	ready [toneCount]bool
}

func newToneCache() *toneCache {
	return &toneCache{}
}

// get returns the cached buffer or renders on demand
func (c *toneCache) get(t Tone) *beep.Buffer {
	if t < 0 || t >= toneCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[t] {
		buf := c.store[t]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[t] {
		return c.store[t]
	}

	buf := renderTone(t)
	c.store[t] = buf
	c.ready[t] = true
	return buf
}

// renderTone renders a one-shot tone into a reusable buffer
func renderTone(t Tone) *beep.Buffer {
	format := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	var streamer beep.Streamer
	switch t {
	case ToneTrackNew:
		streamer = beep.Take(sampleRate.N(time.Millisecond*300), NewChimeGenerator(sampleRate))
	case ToneTrackStale:
		streamer = beep.Take(sampleRate.N(time.Millisecond*200), NewBuzzGenerator(sampleRate, 220))
	case ToneTrackLost:
		streamer = beep.Take(sampleRate.N(time.Millisecond*350), NewBuzzGenerator(sampleRate, 120))
	default:
		return nil
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf
}
