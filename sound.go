package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const popSampleRate = beep.SampleRate(44100)

// popPlayer plays the short click pop. The sound is synthesized in the
// streamer; there are no audio assets.
type popPlayer struct {
	mixer *beep.Mixer
}

// newPopPlayer opens the audio device and returns nil if it cannot, which
// callers treat as sound-off.
func newPopPlayer() *popPlayer {
	if err := speaker.Init(popSampleRate, popSampleRate.N(time.Millisecond*50)); err != nil {
		log.Printf("audio: speaker init failed: %v (sound disabled)", err)
		return nil
	}
	p := &popPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p
}

func (p *popPlayer) Play() {
	speaker.Lock()
	p.mixer.Add(newPopStream(90 * time.Millisecond))
	speaker.Unlock()
}

// popStream is a noise burst under an exponential decay envelope.
type popStream struct {
	length   int
	position int
	envelope float64
}

func newPopStream(d time.Duration) beep.Streamer {
	return &popStream{length: popSampleRate.N(d), envelope: 0.4}
}

func (s *popStream) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, false
		}
		v := (rand.Float64()*2 - 1) * s.envelope
		samples[i][0] = v
		samples[i][1] = v
		s.envelope *= 0.9995
		s.position++
	}
	return len(samples), true
}

func (s *popStream) Err() error { return nil }
