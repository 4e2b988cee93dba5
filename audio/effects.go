package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(0, total-att-rel)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain; math.Log2(0) is -Inf so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one shaped tone in a cue
type note struct {
	freq    float64
	dur     time.Duration
	attack  time.Duration
	release time.Duration
	wave    WaveType
}

const ms = time.Millisecond

// cueNotes are played in sequence
var cueNotes = [cueCount][]note{
	CueWhack:   {{880, 60 * ms, 3 * ms, 30 * ms, WaveSine}},
	CueCorrect: {{987.77, 60 * ms, 3 * ms, 20 * ms, WaveSquare}, {1318.51, 120 * ms, 3 * ms, 80 * ms, WaveSquare}},
	CueNeutral: {{1046.5, 60 * ms, 3 * ms, 20 * ms, WaveSine}, {1318.51, 60 * ms, 3 * ms, 20 * ms, WaveSine}, {1567.98, 160 * ms, 3 * ms, 120 * ms, WaveSine}},
	CueWrong:   {{180, 120 * ms, 5 * ms, 40 * ms, WaveSaw}},
	CueBomb:    {{0, 300 * ms, 2 * ms, 250 * ms, WaveNoise}},
	CueStart:   {{523.25, 90 * ms, 5 * ms, 30 * ms, WaveSine}, {783.99, 150 * ms, 5 * ms, 80 * ms, WaveSine}},
	CueEnd:     {{783.99, 120 * ms, 5 * ms, 40 * ms, WaveSine}, {659.25, 120 * ms, 5 * ms, 40 * ms, WaveSine}, {523.25, 300 * ms, 5 * ms, 200 * ms, WaveSine}},
}

// Synthesize builds the finite streamer for cue at cfg's rate and volume
func Synthesize(cue Cue, cfg *Config) beep.Streamer {
	if cue < 0 || cue >= cueCount {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(cueNotes[cue])+1)
	for _, n := range cueNotes[cue] {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.dur, n.attack, n.release, rate))
	}
	seq := beep.Seq(parts...)

	// Low sine body under the bomb noise
	if cue == CueBomb {
		if rumble, err := generators.SineTone(rate, 70); err == nil {
			body := NewEnvelope(beep.Take(rate.N(300*ms), rumble), 300*ms, 2*ms, 250*ms, rate)
			seq = beep.Take(rate.N(Length(cue)), beep.Mix(newVolume(seq, 0.4), newVolume(body, 0.6)))
		}
	}

	return newVolume(seq, cfg.volume(cue))
}

// Length returns the playback length of cue
func Length(cue Cue) time.Duration {
	if cue < 0 || cue >= cueCount {
		return 0
	}
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.dur
	}
	return d
}
