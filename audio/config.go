package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

const defaultSampleRate = 44100

// Config controls cue playback
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64 // 0.0 - 1.0
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns audible defaults
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		SampleRate:   defaultSampleRate,
		MasterVolume: 0.5,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	cfg.CueVolumes[CueBomb] = 0.8
	cfg.CueVolumes[CueWrong] = 0.7
	return cfg
}

// LoadConfig overlays environment overrides on DefaultConfig
//
//	WHACK_AUDIO_ENABLED  bool
//	WHACK_MASTER_VOLUME  0-100
//	WHACK_CUE_VOLUMES    JSON object of cue name to 0.0-1.0, e.g. {"bomb":0.3}
//	WHACK_SAMPLE_RATE    Hz
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("WHACK_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("WHACK_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if cueVols := os.Getenv("WHACK_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if cue, ok := ParseCue(name); ok {
					cfg.CueVolumes[cue] = clamp01(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("WHACK_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume is the effective gain of c
func (c *Config) volume(cue Cue) float64 {
	return c.CueVolumes[cue] * c.MasterVolume
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
