package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/snowhop/parameter"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[Cue]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[Cue]float64{
			CueVictory: 1.0,
			CuePickup:  0.6,
			CueHurt:    0.8,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("SNOWHOP_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv("SNOWHOP_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-cue volumes as JSON, e.g. {"victory":0.5,"hurt":0}
	if effectVols := os.Getenv("SNOWHOP_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if cue, ok := ParseCue(name); ok {
					cfg.EffectVolumes[cue] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SNOWHOP_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
