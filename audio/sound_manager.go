package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snowhop/parameter"
)

// SoundManager plays the game cues through the speaker
// Every method is a no-op until Initialize succeeds; audio is optional
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	victory     *beep.Ctrl
	initialized bool

	// played counts cues handed to the mixer, per cue
	played [cueCount]int
}

// NewSoundManager creates a sound manager; nil cfg means DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled config leaves the manager silent without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.victory != nil {
		sm.victory.Streamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.victory = nil
	sm.initialized = false
}

// PlayVictory starts the victory jingle unless one was started since the last StopVictory
func (sm *SoundManager) PlayVictory() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.victory != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: CreateVictorySound(sm.cfg)}
	sm.victory = ctrl
	sm.add(CueVictory, ctrl)
}

// StopVictory silences the victory jingle if it is still playing
// A nil streamer ends the Ctrl, so the mixer drops it on its next pass
func (sm *SoundManager) StopVictory() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.victory == nil {
		return
	}
	speaker.Lock()
	sm.victory.Streamer = nil
	speaker.Unlock()
	sm.victory = nil
}

// PlayPickup plays the gift chime
func (sm *SoundManager) PlayPickup() {
	sm.play(CuePickup)
}

// PlayHurt plays the life-lost buzz
func (sm *SoundManager) PlayHurt() {
	sm.play(CueHurt)
}

// Played returns how many times a cue reached the mixer
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}

func (sm *SoundManager) play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if s := CueSound(c, sm.cfg); s != nil {
		sm.add(c, s)
	}
}

// add hands s to the mixer; caller holds sm.mu
func (sm *SoundManager) add(c Cue, s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}
