package audio

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dev-arcade/event"
)

const speakerBuffer = 100 * time.Millisecond

// ErrAudioDisabled is returned by Initialize when the config turns sound off
var ErrAudioDisabled = errors.New("audio disabled by configuration")

// SoundManager plays synthesized effects for session events
// Every method is safe to call before Initialize or after Cleanup; the game runs silent then
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a sound manager, nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many effects reached the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play queues one effect on the mixer
func (sm *SoundManager) Play(s SoundType, combo int) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(s, combo, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

// PlayKonami plays the easter egg jingle
func (sm *SoundManager) PlayKonami() {
	sm.Play(SoundKonami, 0)
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if s, combo, ok := SoundFor(ev); ok {
		sm.Play(s, combo)
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntityHit,
		event.EventHitBlocked,
		event.EventPowerUpCollected,
		event.EventSessionWon,
		event.EventSessionLost,
	}
}

// SoundFor maps a session event to its effect and combo count
func SoundFor(ev event.GameEvent) (SoundType, int, bool) {
	switch ev.Type {
	case event.EventEntityHit:
		hit, ok := ev.Payload.(*event.HitPayload)
		if ok && hit.Combo > 0 {
			return SoundCombo, hit.Combo, true
		}
		return SoundSquash, 0, true
	case event.EventHitBlocked:
		return SoundBlocked, 0, true
	case event.EventPowerUpCollected:
		return SoundPowerUp, 0, true
	case event.EventSessionWon:
		return SoundWin, 0, true
	case event.EventSessionLost:
		return SoundLoss, 0, true
	default:
		return 0, 0, false
	}
}
