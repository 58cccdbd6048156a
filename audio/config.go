package audio

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the settings used when nothing is configured
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundSquash:  0.8,
			SoundCombo:   0.9,
			SoundBlocked: 0.7,
			SoundPowerUp: 1.0,
			SoundWin:     0.8,
			SoundLoss:    0.8,
			SoundKonami:  0.7,
		},
	}
}

// volume returns the effective gain for s, clamped to 0.0-1.0
func (c *AudioConfig) volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	return clampUnit(v) * clampUnit(c.MasterVolume)
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
