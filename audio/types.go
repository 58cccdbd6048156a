package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundSquash  SoundType = iota // Scoring hit without combo
	SoundCombo                    // Scoring hit inside the combo window
	SoundBlocked                  // Hit absorbed by an invincible boss
	SoundPowerUp                  // Power-up collected
	SoundWin                      // Victory fanfare
	SoundLoss                     // Session lost
	SoundKonami                   // Easter egg unlocked
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundSquash:  "squash",
	SoundCombo:   "combo",
	SoundBlocked: "blocked",
	SoundPowerUp: "powerup",
	SoundWin:     "win",
	SoundLoss:    "loss",
	SoundKonami:  "konami",
}

// String returns the lowercase effect name, also used as the volume key in env config
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves an effect name
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
