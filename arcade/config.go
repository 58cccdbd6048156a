package arcade

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// KindSpec is one row of the entity kind table
type KindSpec struct {
	Name     string
	Glyph    rune
	Category Category // CategoryCommon or CategoryRare
	Weight   float64  // Relative spawn weight, zero disables the kind
	SpeedMin float64
	SpeedMax float64
	Points   int
}

// HazardSpec describes the session-ending entity
type HazardSpec struct {
	Name        string
	Glyph       rune
	Probability float64 // Chance per spawn, checked before boss
	SpeedMin    float64
	SpeedMax    float64
}

// BossSpec describes the boss variant applied on top of a drawn kind
type BossSpec struct {
	Probability     float64 // Chance per non-hazard spawn
	PointMultiplier int
	Size            int
	Speed           float64
	InvincibleFor   time.Duration // Zero: invincible until a shield pickup
}

// Config is the per-game tuning the shared engine runs on
type Config struct {
	Name string

	Kinds  []KindSpec
	Hazard HazardSpec
	Boss   BossSpec

	MaxEntities  int // Active entity ceiling; the spawn that would exceed it loses the session
	VictoryScore int

	ComboWindow time.Duration
	ComboStep   float64 // Multiplier gained per combo level

	Difficulty    float64 // Initial speed multiplier; spawn period is SpawnPeriod / multiplier
	SpawnPeriod   time.Duration
	InitialSpawns int

	PowerUpPeriod time.Duration // Zero disables power-ups
	PowerUps      []PowerUpKind

	ClearBonus       int
	SpeedBoostFactor float64
	SpeedBoostFor    time.Duration
	SlowFactor       float64
	SlowFor          time.Duration
}

// Validate checks the config and reports every problem found
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(c.Kinds) == 0 {
		add("kind table is empty")
	}
	positive := false
	for i, k := range c.Kinds {
		if k.Name == "" {
			add("kind %d has no name", i)
		}
		if k.Category != CategoryCommon && k.Category != CategoryRare {
			add("kind %q: category must be common or rare, got %s", k.Name, k.Category)
		}
		if k.Weight < 0 {
			add("kind %q: negative weight", k.Name)
		}
		if k.Weight > 0 {
			positive = true
		}
		if k.SpeedMin < 0 || k.SpeedMax < k.SpeedMin {
			add("kind %q: bad speed range [%g, %g]", k.Name, k.SpeedMin, k.SpeedMax)
		}
		if k.Points < 0 {
			add("kind %q: negative points", k.Name)
		}
	}
	if len(c.Kinds) > 0 && !positive {
		add("no kind has a positive weight")
	}

	if !isProbability(c.Hazard.Probability) {
		add("hazard probability %g outside [0, 1]", c.Hazard.Probability)
	}
	if c.Hazard.Probability > 0 && (c.Hazard.SpeedMin < 0 || c.Hazard.SpeedMax < c.Hazard.SpeedMin) {
		add("hazard: bad speed range [%g, %g]", c.Hazard.SpeedMin, c.Hazard.SpeedMax)
	}
	if !isProbability(c.Boss.Probability) {
		add("boss probability %g outside [0, 1]", c.Boss.Probability)
	}
	if c.Boss.Probability > 0 {
		if c.Boss.PointMultiplier < 1 {
			add("boss point multiplier must be >= 1")
		}
		if c.Boss.Size < 1 {
			add("boss size must be >= 1")
		}
		if c.Boss.Speed <= 0 {
			add("boss speed must be positive")
		}
		if c.Boss.InvincibleFor < 0 {
			add("boss invincibility must not be negative")
		}
	}

	if c.MaxEntities <= 0 {
		add("entity ceiling must be positive")
	}
	if c.VictoryScore <= 0 {
		add("victory score must be positive")
	}
	if c.ComboWindow <= 0 {
		add("combo window must be positive")
	}
	if c.ComboStep < 0 {
		add("combo step must not be negative")
	}
	if c.Difficulty <= 0 {
		add("difficulty must be positive")
	}
	if c.SpawnPeriod <= 0 {
		add("spawn period must be positive")
	}
	if c.InitialSpawns < 0 || (c.MaxEntities > 0 && c.InitialSpawns > c.MaxEntities) {
		add("initial spawns %d outside [0, %d]", c.InitialSpawns, c.MaxEntities)
	}

	if c.PowerUpPeriod < 0 {
		add("power-up period must not be negative")
	}
	if c.PowerUpPeriod > 0 && len(c.PowerUps) == 0 {
		add("power-up period set but no power-up kinds enabled")
	}
	if c.ClearBonus < 0 {
		add("clear bonus must not be negative")
	}
	for _, k := range c.PowerUps {
		switch k {
		case PowerUpSpeedBoost:
			if c.SpeedBoostFactor <= 0 || c.SpeedBoostFor <= 0 {
				add("speed boost needs a positive factor and duration")
			}
		case PowerUpSlowTime:
			if c.SlowFactor <= 0 || c.SlowFor <= 0 {
				add("slow time needs a positive factor and duration")
			}
		case PowerUpShield, PowerUpClearBoard:
		default:
			add("unknown power-up kind %d", k)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidConfig, c.Name, strings.Join(problems, "; "))
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
