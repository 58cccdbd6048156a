package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/dev-arcade/arcade"
	"github.com/lixenwraith/dev-arcade/audio"
	"github.com/lixenwraith/dev-arcade/games"
)

// ErrInvalid is wrapped by every configuration failure
var ErrInvalid = errors.New("invalid configuration")

// DefaultEnvFile is read when no explicit env file is given; its absence is not an error
const DefaultEnvFile = ".env"

// Config is the complete runtime configuration
type Config struct {
	Game      games.ID
	Seed      uint64 // Zero seeds from the wall clock
	FrameRate time.Duration

	Logging LoggingConfig
	Audio   *audio.AudioConfig
	Muted   bool

	BugSquash   arcade.Config
	CodeBreaker arcade.Config
}

// LoggingConfig selects the slog level and file location, empty Level disables logging
type LoggingConfig struct {
	Level string
	Dir   string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game:        games.BugSquasher,
		FrameRate:   16 * time.Millisecond,
		Logging:     LoggingConfig{Dir: "logs"},
		Audio:       audio.DefaultAudioConfig(),
		BugSquash:   games.BugSquashConfig(),
		CodeBreaker: games.CodeBreakerConfig(),
	}
}

// Load reads envFile (or DefaultEnvFile when empty) into the process environment,
// then builds and validates the configuration from ARCADE_*, BUGSQUASH_* and CODEBREAKER_* variables
// Variables already set in the environment win over the file
func Load(envFile string) (*Config, error) {
	path := envFile
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: env file %s: %w", ErrInvalid, path, err)
		}
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv overlays the environment on Default without validating the result
func FromEnv() (*Config, error) {
	r := &envReader{}
	cfg := Default()

	cfg.Game = games.ID(strings.ToLower(r.String("ARCADE_GAME", string(cfg.Game))))
	cfg.Seed = r.Uint64("ARCADE_SEED", 0)
	cfg.FrameRate = r.Millis("ARCADE_FRAME_MS", cfg.FrameRate)
	cfg.Muted = r.Bool("ARCADE_MUTE", false)
	cfg.Logging.Level = strings.ToLower(r.String("ARCADE_LOG_LEVEL", ""))
	cfg.Logging.Dir = r.String("ARCADE_LOG_DIR", cfg.Logging.Dir)

	loadAudio(r, cfg.Audio)
	loadBugSquash(r, &cfg.BugSquash)
	loadCodeBreaker(r, &cfg.CodeBreaker)

	if len(r.problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(r.problems, "; "))
	}
	return cfg, nil
}

func loadAudio(r *envReader, a *audio.AudioConfig) {
	a.Enabled = r.Bool("ARCADE_AUDIO_ENABLED", a.Enabled)
	a.SampleRate = r.Int("ARCADE_SAMPLE_RATE", a.SampleRate)

	// 0-100 converted to 0.0-1.0
	vol := r.Int("ARCADE_MASTER_VOLUME", int(a.MasterVolume*100))
	a.MasterVolume = min(max(float64(vol)/100, 0), 1)

	raw, ok := lookup("ARCADE_SFX_VOLUMES")
	if !ok {
		return
	}
	var volumes map[string]float64
	if err := json.Unmarshal([]byte(raw), &volumes); err != nil {
		r.fail("ARCADE_SFX_VOLUMES", raw, `a JSON object like {"combo": 0.5}`)
		return
	}
	for name, v := range volumes {
		s, ok := audio.ParseSoundType(name)
		if !ok {
			r.fail("ARCADE_SFX_VOLUMES", name, "a known effect name")
			continue
		}
		a.EffectVolumes[s] = v
	}
}

func loadBugSquash(r *envReader, c *arcade.Config) {
	c.MaxEntities = r.Int("BUGSQUASH_MAX_ENTITIES", c.MaxEntities)
	c.VictoryScore = r.Int("BUGSQUASH_VICTORY_SCORE", c.VictoryScore)
	c.ComboWindow = r.Millis("BUGSQUASH_COMBO_WINDOW_MS", c.ComboWindow)
	c.SpawnPeriod = r.Millis("BUGSQUASH_SPAWN_MS", c.SpawnPeriod)
	c.PowerUpPeriod = r.Millis("BUGSQUASH_POWERUP_MS", c.PowerUpPeriod)
	c.Difficulty = r.Float("BUGSQUASH_DIFFICULTY", c.Difficulty)
	c.Hazard.Probability = r.Float("BUGSQUASH_HAZARD_PROBABILITY", c.Hazard.Probability)
	c.Boss.Probability = r.Float("BUGSQUASH_BOSS_PROBABILITY", c.Boss.Probability)
	c.Boss.InvincibleFor = r.Millis("BUGSQUASH_BOSS_INVINCIBLE_MS", c.Boss.InvincibleFor)
	c.InitialSpawns = r.Int("BUGSQUASH_INITIAL_SPAWNS", c.InitialSpawns)
}

func loadCodeBreaker(r *envReader, c *arcade.Config) {
	c.MaxEntities = r.Int("CODEBREAKER_MAX_CARDS", c.MaxEntities)
	c.VictoryScore = r.Int("CODEBREAKER_VICTORY_SCORE", c.VictoryScore)
	c.SpawnPeriod = r.Millis("CODEBREAKER_CARD_MS", c.SpawnPeriod)
}

// Validate checks cross-field constraints and both game configs
func (c *Config) Validate() error {
	var errs []error
	if _, err := games.ParseID(string(c.Game)); err != nil {
		errs = append(errs, err)
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate must be positive, got %v", c.FrameRate))
	}
	if c.Logging.Level != "" {
		if _, ok := ParseLogLevel(c.Logging.Level); !ok {
			errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
		}
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.Audio.SampleRate))
	}
	if err := c.BugSquash.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.CodeBreaker.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error onto slog levels
func ParseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
