package arcade

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		problem string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty kinds", func(c *Config) { c.Kinds = nil }, "kind table is empty"},
		{"zero weights", func(c *Config) { c.Kinds[0].Weight = 0 }, "no kind has a positive weight"},
		{"hazard kind row", func(c *Config) { c.Kinds[0].Category = CategoryHazard }, "category must be common or rare"},
		{"bad speed", func(c *Config) { c.Kinds[0].SpeedMax = 1 }, "bad speed range"},
		{"probability", func(c *Config) { c.Hazard.Probability = 1.5 }, "hazard probability"},
		{"boss multiplier", func(c *Config) { c.Boss.Probability = 0.1; c.Boss.PointMultiplier = 0 }, "boss point multiplier"},
		{"ceiling", func(c *Config) { c.MaxEntities = 0 }, "entity ceiling"},
		{"victory", func(c *Config) { c.VictoryScore = 0 }, "victory score"},
		{"combo window", func(c *Config) { c.ComboWindow = 0 }, "combo window"},
		{"difficulty", func(c *Config) { c.Difficulty = 0 }, "difficulty"},
		{"initial spawns", func(c *Config) { c.InitialSpawns = 31 }, "initial spawns"},
		{"power-ups without kinds", func(c *Config) { c.PowerUps = nil }, "no power-up kinds"},
		{"slow factor", func(c *Config) { c.SlowFactor = 0 }, "slow time"},
		{"boost duration", func(c *Config) { c.SpeedBoostFor = -time.Second }, "speed boost"},
		{"unknown power-up", func(c *Config) { c.PowerUps = []PowerUpKind{PowerUpKind(42)} }, "unknown power-up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Kinds = append([]KindSpec(nil), cfg.Kinds...)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.problem == "" {
				if err != nil {
					t.Fatalf("Expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.problem) {
				t.Errorf("Error %q does not mention %q", err, tt.problem)
			}
		})
	}
}

func TestConfigValidateReportsAllProblems(t *testing.T) {
	cfg := testConfig()
	cfg.MaxEntities = 0
	cfg.VictoryScore = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}
	for _, want := range []string{"entity ceiling", "victory score", `"test"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error %q missing %q", err, want)
		}
	}
}
