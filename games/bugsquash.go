package games

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dev-arcade/arcade"
)

var codeSnippets = []string{
	"if (coffee.isEmpty()) { developer.execute('panic'); }",
	"while (bugs) { bugs++; // Wait, that's not right... }",
	"catch (error) { throw user; // Yeet the user instead }",
	"// This code works, don't ask how or why",
	"git commit -m 'Fixed bugs' // Narrator: They didn't",
	"function sleep() { return new Error('Coffee needed'); }",
	"// Here be dragons",
	"try { /* TODO */ } catch { /* TODO later */ }",
}

var debugTips = []string{
	"Have you tried turning it off and on again?",
	"It works on my machine ¯\\_(ツ)_/¯",
	"The bug is between the keyboard and chair",
	"It's not a bug, it's an undocumented feature",
	"404: Solution not found",
}

const skullTip = "Never click the skull! Game Over!"

// BugSquashConfig returns the default Bug Squasher tuning
func BugSquashConfig() arcade.Config {
	kind := func(name string, glyph rune, cat arcade.Category, points int) arcade.KindSpec {
		return arcade.KindSpec{Name: name, Glyph: glyph, Category: cat, Weight: 1, SpeedMin: 2, SpeedMax: 6, Points: points}
	}
	return arcade.Config{
		Name: string(BugSquasher),
		Kinds: []arcade.KindSpec{
			kind("caterpillar", '🐛', arcade.CategoryCommon, 10),
			kind("beetle", '🪲', arcade.CategoryCommon, 20),
			kind("cricket", '🦗', arcade.CategoryCommon, 30),
			kind("spider", '🕷', arcade.CategoryRare, 40),
			kind("ant", '🐜', arcade.CategoryRare, 50),
		},
		Hazard: arcade.HazardSpec{Name: "skull", Glyph: '💀', Probability: 0.2, SpeedMin: 2, SpeedMax: 6},
		Boss:   arcade.BossSpec{Probability: 0.15, PointMultiplier: 10, Size: 2, Speed: 1},

		MaxEntities:  30,
		VictoryScore: 365,
		ComboWindow:  time.Second,
		ComboStep:    0.5,
		Difficulty:   1,
		SpawnPeriod:  time.Second,

		PowerUpPeriod:    7 * time.Second,
		PowerUps:         arcade.AllPowerUps(),
		ClearBonus:       50,
		SpeedBoostFactor: 0.75,
		SpeedBoostFor:    5 * time.Second,
		SlowFactor:       0.5,
		SlowFor:          3 * time.Second,
	}
}

// BugSquash is the click-the-bugs game
type BugSquash struct {
	session *arcade.Session
	rng     arcade.Rand
	snippet string
	tip     string
}

// NewBugSquash creates an idle Bug Squasher on cfg
func NewBugSquash(cfg arcade.Config, r arcade.Rand, opts ...arcade.Option) (*BugSquash, error) {
	s, err := arcade.NewSession(cfg, sessionOptions(r, opts)...)
	if err != nil {
		return nil, fmt.Errorf("bug squasher: %w", err)
	}
	return &BugSquash{
		session: s,
		rng:     r,
		snippet: codeSnippets[0],
		tip:     debugTips[0],
	}, nil
}

func (b *BugSquash) ID() ID                   { return BugSquasher }
func (b *BugSquash) Session() *arcade.Session { return b.session }
func (b *BugSquash) Start() bool              { return b.session.Start() }
func (b *BugSquash) Close()                   { b.session.Close() }

// Reset restarts a finished game with a fresh debug tip
func (b *BugSquash) Reset() bool {
	if !b.session.Reset() {
		return false
	}
	b.tip = pick(b.rng, debugTips)
	return true
}

// Squash hits entity id; a scoring hit rotates the code snippet
func (b *BugSquash) Squash(id int64) int {
	if b.session.Phase() != arcade.PhasePlaying {
		return 0
	}
	e, ok := b.session.Entity(id)
	if !ok {
		return 0
	}

	points := b.session.Hit(id)
	switch {
	case e.IsHazard():
		b.tip = skullTip
	case points > 0:
		b.snippet = pick(b.rng, codeSnippets)
	}
	return points
}

// Collect picks up a power-up
func (b *BugSquash) Collect(id int64) bool {
	return b.session.Collect(id)
}

// Snippet returns the code line shown above the board
func (b *BugSquash) Snippet() string { return b.snippet }

// Tip returns the debug tip shown on the loss screen
func (b *BugSquash) Tip() string { return b.tip }

// End implements Game
func (b *BugSquash) End() EndMessage {
	switch b.session.Phase() {
	case arcade.PhaseWon:
		return EndMessage{
			Title:   "YOU'RE A BUG SLAYER!",
			Message: "You've mastered the art of debugging!",
			Button:  "Share Victory",
		}
	case arcade.PhaseLost:
		return EndMessage{
			Title:   "STACK OVERFLOW!",
			Message: b.tip,
			Button:  "Share Score",
		}
	}
	return EndMessage{}
}

// ShareMessage implements Game
func (b *BugSquash) ShareMessage() string {
	if b.session.Phase() == arcade.PhaseWon {
		return fmt.Sprintf("Just conquered the Bug Squasher game with %d points! Real G stuff", b.session.Score())
	}
	return fmt.Sprintf("Squashed some bugs and scored %d points! Almost there", b.session.Score())
}
