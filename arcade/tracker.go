package arcade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tracker accumulates the combo streak between successful hits
type Tracker struct {
	window time.Duration
	step   decimal.Decimal

	combo   int
	best    int
	last    time.Time
	hasLast bool
}

// NewTracker creates a tracker; hits closer than window extend the streak
func NewTracker(window time.Duration, step float64) *Tracker {
	return &Tracker{
		window: window,
		step:   decimal.NewFromFloat(step),
	}
}

// Register records a successful hit at now and returns the points it earns
// points = floor(base * (1 + combo*step)), combo counted after this hit
func (t *Tracker) Register(base int, now time.Time) (points, combo int) {
	if t.hasLast && now.Sub(t.last) < t.window {
		t.combo++
	} else {
		t.combo = 0
	}
	t.last = now
	t.hasLast = true

	if t.combo > t.best {
		t.best = t.combo
	}

	return t.Points(base, t.combo), t.combo
}

// Points applies the multiplier for combo to base
func (t *Tracker) Points(base, combo int) int {
	return int(t.Multiplier(combo).Mul(decimal.NewFromInt(int64(base))).Floor().IntPart())
}

// Multiplier returns 1 + combo*step
func (t *Tracker) Multiplier(combo int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(t.step.Mul(decimal.NewFromInt(int64(combo))))
}

// Combo returns the streak recorded at the last hit
func (t *Tracker) Combo() int {
	return t.combo
}

// ComboAt returns the streak still alive at now, zero once the window has lapsed
func (t *Tracker) ComboAt(now time.Time) int {
	if !t.hasLast || now.Sub(t.last) >= t.window {
		return 0
	}
	return t.combo
}

// Best returns the longest streak since the last Reset
func (t *Tracker) Best() int {
	return t.best
}

// Reset clears the streak and the last-hit timestamp
func (t *Tracker) Reset() {
	t.combo = 0
	t.best = 0
	t.last = time.Time{}
	t.hasLast = false
}
