package arcade

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lixenwraith/dev-arcade/engine"
	"github.com/lixenwraith/dev-arcade/event"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		Name: "test",
		Kinds: []KindSpec{
			{Name: "bug", Glyph: 'b', Category: CategoryCommon, Weight: 1, SpeedMin: 2, SpeedMax: 6, Points: 10},
		},
		Hazard:           HazardSpec{Name: "skull", Glyph: 'X', Probability: 0, SpeedMin: 2, SpeedMax: 6},
		Boss:             BossSpec{Probability: 0, PointMultiplier: 10, Size: 2, Speed: 1},
		MaxEntities:      30,
		VictoryScore:     365,
		ComboWindow:      time.Second,
		ComboStep:        0.5,
		Difficulty:       1,
		SpawnPeriod:      time.Second,
		PowerUpPeriod:    7 * time.Second,
		PowerUps:         AllPowerUps(),
		ClearBonus:       50,
		SpeedBoostFactor: 0.75,
		SpeedBoostFor:    5 * time.Second,
		SlowFactor:       0.5,
		SlowFor:          3 * time.Second,
	}
}

// scriptedRand replays fixed draws; running out is a test bug
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		panic("scriptedRand: out of floats")
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		panic("scriptedRand: out of ints")
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type harness struct {
	s      *Session
	sched  *engine.ManualScheduler
	events []event.GameEvent
}

// newHarness builds a session on a manual clock; timers run only when withTimers is set
func newHarness(t *testing.T, cfg Config, withTimers bool, opts ...Option) *harness {
	t.Helper()
	h := &harness{sched: engine.NewManualScheduler(epoch)}

	router := event.NewRouter()
	router.Register(event.HandlerFunc{
		Types: event.AllTypes(),
		Fn:    func(ev event.GameEvent) { h.events = append(h.events, ev) },
	})

	base := []Option{
		WithClock(h.sched),
		WithRand(NewRand(42)),
		WithRouter(router),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if withTimers {
		base = append(base, WithScheduler(h.sched))
	}

	s, err := NewSession(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	h.s = s
	return h
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, ev := range h.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (h *harness) mustSpawn(t *testing.T) Entity {
	t.Helper()
	e, ok := h.s.Spawn()
	if !ok {
		t.Fatalf("Spawn failed in phase %s", h.s.Phase())
	}
	return e
}
