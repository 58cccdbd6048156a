package arcade

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/dev-arcade/event"
)

func TestIdleSessionIgnoresOperations(t *testing.T) {
	h := newHarness(t, testConfig(), false)
	s := h.s

	if _, ok := s.Spawn(); ok {
		t.Error("Spawn must be ignored while idle")
	}
	if s.Hit(1) != 0 {
		t.Error("Hit must be ignored while idle")
	}
	if s.Collect(1) || s.Reset() || s.Lose(LossLockout) {
		t.Error("Collect/Reset/Lose must be ignored while idle")
	}
	if _, ok := s.SpawnPowerUp(); ok {
		t.Error("SpawnPowerUp must be ignored while idle")
	}
	if s.Phase() != PhaseIdle || s.ID() != "" {
		t.Errorf("Expected untouched idle session, got %s id=%q", s.Phase(), s.ID())
	}
	if len(h.events) != 0 {
		t.Errorf("Idle session emitted %d events", len(h.events))
	}

	if !s.Start() {
		t.Fatal("Start from idle must succeed")
	}
	if s.Start() {
		t.Error("Second Start must be ignored")
	}
	if s.Phase() != PhasePlaying || s.ID() == "" {
		t.Errorf("Expected playing with an id, got %s id=%q", s.Phase(), s.ID())
	}
	if h.count(event.EventSessionStarted) != 1 {
		t.Errorf("Expected one started event, got %d", h.count(event.EventSessionStarted))
	}
}

func TestSpawnTimerAddsEntities(t *testing.T) {
	h := newHarness(t, testConfig(), true)
	h.s.Start()

	h.sched.Advance(3 * time.Second)

	ents := h.s.Entities()
	if len(ents) != 3 {
		t.Fatalf("Expected 3 entities after 3s, got %d", len(ents))
	}
	for i := 1; i < len(ents); i++ {
		if ents[i].ID <= ents[i-1].ID {
			t.Errorf("Entity ids must increase: %d then %d", ents[i-1].ID, ents[i].ID)
		}
	}
	if len(h.s.PowerUps()) != 0 {
		t.Error("No power-up expected before the first power-up period")
	}

	h.sched.Advance(4 * time.Second)
	if len(h.s.PowerUps()) != 1 {
		t.Errorf("Expected one power-up at 7s, got %d", len(h.s.PowerUps()))
	}
}

func TestInitialSpawns(t *testing.T) {
	cfg := testConfig()
	cfg.InitialSpawns = 2
	h := newHarness(t, cfg, false)
	h.s.Start()

	if n := len(h.s.Entities()); n != 2 {
		t.Errorf("Expected 2 entities at start, got %d", n)
	}
}

func TestOverflowLoses(t *testing.T) {
	cfg := testConfig()
	cfg.MaxEntities = 3
	h := newHarness(t, cfg, false)
	h.s.Start()

	for i := 0; i < 3; i++ {
		h.mustSpawn(t)
	}
	if _, ok := h.s.Spawn(); ok {
		t.Fatal("Spawn at the ceiling must not add an entity")
	}
	if h.s.Phase() != PhaseLost || h.s.Loss() != LossOverflow {
		t.Errorf("Expected lost by overflow, got %s/%s", h.s.Phase(), h.s.Loss())
	}
	if n := len(h.s.Entities()); n != 3 {
		t.Errorf("Ceiling exceeded: %d entities", n)
	}
	if h.count(event.EventSessionLost) != 1 {
		t.Errorf("Expected one lost event, got %d", h.count(event.EventSessionLost))
	}
}

func TestOverflowStopsTimers(t *testing.T) {
	cfg := testConfig()
	cfg.MaxEntities = 3
	h := newHarness(t, cfg, true)
	h.s.Start()

	h.sched.Advance(4 * time.Second)

	if h.s.Phase() != PhaseLost {
		t.Fatalf("Expected lost after the fourth tick, got %s", h.s.Phase())
	}
	if p := h.sched.Pending(); p != 0 {
		t.Errorf("Expected no live timers after loss, got %d", p)
	}

	h.sched.Advance(10 * time.Second)
	if n := len(h.s.Entities()); n != 3 {
		t.Errorf("Entities changed after loss: %d", n)
	}
}

func TestHazardHitLoses(t *testing.T) {
	h := newHarness(t, testConfig(), false)
	h.s.Start()

	a := h.mustSpawn(t)
	b := h.mustSpawn(t)
	if h.s.Hit(a.ID) == 0 {
		t.Fatal("Expected points for a normal hit")
	}

	h.s.Update(b.ID, func(e *Entity) {
		e.Category = CategoryHazard
		e.Points = 0
	})

	if got := h.s.Hit(b.ID); got != 0 {
		t.Errorf("Hazard hit awarded %d", got)
	}
	if h.s.Phase() != PhaseLost || h.s.Loss() != LossHazard {
		t.Errorf("Expected lost by hazard, got %s/%s", h.s.Phase(), h.s.Loss())
	}
	if h.s.Score() != 10 {
		t.Errorf("Score must survive the loss, got %d", h.s.Score())
	}
}

func TestSessionCombo(t *testing.T) {
	h := newHarness(t, testConfig(), false)
	h.s.Start()
	ids := []int64{h.mustSpawn(t).ID, h.mustSpawn(t).ID, h.mustSpawn(t).ID}

	steps := []struct {
		advance time.Duration
		points  int
		combo   int
	}{
		{0, 10, 0},
		{500 * time.Millisecond, 15, 1},
		{1100 * time.Millisecond, 10, 0},
	}

	for i, st := range steps {
		h.sched.Advance(st.advance)
		if got := h.s.Hit(ids[i]); got != st.points {
			t.Errorf("hit %d: points %d, want %d", i, got, st.points)
		}
		if h.s.Combo() != st.combo {
			t.Errorf("hit %d: combo %d, want %d", i, h.s.Combo(), st.combo)
		}
	}
	if h.s.Score() != 35 {
		t.Errorf("Expected score 35, got %d", h.s.Score())
	}
	if h.s.Hit(ids[0]) != 0 {
		t.Error("Hitting a removed entity must be a no-op")
	}
}

func TestVictoryExactlyOnce(t *testing.T) {
	cfg := testConfig()
	cfg.VictoryScore = 30
	h := newHarness(t, cfg, false)
	h.s.Start()

	var ids []int64
	for i := 0; i < 4; i++ {
		ids = append(ids, h.mustSpawn(t).ID)
	}

	h.s.Hit(ids[0]) // 10
	h.s.Hit(ids[1]) // 15
	if h.s.Phase() != PhasePlaying {
		t.Fatalf("Won too early at %d", h.s.Score())
	}
	h.s.Hit(ids[2]) // 20
	if h.s.Phase() != PhaseWon {
		t.Fatalf("Expected won at %d, got %s", h.s.Score(), h.s.Phase())
	}
	if h.s.Hit(ids[3]) != 0 {
		t.Error("Hits after victory must be ignored")
	}
	if h.s.Lose(LossLockout) {
		t.Error("Lose after victory must be ignored")
	}
	if h.count(event.EventSessionWon) != 1 {
		t.Errorf("Expected exactly one won event, got %d", h.count(event.EventSessionWon))
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	cfg := testConfig()
	cfg.VictoryScore = 30
	h := newHarness(t, cfg, false)
	h.s.Start()
	first := h.s.ID()

	for i := 0; i < 3; i++ {
		h.s.Hit(h.mustSpawn(t).ID)
	}
	if h.s.Phase() != PhaseWon || h.s.HighScore() != 45 {
		t.Fatalf("Expected won with high 45, got %s high=%d", h.s.Phase(), h.s.HighScore())
	}

	if !h.s.Reset() {
		t.Fatal("Reset from won must succeed")
	}
	if h.s.Phase() != PhasePlaying || h.s.Score() != 0 || h.s.Combo() != 0 || len(h.s.Entities()) != 0 {
		t.Errorf("Reset must give a fresh session: %s", h.s)
	}
	if h.s.HighScore() != 45 {
		t.Errorf("High score lost on reset: %d", h.s.HighScore())
	}
	if h.s.ID() == first {
		t.Error("Reset must issue a new session id")
	}
	if h.s.Reset() {
		t.Error("Reset while playing must be ignored")
	}

	h.s.Hit(h.mustSpawn(t).ID)
	h.s.Lose(LossLockout)
	h.s.Reset()
	if h.s.HighScore() != 45 {
		t.Errorf("Lower score must not replace the high score, got %d", h.s.HighScore())
	}
	if h.count(event.EventSessionReset) != 2 {
		t.Errorf("Expected 2 reset events, got %d", h.count(event.EventSessionReset))
	}
}

func TestLoseDefaultsToLockout(t *testing.T) {
	h := newHarness(t, testConfig(), false)
	h.s.Start()

	if !h.s.Lose(LossNone) {
		t.Fatal("Lose while playing must succeed")
	}
	if h.s.Loss() != LossLockout {
		t.Errorf("Expected lockout, got %s", h.s.Loss())
	}
	ev := h.events[len(h.events)-1]
	p, ok := ev.Payload.(*event.LossPayload)
	if !ok || p.Reason != "lockout" {
		t.Errorf("Expected lockout loss payload, got %#v", ev.Payload)
	}
}

func TestBossBlockedUntilShield(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []PowerUpKind{PowerUpShield}
	h := newHarness(t, cfg, false)
	h.s.Start()

	boss := h.mustSpawn(t)
	h.s.Update(boss.ID, func(e *Entity) {
		e.Category = CategoryBoss
		e.Points = 100
		e.Size = 2
		e.Invincible = true
	})

	for i := 0; i < 3; i++ {
		if got := h.s.Hit(boss.ID); got != 0 {
			t.Fatalf("Invincible boss awarded %d", got)
		}
	}
	if h.s.Phase() != PhasePlaying || h.s.Score() != 0 {
		t.Errorf("Blocked hits must not change state: %s", h.s)
	}
	if _, ok := h.s.Entity(boss.ID); !ok {
		t.Error("Blocked boss must stay on the board")
	}
	if h.count(event.EventHitBlocked) != 3 {
		t.Errorf("Expected 3 blocked events, got %d", h.count(event.EventHitBlocked))
	}

	p, ok := h.s.SpawnPowerUp()
	if !ok || p.Kind != PowerUpShield {
		t.Fatalf("Expected shield power-up, got %v ok=%v", p.Kind, ok)
	}
	if p.X < 10 || p.X > 90 || p.Y < 10 || p.Y > 90 {
		t.Errorf("Power-up outside the 10-90 band: (%v,%v)", p.X, p.Y)
	}
	if !h.s.Collect(p.ID) {
		t.Fatal("Collect failed")
	}
	if h.s.Collect(p.ID) {
		t.Error("A power-up can only be collected once")
	}

	if got := h.s.Hit(boss.ID); got != 100 {
		t.Errorf("Shielded boss should award 100, got %d", got)
	}
}

func TestBossInvincibilityExpires(t *testing.T) {
	h := newHarness(t, testConfig(), false)
	h.s.Start()

	boss := h.mustSpawn(t)
	h.s.Update(boss.ID, func(e *Entity) {
		e.Category = CategoryBoss
		e.Invincible = true
		e.InvincibleUntil = epoch.Add(2 * time.Second)
	})

	if h.s.Hit(boss.ID) != 0 {
		t.Fatal("Boss should be invincible before expiry")
	}
	h.sched.Advance(2 * time.Second)
	if h.s.Hit(boss.ID) == 0 {
		t.Error("Boss should be vulnerable after expiry")
	}
}

func TestClearBoard(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []PowerUpKind{PowerUpClearBoard}
	cfg.VictoryScore = 60
	h := newHarness(t, cfg, false)
	h.s.Start()

	for i := 0; i < 5; i++ {
		h.mustSpawn(t)
	}
	p, _ := h.s.SpawnPowerUp()
	h.s.Collect(p.ID)

	if n := len(h.s.Entities()); n != 0 {
		t.Errorf("Expected empty board, got %d", n)
	}
	if h.s.Score() != 50 {
		t.Errorf("Expected clear bonus 50, got %d", h.s.Score())
	}
	ev := h.events[len(h.events)-1]
	if pp, ok := ev.Payload.(*event.PowerUpPayload); !ok || pp.Bonus != 50 {
		t.Errorf("Expected collected payload with bonus, got %#v", ev.Payload)
	}

	h.s.Hit(h.mustSpawn(t).ID)
	if h.s.Phase() != PhaseWon {
		t.Errorf("Expected won at %d, got %s", h.s.Score(), h.s.Phase())
	}
}

func TestClearBoardCanWin(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []PowerUpKind{PowerUpClearBoard}
	cfg.VictoryScore = 40
	h := newHarness(t, cfg, false)
	h.s.Start()

	p, _ := h.s.SpawnPowerUp()
	h.s.Collect(p.ID)
	if h.s.Phase() != PhaseWon {
		t.Errorf("Bonus crossing the threshold must win, got %s", h.s.Phase())
	}
}

func TestSpeedBoost(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []PowerUpKind{PowerUpSpeedBoost}
	cfg.PowerUpPeriod = 0
	h := newHarness(t, cfg, true)
	h.s.Start()

	p, _ := h.s.SpawnPowerUp()
	h.s.Collect(p.ID)

	if h.s.Speed() != 0.75 {
		t.Errorf("Expected multiplier 0.75, got %v", h.s.Speed())
	}
	if got := h.s.SpawnPeriod(); got != 1333333333*time.Nanosecond {
		t.Errorf("Expected stretched spawn period, got %v", got)
	}

	h.sched.Advance(5 * time.Second)
	if n := len(h.s.Entities()); n != 3 {
		t.Errorf("Expected 3 spawns during the boost, got %d", n)
	}
	if h.s.Speed() != 1 || h.s.SpawnPeriod() != time.Second {
		t.Errorf("Boost not reverted: speed=%v period=%v", h.s.Speed(), h.s.SpawnPeriod())
	}
	if h.count(event.EventEffectExpired) != 1 {
		t.Errorf("Expected one expiry event, got %d", h.count(event.EventEffectExpired))
	}

	h.sched.Advance(time.Second)
	if n := len(h.s.Entities()); n != 4 {
		t.Errorf("Expected normal cadence after the boost, got %d", n)
	}
}

func TestSlowTime(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []PowerUpKind{PowerUpSlowTime}
	cfg.PowerUpPeriod = 0
	cfg.SpawnPeriod = time.Hour
	h := newHarness(t, cfg, true)
	h.s.Start()

	a := h.mustSpawn(t)
	b := h.mustSpawn(t)
	p, _ := h.s.SpawnPowerUp()
	h.s.Collect(p.ID)

	ga, _ := h.s.Entity(a.ID)
	if ga.Speed != a.Speed*0.5 {
		t.Errorf("Expected halved speed %v, got %v", a.Speed*0.5, ga.Speed)
	}

	c := h.mustSpawn(t)
	h.s.Hit(b.ID)

	h.sched.Advance(3 * time.Second)

	ga, _ = h.s.Entity(a.ID)
	gc, _ := h.s.Entity(c.ID)
	if ga.Speed != a.Speed {
		t.Errorf("Slowed entity not restored: %v vs %v", ga.Speed, a.Speed)
	}
	if gc.Speed != c.Speed {
		t.Errorf("Entity spawned during the effect must keep its speed: %v vs %v", gc.Speed, c.Speed)
	}
}

func TestTerminalCancelsEffects(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []PowerUpKind{PowerUpSpeedBoost}
	h := newHarness(t, cfg, true)
	h.s.Start()

	p, _ := h.s.SpawnPowerUp()
	h.s.Collect(p.ID)
	h.s.Lose(LossLockout)

	if n := h.sched.Pending(); n != 0 {
		t.Errorf("Expected no live timers after loss, got %d", n)
	}
	h.sched.Advance(10 * time.Second)
	if h.count(event.EventEffectExpired) != 0 {
		t.Error("Cancelled effect must not expire")
	}

	h.s.Reset()
	if h.s.Speed() != 1 {
		t.Errorf("Reset must restore the configured difficulty, got %v", h.s.Speed())
	}
}

func TestCloseMakesSessionInert(t *testing.T) {
	h := newHarness(t, testConfig(), true)
	h.s.Start()
	h.sched.Advance(2 * time.Second)
	h.s.Close()

	if n := h.sched.Pending(); n != 0 {
		t.Errorf("Close left %d timers", n)
	}
	h.sched.Advance(10 * time.Second)
	if n := len(h.s.Entities()); n != 2 {
		t.Errorf("Entities changed after close: %d", n)
	}
	if _, ok := h.s.Spawn(); ok {
		t.Error("Spawn after close must be ignored")
	}
	if h.s.Lose(LossLockout) || h.s.Reset() || h.s.Start() {
		t.Error("Closed session must ignore phase changes")
	}
	h.s.Close()
}

func TestScoreNeverDecreases(t *testing.T) {
	cfg := testConfig()
	cfg.Hazard.Probability = 0.2
	cfg.Boss.Probability = 0.15
	h := newHarness(t, cfg, true)
	h.s.Start()

	r := NewRand(99)
	prev := 0
	for step := 0; step < 2000; step++ {
		switch r.IntN(4) {
		case 0:
			h.sched.Advance(time.Duration(r.IntN(1500)) * time.Millisecond)
		case 1, 2:
			if ents := h.s.Entities(); len(ents) > 0 {
				h.s.Hit(ents[r.IntN(len(ents))].ID)
			}
		case 3:
			if pus := h.s.PowerUps(); len(pus) > 0 {
				h.s.Collect(pus[0].ID)
			}
		}

		if n := len(h.s.Entities()); n > cfg.MaxEntities {
			t.Fatalf("step %d: %d entities above ceiling", step, n)
		}
		if h.s.Score() < prev {
			t.Fatalf("step %d: score dropped from %d to %d", step, prev, h.s.Score())
		}
		prev = h.s.Score()

		if h.s.Phase().IsTerminal() {
			if h.s.HighScore() < h.s.Score() {
				t.Fatalf("High score %d below final %d", h.s.HighScore(), h.s.Score())
			}
			h.s.Reset()
			prev = 0
		}
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Kinds = nil
	cfg.MaxEntities = 0

	_, err := NewSession(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	h := newHarness(t, testConfig(), false)
	h.s.Start()
	e := h.mustSpawn(t)

	snap := h.s.Snapshot()
	snap.Entities[0].Points = 999

	got, _ := h.s.Entity(e.ID)
	if got.Points == 999 {
		t.Error("Snapshot must not alias session state")
	}
	if snap.Phase != PhasePlaying || snap.SessionID != h.s.ID() || snap.Game != "test" {
		t.Errorf("Unexpected snapshot header: %+v", snap)
	}
}
