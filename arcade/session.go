package arcade

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/dev-arcade/engine"
	"github.com/lixenwraith/dev-arcade/event"
)

// Session is one game instance: spawner, combo tracker and phase machine
//
// Phases: Idle -> Playing (Start) -> Won | Lost; Won | Lost -> Playing (Reset)
// Every operation issued outside its phase is a silent no-op, so stray timer
// callbacks racing a teardown cannot mutate state.
//
// A Session is not safe for concurrent use; all calls and scheduler callbacks
// must run on one goroutine (engine.Loop in the app, the test goroutine with
// engine.ManualScheduler).
type Session struct {
	cfg     Config
	spawner *Spawner
	tracker *Tracker

	clock  engine.TimeProvider
	sched  engine.Scheduler
	rng    Rand
	router *event.Router
	logger *slog.Logger

	id        uuid.UUID
	phase     Phase
	loss      LossReason
	score     int
	highScore int
	speed     decimal.Decimal
	nextID    int64
	entities  []Entity
	powerUps  []PowerUp

	spawnCancel   engine.Cancel
	powerUpCancel engine.Cancel
	effects       map[uint64]engine.Cancel
	nextEffect    uint64

	closed bool
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the time source, default is the monotonic wall clock
func WithClock(clock engine.TimeProvider) Option {
	return func(s *Session) { s.clock = clock }
}

// WithScheduler sets the timer source
// Without one, no timers run and the caller drives Spawn and SpawnPowerUp
func WithScheduler(sched engine.Scheduler) Option {
	return func(s *Session) { s.sched = sched }
}

// WithRand sets the random source, default is a time-seeded PCG
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithRouter sets the event router receiving session events
func WithRouter(router *event.Router) Option {
	return func(s *Session) { s.router = router }
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession validates cfg and returns an Idle session
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(cfg),
		tracker: NewTracker(cfg.ComboWindow, cfg.ComboStep),
		phase:   PhaseIdle,
		speed:   decimal.NewFromFloat(cfg.Difficulty),
		effects: make(map[uint64]engine.Cancel),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.clock == nil {
		s.clock = engine.NewMonotonicTimeProvider()
	}
	if s.rng == nil {
		s.rng = NewRand(uint64(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "session", "game", cfg.Name)

	return s, nil
}

// Start moves Idle to Playing
func (s *Session) Start() bool {
	if s.closed || s.phase != PhaseIdle {
		return false
	}
	s.enterPlaying(event.EventSessionStarted)
	return true
}

// Reset moves a terminal session back to Playing with fresh state
// The high score carries over as max(previous high, final score)
func (s *Session) Reset() bool {
	if s.closed || !s.phase.IsTerminal() {
		return false
	}
	s.recordHighScore()
	s.enterPlaying(event.EventSessionReset)
	return true
}

// Close stops every timer and makes the session permanently inert
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.stopTimers()
	s.closed = true
	s.logger.Debug("session closed", "session", s.id.String(), "phase", s.phase.String())
}

// Spawn adds one entity to the board
// At the ceiling the session is lost instead and no entity is added
func (s *Session) Spawn() (Entity, bool) {
	if !s.playing() {
		return Entity{}, false
	}
	if len(s.entities) >= s.cfg.MaxEntities {
		s.finish(PhaseLost, LossOverflow)
		return Entity{}, false
	}

	s.nextID++
	e := s.spawner.Spawn(s.rng, s.nextID, s.speed, s.clock.Now())
	s.entities = append(s.entities, e)

	s.emit(event.EventEntitySpawned, s.entityPayload(&e))
	return e, true
}

// Hit registers a player interaction with entity id and returns the points awarded
// Invincible entities absorb the hit; hazards end the session
func (s *Session) Hit(id int64) int {
	if !s.playing() {
		return 0
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return 0
	}

	now := s.clock.Now()
	e := s.entities[idx]

	if e.IsInvincible(now) {
		s.emit(event.EventHitBlocked, s.entityPayload(&e))
		return 0
	}

	if e.IsHazard() {
		s.finish(PhaseLost, LossHazard)
		return 0
	}

	points, combo := s.tracker.Register(e.Points, now)
	s.entities = append(s.entities[:idx], s.entities[idx+1:]...)
	s.score += points

	s.emit(event.EventEntityHit, &event.HitPayload{
		EntityPayload: *s.entityPayload(&e),
		Awarded:       points,
		Combo:         combo,
		Score:         s.score,
	})

	s.checkVictory()
	return points
}

// Lose ends a Playing session with reason, for game rules outside the engine
func (s *Session) Lose(reason LossReason) bool {
	if !s.playing() {
		return false
	}
	if reason == LossNone {
		reason = LossLockout
	}
	s.finish(PhaseLost, reason)
	return true
}

// Update mutates an active entity in place while Playing
func (s *Session) Update(id int64, fn func(e *Entity)) bool {
	if !s.playing() {
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	fn(&s.entities[idx])
	s.entities[idx].ID = id
	return true
}

// ID returns the current session identifier
func (s *Session) ID() string {
	if s.id == uuid.Nil {
		return ""
	}
	return s.id.String()
}

// Name returns the configured game name
func (s *Session) Name() string { return s.cfg.Name }

// Config returns the configuration the session runs on
func (s *Session) Config() Config { return s.cfg }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Loss returns why the session was lost, LossNone otherwise
func (s *Session) Loss() LossReason { return s.loss }

// Score returns the current score
func (s *Session) Score() int { return s.score }

// HighScore returns the best final score seen by this session object
func (s *Session) HighScore() int {
	if s.phase.IsTerminal() && s.score > s.highScore {
		return s.score
	}
	return s.highScore
}

// Combo returns the streak recorded at the last hit
func (s *Session) Combo() int { return s.tracker.Combo() }

// BestCombo returns the longest streak of the current play-through
func (s *Session) BestCombo() int { return s.tracker.Best() }

// Speed returns the current difficulty multiplier
func (s *Session) Speed() float64 { return s.speed.InexactFloat64() }

// SpawnPeriod returns the current spawn interval
func (s *Session) SpawnPeriod() time.Duration {
	period := decimal.NewFromInt(int64(s.cfg.SpawnPeriod)).Div(s.speed)
	return time.Duration(period.IntPart())
}

// Entities returns a copy of the active entities in spawn order
func (s *Session) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Entity returns the active entity with id
func (s *Session) Entity(id int64) (Entity, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.entities[idx], true
	}
	return Entity{}, false
}

// Snapshot is a read-only copy of session state for rendering
type Snapshot struct {
	SessionID string
	Game      string
	Phase     Phase
	Loss      LossReason
	Score     int
	HighScore int
	Combo     int // Streak still alive at Now
	Speed     float64
	Entities  []Entity
	PowerUps  []PowerUp
	Now       time.Time
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()
	return Snapshot{
		SessionID: s.ID(),
		Game:      s.cfg.Name,
		Phase:     s.phase,
		Loss:      s.loss,
		Score:     s.score,
		HighScore: s.HighScore(),
		Combo:     s.tracker.ComboAt(now),
		Speed:     s.Speed(),
		Entities:  s.Entities(),
		PowerUps:  s.PowerUps(),
		Now:       now,
	}
}

func (s *Session) playing() bool {
	return !s.closed && s.phase == PhasePlaying
}

func (s *Session) enterPlaying(kind event.EventType) {
	s.stopTimers()

	s.id = uuid.New()
	s.phase = PhasePlaying
	s.loss = LossNone
	s.score = 0
	s.tracker.Reset()
	s.entities = nil
	s.powerUps = nil
	s.speed = decimal.NewFromFloat(s.cfg.Difficulty)

	s.logger.Info("session playing", "session", s.id.String(), "trigger", kind.String(), "high_score", s.highScore)
	s.emit(kind, s.sessionPayload())

	for i := 0; i < s.cfg.InitialSpawns; i++ {
		s.Spawn()
	}

	s.startTimers()
}

// finish enters a terminal phase exactly once per play-through
func (s *Session) finish(phase Phase, reason LossReason) {
	if s.phase != PhasePlaying {
		return
	}
	s.phase = phase
	s.loss = reason
	s.stopTimers()
	s.recordHighScore()

	s.logger.Info("session ended",
		"session", s.id.String(),
		"phase", phase.String(),
		"reason", reason.String(),
		"score", s.score,
		"best_combo", s.tracker.Best(),
	)

	if phase == PhaseWon {
		s.emit(event.EventSessionWon, s.sessionPayload())
		return
	}
	s.emit(event.EventSessionLost, &event.LossPayload{
		SessionPayload: *s.sessionPayload(),
		Reason:         reason.String(),
	})
}

func (s *Session) checkVictory() {
	if s.score >= s.cfg.VictoryScore {
		s.finish(PhaseWon, LossNone)
	}
}

func (s *Session) recordHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

func (s *Session) startTimers() {
	if s.sched == nil {
		return
	}
	s.restartSpawnTimer()
	if s.cfg.PowerUpPeriod > 0 && len(s.cfg.PowerUps) > 0 {
		s.powerUpCancel = s.sched.Every(s.cfg.PowerUpPeriod, func() { s.SpawnPowerUp() })
	}
}

func (s *Session) restartSpawnTimer() {
	if s.sched == nil {
		return
	}
	if s.spawnCancel != nil {
		s.spawnCancel()
	}
	s.spawnCancel = s.sched.Every(s.SpawnPeriod(), func() { s.Spawn() })
}

// after schedules a session-owned one-shot timer, cancelled with the session
func (s *Session) after(d time.Duration, fn func()) {
	if s.sched == nil {
		return
	}
	s.nextEffect++
	id := s.nextEffect
	s.effects[id] = s.sched.After(d, func() {
		delete(s.effects, id)
		if s.playing() {
			fn()
		}
	})
}

func (s *Session) stopTimers() {
	if s.spawnCancel != nil {
		s.spawnCancel()
		s.spawnCancel = nil
	}
	if s.powerUpCancel != nil {
		s.powerUpCancel()
		s.powerUpCancel = nil
	}
	for id, cancel := range s.effects {
		cancel()
		delete(s.effects, id)
	}
}

func (s *Session) indexOf(id int64) int {
	for i := range s.entities {
		if s.entities[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) emit(t event.EventType, payload any) {
	s.router.Emit(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: s.clock.Now(),
	})
}

func (s *Session) sessionPayload() *event.SessionPayload {
	return &event.SessionPayload{
		SessionID: s.id.String(),
		Game:      s.cfg.Name,
		Score:     s.score,
		HighScore: s.HighScore(),
	}
}

func (s *Session) entityPayload(e *Entity) *event.EntityPayload {
	return &event.EntityPayload{
		SessionID: s.id.String(),
		ID:        e.ID,
		Kind:      e.Kind,
		Category:  e.Category.String(),
		X:         e.X,
		Y:         e.Y,
		Points:    e.Points,
	}
}

// String implements fmt.Stringer for log lines
func (s *Session) String() string {
	return fmt.Sprintf("%s[%s score=%d high=%d entities=%d]", s.cfg.Name, s.phase, s.score, s.HighScore(), len(s.entities))
}
