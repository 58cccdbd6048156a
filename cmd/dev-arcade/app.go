package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dev-arcade/arcade"
	"github.com/lixenwraith/dev-arcade/audio"
	"github.com/lixenwraith/dev-arcade/config"
	"github.com/lixenwraith/dev-arcade/engine"
	"github.com/lixenwraith/dev-arcade/event"
	"github.com/lixenwraith/dev-arcade/games"
	"github.com/lixenwraith/dev-arcade/input"
	"github.com/lixenwraith/dev-arcade/render"
	"github.com/lixenwraith/dev-arcade/status"
)

const konamiToastFor = 10 * time.Second

var statusKeys = []string{
	arcade.MetricPhase,
	arcade.MetricSpawns,
	arcade.MetricHits,
	arcade.MetricBlocked,
	arcade.MetricPowerUps,
	arcade.MetricBestCombo,
}

// app owns every component and is driven from one goroutine
// Production runs it on engine.Loop; tests call handleEvent and draw directly
type app struct {
	screen tcell.Screen
	cfg    *config.Config
	clock  engine.TimeProvider
	logger *slog.Logger

	router   *event.Router
	registry *status.Registry
	sound    *audio.SoundManager
	switcher *games.Switcher
	machine  *input.Machine
	motion   *render.Motion
	renderer *render.Renderer

	onQuit func()

	// Last drawn layout, used for click hit-testing
	ctx    render.RenderContext
	placed []render.Placed

	toastUntil time.Time
	shareURL   string
	seed       uint64
}

func newApp(screen tcell.Screen, cfg *config.Config, clock engine.TimeProvider, sched engine.Scheduler,
	sound *audio.SoundManager, logger *slog.Logger) (*app, error) {

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	rng := arcade.NewRand(seed)

	a := &app{
		screen:   screen,
		cfg:      cfg,
		clock:    clock,
		logger:   logger.With("component", "app"),
		router:   event.NewRouter(),
		registry: status.NewRegistry(),
		sound:    sound,
		machine:  input.NewMachine(nil),
		motion:   render.NewMotion(rng),
		renderer: render.NewRenderer(screen),
		onQuit:   func() {},
		seed:     seed,
	}

	a.router.Register(arcade.NewMetricsRecorder(a.registry))
	a.router.Register(sound)
	a.router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventSessionStarted, event.EventSessionReset},
		Fn: func(event.GameEvent) {
			a.motion.Reset()
			a.shareURL = ""
		},
	})

	factory := games.NewFactory(cfg.BugSquash, cfg.CodeBreaker, rng,
		arcade.WithClock(clock),
		arcade.WithScheduler(sched),
		arcade.WithRouter(a.router),
		arcade.WithLogger(logger.With("component", "session")),
	)
	switcher, err := games.NewSwitcher(games.Order, cfg.Game, factory, logger.With("component", "switcher"))
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cfg.Game, err)
	}
	a.switcher = switcher
	a.syncMode()

	a.logger.Info("arcade started", "game", string(cfg.Game), "seed", seed)
	return a, nil
}

// handleEvent applies one terminal event
func (a *app) handleEvent(ev tcell.Event) {
	intent := a.machine.Process(ev)
	if intent == nil {
		return
	}
	now := a.clock.Now()

	if intent.Konami {
		a.unlockKonami(now)
	}

	switch intent.Type {
	case input.IntentQuit:
		a.onQuit()
	case input.IntentToggleMute:
		a.logger.Debug("mute toggled", "muted", a.sound.ToggleMute())
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentSwitchNext:
		a.switchResult(a.switcher.Next(now))
	case input.IntentSwitchTo:
		order := a.switcher.Games()
		if intent.Target >= 0 && intent.Target < len(order) {
			a.switchResult(a.switcher.Switch(order[intent.Target], now))
		}
	case input.IntentReset:
		a.switcher.Active().Reset()
	case input.IntentShare:
		a.share()
	case input.IntentClick:
		a.click(intent.X, intent.Y)
	case input.IntentTextChar:
		if b, ok := a.breaker(); ok {
			b.Type(intent.Char)
		}
	case input.IntentTextBackspace:
		if b, ok := a.breaker(); ok {
			b.Backspace()
		}
	case input.IntentTextConfirm:
		if b, ok := a.breaker(); ok {
			res := b.Submit()
			a.logger.Debug("answer submitted", "correct", res.Correct, "points", res.Points, "attempts", res.Attempts)
		}
	case input.IntentHint:
		if b, ok := a.breaker(); ok {
			b.RevealHint()
		}
	}

	a.syncMode()
}

func (a *app) switchResult(switched bool, err error) {
	if err != nil {
		a.logger.Error("switch failed", "error", err)
		return
	}
	if switched {
		a.motion.Reset()
		a.placed = nil
	}
}

func (a *app) unlockKonami(now time.Time) {
	a.toastUntil = now.Add(konamiToastFor)
	a.sound.PlayKonami()
	a.logger.Info("konami code entered")
}

func (a *app) share() {
	g := a.switcher.Active()
	if !g.Session().Phase().IsTerminal() {
		return
	}
	a.shareURL = games.ShareURL(g.ShareMessage())
	a.logger.Info("share link created", "game", string(g.ID()))
}

func (a *app) click(x, y int) {
	b, ok := a.switcher.Active().(*games.BugSquash)
	if !ok {
		return
	}
	target := render.Pick(a.ctx, a.placed, b.Session().PowerUps(), x, y)
	switch target.Kind {
	case render.TargetEntity:
		b.Squash(target.ID)
	case render.TargetPowerUp:
		b.Collect(target.ID)
	}
}

func (a *app) breaker() (*games.Breaker, bool) {
	b, ok := a.switcher.Active().(*games.Breaker)
	return b, ok
}

// syncMode keeps the input binding set in step with the active game and its phase
func (a *app) syncMode() {
	g := a.switcher.Active()
	switch {
	case g.Session().Phase().IsTerminal():
		a.machine.SetMode(input.ModeEnd)
	case g.ID() == games.CodeBreaker:
		a.machine.SetMode(input.ModeText)
	default:
		a.machine.SetMode(input.ModeBoard)
	}
}

// draw renders one frame; timers may have ended the session since the last input
func (a *app) draw() {
	a.syncMode()
	f := a.frame(a.clock.Now())
	ctx := a.renderer.Context(f)
	a.renderer.Render(ctx, f)
	a.ctx = ctx
	a.placed = f.Placed
}

func (a *app) frame(now time.Time) *render.Frame {
	g := a.switcher.Active()
	session := g.Session()
	snap := session.Snapshot()

	f := &render.Frame{
		Snapshot:      snap,
		Muted:         a.sound.IsMuted(),
		Transitioning: a.switcher.Transitioning(now),
		Status:        fmt.Sprintf("%s seed=%d", a.registry.Line(statusKeys...), a.seed),
	}
	for i, id := range a.switcher.Games() {
		f.Tabs = append(f.Tabs, id.Title())
		if id == g.ID() {
			f.Active = i
		}
	}

	switch g := g.(type) {
	case *games.BugSquash:
		f.Placed = a.motion.Layout(snap.Entities, now)
		f.Snippet = g.Snippet()
		f.Guide = guide(session.Config())
	case *games.Breaker:
		f.Card = card(g)
	}

	if snap.Phase.IsTerminal() {
		end := g.End()
		f.End = &render.End{
			Won:      snap.Phase == arcade.PhaseWon,
			Title:    end.Title,
			Message:  end.Message,
			Button:   end.Button,
			Score:    snap.Score,
			ShareURL: a.shareURL,
		}
	}

	if now.Before(a.toastUntil) {
		f.Toast = []string{
			"KONAMI CODE UNLOCKED!",
			games.KonamiMessage,
			games.ShareURL(games.KonamiMessage),
		}
	}
	return f
}

// guide lists every kind with its points, then the boss and hazard rules
func guide(cfg arcade.Config) []render.GuideEntry {
	entries := make([]render.GuideEntry, 0, len(cfg.Kinds)+2)
	for _, k := range cfg.Kinds {
		entries = append(entries, render.GuideEntry{Glyph: k.Glyph, Label: fmt.Sprintf("%dpts", k.Points)})
	}
	if cfg.Boss.Probability > 0 {
		entries = append(entries, render.GuideEntry{Glyph: '[', Label: fmt.Sprintf("boss x%d", cfg.Boss.PointMultiplier)})
	}
	if cfg.Hazard.Probability > 0 {
		entries = append(entries, render.GuideEntry{Glyph: cfg.Hazard.Glyph, Label: "game over"})
	}
	return entries
}

func card(b *games.Breaker) *render.Card {
	c := &render.Card{
		Input:    b.Input(),
		Message:  b.Message(),
		Attempts: b.Attempts(),
		Pending:  b.Pending(),
	}
	_, ch, ok := b.Current()
	if !ok {
		c.Difficulty = "-"
		return c
	}
	c.Difficulty = ch.Difficulty
	c.Description = ch.Description
	c.Code = ch.Code
	if b.HintShown() {
		c.Hint = ch.Hint
	}
	return c
}

// close releases the active game and the speaker
func (a *app) close() {
	a.switcher.Close()
	a.sound.Cleanup()
}
