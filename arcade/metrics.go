package arcade

import (
	"sync/atomic"

	"github.com/lixenwraith/dev-arcade/event"
	"github.com/lixenwraith/dev-arcade/status"
)

// Metric keys published by MetricsRecorder
const (
	MetricPhase     = "session.phase"
	MetricSpawns    = "session.spawns"
	MetricHits      = "session.hits"
	MetricBlocked   = "session.blocked"
	MetricPowerUps  = "session.powerups"
	MetricWins      = "session.wins"
	MetricLosses    = "session.losses"
	MetricBestCombo = "session.best_combo"
	MetricScore     = "session.score"
)

// MetricsRecorder mirrors session events into a status registry
type MetricsRecorder struct {
	phase     *status.AtomicString
	spawns    *atomic.Int64
	hits      *atomic.Int64
	blocked   *atomic.Int64
	powerUps  *atomic.Int64
	wins      *atomic.Int64
	losses    *atomic.Int64
	bestCombo *status.AtomicFloat
	score     *atomic.Int64
}

// NewMetricsRecorder caches metric pointers from reg
func NewMetricsRecorder(reg *status.Registry) *MetricsRecorder {
	return &MetricsRecorder{
		phase:     reg.Strings.Get(MetricPhase),
		spawns:    reg.Ints.Get(MetricSpawns),
		hits:      reg.Ints.Get(MetricHits),
		blocked:   reg.Ints.Get(MetricBlocked),
		powerUps:  reg.Ints.Get(MetricPowerUps),
		wins:      reg.Ints.Get(MetricWins),
		losses:    reg.Ints.Get(MetricLosses),
		bestCombo: reg.Floats.Get(MetricBestCombo),
		score:     reg.Ints.Get(MetricScore),
	}
}

// EventTypes implements event.Handler
func (m *MetricsRecorder) EventTypes() []event.EventType {
	return event.AllTypes()
}

// HandleEvent implements event.Handler
func (m *MetricsRecorder) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionStarted, event.EventSessionReset:
		m.phase.Store(PhasePlaying.String())
		m.score.Store(0)
	case event.EventSessionWon:
		m.phase.Store(PhaseWon.String())
		m.wins.Add(1)
	case event.EventSessionLost:
		m.phase.Store(PhaseLost.String())
		m.losses.Add(1)
	case event.EventEntitySpawned:
		m.spawns.Add(1)
	case event.EventEntityHit:
		m.hits.Add(1)
		if p, ok := ev.Payload.(*event.HitPayload); ok {
			m.score.Store(int64(p.Score))
			m.bestCombo.Max(float64(p.Combo))
		}
	case event.EventHitBlocked:
		m.blocked.Add(1)
	case event.EventPowerUpCollected:
		m.powerUps.Add(1)
		if p, ok := ev.Payload.(*event.PowerUpPayload); ok && p.Bonus > 0 {
			m.score.Add(int64(p.Bonus))
		}
	}
}
