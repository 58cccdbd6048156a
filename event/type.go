package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted marks entry into Playing from Idle
	// Trigger: Session.Start | Payload: *SessionPayload
	EventSessionStarted EventType = iota + 1

	// EventSessionReset marks entry into Playing from a terminal phase
	// Trigger: Session.Reset | Payload: *SessionPayload
	EventSessionReset

	// EventSessionWon marks the victory transition
	// Trigger: score crossed the victory threshold | Payload: *SessionPayload
	EventSessionWon

	// EventSessionLost marks the loss transition
	// Trigger: hazard hit, board overflow, external lock-out | Payload: *LossPayload
	EventSessionLost

	// EventEntitySpawned signals a new entity on the board
	// Trigger: spawn timer, initial spawns | Payload: *EntityPayload
	EventEntitySpawned

	// EventEntityHit signals a scoring hit
	// Trigger: Session.Hit on a vulnerable entity | Payload: *HitPayload
	EventEntityHit

	// EventHitBlocked signals a hit absorbed by an invincible entity
	// Payload: *EntityPayload
	EventHitBlocked

	// EventPowerUpSpawned signals a new power-up on the board
	// Trigger: power-up timer | Payload: *PowerUpPayload
	EventPowerUpSpawned

	// EventPowerUpCollected signals a power-up pickup and its effect being applied
	// Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventEffectExpired signals the end of a timed power-up effect
	// Payload: *PowerUpPayload
	EventEffectExpired
)

var typeNames = map[EventType]string{
	EventSessionStarted:   "SessionStarted",
	EventSessionReset:     "SessionReset",
	EventSessionWon:       "SessionWon",
	EventSessionLost:      "SessionLost",
	EventEntitySpawned:    "EntitySpawned",
	EventEntityHit:        "EntityHit",
	EventHitBlocked:       "HitBlocked",
	EventPowerUpSpawned:   "PowerUpSpawned",
	EventPowerUpCollected: "PowerUpCollected",
	EventEffectExpired:    "EffectExpired",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// AllTypes returns every defined event type in declaration order
func AllTypes() []EventType {
	return []EventType{
		EventSessionStarted,
		EventSessionReset,
		EventSessionWon,
		EventSessionLost,
		EventEntitySpawned,
		EventEntityHit,
		EventHitBlocked,
		EventPowerUpSpawned,
		EventPowerUpCollected,
		EventEffectExpired,
	}
}

// GameEvent is a single emitted event
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
