package event

// SessionPayload describes a session at a phase transition
type SessionPayload struct {
	SessionID string
	Game      string
	Score     int
	HighScore int
}

// LossPayload extends SessionPayload with the loss cause
type LossPayload struct {
	SessionPayload
	Reason string
}

// EntityPayload is a flattened view of an entity
type EntityPayload struct {
	SessionID string
	ID        int64
	Kind      string
	Category  string
	X, Y      float64
	Points    int
}

// HitPayload carries the outcome of a scoring hit
type HitPayload struct {
	EntityPayload
	Awarded int
	Combo   int
	Score   int
}

// PowerUpPayload describes a power-up lifecycle step
type PowerUpPayload struct {
	SessionID string
	ID        int64
	Kind      string
	Bonus     int // Points granted by the pickup, zero for most kinds
}
