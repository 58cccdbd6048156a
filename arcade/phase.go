package arcade

// Phase is the session state machine position
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

var phaseNames = [...]string{
	PhaseIdle:    "idle",
	PhasePlaying: "playing",
	PhaseWon:     "won",
	PhaseLost:    "lost",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// IsTerminal reports whether the phase ends a session
func (p Phase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// LossReason records why a session was lost
type LossReason int

const (
	LossNone     LossReason = iota
	LossHazard              // A hazard entity was hit
	LossOverflow            // The board exceeded its entity ceiling
	LossLockout             // The game locked the player out (e.g. attempts exhausted)
)

var lossNames = [...]string{
	LossNone:     "none",
	LossHazard:   "hazard",
	LossOverflow: "overflow",
	LossLockout:  "lockout",
}

func (r LossReason) String() string {
	if r >= 0 && int(r) < len(lossNames) {
		return lossNames[r]
	}
	return "unknown"
}
