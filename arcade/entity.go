package arcade

import "time"

// Category tags an entity variant
type Category int

const (
	CategoryCommon Category = iota
	CategoryRare
	CategoryHazard // Ends the session when hit
	CategoryBoss   // Larger, slower, worth more, invincible on spawn
)

var categoryNames = [...]string{
	CategoryCommon: "common",
	CategoryRare:   "rare",
	CategoryHazard: "hazard",
	CategoryBoss:   "boss",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Entity is a single spawned target on the board
// Coordinates are in the normalized 0-100 play area space
type Entity struct {
	ID       int64
	X, Y     float64
	Category Category
	Kind     string
	Glyph    rune
	Speed    float64
	Size     int
	Points   int

	Invincible      bool
	InvincibleUntil time.Time // Zero keeps the entity invincible until a shield pickup

	SpawnedAt time.Time
}

// IsInvincible reports whether hits are currently absorbed
func (e *Entity) IsInvincible(now time.Time) bool {
	if !e.Invincible {
		return false
	}
	return e.InvincibleUntil.IsZero() || now.Before(e.InvincibleUntil)
}

// IsHazard reports whether hitting the entity ends the session
func (e *Entity) IsHazard() bool {
	return e.Category == CategoryHazard
}

// PowerUpKind enumerates pickup effects
type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota // Slows the spawn rate for a while
	PowerUpShield                        // Strips invincibility from every entity
	PowerUpSlowTime                      // Halves entity speed for a while
	PowerUpClearBoard                    // Removes every entity for a fixed bonus
)

var powerUpNames = [...]string{
	PowerUpSpeedBoost: "speed-boost",
	PowerUpShield:     "shield",
	PowerUpSlowTime:   "slow-time",
	PowerUpClearBoard: "clear-board",
}

var powerUpGlyphs = [...]rune{
	PowerUpSpeedBoost: 'S',
	PowerUpShield:     'O',
	PowerUpSlowTime:   'T',
	PowerUpClearBoard: 'B',
}

func (k PowerUpKind) String() string {
	if k >= 0 && int(k) < len(powerUpNames) {
		return powerUpNames[k]
	}
	return "unknown"
}

// Glyph returns the single-cell rune used to draw the power-up
func (k PowerUpKind) Glyph() rune {
	if k >= 0 && int(k) < len(powerUpGlyphs) {
		return powerUpGlyphs[k]
	}
	return '?'
}

// AllPowerUps lists every power-up kind
func AllPowerUps() []PowerUpKind {
	return []PowerUpKind{PowerUpSpeedBoost, PowerUpShield, PowerUpSlowTime, PowerUpClearBoard}
}

// PowerUp is a pickup on the board
type PowerUp struct {
	ID   int64
	X, Y float64
	Kind PowerUpKind
}
