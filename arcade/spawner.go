package arcade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Edge identifies the side of the play area an entity enters from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Spawner builds entities from a kind table
// It is pure: all randomness comes from the Rand passed to Spawn
type Spawner struct {
	cfg     Config
	weights []float64
}

// NewSpawner precomputes the weight vector for cfg.Kinds
func NewSpawner(cfg Config) *Spawner {
	weights := make([]float64, len(cfg.Kinds))
	for i, k := range cfg.Kinds {
		weights[i] = k.Weight
	}
	return &Spawner{cfg: cfg, weights: weights}
}

// Spawn creates one entity
// Draw order: hazard roll, boss roll (non-hazard only), kind (non-hazard only), edge, position, speed
func (s *Spawner) Spawn(r Rand, id int64, speed decimal.Decimal, now time.Time) Entity {
	hazard := r.Float64() < s.cfg.Hazard.Probability
	boss := !hazard && r.Float64() < s.cfg.Boss.Probability

	e := Entity{
		ID:        id,
		Size:      1,
		SpawnedAt: now,
	}

	var kind KindSpec
	if hazard {
		e.Category = CategoryHazard
		e.Kind = s.cfg.Hazard.Name
		e.Glyph = s.cfg.Hazard.Glyph
	} else {
		kind = s.cfg.Kinds[PickWeighted(r, s.weights)]
		e.Category = kind.Category
		e.Kind = kind.Name
		e.Glyph = kind.Glyph
		e.Points = kind.Points
	}

	e.X, e.Y = EdgePosition(r)

	switch {
	case hazard:
		e.Speed = scaleSpeed(uniform(r, s.cfg.Hazard.SpeedMin, s.cfg.Hazard.SpeedMax), speed)
	case boss:
		e.Category = CategoryBoss
		e.Speed = s.cfg.Boss.Speed
		e.Size = s.cfg.Boss.Size
		e.Points = kind.Points * s.cfg.Boss.PointMultiplier
		e.Invincible = true
		if s.cfg.Boss.InvincibleFor > 0 {
			e.InvincibleUntil = now.Add(s.cfg.Boss.InvincibleFor)
		}
	default:
		e.Speed = scaleSpeed(uniform(r, kind.SpeedMin, kind.SpeedMax), speed)
	}

	return e
}

// EdgePosition picks a point uniformly along one randomly chosen edge of the 0-100 area
func EdgePosition(r Rand) (x, y float64) {
	switch Edge(r.IntN(4)) {
	case EdgeTop:
		return r.Float64() * 100, 0
	case EdgeRight:
		return 100, r.Float64() * 100
	case EdgeBottom:
		return r.Float64() * 100, 100
	default:
		return 0, r.Float64() * 100
	}
}

func scaleSpeed(base float64, multiplier decimal.Decimal) float64 {
	return decimal.NewFromFloat(base).Mul(multiplier).InexactFloat64()
}
