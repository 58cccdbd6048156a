package arcade

import (
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/dev-arcade/event"
)

// SpawnPowerUp places a random enabled power-up inside the 10-90 band
func (s *Session) SpawnPowerUp() (PowerUp, bool) {
	if !s.playing() || len(s.cfg.PowerUps) == 0 {
		return PowerUp{}, false
	}

	s.nextID++
	p := PowerUp{
		ID:   s.nextID,
		Kind: s.cfg.PowerUps[s.rng.IntN(len(s.cfg.PowerUps))],
		X:    10 + s.rng.Float64()*80,
		Y:    10 + s.rng.Float64()*80,
	}
	s.powerUps = append(s.powerUps, p)

	s.emit(event.EventPowerUpSpawned, s.powerUpPayload(&p, 0))
	return p, true
}

// Collect picks up power-up id and applies its effect
func (s *Session) Collect(id int64) bool {
	if !s.playing() {
		return false
	}
	idx := -1
	for i := range s.powerUps {
		if s.powerUps[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	p := s.powerUps[idx]
	s.powerUps = append(s.powerUps[:idx], s.powerUps[idx+1:]...)

	bonus := 0
	switch p.Kind {
	case PowerUpSpeedBoost:
		s.applySpeedBoost(p)
	case PowerUpShield:
		for i := range s.entities {
			s.entities[i].Invincible = false
		}
	case PowerUpSlowTime:
		s.applySlowTime(p)
	case PowerUpClearBoard:
		s.entities = nil
		bonus = s.cfg.ClearBonus
		s.score += bonus
	}

	s.emit(event.EventPowerUpCollected, s.powerUpPayload(&p, bonus))

	if bonus > 0 {
		s.checkVictory()
	}
	return true
}

// PowerUps returns a copy of the active power-ups in spawn order
func (s *Session) PowerUps() []PowerUp {
	out := make([]PowerUp, len(s.powerUps))
	copy(out, s.powerUps)
	return out
}

// applySpeedBoost scales the difficulty multiplier down for SpeedBoostFor
// and restarts the spawn timer at the new period both ways
func (s *Session) applySpeedBoost(p PowerUp) {
	factor := decimal.NewFromFloat(s.cfg.SpeedBoostFactor)
	s.speed = s.speed.Mul(factor)
	s.restartSpawnTimer()

	s.after(s.cfg.SpeedBoostFor, func() {
		s.speed = s.speed.Div(factor)
		s.restartSpawnTimer()
		s.emit(event.EventEffectExpired, s.powerUpPayload(&p, 0))
	})
}

// applySlowTime scales the speed of entities on the board for SlowFor
// Entities spawned during the effect keep their speed
func (s *Session) applySlowTime(p PowerUp) {
	slowed := make(map[int64]struct{}, len(s.entities))
	for i := range s.entities {
		s.entities[i].Speed *= s.cfg.SlowFactor
		slowed[s.entities[i].ID] = struct{}{}
	}

	s.after(s.cfg.SlowFor, func() {
		for i := range s.entities {
			if _, ok := slowed[s.entities[i].ID]; ok {
				s.entities[i].Speed /= s.cfg.SlowFactor
			}
		}
		s.emit(event.EventEffectExpired, s.powerUpPayload(&p, 0))
	})
}

func (s *Session) powerUpPayload(p *PowerUp, bonus int) *event.PowerUpPayload {
	return &event.PowerUpPayload{
		SessionID: s.id.String(),
		ID:        p.ID,
		Kind:      p.Kind.String(),
		Bonus:     bonus,
	}
}
