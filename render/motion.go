package render

import (
	"math"
	"time"

	"github.com/lixenwraith/dev-arcade/arcade"
)

// pathSeconds is the time one leg of a wander path takes at speed 1
const pathSeconds = 3.0

// Point is a position in the normalized 0-100 space
type Point struct {
	X, Y float64
}

// path ping-pongs through three keyframes: spawn point and two random waypoints
// phase runs 0..2; 0..1 forward, 1..2 back
type path struct {
	keys  [3]Point
	phase float64
}

func (p *path) at() Point {
	v := p.phase
	if v > 1 {
		v = 2 - v
	}
	if v <= 0.5 {
		return lerp(p.keys[0], p.keys[1], v*2)
	}
	return lerp(p.keys[1], p.keys[2], (v-0.5)*2)
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Placed is an entity with its display position for this frame
type Placed struct {
	Entity arcade.Entity
	Point
}

// Motion animates entities along wander paths
// Movement is presentation only; the session never sees display positions
type Motion struct {
	rng   arcade.Rand
	paths map[int64]*path
	last  time.Time
}

// NewMotion creates a motion tracker drawing waypoints from r
func NewMotion(r arcade.Rand) *Motion {
	return &Motion{
		rng:   r,
		paths: make(map[int64]*path),
	}
}

// Layout advances every path to now and returns display positions in entity order
// New entities start at their spawn point; paths of removed entities are dropped
func (m *Motion) Layout(ents []arcade.Entity, now time.Time) []Placed {
	dt := 0.0
	if !m.last.IsZero() && now.After(m.last) {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	live := make(map[int64]struct{}, len(ents))
	placed := make([]Placed, 0, len(ents))

	for _, e := range ents {
		live[e.ID] = struct{}{}

		p, ok := m.paths[e.ID]
		if !ok {
			p = &path{keys: [3]Point{
				{X: e.X, Y: e.Y},
				{X: m.rng.Float64() * 100, Y: m.rng.Float64() * 100},
				{X: m.rng.Float64() * 100, Y: m.rng.Float64() * 100},
			}}
			m.paths[e.ID] = p
		} else if e.Speed > 0 {
			p.phase = math.Mod(p.phase+dt*e.Speed/pathSeconds, 2)
		}

		placed = append(placed, Placed{Entity: e, Point: p.at()})
	}

	for id := range m.paths {
		if _, ok := live[id]; !ok {
			delete(m.paths, id)
		}
	}
	return placed
}

// Reset forgets every path
func (m *Motion) Reset() {
	clear(m.paths)
	m.last = time.Time{}
}

// Tracked returns the number of live paths
func (m *Motion) Tracked() int { return len(m.paths) }
