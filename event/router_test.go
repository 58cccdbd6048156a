package event

import (
	"testing"
	"time"
)

type recorder struct {
	types []EventType
	got   []GameEvent
}

func (r *recorder) HandleEvent(ev GameEvent) { r.got = append(r.got, ev) }
func (r *recorder) EventTypes() []EventType  { return r.types }

func TestRouterDispatchesByType(t *testing.T) {
	router := NewRouter()
	hits := &recorder{types: []EventType{EventEntityHit}}
	phases := &recorder{types: []EventType{EventSessionWon, EventSessionLost}}
	router.Register(hits)
	router.Register(phases)

	now := time.Now()
	router.Emit(GameEvent{Type: EventEntityHit, Payload: &HitPayload{Awarded: 15}, Timestamp: now})
	router.Emit(GameEvent{Type: EventSessionLost, Payload: &LossPayload{Reason: "hazard"}})
	router.Emit(GameEvent{Type: EventEntitySpawned})

	if len(hits.got) != 1 {
		t.Fatalf("Expected 1 hit event, got %d", len(hits.got))
	}
	if p := hits.got[0].Payload.(*HitPayload); p.Awarded != 15 {
		t.Errorf("Payload not delivered intact: %+v", p)
	}
	if len(phases.got) != 1 || phases.got[0].Type != EventSessionLost {
		t.Errorf("Expected one loss event, got %+v", phases.got)
	}
}

func TestRouterPreservesRegistrationOrder(t *testing.T) {
	router := NewRouter()
	var order []string
	for _, name := range []string{"audio", "metrics", "log"} {
		router.Register(HandlerFunc{
			Types: []EventType{EventSessionWon},
			Fn:    func(GameEvent) { order = append(order, name) },
		})
	}

	router.Emit(GameEvent{Type: EventSessionWon})

	want := []string{"audio", "metrics", "log"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
	if router.HandlerCount(EventSessionWon) != 3 {
		t.Errorf("Expected 3 handlers, got %d", router.HandlerCount(EventSessionWon))
	}
}

func TestNilRouterDropsEvents(t *testing.T) {
	var router *Router
	router.Emit(GameEvent{Type: EventEntityHit})
}

func TestEventTypeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, et := range AllTypes() {
		name := et.String()
		if name == "Unknown" {
			t.Errorf("Type %d has no name", et)
		}
		if seen[name] {
			t.Errorf("Duplicate name %s", name)
		}
		seen[name] = true
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Undefined type should be Unknown")
	}
}
