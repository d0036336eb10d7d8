package sim

import "testing"

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	var got []string
	bus.Subscribe(EventFlap, func(Event) { got = append(got, "a") })
	bus.Subscribe(EventFlap, func(Event) { got = append(got, "b") })
	bus.Subscribe(EventShot, func(Event) { got = append(got, "shot") })

	bus.Emit(Event{Type: EventFlap})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected [a b], got %v", got)
	}
}

func TestEventBusRecoversHandlerPanic(t *testing.T) {
	bus := NewEventBus()
	reached := false
	bus.Subscribe(EventGameOver, func(Event) { panic("boom") })
	bus.Subscribe(EventGameOver, func(Event) { reached = true })

	bus.Emit(Event{Type: EventGameOver})

	if !reached {
		t.Error("Expected later handler to run after a panic")
	}
	if bus.Failures() != 1 {
		t.Errorf("Expected one failure, got %d", bus.Failures())
	}
}

func TestSubscribeAllSeesEveryType(t *testing.T) {
	bus := NewEventBus()
	seen := map[EventType]bool{}
	bus.SubscribeAll(func(e Event) { seen[e.Type] = true })

	for et := EventScoreChanged; et <= EventEnemySpawned; et++ {
		bus.Emit(Event{Type: et})
	}
	for et := EventScoreChanged; et <= EventEnemySpawned; et++ {
		if !seen[et] {
			t.Errorf("Handler missed %v", et)
		}
	}
}

func TestEventTypeNames(t *testing.T) {
	for et := EventScoreChanged; et <= EventEnemySpawned; et++ {
		if et.String() == "" || et.String() == "unknown" {
			t.Errorf("Event type %d has no name", et)
		}
	}
}
