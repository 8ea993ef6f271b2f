package catalog

import (
	"testing"

	"github.com/eventsphere/eventsphere/internal/model"
)

func TestDerive_StatusThresholds(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		attendees int
		want      model.Status
	}{
		{"empty", 100, 0, model.StatusOpen},
		{"below threshold", 100, 79, model.StatusOpen},
		{"at threshold", 100, 80, model.StatusAlmostFull},
		{"near full", 100, 99, model.StatusAlmostFull},
		{"full", 100, 100, model.StatusFull},
		{"overfull", 100, 120, model.StatusFull},
		{"zero capacity", 0, 0, model.StatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(model.Event{Capacity: tt.capacity, Attendees: tt.attendees})
			if got.Status != tt.want {
				t.Errorf("capacity=%d attendees=%d: expected %q, got %q",
					tt.capacity, tt.attendees, tt.want, got.Status)
			}
		})
	}
}

func TestDerive_SeatsLeftRecomputed(t *testing.T) {
	stale := 999
	ev := model.Event{Capacity: 200, Attendees: 150, SeatsLeft: &stale}

	got := Derive(ev)

	if got.SeatsLeft == nil || *got.SeatsLeft != 50 {
		t.Fatalf("expected seatsLeft recomputed to 50, got %v", got.SeatsLeft)
	}
}

func TestDerive_FallsBackToPersistedCacheWithoutCapacity(t *testing.T) {
	cached := 42
	ev := model.Event{SeatsLeft: &cached}

	got := Derive(ev)

	if got.SeatsLeft == nil || *got.SeatsLeft != 42 {
		t.Fatalf("expected persisted seatsLeft 42, got %v", got.SeatsLeft)
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	ev := model.Event{Capacity: 100, Attendees: 100}

	Derive(ev)

	if ev.SeatsLeft != nil || ev.Status != "" {
		t.Error("input event was mutated")
	}
}

func TestDerive_Idempotent(t *testing.T) {
	once := Derive(model.Event{Capacity: 100, Attendees: 85})
	twice := Derive(once)

	if *once.SeatsLeft != *twice.SeatsLeft || once.Status != twice.Status {
		t.Errorf("derive not idempotent: %v/%q vs %v/%q",
			*once.SeatsLeft, once.Status, *twice.SeatsLeft, twice.Status)
	}
}

func TestAnnotate_PreservesOrder(t *testing.T) {
	events := []model.Event{
		{ID: 3, Capacity: 10, Attendees: 10},
		{ID: 1, Capacity: 10, Attendees: 0},
	}

	annotated := Annotate(events)

	if annotated[0].ID != 3 || annotated[1].ID != 1 {
		t.Error("annotate changed collection order")
	}
	if annotated[0].Status != model.StatusFull || annotated[1].Status != model.StatusOpen {
		t.Errorf("unexpected statuses %q, %q", annotated[0].Status, annotated[1].Status)
	}
}
