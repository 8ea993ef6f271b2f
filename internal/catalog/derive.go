package catalog

import "github.com/eventsphere/eventsphere/internal/model"

// Derive returns a copy of the event with SeatsLeft and Status populated.
// SeatsLeft is recomputed from Capacity/Attendees whenever Capacity is
// known; a persisted SeatsLeft cache is honored only as a fallback. The
// input is never mutated and Derive(Derive(e)) == Derive(e).
func Derive(e model.Event) model.Event {
	left := e.Remaining()
	e.SeatsLeft = &left
	e.Status = e.FillStatus()
	return e
}

// Annotate derives seat availability and status for every event in the
// collection, returning a new slice in the same order.
func Annotate(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		out[i] = Derive(e)
	}
	return out
}
