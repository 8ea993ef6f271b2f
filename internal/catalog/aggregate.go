package catalog

import "github.com/eventsphere/eventsphere/internal/model"

// Totals is the summary produced by Aggregate.
type Totals struct {
	Events    int
	Attendees int
	Revenue   int64
}

// Aggregate sums attendee counts and revenue across a collection. Records
// with missing numeric fields contribute zero; heterogeneous input never
// produces an error.
func Aggregate(events []model.Event) Totals {
	t := Totals{Events: len(events)}
	for _, e := range events {
		t.Attendees += e.Attendees
		t.Revenue += e.Revenue
	}
	return t
}

// RegistrationsPerEvent builds the per-event registration chart series in
// collection order.
func RegistrationsPerEvent(events []model.Event) []model.ChartPoint {
	out := make([]model.ChartPoint, 0, len(events))
	for _, e := range events {
		out = append(out, model.ChartPoint{Name: e.Title, Registrations: e.Attendees})
	}
	return out
}

// RevenueByCategory groups revenue by event category, preserving the order
// in which categories first appear.
func RevenueByCategory(events []model.Event) []model.RevenueSlice {
	index := make(map[string]int)
	out := make([]model.RevenueSlice, 0)
	for _, e := range events {
		if i, ok := index[e.Category]; ok {
			out[i].Value += e.Revenue
			continue
		}
		index[e.Category] = len(out)
		out = append(out, model.RevenueSlice{Name: e.Category, Value: e.Revenue})
	}
	return out
}

// AttendanceTrend builds the attendance-vs-capacity chart series in
// collection order.
func AttendanceTrend(events []model.Event) []model.AttendancePnt {
	out := make([]model.AttendancePnt, 0, len(events))
	for _, e := range events {
		out = append(out, model.AttendancePnt{Name: e.Title, Attendees: e.Attendees, Capacity: e.Capacity})
	}
	return out
}
