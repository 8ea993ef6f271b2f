// Package catalog implements the event inventory core: merging the built-in
// default catalog with stored events, deriving seat availability, filtering,
// aggregation, and the ticket registration transaction. Every function is
// pure: inputs are never mutated and no I/O happens here.
package catalog

import "github.com/eventsphere/eventsphere/internal/model"

// defaultEvents is the static catalog compiled into the binary. Entries are
// never mutated in place; editing one of these ids writes a stored override
// that shadows it on every merge.
var defaultEvents = []model.Event{
	{
		ID:          1,
		Title:       "Music Fest 2025",
		Date:        "2025-10-20",
		Location:    "Mumbai",
		Category:    "Music",
		Capacity:    200,
		Attendees:   150,
		Revenue:     400,
		Description: "Groove with top artists and DJs at Mumbai's biggest music night.",
		IsDefault:   true,
	},
	{
		ID:          2,
		Title:       "FutureStack Tech Summit",
		Date:        "2025-11-05",
		Location:    "Bengaluru",
		Category:    "Technology",
		Capacity:    500,
		Attendees:   380,
		Revenue:     1200,
		Description: "India's premier conference on AI, ML, and Cloud infrastructure with global speakers.",
		IsDefault:   true,
	},
	{
		ID:          3,
		Title:       "The Great Indian Food Carnival",
		Date:        "2025-12-15",
		Location:    "Delhi",
		Category:    "Food",
		Capacity:    1000,
		Attendees:   920,
		Revenue:     850,
		Description: "A culinary journey featuring authentic Indian street food and gourmet dishes from various states.",
		IsDefault:   true,
	},
}

// Defaults returns a copy of the built-in default catalog.
func Defaults() []model.Event {
	out := make([]model.Event, len(defaultEvents))
	copy(out, defaultEvents)
	return out
}

// Merge combines the default catalog with the stored collection into one
// authoritative ordered sequence. A stored record sharing an id with a
// default one replaces it at the default's position with IsDefault forced
// false; stored-only records are appended in store order. No id appears
// twice in the result.
func Merge(defaults, stored []model.Event) []model.Event {
	merged := make([]model.Event, len(defaults))
	copy(merged, defaults)

	byID := make(map[int]int, len(merged))
	for i, e := range merged {
		byID[e.ID] = i
	}

	for _, s := range stored {
		s.IsDefault = false
		if i, ok := byID[s.ID]; ok {
			merged[i] = s
			continue
		}
		byID[s.ID] = len(merged)
		merged = append(merged, s)
	}
	return merged
}

// Find returns the event with the given id from the collection.
func Find(events []model.Event, id int) (model.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// NextID returns the next free event id: one past the highest id in the
// collection, starting at 1 for an empty collection.
func NextID(events []model.Event) int {
	max := 0
	for _, e := range events {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
