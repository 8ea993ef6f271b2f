package catalog

import (
	"strings"

	"github.com/eventsphere/eventsphere/internal/model"
)

// Filter is a conjunctive query over the merged collection. Empty criteria
// match everything.
type Filter struct {
	Text     string // case-insensitive substring match against the title
	Category string // exact match
	Location string // case-insensitive substring match
	Date     string // exact match against the calendar date string
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Text == "" && f.Category == "" && f.Location == "" && f.Date == ""
}

// Matches reports whether the event satisfies every provided criterion.
func (f Filter) Matches(e model.Event) bool {
	if t := strings.TrimSpace(f.Text); t != "" {
		if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(t)) {
			return false
		}
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		if !strings.Contains(strings.ToLower(e.Location), strings.ToLower(l)) {
			return false
		}
	}
	if f.Date != "" && e.Date != f.Date {
		return false
	}
	return true
}

// Apply returns the ordered subsequence of events matching the filter. The
// source collection is never mutated; an empty result is a valid outcome.
func (f Filter) Apply(events []model.Event) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
