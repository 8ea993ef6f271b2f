package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eventsphere/eventsphere/internal/model"
)

// TicketPrice is the flat per-ticket price accrued as revenue, in the
// smallest currency unit.
const TicketPrice = 100

// attendeeEmailPattern restricts registration to the gmail domain family.
var attendeeEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.(com|in|org)$`)

// AttendeeEmailAllowed reports whether the email passes the registration
// domain policy. Matching is case-insensitive.
func AttendeeEmailAllowed(email string) bool {
	return attendeeEmailPattern.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// Register validates and applies a ticket registration against the stored
// collection. It returns a new collection with the matching event updated
// and the updated event itself. Validation runs in a fixed order and the
// first failure wins; on any failure the input collection is untouched and
// no partial update is produced.
//
// Only stored events are registrable: default catalog entries that have
// never been overridden are invisible here and yield ErrNotFound.
func Register(stored []model.Event, id, tickets int, email string) ([]model.Event, model.Event, error) {
	idx := -1
	for i, e := range stored {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.Event{}, ErrNotFound
	}

	if tickets <= 0 {
		return nil, model.Event{}, fmt.Errorf("%w: tickets must be a positive integer", ErrInvalidInput)
	}

	ev := stored[idx]
	if left := ev.Remaining(); tickets > left {
		return nil, model.Event{}, fmt.Errorf("%w: %d requested, %d left", ErrCapacityExceeded, tickets, left)
	}

	if !AttendeeEmailAllowed(email) {
		return nil, model.Event{}, fmt.Errorf("%w: a gmail.com, gmail.in or gmail.org address is required", ErrIdentityRejected)
	}

	ev.Attendees += tickets
	// Recompute rather than decrement so a stale persisted cache cannot drift.
	left := ev.Capacity - ev.Attendees
	ev.SeatsLeft = &left
	ev.Revenue += int64(tickets) * TicketPrice
	ev.Status = ev.FillStatus()

	out := make([]model.Event, len(stored))
	copy(out, stored)
	out[idx] = ev
	return out, ev, nil
}
