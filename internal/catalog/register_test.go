package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/eventsphere/eventsphere/internal/model"
)

const allowedEmail = "attendee@gmail.com"

func storedFixture() []model.Event {
	return []model.Event{
		{ID: 1, Title: "Music Fest 2025", Capacity: 200, Attendees: 180, Revenue: 400},
		{ID: 2, Title: "Workshop", Capacity: 10, Attendees: 0},
	}
}

func TestRegister_Success(t *testing.T) {
	next, applied, err := Register(storedFixture(), 1, 5, allowedEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if applied.Attendees != 185 {
		t.Errorf("expected 185 attendees, got %d", applied.Attendees)
	}
	if applied.SeatsLeft == nil || *applied.SeatsLeft != 15 {
		t.Errorf("expected 15 seats left, got %v", applied.SeatsLeft)
	}
	if applied.Revenue != 400+5*TicketPrice {
		t.Errorf("expected revenue %d, got %d", 400+5*TicketPrice, applied.Revenue)
	}
	if next[0].Attendees != 185 {
		t.Errorf("collection not updated: %+v", next[0])
	}
	if next[1].Attendees != 0 {
		t.Errorf("unrelated event touched: %+v", next[1])
	}
}

func TestRegister_NotFound(t *testing.T) {
	_, _, err := Register(storedFixture(), 99, 1, allowedEmail)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegister_InvalidTicketCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, _, err := Register(storedFixture(), 1, n, allowedEmail)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("tickets=%d: expected ErrInvalidInput, got %v", n, err)
		}
	}
}

func TestRegister_CapacityBoundary(t *testing.T) {
	// Registering exactly the seats left succeeds and fills the event.
	next, applied, err := Register(storedFixture(), 1, 20, allowedEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *applied.SeatsLeft != 0 || applied.Status != model.StatusFull {
		t.Errorf("expected full event, got seatsLeft=%d status=%q", *applied.SeatsLeft, applied.Status)
	}

	// One more ticket must be rejected with no change.
	_, _, err = Register(next, 1, 1, allowedEmail)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if next[0].Attendees != 200 {
		t.Errorf("failed registration mutated the collection: %+v", next[0])
	}
}

func TestRegister_OneOverSeatsLeft(t *testing.T) {
	_, _, err := Register(storedFixture(), 1, 21, allowedEmail)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestRegister_IdentityRejected(t *testing.T) {
	for _, email := range []string{"", "someone@yahoo.com", "someone@gmail.net", "gmail.com"} {
		_, _, err := Register(storedFixture(), 1, 1, email)
		if !errors.Is(err, ErrIdentityRejected) {
			t.Errorf("email=%q: expected ErrIdentityRejected, got %v", email, err)
		}
	}
}

func TestRegister_GmailDomainFamily(t *testing.T) {
	for _, email := range []string{"a@gmail.com", "b.c@gmail.in", "D_E@GMAIL.ORG"} {
		if !AttendeeEmailAllowed(email) {
			t.Errorf("email %q should be allowed", email)
		}
	}
}

// Validation order is fixed: an unknown id wins over a bad ticket count,
// and a capacity failure wins over a bad email.
func TestRegister_ValidationOrder(t *testing.T) {
	_, _, err := Register(storedFixture(), 99, 0, "bad-email")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound first, got %v", err)
	}

	_, _, err = Register(storedFixture(), 1, 0, "bad-email")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput second, got %v", err)
	}

	_, _, err = Register(storedFixture(), 1, 500, "bad-email")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded third, got %v", err)
	}
}

// A rejected registration of any kind must leave the input collection
// byte-for-byte identical.
func TestRegister_FailureLeavesInputUntouched(t *testing.T) {
	stored := storedFixture()
	before, _ := json.Marshal(stored)

	cases := []struct {
		id      int
		tickets int
		email   string
	}{
		{99, 1, allowedEmail},
		{1, 0, allowedEmail},
		{1, 1000, allowedEmail},
		{1, 1, "nope@example.com"},
	}
	for _, c := range cases {
		if _, _, err := Register(stored, c.id, c.tickets, c.email); err == nil {
			t.Fatalf("case %+v: expected failure", c)
		}
	}

	after, _ := json.Marshal(stored)
	if string(before) != string(after) {
		t.Fatalf("input mutated by failed registrations:\nbefore %s\nafter  %s", before, after)
	}
}

func TestRegister_StaleSeatsLeftCacheIgnored(t *testing.T) {
	stale := 1 // disagrees with capacity-attendees = 20
	stored := []model.Event{
		{ID: 1, Capacity: 200, Attendees: 180, SeatsLeft: &stale},
	}

	_, applied, err := Register(stored, 1, 10, allowedEmail)
	if err != nil {
		t.Fatalf("fresh capacity/attendees should win over stale cache: %v", err)
	}
	if *applied.SeatsLeft != 10 {
		t.Errorf("expected recomputed seatsLeft 10, got %d", *applied.SeatsLeft)
	}
}
