// Package model defines the core domain types for the event management system.
package model

import (
	"strings"
	"time"
)

// Status classifies how full an event is.
type Status string

const (
	StatusOpen       Status = "open"
	StatusAlmostFull Status = "almost-full"
	StatusFull       Status = "full"
)

// almostFullRatio is the fill ratio at which an event is flagged almost-full.
const almostFullRatio = 0.8

// Event represents one entry of the merged catalog: either a built-in
// default event or an organizer-created record from the document store.
//
// SeatsLeft is a persisted cache carried over from older records. It is
// advisory only: whenever Capacity is known the value is recomputed from
// Capacity and Attendees, and the cache is consulted only as a fallback.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Attendees   int    `json:"attendees"`
	SeatsLeft   *int   `json:"seatsLeft,omitempty"`
	Revenue     int64  `json:"revenue"`
	IsDefault   bool   `json:"isDefault"`
	Status      Status `json:"status,omitempty"`
}

// Remaining returns the number of available seats, preferring recomputation
// from Capacity/Attendees over the persisted SeatsLeft cache.
func (e *Event) Remaining() int {
	if e.Capacity > 0 {
		return e.Capacity - e.Attendees
	}
	if e.SeatsLeft != nil {
		return *e.SeatsLeft
	}
	return 0
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.Capacity > 0 && e.Attendees >= e.Capacity
}

// FillStatus classifies the event by its fill ratio. Events with no
// capacity recorded are treated as open.
func (e *Event) FillStatus() Status {
	if e.Capacity <= 0 {
		return StatusOpen
	}
	ratio := float64(e.Attendees) / float64(e.Capacity)
	switch {
	case ratio >= 1.0:
		return StatusFull
	case ratio >= almostFullRatio:
		return StatusAlmostFull
	default:
		return StatusOpen
	}
}

// Registration represents a ticket purchase receipt for an event.
type Registration struct {
	ID        string    `json:"id"`
	EventID   int       `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Tickets   int       `json:"tickets"`
	CreatedAt time.Time `json:"created_at"`
}

// CurrentUser is the logged-in identity kept in the document store. The
// core never mutates it; it only gates organizer actions.
type CurrentUser struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// CanCreateEvents reports whether the user may create or manage events.
// Organizer accounts are identified by a .org email domain.
func (u *CurrentUser) CanCreateEvents() bool {
	if u == nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Email), ".org")
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// UpdateEventRequest is the payload for editing an event. Editing a default
// event produces a stored override; the default catalog itself never changes.
type UpdateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// RegisterRequest is the payload for registering tickets for an event.
type RegisterRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Tickets int    `json:"tickets"`
}

// SessionResponse reports the current user and what they may do.
type SessionResponse struct {
	User            *CurrentUser `json:"user"`
	CanCreateEvents bool         `json:"can_create_events"`
}

// DashboardStats summarises the organizer's stored events for the dashboard.
type DashboardStats struct {
	TotalEvents     int             `json:"total_events"`
	TotalAttendees  int             `json:"total_attendees"`
	TotalRevenue    int64           `json:"total_revenue"`
	Registrations   []ChartPoint    `json:"registrations_per_event"`
	RevenueByGroup  []RevenueSlice  `json:"revenue_by_category"`
	AttendanceTrend []AttendancePnt `json:"attendance_trend"`
}

// ChartPoint is one bar of the registrations-per-event chart.
type ChartPoint struct {
	Name          string `json:"name"`
	Registrations int    `json:"registrations"`
}

// RevenueSlice is one slice of the revenue-by-category chart.
type RevenueSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// AttendancePnt is one point of the attendance-vs-capacity trend chart.
type AttendancePnt struct {
	Name      string `json:"name"`
	Attendees int    `json:"attendees"`
	Capacity  int    `json:"capacity"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
