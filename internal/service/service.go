// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventsphere/eventsphere/internal/catalog"
	"github.com/eventsphere/eventsphere/internal/model"
	"github.com/eventsphere/eventsphere/internal/repository"
	"github.com/google/uuid"
)

// EventService orchestrates catalog, registration, and session operations.
type EventService struct {
	events *repository.EventRepository
	users  *repository.UserRepository
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(
	events *repository.EventRepository,
	users *repository.UserRepository,
) *EventService {
	return &EventService{events: events, users: users}
}

// ListEvents returns the merged, derived collection, optionally filtered.
func (s *EventService) ListEvents(ctx context.Context, f catalog.Filter) ([]model.Event, error) {
	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}
	merged := catalog.Annotate(catalog.Merge(catalog.Defaults(), stored))
	if f.IsZero() {
		return merged, nil
	}
	return f.Apply(merged), nil
}

// GetEvent returns a single merged event with derived fields.
func (s *EventService) GetEvent(ctx context.Context, id int) (model.Event, error) {
	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return model.Event{}, err
	}
	merged := catalog.Merge(catalog.Defaults(), stored)
	ev, ok := catalog.Find(merged, id)
	if !ok {
		return model.Event{}, catalog.ErrNotFound
	}
	return catalog.Derive(ev), nil
}

// CreateEvent validates the request, assigns the next free id, and appends
// the event to the stored collection. Only organizer accounts may create.
func (s *EventService) CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	if err := s.requireOrganizer(ctx); err != nil {
		return model.Event{}, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return model.Event{}, fmt.Errorf("%w: event title is required", catalog.ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return model.Event{}, fmt.Errorf("%w: capacity must be a positive integer", catalog.ErrInvalidInput)
	}
	if req.Capacity > 100_000 {
		return model.Event{}, fmt.Errorf("%w: capacity cannot exceed 100,000", catalog.ErrInvalidInput)
	}

	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return model.Event{}, err
	}
	merged := catalog.Merge(catalog.Defaults(), stored)

	ev := model.Event{
		ID:          catalog.NextID(merged),
		Title:       req.Title,
		Date:        strings.TrimSpace(req.Date),
		Location:    strings.TrimSpace(req.Location),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Capacity:    req.Capacity,
	}

	if err := s.events.SaveEvents(ctx, append(stored, ev)); err != nil {
		return model.Event{}, err
	}
	return catalog.Derive(ev), nil
}

// UpdateEvent writes a stored record for the id, overriding a default event
// of the same id on every future merge. Attendees and revenue carry over
// from the current merged record; edits never reset seat consumption.
func (s *EventService) UpdateEvent(ctx context.Context, id int, req model.UpdateEventRequest) (model.Event, error) {
	if err := s.requireOrganizer(ctx); err != nil {
		return model.Event{}, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return model.Event{}, fmt.Errorf("%w: event title is required", catalog.ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return model.Event{}, fmt.Errorf("%w: capacity must be a positive integer", catalog.ErrInvalidInput)
	}

	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return model.Event{}, err
	}
	merged := catalog.Merge(catalog.Defaults(), stored)
	current, ok := catalog.Find(merged, id)
	if !ok {
		return model.Event{}, catalog.ErrNotFound
	}
	if req.Capacity < current.Attendees {
		return model.Event{}, fmt.Errorf("%w: capacity cannot drop below %d registered attendees",
			catalog.ErrInvalidInput, current.Attendees)
	}

	ev := model.Event{
		ID:          id,
		Title:       req.Title,
		Date:        strings.TrimSpace(req.Date),
		Location:    strings.TrimSpace(req.Location),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Capacity:    req.Capacity,
		Attendees:   current.Attendees,
		Revenue:     current.Revenue,
	}

	replaced := false
	next := make([]model.Event, 0, len(stored)+1)
	for _, e := range stored {
		if e.ID == id {
			next = append(next, ev)
			replaced = true
			continue
		}
		next = append(next, e)
	}
	if !replaced {
		next = append(next, ev)
	}

	if err := s.events.SaveEvents(ctx, next); err != nil {
		return model.Event{}, err
	}
	return catalog.Derive(ev), nil
}

// DeleteEvent rewrites the stored collection without the id. Default
// catalog entries are not stored records and cannot be deleted.
func (s *EventService) DeleteEvent(ctx context.Context, id int) error {
	if err := s.requireOrganizer(ctx); err != nil {
		return err
	}

	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return err
	}
	next := make([]model.Event, 0, len(stored))
	found := false
	for _, e := range stored {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	if !found {
		return catalog.ErrNotFound
	}
	return s.events.SaveEvents(ctx, next)
}

// Register applies a ticket registration transaction: the stored collection
// is read, validated, updated, and rewritten in a single write. A failed
// validation leaves the store untouched.
func (s *EventService) Register(ctx context.Context, id int, req model.RegisterRequest) (model.Event, model.Registration, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return model.Event{}, model.Registration{}, err
	}

	next, applied, err := catalog.Register(stored, id, req.Tickets, req.Email)
	if err != nil {
		return model.Event{}, model.Registration{}, err
	}

	if err := s.events.SaveEvents(ctx, next); err != nil {
		return model.Event{}, model.Registration{}, err
	}

	reg := model.Registration{
		ID:        uuid.New().String(),
		EventID:   id,
		Name:      req.Name,
		Email:     req.Email,
		Tickets:   req.Tickets,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.events.AppendRegistration(ctx, reg); err != nil {
		return model.Event{}, model.Registration{}, err
	}

	return applied, reg, nil
}

// ListRegistrations returns all receipts for one event in creation order.
func (s *EventService) ListRegistrations(ctx context.Context, eventID int) ([]model.Registration, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	regs, err := s.events.LoadRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Registration, 0, len(regs))
	for _, reg := range regs {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

// Dashboard summarises the organizer's stored events: totals plus the chart
// series rendered by the dashboard.
func (s *EventService) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	stored, err := s.events.LoadEvents(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	totals := catalog.Aggregate(stored)
	return model.DashboardStats{
		TotalEvents:     totals.Events,
		TotalAttendees:  totals.Attendees,
		TotalRevenue:    totals.Revenue,
		Registrations:   catalog.RegistrationsPerEvent(stored),
		RevenueByGroup:  catalog.RevenueByCategory(stored),
		AttendanceTrend: catalog.AttendanceTrend(stored),
	}, nil
}

// Session returns the current user and whether they may create events.
func (s *EventService) Session(ctx context.Context) (model.SessionResponse, error) {
	user, err := s.users.LoadCurrentUser(ctx)
	if err != nil {
		return model.SessionResponse{}, err
	}
	return model.SessionResponse{
		User:            user,
		CanCreateEvents: user.CanCreateEvents(),
	}, nil
}

// SetSession replaces the current-user document.
func (s *EventService) SetSession(ctx context.Context, user model.CurrentUser) (model.SessionResponse, error) {
	user.Email = strings.TrimSpace(user.Email)
	user.Name = strings.TrimSpace(user.Name)
	if user.Email == "" {
		return model.SessionResponse{}, fmt.Errorf("%w: email is required", catalog.ErrInvalidInput)
	}
	if err := s.users.SaveCurrentUser(ctx, user); err != nil {
		return model.SessionResponse{}, err
	}
	return model.SessionResponse{
		User:            &user,
		CanCreateEvents: user.CanCreateEvents(),
	}, nil
}

// requireOrganizer gates event management behind a .org account.
func (s *EventService) requireOrganizer(ctx context.Context) error {
	user, err := s.users.LoadCurrentUser(ctx)
	if err != nil {
		return err
	}
	if !user.CanCreateEvents() {
		return fmt.Errorf("%w: a .org account is required to manage events", catalog.ErrIdentityRejected)
	}
	return nil
}
