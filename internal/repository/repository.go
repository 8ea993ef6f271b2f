// Package repository implements persistence for events, registrations, and
// the current user over the whole-document store. Malformed persisted JSON
// is absorbed here: a document that fails to decode degrades to an empty
// collection (or absent user) instead of surfacing an error.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eventsphere/eventsphere/internal/model"
	"github.com/eventsphere/eventsphere/internal/store"
)

// EventRepository handles persistence for the stored event collection and
// registration receipts.
type EventRepository struct {
	kv store.KV
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(kv store.KV) *EventRepository {
	return &EventRepository{kv: kv}
}

// LoadEvents returns the stored event collection in store order. An absent
// or undecodable document yields an empty collection, never an error from
// decoding; only store I/O failures propagate.
func (r *EventRepository) LoadEvents(ctx context.Context) ([]model.Event, error) {
	doc, err := r.kv.Read(ctx, store.KeyEvents)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(doc) == 0 {
		return []model.Event{}, nil
	}
	var events []model.Event
	if err := json.Unmarshal(doc, &events); err != nil {
		return []model.Event{}, nil
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

// SaveEvents rewrites the whole stored collection in one write.
func (r *EventRepository) SaveEvents(ctx context.Context, events []model.Event) error {
	if events == nil {
		events = []model.Event{}
	}
	doc, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyEvents, doc); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}

// LoadRegistrations returns all registration receipts, tolerating malformed
// documents the same way LoadEvents does.
func (r *EventRepository) LoadRegistrations(ctx context.Context) ([]model.Registration, error) {
	doc, err := r.kv.Read(ctx, store.KeyRegistrations)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}
	if len(doc) == 0 {
		return []model.Registration{}, nil
	}
	var regs []model.Registration
	if err := json.Unmarshal(doc, &regs); err != nil {
		return []model.Registration{}, nil
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	return regs, nil
}

// AppendRegistration adds one receipt and rewrites the receipts document.
func (r *EventRepository) AppendRegistration(ctx context.Context, reg model.Registration) error {
	regs, err := r.LoadRegistrations(ctx)
	if err != nil {
		return err
	}
	regs = append(regs, reg)
	doc, err := json.Marshal(regs)
	if err != nil {
		return fmt.Errorf("encode registrations: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyRegistrations, doc); err != nil {
		return fmt.Errorf("save registrations: %w", err)
	}
	return nil
}

// UserRepository handles persistence for the current-user document.
type UserRepository struct {
	kv store.KV
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(kv store.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

// LoadCurrentUser returns the logged-in user, or nil when the document is
// absent, null, or undecodable.
func (r *UserRepository) LoadCurrentUser(ctx context.Context) (*model.CurrentUser, error) {
	doc, err := r.kv.Read(ctx, store.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	if len(doc) == 0 {
		return nil, nil
	}
	var user *model.CurrentUser
	if err := json.Unmarshal(doc, &user); err != nil {
		return nil, nil
	}
	return user, nil
}

// SaveCurrentUser replaces the current-user document.
func (r *UserRepository) SaveCurrentUser(ctx context.Context, user model.CurrentUser) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyCurrentUser, doc); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}
