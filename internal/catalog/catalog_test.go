package catalog

import (
	"testing"

	"github.com/eventsphere/eventsphere/internal/model"
)

func TestMerge_StoredOverridesDefaultInPlace(t *testing.T) {
	defaults := []model.Event{
		{ID: 1, Title: "Music Fest 2025", Capacity: 200, Attendees: 150, IsDefault: true},
		{ID: 2, Title: "Tech Summit", Capacity: 500, Attendees: 380, IsDefault: true},
	}
	stored := []model.Event{
		{ID: 1, Title: "Music Fest 2025", Capacity: 200, Attendees: 180},
	}

	merged := Merge(defaults, stored)

	if len(merged) != 2 {
		t.Fatalf("expected 2 events, got %d", len(merged))
	}
	if merged[0].ID != 1 || merged[0].Attendees != 180 {
		t.Errorf("stored record should replace default at position 0, got %+v", merged[0])
	}
	if merged[0].IsDefault {
		t.Error("overridden event must have IsDefault=false")
	}
	if merged[1].ID != 2 || !merged[1].IsDefault {
		t.Errorf("untouched default should keep its position and flag, got %+v", merged[1])
	}
}

func TestMerge_StoredOnlyAppendedInStoreOrder(t *testing.T) {
	defaults := []model.Event{
		{ID: 1, Title: "A", IsDefault: true},
	}
	stored := []model.Event{
		{ID: 7, Title: "Seventh"},
		{ID: 5, Title: "Fifth"},
	}

	merged := Merge(defaults, stored)

	if len(merged) != 3 {
		t.Fatalf("expected 3 events, got %d", len(merged))
	}
	if merged[1].ID != 7 || merged[2].ID != 5 {
		t.Errorf("stored-only events must append in store order, got %d then %d", merged[1].ID, merged[2].ID)
	}
	for _, e := range merged[1:] {
		if e.IsDefault {
			t.Errorf("stored event %d must not be flagged default", e.ID)
		}
	}
}

func TestMerge_IDUniqueness(t *testing.T) {
	merged := Merge(Defaults(), []model.Event{
		{ID: 1, Title: "override"},
		{ID: 3, Title: "another override"},
		{ID: 10, Title: "new"},
	})

	seen := make(map[int]bool)
	for _, e := range merged {
		if seen[e.ID] {
			t.Fatalf("duplicate id %d in merged collection", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestMerge_BothEmpty(t *testing.T) {
	if merged := Merge(nil, nil); len(merged) != 0 {
		t.Fatalf("expected empty merge, got %d events", len(merged))
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	defaults := []model.Event{{ID: 1, Title: "original", IsDefault: true}}
	stored := []model.Event{{ID: 1, Title: "edited", IsDefault: true}}

	Merge(defaults, stored)

	if defaults[0].Title != "original" {
		t.Error("defaults slice was mutated")
	}
	if !stored[0].IsDefault {
		t.Error("stored slice was mutated")
	}
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	a := Defaults()
	a[0].Title = "tampered"
	if b := Defaults(); b[0].Title == "tampered" {
		t.Error("Defaults must return an independent copy")
	}
}

func TestFind(t *testing.T) {
	events := Defaults()
	if _, ok := Find(events, 2); !ok {
		t.Error("expected to find id 2")
	}
	if _, ok := Find(events, 99); ok {
		t.Error("did not expect to find id 99")
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Errorf("empty collection: expected 1, got %d", got)
	}
	events := []model.Event{{ID: 3}, {ID: 10}, {ID: 7}}
	if got := NextID(events); got != 11 {
		t.Errorf("expected 11, got %d", got)
	}
}
