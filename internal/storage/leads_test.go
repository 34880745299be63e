package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hardhatlabs/hardhat/internal/common"
	"github.com/hardhatlabs/hardhat/internal/model"
)

func TestReplaceLeads_RoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	leads := createTestLeads(5)

	if err := store.ReplaceLeads(ctx, leads); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	got, err := store.GetLeads(ctx)
	if err != nil {
		t.Fatalf("GetLeads failed: %v", err)
	}
	if len(got) != len(leads) {
		t.Fatalf("GetLeads returned %d leads, want %d", len(got), len(leads))
	}

	// Import order must survive the round trip; it is the stable-sort
	// tie-breaker.
	for i := range leads {
		if got[i].ID != leads[i].ID {
			t.Errorf("leads[%d].ID = %q, want %q", i, got[i].ID, leads[i].ID)
		}
		if got[i].Cost != leads[i].Cost {
			t.Errorf("leads[%d].Cost = %v, want %v", i, got[i].Cost, leads[i].Cost)
		}
		if !got[i].IssuedAt.Equal(leads[i].IssuedAt) {
			t.Errorf("leads[%d].IssuedAt = %v, want %v", i, got[i].IssuedAt, leads[i].IssuedAt)
		}
	}
}

func TestReplaceLeads_ReplacesWholesale(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.ReplaceLeads(ctx, createTestLeads(5)); err != nil {
		t.Fatalf("first ReplaceLeads failed: %v", err)
	}
	if err := store.ReplaceLeads(ctx, createTestLeads(2)); err != nil {
		t.Fatalf("second ReplaceLeads failed: %v", err)
	}

	count, err := store.CountLeads(ctx)
	if err != nil {
		t.Fatalf("CountLeads failed: %v", err)
	}
	if count != 2 {
		t.Errorf("CountLeads = %d, want 2 (old snapshot must be gone)", count)
	}
}

func TestReplaceLeads_EmptySnapshot(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.ReplaceLeads(ctx, createTestLeads(3)); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	// An empty source is a valid zero-row snapshot, not an error.
	if err := store.ReplaceLeads(ctx, []model.Lead{}); err != nil {
		t.Fatalf("ReplaceLeads with empty snapshot failed: %v", err)
	}

	got, err := store.GetLeads(ctx)
	if err != nil {
		t.Fatalf("GetLeads failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetLeads returned %d leads, want 0", len(got))
	}
}

func TestReplaceLeads_RejectsMissingID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.ReplaceLeads(context.Background(), []model.Lead{{Cost: 100}})
	if !errors.Is(err, ErrInvalidLead) {
		t.Errorf("ReplaceLeads error = %v, want ErrInvalidLead", err)
	}
}

func TestReplaceLeads_InvalidDateStoredAsNull(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	leads := []model.Lead{
		{ID: "no-date", Cost: 60000},
		{ID: "dated", Cost: 70000, IssuedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	if err := store.ReplaceLeads(ctx, leads); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	got, err := store.GetLeads(ctx)
	if err != nil {
		t.Fatalf("GetLeads failed: %v", err)
	}

	if !got[0].IssuedAt.IsZero() {
		t.Errorf("invalid date came back as %v, want zero time", got[0].IssuedAt)
	}
	if got[1].IssuedAt.IsZero() {
		t.Error("valid date came back as zero time")
	}
}

func TestGetLeadByID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.ReplaceLeads(ctx, createTestLeads(3)); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	lead, err := store.GetLeadByID(ctx, "lead-2")
	if err != nil {
		t.Fatalf("GetLeadByID failed: %v", err)
	}
	if lead.ID != "lead-2" || lead.Cost != 20000 {
		t.Errorf("GetLeadByID returned %+v", lead)
	}

	_, err = store.GetLeadByID(ctx, "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetLeadByID(missing) error = %v, want ErrNotFound", err)
	}
}
