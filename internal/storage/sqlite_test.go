package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// Helper function to create test leads.
func createTestLeads(count int) []model.Lead {
	leads := make([]model.Lead, count)
	baseTime := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		leads[i] = model.Lead{
			ID:           fmt.Sprintf("lead-%d", i+1),
			Cost:         float64(i+1) * 10000,
			Category:     "PERMIT - ELECTRICAL",
			Description:  fmt.Sprintf("rewire unit %d", i+1),
			StreetNumber: fmt.Sprintf("%d", 100+i),
			StreetName:   "N STATE ST",
			IssuedAt:     baseTime.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return leads
}

func TestNewSQLiteStorage(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "valid path",
			dbPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "hardhat.db")
			},
		},
		{
			name: "creates missing parent directory",
			dbPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nested", "dir", "hardhat.db")
			},
		},
		{
			name:    "empty path",
			dbPath:  func(_ *testing.T) string { return "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewSQLiteStorage(tt.dbPath(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSQLiteStorage error = %v, wantErr %v", err, tt.wantErr)
			}
			if store != nil {
				_ = store.Close()
			}
		})
	}
}

func TestMigrate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Migrating an up-to-date database is a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	var version int
	if err := store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, ExpectedSchemaVersion)
	}
}
