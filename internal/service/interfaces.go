// Package service defines the interfaces between the application's layers.
package service

import (
	"context"
	"time"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// Storage defines the contract for the persistence layer: the imported lead
// snapshot plus the bookmark set.
type Storage interface {
	// Snapshot operations. A session works against exactly one snapshot;
	// importing replaces it wholesale.
	ReplaceLeads(ctx context.Context, leads []model.Lead) error
	GetLeads(ctx context.Context) ([]model.Lead, error)
	GetLeadByID(ctx context.Context, id string) (*model.Lead, error)
	CountLeads(ctx context.Context) (int, error)

	// Bookmark operations. Toggle persists before returning; a failed write
	// leaves both the stored and the in-memory set untouched.
	LoadBookmarks(ctx context.Context) (model.BookmarkSet, error)
	ToggleBookmark(ctx context.Context, id string) (bool, error)
	IsBookmarked(ctx context.Context, id string) (bool, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for transient operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
