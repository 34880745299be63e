package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/hardhatlabs/hardhat/internal/categories"
	"github.com/hardhatlabs/hardhat/internal/config"
	"github.com/hardhatlabs/hardhat/internal/model"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
	"github.com/hardhatlabs/hardhat/internal/service"
	"github.com/hardhatlabs/hardhat/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/hardhat/hardhat.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// minLeadValue returns the qualification threshold, preferring config over
// the built-in default.
func minLeadValue() float64 {
	if viper.IsSet("leads.min_value") {
		return viper.GetFloat64("leads.min_value")
	}
	return pipeline.DefaultMinLeadValue
}

// loadTaxonomy loads the category taxonomy, honoring a configured override
// file.
func loadTaxonomy() (categories.Taxonomy, error) {
	path := viper.GetString("leads.taxonomy_file")
	if path != "" {
		path = config.ExpandPath(path)
	}
	return categories.LoadFile(path)
}

// loadSession loads everything a read-only view command needs: the snapshot
// and the bookmark set. This is the one bulk load the session performs.
func loadSession(ctx context.Context, store service.Storage) ([]model.Lead, model.BookmarkSet, error) {
	leads, err := store.GetLeads(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load leads: %w", err)
	}

	saved, err := store.LoadBookmarks(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	return leads, saved, nil
}
