package storage

import (
	"context"
	"fmt"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// LoadBookmarks reads the persisted bookmark set. A database with no
// bookmarks yields an empty set, never an error.
func (s *SQLiteStorage) LoadBookmarks(ctx context.Context) (model.BookmarkSet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT lead_id FROM bookmarks")
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	set := make(model.BookmarkSet)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}

	return set, nil
}

// ToggleBookmark adds the id if absent, removes it if present, and returns
// whether the id is bookmarked afterwards. The change is committed before
// returning; on error the stored set is unchanged, so repeated identical
// toggles are exact inverses of each other.
func (s *SQLiteStorage) ToggleBookmark(ctx context.Context, id string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(id, "id"); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE lead_id = ?)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	if exists {
		_, err = tx.ExecContext(ctx, "DELETE FROM bookmarks WHERE lead_id = ?", id)
	} else {
		_, err = tx.ExecContext(ctx, "INSERT INTO bookmarks (lead_id) VALUES (?)", id)
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle bookmark %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bookmark toggle: %w", err)
	}

	return !exists, nil
}

// IsBookmarked reports whether the given lead id is in the persisted set.
func (s *SQLiteStorage) IsBookmarked(ctx context.Context, id string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(id, "id"); err != nil {
		return false, err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE lead_id = ?)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}
