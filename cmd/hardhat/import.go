package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/ingest"
	"github.com/hardhatlabs/hardhat/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import permits from CSV export files",
		Long: `Import building permits from CSV files exported from the data portal.

The files together become the new snapshot, replacing whatever was imported
before. Bookmarks are keyed by permit id and survive re-imports.

Examples:
  # Import a single export
  hardhat import ~/Downloads/chicago_permits.csv

  # Combine several exports into one snapshot
  hardhat import exports/*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("👷 Importing permit exports...",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	var allLeads []model.Lead
	seen := make(map[string]bool) // For deduplication across files

	for _, file := range allFiles {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}

		rows, err := ingest.ReadCSV(f)
		_ = f.Close()
		if err != nil {
			// An unparsable file fails the whole import; a malformed
			// field within a row does not.
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		leads := ingest.Normalize(rows)
		added := 0
		for _, lead := range leads {
			if seen[lead.ID] {
				continue
			}
			seen[lead.ID] = true
			allLeads = append(allLeads, lead)
			added++
		}

		slog.Info("Parsed export",
			"file", filepath.Base(file),
			"rows", len(leads),
			"new", added)
	}

	if dryRun {
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Dry run: %d permits parsed, snapshot unchanged", len(allLeads))))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.ReplaceLeads(ctx, allLeads); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Imported %d permits from %d files", len(allLeads), len(allFiles))))
	return nil
}
