package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/model"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
)

func exportCmd() *cobra.Command {
	var (
		out      string
		search   string
		category string
		sortKey  string
		saved    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered leads to a CSV file",
		Long: `Write the qualified, filtered, sorted lead list to a CSV file for use in
a spreadsheet or CRM. Accepts the same filters as 'hardhat leads' and always
exports the full match set, not just the display window.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			leads, bookmarks, err := loadSession(ctx, store)
			if err != nil {
				return err
			}

			view := pipeline.Compute(leads, pipeline.ViewState{
				Search:     search,
				Category:   category,
				SortKey:    pipeline.SortKey(sortKey),
				MinValue:   minLeadValue(),
				WindowSize: len(leads),
				SavedOnly:  saved,
			}, bookmarks)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer func() { _ = f.Close() }()

			if err := writeLeadsCSV(f, view.Leads, bookmarks); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d leads to %s", view.Total, out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "leads.csv", "output file path")
	cmd.Flags().StringVarP(&search, "search", "s", "", "substring filter over type, description and street")
	cmd.Flags().StringVarP(&category, "category", "c", pipeline.CategoryAll, "work-type category token")
	cmd.Flags().StringVar(&sortKey, "sort", string(pipeline.SortByCost), "sort key: cost or date")
	cmd.Flags().BoolVar(&saved, "saved", false, "only bookmarked leads")

	return cmd
}

func writeLeadsCSV(f *os.File, leads []model.Lead, saved model.BookmarkSet) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"id", "reported_cost", "permit_type", "work_description",
		"street_number", "street_name", "contact_name", "contact_type",
		"issue_date", "status", "total_fee", "zip", "saved",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, lead := range leads {
		issued := ""
		if lead.HasIssueDate() {
			issued = lead.IssuedAt.Format("2006-01-02T15:04:05")
		}
		record := []string{
			lead.ID,
			strconv.FormatFloat(lead.Cost, 'f', -1, 64),
			lead.Category,
			lead.Description,
			lead.StreetNumber,
			lead.StreetName,
			lead.ContactName,
			lead.ContactType,
			issued,
			lead.Status,
			lead.TotalFee,
			lead.Zip,
			strconv.FormatBool(saved.Contains(lead.ID)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
