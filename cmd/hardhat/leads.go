package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
)

func leadsCmd() *cobra.Command {
	var (
		search   string
		category string
		sortKey  string
		limit    int
		saved    bool
	)

	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List qualified leads from the current snapshot",
		Long: `List the high-value leads in the current snapshot, filtered, sorted and
truncated to a display window.

Search is a plain substring match over permit type, work description and
street name. Category accepts any taxonomy token (see 'hardhat categories').

Examples:
  # Top leads by reported cost
  hardhat leads

  # Recent electrical work mentioning "service"
  hardhat leads --category ELECTRIC --search service --sort date

  # Only bookmarked leads
  hardhat leads --saved`,
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

			if len(leads) == 0 {
				fmt.Println(cli.InfoStyle.Render("No snapshot loaded. Run 'hardhat fetch' or 'hardhat import' first."))
				return nil
			}

			view := pipeline.Compute(leads, pipeline.ViewState{
				Search:     search,
				Category:   category,
				SortKey:    pipeline.SortKey(sortKey),
				MinValue:   minLeadValue(),
				WindowSize: limit,
				SavedOnly:  saved,
			}, bookmarks)

			if view.Total == 0 {
				fmt.Println(cli.InfoStyle.Render("No leads match."))
				return nil
			}

			cli.RenderLeads(os.Stdout, view.Visible, bookmarks, time.Now())
			if len(view.Visible) < view.Total {
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("Showing %d of %d matching leads (use --limit to see more)",
						len(view.Visible), view.Total)))
			} else {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d matching leads", view.Total)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "substring filter over type, description and street")
	cmd.Flags().StringVarP(&category, "category", "c", pipeline.CategoryAll, "work-type category token")
	cmd.Flags().StringVar(&sortKey, "sort", string(pipeline.SortByCost), "sort key: cost or date")
	cmd.Flags().IntVarP(&limit, "limit", "n", pipeline.DefaultWindowSize, "number of leads to show")
	cmd.Flags().BoolVar(&saved, "saved", false, "only bookmarked leads")

	return cmd
}
