package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/common"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
)

func saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Bookmark a lead, or remove an existing bookmark",
		Long: `Toggle the bookmark on a lead: save it if it isn't saved, un-save it if
it is. The change is written to disk before the command returns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// Toggling an id that isn't in the snapshot is almost always a
			// typo; refuse rather than pollute the bookmark set.
			if _, err := store.GetLeadByID(ctx, id); err != nil {
				return err
			}

			saved, err := store.ToggleBookmark(ctx, id)
			if err != nil {
				return common.NewUserError("bookmark was not saved", err)
			}

			if saved {
				fmt.Println(cli.SuccessStyle.Render("★ Saved " + id))
			} else {
				fmt.Println(cli.InfoStyle.Render("Removed bookmark " + id))
			}
			return nil
		},
	}
}

func savedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List bookmarked leads",
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

			if len(bookmarks) == 0 {
				fmt.Println(cli.InfoStyle.Render("No saved leads yet. Use 'hardhat save <id>' to bookmark one."))
				return nil
			}

			// Bookmarks are independent of the qualification threshold: a
			// zero minimum shows saved leads even after the bar moves.
			view := pipeline.Compute(leads, pipeline.ViewState{
				SortKey:    pipeline.SortByCost,
				WindowSize: len(leads),
				SavedOnly:  true,
			}, bookmarks)

			cli.RenderLeads(os.Stdout, view.Visible, bookmarks, time.Now())
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d saved leads", view.Total)))

			if stale := len(bookmarks) - view.Total; stale > 0 {
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("%d bookmarks point at permits not in the current snapshot", stale)))
			}
			return nil
		},
	}
}
