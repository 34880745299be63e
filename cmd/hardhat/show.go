package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full record for one lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			lead, err := store.GetLeadByID(ctx, args[0])
			if err != nil {
				return err
			}

			saved, err := store.IsBookmarked(ctx, lead.ID)
			if err != nil {
				return err
			}

			cli.RenderLeadDetail(os.Stdout, *lead, saved, time.Now())
			return nil
		},
	}
}
