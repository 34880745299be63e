package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse leads interactively",
		Long: `Open an interactive browser over the current snapshot: incremental
search, category cycling, sort toggling, bookmarking and load-more paging,
all without leaving the terminal.`,
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

			tax, err := loadTaxonomy()
			if err != nil {
				return err
			}

			m := tui.NewModel(store, leads, bookmarks, tax, minLeadValue())
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}
}
