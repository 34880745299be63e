package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List work-type categories and their lead counts",
		Long: `Display the work-type taxonomy with the number of qualified leads each
category currently matches. Any token here is valid for --category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tax, err := loadTaxonomy()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			leads, err := store.GetLeads(ctx)
			if err != nil {
				return err
			}

			minValue := minLeadValue()

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Token"),
				cli.HeaderStyle.Render("Leads"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 16),
				strings.Repeat("-", 6))

			for _, cat := range tax.Categories {
				count := 0
				for _, lead := range leads {
					if pipeline.Qualifies(lead, minValue) && pipeline.MatchesCategory(lead, cat.Token) {
						count++
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", cat.Name, cat.Token, count)
			}

			return nil
		},
	}
}
