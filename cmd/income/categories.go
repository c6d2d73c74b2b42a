package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/the-income-must-flow/internal/cli"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List income categories",
		Long:  `Show the income categories and the keys accepted by --category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\n",
				cli.TableHeaderStyle.Render("Key"),
				cli.TableHeaderStyle.Render("Category"))
			for _, c := range model.IncomeCategories() {
				marker := ""
				if c.Value == model.DefaultIncomeCategory {
					marker = cli.SubtleStyle.Render(" (default)")
				}
				fmt.Fprintf(tw, "%s\t%s%s\n", c.Key, c.Value, marker)
			}
			return tw.Flush()
		},
	}
}
