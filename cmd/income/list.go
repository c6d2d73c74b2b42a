package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Veraticus/the-income-must-flow/internal/cli"
	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved incomes",
		Long:  `Show incomes recorded in the local store, newest first, with per-category totals.`,
		RunE:  runList,
	}

	cmd.Flags().String("category", "", "only show this category (key or name)")
	cmd.Flags().String("from", "", "start date, inclusive (YYYY-MM-DD or dd/MM/yyyy)")
	cmd.Flags().String("to", "", "end date, inclusive (YYYY-MM-DD or dd/MM/yyyy)")
	cmd.Flags().Int("limit", 50, "maximum number of incomes to show (0 for all)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.ListIncomes(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list incomes: %w", err)
	}

	summary, err := store.GetIncomeSummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize incomes: %w", err)
	}

	printIncomes(cmd.OutOrStdout(), records, summary)
	return nil
}

func filterFromFlags(cmd *cobra.Command) (service.IncomeFilter, error) {
	var filter service.IncomeFilter

	if v, _ := cmd.Flags().GetString("category"); v != "" {
		filter.Category = model.ResolveIncomeCategory(v)
	}
	for _, bound := range []struct {
		flag string
		dst  *string
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		v, _ := cmd.Flags().GetString(bound.flag)
		if v == "" {
			continue
		}
		date, err := income.ParseDate(v)
		if err != nil {
			return service.IncomeFilter{}, fmt.Errorf("invalid --%s: %w", bound.flag, err)
		}
		*bound.dst = date.Format(model.DateLayout)
	}
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	return filter, nil
}

func printIncomes(w io.Writer, records []model.IncomeRecord, summary []service.CategoryTotal) {
	if len(records) == 0 {
		fmt.Fprintln(w, cli.InfoStyle.Render("No income recorded yet. Use 'income add' to record one."))
		return
	}

	fmt.Fprintln(w, cli.FormatTitle(cli.MoneyIcon+" Income"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Total"),
		cli.TableHeaderStyle.Render("Description"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", listDate(r.Date), r.IncomeCategory, r.Total.StringFixed(2), r.Description)
	}
	_ = tw.Flush()

	if len(summary) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range summary {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Category, s.Total.StringFixed(2),
			cli.SubtleStyle.Render("("+strconv.Itoa(s.Count)+")"))
	}
	_ = tw.Flush()
}

// listDate shows a stored YYYY-MM-DD date as dd/MM/yyyy, leaving other text alone.
func listDate(date string) string {
	d, err := income.ParseDate(date)
	if err != nil {
		return date
	}
	return income.DisplayDate(d)
}
