package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/cli"
	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income",
		Long: `Open the Add Income screen, or submit directly when any field flag is given.

Examples:
  income add
  income add --category 2 --description "side gig" --total 150.75
  income add --date 05/03/2024 --total 3000 --no-tui`,
		RunE: runAdd,
	}

	cmd.Flags().String("date", "", "income date, YYYY-MM-DD or dd/MM/yyyy (default: today)")
	cmd.Flags().String("category", "", "category key or name (default: Salary)")
	cmd.Flags().String("description", "", "optional description")
	cmd.Flags().String("total", "", "amount received")
	cmd.Flags().Bool("no-tui", false, "submit without opening the interactive screen")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	noTUI, _ := flags.GetBool("no-tui")
	if !noTUI && !anyChanged(flags, "date", "category", "description", "total") {
		return runTUI(ctx, tui.ScreenAddIncome)
	}

	form, err := formFromFlags(flags, time.Now())
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	workflow, err := newWorkflow(store, cli.NewNotifier(out))
	if err != nil {
		return err
	}

	return submitForm(ctx, out, workflow, form)
}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

// formFromFlags fills a form the same way the screen would, starting from its defaults.
func formFromFlags(flags *pflag.FlagSet, now time.Time) (income.Form, error) {
	form := income.NewForm(now)

	if v, _ := flags.GetString("date"); v != "" {
		date, err := income.ParseDate(v)
		if err != nil {
			return income.Form{}, common.NewUserError("invalid --date", err)
		}
		form.Date = date
	}
	if v, _ := flags.GetString("category"); v != "" {
		form.SelectCategory(v)
	}
	form.Description, _ = flags.GetString("description")
	form.Total, _ = flags.GetString("total")

	return form, nil
}

func submitForm(ctx context.Context, w io.Writer, workflow *income.Workflow, form income.Form) error {
	if _, err := workflow.Submit(ctx, form); err != nil {
		return common.NewUserError("failed to add income", err)
	}

	payload := form.Payload()
	fmt.Fprintf(w, "%s %s  %s  %s  %s\n",
		cli.MoneyIcon,
		form.DisplayDate(),
		payload.IncomeCategory,
		form.Total,
		cli.SubtleStyle.Render(payload.Description))
	return nil
}
