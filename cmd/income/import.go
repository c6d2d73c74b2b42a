package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/Veraticus/the-income-must-flow/internal/cli"
	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Submit incomes from a CSV file",
		Long: `Submit every row of a CSV file as if it had been entered on the Add Income screen.

The header row names the columns: date (required), category, description, total.
Dates may be YYYY-MM-DD or dd/MM/yyyy. Rows are sent one at a time and
failures are reported without stopping the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "parse the file and show what would be sent")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0]) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	forms, err := income.ReadCSV(f)
	if err != nil {
		return common.NewUserError("failed to read import file", err)
	}

	out := cmd.OutOrStdout()
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		printDryRun(out, forms)
		return nil
	}

	if len(forms) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("Nothing to import"))
		return nil
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	workflow, err := newWorkflow(store, nil)
	if err != nil {
		return err
	}

	result := importForms(cmd.Context(), out, workflow, forms)
	return result.err()
}

type importResult struct {
	total     int
	succeeded int
	failed    int
	canceled  bool
}

func (r importResult) err() error {
	if r.canceled {
		return fmt.Errorf("import interrupted after %d of %d incomes", r.succeeded+r.failed, r.total)
	}
	if r.failed > 0 {
		return fmt.Errorf("%d of %d incomes failed to import; see the log for details", r.failed, r.total)
	}
	return nil
}

// importForms submits forms one by one, continuing past failures.
func importForms(ctx context.Context, w io.Writer, workflow *income.Workflow, forms []income.Form) importResult {
	result := importResult{total: len(forms)}
	var done atomic.Int64

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handler := cli.NewInterruptHandler(w)
	ctx = handler.HandleInterrupts(ctx, func() string {
		return fmt.Sprintf("Submitted %d of %d incomes", done.Load(), len(forms))
	})

	bar := cli.NewProgressBar(w, len(forms), "Importing incomes")
	for i, form := range forms {
		if ctx.Err() != nil {
			result.canceled = true
			break
		}

		if _, err := workflow.Submit(ctx, form); err != nil {
			if errors.Is(err, context.Canceled) {
				result.canceled = true
				break
			}
			result.failed++
			slog.Error("Failed to import income", "row", i+1, "date", form.Payload().Date, "error", err)
		} else {
			result.succeeded++
		}
		done.Add(1)
		_ = bar.Add(1)
	}

	if !result.canceled {
		fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Imported %d of %d incomes", result.succeeded, result.total)))
	}
	return result
}

func printDryRun(w io.Writer, forms []income.Form) {
	for _, form := range forms {
		p := form.Payload()
		fmt.Fprintf(w, "%s  %s  %s  %s\n", p.Date, p.IncomeCategory, form.Total, p.Description)
	}
	fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("%d incomes would be submitted", len(forms))))
}
