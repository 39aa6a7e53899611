package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/internal/parquet"
	"github.com/northstarwang/burnlens/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintBurndownSummary outputs the burndown summary metrics, dispatching based
// on the output format configured.
func PrintBurndownSummary(summary schema.BurndownSummary, b *schema.SprintBurndown, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtPercent := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForBurndown(summary, b, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForBurndown(summary, b, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		if err := parquet.WriteBurndownPointsParquet(b, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote parquet burndown points to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		if err := printBurndownTable(summary, b, cfg, fmtFloat, fmtPercent, duration); err != nil {
			return fmt.Errorf("error writing burndown table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForBurndown handles opening the file and calling the JSON writer.
func printJSONResultsForBurndown(summary schema.BurndownSummary, b *schema.SprintBurndown, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForBurndown(w, summary, b)
	}, "Wrote JSON burndown summary")
}

// printCSVResultsForBurndown handles opening the file and calling the CSV writer.
func printCSVResultsForBurndown(summary schema.BurndownSummary, b *schema.SprintBurndown, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForBurndown(csvWriter, summary, b, fmtFloat)
	}, "Wrote CSV burndown summary")
}

// printBurndownTable prints the summary metrics in a two-column table.
func printBurndownTable(summary schema.BurndownSummary, b *schema.SprintBurndown, cfg *contract.Config, fmtFloat, fmtPercent func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	status := contract.GetPlainTrackLabel(summary.OnTrack)
	if cfg.UseColors {
		status = contract.GetColorTrackLabel(summary.OnTrack)
	}

	remaining, completed := "-", "-"
	if summary.HasData {
		remaining = fmtFloat(summary.Remaining)
		completed = fmtFloat(summary.Completed)
	}

	data := [][]string{
		{"Sprint", contract.TruncateLabel(b.SprintID, GetMaxTableLabelWidth(cfg))},
		{"Scope", string(b.Type)},
		{"Window", contract.FormatDate(b.StartDate.Time) + " to " + contract.FormatDate(b.EndDate.Time)},
		{"Progress", fmtPercent(summary.ProgressPercent)},
		{"Status", status},
		{"Total points", fmtFloat(summary.TotalPoints)},
		{"Remaining", remaining},
		{"Completed", completed},
		{"Samples", fmt.Sprintf("%d", len(b.DataPoints))},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Burndown report completed in %v\n", duration)
	return nil
}
