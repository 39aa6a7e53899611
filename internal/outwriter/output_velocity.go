package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/internal/parquet"
	"github.com/northstarwang/burnlens/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintVelocityResults outputs the velocity trend and its history, dispatching
// based on the output format configured.
func PrintVelocityResults(trend schema.VelocityTrend, records []schema.TeamVelocity, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForVelocity(trend, records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForVelocity(records, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		if err := parquet.WriteVelocityParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote parquet velocity history to %s\n", cfg.OutputFile)
	default:
		if err := printVelocityTable(trend, records, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing velocity table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForVelocity handles opening the file and calling the JSON writer.
func printJSONResultsForVelocity(trend schema.VelocityTrend, records []schema.TeamVelocity, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForVelocity(w, trend, records)
	}, "Wrote JSON velocity results")
}

// printCSVResultsForVelocity handles opening the file and calling the CSV writer.
func printCSVResultsForVelocity(records []schema.TeamVelocity, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForVelocity(csvWriter, records, fmtFloat)
	}, "Wrote CSV velocity results")
}

// printVelocityTable prints the period history and the trend classification.
func printVelocityTable(trend schema.VelocityTrend, records []schema.TeamVelocity, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Team", "Period", "Start", "End", "Planned", "Completed", "Velocity"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabelWidth := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, r := range records {
		row := []string{
			contract.TruncateLabel(r.TeamID, maxLabelWidth),
			string(r.Period),
			contract.FormatDate(r.PeriodStart.Time),
			contract.FormatDate(r.PeriodEnd.Time),
			fmtFloat(r.PlannedPoints),
			fmtFloat(r.CompletedPoints),
			fmtFloat(r.Velocity()),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	label := string(trend.Trend)
	if cfg.UseColors {
		label = contract.GetColorTrendLabel(trend.Trend)
	}
	fmt.Printf("Trend: %s (average velocity %s over %d periods)\n", label, fmtFloat(trend.AverageVelocity), trend.Periods)
	if trend.Trend != schema.InsufficientDataTrend {
		fmt.Printf("Recent average %s vs earlier average %s\n", fmtFloat(trend.RecentAverage), fmtFloat(trend.EarlierAverage))
	}
	return nil
}
