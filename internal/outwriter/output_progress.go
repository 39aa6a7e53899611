package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintProgressResults outputs a task progress report, dispatching based on
// the output format configured. Parquet is not supported for this report.
func PrintProgressResults(records []schema.TaskProgress, cfg *contract.Config) error {
	fmtFloat, fmtPercent := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForProgress(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForProgress(records, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for progress reports")
	default:
		if err := printProgressTable(records, cfg, fmtFloat, fmtPercent); err != nil {
			return fmt.Errorf("error writing progress table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForProgress handles opening the file and calling the JSON writer.
func printJSONResultsForProgress(records []schema.TaskProgress, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForProgress(w, records)
	}, "Wrote JSON progress results")
}

// printCSVResultsForProgress handles opening the file and calling the CSV writer.
func printCSVResultsForProgress(records []schema.TaskProgress, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForProgress(csvWriter, records, fmtFloat)
	}, "Wrote CSV progress results")
}

// printProgressTable prints one row per task.
func printProgressTable(records []schema.TaskProgress, cfg *contract.Config, fmtFloat, fmtPercent func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Task", "Metric", "Current", "Target", "Complete"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabelWidth := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, r := range records {
		data = append(data, []string{
			contract.TruncateLabel(r.TaskID, maxLabelWidth),
			string(r.MetricType),
			fmtFloat(r.CurrentValue),
			fmtFloat(r.TargetValue),
			fmtPercent(r.PercentComplete()),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
