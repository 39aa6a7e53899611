// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
	"golang.org/x/term"
)

// fallbackChartWidth is used when the terminal size cannot be detected.
const fallbackChartWidth = 800

// GetChartWidth resolves the drawing-surface width: the explicit override
// when set, otherwise the terminal width scaled to pixels, otherwise a fixed
// fallback. The chart never shrinks below twice the default padding.
func GetChartWidth(cfg *contract.Config) int {
	if cfg.ChartWidth > 0 {
		return cfg.ChartWidth
	}
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		// Roughly 8 pixels per terminal column keeps the SVG proportional
		// to the table printed next to it.
		width := cols * 8
		if width > 2*schema.DefaultChartPadding {
			return width
		}
	}
	return fallbackChartWidth
}

// GetTableWidth resolves the terminal width for table layout, honoring the
// explicit override when set.
func GetTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return cols
	}
	return 80
}

// GetMaxTableLabelWidth calculates the maximum width for free-text cells
// (sprint and task identifiers) in table output based on terminal width
// and the fixed numeric columns.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	termWidth := GetTableWidth(cfg)

	// Reserve space for the fixed columns with borders and padding.
	available := termWidth - 50
	if available < 12 {
		// Minimum reasonable identifier width
		return 12
	}
	if available > 60 {
		// Maximum identifier width to prevent overly wide tables
		return 60
	}
	return available
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtPercent func(float64) string) {
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	fmtPercent = func(v float64) string {
		return fmt.Sprintf("%.*f%%", precision, v)
	}
	return fmtFloat, fmtPercent
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// requireOutputFile enforces that file-bound formats have a destination.
func requireOutputFile(cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("%s output requires --output-file", cfg.Output)
	}
	return nil
}
