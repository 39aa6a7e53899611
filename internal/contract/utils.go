package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/northstarwang/burnlens/schema"
)

// Status label constants.
const (
	OnTrackValue  = "On track"
	OffTrackValue = "Off track"
)

// Color variables for console output.
var (
	OnTrackColor   = color.New(color.FgGreen)               // on track is an all-clear signal.
	OffTrackColor  = color.New(color.FgRed, color.Bold)     // off track is the signal people scan for.
	ImprovingColor = color.New(color.FgGreen)               // improving velocity.
	DecliningColor = color.New(color.FgMagenta, color.Bold) // declining velocity warns strongly.
	NeutralColor   = color.New(color.FgCyan)                // stable / insufficient data.
)

// GetPlainTrackLabel returns the plain text on-track label. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainTrackLabel(onTrack bool) string {
	if onTrack {
		return OnTrackValue
	}
	return OffTrackValue
}

// GetColorTrackLabel returns a colored on-track label for console output.
func GetColorTrackLabel(onTrack bool) string {
	if onTrack {
		return OnTrackColor.Sprint(OnTrackValue)
	}
	return OffTrackColor.Sprint(OffTrackValue)
}

// GetColorTrendLabel returns a colored trend label for console output.
func GetColorTrendLabel(trend schema.TrendClass) string {
	switch trend {
	case schema.ImprovingTrend:
		return ImprovingColor.Sprint(string(trend))
	case schema.DecliningTrend:
		return DecliningColor.Sprint(string(trend))
	default:
		return NeutralColor.Sprint(string(trend))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".burnlens_history.db"
	}
	return filepath.Join(homeDir, ".burnlens_history.db")
}

// TruncateLabel truncates a free-text identifier to a maximum width with an
// ellipsis prefix, keeping the tail where sprint and task IDs carry their
// distinguishing suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
