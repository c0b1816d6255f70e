package domain

import "fmt"

// LogEntry is one row of the creation log
type LogEntry struct {
	Date      string `json:"date" yaml:"date"`
	Directory string `json:"directory" yaml:"directory"`
	Path      string `json:"path" yaml:"path"`
}

// OutputFormat represents the output format for the history report
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// ParseOutputFormat converts a string to an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text":
		return OutputFormatText, nil
	case "json":
		return OutputFormatJSON, nil
	case "yaml":
		return OutputFormatYAML, nil
	case "csv":
		return OutputFormatCSV, nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("unsupported output format: %s", s), nil)
	}
}
