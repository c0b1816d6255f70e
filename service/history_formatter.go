package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/smartdirs/domain"
)

// HistoryFormatter renders the creation log in the supported output formats
type HistoryFormatter struct{}

// NewHistoryFormatter creates a new history formatter
func NewHistoryFormatter() *HistoryFormatter {
	return &HistoryFormatter{}
}

// Write renders entries to w in the given format
func (f *HistoryFormatter) Write(w io.Writer, entries []domain.LogEntry, format domain.OutputFormat) error {
	if entries == nil {
		entries = []domain.LogEntry{}
	}
	switch format {
	case domain.OutputFormatText:
		return f.writeText(w, entries)
	case domain.OutputFormatJSON:
		return f.writeJSON(w, entries)
	case domain.OutputFormatYAML:
		return f.writeYAML(w, entries)
	case domain.OutputFormatCSV:
		return f.writeCSV(w, entries)
	default:
		return domain.NewInvalidInputError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

func (f *HistoryFormatter) writeText(w io.Writer, entries []domain.LogEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No directory creations logged.")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Date", "Directory", "Path"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Date, e.Directory, e.Path})
	}
	t.Render()
	return nil
}

func (f *HistoryFormatter) writeJSON(w io.Writer, entries []domain.LogEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

func (f *HistoryFormatter) writeYAML(w io.Writer, entries []domain.LogEntry) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

func (f *HistoryFormatter) writeCSV(w io.Writer, entries []domain.LogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(logHeader); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Date, e.Directory, e.Path}); err != nil {
			return domain.NewOutputError("failed to write CSV row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return domain.NewOutputError("failed to flush CSV", err)
	}
	return nil
}
