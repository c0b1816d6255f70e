package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/smartdirs/domain"
	"github.com/ludo-technologies/smartdirs/internal/config"
	"github.com/ludo-technologies/smartdirs/service"
)

// HistoryCommand represents the history command
type HistoryCommand struct {
	format     string
	outputPath string
	logDir     string
	configPath string
}

// NewHistoryCommand creates a new history command
func NewHistoryCommand() *HistoryCommand {
	return &HistoryCommand{
		format: "text",
	}
}

// CreateCobraCommand creates the cobra command for the creation history
func (h *HistoryCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the directory creation log",
		Long: `Show the directories recorded in the creation log.

The log directory comes from the settings file (log_dir) unless
overridden with --log-dir. Each row holds the creation time, the
directory name, and its absolute path.

Examples:
  # Render the log as a table
  smartdirs history

  # Machine-readable output
  smartdirs history --format json

  # Write the log as YAML to a file
  smartdirs history --format yaml --output history.yaml`,
		RunE: h.runHistory,
	}

	cmd.Flags().StringVarP(&h.format, "format", "f", "text", "Output format: text, json, yaml, csv")
	cmd.Flags().StringVarP(&h.outputPath, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&h.logDir, "log-dir", "", "Log directory (default from settings)")
	cmd.Flags().StringVarP(&h.configPath, "config", "c", "", "Settings file path (default ~/.smartdirs.toml)")

	return cmd
}

// runHistory executes the history command
func (h *HistoryCommand) runHistory(cmd *cobra.Command, args []string) error {
	format, err := domain.ParseOutputFormat(h.format)
	if err != nil {
		return err
	}

	logDir := h.logDir
	if logDir == "" {
		cfg, err := config.Load(h.configPath)
		if err != nil {
			return err
		}
		logDir = cfg.LogDir
	}
	if logDir == "" {
		return fmt.Errorf("no log directory configured: set log_dir in the settings file or pass --log-dir")
	}

	entries, err := service.NewDirectoryLogger().Read(logDir)
	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()
	if h.outputPath != "" {
		f, err := os.Create(h.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", h.outputPath, err)
		}
		defer f.Close()
		writer = f
	}

	return service.NewHistoryFormatter().Write(writer, entries, format)
}

// NewHistoryCmd creates and returns the history cobra command
func NewHistoryCmd() *cobra.Command {
	historyCommand := NewHistoryCommand()
	return historyCommand.CreateCobraCommand()
}
