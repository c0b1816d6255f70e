package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/smartdirs/internal/config"
)

// InitCommand represents the init command
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{
		force: false,
	}
}

// CreateCobraCommand creates the cobra command for settings initialization
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the smartdirs settings file",
		Long: `Write a commented settings template to the per-user settings file.

The generated file documents every available setting (timezone, time
format, log directory, ignore patterns) with all values commented out,
so smartdirs keeps its default behavior until you edit it.

Examples:
  # Create ~/.smartdirs.toml
  smartdirs init

  # Create a settings file at a custom location
  smartdirs init --config ./smartdirs.toml

  # Overwrite an existing settings file
  smartdirs init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing settings file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", "", "Settings file path (default ~/.smartdirs.toml)")

	return cmd
}

// runInit executes the init command
func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath := i.configPath
	if configPath == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve settings path: %w", err)
		}
		configPath = p
	}

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil && !i.force {
		return fmt.Errorf("settings file already exists: %s\nUse --force to overwrite", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultConfigTOML), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Settings file created: %s\n", configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "\nUncomment and edit the settings you need.\n")
	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	initCommand := NewInitCommand()
	return initCommand.CreateCobraCommand()
}
