package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ludo-technologies/smartdirs/app"
	"github.com/ludo-technologies/smartdirs/domain"
)

// CreateCommand represents the create command
type CreateCommand struct {
	parentDir  string
	useDate    bool
	useTime    bool
	dateFormat string
	timeFormat string
	timezone   string
	prefix     bool
	suffix     bool
	separator  string
	ignore     []string
	configPath string
	count      int
}

// NewCreateCommand creates a new create command
func NewCreateCommand() *CreateCommand {
	return &CreateCommand{
		parentDir:  domain.DefaultParentDir,
		dateFormat: domain.DefaultDateFormat,
		prefix:     true,
		separator:  domain.DefaultSeparator,
		count:      1,
	}
}

// CreateCobraCommand creates the cobra command for directory creation
func (c *CreateCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <base-name>",
		Short: "Create a uniquely-named directory",
		Long: `Create a directory under the parent path with a collision-free name.

The name is built from the base name, an optional date/time stamp, and an
incrementing numeric prefix or suffix chosen by scanning the existing
sibling directories. Date and time formats use Go reference layouts
(e.g. "2006-01-02", "3:04PM").

Examples:
  # Create 1-data, then 2-data, then 3-data...
  smartdirs create data

  # Date-stamped name with a numeric suffix: backup-2025-05-17-1
  smartdirs create backup --date --prefix=false --suffix

  # Timestamp in a specific timezone, no numbering
  smartdirs create logs --date --time --timezone America/New_York --prefix=false

  # Create five numbered directories in one go
  smartdirs create run --count 5`,
		Args: cobra.ExactArgs(1),
		RunE: c.runCreate,
	}

	c.addFlags(cmd.Flags())
	return cmd
}

// addFlags registers the create flags on the given flag set
func (c *CreateCommand) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.parentDir, "parent", "p", domain.DefaultParentDir, "Parent directory to create under")
	flags.BoolVar(&c.useDate, "date", false, "Embed the current date into the name")
	flags.BoolVar(&c.useTime, "time", false, "Embed the current time into the name")
	flags.StringVar(&c.dateFormat, "date-format", domain.DefaultDateFormat, "Go layout for the date part")
	flags.StringVar(&c.timeFormat, "time-format", "", "Go layout for the time part (default from settings)")
	flags.StringVarP(&c.timezone, "timezone", "z", "", "IANA timezone for timestamps (default from settings, else local)")
	flags.BoolVar(&c.prefix, "prefix", true, "Prepend an incrementing number")
	flags.BoolVar(&c.suffix, "suffix", false, "Append an incrementing number")
	flags.StringVarP(&c.separator, "separator", "s", domain.DefaultSeparator, "Separator between name parts")
	flags.StringArrayVar(&c.ignore, "ignore", nil, "Glob pattern for siblings to exclude from numbering (repeatable)")
	flags.StringVarP(&c.configPath, "config", "c", "", "Settings file path (default ~/.smartdirs.toml)")
	flags.IntVarP(&c.count, "count", "n", 1, "Number of directories to create")
}

// runCreate executes the create command
func (c *CreateCommand) runCreate(cmd *cobra.Command, args []string) error {
	if c.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", c.count)
	}

	req := domain.DefaultCreateRequest(args[0])
	req.ParentDir = c.parentDir
	req.UseDate = c.useDate
	req.UseTime = c.useTime
	req.DateFormat = c.dateFormat
	req.TimeFormat = c.timeFormat
	req.Timezone = c.timezone
	req.Prefix = c.prefix
	req.Suffix = c.suffix
	req.Separator = c.separator
	req.Ignore = c.ignore
	req.ConfigFile = c.configPath

	useCase := app.NewCreateUseCase()

	var bar *progressbar.ProgressBar
	if c.count > 1 && c.shouldUseProgressBar(cmd) {
		bar = c.createProgressBar(c.count, cmd.ErrOrStderr())
	}

	for i := 0; i < c.count; i++ {
		res, err := useCase.Execute(req)
		if err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
		if res.Reused {
			fmt.Fprintf(cmd.OutOrStdout(), "Directory already exists: %s\n", res.Path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created directory: %s\n", res.Path)
		}
	}
	return nil
}

// shouldUseProgressBar returns true when the session appears to be
// interactive and the bar won't pollute machine-readable stdout consumers.
func (c *CreateCommand) shouldUseProgressBar(cmd *cobra.Command) bool {
	if !isInteractiveEnvironment() {
		return false
	}
	if errWriter, ok := cmd.ErrOrStderr().(*os.File); ok {
		return term.IsTerminal(int(errWriter.Fd()))
	}
	return false
}

// createProgressBar creates a new progress bar with consistent styling
func (c *CreateCommand) createProgressBar(max int, writer io.Writer) *progressbar.ProgressBar {
	if writer == nil {
		writer = io.Discard
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription("Creating directories"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)
}

// NewCreateCmd creates and returns the create cobra command
func NewCreateCmd() *cobra.Command {
	createCommand := NewCreateCommand()
	return createCommand.CreateCobraCommand()
}
