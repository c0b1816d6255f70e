package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all smartdirs MCP tools with the server
func RegisterTools(s *server.MCPServer) {
	// Tool 1: create_directory - uniquely-named directory creation
	s.AddTool(mcp.NewTool("create_directory",
		mcp.WithDescription("Create a uniquely-named directory with an incrementing numeric prefix/suffix and an optional date/time stamp"),
		mcp.WithString("base_name",
			mcp.Required(),
			mcp.Description("Base name for the directory (e.g. 'data')")),
		mcp.WithString("parent_dir",
			mcp.Description("Parent directory to create under (default: current directory)")),
		mcp.WithBoolean("use_date",
			mcp.Description("Embed the current date into the name (default: false)")),
		mcp.WithBoolean("use_time",
			mcp.Description("Embed the current time into the name (default: false)")),
		mcp.WithString("date_format",
			mcp.Description("Go layout for the date part (default: 2006-01-02)")),
		mcp.WithString("time_format",
			mcp.Description("Go layout for the time part (default from settings)")),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone for timestamps (default from settings, else local)")),
		mcp.WithBoolean("prefix",
			mcp.Description("Prepend an incrementing number (default: true)")),
		mcp.WithBoolean("suffix",
			mcp.Description("Append an incrementing number (default: false)")),
		mcp.WithString("separator",
			mcp.Description("Separator between name parts (default: '-')")),
		mcp.WithString("config_file",
			mcp.Description("Settings file path (default: ~/.smartdirs.toml)")),
	), HandleCreateDirectory)

	// Tool 2: directory_history - creation log
	s.AddTool(mcp.NewTool("directory_history",
		mcp.WithDescription("List the directory creations recorded in the smartdirs log"),
		mcp.WithString("log_dir",
			mcp.Description("Log directory (default: log_dir from settings)")),
		mcp.WithString("config_file",
			mcp.Description("Settings file path (default: ~/.smartdirs.toml)")),
	), HandleDirectoryHistory)
}
