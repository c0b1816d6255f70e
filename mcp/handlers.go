package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ludo-technologies/smartdirs/app"
	"github.com/ludo-technologies/smartdirs/domain"
	"github.com/ludo-technologies/smartdirs/internal/config"
	"github.com/ludo-technologies/smartdirs/service"
)

// HandleCreateDirectory handles the create_directory tool
func HandleCreateDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Parse arguments with type assertion
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	baseName, ok := args["base_name"].(string)
	if !ok {
		return mcp.NewToolResultError("base_name parameter is required and must be a string"), nil
	}

	req := domain.DefaultCreateRequest(baseName)
	if v := getString(args, "parent_dir"); v != "" {
		req.ParentDir = v
	}
	req.UseDate = getBool(args, "use_date", false)
	req.UseTime = getBool(args, "use_time", false)
	if v := getString(args, "date_format"); v != "" {
		req.DateFormat = v
	}
	req.TimeFormat = getString(args, "time_format")
	req.Timezone = getString(args, "timezone")
	req.Prefix = getBool(args, "prefix", true)
	req.Suffix = getBool(args, "suffix", false)
	if v, present := args["separator"]; present {
		if s, ok := v.(string); ok {
			req.Separator = s
		}
	}
	req.ConfigFile = getString(args, "config_file")

	res, err := app.NewCreateUseCase().Execute(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("directory creation failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleDirectoryHistory handles the directory_history tool
func HandleDirectoryHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	logDir := getString(args, "log_dir")
	if logDir == "" {
		cfg, err := config.Load(getString(args, "config_file"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load settings: %v", err)), nil
		}
		logDir = cfg.LogDir
	}
	if logDir == "" {
		return mcp.NewToolResultError("no log directory configured: set log_dir in the settings file or pass log_dir"), nil
	}

	entries, err := service.NewDirectoryLogger().Read(logDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read log: %v", err)), nil
	}
	if entries == nil {
		entries = []domain.LogEntry{}
	}

	jsonData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// getString returns the string argument for key, or "" when absent
func getString(args map[string]interface{}, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// getBool returns the boolean argument for key, or def when absent
func getBool(args map[string]interface{}, key string, def bool) bool {
	if args == nil {
		return def
	}
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}
