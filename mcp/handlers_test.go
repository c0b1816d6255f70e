package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/smartdirs/domain"
	"github.com/ludo-technologies/smartdirs/mcp"
	"github.com/ludo-technologies/smartdirs/service"
)

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), arguments interface{}) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Arguments: arguments,
		},
	}
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcplib.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleCreateDirectory(t *testing.T) {
	parent := t.TempDir()
	result := callTool(t, mcp.HandleCreateDirectory, map[string]interface{}{
		"base_name":   "data",
		"parent_dir":  parent,
		"config_file": filepath.Join(t.TempDir(), "no-settings.toml"),
	})

	require.False(t, result.IsError)

	var res domain.CreateResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))
	assert.Equal(t, "1-data", res.Name)

	fi, err := os.Stat(res.Path)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestHandleCreateDirectoryMissingBaseName(t *testing.T) {
	result := callTool(t, mcp.HandleCreateDirectory, map[string]interface{}{
		"parent_dir": t.TempDir(),
	})

	assert.True(t, result.IsError)
}

func TestHandleCreateDirectoryInvalidArguments(t *testing.T) {
	result := callTool(t, mcp.HandleCreateDirectory, "not a map")

	assert.True(t, result.IsError)
}

func TestHandleCreateDirectoryInvalidTimezone(t *testing.T) {
	result := callTool(t, mcp.HandleCreateDirectory, map[string]interface{}{
		"base_name":   "data",
		"parent_dir":  t.TempDir(),
		"timezone":    "Not/AZone",
		"config_file": filepath.Join(t.TempDir(), "no-settings.toml"),
	})

	assert.True(t, result.IsError)
}

func TestHandleDirectoryHistory(t *testing.T) {
	logDir := t.TempDir()
	logger := service.NewDirectoryLogger()
	require.NoError(t, logger.Append(logDir, domain.LogEntry{
		Date: "May 17, 2025 at 8:08 AM", Directory: "1-data", Path: "/tmp/1-data",
	}))

	result := callTool(t, mcp.HandleDirectoryHistory, map[string]interface{}{
		"log_dir": logDir,
	})

	require.False(t, result.IsError)

	var entries []domain.LogEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "1-data", entries[0].Directory)
}

func TestHandleDirectoryHistoryNoLogDir(t *testing.T) {
	result := callTool(t, mcp.HandleDirectoryHistory, map[string]interface{}{
		"config_file": filepath.Join(t.TempDir(), "no-settings.toml"),
	})

	assert.True(t, result.IsError)
}
