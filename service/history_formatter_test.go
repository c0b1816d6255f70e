package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/smartdirs/domain"
)

var historyEntries = []domain.LogEntry{
	{Date: "May 17, 2025 at 8:08 AM", Directory: "1-data", Path: "/tmp/1-data"},
	{Date: "May 18, 2025 at 9:30 PM", Directory: "2-data", Path: "/tmp/2-data"},
}

func TestHistoryFormatterText(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, historyEntries, domain.OutputFormatText)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "1-data")
	assert.Contains(t, out, "/tmp/2-data")
}

func TestHistoryFormatterTextEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, nil, domain.OutputFormatText)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No directory creations logged.")
}

func TestHistoryFormatterJSON(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, historyEntries, domain.OutputFormatJSON)

	require.NoError(t, err)
	var decoded []domain.LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, historyEntries, decoded)
}

func TestHistoryFormatterJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, nil, domain.OutputFormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestHistoryFormatterYAML(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, historyEntries, domain.OutputFormatYAML)

	require.NoError(t, err)
	var decoded []domain.LogEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, historyEntries, decoded)
}

func TestHistoryFormatterCSV(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, historyEntries, domain.OutputFormatCSV)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Directory,Path", lines[0])
	assert.Contains(t, lines[2], "2-data")
}

func TestHistoryFormatterUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := NewHistoryFormatter().Write(&buf, historyEntries, domain.OutputFormat("xml"))

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
}
