package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/smartdirs/domain"
)

const (
	// LogFileName is the fixed name of the creation log inside the
	// configured log directory.
	LogFileName = "smartdirs.log"

	// LogDateFormat is the human-readable timestamp used in log rows,
	// e.g. "May 17, 2025 at 8:08 AM".
	LogDateFormat = "Jan 2, 2006 at 3:04 PM"
)

var logHeader = []string{"Date", "Directory", "Path"}

// DirectoryLogger appends creation records to a CSV log file
type DirectoryLogger struct{}

// NewDirectoryLogger creates a new directory logger
func NewDirectoryLogger() *DirectoryLogger {
	return &DirectoryLogger{}
}

// Append implements domain.DirectoryLogger. The header row is written only
// when the log file did not already exist. Concurrent appends are not
// synchronized; interleaving is bounded by whatever atomicity the
// filesystem append offers.
func (l *DirectoryLogger) Append(logDir string, entry domain.LogEntry) error {
	if logDir == "" {
		return nil
	}
	dir, err := expandHome(logDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewFilesystemError(fmt.Sprintf("cannot create log directory: %s", dir), err)
	}

	path := filepath.Join(dir, LogFileName)
	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.NewFilesystemError(fmt.Sprintf("cannot open log file: %s", path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(logHeader); err != nil {
			return domain.NewFilesystemError("cannot write log header", err)
		}
	}
	if err := w.Write([]string{entry.Date, entry.Directory, entry.Path}); err != nil {
		return domain.NewFilesystemError("cannot write log entry", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.NewFilesystemError(fmt.Sprintf("cannot append to log file: %s", path), err)
	}
	return nil
}

// Read implements domain.DirectoryLogger. A missing log file yields an
// empty slice.
func (l *DirectoryLogger) Read(logDir string) ([]domain.LogEntry, error) {
	if logDir == "" {
		return nil, nil
	}
	dir, err := expandHome(logDir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, LogFileName)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewFilesystemError(fmt.Sprintf("cannot open log file: %s", path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(logHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, domain.NewFilesystemError(fmt.Sprintf("malformed log file: %s", path), err)
	}

	entries := make([]domain.LogEntry, 0, len(records))
	for i, rec := range records {
		if i == 0 && rec[0] == logHeader[0] {
			continue
		}
		entries = append(entries, domain.LogEntry{Date: rec[0], Directory: rec[1], Path: rec[2]})
	}
	return entries, nil
}

// expandHome resolves a leading ~ against the user's home directory
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", domain.NewFilesystemError("cannot determine home directory", err)
	}
	return filepath.Join(home, path[1:]), nil
}
