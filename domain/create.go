package domain

import "time"

// Default values applied by DefaultCreateRequest. Date and time formats are
// Go reference layouts. The default time formats are 12-hour with a padded
// hour; the namer strips the leading zero after formatting so that
// "05:08PM" renders as "5:08PM".
const (
	DefaultParentDir  = "."
	DefaultDateFormat = "2006-01-02"
	DefaultSeparator  = "-"

	TimeFormatWithSeconds    = "03:04:05PM"
	TimeFormatWithoutSeconds = "03:04PM"
)

// CreateRequest describes a single directory creation.
//
// BaseName is the only required field. TimeFormat and Timezone fall back to
// the loaded configuration when empty; everything else uses the field's
// literal value, so an empty Separator really means "no separator".
type CreateRequest struct {
	// BaseName is the base name for the directory (e.g. "data"). May be
	// empty, in which case the name is built from the timestamp and
	// numeric tags alone.
	BaseName string

	// ParentDir is the directory the new directory is created under.
	ParentDir string

	// UseDate and UseTime embed the current date/time into the name.
	UseDate bool
	UseTime bool

	// DateFormat is the Go layout used for the date part.
	DateFormat string

	// TimeFormat is the Go layout used for the time part. Empty means
	// "use the configured default" (with or without seconds).
	TimeFormat string

	// Timezone is an IANA timezone name (e.g. "America/New_York").
	// Empty means "use the configured timezone, else the local one".
	Timezone string

	// Prefix and Suffix request an incrementing numeric tag on the
	// corresponding end of the name.
	Prefix bool
	Suffix bool

	// Separator joins the name parts and the numeric tags.
	Separator string

	// ConfigFile overrides the per-user settings file location.
	ConfigFile string

	// Ignore lists glob patterns for sibling directories to exclude from
	// the collision scan, in addition to any configured patterns.
	Ignore []string
}

// DefaultCreateRequest returns a request with the documented defaults:
// parent ".", separator "-", numeric prefix enabled.
func DefaultCreateRequest(baseName string) *CreateRequest {
	return &CreateRequest{
		BaseName:   baseName,
		ParentDir:  DefaultParentDir,
		DateFormat: DefaultDateFormat,
		Prefix:     true,
		Separator:  DefaultSeparator,
	}
}

// CreateResponse reports the outcome of a directory creation
type CreateResponse struct {
	// Name is the final directory name, numeric tags included.
	Name string `json:"name"`

	// Path is the created directory as ParentDir/Name.
	Path string `json:"path"`

	// AbsolutePath is Path resolved against the working directory.
	AbsolutePath string `json:"absolute_path"`

	// CreatedAt is the localized time the name was computed at.
	CreatedAt time.Time `json:"created_at"`

	// Reused is true when the directory already existed. Only possible
	// when both Prefix and Suffix are disabled.
	Reused bool `json:"reused"`
}

// DirectoryNamer computes the final directory name for a request.
// Implementations live in the service layer.
type DirectoryNamer interface {
	// ComputeName returns the collision-free name for req. now must
	// already be localized to the resolved timezone, and req must have
	// its TimeFormat resolved.
	ComputeName(req *CreateRequest, now time.Time) (string, error)
}

// DirectoryLogger records directory creations in a tabular log file.
// Implementations live in the service layer.
type DirectoryLogger interface {
	// Append adds one row to the log inside logDir, creating the file
	// and header as needed. A no-op when logDir is empty.
	Append(logDir string, entry LogEntry) error

	// Read returns all logged entries, oldest first. A missing log file
	// yields an empty slice, not an error.
	Read(logDir string) ([]LogEntry, error)
}
