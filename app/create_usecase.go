package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ludo-technologies/smartdirs/domain"
	"github.com/ludo-technologies/smartdirs/internal/config"
	"github.com/ludo-technologies/smartdirs/service"
)

// CreateUseCase orchestrates a directory creation: it loads the settings,
// resolves the timezone and time format, computes the collision-free name,
// creates the directory and appends the log row.
type CreateUseCase struct {
	namer  domain.DirectoryNamer
	logger domain.DirectoryLogger
	now    func() time.Time
}

// NewCreateUseCase creates a use case with the default service implementations
func NewCreateUseCase() *CreateUseCase {
	return &CreateUseCase{
		namer:  service.NewDirectoryNamer(),
		logger: service.NewDirectoryLogger(),
		now:    time.Now,
	}
}

// NewCreateUseCaseWithDeps creates a use case with injected dependencies
func NewCreateUseCaseWithDeps(namer domain.DirectoryNamer, logger domain.DirectoryLogger, now func() time.Time) *CreateUseCase {
	uc := NewCreateUseCase()
	if namer != nil {
		uc.namer = namer
	}
	if logger != nil {
		uc.logger = logger
	}
	if now != nil {
		uc.now = now
	}
	return uc
}

// Execute creates the directory described by req and returns its path.
//
// The timezone is resolved before any filesystem side effect, so an unknown
// timezone never leaves a partially created tree behind. There is no
// rollback: when the directory is created but the log append fails, the
// directory stays and the error propagates.
func (uc *CreateUseCase) Execute(req *domain.CreateRequest) (*domain.CreateResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request must not be nil", nil)
	}

	// Work on a copy so resolution never mutates the caller's request.
	r := *req
	if r.ParentDir == "" {
		r.ParentDir = domain.DefaultParentDir
	}
	if r.DateFormat == "" {
		r.DateFormat = domain.DefaultDateFormat
	}

	cfg, err := config.Load(r.ConfigFile)
	if err != nil {
		return nil, err
	}

	loc, err := resolveLocation(r.Timezone, cfg.Timezone)
	if err != nil {
		return nil, err
	}

	if r.TimeFormat == "" {
		if cfg.TimeFormatWithSeconds {
			r.TimeFormat = domain.TimeFormatWithSeconds
		} else {
			r.TimeFormat = domain.TimeFormatWithoutSeconds
		}
	}
	if len(cfg.Ignore) > 0 {
		r.Ignore = append(append([]string(nil), r.Ignore...), cfg.Ignore...)
	}

	if err := os.MkdirAll(r.ParentDir, 0o755); err != nil {
		return nil, domain.NewFilesystemError(fmt.Sprintf("cannot create parent directory: %s", r.ParentDir), err)
	}

	now := uc.now().In(loc)
	name, err := uc.namer.ComputeName(&r, now)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(r.ParentDir, name)
	reused := false
	if fi, statErr := os.Stat(path); statErr == nil && fi.IsDir() {
		reused = true
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, domain.NewFilesystemError(fmt.Sprintf("cannot create directory: %s", path), err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	entry := domain.LogEntry{
		Date:      now.Format(service.LogDateFormat),
		Directory: name,
		Path:      abs,
	}
	if err := uc.logger.Append(cfg.LogDir, entry); err != nil {
		return nil, err
	}

	return &domain.CreateResponse{
		Name:         name,
		Path:         path,
		AbsolutePath: abs,
		CreatedAt:    now,
		Reused:       reused,
	}, nil
}

// resolveLocation resolves the effective timezone: explicit argument first,
// then the configured one, then the local timezone. Only an unspecified
// timezone falls back to local; a bad name always fails.
func resolveLocation(explicit, configured string) (*time.Location, error) {
	switch {
	case explicit != "":
		loc, err := time.LoadLocation(explicit)
		if err != nil {
			return nil, domain.NewTimezoneError(explicit, err)
		}
		return loc, nil
	case configured != "":
		loc, err := time.LoadLocation(configured)
		if err != nil {
			return nil, domain.NewTimezoneError(configured, err)
		}
		return loc, nil
	default:
		return time.Local, nil
	}
}
