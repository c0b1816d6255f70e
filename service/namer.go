package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ludo-technologies/smartdirs/domain"
)

// DirectoryNamer computes collision-free directory names by scanning the
// immediate siblings under the parent directory for numeric prefix/suffix
// tags around the same base name.
type DirectoryNamer struct{}

// NewDirectoryNamer creates a new directory namer
func NewDirectoryNamer() *DirectoryNamer {
	return &DirectoryNamer{}
}

// ComputeName implements domain.DirectoryNamer.
//
// The scan-then-name sequence is not atomic: two concurrent callers
// targeting the same parent and base can compute the same tag. Callers
// needing uniqueness under concurrency must serialize externally.
func (n *DirectoryNamer) ComputeName(req *domain.CreateRequest, now time.Time) (string, error) {
	dirBase := joinNonEmpty(req.Separator, req.BaseName, timestampToken(req, now))

	entries, err := os.ReadDir(req.ParentDir)
	if err != nil {
		return "", domain.NewFilesystemError(fmt.Sprintf("cannot list parent directory: %s", req.ParentDir), err)
	}

	maxPrefix, maxSuffix := 0, 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		skip, err := matchesAny(req.Ignore, name)
		if err != nil {
			return "", err
		}
		if skip {
			continue
		}

		prefix, suffix, ok := matchNumbered(name, dirBase, req.Separator)
		if !ok {
			continue
		}
		maxPrefix = max(maxPrefix, prefix)
		maxSuffix = max(maxSuffix, suffix)
	}

	switch {
	case req.Prefix && req.Suffix:
		num := strconv.Itoa(max(maxPrefix, maxSuffix) + 1)
		return joinNonEmpty(req.Separator, num, dirBase, num), nil
	case req.Prefix:
		num := strconv.Itoa(maxPrefix + 1)
		return joinNonEmpty(req.Separator, num, dirBase), nil
	case req.Suffix:
		num := strconv.Itoa(maxSuffix + 1)
		return joinNonEmpty(req.Separator, dirBase, num), nil
	default:
		return dirBase, nil
	}
}

// timestampToken formats the requested date/time parts and joins them with
// the separator. A single leading zero is stripped from the time part so
// "05:08AM" renders as "5:08AM", matching calendar-app display.
func timestampToken(req *domain.CreateRequest, now time.Time) string {
	if !req.UseDate && !req.UseTime {
		return ""
	}
	var dateStr, timeStr string
	if req.UseDate {
		dateStr = now.Format(req.DateFormat)
	}
	if req.UseTime {
		timeStr = strings.TrimPrefix(now.Format(req.TimeFormat), "0")
	}
	return joinNonEmpty(req.Separator, dateStr, timeStr)
}

// joinNonEmpty joins the non-empty parts with sep
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// matchNumbered reports whether name has the exact shape
// [number][sep]base[sep][number], anchored at both ends, and returns the
// numeric tags (0 when absent). Names that merely contain base as a
// substring do not match.
//
// When base itself contains the separator the grammar is ambiguous; the
// maximal-digit-run reading used here mirrors a greedy anchored pattern.
func matchNumbered(name, base, sep string) (prefix, suffix int, ok bool) {
	if base == "" {
		// Numeric-only names carry a tag with no base to anchor it to a
		// side; count them toward both maxima.
		if n, ok := parseNumber(name); ok {
			return n, n, true
		}
		if p, rest, ok := cutNumberPrefix(name, sep); ok {
			if s, ok := parseNumber(rest); ok {
				return p, s, true
			}
		}
		return 0, 0, false
	}

	if name == base {
		return 0, 0, true
	}
	if p, rest, ok := cutNumberPrefix(name, sep); ok {
		if rest == base {
			return p, 0, true
		}
		if s, mid, ok := cutNumberSuffix(rest, sep); ok && mid == base {
			return p, s, true
		}
	}
	if s, mid, ok := cutNumberSuffix(name, sep); ok && mid == base {
		return 0, s, true
	}
	return 0, 0, false
}

// cutNumberPrefix splits "<number><sep>rest" into its number and rest,
// taking the maximal leading digit run.
func cutNumberPrefix(name, sep string) (int, string, bool) {
	i := 0
	for i < len(name) && isDigit(name[i]) {
		i++
	}
	if i == 0 || !strings.HasPrefix(name[i:], sep) {
		return 0, "", false
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		return 0, "", false
	}
	return n, name[i+len(sep):], true
}

// cutNumberSuffix splits "rest<sep><number>" into its number and rest,
// taking the maximal trailing digit run.
func cutNumberSuffix(name, sep string) (int, string, bool) {
	j := len(name)
	for j > 0 && isDigit(name[j-1]) {
		j--
	}
	if j == len(name) || !strings.HasSuffix(name[:j], sep) {
		return 0, "", false
	}
	n, err := strconv.Atoi(name[j:])
	if err != nil {
		return 0, "", false
	}
	return n, name[:j-len(sep)], true
}

func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// matchesAny reports whether name matches any of the glob patterns
func matchesAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, domain.NewInvalidInputError(fmt.Sprintf("invalid ignore pattern: %s", pattern), err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
