package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainErrorFormat(t *testing.T) {
	err := NewTimezoneError("Not/AZone", errors.New("unknown time zone"))

	msg := err.Error()
	if !strings.Contains(msg, ErrCodeTimezoneError) {
		t.Errorf("error message should contain the code, got %q", msg)
	}
	if !strings.Contains(msg, "Not/AZone") {
		t.Errorf("error message should contain the timezone name, got %q", msg)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewFilesystemError("cannot create directory", cause)

	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
}

func TestHasCode(t *testing.T) {
	err := NewConfigError("bad value", nil)

	if !HasCode(err, ErrCodeConfigError) {
		t.Error("HasCode should match the error's code")
	}
	if HasCode(err, ErrCodeTimezoneError) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(errors.New("plain"), ErrCodeConfigError) {
		t.Error("HasCode should not match non-domain errors")
	}

	wrapped := fmt.Errorf("context: %w", err)
	if !HasCode(wrapped, ErrCodeConfigError) {
		t.Error("HasCode should match through wrapping")
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml", "csv"} {
		format, err := ParseOutputFormat(valid)
		if err != nil {
			t.Errorf("ParseOutputFormat(%q) returned error: %v", valid, err)
		}
		if string(format) != valid {
			t.Errorf("ParseOutputFormat(%q) = %q", valid, format)
		}
	}

	_, err := ParseOutputFormat("xml")
	if err == nil {
		t.Fatal("ParseOutputFormat should reject unknown formats")
	}
	if !HasCode(err, ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
