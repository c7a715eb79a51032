package language

import (
	"errors"
	"fmt"
)

// Error codes for table loading.
const (
	ErrCodeNotFound    = "E_NOT_FOUND"
	ErrCodeLoadFailed  = "E_LOAD_FAILED"
	ErrCodeBuildFailed = "E_BUILD_FAILED"
	ErrCodeBadRule     = "E_BAD_RULE"
	ErrCodeBadPattern  = "E_BAD_PATTERN"
)

// LoadError reports a table that could not be loaded.
type LoadError struct {
	Code     string
	Message  string
	Language string // empty when the failure is not tied to one table
	Index    int    // rule index within the table, -1 when not applicable
	Err      error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Language != "" && e.Index >= 0 {
		return fmt.Sprintf("%s: %s (language=%s, rule=%d)", e.Code, msg, e.Language, e.Index)
	}
	if e.Language != "" {
		return fmt.Sprintf("%s: %s (language=%s)", e.Code, msg, e.Language)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is, or wraps, a *LoadError with code.
func IsLoadError(err error, code string) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
