package netunicode

import (
	"errors"
	"fmt"
)

// Reason classifies a malformed record.
type Reason string

const (
	// ReasonMissingColon means no ':' follows the current position.
	ReasonMissingColon Reason = "MISSING_COLON"

	// ReasonBadLength means the length prefix is empty or not decimal.
	ReasonBadLength Reason = "BAD_LENGTH"

	// ReasonTruncated means the buffer ends before the announced string and
	// its trailing ','.
	ReasonTruncated Reason = "TRUNCATED"

	// ReasonMissingComma means the byte after the string is not ','.
	ReasonMissingComma Reason = "MISSING_COMMA"
)

// SyntaxError reports where and why decoding stopped.
type SyntaxError struct {
	Offset int
	Reason Reason
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("netunicode: %s at offset %d", e.Reason, e.Offset)
}

// IsSyntaxError reports whether err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
