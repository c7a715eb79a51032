package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pns/internal/language"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure
	ExitCommandError = 2 // Command error (bad input, unknown language, missing files, etc.)
)

// Error code constants, shared by all commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeBadInput     = "E002" // Input that yields no name or does not decode
	ErrCodeUnknownLang  = "E003" // Language code without a table
	ErrCodeLoadFailed   = "E004" // Language tables failed to load
	ErrCodeNotFound     = "E005" // Path or glob matched nothing
	ErrCodeReadFailed   = "E006" // Input read error
	ErrCodeIndexFailed  = "E007" // Store rejected a document
	ErrCodeOutputFailed = "E008" // Result could not be encoded
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard structured response format for CLI output.
type CLIResponse struct {
	Status  string    `json:"status" yaml:"status"`                         // "ok" or "error"
	Data    any       `json:"data,omitempty" yaml:"data,omitempty"`         // success payload
	Error   *CLIError `json:"error,omitempty" yaml:"error,omitempty"`       // error details
	TraceID string    `json:"trace_id,omitempty" yaml:"trace_id,omitempty"` // optional trace correlation
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`                           // "E001", "E002", etc.
	Message string `json:"message" yaml:"message"`                     // human-readable message
	Details any    `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format. Text
// output prints data with fmt, so result types implement fmt.Stringer.
func (f *OutputFormatter) Success(data any) error {
	switch f.Format {
	case "json", "yaml":
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	switch f.Format {
	case "json", "yaml":
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// encode writes resp as one JSON line or one YAML document. Names hold
// '<', '>' and '&' often enough that JSON HTML escaping is turned off.
func (f *OutputFormatter) encode(resp CLIResponse) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is structured, verbose logs go to ErrWriter to avoid corrupting the output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// outputError reports a command error and returns it with ExitCommandError.
func outputError(f *OutputFormatter, code, message string, details any) error {
	_ = f.Error(code, message, details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputLoadError reports a language table load failure.
func outputLoadError(f *OutputFormatter, err error) error {
	var loadErr *language.LoadError
	if errors.As(err, &loadErr) {
		details := map[string]any{"reason": loadErr.Code}
		if loadErr.Language != "" {
			details["language"] = loadErr.Language
		}
		if loadErr.Index >= 0 {
			details["rule"] = loadErr.Index
		}
		return outputError(f, ErrCodeLoadFailed, loadErr.Error(), details)
	}
	return outputError(f, ErrCodeLoadFailed, err.Error(), nil)
}
