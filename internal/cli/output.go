package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit statuses.
const (
	ExitOK     = 0
	ExitFailed = 1 // a query failed its check: expectation mismatch or rejected by SQLite
	ExitUsage  = 2 // schema, document, config or flags could not be used
)

// Error codes reported in output and carried by ExitError.
const (
	ErrCodeGeneric      = "E001"
	ErrCodeSchema       = "E002" // CUE schema failed to load
	ErrCodeDocument     = "E003" // query document failed to load
	ErrCodeBuild        = "E004" // query failed to resolve against the schema
	ErrCodeCompile      = "E005"
	ErrCodeMismatch     = "E006" // compiled statement differs from expect
	ErrCodeCheckFailed  = "E007" // SQLite rejected the statement
	ErrCodeCheckerSetup = "E008"
)

// ExitError is returned by commands to set the process exit status.
// Code is empty for flag and config errors that have no error code.
type ExitError struct {
	Status int
	Code   string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Code == "" {
		return e.Err.Error()
	}
	return e.Code + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) *ExitError {
	return &ExitError{Status: ExitUsage, Err: err}
}

func failed(code string, format string, args ...any) *ExitError {
	return &ExitError{Status: ExitFailed, Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitStatus maps a command error to the process exit status.
// Errors that are not ExitErrors map to ExitFailed.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Status
	}
	return ExitFailed
}

// Response is the envelope written for --format json.
type Response struct {
	Status string     `json:"status"` // "ok" or "error"
	Data   any        `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error part of a Response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Printer writes command results to Out, as text or as a JSON Response.
// Verbose diagnostics always go to Diag so JSON output stays parseable.
type Printer struct {
	JSON    bool
	Out     io.Writer
	Diag    io.Writer
	Verbose bool
}

// Result writes data as an "ok" JSON response. Text rendering is left to
// each command.
func (p *Printer) Result(data any) error {
	return p.encode(Response{Status: "ok", Data: data})
}

// Fail reports err under code and returns it as an ExitError with status.
func (p *Printer) Fail(status int, code string, err error) error {
	if p.JSON {
		if encErr := p.encode(Response{Status: "error", Error: &ErrorBody{Code: code, Message: err.Error()}}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(p.Out, "✗ %s: %v\n", code, err)
	}
	return &ExitError{Status: status, Code: code, Err: err}
}

// Debugf writes a diagnostic line when verbose output is on.
func (p *Printer) Debugf(format string, args ...any) {
	if p.Verbose {
		fmt.Fprintf(p.Diag, format+"\n", args...)
	}
}

func (p *Printer) encode(resp Response) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
