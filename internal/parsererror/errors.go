// Package parsererror defines the error types returned by the document
// parsing pipeline.
package parsererror

import "fmt"

// ParseError represents a failure while parsing a document.
type ParseError struct {
	Parser string
	Stage  string
	File   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s failed for '%s': %v", e.Parser, e.Stage, e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError indicates that an input file does not conform to the
// format a parser expects.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ValidationError represents a validation failure on an input path or an
// emitted document.
type ValidationError struct {
	Subject string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Subject, e.Reason)
}

// ExtractionError indicates that expected content could not be extracted
// from a file even though the file format itself was accepted.
type ExtractionError struct {
	FilePath string
	Page     int
	Reason   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("extraction failed in file '%s' on page %d: %s: %v",
			e.FilePath, e.Page, e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed in file '%s': %s: %v", e.FilePath, e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
