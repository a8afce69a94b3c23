package ingest

import "fmt"

// HTMLParseError represents a failure to parse HTML content.
type HTMLParseError struct {
	Message string
	Cause   error
}

func (e *HTMLParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html parse error: %s", e.Message)
}

func (e *HTMLParseError) Unwrap() error {
	return e.Cause
}
