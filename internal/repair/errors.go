package repair

import (
	"errors"
	"fmt"
)

// Reason classifies a retryable parse failure.
type Reason string

const (
	ReasonMalformedJSON   Reason = "malformed_json"
	ReasonMissingFields   Reason = "missing_fields"
	ReasonTypeMismatch    Reason = "type_mismatch"
	ReasonNoCitationFound Reason = "no_citation_found"
	ReasonDuplicateVerse  Reason = "duplicate_verse"
	ReasonVerseMismatch   Reason = "verse_mismatch"
	ReasonEmptyVerseText  Reason = "empty_verse_text"
)

// RetryableError signals that the response was unusable in a way a fresh
// generation attempt may fix. Anything else coming out of Parse is fatal for
// the unit; the caller substitutes a placeholder either way once retries are
// exhausted.
type RetryableError struct {
	Reason Reason
	Detail string
}

func (e *RetryableError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse response: %s", e.Reason)
	}
	return fmt.Sprintf("parse response: %s: %s", e.Reason, e.Detail)
}

func retryable(reason Reason, format string, args ...any) *RetryableError {
	return &RetryableError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// IsRetryable reports whether the error is a retryable parse failure.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}
