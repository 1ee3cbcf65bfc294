package search

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	// KindDecode is used when a response body is not a valid JSON document.
	KindDecode ErrorKind = iota + 1
	// KindMissingField is used when the response envelope lacks an expected key.
	KindMissingField
	// KindMalformedRecord is used when a result record lacks an expected key.
	KindMalformedRecord
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindMissingField:
		return "missing field"
	case KindMalformedRecord:
		return "malformed record"
	default:
		return "unknown"
	}
}

// Error is returned when a search response cannot be turned into results.
type Error struct {
	Kind ErrorKind

	// StatusCode and Body are set for KindDecode errors.
	StatusCode int
	Body       string

	// Field is the value being extracted and Key the missing key, for
	// KindMissingField and KindMalformedRecord errors.
	Field string
	Key   string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDecode:
		return fmt.Sprintf("request returned with code %d, error msg: %s", e.StatusCode, e.Body)
	case KindMissingField:
		return fmt.Sprintf("could not extract %s: missing key %q", e.Field, e.Key)
	case KindMalformedRecord:
		return fmt.Sprintf("malformed result record %s: missing key %q", e.Field, e.Key)
	default:
		return "search error"
	}
}

func NewDecodeError(statusCode int, body string) *Error {
	return &Error{Kind: KindDecode, StatusCode: statusCode, Body: body}
}

func NewMissingFieldError(field, key string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Key: key}
}

func NewMalformedRecordError(field, key string) *Error {
	return &Error{Kind: KindMalformedRecord, Field: field, Key: key}
}

// IsKind reports whether err wraps a search error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var searchErr *Error
	if !errors.As(err, &searchErr) {
		return false
	}

	return searchErr.Kind == kind
}
