// Package errors provides structured domain errors with transport mappings.
package errors

import (
	"net/http"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Catalog errors
	CodeInvalidCatalog Code = "INVALID_CATALOG"

	// Selection errors
	CodeInvalidCount   Code = "INVALID_COUNT"
	CodeNotEnoughItems Code = "NOT_ENOUGH_ITEMS"
	CodeNoCandidates   Code = "NO_CANDIDATES"

	// Daily slot errors
	CodeSlotOutOfRange Code = "SLOT_OUT_OF_RANGE"
	CodeSlotCompleted  Code = "SLOT_COMPLETED"

	// Filter errors
	CodeInvalidFilter Code = "INVALID_FILTER"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidCount, CodeSlotOutOfRange, CodeInvalidFilter:
		return http.StatusBadRequest
	case CodeSlotCompleted, CodeNoCandidates, CodeNotEnoughItems:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageKey returns the localization key for user-facing copy.
func (c Code) MessageKey() string {
	code := strings.TrimSpace(string(c))
	if code == "" {
		code = string(CodeUnknown)
	}
	return "error." + strings.ToLower(code)
}
