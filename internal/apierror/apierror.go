// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind,omitempty"`
	Field  string `json:"field,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NewKinded carries the domain error kind and offending field so the UI can
// render a precise message without parsing Detail.
func NewKinded(kind, field, msg string) *APIError {
	return &APIError{Detail: msg, Kind: kind, Field: field}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
