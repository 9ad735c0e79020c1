// Package errors defines the two-member error taxonomy of the prediction
// pipeline: validation failures the caller can fix, and inference failures
// the caller cannot.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Caller-fixable request errors
	ErrCodeInvalidPayload   ErrorCode = "INVALID_PAYLOAD"
	ErrCodeMissingRequired  ErrorCode = "MISSING_REQUIRED"
	ErrCodeInvalidType      ErrorCode = "INVALID_TYPE"
	ErrCodeOutOfDomain      ErrorCode = "OUT_OF_DOMAIN"
	ErrCodeUnknownField     ErrorCode = "UNKNOWN_FIELD"

	// System-level artifact errors
	ErrCodeArtifactLoadFailed ErrorCode = "ARTIFACT_LOAD_FAILED"
	ErrCodeModelIncompatible  ErrorCode = "MODEL_INCOMPATIBLE"
)

// FieldError describes a single offending request field and its expected domain.
type FieldError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ValidationError reports malformed, missing, or out-of-domain request fields.
// It is always caller-correctable, never retried, and surfaced verbatim.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldNames returns the offending field names, for metrics and logs.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// InferenceError reports a missing or structurally incompatible model/transform
// artifact. It is a deployment fault: the underlying cause goes to operators
// while the caller only sees a generic message.
type InferenceError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewInferenceError(code ErrorCode, message string, err error) *InferenceError {
	return &InferenceError{Code: code, Message: message, Err: err}
}

func (e *InferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// CallerMessage is what an InferenceError looks like on the wire. The detailed
// cause stays server-side.
func (e *InferenceError) CallerMessage() string {
	return "prediction service unavailable"
}

// AsValidationError reports whether err is (or wraps) a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsInferenceError reports whether err is (or wraps) an InferenceError.
func AsInferenceError(err error) (*InferenceError, bool) {
	var ie *InferenceError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
