package shared

import (
	"errors"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so wrapped sentinels compare equal.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConflict      = NewDomainError("CONFLICT", "Could not allocate a unique identifier, please try again")
	ErrInUse         = NewDomainError("IN_USE", "Resource is still referenced by other records")
)

// ValidationError collects every failed field rule of a record.
// It is reported as a whole rather than failing on the first rule.
type ValidationError struct {
	Messages []string
}

// Error joins the collected messages.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validation errors share the VALIDATION_ERROR code for status mapping.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == "VALIDATION_ERROR"
}

// ErrValidation is the sentinel matched by errors.Is for any ValidationError.
var ErrValidation = NewDomainError("VALIDATION_ERROR", "Validation failed")

// Violations accumulates validation messages in rule order.
type Violations struct {
	messages []string
}

// Add records a message.
func (v *Violations) Add(message string) {
	v.messages = append(v.messages, message)
}

// Check records message when cond is true.
func (v *Violations) Check(cond bool, message string) {
	if cond {
		v.Add(message)
	}
}

// Merge appends the messages of another validation error, if any.
func (v *Violations) Merge(err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		v.messages = append(v.messages, ve.Messages...)
	}
}

// Empty reports whether no rule failed.
func (v *Violations) Empty() bool {
	return len(v.messages) == 0
}

// Err returns nil when empty, otherwise a *ValidationError.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	out := make([]string, len(v.messages))
	copy(out, v.messages)
	return &ValidationError{Messages: out}
}
